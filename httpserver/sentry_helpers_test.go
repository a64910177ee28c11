package httpserver_test

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"tronefilms/httpserver"

	sentrygo "github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/require"
)

type capturedEvents struct {
	mu     sync.Mutex
	events []*sentrygo.Event
}

func (c *capturedEvents) all() []*sentrygo.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*sentrygo.Event(nil), c.events...)
}

// newCapturingHub returns a hub whose client records events instead of
// sending them.
func newCapturingHub(t *testing.T) (*sentrygo.Hub, *capturedEvents) {
	t.Helper()
	captured := new(capturedEvents)
	client, err := sentrygo.NewClient(sentrygo.ClientOptions{
		BeforeSend: func(event *sentrygo.Event, _ *sentrygo.EventHint) *sentrygo.Event {
			captured.mu.Lock()
			captured.events = append(captured.events, event)
			captured.mu.Unlock()
			return nil
		},
	})
	require.NoError(t, err)
	return sentrygo.NewHub(client, sentrygo.NewScope()), captured
}

// serveWithHub runs req through the server with hub bound to the request,
// which is where the sentry echo middleware looks first.
func serveWithHub(server *httpserver.Server, hub *sentrygo.Hub, req *http.Request) *httptest.ResponseRecorder {
	req = req.WithContext(sentrygo.SetHubOnContext(req.Context(), hub))
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	return rec
}
