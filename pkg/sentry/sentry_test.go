package sentry

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	sentrygo "github.com/getsentry/sentry-go"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
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

func newEchoContext(requestID string) echo.Context {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/movies/Alien", nil), rec)
	if requestID != "" {
		c.Response().Header().Set(echo.HeaderXRequestID, requestID)
	}
	return c
}

func TestSentry_BuilderPattern(t *testing.T) {
	ctx := newEchoContext("")
	extras := map[string]interface{}{"title": "Alien"}
	tags := map[string]string{"env": "test"}

	s := WithContext(ctx).
		WithExtras(extras).
		WithTags(tags)

	assert.Equal(t, ctx, s.context)
	assert.Equal(t, extras, s.extras)
	assert.Equal(t, tags, s.tags)
}

func TestSentry_DoesNothingWithoutClient(t *testing.T) {
	ctx := newEchoContext("")
	ctx.Set("sentry", sentrygo.NewHub(nil, sentrygo.NewScope()))

	assert.NotPanics(t, func() {
		WithContext(ctx).Error(errors.New("store down"))
		WithContext(ctx).Warning("slow store")
	})
}

func TestSentry_SendsToRequestHub(t *testing.T) {
	t.Run("error carries level, tags and request id", func(t *testing.T) {
		hub, captured := newCapturingHub(t)
		ctx := newEchoContext("req-123")
		ctx.Set("sentry", hub)

		WithContext(ctx).WithTags(map[string]string{"route": "/api/movies/:title"}).Error(errors.New("store down"))

		events := captured.all()
		require.Len(t, events, 1)
		assert.Equal(t, sentrygo.LevelError, events[0].Level)
		assert.Equal(t, "req-123", events[0].Tags["request_id"])
		assert.Equal(t, "/api/movies/:title", events[0].Tags["route"])
		require.NotEmpty(t, events[0].Exception)
		assert.Equal(t, "store down", events[0].Exception[0].Value)
	})

	t.Run("warning carries level and extras", func(t *testing.T) {
		hub, captured := newCapturingHub(t)
		ctx := newEchoContext("")
		ctx.Set("sentry", hub)

		WithContext(ctx).WithExtras(map[string]interface{}{"title": "Alien"}).Warning("store unreachable")

		events := captured.all()
		require.Len(t, events, 1)
		assert.Equal(t, sentrygo.LevelWarning, events[0].Level)
		assert.Equal(t, "store unreachable", events[0].Message)
		assert.Equal(t, "Alien", events[0].Extra["title"])
	})

	t.Run("nil error and empty message are skipped", func(t *testing.T) {
		hub, captured := newCapturingHub(t)
		ctx := newEchoContext("")
		ctx.Set("sentry", hub)

		WithContext(ctx).sendError()
		WithContext(ctx).sendMessage()

		assert.Empty(t, captured.all())
	})
}

func TestSentry_GetHub(t *testing.T) {
	t.Run("falls back to current hub without context", func(t *testing.T) {
		assert.Equal(t, sentrygo.CurrentHub(), new(Sentry).getHub())
	})

	t.Run("uses hub from echo context", func(t *testing.T) {
		hub, _ := newCapturingHub(t)
		ctx := newEchoContext("")
		ctx.Set("sentry", hub)

		assert.Equal(t, hub, WithContext(ctx).getHub())
	})
}
