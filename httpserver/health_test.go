package httpserver_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"tronefilms/httpserver"

	sentrygo "github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHealthcheck(t *testing.T) {
	t.Run("ok without a store", func(t *testing.T) {
		server := newTestServer(t)

		response := makeRequest(server, http.MethodGet, "/healthz", nil)

		assert.Equal(t, http.StatusOK, response.Code)
		assert.JSONEq(t, `{"status":"OK"}`, response.Body.String())
	})

	t.Run("ok when the store answers", func(t *testing.T) {
		pinger := new(MockPinger)
		pinger.On("Ping", mock.Anything).Return(nil)
		server := newTestServer(t, httpserver.WithHealth(pinger))

		response := makeRequest(server, http.MethodGet, "/healthz", nil)

		assert.Equal(t, http.StatusOK, response.Code)
		pinger.AssertExpectations(t)
	})

	t.Run("unavailable when the store is down", func(t *testing.T) {
		pinger := new(MockPinger)
		pinger.On("Ping", mock.Anything).Return(errors.New("mongodb: ping: connection refused"))
		server := newTestServer(t, httpserver.WithHealth(pinger))

		response := makeRequest(server, http.MethodGet, "/healthz", nil)

		assert.Equal(t, http.StatusServiceUnavailable, response.Code)
		assert.JSONEq(t, `{"error":"Service Unavailable"}`, response.Body.String())
	})

	t.Run("store failure is reported as a warning", func(t *testing.T) {
		pinger := new(MockPinger)
		pinger.On("Ping", mock.Anything).Return(errors.New("connection refused"))
		server := newTestServer(t, httpserver.WithHealth(pinger))
		hub, captured := newCapturingHub(t)

		response := serveWithHub(server, hub, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, response.Code)
		events := captured.all()
		require.Len(t, events, 1)
		assert.Equal(t, sentrygo.LevelWarning, events[0].Level)
		assert.Equal(t, "health check failed: connection refused", events[0].Message)
		assert.Equal(t, "store", events[0].Tags["check"])
	})
}
