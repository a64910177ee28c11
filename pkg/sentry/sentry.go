package sentry

import (
	"time"

	sentrygo "github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
)

// FlushTime bounds how long shutdown waits for buffered events.
var FlushTime = 2 * time.Second

// Sentry collects the pieces of one report. Nothing is sent unless the
// hub in use has a client, i.e. sentry was initialized with a DSN.
type Sentry struct {
	context echo.Context
	error   error
	message string
	level   sentrygo.Level
	extras  map[string]interface{}
	tags    map[string]string
}

func WithContext(c echo.Context) *Sentry {
	return new(Sentry).WithContext(c)
}

func (s *Sentry) WithContext(c echo.Context) *Sentry {
	s.context = c
	return s
}

func (s *Sentry) WithExtras(extras map[string]interface{}) *Sentry {
	s.extras = extras
	return s
}

func (s *Sentry) WithTags(tags map[string]string) *Sentry {
	s.tags = tags
	return s
}

// Error reports err as an exception at error level.
func (s *Sentry) Error(err error) {
	s.error = err
	s.level = sentrygo.LevelError
	s.sendError()
}

// Warning reports msg as a message at warning level.
func (s *Sentry) Warning(msg string) {
	s.message = msg
	s.level = sentrygo.LevelWarning
	s.sendMessage()
}

func (s *Sentry) sendError() {
	if s.error == nil {
		return
	}
	hub := s.getHub()
	if hub.Client() == nil {
		return
	}
	hub.WithScope(func(scope *sentrygo.Scope) {
		s.configScope(scope)
		hub.CaptureException(s.error)
	})
}

func (s *Sentry) sendMessage() {
	if s.message == "" {
		return
	}
	hub := s.getHub()
	if hub.Client() == nil {
		return
	}
	hub.WithScope(func(scope *sentrygo.Scope) {
		s.configScope(scope)
		hub.CaptureMessage(s.message)
	})
}

// getHub prefers the request scoped hub installed by the echo middleware.
func (s *Sentry) getHub() *sentrygo.Hub {
	if s.context != nil {
		if hub := sentryecho.GetHubFromContext(s.context); hub != nil {
			return hub
		}
	}
	return sentrygo.CurrentHub()
}

func (s *Sentry) configScope(scope *sentrygo.Scope) {
	if s.level != "" {
		scope.SetLevel(s.level)
	}
	if len(s.extras) > 0 {
		scope.SetExtras(s.extras)
	}
	if len(s.tags) > 0 {
		scope.SetTags(s.tags)
	}
	if s.context == nil {
		return
	}
	if res := s.context.Response(); res != nil && res.Writer != nil {
		if id := res.Header().Get(echo.HeaderXRequestID); id != "" {
			scope.SetTag("request_id", id)
		}
	}
}
