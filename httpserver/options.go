package httpserver

import (
	"errors"
	"fmt"
	"strings"

	"tronefilms/movie"

	"go.uber.org/zap"
)

type Options func(s *Server) error

func WithPort(port int) Options {
	return func(s *Server) error {
		if port <= 0 || port > 65535 {
			return fmt.Errorf("httpserver: invalid port %d", port)
		}
		s.Addr = fmt.Sprintf(":%d", port)
		return nil
	}
}

// WithAllowOrigins takes a comma separated origin list. Empty disables CORS.
func WithAllowOrigins(origins string) Options {
	return func(s *Server) error {
		s.AllowOrigins = nil
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				s.AllowOrigins = append(s.AllowOrigins, o)
			}
		}
		return nil
	}
}

func WithLogger(l *zap.SugaredLogger) Options {
	return func(s *Server) error {
		if l == nil {
			return errors.New("httpserver: nil logger")
		}
		s.Logger = l
		return nil
	}
}

func WithMovieService(svc movie.Service) Options {
	return func(s *Server) error {
		s.MovieService = svc
		return nil
	}
}

func WithHealth(p Pinger) Options {
	return func(s *Server) error {
		s.Health = p
		return nil
	}
}
