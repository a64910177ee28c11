package httpserver

import (
	"net/http"

	"tronefilms/pkg/sentry"

	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterHealthRoutes() {
	s.Router.GET("/healthz", s.healthCheck)
}

// healthCheck godoc
// @Summary Health Check
// @Description Check that the server can reach the database
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} ErrorResponse
// @Router /healthz [get]
func (s *Server) healthCheck(c echo.Context) error {
	if s.Health != nil {
		if err := s.Health.Ping(c.Request().Context()); err != nil {
			s.Logger.Warnw("health check failed", "error", err, "request_id", requestID(c))
			sentry.WithContext(c).
				WithTags(map[string]string{"check": "store"}).
				Warning("health check failed: " + err.Error())
			return c.JSON(http.StatusServiceUnavailable, ErrorResponse{
				Error: http.StatusText(http.StatusServiceUnavailable),
			})
		}
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": http.StatusText(http.StatusOK),
	})
}
