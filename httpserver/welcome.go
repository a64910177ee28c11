package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const welcomeHTML = `<div style="text-align: center; font-family: Verdana, Geneva, Tahoma, sans-serif;">` +
	`<h1 >Welcome to TroneFilms</h1>` +
	`<p>An API created to Get, Post and Delete Movies from a database</p>` +
	`<p><a href="/api">MOVIES API</a></p></div>`

func (s *Server) RegisterWelcomeRoutes() {
	s.Router.GET("/", func(c echo.Context) error {
		return c.HTML(http.StatusOK, welcomeHTML)
	})
}
