package httpserver

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"tronefilms/errs"
	"tronefilms/movie"
	"tronefilms/pkg/sentry"

	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterMovieRoutes(g *echo.Group) {
	g.GET("/:title", s.handleGetMovie)
	g.DELETE("/:title", s.handleDeleteMovie)
	g.POST("", s.handleCreateMovie)
}

// handleGetMovie godoc
// @Summary Get Movie
// @Description Find one movie by exact title. result is null when nothing matches
// @Tags movies
// @Produce json
// @Param title path string true "Movie title"
// @Success 200 {object} MovieResult
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/movies/{title} [get]
func (s *Server) handleGetMovie(c echo.Context) error {
	if s.MovieService == nil {
		return errs.Errorf(errs.ENOTIMPLEMENTED, "movie service not configured")
	}

	title, err := titleParam(c)
	if err != nil {
		return err
	}

	m, err := s.MovieService.GetByTitle(c.Request().Context(), title)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, MovieResult{Result: m})
}

// handleDeleteMovie godoc
// @Summary Delete Movie
// @Description Delete one movie by exact title
// @Tags movies
// @Produce plain
// @Param title path string true "Movie title"
// @Success 200 {string} string "Movie {title} deleted"
// @Failure 404 {string} string "Movie {title} not found"
// @Failure 500 {object} ErrorResponse
// @Router /api/movies/{title} [delete]
func (s *Server) handleDeleteMovie(c echo.Context) error {
	if s.MovieService == nil {
		return errs.Errorf(errs.ENOTIMPLEMENTED, "movie service not configured")
	}

	title, err := titleParam(c)
	if err != nil {
		return err
	}

	err = s.MovieService.DeleteByTitle(c.Request().Context(), title)
	if errors.Is(err, movie.ErrMovieNotFound) {
		return c.String(http.StatusNotFound, fmt.Sprintf("Movie %s not found", title))
	}
	if err != nil {
		return err
	}

	return c.String(http.StatusOK, fmt.Sprintf("Movie %s deleted", title))
}

// handleCreateMovie godoc
// @Summary Create Movie
// @Description Insert a movie. Title and year are required, absent optional fields are not stored
// @Tags movies
// @Accept json
// @Produce plain
// @Param movie body CreateMovieRequest true "Movie"
// @Success 200 {string} string "Movie inserted with id: {id}"
// @Failure 400 {object} ErrorResponse
// @Failure 500 {string} string "Error inserting movie"
// @Router /api/movies [post]
func (s *Server) handleCreateMovie(c echo.Context) error {
	if s.MovieService == nil {
		return errs.Errorf(errs.ENOTIMPLEMENTED, "movie service not configured")
	}

	var req CreateMovieRequest
	if err := bindJSONBody(c, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	id, err := s.MovieService.Create(c.Request().Context(), req.ToMovie())
	if errors.Is(err, movie.ErrNotAcknowledged) {
		s.Logger.Errorw("insert not acknowledged", "title", req.Title, "request_id", requestID(c))
		sentry.WithContext(c).
			WithExtras(map[string]interface{}{"title": req.Title}).
			Error(err)
		return c.String(http.StatusInternalServerError, "Error inserting movie")
	}
	if err != nil {
		return err
	}

	return c.String(http.StatusOK, "Movie inserted with id: "+id)
}

// bindJSONBody decodes the body as JSON whatever Content-Type the client
// sent. An empty body leaves i untouched.
func bindJSONBody(c echo.Context, i interface{}) error {
	err := c.Echo().JSONSerializer.Deserialize(c, i)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he
	}
	return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
}

// titleParam returns the decoded title path segment. Echo matches on the raw
// path when the request carries escaped separators such as %2F, so those
// values still need decoding.
func titleParam(c echo.Context) (string, error) {
	title := c.Param("title")
	if c.Request().URL.RawPath == "" {
		return title, nil
	}

	decoded, err := url.PathUnescape(title)
	if err != nil {
		return "", errs.Errorf(errs.EINVALID, "invalid title %q", title)
	}
	return decoded, nil
}
