package httpserver

import "tronefilms/movie"

type ErrorResponse struct {
	Error string `json:"error"`
}

// MovieResult wraps a lookup. Result is null when nothing matched.
type MovieResult struct {
	Result *movie.Movie `json:"result"`
}
