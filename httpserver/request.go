package httpserver

import "tronefilms/movie"

// CreateMovieRequest is the accepted body of POST /api/movies. Unknown fields
// are ignored by the binder.
type CreateMovieRequest struct {
	Title     string   `json:"title" validate:"required,notblank"`
	Year      *int     `json:"year" validate:"required"`
	Plot      *string  `json:"plot"`
	Genres    []string `json:"genres"`
	Runtime   *int     `json:"runtime"`
	Cast      []string `json:"cast"`
	Poster    *string  `json:"poster"`
	Languages []string `json:"languages"`
	Directors []string `json:"directors"`
	Released  *string  `json:"released"`
	Countries []string `json:"countries"`
	Fullplot  *string  `json:"fullplot"`
	Rated     *string  `json:"rated"`
}

func (r CreateMovieRequest) ToMovie() movie.Movie {
	m := movie.Movie{
		Title:     r.Title,
		Plot:      r.Plot,
		Genres:    r.Genres,
		Runtime:   r.Runtime,
		Cast:      r.Cast,
		Poster:    r.Poster,
		Languages: r.Languages,
		Directors: r.Directors,
		Released:  r.Released,
		Countries: r.Countries,
		Fullplot:  r.Fullplot,
		Rated:     r.Rated,
	}
	if r.Year != nil {
		m.Year = *r.Year
	}
	return m
}
