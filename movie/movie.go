package movie

import (
	"encoding/json"
	"strings"

	"tronefilms/errs"
)

var (
	ErrInvalidTitle    = errs.Errorf(errs.EINVALID, "movie: title is required")
	ErrMovieNotFound   = errs.Errorf(errs.ENOTFOUND, "movie: not found")
	ErrNotAcknowledged = errs.Errorf(errs.EINTERNAL, "movie: insert was not acknowledged")
)

// Movie is a document of the movies collection. Optional fields are nil when
// absent so they are neither stored nor rendered. Extra holds stored fields
// outside this shape (imdb, tomatoes, awards, ...); it is rendered on read
// and never written.
type Movie struct {
	ID        string   `json:"_id,omitempty"`
	Title     string   `json:"title"`
	Year      int      `json:"year"`
	Plot      *string  `json:"plot,omitempty"`
	Genres    []string `json:"genres,omitempty"`
	Runtime   *int     `json:"runtime,omitempty"`
	Cast      []string `json:"cast,omitempty"`
	Poster    *string  `json:"poster,omitempty"`
	Languages []string `json:"languages,omitempty"`
	Directors []string `json:"directors,omitempty"`
	Released  *string  `json:"released,omitempty"`
	Countries []string `json:"countries,omitempty"`
	Fullplot  *string  `json:"fullplot,omitempty"`
	Rated     *string  `json:"rated,omitempty"`

	Extra map[string]interface{} `json:"-"`
}

// MarshalJSON renders the typed fields plus Extra. Typed fields win on a
// name clash.
func (m Movie) MarshalJSON() ([]byte, error) {
	type fields Movie
	known, err := json.Marshal(fields(m))
	if err != nil || len(m.Extra) == 0 {
		return known, err
	}

	out := make(map[string]interface{}, len(m.Extra)+14)
	for k, v := range m.Extra {
		out[k] = v
	}

	var typed map[string]json.RawMessage
	if err := json.Unmarshal(known, &typed); err != nil {
		return nil, err
	}
	for k, v := range typed {
		out[k] = v
	}
	return json.Marshal(out)
}

func (m Movie) Validate() error {
	if strings.TrimSpace(m.Title) == "" {
		return ErrInvalidTitle
	}
	return nil
}
