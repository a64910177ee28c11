package main

import (
	"fmt"
	"os"
	"strings"

	"tronefilms/movie"

	"gopkg.in/yaml.v3"
)

// fixtureMovie is the YAML shape of one seeded movie.
type fixtureMovie struct {
	Title     string   `yaml:"title"`
	Year      int      `yaml:"year"`
	Plot      *string  `yaml:"plot"`
	Genres    []string `yaml:"genres"`
	Runtime   *int     `yaml:"runtime"`
	Cast      []string `yaml:"cast"`
	Poster    *string  `yaml:"poster"`
	Languages []string `yaml:"languages"`
	Directors []string `yaml:"directors"`
	Released  *string  `yaml:"released"`
	Countries []string `yaml:"countries"`
	Fullplot  *string  `yaml:"fullplot"`
	Rated     *string  `yaml:"rated"`
}

func readFixture(path string, limit int) ([]movie.Movie, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseFixture(data, limit)
}

func parseFixture(data []byte, limit int) ([]movie.Movie, error) {
	var entries []fixtureMovie
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}

	movies := make([]movie.Movie, 0, len(entries))
	for i, e := range entries {
		if limit > 0 && len(movies) >= limit {
			break
		}
		m := movie.Movie{
			Title:     strings.TrimSpace(e.Title),
			Year:      e.Year,
			Plot:      e.Plot,
			Genres:    e.Genres,
			Runtime:   e.Runtime,
			Cast:      e.Cast,
			Poster:    e.Poster,
			Languages: e.Languages,
			Directors: e.Directors,
			Released:  e.Released,
			Countries: e.Countries,
			Fullplot:  e.Fullplot,
			Rated:     e.Rated,
		}
		if err := m.Validate(); err != nil {
			return nil, fmt.Errorf("fixture entry %d: %w", i, err)
		}
		movies = append(movies, m)
	}
	return movies, nil
}
