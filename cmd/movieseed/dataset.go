package main

import (
	"archive/zip"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"tronefilms/movie"
)

func downloadAndExtract(ctx context.Context, zipURL string) (string, func(), error) {
	if zipURL == "" {
		return "", func() {}, errors.New("dataset url is empty")
	}

	tmpDir, err := os.MkdirTemp("", "movielens-")
	if err != nil {
		return "", func() {}, err
	}

	cleanup := func() {
		_ = os.RemoveAll(tmpDir)
	}

	zipPath := filepath.Join(tmpDir, "dataset.zip")
	if err := downloadFile(ctx, zipURL, zipPath); err != nil {
		cleanup()
		return "", func() {}, err
	}

	csvPath, err := extractMoviesCSV(zipPath, tmpDir)
	if err != nil {
		cleanup()
		return "", func() {}, err
	}

	return csvPath, cleanup, nil
}

func downloadFile(ctx context.Context, url, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, resp.Body)
	return err
}

func extractMoviesCSV(zipPath, destDir string) (string, error) {
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return "", err
	}
	defer r.Close()

	for _, file := range r.File {
		if filepath.Base(file.Name) != "movies.csv" {
			continue
		}

		src, err := file.Open()
		if err != nil {
			return "", err
		}
		defer src.Close()

		destPath := filepath.Join(destDir, "movies.csv")
		out, err := os.Create(destPath)
		if err != nil {
			return "", err
		}

		if _, err := io.Copy(out, src); err != nil {
			_ = out.Close()
			return "", err
		}
		if err := out.Close(); err != nil {
			return "", err
		}

		return destPath, nil
	}

	return "", errors.New("movies.csv not found in zip")
}

// readMovieLens reads a MovieLens movies.csv. Rows whose title carries no
// year are skipped.
func readMovieLens(r io.Reader, limit int) ([]movie.Movie, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	idxTitle, idxGenres, err := parseMovieCSVHeader(reader)
	if err != nil {
		return nil, err
	}

	var movies []movie.Movie
	for limit <= 0 || len(movies) < limit {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return movies, err
		}

		m, ok := parseMovieRecord(record, idxTitle, idxGenres)
		if !ok {
			continue
		}
		movies = append(movies, m)
	}

	return movies, nil
}

func parseMovieCSVHeader(reader *csv.Reader) (int, int, error) {
	header, err := reader.Read()
	if err != nil {
		return 0, 0, err
	}

	idxTitle, idxGenres := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case "title":
			idxTitle = i
		case "genres":
			idxGenres = i
		}
	}
	if idxTitle == -1 || idxGenres == -1 {
		return 0, 0, errors.New("missing required columns in csv header")
	}

	return idxTitle, idxGenres, nil
}

func parseMovieRecord(record []string, idxTitle, idxGenres int) (movie.Movie, bool) {
	if idxTitle >= len(record) || idxGenres >= len(record) {
		return movie.Movie{}, false
	}

	title, year, ok := splitTitleYear(record[idxTitle])
	if !ok {
		return movie.Movie{}, false
	}

	return movie.Movie{
		Title:  title,
		Year:   year,
		Genres: splitGenres(record[idxGenres]),
	}, true
}

// "Toy Story (1995)" and "Babylon 5 (1994-1998)" both end in a year group.
var titleYearPattern = regexp.MustCompile(`^(.+?)\s*\((\d{4})(?:[-–]\d{0,4})?\)$`)

func splitTitleYear(raw string) (string, int, bool) {
	matches := titleYearPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if matches == nil {
		return "", 0, false
	}

	year, err := strconv.Atoi(matches[2])
	if err != nil {
		return "", 0, false
	}
	return matches[1], year, true
}

const noGenres = "(no genres listed)"

func splitGenres(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == noGenres {
		return nil
	}

	var genres []string
	for _, g := range strings.Split(raw, "|") {
		if g = strings.TrimSpace(g); g != "" {
			genres = append(genres, g)
		}
	}
	return genres
}
