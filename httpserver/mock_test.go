package httpserver_test

import (
	"context"

	"tronefilms/movie"

	"github.com/stretchr/testify/mock"
)

type MockMovieService struct {
	mock.Mock
}

func (m *MockMovieService) GetByTitle(ctx context.Context, title string) (*movie.Movie, error) {
	args := m.Called(ctx, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*movie.Movie), args.Error(1)
}

func (m *MockMovieService) DeleteByTitle(ctx context.Context, title string) error {
	args := m.Called(ctx, title)
	return args.Error(0)
}

func (m *MockMovieService) Create(ctx context.Context, mv movie.Movie) (string, error) {
	args := m.Called(ctx, mv)
	return args.String(0), args.Error(1)
}

type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
