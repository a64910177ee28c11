package movie

import "context"

type Service interface {
	GetByTitle(ctx context.Context, title string) (*Movie, error)
	DeleteByTitle(ctx context.Context, title string) error
	Create(ctx context.Context, m Movie) (string, error)
}

type Repository interface {
	// FindByTitle returns nil without error when nothing matches.
	FindByTitle(ctx context.Context, title string) (*Movie, error)
	// DeleteByTitle removes at most one document and reports how many were removed.
	DeleteByTitle(ctx context.Context, title string) (int64, error)
	Insert(ctx context.Context, m Movie) (string, error)
}

type Usecase struct {
	r Repository
}

func NewUsecase(r Repository) *Usecase {
	return &Usecase{r: r}
}

func (uc *Usecase) GetByTitle(ctx context.Context, title string) (*Movie, error) {
	if title == "" {
		return nil, ErrInvalidTitle
	}
	return uc.r.FindByTitle(ctx, title)
}

func (uc *Usecase) DeleteByTitle(ctx context.Context, title string) error {
	if title == "" {
		return ErrInvalidTitle
	}

	deleted, err := uc.r.DeleteByTitle(ctx, title)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrMovieNotFound
	}
	return nil
}

func (uc *Usecase) Create(ctx context.Context, m Movie) (string, error) {
	if err := m.Validate(); err != nil {
		return "", err
	}
	m.ID = ""
	return uc.r.Insert(ctx, m)
}
