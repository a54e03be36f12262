package movie

import (
	"context"
	"strings"
)

type Service interface {
	ListMovies(ctx context.Context) ([]Movie, error)
	ListMoviesByRating(ctx context.Context) ([]Movie, error)
	FilterMoviesByTitle(ctx context.Context, prefix string) ([]Movie, error)
	AddMovie(ctx context.Context, fields map[string]interface{}) (string, error)
	UpdateMovie(ctx context.Context, id string, fields map[string]interface{}) error
	DeleteMovie(ctx context.Context, id string) error
}

// Repository is the document-store contract for the movies collection.
// Merge is a partial write: fields not named in the payload are preserved.
type Repository interface {
	List(ctx context.Context) ([]Movie, error)
	ListOrdered(ctx context.Context, field string, descending bool) ([]Movie, error)
	Create(ctx context.Context, fields map[string]interface{}) (string, error)
	Merge(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

type Usecase struct {
	r Repository
}

func NewUsecase(r Repository) *Usecase {
	return &Usecase{r: r}
}

func (uc *Usecase) ListMovies(ctx context.Context) ([]Movie, error) {
	return uc.r.List(ctx)
}

func (uc *Usecase) ListMoviesByRating(ctx context.Context) ([]Movie, error) {
	return uc.r.ListOrdered(ctx, "rating", true)
}

// FilterMoviesByTitle fetches movies ordered by title and keeps those whose
// title starts with prefix. The prefix match is case-sensitive and happens
// after retrieval; fine at this collection's scale.
func (uc *Usecase) FilterMoviesByTitle(ctx context.Context, prefix string) ([]Movie, error) {
	movies, err := uc.r.ListOrdered(ctx, "title", false)
	if err != nil {
		return nil, err
	}

	filtered := make([]Movie, 0, len(movies))
	for _, m := range movies {
		if strings.HasPrefix(m.Title(), prefix) {
			filtered = append(filtered, m)
		}
	}
	return filtered, nil
}

func (uc *Usecase) AddMovie(ctx context.Context, fields map[string]interface{}) (string, error) {
	return uc.r.Create(ctx, fields)
}

func (uc *Usecase) UpdateMovie(ctx context.Context, id string, fields map[string]interface{}) error {
	return uc.r.Merge(ctx, id, fields)
}

func (uc *Usecase) DeleteMovie(ctx context.Context, id string) error {
	return uc.r.Delete(ctx, id)
}
