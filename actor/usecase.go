package actor

import "context"

type Service interface {
	ListActors(ctx context.Context) ([]Actor, error)
}

type Repository interface {
	List(ctx context.Context) ([]Actor, error)
}

type Usecase struct {
	r Repository
}

func NewUsecase(r Repository) *Usecase {
	return &Usecase{r: r}
}

func (uc *Usecase) ListActors(ctx context.Context) ([]Actor, error) {
	return uc.r.List(ctx)
}
