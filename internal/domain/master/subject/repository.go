package subject

import "context"

type SubjectRepository interface {
	Create(ctx context.Context, s Subject) (Subject, error)
	GetByID(ctx context.Context, id string) (Subject, error)
	List(ctx context.Context) ([]Subject, error)
	Update(ctx context.Context, s Subject) error
	Delete(ctx context.Context, id string) error
}
