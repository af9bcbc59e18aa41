package semester

import "context"

type SemesterRepository interface {
	Create(ctx context.Context, s Semester) (Semester, error)
	GetByID(ctx context.Context, id string) (Semester, error)
	List(ctx context.Context) ([]Semester, error)
	Update(ctx context.Context, s Semester) error
	Delete(ctx context.Context, id string) error
}
