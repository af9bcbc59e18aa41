package face

import "context"

// FaceService manages a student's registered face embeddings.
type FaceService interface {
	Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error)
	Status(ctx context.Context) (StatusResponse, error)
	Unregister(ctx context.Context) error
}
