package session

import "context"

// SessionService defines the lecturer-facing session lifecycle
type SessionService interface {
	// OpenOrRotate creates the attendance session for a slot, or rotates
	// the code and window of the existing one. The raw code in the
	// response is disclosed exactly once
	OpenOrRotate(ctx context.Context, req OpenSessionRequest) (OpenSessionResponse, error)
}
