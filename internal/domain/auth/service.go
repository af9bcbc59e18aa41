package auth

import "context"

// AuthService defines business logic for authentication
type AuthService interface {
	// Login validates credentials and issues access/refresh tokens
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// LoginWithGoogle exchanges a verified google email for tokens;
	// the account must already exist
	LoginWithGoogle(ctx context.Context, email string) (LoginResponse, error)

	// Refresh exchanges a valid refresh token for a new access token
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)

	// Logout revokes a refresh token
	Logout(ctx context.Context, refreshToken string) error
}
