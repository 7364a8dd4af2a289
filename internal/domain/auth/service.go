package auth

import "context"

// AuthService defines authentication operations
type AuthService interface {
	// Login verifies credentials and issues an access/refresh token pair
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// RefreshToken exchanges a valid refresh token for a new access token
	RefreshToken(ctx context.Context, req RefreshTokenRequest) (AccessTokenResponse, error)

	// Logout revokes the presented refresh token
	Logout(ctx context.Context, refreshToken string) error

	// RegisterUser creates a new principal (admin only)
	RegisterUser(ctx context.Context, req RegisterUserRequest) (UserResponse, error)
}
