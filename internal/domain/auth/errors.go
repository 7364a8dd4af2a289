package auth

import "errors"

var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidToken        = errors.New("invalid or malformed token")
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenRevoked = errors.New("refresh token revoked")
	ErrUserNotFound        = errors.New("user not found")
	ErrUserInactive        = errors.New("user account is deactivated")
)
