package auth

import (
	"context"
	"fmt"

	"github.com/agroverde/packhouse-backend-go/internal/domain/auth"
	"github.com/agroverde/packhouse-backend-go/internal/domain/user"
	"github.com/agroverde/packhouse-backend-go/internal/pkg/database"
	"github.com/agroverde/packhouse-backend-go/internal/pkg/jwt"
	"github.com/agroverde/packhouse-backend-go/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	db *database.DB
	user.UserRepository
	jwt.Service
	postgresql.JWTRepository
}

func NewAuthService(db *database.DB, userRepository user.UserRepository, jwtService jwt.Service, jwtRepository postgresql.JWTRepository) auth.AuthService {
	return &AuthServiceImpl{
		db:             db,
		UserRepository: userRepository,
		Service:        jwtService,
		JWTRepository:  jwtRepository,
	}
}

func (a *AuthServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	var tokenResponse auth.TokenResponse

	userData, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == user.ErrUserNotFound {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if !userData.Active {
		return auth.TokenResponse{}, auth.ErrUserInactive
	}

	if userData.PasswordHash == nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	err = postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(userData.ID, userData.Email, userData.Role, userData.ExporterID, userData.FacilityID)
		if err != nil {
			return fmt.Errorf("failed to create access token: %w", err)
		}
		tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, err = a.Service.GenerateRefreshToken(userData.ID)
		if err != nil {
			return fmt.Errorf("failed to create refresh token: %w", err)
		}

		err = a.CreateRefreshToken(txCtx, userData.ID, tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn)
		if err != nil {
			return fmt.Errorf("failed to save refresh token to database: %w", err)
		}
		return nil
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return tokenResponse, nil
}

// RefreshToken implements auth.AuthService.
func (a *AuthServiceImpl) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	token, err := jwtauth.VerifyToken(a.Service.JWTAuth(), req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	claims, err := token.AsMap(ctx)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	tokenType, ok := claims["type"].(string)
	if !ok || tokenType != "refresh" {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	revoked, err := a.IsRefreshTokenRevoked(ctx, req.RefreshToken)
	if err != nil {
		if err == pgx.ErrNoRows {
			return auth.AccessTokenResponse{}, auth.ErrInvalidToken
		}
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to check refresh token: %w", err)
	}
	if revoked {
		return auth.AccessTokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if err == user.ErrUserNotFound {
			return auth.AccessTokenResponse{}, auth.ErrUserNotFound
		}
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	if !userData.Active {
		return auth.AccessTokenResponse{}, auth.ErrUserInactive
	}

	accessToken, expiresAt, err := a.Service.GenerateAccessToken(userData.ID, userData.Email, userData.Role, userData.ExporterID, userData.FacilityID)
	if err != nil {
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.AccessTokenResponse{
		AccessToken:          accessToken,
		AccessTokenExpiresIn: expiresAt,
	}, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	err := postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := a.RevokeRefreshToken(txCtx, refreshToken); err != nil {
			return fmt.Errorf("failed to revoke refresh token: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	return nil
}

// RegisterUser implements auth.AuthService.
func (a *AuthServiceImpl) RegisterUser(ctx context.Context, req auth.RegisterUserRequest) (auth.UserResponse, error) {
	hash, err := a.hashPassword(req.Password)
	if err != nil {
		return auth.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser := user.User{
		Email:        req.Email,
		FullName:     req.FullName,
		PasswordHash: &hash,
		Role:         user.Role(req.Role),
		ExporterID:   req.ExporterID,
		FacilityID:   req.FacilityID,
		Active:       true,
	}

	created, err := a.UserRepository.Create(ctx, newUser)
	if err != nil {
		return auth.UserResponse{}, err
	}

	return auth.UserResponse{
		ID:         created.ID,
		Email:      created.Email,
		FullName:   created.FullName,
		Role:       string(created.Role),
		ExporterID: created.ExporterID,
		FacilityID: created.FacilityID,
		Active:     created.Active,
	}, nil
}
