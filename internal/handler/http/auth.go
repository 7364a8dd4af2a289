package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/agroverde/packhouse-backend-go/internal/domain/auth"
	"github.com/agroverde/packhouse-backend-go/internal/handler/http/response"
	"github.com/agroverde/packhouse-backend-go/internal/pkg/jwt"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	RefreshToken(w http.ResponseWriter, r *http.Request)
	RegisterUser(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	jwtService  jwt.Service
	authService auth.AuthService
}

func NewAuthHandler(jwtService jwt.Service, authService auth.AuthService) AuthHandler {
	return &AuthHandlerImpl{
		jwtService:  jwtService,
		authService: authService,
	}
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := loginReq.Validate(); err != nil {
		slog.Error("Login validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	tokenResponse, err := a.authService.Login(r.Context(), loginReq)
	if err != nil {
		slog.Error("Login service error", "error", err)
		response.HandleError(w, err)
		return
	}

	refreshTokenCookie := a.jwtService.RefreshTokenCookie(tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn)
	http.SetCookie(w, refreshTokenCookie)
	slog.Info("User logged in successfully")
	response.Created(w, "User logged in successfully", tokenResponse)
}

// Logout implements AuthHandler.
func (a *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	refreshTokenCookie, err := r.Cookie("refresh_token")
	if err != nil || refreshTokenCookie.Value == "" {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	if err := a.authService.Logout(r.Context(), refreshTokenCookie.Value); err != nil {
		slog.Error("Logout service error", "error", err)
		response.HandleError(w, err)
		return
	}

	expired := a.jwtService.RefreshTokenCookie("", 0)
	expired.MaxAge = -1
	http.SetCookie(w, expired)
	response.SuccessWithMessage(w, "Logged out successfully", nil)
}

// RefreshToken implements AuthHandler.
func (a *AuthHandlerImpl) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var refreshReq auth.RefreshTokenRequest

	// Prefer the cookie; fall back to the request body for API clients.
	if cookie, err := r.Cookie("refresh_token"); err == nil && cookie.Value != "" {
		refreshReq.RefreshToken = cookie.Value
	} else if err := json.NewDecoder(r.Body).Decode(&refreshReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if refreshReq.RefreshToken == "" {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	accessTokenResponse, err := a.authService.RefreshToken(r.Context(), refreshReq)
	if err != nil {
		slog.Error("RefreshToken service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, accessTokenResponse)
}

// RegisterUser implements AuthHandler.
func (a *AuthHandlerImpl) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var registerReq auth.RegisterUserRequest

	if err := json.NewDecoder(r.Body).Decode(&registerReq); err != nil {
		slog.Error("RegisterUser decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := registerReq.Validate(); err != nil {
		slog.Error("RegisterUser validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	userResponse, err := a.authService.RegisterUser(r.Context(), registerReq)
	if err != nil {
		slog.Error("RegisterUser service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("User registered successfully", "user_id", userResponse.ID)
	response.Created(w, "User registered successfully", userResponse)
}
