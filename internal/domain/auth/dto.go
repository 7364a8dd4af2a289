package auth

import (
	"github.com/agroverde/packhouse-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RegisterUserRequest struct {
	Email      string  `json:"email"`
	FullName   string  `json:"full_name"`
	Password   string  `json:"password"`
	Role       string  `json:"role"`
	ExporterID *string `json:"exporter_id"`
	FacilityID *string `json:"facility_id"`
}

func (r *RegisterUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	} else if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters long",
		})
	}

	if !validator.IsInSlice(r.Role, []string{"supervisor", "admin", "exporter"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of supervisor, admin, exporter",
		})
	}

	if r.Role == "exporter" && (r.ExporterID == nil || validator.IsEmpty(*r.ExporterID)) {
		errs = append(errs, validator.ValidationError{
			Field:   "exporter_id",
			Message: "exporter_id is required for exporter users",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type TokenResponse struct {
	AccessToken           string `json:"access_token"`
	AccessTokenExpiresIn  int64  `json:"access_token_expires_in"`
	RefreshToken          string `json:"refresh_token"`
	RefreshTokenExpiresIn int64  `json:"refresh_token_expires_in"`
}

type AccessTokenResponse struct {
	AccessToken          string `json:"access_token"`
	AccessTokenExpiresIn int64  `json:"access_token_expires_in"`
}

type UserResponse struct {
	ID         string  `json:"id"`
	Email      string  `json:"email"`
	FullName   string  `json:"full_name"`
	Role       string  `json:"role"`
	ExporterID *string `json:"exporter_id,omitempty"`
	FacilityID *string `json:"facility_id,omitempty"`
	Active     bool    `json:"active"`
}
