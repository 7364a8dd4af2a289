package middleware

import (
	"fmt"
	"net/http"

	"github.com/agroverde/packhouse-backend-go/internal/domain/user"
	"github.com/agroverde/packhouse-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// AdminOnly restricts the route to back-office administrators
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		role, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		if role != string(user.RoleAdmin) {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// SupervisorOrAdmin restricts the route to floor supervisors and
// administrators, the roles that may run check-ins, sessions and bags
func SupervisorOrAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrSupervisorAccessRequired)
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, user.ErrSupervisorAccessRequired)
			return
		}

		role := user.Role(roleStr)
		if role != user.RoleSupervisor && role != user.RoleAdmin {
			response.HandleError(w, user.ErrSupervisorAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequirePermission checks if user has specific permission
func RequirePermission(permission user.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s'", permission))
				return
			}

			roleStr, ok := claims["role"].(string)
			if !ok {
				response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s'", permission))
				return
			}

			role := user.Role(roleStr)
			if !user.HasPermission(role, permission) {
				response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s', but user role is '%s'", permission, role))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
