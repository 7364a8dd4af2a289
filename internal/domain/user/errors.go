package user

import "errors"

var (
	ErrUserNotFound              = errors.New("user not found")
	ErrEmailExists               = errors.New("email already registered")
	ErrUserInactive              = errors.New("user account is deactivated")
	ErrAdminPrivilegeRequired    = errors.New("admin privilege required")
	ErrSupervisorAccessRequired  = errors.New("supervisor or admin access required")
	ErrInvalidRole               = errors.New("invalid role")
	ErrExporterScopeRequired     = errors.New("exporter users must be linked to an exporter")
	ErrPermissionDenied          = errors.New("permission denied")
	ErrCannotDeactivateLastAdmin = errors.New("cannot deactivate the last active admin")
)
