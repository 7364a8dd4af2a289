package cooperative

import "errors"

var (
	ErrCooperativeNotFound   = errors.New("cooperative not found")
	ErrCooperativeCodeExists = errors.New("cooperative with this code already exists")
	ErrCooperativeInactive   = errors.New("cooperative is deactivated")
)
