package facility

import "errors"

var (
	ErrFacilityNotFound   = errors.New("facility not found")
	ErrFacilityCodeExists = errors.New("facility with this code already exists")
	ErrFacilityInactive   = errors.New("facility is deactivated")
)
