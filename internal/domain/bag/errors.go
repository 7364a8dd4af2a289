package bag

import "errors"

var (
	ErrBagNotFound         = errors.New("bag not found")
	ErrBagNumberExists     = errors.New("bag number already recorded")
	ErrInvalidStatusChange = errors.New("bag status can only progress completed -> validated -> locked")
)
