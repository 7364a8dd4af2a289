package worker

import "errors"

var (
	ErrWorkerNotFound   = errors.New("worker not found")
	ErrWorkerCodeExists = errors.New("worker code already registered")
	ErrWorkerInactive   = errors.New("worker is not active")
)
