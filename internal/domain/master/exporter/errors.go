package exporter

import "errors"

var (
	ErrExporterNotFound   = errors.New("exporter not found")
	ErrExporterCodeExists = errors.New("exporter with this code already exists")
	ErrExporterInactive   = errors.New("exporter is deactivated")
)
