package storage

import "errors"

var (
	ErrNotFound = errors.New("storage: record not found")
	ErrNoSeries = errors.New("storage: record has no series")
)
