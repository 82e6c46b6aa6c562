package repository

import (
	"context"
	"errors"

	"student-performance-dashboard/internal/domain/entity"
)

// ErrDataUnavailable is returned when the student dataset source is missing
// or unreadable. Callers are expected to fall back to the built-in demo
// dataset and surface a warning instead of failing.
var ErrDataUnavailable = errors.New("student dataset unavailable")

type StudentRepository interface {
	// LoadAll reads the full student dataset in source order.
	LoadAll(ctx context.Context) ([]entity.StudentRecord, error)
}
