package service

import (
	"context"

	"placement/internal/domain/entity"
)

// ActivityRecorder records audit events best-effort. Record never blocks the
// caller and never returns an error: a lost audit entry must not fail or roll
// back the operation that produced it.
type ActivityRecorder interface {
	Record(ctx context.Context, email string, role entity.Role, activity entity.Activity)
}
