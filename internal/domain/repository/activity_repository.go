package repository

import (
	"context"

	"placement/internal/domain/entity"
)

// ActivityRepository appends to the shared audit log. Append failures are the
// caller's problem to swallow; the repository just reports them.
type ActivityRepository interface {
	Append(ctx context.Context, record *entity.ActivityRecord) error
}
