package postgres

import (
	"context"

	"placement/internal/domain/entity"
	domainerrors "placement/internal/domain/errors"
	"placement/internal/domain/repository"
	"placement/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// activityRepository implements repository.ActivityRepository using GORM.
// The log is append-only; nothing in the application reads it back.
type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository is the constructor for activityRepository.
func NewActivityRepository(db *gorm.DB) repository.ActivityRepository {
	return &activityRepository{db: db}
}

// Append inserts one audit row.
func (repo *activityRepository) Append(ctx context.Context, record *entity.ActivityRecord) error {
	activityM := &model.ActivityModel{
		Email:     record.Email,
		Role:      record.Role.String(),
		Activity:  string(record.Activity),
		CreatedAt: record.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(activityM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append activity record")
	}

	return nil
}
