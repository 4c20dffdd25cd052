// Package model holds the GORM persistence models.
package model

import (
	"time"

	"placement/internal/domain/entity"

	"github.com/google/uuid"
)

// AccountModel mirrors one row of a role table. All four role tables share
// this superset schema; which columns actually carry data is a role rule
// enforced by the domain layer, so a single model serves every table via an
// explicit Table(...) clause. Email is indexed but deliberately NOT unique:
// global uniqueness is the application-level cross-table scan.
type AccountModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Role     string    `gorm:"type:varchar(16);not null"`
	Email    string    `gorm:"type:varchar(255);index"`
	Password string    `gorm:"type:varchar(255)"`

	Name   string `gorm:"type:varchar(255)"`
	Phone  string `gorm:"type:varchar(32)"`
	Year   string `gorm:"type:varchar(16)"`
	Course string `gorm:"type:varchar(255)"`
	CGPA   string `gorm:"column:cgpa;type:varchar(16)"`
	Skills string `gorm:"type:text"`

	EmployeeID     string `gorm:"type:varchar(64)"`
	Department     string `gorm:"type:varchar(255)"`
	Designation    string `gorm:"type:varchar(255)"`
	Specialization string `gorm:"type:varchar(255)"`
	Experience     string `gorm:"type:varchar(255)"`
	AccessLevel    string `gorm:"type:varchar(32)"`

	ResetPasswordToken  *string    `gorm:"type:varchar(64);index"`
	ResetPasswordExpire *time.Time `gorm:""`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableForRole maps a role to its account table.
func TableForRole(role entity.Role) string {
	switch role {
	case entity.RoleStudent:
		return "student_accounts"
	case entity.RoleFaculty:
		return "faculty_accounts"
	case entity.RoleTPO:
		return "tpo_accounts"
	case entity.RoleAdmin:
		return "admin_accounts"
	default:
		return ""
	}
}

// ActivityModel mirrors the 'activity_logs' table, the shared append-only
// audit log.
type ActivityModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Email     string `gorm:"type:varchar(255);index"`
	Role      string `gorm:"type:varchar(16)"`
	Activity  string `gorm:"type:varchar(32)"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ActivityModel) TableName() string {
	return "activity_logs"
}
