package postgres

import (
	"context"
	"time"

	"placement/internal/domain/entity"
	domainerrors "placement/internal/domain/errors"
	"placement/internal/domain/repository"
	"placement/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// accountStore hands out per-role repositories. All four role tables share
// the AccountModel schema, so each repository is the same implementation
// bound to a different table name.
type accountStore struct {
	db *gorm.DB
}

// NewAccountStore is the constructor for accountStore.
func NewAccountStore(db *gorm.DB) repository.AccountStore {
	return &accountStore{db: db}
}

// ForRole returns the repository bound to the role's table.
func (store *accountStore) ForRole(role entity.Role) repository.AccountRepository {
	return &accountRepository{
		db:    store.db,
		role:  role,
		table: model.TableForRole(role),
	}
}

// EmailExists scans the role tables in entity.AllRoles order and reports
// whether any of them holds the email. The scan is a sequence of independent
// reads; it does not lock anything, so it only guards the common case.
func (store *accountStore) EmailExists(ctx context.Context, email string) (bool, error) {
	// An absent email never collides, even with stored empty-email rows.
	if email == "" {
		return false, nil
	}

	for _, role := range entity.AllRoles() {
		var count int64
		err := store.db.WithContext(ctx).
			Table(model.TableForRole(role)).
			Where("email = ?", email).
			Count(&count).Error
		if err != nil {
			return false, errors.Wrapf(err, "failed to check email in %s table", role)
		}
		if count > 0 {
			return true, nil
		}
	}

	return false, nil
}

// accountRepository implements repository.AccountRepository for one role
// table using GORM.
type accountRepository struct {
	db    *gorm.DB
	role  entity.Role
	table string
}

// Create persists a new account row. The ID and timestamps are assigned here
// and written back onto the entity.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)
	if accountM.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate account id")
		}
		accountM.ID = id
	}

	if err := repo.db.WithContext(ctx).Table(repo.table).Create(accountM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrRegistrationFailed.WrapMessage("account id collision")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrRegistrationFailed.WrapMessage("missing required account information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// FindByEmail retrieves the account with the given email, or
// repository.ErrAccountNotFound.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Table(repo.table).
		Where("email = ?", email).
		Take(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	return toAccountDomain(&accountM, repo.role), nil
}

// FindByResetDigest retrieves the account holding a live reset-token pair for
// the digest. Expiry is checked in the query itself so an expired pair looks
// exactly like an unknown token.
func (repo *accountRepository) FindByResetDigest(ctx context.Context, digest string, now time.Time) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Table(repo.table).
		Where("reset_password_token = ? AND reset_password_expire > ?", digest, now).
		Take(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by reset digest")
	}

	return toAccountDomain(&accountM, repo.role), nil
}

// Save writes the full current state of a previously loaded account.
func (repo *accountRepository) Save(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Table(repo.table).Save(accountM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUpdateFailed.WrapMessage("missing required account information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save account")
	}

	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toAccountDomain converts a GORM AccountModel to a domain Account entity.
// The role comes from the repository binding, not the row, so an account can
// never claim a role other than its table's.
func toAccountDomain(data *model.AccountModel, role entity.Role) *entity.Account {
	if data == nil {
		return nil
	}

	account := &entity.Account{
		ID:             data.ID,
		Role:           role,
		Email:          data.Email,
		Password:       data.Password,
		Name:           data.Name,
		Phone:          data.Phone,
		Year:           data.Year,
		Course:         data.Course,
		CGPA:           data.CGPA,
		Skills:         data.Skills,
		EmployeeID:     data.EmployeeID,
		Department:     data.Department,
		Designation:    data.Designation,
		Specialization: data.Specialization,
		Experience:     data.Experience,
		AccessLevel:    data.AccessLevel,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}

	if data.ResetPasswordToken != nil {
		account.ResetPasswordToken = *data.ResetPasswordToken
	}
	if data.ResetPasswordExpire != nil {
		expire := *data.ResetPasswordExpire
		account.ResetPasswordExpire = &expire
	}

	return account
}

// fromAccountDomain converts a domain Account entity to a GORM AccountModel
// for persistence.
func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	accountM := &model.AccountModel{
		ID:             data.ID,
		Role:           data.Role.String(),
		Email:          data.Email,
		Password:       data.Password,
		Name:           data.Name,
		Phone:          data.Phone,
		Year:           data.Year,
		Course:         data.Course,
		CGPA:           data.CGPA,
		Skills:         data.Skills,
		EmployeeID:     data.EmployeeID,
		Department:     data.Department,
		Designation:    data.Designation,
		Specialization: data.Specialization,
		Experience:     data.Experience,
		AccessLevel:    data.AccessLevel,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}

	if data.ResetPasswordToken != "" {
		token := data.ResetPasswordToken
		accountM.ResetPasswordToken = &token
	}
	if data.ResetPasswordExpire != nil {
		expire := *data.ResetPasswordExpire
		accountM.ResetPasswordExpire = &expire
	}

	return accountM
}
