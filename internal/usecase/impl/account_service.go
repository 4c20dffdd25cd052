// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"placement/config"
	deliverycontext "placement/internal/delivery/context"
	"placement/internal/domain/entity"
	domainerrors "placement/internal/domain/errors"
	"placement/internal/domain/repository"
	"placement/internal/domain/service"
	"placement/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface. One instance
// serves every role; the role argument selects the table through the store.
type accountService struct {
	store    repository.AccountStore
	codec    service.PasswordCodec
	tokens   service.ResetTokenIssuer
	mailer   service.MailSender
	recorder service.ActivityRecorder

	clientURL     string
	resetTokenTTL time.Duration
	production    bool

	logger *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	Store    repository.AccountStore
	Codec    service.PasswordCodec
	Tokens   service.ResetTokenIssuer
	Mailer   service.MailSender
	Recorder service.ActivityRecorder
	Config   *config.Config
	Logger   *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	resetTokenTTL := time.Hour
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.ResetTokenTTL > 0 {
		resetTokenTTL = params.Config.Auth.ResetTokenTTL
	}

	clientURL := ""
	production := false
	if params.Config != nil {
		clientURL = params.Config.ClientURL
		production = params.Config.IsProduction()
	}

	return &accountService{
		store:         params.Store,
		codec:         params.Codec,
		tokens:        params.Tokens,
		mailer:        params.Mailer,
		recorder:      params.Recorder,
		clientURL:     clientURL,
		resetTokenTTL: resetTokenTTL,
		production:    production,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an account in the role's table. The email must be free
// across every role table, and the role always comes from the route, never
// from the payload.
func (srv *accountService) Register(ctx context.Context, role entity.Role, input *usecase.RegisterInput) (*usecase.AccountView, error) {
	srv.log(ctx).Info("Starting registration", slog.Any("role", role), slog.String("email", input.Email))

	exists, err := srv.store.EmailExists(ctx, input.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to check email uniqueness", slog.String("email", input.Email), slog.Any("error", err))

		return nil, domainerrors.ErrRegistrationFailed.WithDetails(err.Error())
	}
	if exists {
		return nil, domainerrors.ErrEmailInUse
	}

	account := &entity.Account{
		Role:           role,
		Email:          input.Email,
		Name:           input.Name,
		Phone:          input.Phone,
		Year:           input.Year,
		Course:         input.Course,
		CGPA:           input.CGPA,
		Skills:         input.Skills,
		EmployeeID:     input.EmployeeID,
		Department:     input.Department,
		Designation:    input.Designation,
		Specialization: input.Specialization,
		Experience:     input.Experience,
		AccessLevel:    input.AccessLevel,
	}
	account.ApplyRoleFieldRules()

	if input.Password != "" {
		hashed, err := srv.codec.Hash(input.Password)
		if err != nil {
			srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

			return nil, domainerrors.ErrRegistrationFailed.WithDetails("failed to hash password")
		}
		account.Password = hashed
	}

	if err := srv.store.ForRole(role).Create(ctx, account); err != nil {
		srv.log(ctx).Error("Failed to create account", slog.Any("role", role), slog.String("email", input.Email), slog.Any("error", err))

		return nil, domainerrors.ErrRegistrationFailed.WithDetails(err.Error())
	}

	srv.recorder.Record(ctx, account.Email, role, entity.ActivitySignup)

	srv.log(ctx).Debug("Registration completed", slog.Any("role", role), slog.Any("accountID", account.ID))

	return usecase.NewAccountView(account), nil
}

// Login verifies credentials against the role's table. An unknown email and
// a wrong password are deliberately indistinguishable to the caller.
func (srv *accountService) Login(ctx context.Context, role entity.Role, input *usecase.LoginInput) (*usecase.AccountView, error) {
	account, err := srv.store.ForRole(role).FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		srv.log(ctx).Error("Failed to look up account for login", slog.Any("role", role), slog.Any("error", err))

		return nil, err
	}

	if !srv.codec.Verify(input.Password, account.Password) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	srv.recorder.Record(ctx, account.Email, role, entity.ActivityLogin)

	srv.log(ctx).Debug("Login completed", slog.Any("role", role), slog.Any("accountID", account.ID))

	return usecase.NewAccountView(account), nil
}

// LoginAny probes the role tables in order and authenticates against the
// first one holding the email. The probe stops at the first email hit even
// when the password does not match; a matching email in a later table can
// never be reached.
func (srv *accountService) LoginAny(ctx context.Context, input *usecase.LoginInput) (entity.Role, *usecase.AccountView, error) {
	if input.Email == "" || input.Password == "" {
		return "", nil, domainerrors.ErrCredentialsRequired
	}

	for _, role := range entity.AllRoles() {
		account, err := srv.store.ForRole(role).FindByEmail(ctx, input.Email)
		if errors.Is(err, repository.ErrAccountNotFound) {
			continue
		}
		if err != nil {
			srv.log(ctx).Error("Failed to probe role table for login", slog.Any("role", role), slog.Any("error", err))

			return "", nil, err
		}

		if !srv.codec.Verify(input.Password, account.Password) {
			return "", nil, domainerrors.ErrInvalidCredentials
		}

		srv.recorder.Record(ctx, account.Email, role, entity.ActivityLogin)

		srv.log(ctx).Debug("Role-agnostic login completed", slog.Any("role", role), slog.Any("accountID", account.ID))

		return role, usecase.NewAccountView(account), nil
	}

	return "", nil, domainerrors.ErrInvalidCredentials
}

// Update applies a partial profile update to the account identified by
// email. The email itself, the role, and the access level can never be
// changed through this path.
func (srv *accountService) Update(ctx context.Context, role entity.Role, input *usecase.UpdateInput) (*usecase.AccountView, error) {
	if input.Email == "" {
		return nil, domainerrors.ErrEmailRequired
	}

	repo := srv.store.ForRole(role)

	account, err := repo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}
		srv.log(ctx).Error("Failed to look up account for update", slog.Any("role", role), slog.Any("error", err))

		return nil, err
	}

	applyProfileUpdates(account, input)

	if input.Password != nil {
		if *input.Password != "" {
			hashed, err := srv.codec.Hash(*input.Password)
			if err != nil {
				srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

				return nil, domainerrors.ErrUpdateFailed.WithDetails("failed to hash password")
			}
			account.Password = hashed
		} else {
			account.Password = ""
		}
	}

	account.ApplyRoleFieldRules()

	if err := repo.Save(ctx, account); err != nil {
		srv.log(ctx).Error("Failed to save account update", slog.Any("role", role), slog.Any("error", err))

		return nil, domainerrors.ErrUpdateFailed.WithDetails(err.Error())
	}

	srv.recorder.Record(ctx, account.Email, role, entity.ActivityProfileUpdate)

	srv.log(ctx).Debug("Update completed", slog.Any("role", role), slog.Any("accountID", account.ID))

	return usecase.NewAccountView(account), nil
}

// applyProfileUpdates copies the present fields onto the account. Role and
// AccessLevel from the input are never consulted.
func applyProfileUpdates(account *entity.Account, input *usecase.UpdateInput) {
	if input.Name != nil {
		account.Name = *input.Name
	}
	if input.Phone != nil {
		account.Phone = *input.Phone
	}
	if input.Year != nil {
		account.Year = *input.Year
	}
	if input.Course != nil {
		account.Course = *input.Course
	}
	if input.CGPA != nil {
		account.CGPA = *input.CGPA
	}
	if input.Skills != nil {
		account.Skills = *input.Skills
	}
	if input.EmployeeID != nil {
		account.EmployeeID = *input.EmployeeID
	}
	if input.Department != nil {
		account.Department = *input.Department
	}
	if input.Designation != nil {
		account.Designation = *input.Designation
	}
	if input.Specialization != nil {
		account.Specialization = *input.Specialization
	}
	if input.Experience != nil {
		account.Experience = *input.Experience
	}
}

// ForgotPassword issues a reset token, stores only its digest, and mails the
// raw value as a reset link. When mail cannot be delivered the stored pair is
// rolled back so the account holds no redeemable token it never received.
func (srv *accountService) ForgotPassword(ctx context.Context, role entity.Role, email string) (*usecase.ForgotPasswordOutput, error) {
	if email == "" {
		return nil, domainerrors.ErrResetEmailRequired
	}

	repo := srv.store.ForRole(role)

	account, err := repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrEmailUnknown
		}
		srv.log(ctx).Error("Failed to look up account for password reset", slog.Any("role", role), slog.Any("error", err))

		return nil, err
	}

	raw, digest, err := srv.tokens.Generate()
	if err != nil {
		srv.log(ctx).Error("Failed to generate reset token", slog.Any("error", err))

		return nil, domainerrors.ErrInternalError.WithDetails("failed to generate reset token")
	}

	account.SetResetToken(digest, time.Now().Add(srv.resetTokenTTL))
	if err := repo.Save(ctx, account); err != nil {
		srv.log(ctx).Error("Failed to store reset token", slog.Any("role", role), slog.Any("error", err))

		return nil, err
	}

	resetURL := fmt.Sprintf("%s/reset-password/%s", srv.clientURL, raw)

	if srv.mailer.Configured() {
		msg := service.MailMessage{
			To:      account.Email,
			Subject: "Password Reset",
			Text:    fmt.Sprintf("You requested a password reset. Use this token or visit the link: %s", resetURL),
		}
		if err := srv.mailer.Send(ctx, msg); err != nil {
			srv.log(ctx).Error("Failed to send reset email", slog.String("email", account.Email), slog.Any("error", err))

			account.ClearResetToken()
			if rollbackErr := repo.Save(ctx, account); rollbackErr != nil {
				srv.log(ctx).Error("Failed to roll back reset token", slog.Any("error", rollbackErr))
			}

			return nil, domainerrors.ErrMailDispatchFailed.WithDetails(err.Error())
		}
	}

	// Outside production, or when no mail transport exists, the raw token is
	// handed back in the response so the flow stays testable end to end.
	disclosed := !srv.mailer.Configured() || !srv.production

	output := &usecase.ForgotPasswordOutput{
		Message:   "Reset token sent",
		Disclosed: disclosed,
	}
	if disclosed {
		output.Message = "Reset token generated (dev)"
		output.ResetToken = raw
	}

	srv.log(ctx).Debug("Reset token issued", slog.Any("role", role), slog.Any("accountID", account.ID), slog.Bool("disclosed", disclosed))

	return output, nil
}

// ResetPassword redeems a raw reset token. The stored digest must match and
// must not be expired; on success the new credential is installed and the
// token pair is cleared so the token is single-use.
func (srv *accountService) ResetPassword(ctx context.Context, role entity.Role, token string, newPassword string) error {
	if token == "" {
		return domainerrors.ErrResetTokenRequired
	}
	if newPassword == "" {
		return domainerrors.ErrPasswordRequired
	}

	repo := srv.store.ForRole(role)

	account, err := repo.FindByResetDigest(ctx, srv.tokens.Digest(token), time.Now())
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domainerrors.ErrResetTokenInvalid
		}
		srv.log(ctx).Error("Failed to look up account by reset token", slog.Any("role", role), slog.Any("error", err))

		return err
	}

	hashed, err := srv.codec.Hash(newPassword)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return domainerrors.ErrPasswordHashFailed.WithDetails("failed to hash new password")
	}

	account.Password = hashed
	account.ClearResetToken()

	if err := repo.Save(ctx, account); err != nil {
		srv.log(ctx).Error("Failed to save password reset", slog.Any("role", role), slog.Any("error", err))

		return err
	}

	srv.recorder.Record(ctx, account.Email, role, entity.ActivityProfileUpdate)

	srv.log(ctx).Debug("Password reset completed", slog.Any("role", role), slog.Any("accountID", account.ID))

	return nil
}
