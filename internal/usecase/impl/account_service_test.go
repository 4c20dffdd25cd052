package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"placement/config"
	"placement/internal/domain/entity"
	domainerrors "placement/internal/domain/errors"
	"placement/internal/domain/repository"
	"placement/internal/domain/service"
	mockRepo "placement/internal/mocks/repository"
	mockService "placement/internal/mocks/service"
	"placement/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service  usecase.AccountUsecase
	store    *mockRepo.MockAccountStore
	codec    *mockService.MockPasswordCodec
	tokens   *mockService.MockResetTokenIssuer
	mailer   *mockService.MockMailSender
	recorder *mockService.MockActivityRecorder
}

func createTestAccountService(t *testing.T, cfg *config.Config) accountServiceFixtures {
	t.Helper()

	if cfg == nil {
		cfg = &config.Config{
			Auth:      &config.AuthConfig{ResetTokenTTL: time.Hour},
			ClientURL: "http://client.test",
		}
		cfg.Env.Env = "development"
	}

	store := mockRepo.NewMockAccountStore(t)
	codec := mockService.NewMockPasswordCodec(t)
	tokens := mockService.NewMockResetTokenIssuer(t)
	mailer := mockService.NewMockMailSender(t)
	recorder := mockService.NewMockActivityRecorder(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewAccountService(AccountServiceParams{
		Store:    store,
		Codec:    codec,
		Tokens:   tokens,
		Mailer:   mailer,
		Recorder: recorder,
		Config:   cfg,
		Logger:   logger,
	})

	return accountServiceFixtures{
		service:  svc,
		store:    store,
		codec:    codec,
		tokens:   tokens,
		mailer:   mailer,
		recorder: recorder,
	}
}

func TestAccountService_Register_Success(t *testing.T) {
	fx := createTestAccountService(t, nil)
	ctx := context.Background()
	repo := mockRepo.NewMockAccountRepository(t)

	input := &usecase.RegisterInput{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "pw123",
		Course:   "B.Tech",
	}

	var created entity.Account

	fx.store.EXPECT().EmailExists(ctx, "asha@example.com").Return(false, nil)
	fx.codec.EXPECT().Hash("pw123").Return("$2a$10$hash", nil)
	fx.store.EXPECT().ForRole(entity.RoleStudent).Return(repo)
	repo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(_ context.Context, account *entity.Account) {
			account.ID = uuid.New()
			created = *account
		}).
		Return(nil)
	fx.recorder.EXPECT().Record(ctx, "asha@example.com", entity.RoleStudent, entity.ActivitySignup)

	view, err := fx.service.Register(ctx, entity.RoleStudent, input)

	require.NoError(t, err)
	assert.Equal(t, entity.RoleStudent, created.Role)
	assert.Equal(t, "$2a$10$hash", created.Password)
	assert.Equal(t, "student", view.Role)
	assert.Equal(t, "asha@example.com", view.Email)
	assert.Equal(t, "B.Tech", view.Course)
	assert.NotEmpty(t, view.ID)
}

func TestAccountService_Register_EmailInUse(t *testing.T) {
	fx := createTestAccountService(t, nil)
	ctx := context.Background()

	fx.store.EXPECT().EmailExists(ctx, "taken@example.com").Return(true, nil)

	view, err := fx.service.Register(ctx, entity.RoleFaculty, &usecase.RegisterInput{
		Email:    "taken@example.com",
		Password: "pw",
	})

	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrEmailInUse)
}

func TestAccountService_Register_AdminDefaultsAccessLevel(t *testing.T) {
	fx := createTestAccountService(t, nil)
	ctx := context.Background()
	repo := mockRepo.NewMockAccountRepository(t)

	var created entity.Account

	fx.store.EXPECT().EmailExists(ctx, "root@example.com").Return(false, nil)
	fx.codec.EXPECT().Hash("pw").Return("$2a$10$hash", nil)
	fx.store.EXPECT().ForRole(entity.RoleAdmin).Return(repo)
	repo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(_ context.Context, account *entity.Account) { created = *account }).
		Return(nil)
	fx.recorder.EXPECT().Record(ctx, "root@example.com", entity.RoleAdmin, entity.ActivitySignup)

	_, err := fx.service.Register(ctx, entity.RoleAdmin, &usecase.RegisterInput{
		Email:      "root@example.com",
		Password:   "pw",
		Department: "CSE",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.DefaultAccessLevel, created.AccessLevel)
	assert.Empty(t, created.Department)
}

func TestAccountService_Register_EmptyPasswordSkipsHashing(t *testing.T) {
	fx := createTestAccountService(t, nil)
	ctx := context.Background()
	repo := mockRepo.NewMockAccountRepository(t)

	var created entity.Account

	fx.store.EXPECT().EmailExists(ctx, "nopw@example.com").Return(false, nil)
	fx.store.EXPECT().ForRole(entity.RoleStudent).Return(repo)
	repo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(_ context.Context, account *entity.Account) { created = *account }).
		Return(nil)
	fx.recorder.EXPECT().Record(ctx, "nopw@example.com", entity.RoleStudent, entity.ActivitySignup)

	_, err := fx.service.Register(ctx, entity.RoleStudent, &usecase.RegisterInput{
		Email: "nopw@example.com",
	})

	require.NoError(t, err)
	assert.Empty(t, created.Password)
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService(t, nil)
	ctx := context.Background()
	repo := mockRepo.NewMockAccountRepository(t)

	stored := &entity.Account{
		ID:       uuid.New(),
		Role:     entity.RoleFaculty,
		Email:    "prof@example.com",
		Password: "$2a$10$hash",
	}

	fx.store.EXPECT().ForRole(entity.RoleFaculty).Return(repo)
	repo.EXPECT().FindByEmail(ctx, "prof@example.com").Return(stored, nil)
	fx.codec.EXPECT().Verify("pw", "$2a$10$hash").Return(true)
	fx.recorder.EXPECT().Record(ctx, "prof@example.com", entity.RoleFaculty, entity.ActivityLogin)

	view, err := fx.service.Login(ctx, entity.RoleFaculty, &usecase.LoginInput{
		Email:    "prof@example.com",
		Password: "pw",
	})

	require.NoError(t, err)
	assert.Equal(t, "faculty", view.Role)
	assert.Equal(t, "prof@example.com", view.Email)
}

func TestAccountService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAccountService(t, nil)
	ctx := context.Background()
	repo := mockRepo.NewMockAccountRepository(t)

	fx.store.EXPECT().ForRole(entity.RoleStudent).Return(repo)
	repo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrAccountNotFound)

	view, err := fx.service.Login(ctx, entity.RoleStudent, &usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "pw",
	})

	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	fx := createTestAccountService(t, nil)
	ctx := context.Background()
	repo := mockRepo.NewMockAccountRepository(t)

	stored := &entity.Account{Role: entity.RoleStudent, Email: "s@example.com", Password: "$2a$10$hash"}

	fx.store.EXPECT().ForRole(entity.RoleStudent).Return(repo)
	repo.EXPECT().FindByEmail(ctx, "s@example.com").Return(stored, nil)
	fx.codec.EXPECT().Verify("bad", "$2a$10$hash").Return(false)

	_, err := fx.service.Login(ctx, entity.RoleStudent, &usecase.LoginInput{
		Email:    "s@example.com",
		Password: "bad",
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_Login_LegacyPlaintextRow(t *testing.T) {
	fx := createTestAccountService(t, nil)
	ctx := context.Background()
	repo := mockRepo.NewMockAccountRepository(t)

	stored := &entity.Account{Role: entity.RoleStudent, Email: "old@example.com", Password: "plain123"}

	fx.store.EXPECT().ForRole(entity.RoleStudent).Return(repo)
	repo.EXPECT().FindByEmail(ctx, "old@example.com").Return(stored, nil)
	fx.codec.EXPECT().Verify("plain123", "plain123").Return(true)
	fx.recorder.EXPECT().Record(ctx, "old@example.com", entity.RoleStudent, entity.ActivityLogin)

	view, err := fx.service.Login(ctx, entity.RoleStudent, &usecase.LoginInput{
		Email:    "old@example.com",
		Password: "plain123",
	})

	require.NoError(t, err)
	assert.Equal(t, "old@example.com", view.Email)
}

func TestAccountService_LoginAny_MissingFields(t *testing.T) {
	fx := createTestAccountService(t, nil)
	ctx := context.Background()

	_, _, err := fx.service.LoginAny(ctx, &usecase.LoginInput{Email: "", Password: "pw"})
	assert.ErrorIs(t, err, domainerrors.ErrCredentialsRequired)

	_, _, err = fx.service.LoginAny(ctx, &usecase.LoginInput{Email: "a@example.com", Password: ""})
	assert.ErrorIs(t, err, domainerrors.ErrCredentialsRequired)
}

func TestAccountService_LoginAny_FindsLaterRole(t *testing.T) {
	fx := createTestAccountService(t, nil)
	ctx := context.Background()

	studentRepo := mockRepo.NewMockAccountRepository(t)
	facultyRepo := mockRepo.NewMockAccountRepository(t)

	stored := &entity.Account{Role: entity.RoleFaculty, Email: "prof@example.com", Password: "$2a$10$hash"}

	fx.store.EXPECT().ForRole(entity.RoleStudent).Return(studentRepo)
	studentRepo.EXPECT().FindByEmail(ctx, "prof@example.com").Return(nil, repository.ErrAccountNotFound)
	fx.store.EXPECT().ForRole(entity.RoleFaculty).Return(facultyRepo)
	facultyRepo.EXPECT().FindByEmail(ctx, "prof@example.com").Return(stored, nil)
	fx.codec.EXPECT().Verify("pw", "$2a$10$hash").Return(true)
	fx.recorder.EXPECT().Record(ctx, "prof@example.com", entity.RoleFaculty, entity.ActivityLogin)

	role, view, err := fx.service.LoginAny(ctx, &usecase.LoginInput{
		Email:    "prof@example.com",
		Password: "pw",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleFaculty, role)
	assert.Equal(t, "prof@example.com", view.Email)
}

// The probe stops at the first table holding the email: a wrong password
// there fails the whole login even if a later table would have matched.
func TestAccountService_LoginAny_StopsAtFirstEmailHit(t *testing.T) {
	fx := createTestAccountService(t, nil)
	ctx := context.Background()

	studentRepo := mockRepo.NewMockAccountRepository(t)
	stored := &entity.Account{Role: entity.RoleStudent, Email: "dup@example.com", Password: "$2a$10$student"}

	fx.store.EXPECT().ForRole(entity.RoleStudent).Return(studentRepo)
	studentRepo.EXPECT().FindByEmail(ctx, "dup@example.com").Return(stored, nil)
	fx.codec.EXPECT().Verify("faculty-pw", "$2a$10$student").Return(false)

	role, view, err := fx.service.LoginAny(ctx, &usecase.LoginInput{
		Email:    "dup@example.com",
		Password: "faculty-pw",
	})

	assert.Empty(t, role)
	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_LoginAny_NoTableHoldsEmail(t *testing.T) {
	fx := createTestAccountService(t, nil)
	ctx := context.Background()

	for _, role := range entity.AllRoles() {
		repo := mockRepo.NewMockAccountRepository(t)
		fx.store.EXPECT().ForRole(role).Return(repo)
		repo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrAccountNotFound)
	}

	_, _, err := fx.service.LoginAny(ctx, &usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "pw",
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_Update_MissingEmail(t *testing.T) {
	fx := createTestAccountService(t, nil)

	view, err := fx.service.Update(context.Background(), entity.RoleStudent, &usecase.UpdateInput{})

	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrEmailRequired)
}

func TestAccountService_Update_AccountNotFound(t *testing.T) {
	fx := createTestAccountService(t, nil)
	ctx := context.Background()
	repo := mockRepo.NewMockAccountRepository(t)

	fx.store.EXPECT().ForRole(entity.RoleTPO).Return(repo)
	repo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrAccountNotFound)

	_, err := fx.service.Update(ctx, entity.RoleTPO, &usecase.UpdateInput{Email: "ghost@example.com"})

	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}

func TestAccountService_Update_AppliesPartialFieldsIgnoresRoleAndAccessLevel(t *testing.T) {
	fx := createTestAccountService(t, nil)
	ctx := context.Background()
	repo := mockRepo.NewMockAccountRepository(t)

	stored := &entity.Account{
		ID:     uuid.New(),
		Role:   entity.RoleFaculty,
		Email:  "prof@example.com",
		Name:   "Old Name",
		Phone:  "111",
		Course: "Math",
	}

	name := "New Name"
	role := "admin"
	accessLevel := "Full"
	input := &usecase.UpdateInput{
		Email:       "prof@example.com",
		Name:        &name,
		Role:        &role,
		AccessLevel: &accessLevel,
	}

	var saved entity.Account

	fx.store.EXPECT().ForRole(entity.RoleFaculty).Return(repo)
	repo.EXPECT().FindByEmail(ctx, "prof@example.com").Return(stored, nil)
	repo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(_ context.Context, account *entity.Account) { saved = *account }).
		Return(nil)
	fx.recorder.EXPECT().Record(ctx, "prof@example.com", entity.RoleFaculty, entity.ActivityProfileUpdate)

	view, err := fx.service.Update(ctx, entity.RoleFaculty, input)

	require.NoError(t, err)
	assert.Equal(t, "New Name", saved.Name)
	assert.Equal(t, "111", saved.Phone)
	assert.Equal(t, entity.RoleFaculty, saved.Role)
	assert.Empty(t, saved.AccessLevel)
	assert.Equal(t, "New Name", view.Name)
	assert.Empty(t, view.AccessLevel)
}

func TestAccountService_Update_RehashesPassword(t *testing.T) {
	fx := createTestAccountService(t, nil)
	ctx := context.Background()
	repo := mockRepo.NewMockAccountRepository(t)

	stored := &entity.Account{Role: entity.RoleStudent, Email: "s@example.com", Password: "plain123"}

	newPassword := "fresh-pw"
	input := &usecase.UpdateInput{Email: "s@example.com", Password: &newPassword}

	var saved entity.Account

	fx.store.EXPECT().ForRole(entity.RoleStudent).Return(repo)
	repo.EXPECT().FindByEmail(ctx, "s@example.com").Return(stored, nil)
	fx.codec.EXPECT().Hash("fresh-pw").Return("$2a$10$fresh", nil)
	repo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(_ context.Context, account *entity.Account) { saved = *account }).
		Return(nil)
	fx.recorder.EXPECT().Record(ctx, "s@example.com", entity.RoleStudent, entity.ActivityProfileUpdate)

	_, err := fx.service.Update(ctx, entity.RoleStudent, input)

	require.NoError(t, err)
	assert.Equal(t, "$2a$10$fresh", saved.Password)
}

// An explicit empty password is stored verbatim, not hashed and not skipped.
// The emptied credential can no longer authenticate, since Verify rejects an
// empty stored value on both the bcrypt and the legacy path.
func TestAccountService_Update_EmptyPasswordStoredVerbatim(t *testing.T) {
	fx := createTestAccountService(t, nil)
	ctx := context.Background()
	repo := mockRepo.NewMockAccountRepository(t)

	stored := &entity.Account{Role: entity.RoleStudent, Email: "s@example.com", Password: "$2a$10$old"}

	empty := ""
	input := &usecase.UpdateInput{Email: "s@example.com", Password: &empty}

	var saved entity.Account

	fx.store.EXPECT().ForRole(entity.RoleStudent).Return(repo)
	repo.EXPECT().FindByEmail(ctx, "s@example.com").Return(stored, nil)
	repo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(_ context.Context, account *entity.Account) { saved = *account }).
		Return(nil)
	fx.recorder.EXPECT().Record(ctx, "s@example.com", entity.RoleStudent, entity.ActivityProfileUpdate)

	_, err := fx.service.Update(ctx, entity.RoleStudent, input)

	require.NoError(t, err)
	assert.Empty(t, saved.Password)
}

func TestAccountService_ForgotPassword_MissingEmail(t *testing.T) {
	fx := createTestAccountService(t, nil)

	output, err := fx.service.ForgotPassword(context.Background(), entity.RoleStudent, "")

	assert.ErrorIs(t, err, domainerrors.ErrResetEmailRequired)
	assert.Nil(t, output)
}

func TestAccountService_ForgotPassword_UnknownEmail(t *testing.T) {
	fx := createTestAccountService(t, nil)
	ctx := context.Background()
	repo := mockRepo.NewMockAccountRepository(t)

	fx.store.EXPECT().ForRole(entity.RoleStudent).Return(repo)
	repo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrAccountNotFound)

	output, err := fx.service.ForgotPassword(ctx, entity.RoleStudent, "ghost@example.com")

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrEmailUnknown)
}

func TestAccountService_ForgotPassword_UnconfiguredMailerDisclosesToken(t *testing.T) {
	fx := createTestAccountService(t, nil)
	ctx := context.Background()
	repo := mockRepo.NewMockAccountRepository(t)

	stored := &entity.Account{Role: entity.RoleStudent, Email: "s@example.com"}

	var saved entity.Account

	fx.store.EXPECT().ForRole(entity.RoleStudent).Return(repo)
	repo.EXPECT().FindByEmail(ctx, "s@example.com").Return(stored, nil)
	fx.tokens.EXPECT().Generate().Return("raw-token", "digest-value", nil)
	repo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(_ context.Context, account *entity.Account) { saved = *account }).
		Return(nil)
	fx.mailer.EXPECT().Configured().Return(false)

	output, err := fx.service.ForgotPassword(ctx, entity.RoleStudent, "s@example.com")

	require.NoError(t, err)
	assert.True(t, output.Disclosed)
	assert.Equal(t, "raw-token", output.ResetToken)
	assert.Equal(t, "Reset token generated (dev)", output.Message)

	// Only the digest is ever stored.
	assert.Equal(t, "digest-value", saved.ResetPasswordToken)
	require.NotNil(t, saved.ResetPasswordExpire)
	assert.WithinDuration(t, time.Now().Add(time.Hour), *saved.ResetPasswordExpire, 5*time.Second)
}

func TestAccountService_ForgotPassword_ProductionSendsWithoutDisclosure(t *testing.T) {
	cfg := &config.Config{
		Auth:      &config.AuthConfig{ResetTokenTTL: time.Hour},
		ClientURL: "https://placements.example.edu",
	}
	cfg.Env.Env = "production"

	fx := createTestAccountService(t, cfg)
	ctx := context.Background()
	repo := mockRepo.NewMockAccountRepository(t)

	stored := &entity.Account{Role: entity.RoleAdmin, Email: "root@example.com"}

	var sent service.MailMessage

	fx.store.EXPECT().ForRole(entity.RoleAdmin).Return(repo)
	repo.EXPECT().FindByEmail(ctx, "root@example.com").Return(stored, nil)
	fx.tokens.EXPECT().Generate().Return("raw-token", "digest-value", nil)
	repo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.Account")).Return(nil)
	fx.mailer.EXPECT().Configured().Return(true)
	fx.mailer.EXPECT().Send(ctx, mock.AnythingOfType("service.MailMessage")).
		Run(func(_ context.Context, msg service.MailMessage) { sent = msg }).
		Return(nil)

	output, err := fx.service.ForgotPassword(ctx, entity.RoleAdmin, "root@example.com")

	require.NoError(t, err)
	assert.False(t, output.Disclosed)
	assert.Empty(t, output.ResetToken)
	assert.Equal(t, "Reset token sent", output.Message)

	assert.Equal(t, "root@example.com", sent.To)
	assert.Contains(t, sent.Text, "https://placements.example.edu/reset-password/raw-token")
}

func TestAccountService_ForgotPassword_MailFailureRollsBackToken(t *testing.T) {
	cfg := &config.Config{
		Auth:      &config.AuthConfig{ResetTokenTTL: time.Hour},
		ClientURL: "https://placements.example.edu",
	}
	cfg.Env.Env = "production"

	fx := createTestAccountService(t, cfg)
	ctx := context.Background()
	repo := mockRepo.NewMockAccountRepository(t)

	stored := &entity.Account{Role: entity.RoleStudent, Email: "s@example.com"}

	var saves []entity.Account

	fx.store.EXPECT().ForRole(entity.RoleStudent).Return(repo)
	repo.EXPECT().FindByEmail(ctx, "s@example.com").Return(stored, nil)
	fx.tokens.EXPECT().Generate().Return("raw-token", "digest-value", nil)
	repo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(_ context.Context, account *entity.Account) { saves = append(saves, *account) }).
		Return(nil)
	fx.mailer.EXPECT().Configured().Return(true)
	fx.mailer.EXPECT().Send(ctx, mock.AnythingOfType("service.MailMessage")).
		Return(assert.AnError)

	output, err := fx.service.ForgotPassword(ctx, entity.RoleStudent, "s@example.com")

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrMailDispatchFailed)

	// First save stores the pair, second save is the compensating rollback.
	require.Len(t, saves, 2)
	assert.Equal(t, "digest-value", saves[0].ResetPasswordToken)
	assert.Empty(t, saves[1].ResetPasswordToken)
	assert.Nil(t, saves[1].ResetPasswordExpire)
}

func TestAccountService_ResetPassword_MissingInputs(t *testing.T) {
	fx := createTestAccountService(t, nil)
	ctx := context.Background()

	err := fx.service.ResetPassword(ctx, entity.RoleStudent, "", "new-pw")
	assert.ErrorIs(t, err, domainerrors.ErrResetTokenRequired)

	err = fx.service.ResetPassword(ctx, entity.RoleStudent, "raw-token", "")
	assert.ErrorIs(t, err, domainerrors.ErrPasswordRequired)
}

func TestAccountService_ResetPassword_InvalidOrExpiredToken(t *testing.T) {
	fx := createTestAccountService(t, nil)
	ctx := context.Background()
	repo := mockRepo.NewMockAccountRepository(t)

	fx.store.EXPECT().ForRole(entity.RoleStudent).Return(repo)
	fx.tokens.EXPECT().Digest("raw-token").Return("digest-value")
	repo.EXPECT().FindByResetDigest(ctx, "digest-value", mock.AnythingOfType("time.Time")).
		Return(nil, repository.ErrAccountNotFound)

	err := fx.service.ResetPassword(ctx, entity.RoleStudent, "raw-token", "new-pw")

	assert.ErrorIs(t, err, domainerrors.ErrResetTokenInvalid)
}

func TestAccountService_ResetPassword_Success(t *testing.T) {
	fx := createTestAccountService(t, nil)
	ctx := context.Background()
	repo := mockRepo.NewMockAccountRepository(t)

	expire := time.Now().Add(30 * time.Minute)
	stored := &entity.Account{
		Role:                entity.RoleStudent,
		Email:               "s@example.com",
		Password:            "$2a$10$old",
		ResetPasswordToken:  "digest-value",
		ResetPasswordExpire: &expire,
	}

	var saved entity.Account

	fx.store.EXPECT().ForRole(entity.RoleStudent).Return(repo)
	fx.tokens.EXPECT().Digest("raw-token").Return("digest-value")
	repo.EXPECT().FindByResetDigest(ctx, "digest-value", mock.AnythingOfType("time.Time")).
		Return(stored, nil)
	fx.codec.EXPECT().Hash("new-pw").Return("$2a$10$new", nil)
	repo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(_ context.Context, account *entity.Account) { saved = *account }).
		Return(nil)
	fx.recorder.EXPECT().Record(ctx, "s@example.com", entity.RoleStudent, entity.ActivityProfileUpdate)

	err := fx.service.ResetPassword(ctx, entity.RoleStudent, "raw-token", "new-pw")

	require.NoError(t, err)
	assert.Equal(t, "$2a$10$new", saved.Password)
	assert.Empty(t, saved.ResetPasswordToken)
	assert.Nil(t, saved.ResetPasswordExpire)
}
