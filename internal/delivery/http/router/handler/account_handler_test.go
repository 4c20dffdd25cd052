package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"placement/internal/delivery/http/middleware"
	"placement/internal/domain/entity"
	domainerrors "placement/internal/domain/errors"
	mockUsecase "placement/internal/mocks/usecase"
	"placement/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// handlerFixtures wires an echo instance with the production error handler
// so status codes and body shapes are asserted end to end.
type handlerFixtures struct {
	echo *echo.Echo
	uc   *mockUsecase.MockAccountUsecase
}

func createTestHandler(t *testing.T) handlerFixtures {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	uc := mockUsecase.NewMockAccountUsecase(t)
	h := NewAccountHandler(uc, logger)

	e := echo.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	e.GET("/health", HealthCheck)
	e.POST("/api/login", h.LoginAny)
	for _, role := range entity.AllRoles() {
		group := e.Group("/api/" + role.PathName())
		group.POST("/register", h.Register(role))
		group.POST("/login", h.Login(role))
		group.POST("/update", h.Update(role))
		group.POST("/forgot", h.ForgotPassword(role))
		group.POST("/reset/:token", h.ResetPassword(role))
	}

	return handlerFixtures{echo: e, uc: uc}
}

func performJSON(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestAccountHandler_Register_Success(t *testing.T) {
	fx := createTestHandler(t)

	view := &usecase.AccountView{
		ID:    "11111111-1111-1111-1111-111111111111",
		Role:  "student",
		Email: "asha@example.com",
		Name:  "Asha",
	}

	fx.uc.EXPECT().
		Register(mock.Anything, entity.RoleStudent, mock.MatchedBy(func(input *usecase.RegisterInput) bool {
			return input.Email == "asha@example.com" && input.Password == "pw123"
		})).
		Return(view, nil)

	rec := performJSON(t, fx.echo, http.MethodPost, "/api/students/register",
		`{"name":"Asha","email":"asha@example.com","password":"pw123"}`)

	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Registration successful", body["message"])

	student, ok := body["student"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "asha@example.com", student["email"])
	assert.Equal(t, "student", student["role"])

	// The stored credential never leaves the server.
	_, leaked := student["password"]
	assert.False(t, leaked)
}

func TestAccountHandler_Register_EmailInUse(t *testing.T) {
	fx := createTestHandler(t)

	fx.uc.EXPECT().
		Register(mock.Anything, entity.RoleFaculty, mock.AnythingOfType("*usecase.RegisterInput")).
		Return(nil, domainerrors.ErrEmailInUse)

	rec := performJSON(t, fx.echo, http.MethodPost, "/api/faculty/register",
		`{"email":"taken@example.com","password":"pw"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Email already in use", body["message"])
	assert.Contains(t, body, "error")
}

func TestAccountHandler_Register_MalformedBody(t *testing.T) {
	fx := createTestHandler(t)

	rec := performJSON(t, fx.echo, http.MethodPost, "/api/students/register", `{"email":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Invalid request payload", body["message"])
}

func TestAccountHandler_Login_Success(t *testing.T) {
	fx := createTestHandler(t)

	view := &usecase.AccountView{Role: "admin", Email: "root@example.com"}

	fx.uc.EXPECT().
		Login(mock.Anything, entity.RoleAdmin, mock.MatchedBy(func(input *usecase.LoginInput) bool {
			return input.Email == "root@example.com"
		})).
		Return(view, nil)

	rec := performJSON(t, fx.echo, http.MethodPost, "/api/admin/login",
		`{"email":"root@example.com","password":"pw"}`)

	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Login successful", body["message"])
	admin, ok := body["admin"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "root@example.com", admin["email"])
}

func TestAccountHandler_Login_InvalidCredentials(t *testing.T) {
	fx := createTestHandler(t)

	fx.uc.EXPECT().
		Login(mock.Anything, entity.RoleStudent, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, domainerrors.ErrInvalidCredentials)

	rec := performJSON(t, fx.echo, http.MethodPost, "/api/students/login",
		`{"email":"s@example.com","password":"bad"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Invalid credentials", body["message"])
}

func TestAccountHandler_LoginAny_Success(t *testing.T) {
	fx := createTestHandler(t)

	view := &usecase.AccountView{Role: "tpo", Email: "tpo@example.com"}

	fx.uc.EXPECT().
		LoginAny(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(entity.RoleTPO, view, nil)

	rec := performJSON(t, fx.echo, http.MethodPost, "/api/login",
		`{"email":"tpo@example.com","password":"pw"}`)

	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Login successful", body["message"])
	assert.Equal(t, "tpo", body["role"])
	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "tpo@example.com", user["email"])
}

func TestAccountHandler_LoginAny_MissingCredentials(t *testing.T) {
	fx := createTestHandler(t)

	fx.uc.EXPECT().
		LoginAny(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(entity.Role(""), nil, domainerrors.ErrCredentialsRequired)

	rec := performJSON(t, fx.echo, http.MethodPost, "/api/login", `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Email and password are required", body["message"])
}

func TestAccountHandler_Update_Success(t *testing.T) {
	fx := createTestHandler(t)

	view := &usecase.AccountView{Role: "faculty", Email: "prof@example.com", Name: "New Name"}

	fx.uc.EXPECT().
		Update(mock.Anything, entity.RoleFaculty, mock.MatchedBy(func(input *usecase.UpdateInput) bool {
			return input.Email == "prof@example.com" && input.Name != nil && *input.Name == "New Name"
		})).
		Return(view, nil)

	rec := performJSON(t, fx.echo, http.MethodPost, "/api/faculty/update",
		`{"email":"prof@example.com","name":"New Name"}`)

	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Changes Saved", body["message"])
	faculty, ok := body["faculty"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "New Name", faculty["name"])
}

func TestAccountHandler_Update_MissingEmail(t *testing.T) {
	fx := createTestHandler(t)

	fx.uc.EXPECT().
		Update(mock.Anything, entity.RoleStudent, mock.AnythingOfType("*usecase.UpdateInput")).
		Return(nil, domainerrors.ErrEmailRequired)

	rec := performJSON(t, fx.echo, http.MethodPost, "/api/students/update", `{"name":"x"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Email is required to identify the user", body["message"])
}

func TestAccountHandler_ForgotPassword_DisclosesTokenInDev(t *testing.T) {
	fx := createTestHandler(t)

	fx.uc.EXPECT().
		ForgotPassword(mock.Anything, entity.RoleStudent, "s@example.com").
		Return(&usecase.ForgotPasswordOutput{
			Message:    "Reset token generated (dev)",
			ResetToken: "raw-token",
			Disclosed:  true,
		}, nil)

	rec := performJSON(t, fx.echo, http.MethodPost, "/api/students/forgot",
		`{"email":"s@example.com"}`)

	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Reset token generated (dev)", body["message"])
	assert.Equal(t, "raw-token", body["resetToken"])
}

func TestAccountHandler_ForgotPassword_NoDisclosureInProduction(t *testing.T) {
	fx := createTestHandler(t)

	fx.uc.EXPECT().
		ForgotPassword(mock.Anything, entity.RoleAdmin, "root@example.com").
		Return(&usecase.ForgotPasswordOutput{Message: "Reset token sent"}, nil)

	rec := performJSON(t, fx.echo, http.MethodPost, "/api/admin/forgot",
		`{"email":"root@example.com"}`)

	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Reset token sent", body["message"])
	_, present := body["resetToken"]
	assert.False(t, present)
}

func TestAccountHandler_ForgotPassword_UnknownEmail(t *testing.T) {
	fx := createTestHandler(t)

	fx.uc.EXPECT().
		ForgotPassword(mock.Anything, entity.RoleTPO, "ghost@example.com").
		Return(nil, domainerrors.ErrEmailUnknown)

	rec := performJSON(t, fx.echo, http.MethodPost, "/api/tpo/forgot",
		`{"email":"ghost@example.com"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "No user with that email", body["message"])
}

func TestAccountHandler_ResetPassword_Success(t *testing.T) {
	fx := createTestHandler(t)

	fx.uc.EXPECT().
		ResetPassword(mock.Anything, entity.RoleStudent, "raw-token", "new-pw").
		Return(nil)

	rec := performJSON(t, fx.echo, http.MethodPost, "/api/students/reset/raw-token",
		`{"password":"new-pw"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Password reset successful", body["message"])
}

func TestAccountHandler_ResetPassword_InvalidToken(t *testing.T) {
	fx := createTestHandler(t)

	fx.uc.EXPECT().
		ResetPassword(mock.Anything, entity.RoleStudent, "stale-token", "new-pw").
		Return(domainerrors.ErrResetTokenInvalid)

	rec := performJSON(t, fx.echo, http.MethodPost, "/api/students/reset/stale-token",
		`{"password":"new-pw"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Invalid or expired token", body["message"])
}

// Empty bodies skip binding entirely, so the handlers must hand the usecase
// a zero-value input rather than a nil pointer. Each case asserts the
// request survives to the usecase and comes back as the validation failure
// the operation defines, never as a recovered 500.
func TestAccountHandler_EmptyBody_TreatedAsEmptyPayload(t *testing.T) {
	fx := createTestHandler(t)

	fx.uc.EXPECT().
		Register(mock.Anything, entity.RoleStudent, mock.MatchedBy(func(input *usecase.RegisterInput) bool {
			return input != nil && input.Email == ""
		})).
		Return(nil, domainerrors.ErrRegistrationFailed)
	rec := performJSON(t, fx.echo, http.MethodPost, "/api/students/register", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Registration failed", decodeBody(t, rec)["message"])

	fx.uc.EXPECT().
		Login(mock.Anything, entity.RoleStudent, mock.MatchedBy(func(input *usecase.LoginInput) bool {
			return input != nil && input.Email == ""
		})).
		Return(nil, domainerrors.ErrInvalidCredentials)
	rec = performJSON(t, fx.echo, http.MethodPost, "/api/students/login", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid credentials", decodeBody(t, rec)["message"])

	fx.uc.EXPECT().
		LoginAny(mock.Anything, mock.MatchedBy(func(input *usecase.LoginInput) bool {
			return input != nil && input.Email == ""
		})).
		Return(entity.Role(""), nil, domainerrors.ErrCredentialsRequired)
	rec = performJSON(t, fx.echo, http.MethodPost, "/api/login", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Email and password are required", decodeBody(t, rec)["message"])

	fx.uc.EXPECT().
		Update(mock.Anything, entity.RoleStudent, mock.MatchedBy(func(input *usecase.UpdateInput) bool {
			return input != nil && input.Email == ""
		})).
		Return(nil, domainerrors.ErrEmailRequired)
	rec = performJSON(t, fx.echo, http.MethodPost, "/api/students/update", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Email is required to identify the user", decodeBody(t, rec)["message"])
}

func TestHealthCheck(t *testing.T) {
	fx := createTestHandler(t)

	rec := performJSON(t, fx.echo, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "ok", body["status"])
}
