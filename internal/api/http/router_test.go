package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/sunday-school-service/internal/api/dto"
	transport "github.com/spec-kit/sunday-school-service/internal/api/http"
	"github.com/spec-kit/sunday-school-service/internal/api/http/handlers"
	"github.com/spec-kit/sunday-school-service/internal/auth"
	"github.com/spec-kit/sunday-school-service/internal/domain"
	"github.com/spec-kit/sunday-school-service/internal/observability"
	"github.com/spec-kit/sunday-school-service/internal/repository/repofakes"
	"github.com/spec-kit/sunday-school-service/internal/service"
)

type apiFixture struct {
	app     *fiber.App
	tokens  *auth.TokenManager
	members *repofakes.FakeMemberRepo
	revoked *repofakes.FakeRevocationStore
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	tokens, err := auth.NewTokenManager("test-secret", time.Hour)
	require.NoError(t, err)

	members := repofakes.NewFakeMemberRepo()
	revoked := repofakes.NewFakeRevocationStore()
	posts := repofakes.NewFakePostRepo()
	comments := repofakes.NewFakeCommentRepo()
	assets := repofakes.NewFakeAssetRepo()
	logger := zap.NewNop()

	authSvc := service.NewAuthService(service.AuthDependencies{
		MemberRepo:      members,
		RevocationStore: revoked,
		TokenManager:    tokens,
		BcryptCost:      4,
	})

	app := fiber.New()
	transport.RegisterMiddlewares(app, logger, observability.NewMetrics(), 5*time.Second)
	transport.RegisterRoutes(app, transport.RouteConfig{
		Health:         handlers.NewHealthHandler("sunday-school-service", "test", nil, nil),
		Auth:           handlers.NewAuthHandler(authSvc, false),
		Members:        handlers.NewMembersHandler(service.NewMemberService(members, 4)),
		Assets:         handlers.NewAssetsHandler(service.NewAssetService(assets)),
		Posts:          handlers.NewPostsHandler(service.NewPostService(posts, comments, nil)),
		Comments:       handlers.NewCommentsHandler(service.NewPostService(posts, comments, nil)),
		AuthMiddleware: auth.NewMiddleware(tokens, members, revoked, logger),
	})

	return &apiFixture{app: app, tokens: tokens, members: members, revoked: revoked}
}

func (f *apiFixture) do(t *testing.T, method, path, token string, payload any) (*http.Response, map[string]any) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: token})
	}

	resp, err := f.app.Test(req, 10000)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	parsed := map[string]any{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &parsed))
	}
	return resp, parsed
}

func registerPayload() dto.RegisterRequest {
	return dto.RegisterRequest{
		StudentID:         "SS-1001",
		Email:             "abebe@example.com",
		Password:          "secret123",
		FirstName:         "Abebe",
		LastName:          "Kebede",
		Sex:               domain.SexMale,
		PhoneNumber:       "+251911000000",
		DateOfBirth:       time.Date(2005, time.March, 12, 0, 0, 0, 0, time.UTC),
		NationalID:        "NID-1001",
		Region:            "Addis Ababa",
		Church:            "Medhanealem",
		ParentStatus:      domain.ParentBoth,
		ParentFullName:    "Kebede Alemu",
		ParentPhoneNumber: "+251911000001",
	}
}

func sessionCookie(resp *http.Response) *http.Cookie {
	for _, cookie := range resp.Cookies() {
		if cookie.Name == auth.SessionCookieName {
			return cookie
		}
	}
	return nil
}

func (f *apiFixture) register(t *testing.T) (string, map[string]any) {
	t.Helper()

	resp, body := f.do(t, http.MethodPost, "/api/sunday-school/auth/register", "", registerPayload())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	cookie := sessionCookie(resp)
	require.NotNil(t, cookie)
	return cookie.Value, body
}

func TestRegisterSetsSessionCookie(t *testing.T) {
	f := newAPIFixture(t)

	resp, body := f.do(t, http.MethodPost, "/api/sunday-school/auth/register", "", registerPayload())
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	cookie := sessionCookie(resp)
	require.NotNil(t, cookie)
	require.NotEmpty(t, cookie.Value)
	require.True(t, cookie.HttpOnly)

	require.Equal(t, "success", body["status"])
	require.Equal(t, cookie.Value, body["token"])

	user := body["data"].(map[string]any)["user"].(map[string]any)
	require.Equal(t, "abebe@example.com", user["email"])
	require.NotContains(t, user, "password")
	require.NotContains(t, user, "passwordHash")
}

func TestRegisterValidationFailure(t *testing.T) {
	f := newAPIFixture(t)

	payload := registerPayload()
	payload.Email = ""
	payload.Password = ""

	resp, body := f.do(t, http.MethodPost, "/api/sunday-school/auth/register", "", payload)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	errObj := body["error"].(map[string]any)
	require.Equal(t, "VALIDATION_FAILED", errObj["code"])
	details := errObj["details"].(map[string]any)
	require.Contains(t, details, "email")
	require.Contains(t, details, "password")
}

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	f := newAPIFixture(t)
	f.register(t)

	dup := registerPayload()
	dup.StudentID = "SS-1002"
	dup.NationalID = "NID-1002"

	resp, body := f.do(t, http.MethodPost, "/api/sunday-school/auth/register", "", dup)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	require.Equal(t, "Email already exists", body["error"].(map[string]any)["message"])
}

func TestLoginRejectionsAreUniform(t *testing.T) {
	f := newAPIFixture(t)
	f.register(t)

	respWrong, bodyWrong := f.do(t, http.MethodPost, "/api/sunday-school/auth/login", "",
		dto.LoginRequest{Email: "abebe@example.com", Password: "wrong"})
	respUnknown, bodyUnknown := f.do(t, http.MethodPost, "/api/sunday-school/auth/login", "",
		dto.LoginRequest{Email: "nobody@example.com", Password: "secret123"})

	require.Equal(t, http.StatusUnauthorized, respWrong.StatusCode)
	require.Equal(t, http.StatusUnauthorized, respUnknown.StatusCode)
	require.Equal(t, bodyWrong, bodyUnknown)
	require.Nil(t, sessionCookie(respWrong))
}

func TestMeRequiresCookie(t *testing.T) {
	f := newAPIFixture(t)
	token, _ := f.register(t)

	resp, _ := f.do(t, http.MethodGet, "/api/sunday-school/auth/me", "", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, body := f.do(t, http.MethodGet, "/api/sunday-school/auth/me", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	user := body["data"].(map[string]any)["user"].(map[string]any)
	require.Equal(t, "abebe@example.com", user["email"])
}

func TestUpdateMeIgnoresRestrictedFields(t *testing.T) {
	f := newAPIFixture(t)
	token, _ := f.register(t)

	payload := map[string]any{
		"firstName":  "Almaz",
		"email":      "hijack@example.com",
		"studentId":  "SS-9999",
		"nationalId": "NID-9999",
		"role":       "admin",
		"password":   "hijacked",
	}
	resp, body := f.do(t, http.MethodPatch, "/api/sunday-school/auth/update-me", token, payload)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	user := body["data"].(map[string]any)["user"].(map[string]any)
	require.Equal(t, "Almaz", user["firstName"])
	require.Equal(t, "abebe@example.com", user["email"])
	require.Equal(t, "user", user["role"])

	// original password still works, so the hash was untouched
	respLogin, _ := f.do(t, http.MethodPost, "/api/sunday-school/auth/login", "",
		dto.LoginRequest{Email: "abebe@example.com", Password: "secret123"})
	require.Equal(t, http.StatusOK, respLogin.StatusCode)
}

func TestChangePasswordFlow(t *testing.T) {
	f := newAPIFixture(t)
	token, _ := f.register(t)

	resp, body := f.do(t, http.MethodPatch, "/api/sunday-school/auth/change-password", token,
		dto.ChangePasswordRequest{CurrentPassword: "wrong", NewPassword: "newsecret456"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "Current password is incorrect", body["error"].(map[string]any)["message"])

	resp, body = f.do(t, http.MethodPatch, "/api/sunday-school/auth/change-password", token,
		dto.ChangePasswordRequest{CurrentPassword: "secret123", NewPassword: "newsecret456"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, body["token"])
	require.NotNil(t, sessionCookie(resp))

	respOld, _ := f.do(t, http.MethodPost, "/api/sunday-school/auth/login", "",
		dto.LoginRequest{Email: "abebe@example.com", Password: "secret123"})
	require.Equal(t, http.StatusUnauthorized, respOld.StatusCode)

	respNew, _ := f.do(t, http.MethodPost, "/api/sunday-school/auth/login", "",
		dto.LoginRequest{Email: "abebe@example.com", Password: "newsecret456"})
	require.Equal(t, http.StatusOK, respNew.StatusCode)
}

func TestLogoutRevokesSession(t *testing.T) {
	f := newAPIFixture(t)
	token, _ := f.register(t)

	resp, body := f.do(t, http.MethodPost, "/api/sunday-school/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "success", body["status"])

	cleared := sessionCookie(resp)
	require.NotNil(t, cleared)
	require.Empty(t, cleared.Value)

	// the revoked token no longer opens the gate even before expiry
	resp, _ = f.do(t, http.MethodGet, "/api/sunday-school/auth/me", token, nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestUsersRouteIsAdminOnly(t *testing.T) {
	f := newAPIFixture(t)
	token, _ := f.register(t)

	resp, _ := f.do(t, http.MethodGet, "/api/sunday-school/users/", token, nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	member, err := f.members.GetByEmail(context.Background(), "abebe@example.com")
	require.NoError(t, err)
	member.Role = domain.RoleAdmin
	require.NoError(t, f.members.Update(context.Background(), member))

	resp, _ = f.do(t, http.MethodGet, "/api/sunday-school/users/", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHealthLive(t *testing.T) {
	f := newAPIFixture(t)

	resp, body := f.do(t, http.MethodGet, "/health/live", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "sunday-school-service", body["service"])
}
