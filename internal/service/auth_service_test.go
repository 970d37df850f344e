package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/sunday-school-service/internal/auth"
	"github.com/spec-kit/sunday-school-service/internal/domain"
	"github.com/spec-kit/sunday-school-service/internal/repository/repofakes"
	"github.com/spec-kit/sunday-school-service/internal/service"
	apperrors "github.com/spec-kit/sunday-school-service/pkg/util"
)

type authFixture struct {
	svc     *service.AuthService
	tokens  *auth.TokenManager
	members *repofakes.FakeMemberRepo
	revoked *repofakes.FakeRevocationStore
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	tokens, err := auth.NewTokenManager("test-secret", time.Hour)
	require.NoError(t, err)

	members := repofakes.NewFakeMemberRepo()
	revoked := repofakes.NewFakeRevocationStore()
	svc := service.NewAuthService(service.AuthDependencies{
		MemberRepo:      members,
		RevocationStore: revoked,
		TokenManager:    tokens,
		BcryptCost:      4,
	})
	return &authFixture{svc: svc, tokens: tokens, members: members, revoked: revoked}
}

func validRegisterInput() service.RegisterInput {
	return service.RegisterInput{
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

func requireDomainError(t *testing.T, err error, status int) *apperrors.DomainError {
	t.Helper()

	require.Error(t, err)
	de := apperrors.ToDomainError(err)
	require.Equal(t, status, de.HTTPStatus)
	return de
}

func TestRegisterCreatesActiveUser(t *testing.T) {
	f := newAuthFixture(t)

	member, token, exp, err := f.svc.Register(context.Background(), validRegisterInput())
	require.NoError(t, err)
	require.NotEmpty(t, member.ID)
	require.Equal(t, domain.RoleUser, member.Role)
	require.Equal(t, domain.MemberStatusActive, member.Status)
	require.NotEqual(t, "secret123", member.PasswordHash)
	require.NoError(t, auth.ComparePassword(member.PasswordHash, "secret123"))
	require.Equal(t, domain.MarriageSingle, member.MarriageStatus)
	require.Equal(t, "Ethiopia", member.Country)
	require.True(t, exp.After(time.Now()))

	claims, err := f.tokens.Verify(token)
	require.NoError(t, err)
	require.Equal(t, member.ID, claims.Subject)
	require.Equal(t, member.Email, claims.Email)
}

func TestRegisterValidation(t *testing.T) {
	f := newAuthFixture(t)

	in := validRegisterInput()
	in.Email = ""
	in.Password = ""
	in.Sex = "other"

	_, _, _, err := f.svc.Register(context.Background(), in)
	de := requireDomainError(t, err, 400)
	require.Contains(t, de.Details, "email")
	require.Contains(t, de.Details, "password")
	require.Contains(t, de.Details, "sex")

	all, listErr := f.members.List(context.Background())
	require.NoError(t, listErr)
	require.Empty(t, all)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	f := newAuthFixture(t)

	_, _, _, err := f.svc.Register(context.Background(), validRegisterInput())
	require.NoError(t, err)

	dup := validRegisterInput()
	dup.StudentID = "SS-1002"
	dup.NationalID = "NID-1002"
	_, _, _, err = f.svc.Register(context.Background(), dup)
	de := requireDomainError(t, err, 409)
	require.Equal(t, "Email already exists", de.Message)

	all, listErr := f.members.List(context.Background())
	require.NoError(t, listErr)
	require.Len(t, all, 1)
}

func TestRegisterDuplicateStudentID(t *testing.T) {
	f := newAuthFixture(t)

	_, _, _, err := f.svc.Register(context.Background(), validRegisterInput())
	require.NoError(t, err)

	dup := validRegisterInput()
	dup.Email = "other@example.com"
	dup.NationalID = "NID-1002"
	_, _, _, err = f.svc.Register(context.Background(), dup)
	de := requireDomainError(t, err, 409)
	require.Equal(t, "Student ID already exists", de.Message)
}

func TestLoginHappyPath(t *testing.T) {
	f := newAuthFixture(t)

	registered, _, _, err := f.svc.Register(context.Background(), validRegisterInput())
	require.NoError(t, err)

	member, token, _, err := f.svc.Login(context.Background(), "abebe@example.com", "secret123")
	require.NoError(t, err)
	require.Equal(t, registered.ID, member.ID)
	require.NotNil(t, member.LastLogin)
	require.NotEmpty(t, token)

	stored, err := f.members.GetByID(context.Background(), member.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.LastLogin)
}

func TestLoginRejectionsAreIndistinguishable(t *testing.T) {
	f := newAuthFixture(t)

	_, _, _, err := f.svc.Register(context.Background(), validRegisterInput())
	require.NoError(t, err)

	_, _, _, wrongPassword := f.svc.Login(context.Background(), "abebe@example.com", "wrong-password")
	_, _, _, unknownEmail := f.svc.Login(context.Background(), "nobody@example.com", "secret123")

	wrongDE := requireDomainError(t, wrongPassword, 401)
	unknownDE := requireDomainError(t, unknownEmail, 401)
	require.Equal(t, wrongDE.Message, unknownDE.Message)
	require.Equal(t, wrongDE.Code, unknownDE.Code)
}

func TestLoginMissingCredentials(t *testing.T) {
	f := newAuthFixture(t)

	_, _, _, err := f.svc.Login(context.Background(), "", "")
	requireDomainError(t, err, 400)
}

func TestLoginDeactivatedAccount(t *testing.T) {
	f := newAuthFixture(t)

	member, _, _, err := f.svc.Register(context.Background(), validRegisterInput())
	require.NoError(t, err)

	member.Status = domain.MemberStatusInactive
	require.NoError(t, f.members.Update(context.Background(), member))

	_, _, _, err = f.svc.Login(context.Background(), "abebe@example.com", "secret123")
	de := requireDomainError(t, err, 401)
	require.Equal(t, "Invalid email or password", de.Message)
}

func TestLogoutRevokesToken(t *testing.T) {
	f := newAuthFixture(t)

	_, token, _, err := f.svc.Register(context.Background(), validRegisterInput())
	require.NoError(t, err)

	require.NoError(t, f.svc.Logout(context.Background(), token))

	claims, err := f.tokens.Verify(token)
	require.NoError(t, err)
	revoked, err := f.revoked.IsRevoked(context.Background(), claims.ID)
	require.NoError(t, err)
	require.True(t, revoked)
}

func TestLogoutToleratesGarbage(t *testing.T) {
	f := newAuthFixture(t)

	require.NoError(t, f.svc.Logout(context.Background(), ""))
	require.NoError(t, f.svc.Logout(context.Background(), "not-a-token"))
	require.Zero(t, f.revoked.Len())
}

func TestChangePassword(t *testing.T) {
	f := newAuthFixture(t)

	member, _, _, err := f.svc.Register(context.Background(), validRegisterInput())
	require.NoError(t, err)

	_, _, err = f.svc.ChangePassword(context.Background(), member.ID, "wrong", "newsecret456")
	de := requireDomainError(t, err, 400)
	require.Equal(t, "Current password is incorrect", de.Message)

	token, _, err := f.svc.ChangePassword(context.Background(), member.ID, "secret123", "newsecret456")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	_, _, _, err = f.svc.Login(context.Background(), "abebe@example.com", "secret123")
	requireDomainError(t, err, 401)

	_, _, _, err = f.svc.Login(context.Background(), "abebe@example.com", "newsecret456")
	require.NoError(t, err)
}

func TestUpdateMeAppliesOnlyProfileFields(t *testing.T) {
	f := newAuthFixture(t)

	member, _, _, err := f.svc.Register(context.Background(), validRegisterInput())
	require.NoError(t, err)

	first := "Almaz"
	occupation := "Student"
	updated, err := f.svc.UpdateMe(context.Background(), member.ID, service.UpdateMeInput{
		FirstName:  &first,
		Occupation: &occupation,
	})
	require.NoError(t, err)
	require.Equal(t, "Almaz", updated.FirstName)
	require.Equal(t, "Student", updated.Occupation)

	stored, err := f.members.GetByID(context.Background(), member.ID)
	require.NoError(t, err)
	require.Equal(t, "Almaz", stored.FirstName)
	require.Equal(t, member.Email, stored.Email)
	require.Equal(t, member.StudentID, stored.StudentID)
	require.Equal(t, domain.RoleUser, stored.Role)
	require.Equal(t, member.PasswordHash, stored.PasswordHash)
}

func TestMeVanishedMember(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.svc.Me(context.Background(), "member-404")
	requireDomainError(t, err, 404)
}
