package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/sunday-school-service/internal/auth"
	"github.com/spec-kit/sunday-school-service/internal/domain"
	"github.com/spec-kit/sunday-school-service/internal/events"
	"github.com/spec-kit/sunday-school-service/internal/repository"
	apperrors "github.com/spec-kit/sunday-school-service/pkg/util"
)

const msgBadCredentials = "Invalid email or password"

// AuthService coordinates registration, login and password flows.
type AuthService struct {
	members    repository.MemberRepository
	revocation repository.RevocationStore
	tokens     *auth.TokenManager
	dispatcher events.Dispatcher
	bcryptCost int
}

// AuthDependencies encapsulates requirements for the auth service.
type AuthDependencies struct {
	MemberRepo      repository.MemberRepository
	RevocationStore repository.RevocationStore
	TokenManager    *auth.TokenManager
	Dispatcher      events.Dispatcher
	BcryptCost      int
}

// NewAuthService builds the service.
func NewAuthService(deps AuthDependencies) *AuthService {
	return &AuthService{
		members:    deps.MemberRepo,
		revocation: deps.RevocationStore,
		tokens:     deps.TokenManager,
		dispatcher: deps.Dispatcher,
		bcryptCost: deps.BcryptCost,
	}
}

// RegisterInput carries the registration payload. Role and status are not
// accepted from callers: new accounts are always active users.
type RegisterInput struct {
	StudentID         string
	Email             string
	Password          string
	FirstName         string
	MiddleName        string
	LastName          string
	Sex               domain.Sex
	PhoneNumber       string
	Disability        bool
	DisabilityType    string
	DateOfBirth       time.Time
	NationalID        string
	Occupation        string
	MarriageStatus    domain.MarriageStatus
	Country           string
	Region            string
	Zone              string
	Woreda            string
	Church            string
	ParentStatus      domain.ParentStatus
	ParentFullName    string
	ParentEmail       string
	ParentPhoneNumber string
	Avatar            string
}

func (in *RegisterInput) validate() error {
	details := map[string]any{}
	required := map[string]string{
		"studentId":         in.StudentID,
		"email":             in.Email,
		"password":          in.Password,
		"firstName":         in.FirstName,
		"lastName":          in.LastName,
		"phoneNumber":       in.PhoneNumber,
		"nationalId":        in.NationalID,
		"region":            in.Region,
		"church":            in.Church,
		"parentFullName":    in.ParentFullName,
		"parentPhoneNumber": in.ParentPhoneNumber,
	}
	for field, value := range required {
		if value == "" {
			details[field] = field + " is required"
		}
	}
	if in.DateOfBirth.IsZero() {
		details["dateOfBirth"] = "dateOfBirth is required"
	}
	if in.Sex != domain.SexMale && in.Sex != domain.SexFemale {
		details["sex"] = "sex must be male or female"
	}
	switch in.ParentStatus {
	case domain.ParentBoth, domain.ParentMother, domain.ParentFather, domain.ParentGuardian:
	default:
		details["parentStatus"] = "parentStatus must be one of both, mother, father, guardian"
	}
	if in.MarriageStatus != "" {
		switch in.MarriageStatus {
		case domain.MarriageSingle, domain.MarriageMarried, domain.MarriageDivorced, domain.MarriageWidowed:
		default:
			details["marriageStatus"] = "marriageStatus must be one of single, married, divorced, widowed"
		}
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("Validation failed", details)
	}
	return nil
}

// Register creates a member account and issues a session token. The unique
// indexes on studentId, email and nationalId are the authoritative
// conflict detectors; a duplicate surfaces as a field-specific conflict.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*domain.Member, string, time.Time, error) {
	if err := in.validate(); err != nil {
		return nil, "", time.Time{}, err
	}

	hash, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	marriage := in.MarriageStatus
	if marriage == "" {
		marriage = domain.MarriageSingle
	}
	country := in.Country
	if country == "" {
		country = "Ethiopia"
	}

	member := &domain.Member{
		StudentID:         in.StudentID,
		Email:             in.Email,
		PasswordHash:      hash,
		Role:              domain.RoleUser,
		FirstName:         in.FirstName,
		MiddleName:        in.MiddleName,
		LastName:          in.LastName,
		Sex:               in.Sex,
		PhoneNumber:       in.PhoneNumber,
		Disability:        in.Disability,
		DisabilityType:    in.DisabilityType,
		DateOfBirth:       in.DateOfBirth,
		NationalID:        in.NationalID,
		Occupation:        in.Occupation,
		MarriageStatus:    marriage,
		Country:           country,
		Region:            in.Region,
		Zone:              in.Zone,
		Woreda:            in.Woreda,
		Church:            in.Church,
		ParentStatus:      in.ParentStatus,
		ParentFullName:    in.ParentFullName,
		ParentEmail:       in.ParentEmail,
		ParentPhoneNumber: in.ParentPhoneNumber,
		Avatar:            in.Avatar,
		Status:            domain.MemberStatusActive,
	}

	if err := s.members.Create(ctx, member); err != nil {
		return nil, "", time.Time{}, mapRepoError(err, "User")
	}

	token, exp, err := s.tokens.Issue(member)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	s.publish(ctx, events.EventMemberRegistered, member.ID, events.MemberRegisteredPayload{
		MemberID:  member.ID,
		StudentID: member.StudentID,
		Email:     member.Email,
	})

	return member, token, exp, nil
}

// Login authenticates a member. An unknown email, an inactive account and
// a wrong password all produce the same generic rejection.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Member, string, time.Time, error) {
	if email == "" || password == "" {
		return nil, "", time.Time{}, apperrors.NewValidationError("Please provide email and password", nil)
	}

	member, err := s.members.GetActiveByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", time.Time{}, apperrors.NewUnauthorized(msgBadCredentials)
		}
		return nil, "", time.Time{}, err
	}

	if err := auth.ComparePassword(member.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized(msgBadCredentials)
	}

	now := time.Now()
	if err := s.members.UpdateLastLogin(ctx, member.ID, now); err != nil {
		return nil, "", time.Time{}, mapRepoError(err, "User")
	}
	member.LastLogin = &now

	token, exp, err := s.tokens.Issue(member)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return member, token, exp, nil
}

// Logout revokes the presented token until its natural expiry. Without a
// revocation store the token stays stateless and only the cookie clearing
// ends the session client-side.
func (s *AuthService) Logout(ctx context.Context, tokenStr string) error {
	if s.revocation == nil || tokenStr == "" {
		return nil
	}
	claims, err := s.tokens.Verify(tokenStr)
	if err != nil {
		// nothing verifiable to revoke
		return nil
	}
	return s.revocation.Revoke(ctx, claims.ID, claims.ExpiresAt.Time)
}

// Me returns the current member's persisted record.
func (s *AuthService) Me(ctx context.Context, memberID string) (*domain.Member, error) {
	member, err := s.members.GetByID(ctx, memberID)
	if err != nil {
		return nil, mapRepoError(err, "User")
	}
	return member, nil
}

// UpdateMeInput carries the self-service profile update. Password, email,
// studentId, role and nationalId are deliberately absent: a payload
// containing them has those fields stripped before this input is built.
type UpdateMeInput struct {
	FirstName         *string
	MiddleName        *string
	LastName          *string
	Sex               *domain.Sex
	PhoneNumber       *string
	Disability        *bool
	DisabilityType    *string
	DateOfBirth       *time.Time
	Occupation        *string
	MarriageStatus    *domain.MarriageStatus
	Country           *string
	Region            *string
	Zone              *string
	Woreda            *string
	Church            *string
	ParentStatus      *domain.ParentStatus
	ParentFullName    *string
	ParentEmail       *string
	ParentPhoneNumber *string
	Avatar            *string
}

// UpdateMe applies the allowed profile fields and returns the updated
// member. Returns 404 when the subject vanished mid-request.
func (s *AuthService) UpdateMe(ctx context.Context, memberID string, in UpdateMeInput) (*domain.Member, error) {
	member, err := s.members.GetByID(ctx, memberID)
	if err != nil {
		return nil, mapRepoError(err, "User")
	}

	applyString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	applyString(&member.FirstName, in.FirstName)
	applyString(&member.MiddleName, in.MiddleName)
	applyString(&member.LastName, in.LastName)
	if in.Sex != nil {
		member.Sex = *in.Sex
	}
	applyString(&member.PhoneNumber, in.PhoneNumber)
	if in.Disability != nil {
		member.Disability = *in.Disability
	}
	applyString(&member.DisabilityType, in.DisabilityType)
	if in.DateOfBirth != nil {
		member.DateOfBirth = *in.DateOfBirth
	}
	applyString(&member.Occupation, in.Occupation)
	if in.MarriageStatus != nil {
		member.MarriageStatus = *in.MarriageStatus
	}
	applyString(&member.Country, in.Country)
	applyString(&member.Region, in.Region)
	applyString(&member.Zone, in.Zone)
	applyString(&member.Woreda, in.Woreda)
	applyString(&member.Church, in.Church)
	if in.ParentStatus != nil {
		member.ParentStatus = *in.ParentStatus
	}
	applyString(&member.ParentFullName, in.ParentFullName)
	applyString(&member.ParentEmail, in.ParentEmail)
	applyString(&member.ParentPhoneNumber, in.ParentPhoneNumber)
	applyString(&member.Avatar, in.Avatar)

	if err := s.members.UpdateProfile(ctx, member); err != nil {
		return nil, mapRepoError(err, "User")
	}
	return member, nil
}

// ChangePassword verifies the current password before accepting a new one
// and issues a fresh session token.
func (s *AuthService) ChangePassword(ctx context.Context, memberID, currentPassword, newPassword string) (string, time.Time, error) {
	if currentPassword == "" || newPassword == "" {
		return "", time.Time{}, apperrors.NewValidationError("Please provide current and new password", nil)
	}

	member, err := s.members.GetByID(ctx, memberID)
	if err != nil {
		return "", time.Time{}, mapRepoError(err, "User")
	}

	if err := auth.ComparePassword(member.PasswordHash, currentPassword); err != nil {
		return "", time.Time{}, apperrors.NewValidationError("Current password is incorrect", nil)
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return "", time.Time{}, err
	}
	if err := s.members.UpdatePassword(ctx, member.ID, hash); err != nil {
		return "", time.Time{}, mapRepoError(err, "User")
	}

	return s.tokens.Issue(member)
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokens
}

func (s *AuthService) publish(ctx context.Context, eventType events.EventType, actorID string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		ActorID:   actorID,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}

// mapRepoError lifts repository errors into the response taxonomy.
func mapRepoError(err error, resource string) error {
	if err == nil {
		return nil
	}
	if field, ok := repository.IsUniqueViolation(err); ok {
		return apperrors.NewConflictField(field)
	}
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.NewNotFound(resource)
	}
	return err
}
