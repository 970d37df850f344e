package service

import (
	"context"

	"github.com/spec-kit/sunday-school-service/internal/auth"
	"github.com/spec-kit/sunday-school-service/internal/domain"
	"github.com/spec-kit/sunday-school-service/internal/repository"
	apperrors "github.com/spec-kit/sunday-school-service/pkg/util"
)

// MemberService backs the admin-only member management routes.
type MemberService struct {
	members    repository.MemberRepository
	bcryptCost int
}

// NewMemberService builds the service.
func NewMemberService(members repository.MemberRepository, bcryptCost int) *MemberService {
	return &MemberService{members: members, bcryptCost: bcryptCost}
}

// List returns all members, newest first.
func (s *MemberService) List(ctx context.Context) ([]*domain.Member, error) {
	return s.members.List(ctx)
}

// Create provisions an account on behalf of an admin. Unlike
// self-registration, role and status may be set explicitly.
func (s *MemberService) Create(ctx context.Context, in RegisterInput, role domain.Role, status domain.MemberStatus) (*domain.Member, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if role == "" {
		role = domain.RoleUser
	}
	if !domain.ValidRole(role) {
		return nil, apperrors.NewValidationError("Validation failed", map[string]any{"role": "role must be admin or user"})
	}
	if status == "" {
		status = domain.MemberStatusActive
	}

	hash, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	member := &domain.Member{
		StudentID:         in.StudentID,
		Email:             in.Email,
		PasswordHash:      hash,
		Role:              role,
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
		MarriageStatus:    in.MarriageStatus,
		Country:           in.Country,
		Region:            in.Region,
		Zone:              in.Zone,
		Woreda:            in.Woreda,
		Church:            in.Church,
		ParentStatus:      in.ParentStatus,
		ParentFullName:    in.ParentFullName,
		ParentEmail:       in.ParentEmail,
		ParentPhoneNumber: in.ParentPhoneNumber,
		Avatar:            in.Avatar,
		Status:            status,
	}
	if member.MarriageStatus == "" {
		member.MarriageStatus = domain.MarriageSingle
	}
	if member.Country == "" {
		member.Country = "Ethiopia"
	}

	if err := s.members.Create(ctx, member); err != nil {
		return nil, mapRepoError(err, "User")
	}
	return member, nil
}

// Update replaces a member's record. The password hash is untouchable
// through this path; only the change-password flow rewrites it.
func (s *MemberService) Update(ctx context.Context, member *domain.Member) (*domain.Member, error) {
	if member.Role != "" && !domain.ValidRole(member.Role) {
		return nil, apperrors.NewValidationError("Validation failed", map[string]any{"role": "role must be admin or user"})
	}
	if err := s.members.Update(ctx, member); err != nil {
		return nil, mapRepoError(err, "User")
	}
	updated, err := s.members.GetByID(ctx, member.ID)
	if err != nil {
		return nil, mapRepoError(err, "User")
	}
	return updated, nil
}

// Delete removes a member permanently.
func (s *MemberService) Delete(ctx context.Context, id string) error {
	return mapRepoError(s.members.Delete(ctx, id), "User")
}

// Get fetches a single member.
func (s *MemberService) Get(ctx context.Context, id string) (*domain.Member, error) {
	member, err := s.members.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "User")
	}
	return member, nil
}
