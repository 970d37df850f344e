package dto

import "github.com/spec-kit/sunday-school-service/internal/domain"

// AdminCreateMemberRequest payload for admin-side account provisioning.
type AdminCreateMemberRequest struct {
	RegisterRequest
	Role   domain.Role         `json:"role"`
	Status domain.MemberStatus `json:"status"`
}

// AdminUpdateMemberRequest payload for admin-side account updates.
// The password is not updatable here.
type AdminUpdateMemberRequest struct {
	UpdateMeRequest
	StudentID  *string              `json:"studentId"`
	Email      *string              `json:"email"`
	NationalID *string              `json:"nationalId"`
	Role       *domain.Role         `json:"role"`
	Status     *domain.MemberStatus `json:"status"`
}
