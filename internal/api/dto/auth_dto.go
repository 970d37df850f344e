package dto

import (
	"time"

	"github.com/spec-kit/sunday-school-service/internal/domain"
)

// RegisterRequest payload for self-registration. Role and status are not
// accepted here.
type RegisterRequest struct {
	StudentID         string                `json:"studentId"`
	Email             string                `json:"email"`
	Password          string                `json:"password"`
	FirstName         string                `json:"firstName"`
	MiddleName        string                `json:"middleName"`
	LastName          string                `json:"lastName"`
	Sex               domain.Sex            `json:"sex"`
	PhoneNumber       string                `json:"phoneNumber"`
	Disability        bool                  `json:"disability"`
	DisabilityType    string                `json:"disabilityType"`
	DateOfBirth       time.Time             `json:"dateOfBirth"`
	NationalID        string                `json:"nationalId"`
	Occupation        string                `json:"occupation"`
	MarriageStatus    domain.MarriageStatus `json:"marriageStatus"`
	Country           string                `json:"country"`
	Region            string                `json:"region"`
	Zone              string                `json:"zone"`
	Woreda            string                `json:"woreda"`
	Church            string                `json:"church"`
	ParentStatus      domain.ParentStatus   `json:"parentStatus"`
	ParentFullName    string                `json:"parentFullName"`
	ParentEmail       string                `json:"parentEmail"`
	ParentPhoneNumber string                `json:"parentPhoneNumber"`
	Avatar            string                `json:"avatar"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ChangePasswordRequest payload for the change-password flow.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// UpdateMeRequest payload for self-service profile updates. password,
// email, studentId, role and nationalId have no bindings here, so any
// such fields in the payload are dropped during decoding.
type UpdateMeRequest struct {
	FirstName         *string                `json:"firstName"`
	MiddleName        *string                `json:"middleName"`
	LastName          *string                `json:"lastName"`
	Sex               *domain.Sex            `json:"sex"`
	PhoneNumber       *string                `json:"phoneNumber"`
	Disability        *bool                  `json:"disability"`
	DisabilityType    *string                `json:"disabilityType"`
	DateOfBirth       *time.Time             `json:"dateOfBirth"`
	Occupation        *string                `json:"occupation"`
	MarriageStatus    *domain.MarriageStatus `json:"marriageStatus"`
	Country           *string                `json:"country"`
	Region            *string                `json:"region"`
	Zone              *string                `json:"zone"`
	Woreda            *string                `json:"woreda"`
	Church            *string                `json:"church"`
	ParentStatus      *domain.ParentStatus   `json:"parentStatus"`
	ParentFullName    *string                `json:"parentFullName"`
	ParentEmail       *string                `json:"parentEmail"`
	ParentPhoneNumber *string                `json:"parentPhoneNumber"`
	Avatar            *string                `json:"avatar"`
}
