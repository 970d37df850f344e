package domain

import "time"

// Role restricts what routes a member may reach.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// MemberStatus represents lifecycle states for a member account.
type MemberStatus string

const (
	MemberStatusActive   MemberStatus = "active"
	MemberStatusInactive MemberStatus = "inactive"
)

// Sex values accepted on registration.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// MarriageStatus values accepted on member profiles.
type MarriageStatus string

const (
	MarriageSingle   MarriageStatus = "single"
	MarriageMarried  MarriageStatus = "married"
	MarriageDivorced MarriageStatus = "divorced"
	MarriageWidowed  MarriageStatus = "widowed"
)

// ParentStatus describes who is responsible for a student.
type ParentStatus string

const (
	ParentBoth     ParentStatus = "both"
	ParentMother   ParentStatus = "mother"
	ParentFather   ParentStatus = "father"
	ParentGuardian ParentStatus = "guardian"
)

// Member is the domain model for a Sunday-school member account.
// StudentID, Email and NationalID are each globally unique.
// PasswordHash is never serialized.
type Member struct {
	ID           string `json:"id"`
	StudentID    string `json:"studentId"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`

	FirstName   string `json:"firstName"`
	MiddleName  string `json:"middleName,omitempty"`
	LastName    string `json:"lastName"`
	Sex         Sex    `json:"sex"`
	PhoneNumber string `json:"phoneNumber"`

	Disability     bool   `json:"disability"`
	DisabilityType string `json:"disabilityType,omitempty"`

	DateOfBirth    time.Time      `json:"dateOfBirth"`
	NationalID     string         `json:"nationalId"`
	Occupation     string         `json:"occupation,omitempty"`
	MarriageStatus MarriageStatus `json:"marriageStatus"`

	Country string `json:"country"`
	Region  string `json:"region"`
	Zone    string `json:"zone,omitempty"`
	Woreda  string `json:"woreda,omitempty"`
	Church  string `json:"church"`

	ParentStatus      ParentStatus `json:"parentStatus"`
	ParentFullName    string       `json:"parentFullName"`
	ParentEmail       string       `json:"parentEmail,omitempty"`
	ParentPhoneNumber string       `json:"parentPhoneNumber"`

	Avatar    string       `json:"avatar,omitempty"`
	JoinDate  time.Time    `json:"joinDate"`
	Status    MemberStatus `json:"status"`
	LastLogin *time.Time   `json:"lastLogin,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Active reports whether the account may authenticate.
func (m *Member) Active() bool {
	return m.Status == MemberStatusActive
}

// ValidRole reports whether the value is one of the closed role enumeration.
func ValidRole(r Role) bool {
	return r == RoleAdmin || r == RoleUser
}
