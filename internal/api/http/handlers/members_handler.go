package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/sunday-school-service/internal/api/dto"
	"github.com/spec-kit/sunday-school-service/internal/service"
	apperrors "github.com/spec-kit/sunday-school-service/pkg/util"
)

// MembersHandler exposes the admin-only member management endpoints.
type MembersHandler struct {
	members *service.MemberService
}

// NewMembersHandler constructs the handler.
func NewMembersHandler(memberService *service.MemberService) *MembersHandler {
	return &MembersHandler{members: memberService}
}

// List handles GET /users.
func (h *MembersHandler) List(c *fiber.Ctx) error {
	members, err := h.members.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"status":  "success",
		"results": len(members),
		"data":    fiber.Map{"data": members},
	})
}

// Create handles POST /users.
func (h *MembersHandler) Create(c *fiber.Ctx) error {
	var req dto.AdminCreateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	member, err := h.members.Create(c.Context(), service.RegisterInput{
		StudentID:         req.StudentID,
		Email:             req.Email,
		Password:          req.Password,
		FirstName:         req.FirstName,
		MiddleName:        req.MiddleName,
		LastName:          req.LastName,
		Sex:               req.Sex,
		PhoneNumber:       req.PhoneNumber,
		Disability:        req.Disability,
		DisabilityType:    req.DisabilityType,
		DateOfBirth:       req.DateOfBirth,
		NationalID:        req.NationalID,
		Occupation:        req.Occupation,
		MarriageStatus:    req.MarriageStatus,
		Country:           req.Country,
		Region:            req.Region,
		Zone:              req.Zone,
		Woreda:            req.Woreda,
		Church:            req.Church,
		ParentStatus:      req.ParentStatus,
		ParentFullName:    req.ParentFullName,
		ParentEmail:       req.ParentEmail,
		ParentPhoneNumber: req.ParentPhoneNumber,
		Avatar:            req.Avatar,
	}, req.Role, req.Status)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"status": "success",
		"data":   fiber.Map{"data": member},
	})
}

// Update handles PUT /users/:id.
func (h *MembersHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var req dto.AdminUpdateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	member, err := h.members.Get(c.Context(), id)
	if err != nil {
		return err
	}

	applyString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	applyString(&member.StudentID, req.StudentID)
	applyString(&member.Email, req.Email)
	applyString(&member.NationalID, req.NationalID)
	if req.Role != nil {
		member.Role = *req.Role
	}
	if req.Status != nil {
		member.Status = *req.Status
	}
	applyString(&member.FirstName, req.FirstName)
	applyString(&member.MiddleName, req.MiddleName)
	applyString(&member.LastName, req.LastName)
	if req.Sex != nil {
		member.Sex = *req.Sex
	}
	applyString(&member.PhoneNumber, req.PhoneNumber)
	if req.Disability != nil {
		member.Disability = *req.Disability
	}
	applyString(&member.DisabilityType, req.DisabilityType)
	if req.DateOfBirth != nil {
		member.DateOfBirth = *req.DateOfBirth
	}
	applyString(&member.Occupation, req.Occupation)
	if req.MarriageStatus != nil {
		member.MarriageStatus = *req.MarriageStatus
	}
	applyString(&member.Country, req.Country)
	applyString(&member.Region, req.Region)
	applyString(&member.Zone, req.Zone)
	applyString(&member.Woreda, req.Woreda)
	applyString(&member.Church, req.Church)
	if req.ParentStatus != nil {
		member.ParentStatus = *req.ParentStatus
	}
	applyString(&member.ParentFullName, req.ParentFullName)
	applyString(&member.ParentEmail, req.ParentEmail)
	applyString(&member.ParentPhoneNumber, req.ParentPhoneNumber)
	applyString(&member.Avatar, req.Avatar)

	updated, err := h.members.Update(c.Context(), member)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data":   fiber.Map{"data": updated},
	})
}

// Delete handles DELETE /users/:id.
func (h *MembersHandler) Delete(c *fiber.Ctx) error {
	if err := h.members.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "User deleted",
	})
}
