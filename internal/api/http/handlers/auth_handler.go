package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/sunday-school-service/internal/api/dto"
	"github.com/spec-kit/sunday-school-service/internal/auth"
	"github.com/spec-kit/sunday-school-service/internal/service"
	apperrors "github.com/spec-kit/sunday-school-service/pkg/util"
)

// AuthHandler exposes the registration, login and account endpoints.
type AuthHandler struct {
	auth          *service.AuthService
	secureCookies bool
}

// NewAuthHandler constructs the handler. secureCookies should be true in
// production so session cookies carry the Secure attribute.
func NewAuthHandler(authService *service.AuthService, secureCookies bool) *AuthHandler {
	return &AuthHandler{auth: authService, secureCookies: secureCookies}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	member, token, exp, err := h.auth.Register(c.Context(), service.RegisterInput{
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
	})
	if err != nil {
		return err
	}

	auth.SetSessionCookie(c, token, exp, h.secureCookies)

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"status":  "success",
		"message": "User registered successfully",
		"data":    fiber.Map{"user": member},
		"token":   token,
	})
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	member, token, exp, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	auth.SetSessionCookie(c, token, exp, h.secureCookies)

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Login successful",
		"data":    fiber.Map{"user": member},
		"token":   token,
	})
}

// Logout handles POST /auth/logout. The presented token is revoked until
// its natural expiry and the cookie is overwritten client-side.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.auth.Logout(c.Context(), auth.SessionToken(c)); err != nil {
		return err
	}
	auth.ClearSessionCookie(c, h.secureCookies)

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Logout successful",
	})
}

// Me handles GET /auth/me.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	member, ok := auth.MemberFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("You are not logged in. Please log in to get access.")
	}

	current, err := h.auth.Me(c.Context(), member.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"status": "success",
		"data":   fiber.Map{"user": current},
	})
}

// UpdateMe handles PATCH /auth/update-me. Restricted fields in the payload
// (password, email, studentId, role, nationalId) are dropped before the
// update is applied.
func (h *AuthHandler) UpdateMe(c *fiber.Ctx) error {
	member, ok := auth.MemberFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("You are not logged in. Please log in to get access.")
	}

	var req dto.UpdateMeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	updated, err := h.auth.UpdateMe(c.Context(), member.ID, service.UpdateMeInput{
		FirstName:         req.FirstName,
		MiddleName:        req.MiddleName,
		LastName:          req.LastName,
		Sex:               req.Sex,
		PhoneNumber:       req.PhoneNumber,
		Disability:        req.Disability,
		DisabilityType:    req.DisabilityType,
		DateOfBirth:       req.DateOfBirth,
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
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Profile updated successfully",
		"data":    fiber.Map{"user": updated},
	})
}

// ChangePassword handles PATCH /auth/change-password.
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	member, ok := auth.MemberFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("You are not logged in. Please log in to get access.")
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	token, exp, err := h.auth.ChangePassword(c.Context(), member.ID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		return err
	}

	auth.SetSessionCookie(c, token, exp, h.secureCookies)

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Password changed successfully",
		"token":   token,
	})
}
