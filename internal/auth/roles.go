package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/sunday-school-service/internal/domain"
	apperrors "github.com/spec-kit/sunday-school-service/pkg/util"
)

const msgNoPermission = "You do not have permission to perform this action."

// RequireRole restricts a route to an allow-list of roles. It depends on
// the auth gate having attached a member; if none is present it denies
// rather than assuming anything about the caller.
func RequireRole(allowed ...domain.Role) fiber.Handler {
	allowedSet := make(map[domain.Role]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		member, ok := MemberFromContext(c)
		if !ok {
			return apperrors.NewForbidden(msgNoPermission)
		}
		if _, exists := allowedSet[member.Role]; !exists {
			return apperrors.NewForbidden(msgNoPermission)
		}
		return c.Next()
	}
}
