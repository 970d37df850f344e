package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/sunday-school-service/internal/domain"
	"github.com/spec-kit/sunday-school-service/internal/repository"
	apperrors "github.com/spec-kit/sunday-school-service/pkg/util"
)

const memberKey = "auth_member"

// Rejection messages. Verification failures all collapse into the invalid
// token message so nothing about the failure kind leaks to clients.
const (
	msgNotLoggedIn  = "You are not logged in. Please log in to get access."
	msgInvalidToken = "Invalid token."
	msgUserGone     = "The user belonging to this token no longer exists."
	msgDeactivated  = "Your account has been deactivated."
)

// Middleware resolves a request's identity from the session cookie and
// attaches the member to the request, or short-circuits with 401.
type Middleware struct {
	tokens     *TokenManager
	members    repository.MemberRepository
	revocation repository.RevocationStore
	logger     *zap.Logger
}

// NewMiddleware constructs the auth gate. The revocation store may be nil,
// in which case logout falls back to the purely stateless posture.
func NewMiddleware(tokens *TokenManager, members repository.MemberRepository, revocation repository.RevocationStore, logger *zap.Logger) *Middleware {
	return &Middleware{tokens: tokens, members: members, revocation: revocation, logger: logger}
}

// Handle enforces authentication for protected routes. It must run before
// any handler that requires identity.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	token := SessionToken(c)
	if token == "" {
		return apperrors.NewUnauthorized(msgNotLoggedIn)
	}

	claims, err := m.tokens.Verify(token)
	if err != nil {
		m.logger.Debug("token verification failed",
			zap.String("reason", err.Error()),
			zap.String("path", c.Path()))
		return apperrors.NewUnauthorized(msgInvalidToken)
	}

	if m.revocation != nil {
		revoked, err := m.revocation.IsRevoked(c.Context(), claims.ID)
		if err != nil {
			m.logger.Warn("revocation check failed", zap.Error(err))
		} else if revoked {
			m.logger.Debug("token revoked", zap.String("jti", claims.ID))
			return apperrors.NewUnauthorized(msgInvalidToken)
		}
	}

	member, err := m.members.GetByID(c.Context(), claims.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NewUnauthorized(msgUserGone)
		}
		return apperrors.MapError(err)
	}
	if !member.Active() {
		return apperrors.NewUnauthorized(msgDeactivated)
	}

	c.Locals(memberKey, member)
	return c.Next()
}

// MemberFromContext retrieves the authenticated member.
func MemberFromContext(c *fiber.Ctx) (*domain.Member, bool) {
	val := c.Locals(memberKey)
	if val == nil {
		return nil, false
	}
	member, ok := val.(*domain.Member)
	return member, ok
}
