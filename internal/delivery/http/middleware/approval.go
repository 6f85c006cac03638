package middleware

import (
	"errors"

	"jobdeck/internal/domain/user"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// ApprovalMiddleware gates member routes behind admin approval. The
// approval state is read from the database on every request so a
// revoked account loses access immediately, not at token expiry.
type ApprovalMiddleware struct {
	users user.Repository
}

func NewApprovalMiddleware(users user.Repository) *ApprovalMiddleware {
	return &ApprovalMiddleware{users: users}
}

func (m *ApprovalMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		usr, err := m.currentUser(c)
		if err != nil {
			return err
		}
		if !usr.IsApproved() {
			return NewAppError(fiber.StatusForbidden, "Account pending approval", nil, nil)
		}
		return c.Next()
	}
}

// AdminOnly requires the admin role, checked against the database
// rather than the token claim.
func (m *ApprovalMiddleware) AdminOnly() fiber.Handler {
	return func(c fiber.Ctx) error {
		usr, err := m.currentUser(c)
		if err != nil {
			return err
		}
		if !usr.IsAdmin() {
			return NewAppError(fiber.StatusForbidden, "Forbidden", nil, nil)
		}
		return c.Next()
	}
}

func (m *ApprovalMiddleware) currentUser(c fiber.Ctx) (user.User, error) {
	userID, ok := c.Locals(CtxUserIDKey).(uuid.UUID)
	if !ok {
		return user.User{}, NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	usr, err := m.users.GetByID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
		}
		return user.User{}, NewAppError(fiber.StatusInternalServerError, "internal server error", nil, err)
	}
	return usr, nil
}
