package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/safebite/safebite-api/internal/application/dto"
	"github.com/safebite/safebite-api/internal/domain/rbac"
)

// forbidden is the one static denial body every guard returns. Denials never
// leak which role or capability was missing.
func forbidden(c *fiber.Ctx) error {
	return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
		Code:    "FORBIDDEN",
		Message: "access denied",
	})
}

// RequireRole allows the request through only when the token's role is one of
// the listed roles. Must run after AuthMiddleware. An empty list denies
// everything; an unknown role in the token denies.
func RequireRole(roles ...rbac.Role) fiber.Handler {
	allowed := make(map[rbac.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(LocalRole).(string)
		if !allowed[rbac.Role(role)] {
			return forbidden(c)
		}
		return c.Next()
	}
}

// RequirePermission allows the request through only when the token's role
// holds the capability. Independent from RequireRole; stacking both on a
// route means the request must satisfy each one.
func RequirePermission(cap rbac.Capability) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(LocalRole).(string)
		if !rbac.Allows(rbac.Role(role), cap) {
			return forbidden(c)
		}
		return c.Next()
	}
}
