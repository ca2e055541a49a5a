package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/safebite/safebite-api/internal/application/auth"
	"github.com/safebite/safebite-api/internal/application/dto"
	"github.com/safebite/safebite-api/internal/domain/rbac"
	"github.com/safebite/safebite-api/pkg/jwt"
)

// Locals keys set by AuthMiddleware.
const (
	LocalUserID      = "user_id"
	LocalCompanyID   = "company_id"
	LocalRole        = "role"
	LocalLocationIDs = "location_ids"
	LocalTokenID     = "token_id"
	LocalTokenExpiry = "token_expiry"
)

// AuthMiddleware validates the Bearer JWT, rejects revoked tokens and puts
// the identity into c.Locals for the guard and handlers downstream.
func AuthMiddleware(jwtSecret string, revoker auth.TokenRevoker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header required"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "format: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "empty token"})
		}

		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "invalid or expired token"})
		}

		if revoker != nil {
			revoked, err := revoker.IsRevoked(c.Context(), claims.ID)
			if err != nil || revoked {
				// a blacklist lookup failure denies rather than letting
				// a possibly revoked token through
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "REVOKED_TOKEN", Message: "token no longer valid"})
			}
		}

		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalCompanyID, claims.CompanyID)
		c.Locals(LocalRole, claims.Role)
		c.Locals(LocalLocationIDs, claims.LocationIDs)
		c.Locals(LocalTokenID, claims.ID)
		if claims.ExpiresAt != nil {
			c.Locals(LocalTokenExpiry, claims.ExpiresAt.Time)
		}
		return c.Next()
	}
}

// GetUserID returns the authenticated user id from the context.
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// GetScope rebuilds the caller's RBAC scope from the token claims.
func GetScope(c *fiber.Ctx) rbac.Scope {
	role, _ := c.Locals(LocalRole).(string)
	companyID, _ := c.Locals(LocalCompanyID).(string)
	locationIDs, _ := c.Locals(LocalLocationIDs).([]string)
	return rbac.Scope{Role: rbac.Role(role), CompanyID: companyID, LocationIDs: locationIDs}
}
