package middleware

import (
	"github.com/gofiber/fiber/v2"

	"todo-backend/pkg/identity"
	"todo-backend/pkg/logger"
	"todo-backend/pkg/utils"
)

// Protected validates the bearer token and stores the verified subject in
// fiber locals. Every failure mode gets the same 401; callers are not told
// whether the token was expired, tampered or missing a claim.
func Protected(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return utils.UnauthorizedResponse(c, "Missing authorization header")
		}

		token := utils.ExtractTokenFromHeader(authHeader)
		if token == "" {
			return utils.UnauthorizedResponse(c, "Invalid authorization header format")
		}

		subject, err := utils.ValidateToken(token, jwtSecret)
		if err != nil {
			logger.WarnContext(c.UserContext(), "Token validation failed", "path", c.Path())
			return utils.UnauthorizedResponse(c, "Could not validate credentials")
		}

		c.Locals("subject", subject)

		return c.Next()
	}
}

// RequireOwner compares the :user_id path parameter against the token
// subject. Exact string equality, re-checked on every call; the same token
// presented against another user's path is denied.
func RequireOwner() fiber.Handler {
	return func(c *fiber.Ctx) error {
		subject, err := utils.GetSubjectFromContext(c)
		if err != nil {
			return utils.UnauthorizedResponse(c, "")
		}

		ownerID := c.Params("user_id")
		if !identity.OwnsResource(subject.ID, ownerID) {
			logger.WarnContext(c.UserContext(), "Ownership check failed",
				"subject_id", subject.ID,
				"declared_owner", ownerID,
				"path", c.Path(),
			)
			return utils.ForbiddenResponse(c, "Access denied: cannot access another user's resources")
		}

		return c.Next()
	}
}
