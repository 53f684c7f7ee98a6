package middleware

import (
	"github.com/gofiber/fiber/v2"

	authutils "page-control-backend/lib/utils/auth-utils"
	apimodels "page-control-backend/models/api"
)

// AdminRequired rejects requests whose token does not carry the admin role.
func AdminRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		role := authutils.GetUserRole(ctx)
		if !role.IsAdmin() {
			return ctx.Status(fiber.StatusForbidden).
				JSON(apimodels.NewError("admin role required"))
		}
		return ctx.Next()
	}
}
