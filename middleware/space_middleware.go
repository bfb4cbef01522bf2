package middleware

import (
	authutils "recruitment-board/lib/utils/auth-utils"
	"recruitment-board/models"
	apimodels "recruitment-board/models/api"

	"github.com/gofiber/fiber/v2"
)

// SpaceRequired токен должен содержать пользователя и пространство
func SpaceRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		userID := GetUserID(ctx)
		if userID == "" || GetUserSpace(ctx) == "" {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("операция недоступна"))
		}
		ctx.Locals("user_id", userID)
		return ctx.Next()
	}
}

func GetUserSpace(ctx *fiber.Ctx) string {
	return authutils.ClaimString(authutils.GetClaims(ctx), "space")
}

func GetUserID(ctx *fiber.Ctx) string {
	return authutils.ClaimString(authutils.GetClaims(ctx), "sub")
}

func GetSpaceRole(ctx *fiber.Ctx) models.UserRole {
	return models.UserRole(authutils.ClaimString(authutils.GetClaims(ctx), "role"))
}

func GetActor(ctx *fiber.Ctx) models.Actor {
	claims := authutils.GetClaims(ctx)
	return models.Actor{
		ID:   authutils.ClaimString(claims, "sub"),
		Name: authutils.ClaimString(claims, "name"),
		Role: models.UserRole(authutils.ClaimString(claims, "role")),
	}
}
