package middleware

import (
	"recruitment-board/lib/rbac"
	apimodels "recruitment-board/models/api"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// RbacMiddleware пути без правила доступны любой роли
func RbacMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		userID := GetUserID(ctx)
		role := GetSpaceRole(ctx)
		if userID == "" || role == "" {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError(rbacForbidden))
		}
		handler, found := rbac.Instance.GetRuleFunc(ctx.Method(), ctx.Path())
		if !found {
			return ctx.Next()
		}
		if !handler(GetUserSpace(ctx), userID, role, ctx.Path()) {
			log.
				WithField("user_id", userID).
				WithField("role", role).
				WithField("path", ctx.Path()).
				Warn("доступ запрещен правилами ролей")
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError(rbacForbidden))
		}
		return ctx.Next()
	}
}

const rbacForbidden = "RBAC_FORBIDDEN"
