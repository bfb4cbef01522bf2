package ws

import (
	wsclient "recruitment-board/lib/ws/client"
	connectionhub "recruitment-board/lib/ws/hub/connection-hub"
	"recruitment-board/middleware"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

const localsUserID = "ws_user_id"

func InitWs(app *fiber.App) {
	app.Use("", func(ctx *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(ctx) {
			return fiber.ErrUpgradeRequired
		}
		userID := middleware.GetUserID(ctx)
		if userID == "" {
			return ctx.SendStatus(fiber.StatusForbidden)
		}
		ctx.Locals(localsUserID, userID)
		return ctx.Next()
	})
	app.Get("/", websocket.New(pushHandler))
}

// @Summary Уведомления доски
// @Tags Websocket Уведомления
// @Description Всплывающие уведомления об успехе и ошибках действий на доске
// @Param   Authorization		header		string		true		"Authorization token"
// @Success 200 {object} wsmodels.ServerMessage
// @Failure 400
// @Failure 403
// @Failure 500
// @router /ws [get]
func pushHandler(c *websocket.Conn) {
	userID, _ := c.Locals(localsUserID).(string)
	client := wsclient.NewClient(userID, c)
	connectionhub.Instance.AddClient(userID, c)
	defer connectionhub.Instance.DeleteClient(userID)
	client.Dispatch()
}
