package apiv1

import (
	"recruitment-board/controllers"
	boardhistoryhandler "recruitment-board/lib/board-history"
	"recruitment-board/middleware"
	apimodels "recruitment-board/models/api"
	boardapimodels "recruitment-board/models/api/board"
	postingapimodels "recruitment-board/models/api/posting"

	"github.com/gofiber/fiber/v2"
)

type postingApiController struct {
	controllers.BaseAPIController
}

func InitPostingApiRouters(app *fiber.App) {
	controller := postingApiController{}
	app.Route("posting", func(router fiber.Router) {
		router.Use(middleware.SpaceRequired())

		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Post("history", controller.history)
		})
	})
}

// @Summary Создание
// @Tags Вакансия
// @Description Создание вакансии в колонке «Ouverte»
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 postingapimodels.PostingData	true	"request body"
// @Success 200 {object} apimodels.Response{data=boardapimodels.PostingView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/posting [post]
func (c *postingApiController) create(ctx *fiber.Ctx) error {
	var payload postingapimodels.PostingData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	b, err := spaceBoard(ctx)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка загрузки доски")
	}
	rec, err := b.AddPosting(ctx.UserContext(), middleware.GetActor(ctx), payload.ToDB())
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания вакансии")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(boardapimodels.PostingConvert(rec, false)))
}

// @Summary Получение по ИД
// @Tags Вакансия
// @Description Получение по ИД
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "posting ID"
// @Success 200 {object} apimodels.Response{data=boardapimodels.PostingView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/posting/{id} [get]
func (c *postingApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	b, err := spaceBoard(ctx)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка загрузки доски")
	}
	rec, err := b.GetPosting(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения вакансии")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(boardapimodels.PostingConvert(rec, b.IsPending(id))))
}

// @Summary История изменений
// @Tags Вакансия
// @Description История изменений вакансии
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "posting ID"
// @Param	body body	 boardapimodels.HistoryFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]boardapimodels.HistoryView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/posting/{id}/history [post]
func (c *postingApiController) history(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload boardapimodels.HistoryFilter
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := boardhistoryhandler.Instance.List(ctx.UserContext(), middleware.GetUserSpace(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения истории вакансии")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}
