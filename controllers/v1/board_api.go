package apiv1

import (
	"fmt"
	"time"

	"recruitment-board/controllers"
	"recruitment-board/lib/board"
	xlsexport "recruitment-board/lib/export/xls"
	"recruitment-board/lib/rbac"
	"recruitment-board/middleware"
	apimodels "recruitment-board/models/api"
	boardapimodels "recruitment-board/models/api/board"

	"github.com/gofiber/fiber/v2"
)

type boardApiController struct {
	controllers.BaseAPIController
}

func InitBoardApiRouters(app *fiber.App) {
	controller := boardApiController{}
	app.Route("board", func(router fiber.Router) {
		router.Use(middleware.SpaceRequired())

		router.Get("", controller.view)
		router.Post("reload", controller.reload)
		router.Get("export", controller.export)
		router.Put("drag_start/:id", controller.dragStart)
		router.Put("drag_end/:id", controller.dragEnd)
		router.Put("column/sort", controller.sortColumn)
		router.Get("permissions", controller.permissions)
	})
}

// spaceBoard доска пространства текущего пользователя
func spaceBoard(ctx *fiber.Ctx) (*board.Board, error) {
	return board.Instance.Get(ctx.UserContext(), middleware.GetUserSpace(ctx), middleware.GetActor(ctx))
}

// @Summary Доска вакансий
// @Tags Доска
// @Description Колонки доски с вакансиями, признак сортировки и перетаскиваемая карточка
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=boardapimodels.BoardView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/board [get]
func (c *boardApiController) view(ctx *fiber.Ctx) error {
	b, err := spaceBoard(ctx)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка загрузки доски")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(b.View(middleware.GetUserID(ctx))))
}

// @Summary Перезагрузка доски
// @Tags Доска
// @Description Повторная загрузка вакансий и кандидатов из хранилища
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=boardapimodels.BoardView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/board/reload [post]
func (c *boardApiController) reload(ctx *fiber.Ctx) error {
	b, err := spaceBoard(ctx)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка загрузки доски")
	}
	if err = b.Reload(ctx.UserContext(), middleware.GetActor(ctx)); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка загрузки доски")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(b.View(middleware.GetUserID(ctx))))
}

// @Summary Выгрузка доски в Excel
// @Tags Доска
// @Description Вакансии по колонкам и кандидаты по этапам
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/board/export [get]
func (c *boardApiController) export(ctx *fiber.Ctx) error {
	b, err := spaceBoard(ctx)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка загрузки доски")
	}
	data, err := xlsexport.Instance.ExportBoard(b.Postings(), b.Candidates())
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки доски в Excel")
	}
	fileName := fmt.Sprintf("board_%s.xlsx", time.Now().Format("20060102_150405"))
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", fileName))
	return ctx.SendStream(data)
}

// @Summary Начало перетаскивания
// @Tags Доска
// @Description Запоминает перетаскиваемую карточку, данные доски не меняются
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "posting ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @router /api/v1/space/board/drag_start/{id} [put]
func (c *boardApiController) dragStart(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	b, err := spaceBoard(ctx)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка загрузки доски")
	}
	if err = b.OnDragStart(middleware.GetActor(ctx), id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка начала перетаскивания")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Перенос вакансии
// @Tags Доска
// @Description Карточка вакансии брошена на колонку. При ошибке сохранения доска перезагружается.
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "posting ID"
// @Param	body body	 boardapimodels.DragEndRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=boardapimodels.BoardView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/board/drag_end/{id} [put]
func (c *boardApiController) dragEnd(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload boardapimodels.DragEndRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	b, err := spaceBoard(ctx)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка загрузки доски")
	}
	if err = b.OnDragEnd(ctx.UserContext(), middleware.GetActor(ctx), id, payload.Stage); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка переноса вакансии")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(b.View(middleware.GetUserID(ctx))))
}

// @Summary Сортировка колонки
// @Tags Доска
// @Description Упорядочивает вакансии колонки по приоритету, в хранилище порядок не сохраняется
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 boardapimodels.SortColumnRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=boardapimodels.BoardView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/board/column/sort [put]
func (c *boardApiController) sortColumn(ctx *fiber.Ctx) error {
	var payload boardapimodels.SortColumnRequest
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
	if err = b.SortColumn(middleware.GetActor(ctx), payload.Stage); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка сортировки колонки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(b.View(middleware.GetUserID(ctx))))
}

// @Summary Права пользователя
// @Tags Доска
// @Description Действия, доступные роли пользователя, по модулям
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=map[string][]string}
// @Failure 403
// @router /api/v1/space/board/permissions [get]
func (c *boardApiController) permissions(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(rbac.Instance.GetPermissions(middleware.GetSpaceRole(ctx))))
}
