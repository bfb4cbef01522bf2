package apiv1

import (
	"fmt"

	"recruitment-board/controllers"
	"recruitment-board/lib/board"
	boardhistoryhandler "recruitment-board/lib/board-history"
	pdfexport "recruitment-board/lib/export/pdf"
	filestorage "recruitment-board/lib/file-storage"
	"recruitment-board/middleware"
	apimodels "recruitment-board/models/api"
	boardapimodels "recruitment-board/models/api/board"
	candidateapimodels "recruitment-board/models/api/candidate"
	dbmodels "recruitment-board/models/db"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

type candidateApiController struct {
	controllers.BaseAPIController
}

func InitCandidateApiRouters(app *fiber.App) {
	controller := candidateApiController{}
	app.Route("candidate", func(router fiber.Router) {
		router.Use(middleware.SpaceRequired())

		router.Post("", controller.create)
		router.Post("list", controller.list)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("advance", controller.advance)
			idRoute.Put("drag_end", controller.dragEnd)
			idRoute.Put("validate_interview", controller.validateInterview)
			idRoute.Put("offer", controller.offer)
			idRoute.Put("reject", controller.reject)
			idRoute.Put("finalize", controller.finalize)
			idRoute.Post("history", controller.history)
			idRoute.Get("report", controller.report)
			idRoute.Route("cv", func(cvRoute fiber.Router) {
				cvRoute.Post("", controller.uploadCV)
				cvRoute.Get("", controller.getCV)
			})
		})
	})
}

// candidateAction действие над кандидатом, возвращает сохраненную запись
type candidateAction func(ctx *fiber.Ctx, b *board.Board, id string) (dbmodels.CandidateApplication, error)

func (c *candidateApiController) runAction(ctx *fiber.Ctx, errMsg string, action candidateAction) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	b, err := spaceBoard(ctx)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка загрузки доски")
	}
	rec, err := action(ctx, b, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, errMsg)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(candidateapimodels.CandidateConvert(rec, b.IsPending(id))))
}

// @Summary Добавление кандидата
// @Tags Кандидат
// @Description Кандидат добавляется на этап «Candidature reçue»
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 candidateapimodels.CandidateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.CandidateView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate [post]
func (c *candidateApiController) create(ctx *fiber.Ctx) error {
	var payload candidateapimodels.CandidateData
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
	rec, err := b.AddCandidate(ctx.UserContext(), middleware.GetActor(ctx), payload.ToDB())
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка добавления кандидата")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(candidateapimodels.CandidateConvert(rec, false)))
}

// @Summary Трекинг кандидатов
// @Tags Кандидат
// @Description Кандидаты по этапам, с фильтром по вакансии
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 candidateapimodels.CandidateFilter	true	"request body"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.TrackingView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate/list [post]
func (c *candidateApiController) list(ctx *fiber.Ctx) error {
	var payload candidateapimodels.CandidateFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	b, err := spaceBoard(ctx)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка загрузки доски")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(b.CandidateView(payload.RecruitmentID)))
}

// @Summary Получение по ИД
// @Tags Кандидат
// @Description Получение по ИД
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "candidate ID"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.CandidateView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @router /api/v1/space/candidate/{id} [get]
func (c *candidateApiController) get(ctx *fiber.Ctx) error {
	return c.runAction(ctx, "Ошибка получения кандидата", func(ctx *fiber.Ctx, b *board.Board, id string) (dbmodels.CandidateApplication, error) {
		return b.GetCandidate(id)
	})
}

// @Summary Следующий этап
// @Tags Кандидат
// @Description Перевод кандидата на следующий этап цепочки
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "candidate ID"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.CandidateView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate/{id}/advance [put]
func (c *candidateApiController) advance(ctx *fiber.Ctx) error {
	return c.runAction(ctx, "Ошибка перевода кандидата", func(ctx *fiber.Ctx, b *board.Board, id string) (dbmodels.CandidateApplication, error) {
		return b.AdvanceCandidate(ctx.UserContext(), middleware.GetActor(ctx), id)
	})
}

// @Summary Перенос кандидата
// @Tags Кандидат
// @Description Карточка кандидата брошена на этап
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "candidate ID"
// @Param	body body	 boardapimodels.DragEndRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.CandidateView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate/{id}/drag_end [put]
func (c *candidateApiController) dragEnd(ctx *fiber.Ctx) error {
	var payload boardapimodels.DragEndRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return c.runAction(ctx, "Ошибка переноса кандидата", func(ctx *fiber.Ctx, b *board.Board, id string) (dbmodels.CandidateApplication, error) {
		return b.OnCandidateDragEnd(ctx.UserContext(), middleware.GetActor(ctx), id, payload.Stage)
	})
}

// @Summary Собеседование пройдено
// @Tags Кандидат
// @Description Отметка о пройденном собеседовании. После обоих собеседований кандидат переходит к предложению.
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "candidate ID"
// @Param	body body	 candidateapimodels.InterviewRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.CandidateView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate/{id}/validate_interview [put]
func (c *candidateApiController) validateInterview(ctx *fiber.Ctx) error {
	var payload candidateapimodels.InterviewRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return c.runAction(ctx, "Ошибка отметки собеседования", func(ctx *fiber.Ctx, b *board.Board, id string) (dbmodels.CandidateApplication, error) {
		return b.ValidateInterview(ctx.UserContext(), middleware.GetActor(ctx), id, payload.Type)
	})
}

// @Summary Предложение о работе
// @Tags Кандидат
// @Description Фиксирует предлагаемую зарплату
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "candidate ID"
// @Param	body body	 candidateapimodels.OfferRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.CandidateView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate/{id}/offer [put]
func (c *candidateApiController) offer(ctx *fiber.Ctx) error {
	var payload candidateapimodels.OfferRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return c.runAction(ctx, "Ошибка отправки предложения", func(ctx *fiber.Ctx, b *board.Board, id string) (dbmodels.CandidateApplication, error) {
		return b.ProposeOffer(ctx.UserContext(), middleware.GetActor(ctx), id, payload.Salary)
	})
}

// @Summary Отказ
// @Tags Кандидат
// @Description Отказ кандидату
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "candidate ID"
// @Param	body body	 candidateapimodels.RejectRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.CandidateView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate/{id}/reject [put]
func (c *candidateApiController) reject(ctx *fiber.Ctx) error {
	var payload candidateapimodels.RejectRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return c.runAction(ctx, "Ошибка отказа кандидату", func(ctx *fiber.Ctx, b *board.Board, id string) (dbmodels.CandidateApplication, error) {
		return b.RejectCandidate(ctx.UserContext(), middleware.GetActor(ctx), id, payload.Comment)
	})
}

// @Summary Найм
// @Tags Кандидат
// @Description Завершение найма после принятого предложения
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "candidate ID"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.CandidateView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate/{id}/finalize [put]
func (c *candidateApiController) finalize(ctx *fiber.Ctx) error {
	return c.runAction(ctx, "Ошибка завершения найма", func(ctx *fiber.Ctx, b *board.Board, id string) (dbmodels.CandidateApplication, error) {
		return b.FinalizeCandidate(ctx.UserContext(), middleware.GetActor(ctx), id)
	})
}

// @Summary История изменений
// @Tags Кандидат
// @Description История изменений кандидата
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "candidate ID"
// @Param	body body	 boardapimodels.HistoryFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]boardapimodels.HistoryView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate/{id}/history [post]
func (c *candidateApiController) history(ctx *fiber.Ctx) error {
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
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения истории кандидата")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Отчет по кандидату
// @Tags Кандидат
// @Description Карточка кандидата с историей этапов в PDF
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "candidate ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate/{id}/report [get]
func (c *candidateApiController) report(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	b, err := spaceBoard(ctx)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка загрузки доски")
	}
	rec, err := b.GetCandidate(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения кандидата")
	}
	posting, err := b.GetPosting(rec.RecruitmentID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения вакансии кандидата")
	}
	body, err := pdfexport.CandidateReport(rec, posting)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка формирования отчета")
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", pdfexport.ReportFileName(rec)))
	return ctx.Send(body)
}

// @Summary Загрузка резюме
// @Tags Кандидат
// @Description Загрузка резюме кандидата
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "candidate ID"
// @Param   cv 	formData 	file 			true 		"Файл резюме"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.CandidateView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate/{id}/cv [post]
func (c *candidateApiController) uploadCV(ctx *fiber.Ctx) error {
	if filestorage.Instance == nil {
		return c.SendError(ctx, c.GetLogger(ctx), errors.New("хранилище файлов не настроено"), "Хранилище файлов недоступно")
	}
	file, err := ctx.FormFile("cv")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не удалось получить файл резюме"))
	}
	return c.runAction(ctx, "Ошибка загрузки резюме", func(ctx *fiber.Ctx, b *board.Board, id string) (dbmodels.CandidateApplication, error) {
		if _, err := b.GetCandidate(id); err != nil {
			return dbmodels.CandidateApplication{}, err
		}
		reader, err := file.Open()
		if err != nil {
			return dbmodels.CandidateApplication{}, errors.Wrap(err, "ошибка чтения файла резюме")
		}
		defer reader.Close()
		ref, err := filestorage.Instance.UploadCV(ctx.UserContext(), b.SpaceID(), id, reader, file.Size, file.Filename, file.Header.Get(fiber.HeaderContentType))
		if err != nil {
			return dbmodels.CandidateApplication{}, err
		}
		return b.AttachCV(ctx.UserContext(), middleware.GetActor(ctx), id, ref)
	})
}

// @Summary Ссылка на резюме
// @Tags Кандидат
// @Description Временная ссылка на скачивание резюме
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "candidate ID"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.CVUrlView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidate/{id}/cv [get]
func (c *candidateApiController) getCV(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if filestorage.Instance == nil {
		return c.SendError(ctx, c.GetLogger(ctx), errors.New("хранилище файлов не настроено"), "Хранилище файлов недоступно")
	}
	b, err := spaceBoard(ctx)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка загрузки доски")
	}
	rec, err := b.GetCandidate(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения кандидата")
	}
	if rec.CvRef == "" {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("резюме не загружено"))
	}
	url, err := filestorage.Instance.GetCVUrl(ctx.UserContext(), rec.CvRef)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения ссылки на резюме")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(candidateapimodels.CVUrlView{Url: url}))
}
