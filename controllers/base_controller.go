package controllers

import (
	"recruitment-board/fiberlog"
	"recruitment-board/middleware"
	"recruitment-board/models"
	apimodels "recruitment-board/models/api"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("ошибка распознавания запроса")
		return errors.New("не удалось получить данные из запроса")
	}
	return nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	id := ctx.Params("id")
	if id == "" {
		return "", errors.New("не указан идентификатор записи")
	}
	return id, nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	requestID, _ := ctx.Locals(fiberlog.LocalsRequestID).(string)
	return log.
		WithField("request_id", requestID).
		WithField("space_id", middleware.GetUserSpace(ctx)).
		WithField("user_id", middleware.GetUserID(ctx)).
		WithField("path", ctx.Path())
}

// SendError ошибки доски отдаются пользователю как есть, прочие скрываются за msg
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, msg string) error {
	status := ErrorStatus(err)
	if status >= fiber.StatusInternalServerError {
		logger.WithError(err).Error(msg)
		if models.IsPersistError(err) || models.IsLoadError(err) {
			return ctx.Status(status).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(status).JSON(apimodels.NewError(msg))
	}
	logger.WithError(err).Warn(msg)
	return ctx.Status(status).JSON(apimodels.NewError(err.Error()))
}

func ErrorStatus(err error) int {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, models.ErrItemBusy):
		return fiber.StatusConflict
	case models.IsInvalidStage(err), models.IsTransitionRefused(err):
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}
