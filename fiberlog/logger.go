package fiberlog

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// getLogrusFields calls FuncTag functions on matching keys
func getLogrusFields(ftm map[string]FuncTag, c *fiber.Ctx, d *data) log.Fields {
	f := make(log.Fields)
	for k, ft := range ftm {
		value := ft(c, d)
		strValue, ok := value.(string)
		if ok {
			if strValue != "" {
				f[k] = strValue
			}
		} else {
			f[k] = value
		}
	}
	return f
}

// New creates a new middleware handler
func New(config ...Config) fiber.Handler {
	cfg := ConfigDefault
	if len(config) != 0 {
		cfg = config[0]
	}
	pid := os.Getpid()
	ftm := getFuncTagMap(cfg)
	return func(c *fiber.Ctx) error {
		d := &data{pid: pid, start: time.Now()}
		requestID := c.Get(fiber.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Locals(LocalsRequestID, requestID)
		c.Set(fiber.HeaderXRequestID, requestID)

		err := c.Next()
		d.end = time.Now()
		if c.Method() == fiber.MethodOptions {
			return err
		}

		var entry *log.Entry
		if cfg.Logger == nil {
			entry = log.WithFields(getLogrusFields(ftm, c, d))
		} else {
			entry = cfg.Logger.WithFields(getLogrusFields(ftm, c, d))
		}
		if c.Response().StatusCode() >= fiber.StatusBadRequest {
			entry.Warn("запрос api")
		} else {
			entry.Info("запрос api")
		}
		return err
	}
}
