package initializers

import (
	"time"

	"recruitment-board/config"
	"recruitment-board/lib/events"

	log "github.com/sirupsen/logrus"
)

// InitNats при недоступном NATS события доски не публикуются
func InitNats() {
	err := events.Connect(config.Conf.Nats.Url, config.Conf.Nats.Subject,
		time.Duration(config.Conf.Nats.ConnTimeoutMs)*time.Millisecond)
	if err != nil {
		log.WithError(err).Error("Ошибка подключения к NATS")
	}
}
