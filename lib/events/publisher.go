package events

import (
	"context"
	"encoding/json"
	"recruitment-board/models"
	dbmodels "recruitment-board/models/db"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// StageChangeEvent подтвержденное хранилищем изменение на доске
type StageChangeEvent struct {
	SpaceID   string              `json:"space_id"`
	ItemKind  models.ItemKind     `json:"item_kind"`
	ItemID    string              `json:"item_id"`
	Action    dbmodels.ActionType `json:"action"`
	FromStage string              `json:"from_stage"`
	ToStage   string              `json:"to_stage"`
	UserID    string              `json:"user_id,omitempty"`
	Time      time.Time           `json:"time"`
}

type Publisher interface {
	PublishStageChange(ctx context.Context, event StageChangeEvent) error
	Close()
}

var Instance Publisher = noopPublisher{}

func Connect(url, subject string, timeout time.Duration) error {
	if url == "" {
		Instance = noopPublisher{}
		log.Info("NATS не настроен, события доски не публикуются")
		return nil
	}
	conn, err := nats.Connect(url,
		nats.Timeout(timeout),
		nats.ReconnectWait(time.Second),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return errors.Wrap(err, "ошибка подключения к NATS")
	}
	Instance = &natsPublisher{
		conn:    conn,
		subject: subject,
	}
	log.WithField("subject", subject).Info("публикация событий доски в NATS включена")
	return nil
}

type natsPublisher struct {
	conn    *nats.Conn
	subject string
}

func (p *natsPublisher) PublishStageChange(ctx context.Context, event StageChangeEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "ошибка сериализации события")
	}
	if err = p.conn.Publish(p.subject, data); err != nil {
		return errors.Wrap(err, "ошибка публикации события в NATS")
	}
	log.
		WithField("space_id", event.SpaceID).
		WithField("item_id", event.ItemID).
		WithField("subject", p.subject).
		Debug("опубликовано событие доски")
	return nil
}

func (p *natsPublisher) Close() {
	if p.conn != nil {
		p.conn.Close()
	}
}

type noopPublisher struct{}

func (noopPublisher) PublishStageChange(ctx context.Context, event StageChangeEvent) error {
	return nil
}

func (noopPublisher) Close() {}
