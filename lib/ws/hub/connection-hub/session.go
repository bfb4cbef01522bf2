package connectionhub

import (
	"context"
	"time"

	"github.com/gofiber/contrib/websocket"
	log "github.com/sirupsen/logrus"
)

const sendBufferSize = 16

type clientSession struct {
	conn *websocket.Conn

	// исходящие сообщения, буферизованы
	sendCh chan any
	ctx    context.Context
	stop   func()
}

func newSession(conn *websocket.Conn) clientSession {
	ctx, cancelFn := context.WithCancel(context.Background())
	sess := clientSession{
		stop:   cancelFn,
		ctx:    ctx,
		conn:   conn,
		sendCh: make(chan any, sendBufferSize),
	}
	go sess.startSend(ctx)
	return sess
}

// push не блокирует вызывающего: при переполненном буфере сообщение отбрасывается
func (s clientSession) push(msg any) {
	select {
	case <-s.ctx.Done():
	case s.sendCh <- msg:
	default:
		log.Warn("буфер уведомлений переполнен, сообщение отброшено")
	}
}

func (s clientSession) startSend(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			s.close()
			return
		case msg := <-s.sendCh:
			if err := s.send(msg); err != nil {
				log.WithError(err).Error("ошибка отправки сообщения")
			}
		}
	}
}

func (s clientSession) send(msg interface{}) error {
	if s.conn == nil || s.conn.Conn == nil {
		return nil
	}
	return s.conn.WriteJSON(msg)
}

func (s clientSession) close() {
	if s.conn == nil || s.conn.Conn == nil {
		return
	}
	err := s.conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second))
	if err != nil {
		log.WithError(err).Debug("ошибка закрытия соединения")
	}
}
