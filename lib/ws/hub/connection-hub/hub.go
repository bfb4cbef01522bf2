package connectionhub

import (
	"recruitment-board/models"
	wsmodels "recruitment-board/models/ws"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	AddClient(userID string, conn *websocket.Conn)
	DeleteClient(userID string)
	SendMessage(msg wsmodels.ServerMessage)
	SendClose(userID string)
	IsConnected(userID string) bool
	Success(userID string, tpl models.PushTplCode, args ...interface{})
	Error(userID string, tpl models.PushTplCode, args ...interface{})
}

var Instance Provider

func Init() {
	Instance = NewInstance()
}

func NewInstance() Provider {
	return &impl{
		clients: map[string]clientSession{},
	}
}

type impl struct {
	mu      sync.RWMutex
	clients map[string]clientSession //map[userID]
}

func (i *impl) DeleteClient(userID string) {
	i.mu.Lock()
	sess, ok := i.clients[userID]
	if ok {
		delete(i.clients, userID)
	}
	i.mu.Unlock()
	if ok {
		sess.stop()
	}
}

func (i *impl) AddClient(userID string, conn *websocket.Conn) {
	i.mu.Lock()
	oldSess, ok := i.clients[userID]
	i.clients[userID] = newSession(conn)
	i.mu.Unlock()
	if ok {
		oldSess.stop()
	}
}

func (i *impl) SendMessage(msg wsmodels.ServerMessage) {
	i.mu.RLock()
	sess, ok := i.clients[msg.ToUserID]
	i.mu.RUnlock()
	if !ok {
		log.
			WithField("user_id", msg.ToUserID).
			WithField("msg", msg.Msg).
			Debug("пользователь не подключен, уведомление пропущено")
		return
	}
	sess.push(msg)
}

func (i *impl) SendClose(userID string) {
	i.mu.RLock()
	sess, ok := i.clients[userID]
	i.mu.RUnlock()
	if ok {
		sess.stop()
	}
}

func (i *impl) IsConnected(userID string) bool {
	i.mu.RLock()
	sess, ok := i.clients[userID]
	i.mu.RUnlock()
	if !ok || sess.conn == nil || sess.conn.Conn == nil {
		return false
	}
	return true
}

func (i *impl) Success(userID string, tpl models.PushTplCode, args ...interface{}) {
	i.SendMessage(NewMessage(userID, models.PushSuccess, tpl, args...))
}

func (i *impl) Error(userID string, tpl models.PushTplCode, args ...interface{}) {
	i.SendMessage(NewMessage(userID, models.PushError, tpl, args...))
}

func NewMessage(userID string, code models.PushCode, tpl models.PushTplCode, args ...interface{}) wsmodels.ServerMessage {
	return wsmodels.ServerMessage{
		ToUserID: userID,
		Time:     time.Now().Format("02.01.2006 15:04:05"),
		Code:     string(code),
		Title:    models.PushCodeMap[tpl].Title,
		Msg:      tpl.Format(args...),
	}
}
