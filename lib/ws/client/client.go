package wsclient

import (
	"github.com/gofiber/contrib/websocket"
	log "github.com/sirupsen/logrus"
)

func NewClient(userID string, c *websocket.Conn) *WsClient {
	return &WsClient{
		conn:   c,
		userID: userID,
	}
}

// WsClient входящий поток клиента. Уведомления идут только от сервера,
// входящие сообщения читаются ради закрытия соединения и ping/pong.
type WsClient struct {
	conn   *websocket.Conn
	userID string
}

var closeCodes []int

func init() {
	for i := websocket.CloseNormalClosure; i <= websocket.CloseTLSHandshake; i++ {
		closeCodes = append(closeCodes, i)
	}
}

func (c *WsClient) Dispatch() {
	if c.conn == nil {
		return
	}
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, closeCodes...) {
				log.WithError(err).WithField("user_id", c.userID).Error("ошибка получения сообщения")
			}
			return
		}
		log.
			WithField("user_id", c.userID).
			WithField("size", len(data)).
			Debug("входящее ws сообщение проигнорировано")
	}
}
