package wsmodels

type ServerMessage struct {
	ToUserID string `json:"-"`
	Time     string `json:"time"`  // время события
	Code     string `json:"code"`  // код события (success/error)
	Title    string `json:"title"` // заголовок уведомления
	Msg      string `json:"msg"`   // текст события
}
