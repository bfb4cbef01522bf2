package apimodels

type Response struct {
	Status  string      `json:"status"`            //результат обработки fail/success
	Message string      `json:"message,omitempty"` //сообщение ошибки
	Data    interface{} `json:"data,omitempty"`    //данные ответа
}

type ScrollerResponse struct {
	Response
	RowCount int64 `json:"row_count,omitempty"` //для списков, общее кол-во записей
}

const (
	statusFail    = "fail"
	statusSuccess = "success"
)

func NewError(message string) Response {
	return Response{
		Status:  statusFail,
		Message: message,
	}
}

func NewResponse(data interface{}) Response {
	return Response{
		Status: statusSuccess,
		Data:   data,
	}
}

func NewScrollerResponse(data interface{}, rowCount int64) ScrollerResponse {
	return ScrollerResponse{
		Response: NewResponse(data),
		RowCount: rowCount,
	}
}

type Pagination struct {
	Limit int `json:"limit"` // Записей на странице
	Page  int `json:"page"`  // Страница (1,2,3..)
}

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

func (r Pagination) GetPage() (page, limit int) {
	page = 1
	limit = defaultPageLimit
	if r.Page > 0 {
		page = r.Page
	}
	if r.Limit > 0 {
		limit = r.Limit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}
