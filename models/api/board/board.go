package boardapimodels

import (
	"recruitment-board/models"
	dbmodels "recruitment-board/models/db"
	"time"

	"github.com/pkg/errors"
)

// BoardView состояние доски вакансий для отрисовки
type BoardView struct {
	Columns    []ColumnView `json:"columns"`
	DraggingID string       `json:"dragging_id,omitempty"` // Перетаскиваемая пользователем карточка
}

type ColumnView struct {
	Stage      string        `json:"stage"`      // Колонка
	Organizing bool          `json:"organizing"` // Идет сортировка колонки
	Items      []PostingView `json:"items"`
}

type PostingView struct {
	ID             string    `json:"id"`
	PositionTitle  string    `json:"position_title"`
	Department     string    `json:"department"`
	Location       string    `json:"location"`
	Priority       string    `json:"priority"`
	Status         string    `json:"status"`
	CandidateCount int       `json:"candidate_count"`
	Pending        bool      `json:"pending"` // Сохранение еще не подтверждено, карточка недоступна
	Version        int       `json:"version"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func PostingConvert(rec dbmodels.RecruitmentPosting, pending bool) PostingView {
	return PostingView{
		ID:             rec.ID,
		PositionTitle:  rec.PositionTitle,
		Department:     rec.Department,
		Location:       rec.Location,
		Priority:       string(rec.Priority),
		Status:         string(rec.Status),
		CandidateCount: rec.CandidateCount,
		Pending:        pending,
		Version:        rec.Version,
		CreatedAt:      rec.CreatedAt,
		UpdatedAt:      rec.UpdatedAt,
	}
}

type DragEndRequest struct {
	Stage string `json:"stage"` // Колонка/этап, на который брошена карточка
}

func (r DragEndRequest) Validate() error {
	if r.Stage == "" {
		return errors.New("не указан этап")
	}
	return nil
}

type SortColumnRequest struct {
	Stage string `json:"stage"` // Сортируемая колонка
}

func (r SortColumnRequest) Validate() error {
	if r.Stage == "" {
		return errors.New("не указана колонка")
	}
	if _, ok := models.ParsePostingStatus(r.Stage); !ok {
		return models.InvalidStageError{Stage: r.Stage}
	}
	return nil
}
