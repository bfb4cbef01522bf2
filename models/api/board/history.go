package boardapimodels

import (
	apimodels "recruitment-board/models/api"
	dbmodels "recruitment-board/models/db"
	"time"
)

type HistoryFilter struct {
	apimodels.Pagination
	ActionType dbmodels.ActionType `json:"action_type"` // Только указанный тип действия
}

type HistoryView struct {
	ItemID     string                `json:"item_id"`    // Идентификатор вакансии/кандидата
	ItemKind   string                `json:"item_kind"`  // posting/candidate
	UserID     string                `json:"user_id"`    // Идентификатор сотрудника
	UserName   string                `json:"user_name"`  // Имя сотрудника
	ActionType dbmodels.ActionType   `json:"action_type"` // Тип действия
	Changes    dbmodels.BoardChanges `json:"changes"`     // Изменения
	CreatedAt  time.Time             `json:"created_at"`
}

func HistoryConvert(rec dbmodels.BoardHistory) HistoryView {
	result := HistoryView{
		ItemID:     rec.ItemID,
		ItemKind:   string(rec.ItemKind),
		UserName:   rec.UserName,
		ActionType: rec.ActionType,
		Changes:    rec.Changes,
		CreatedAt:  rec.CreatedAt,
	}
	if rec.UserID != nil {
		result.UserID = *rec.UserID
	}
	return result
}
