package dbmodels

import (
	"database/sql/driver"
	"encoding/json"
	"recruitment-board/models"

	"github.com/pkg/errors"
)

type BoardHistory struct {
	BaseSpaceModel
	ItemKind   models.ItemKind `gorm:"type:varchar(50)"`
	ItemID     string          `gorm:"type:varchar(36);index"`
	UserID     *string
	UserName   string
	ActionType ActionType   `gorm:"type:varchar(255)"`
	Changes    BoardChanges `gorm:"type:jsonb"`
}

func (j BoardChanges) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *BoardChanges) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, j)
	case string:
		return json.Unmarshal([]byte(v), j)
	}
	return errors.Errorf("неподдерживаемый тип изменений: %T", value)
}

type BoardChanges struct {
	Description string        `json:"description"` // Комментарий
	Data        []BoardChange `json:"data"`        // Список изменений
}

type BoardChange struct {
	Field    string      `json:"field"`     // Измененное поле
	OldValue interface{} `json:"old_value"` // Старое значение
	NewValue interface{} `json:"new_value"` // Новое значение
}

type ActionType string

const (
	HistoryTypeAdded              ActionType = "added"               // Запись добавлена
	HistoryTypeStageChange        ActionType = "stage_change"        // Переведен на другой этап
	HistoryTypeInterviewValidated ActionType = "interview_validated" // Собеседование пройдено
	HistoryTypeOffer              ActionType = "offer"               // Отправлено предложение
	HistoryTypeReject             ActionType = "reject"              // Кандидат отклонен
	HistoryTypeFinalize           ActionType = "finalize"            // Найм завершен
	HistoryTypeCv                 ActionType = "cv"                  // Загружено резюме
	HistoryTypeRollback           ActionType = "rollback"            // Изменение откачено после ошибки сохранения
)
