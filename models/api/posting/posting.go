package postingapimodels

import (
	"recruitment-board/models"
	dbmodels "recruitment-board/models/db"
	"strings"

	"github.com/pkg/errors"
)

type PostingData struct {
	PositionTitle string                 `json:"position_title"` // Название должности
	Department    string                 `json:"department"`     // Подразделение
	Location      string                 `json:"location"`       // Локация
	Priority      models.PostingPriority `json:"priority"`       // Приоритет (Urgente/Haute/Moyenne/Basse)
}

func (p PostingData) Validate() error {
	if strings.TrimSpace(p.PositionTitle) == "" {
		return errors.New("не указано название должности")
	}
	if p.Priority != "" && !p.Priority.IsValid() {
		return errors.Errorf("неизвестный приоритет: «%s»", p.Priority)
	}
	return nil
}

func (p PostingData) ToDB() dbmodels.RecruitmentPosting {
	priority := p.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	return dbmodels.RecruitmentPosting{
		PositionTitle: strings.TrimSpace(p.PositionTitle),
		Department:    p.Department,
		Location:      p.Location,
		Priority:      priority,
		Status:        models.PostingStatusOpened,
	}
}
