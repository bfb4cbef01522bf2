package dbmodels

import (
	"database/sql/driver"
	"encoding/json"
	"recruitment-board/models"
	"time"

	"github.com/pkg/errors"
)

type CandidateApplication struct {
	BaseSpaceModel
	VersionedModel
	RecruitmentID            string `gorm:"type:varchar(36);index"`
	CandidateName            string `gorm:"type:varchar(255)"`
	CandidateEmail           string `gorm:"type:varchar(255)"`
	CvRef                    string
	CurrentStage             models.CandidateStage `gorm:"type:varchar(100);index"`
	StageHistory             StageHistory          `gorm:"type:jsonb"`
	NormalInterviewPassed    bool
	TechnicalInterviewPassed bool
	ProposedSalary           *int
}

func (c CandidateApplication) InterviewsPassed() bool {
	return c.NormalInterviewPassed && c.TechnicalInterviewPassed
}

func (c CandidateApplication) HasOffer() bool {
	return c.ProposedSalary != nil && *c.ProposedSalary > 0
}

// Clone копия без общих ссылок со снимком
func (c CandidateApplication) Clone() CandidateApplication {
	result := c
	if c.StageHistory != nil {
		result.StageHistory = append(StageHistory{}, c.StageHistory...)
	}
	if c.ProposedSalary != nil {
		salary := *c.ProposedSalary
		result.ProposedSalary = &salary
	}
	return result
}

type StageHistoryEntry struct {
	Stage     models.CandidateStage `json:"stage"`
	Timestamp time.Time             `json:"timestamp"`
	Comment   string                `json:"comment,omitempty"`
}

type StageHistory []StageHistoryEntry

func (h StageHistory) Last() (StageHistoryEntry, bool) {
	if len(h) == 0 {
		return StageHistoryEntry{}, false
	}
	return h[len(h)-1], true
}

func (h StageHistory) Value() (driver.Value, error) {
	if h == nil {
		h = StageHistory{}
	}
	valueString, err := json.Marshal(h)
	return string(valueString), err
}

func (h *StageHistory) Scan(value interface{}) error {
	var data []byte
	switch v := value.(type) {
	case nil:
		*h = StageHistory{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.Errorf("неподдерживаемый тип истории этапов: %T", value)
	}
	return json.Unmarshal(data, h)
}

type CandidatePatch struct {
	CurrentStage             *models.CandidateStage
	StageHistory             StageHistory // nil - без изменений
	NormalInterviewPassed    *bool
	TechnicalInterviewPassed *bool
	ProposedSalary           *int
	CvRef                    *string
}

func (p CandidatePatch) IsEmpty() bool {
	return p.CurrentStage == nil && p.StageHistory == nil && p.NormalInterviewPassed == nil &&
		p.TechnicalInterviewPassed == nil && p.ProposedSalary == nil && p.CvRef == nil
}

func (p CandidatePatch) Apply(rec *CandidateApplication) {
	if p.CurrentStage != nil {
		rec.CurrentStage = *p.CurrentStage
	}
	if p.StageHistory != nil {
		rec.StageHistory = append(StageHistory{}, p.StageHistory...)
	}
	if p.NormalInterviewPassed != nil {
		rec.NormalInterviewPassed = *p.NormalInterviewPassed
	}
	if p.TechnicalInterviewPassed != nil {
		rec.TechnicalInterviewPassed = *p.TechnicalInterviewPassed
	}
	if p.ProposedSalary != nil {
		salary := *p.ProposedSalary
		rec.ProposedSalary = &salary
	}
	if p.CvRef != nil {
		rec.CvRef = *p.CvRef
	}
}

func (p CandidatePatch) UpdMap() map[string]interface{} {
	updMap := map[string]interface{}{}
	if p.CurrentStage != nil {
		updMap["current_stage"] = *p.CurrentStage
	}
	if p.StageHistory != nil {
		updMap["stage_history"] = p.StageHistory
	}
	if p.NormalInterviewPassed != nil {
		updMap["normal_interview_passed"] = *p.NormalInterviewPassed
	}
	if p.TechnicalInterviewPassed != nil {
		updMap["technical_interview_passed"] = *p.TechnicalInterviewPassed
	}
	if p.ProposedSalary != nil {
		updMap["proposed_salary"] = *p.ProposedSalary
	}
	if p.CvRef != nil {
		updMap["cv_ref"] = *p.CvRef
	}
	return updMap
}
