package candidateapimodels

import (
	"net/mail"
	"recruitment-board/models"
	dbmodels "recruitment-board/models/db"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type CandidateData struct {
	RecruitmentID  string `json:"recruitment_id"`  // Идентификатор вакансии
	CandidateName  string `json:"candidate_name"`  // ФИО кандидата
	CandidateEmail string `json:"candidate_email"` // Email для писем о решении
}

func (c CandidateData) Validate() error {
	if c.RecruitmentID == "" {
		return errors.New("не указана вакансия")
	}
	if strings.TrimSpace(c.CandidateName) == "" {
		return errors.New("не указано имя кандидата")
	}
	if c.CandidateEmail != "" {
		if _, err := mail.ParseAddress(c.CandidateEmail); err != nil {
			return errors.Errorf("некорректный email: %s", c.CandidateEmail)
		}
	}
	return nil
}

func (c CandidateData) ToDB() dbmodels.CandidateApplication {
	return dbmodels.CandidateApplication{
		RecruitmentID:  c.RecruitmentID,
		CandidateName:  strings.TrimSpace(c.CandidateName),
		CandidateEmail: c.CandidateEmail,
	}
}

type CandidateFilter struct {
	RecruitmentID string `json:"recruitment_id"` // Вакансия, пусто - все вакансии пространства
}

type CandidateView struct {
	ID                       string                `json:"id"`
	RecruitmentID            string                `json:"recruitment_id"`
	CandidateName            string                `json:"candidate_name"`
	CandidateEmail           string                `json:"candidate_email"`
	CurrentStage             string                `json:"current_stage"`
	BoardColumn              string                `json:"board_column"` // Колонка доски, соответствующая этапу
	StageHistory             dbmodels.StageHistory `json:"stage_history"`
	NormalInterviewPassed    bool                  `json:"normal_interview_passed"`
	TechnicalInterviewPassed bool                  `json:"technical_interview_passed"`
	ProposedSalary           *int                  `json:"proposed_salary,omitempty"`
	HasCV                    bool                  `json:"has_cv"`
	Pending                  bool                  `json:"pending"`
	Version                  int                   `json:"version"`
	CreatedAt                time.Time             `json:"created_at"`
	UpdatedAt                time.Time             `json:"updated_at"`
}

func CandidateConvert(rec dbmodels.CandidateApplication, pending bool) CandidateView {
	rec = rec.Clone()
	return CandidateView{
		ID:                       rec.ID,
		RecruitmentID:            rec.RecruitmentID,
		CandidateName:            rec.CandidateName,
		CandidateEmail:           rec.CandidateEmail,
		CurrentStage:             string(rec.CurrentStage),
		BoardColumn:              string(rec.CurrentStage.BoardColumn()),
		StageHistory:             rec.StageHistory,
		NormalInterviewPassed:    rec.NormalInterviewPassed,
		TechnicalInterviewPassed: rec.TechnicalInterviewPassed,
		ProposedSalary:           rec.ProposedSalary,
		HasCV:                    rec.CvRef != "",
		Pending:                  pending,
		Version:                  rec.Version,
		CreatedAt:                rec.CreatedAt,
		UpdatedAt:                rec.UpdatedAt,
	}
}

// TrackingView колонки трекинга кандидатов вакансии
type TrackingView struct {
	RecruitmentID string                `json:"recruitment_id,omitempty"`
	Columns       []CandidateColumnView `json:"columns"`
}

type CandidateColumnView struct {
	Stage       string          `json:"stage"`
	BoardColumn string          `json:"board_column"`
	Items       []CandidateView `json:"items"`
}

type InterviewRequest struct {
	Type models.InterviewType `json:"type"` // normal/technical
}

func (r InterviewRequest) Validate() error {
	if !r.Type.IsValid() {
		return errors.Errorf("неизвестный тип собеседования: «%s»", r.Type)
	}
	return nil
}

type OfferRequest struct {
	Salary int `json:"salary"` // Предлагаемая зарплата
}

func (r OfferRequest) Validate() error {
	if r.Salary <= 0 {
		return errors.New("не указана предлагаемая зарплата")
	}
	return nil
}

type RejectRequest struct {
	Comment string `json:"comment"` // Причина отказа
}

func (r RejectRequest) Validate() error {
	return nil
}

type CVUrlView struct {
	Url string `json:"url"` // Временная ссылка на резюме
}
