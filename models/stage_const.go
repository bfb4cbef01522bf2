package models

type PostingStatus string

const (
	PostingStatusOpened     PostingStatus = "Ouverte"
	PostingStatusInProgress PostingStatus = "En cours"
	PostingStatusInterviews PostingStatus = "Entretiens"
	PostingStatusOffer      PostingStatus = "Offre"
	PostingStatusClosed     PostingStatus = "Fermée"
)

// PostingStatuses порядок колонок доски
var PostingStatuses = []PostingStatus{
	PostingStatusOpened,
	PostingStatusInProgress,
	PostingStatusInterviews,
	PostingStatusOffer,
	PostingStatusClosed,
}

var postingStatusAliases = map[string]PostingStatus{
	"Ouvert": PostingStatusOpened,
	"Fermé":  PostingStatusClosed,
	"Fermee": PostingStatusClosed,
}

func (s PostingStatus) IsValid() bool {
	for _, status := range PostingStatuses {
		if status == s {
			return true
		}
	}
	return false
}

// ParsePostingStatus строгий разбор, учитывает устаревшие написания
func ParsePostingStatus(value string) (PostingStatus, bool) {
	status := PostingStatus(value)
	if status.IsValid() {
		return status, true
	}
	if alias, ok := postingStatusAliases[value]; ok {
		return alias, true
	}
	return "", false
}

// CoercePostingStatus неизвестный или пустой статус приводится к начальному
func CoercePostingStatus(value string) PostingStatus {
	if status, ok := ParsePostingStatus(value); ok {
		return status
	}
	return PostingStatusOpened
}

type CandidateStage string

const (
	CandidateStageApplied        CandidateStage = "Candidature déposée"
	CandidateStageCvReview       CandidateStage = "CV en cours d'analyse"
	CandidateStageHrInterview    CandidateStage = "Entretien RH"
	CandidateStageTechTest       CandidateStage = "Test technique"
	CandidateStageTechInterview  CandidateStage = "Entretien technique"
	CandidateStageFinalInterview CandidateStage = "Entretien final"
	CandidateStageOfferSent      CandidateStage = "Proposition envoyée"
	CandidateStageHired          CandidateStage = "Recrutement finalisé"
	CandidateStageRejected       CandidateStage = "Candidature rejetée"
)

// CandidateStages упорядоченная цепочка этапов, отказ в нее не входит
var CandidateStages = []CandidateStage{
	CandidateStageApplied,
	CandidateStageCvReview,
	CandidateStageHrInterview,
	CandidateStageTechTest,
	CandidateStageTechInterview,
	CandidateStageFinalInterview,
	CandidateStageOfferSent,
	CandidateStageHired,
}

// Index позиция в цепочке, -1 для отказа и неизвестных значений
func (s CandidateStage) Index() int {
	for idx, stage := range CandidateStages {
		if stage == s {
			return idx
		}
	}
	return -1
}

func (s CandidateStage) IsValid() bool {
	return s == CandidateStageRejected || s.Index() >= 0
}

func (s CandidateStage) IsTerminal() bool {
	return s == CandidateStageHired || s == CandidateStageRejected
}

func (s CandidateStage) IsInterview() bool {
	return s.BoardColumn() == PostingStatusInterviews
}

// BoardColumn колонка доски, в которой находится карточка кандидата
func (s CandidateStage) BoardColumn() PostingStatus {
	switch s {
	case CandidateStageApplied:
		return PostingStatusOpened
	case CandidateStageCvReview:
		return PostingStatusInProgress
	case CandidateStageHrInterview, CandidateStageTechTest, CandidateStageTechInterview, CandidateStageFinalInterview:
		return PostingStatusInterviews
	case CandidateStageOfferSent:
		return PostingStatusOffer
	}
	return PostingStatusClosed
}

func ParseCandidateStage(value string) (CandidateStage, bool) {
	stage := CandidateStage(value)
	if stage.IsValid() {
		return stage, true
	}
	return "", false
}

func CoerceCandidateStage(value string) CandidateStage {
	if stage, ok := ParseCandidateStage(value); ok {
		return stage
	}
	return CandidateStageApplied
}

// AllCandidateColumns колонки трекинга кандидатов, включая отказ
func AllCandidateColumns() []CandidateStage {
	result := make([]CandidateStage, 0, len(CandidateStages)+1)
	result = append(result, CandidateStages...)
	return append(result, CandidateStageRejected)
}
