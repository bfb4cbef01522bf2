// Package stagetransition вычисляет результат перехода между этапами воронки.
// Функции не обращаются к хранилищам и не меняют переданные записи.
package stagetransition

import (
	"fmt"
	"recruitment-board/models"
	dbmodels "recruitment-board/models/db"
	"time"
)

type PostingResult struct {
	NoOp    bool
	Posting dbmodels.RecruitmentPosting
	Patch   dbmodels.PostingPatch
}

// RequestPostingTransition перемещение вакансии между колонками доски
func RequestPostingTransition(rec dbmodels.RecruitmentPosting, target string) (PostingResult, error) {
	status, ok := models.ParsePostingStatus(target)
	if !ok {
		return PostingResult{}, models.InvalidStageError{Stage: target}
	}
	if status == rec.Status {
		return PostingResult{NoOp: true, Posting: rec}, nil
	}
	rec.Status = status
	return PostingResult{
		Posting: rec,
		Patch:   dbmodels.PostingPatch{Status: &status},
	}, nil
}

type CandidateResult struct {
	NoOp      bool
	Action    dbmodels.ActionType
	Candidate dbmodels.CandidateApplication
	Patch     dbmodels.CandidatePatch
}

// NextStage этап, следующий за переданным в цепочке
func NextStage(stage models.CandidateStage) (models.CandidateStage, bool) {
	idx := stage.Index()
	if idx < 0 || idx >= len(models.CandidateStages)-1 {
		return "", false
	}
	return models.CandidateStages[idx+1], true
}

// RequestCandidateTransition перенос карточки кандидата на этап
func RequestCandidateTransition(rec dbmodels.CandidateApplication, target string, now time.Time) (CandidateResult, error) {
	stage, ok := models.ParseCandidateStage(target)
	if !ok {
		return CandidateResult{}, models.InvalidStageError{Stage: target}
	}
	if stage == rec.CurrentStage {
		return noOp(rec), nil
	}
	if rec.CurrentStage.IsTerminal() {
		return CandidateResult{}, terminalRefused(rec)
	}
	switch stage {
	case models.CandidateStageRejected:
		return Reject(rec, "", now)
	case models.CandidateStageHired:
		return Finalize(rec, now)
	}
	if stage.Index() < rec.CurrentStage.Index() {
		return CandidateResult{}, models.NewTransitionRefused("возврат кандидата на предыдущий этап «%s» недоступен", stage)
	}
	if stage.Index() >= models.CandidateStageOfferSent.Index() && !rec.InterviewsPassed() {
		return CandidateResult{}, interviewsRefused()
	}
	c := newChange(rec)
	c.moveTo(stage, "", now)
	return c.result(dbmodels.HistoryTypeStageChange), nil
}

// Advance перевод на следующий этап цепочки
func Advance(rec dbmodels.CandidateApplication, now time.Time) (CandidateResult, error) {
	if rec.CurrentStage.IsTerminal() {
		return noOp(rec), nil
	}
	next, ok := NextStage(rec.CurrentStage)
	if !ok {
		return noOp(rec), nil
	}
	if next == models.CandidateStageHired {
		return Finalize(rec, now)
	}
	if next == models.CandidateStageOfferSent && !rec.InterviewsPassed() {
		return CandidateResult{}, interviewsRefused()
	}
	c := newChange(rec)
	c.moveTo(next, "", now)
	return c.result(dbmodels.HistoryTypeStageChange), nil
}

// ValidateInterview отмечает собеседование пройденным.
// Когда пройдены оба собеседования, кандидат переходит к предложению.
func ValidateInterview(rec dbmodels.CandidateApplication, interviewType string, now time.Time) (CandidateResult, error) {
	kind := models.InterviewType(interviewType)
	if !kind.IsValid() {
		return CandidateResult{}, models.NewTransitionRefused("неизвестный тип собеседования: «%s»", interviewType)
	}
	if !rec.CurrentStage.IsInterview() {
		return CandidateResult{}, models.NewTransitionRefused("подтверждение собеседования недоступно на этапе «%s»", rec.CurrentStage)
	}
	c := newChange(rec)
	passed := true
	switch kind {
	case models.InterviewTypeNormal:
		if rec.NormalInterviewPassed {
			return noOp(rec), nil
		}
		c.rec.NormalInterviewPassed = true
		c.patch.NormalInterviewPassed = &passed
	case models.InterviewTypeTechnical:
		if rec.TechnicalInterviewPassed {
			return noOp(rec), nil
		}
		c.rec.TechnicalInterviewPassed = true
		c.patch.TechnicalInterviewPassed = &passed
	}
	if c.rec.InterviewsPassed() {
		c.moveTo(models.CandidateStageOfferSent, "собеседования пройдены", now)
	}
	return c.result(dbmodels.HistoryTypeInterviewValidated), nil
}

// ProposeOffer фиксирует предлагаемую зарплату
func ProposeOffer(rec dbmodels.CandidateApplication, salary int, now time.Time) (CandidateResult, error) {
	if salary <= 0 {
		return CandidateResult{}, models.NewTransitionRefused("не указана предлагаемая зарплата")
	}
	if rec.CurrentStage.IsTerminal() {
		return CandidateResult{}, terminalRefused(rec)
	}
	if !rec.InterviewsPassed() {
		return CandidateResult{}, interviewsRefused()
	}
	if rec.CurrentStage == models.CandidateStageOfferSent && rec.HasOffer() && *rec.ProposedSalary == salary {
		return noOp(rec), nil
	}
	c := newChange(rec)
	c.rec.ProposedSalary = &salary
	c.patch.ProposedSalary = &salary
	if rec.CurrentStage != models.CandidateStageOfferSent {
		c.moveTo(models.CandidateStageOfferSent, fmt.Sprintf("предложение: %d", salary), now)
	}
	return c.result(dbmodels.HistoryTypeOffer), nil
}

// Reject отказ доступен с любого незавершенного этапа
func Reject(rec dbmodels.CandidateApplication, comment string, now time.Time) (CandidateResult, error) {
	switch rec.CurrentStage {
	case models.CandidateStageRejected:
		return noOp(rec), nil
	case models.CandidateStageHired:
		return CandidateResult{}, terminalRefused(rec)
	}
	c := newChange(rec)
	c.moveTo(models.CandidateStageRejected, comment, now)
	return c.result(dbmodels.HistoryTypeReject), nil
}

// Finalize завершение найма после принятого предложения
func Finalize(rec dbmodels.CandidateApplication, now time.Time) (CandidateResult, error) {
	switch rec.CurrentStage {
	case models.CandidateStageHired:
		return noOp(rec), nil
	case models.CandidateStageRejected:
		return CandidateResult{}, terminalRefused(rec)
	}
	if rec.CurrentStage != models.CandidateStageOfferSent {
		return CandidateResult{}, models.NewTransitionRefused("завершение найма доступно только после отправки предложения")
	}
	if !rec.InterviewsPassed() {
		return CandidateResult{}, interviewsRefused()
	}
	if !rec.HasOffer() {
		return CandidateResult{}, models.NewTransitionRefused("предложение по зарплате не зафиксировано")
	}
	c := newChange(rec)
	c.moveTo(models.CandidateStageHired, "", now)
	return c.result(dbmodels.HistoryTypeFinalize), nil
}

type change struct {
	rec   dbmodels.CandidateApplication
	patch dbmodels.CandidatePatch
}

func newChange(rec dbmodels.CandidateApplication) *change {
	return &change{rec: rec.Clone()}
}

// moveTo каждый переход дописывает историю, текущий этап всегда равен последней записи
func (c *change) moveTo(stage models.CandidateStage, comment string, now time.Time) {
	c.rec.CurrentStage = stage
	c.rec.StageHistory = append(c.rec.StageHistory, dbmodels.StageHistoryEntry{
		Stage:     stage,
		Timestamp: now,
		Comment:   comment,
	})
	c.patch.CurrentStage = &stage
	c.patch.StageHistory = append(dbmodels.StageHistory{}, c.rec.StageHistory...)
}

func (c *change) result(action dbmodels.ActionType) CandidateResult {
	return CandidateResult{
		Action:    action,
		Candidate: c.rec,
		Patch:     c.patch,
	}
}

func noOp(rec dbmodels.CandidateApplication) CandidateResult {
	return CandidateResult{NoOp: true, Candidate: rec.Clone()}
}

func terminalRefused(rec dbmodels.CandidateApplication) error {
	return models.NewTransitionRefused("кандидат на завершающем этапе «%s», изменения недоступны", rec.CurrentStage)
}

func interviewsRefused() error {
	return models.NewTransitionRefused("переход к предложению возможен только после прохождения обоих собеседований")
}
