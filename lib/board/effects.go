package board

import (
	"context"
	"fmt"

	"recruitment-board/lib/events"
	"recruitment-board/models"
	dbmodels "recruitment-board/models/db"
)

// побочные действия после подтвержденного сохранения, ошибки только логируются

func (b *Board) postingChanged(ctx context.Context, actor models.Actor, before, after dbmodels.RecruitmentPosting, action dbmodels.ActionType) {
	changes := dbmodels.BoardChanges{
		Description: fmt.Sprintf("Вакансия «%s» перенесена в колонку «%s»", after.PositionTitle, after.Status),
		Data:        postingDiff(before, after),
	}
	b.saveHistory(ctx, actor, models.ItemKindPosting, after.ID, action, changes)
	b.publish(ctx, events.StageChangeEvent{
		SpaceID:   b.spaceID,
		ItemKind:  models.ItemKindPosting,
		ItemID:    after.ID,
		Action:    action,
		FromStage: string(before.Status),
		ToStage:   string(after.Status),
		UserID:    actor.ID,
		Time:      b.deps.Now(),
	})
}

func (b *Board) candidateChanged(ctx context.Context, actor models.Actor, before, after dbmodels.CandidateApplication, action dbmodels.ActionType) {
	changes := dbmodels.BoardChanges{
		Description: candidateDescription(after, action),
		Data:        candidateDiff(before, after),
	}
	b.saveHistory(ctx, actor, models.ItemKindCandidate, after.ID, action, changes)
	if before.CurrentStage != after.CurrentStage {
		b.publish(ctx, events.StageChangeEvent{
			SpaceID:   b.spaceID,
			ItemKind:  models.ItemKindCandidate,
			ItemID:    after.ID,
			Action:    action,
			FromStage: string(before.CurrentStage),
			ToStage:   string(after.CurrentStage),
			UserID:    actor.ID,
			Time:      b.deps.Now(),
		})
	}
	b.sendCandidateMail(after, action)
}

func (b *Board) saveHistory(ctx context.Context, actor models.Actor, kind models.ItemKind, itemID string, action dbmodels.ActionType, changes dbmodels.BoardChanges) {
	if b.deps.History == nil {
		return
	}
	b.deps.History.Save(ctx, b.spaceID, kind, itemID, actor, action, changes)
}

func (b *Board) publish(ctx context.Context, event events.StageChangeEvent) {
	if err := b.deps.Events.PublishStageChange(ctx, event); err != nil {
		b.getLogger(models.Actor{ID: event.UserID}).
			WithField("item_id", event.ItemID).
			WithError(err).
			Warn("событие доски не опубликовано")
	}
}

func (b *Board) sendCandidateMail(rec dbmodels.CandidateApplication, action dbmodels.ActionType) {
	if b.deps.Mail == nil {
		return
	}
	positionTitle := ""
	if posting, ok := b.postings.Get(rec.RecruitmentID); ok {
		positionTitle = posting.PositionTitle
	}
	if err := b.deps.Mail.Notify(rec, action, positionTitle); err != nil {
		b.getLogger(models.Actor{}).
			WithField("item_id", rec.ID).
			WithError(err).
			Warn("письмо кандидату не отправлено")
	}
}

func candidateDescription(rec dbmodels.CandidateApplication, action dbmodels.ActionType) string {
	switch action {
	case dbmodels.HistoryTypeInterviewValidated:
		return fmt.Sprintf("Кандидат %s: собеседование пройдено", rec.CandidateName)
	case dbmodels.HistoryTypeOffer:
		return fmt.Sprintf("Кандидату %s отправлено предложение", rec.CandidateName)
	case dbmodels.HistoryTypeReject:
		if last, ok := rec.StageHistory.Last(); ok && last.Comment != "" {
			return fmt.Sprintf("Кандидат %s отклонен: %s", rec.CandidateName, last.Comment)
		}
		return fmt.Sprintf("Кандидат %s отклонен", rec.CandidateName)
	case dbmodels.HistoryTypeFinalize:
		return fmt.Sprintf("Кандидат %s принят на работу", rec.CandidateName)
	case dbmodels.HistoryTypeCv:
		return fmt.Sprintf("Кандидат %s: загружено резюме", rec.CandidateName)
	}
	return fmt.Sprintf("Кандидат %s переведен на этап «%s»", rec.CandidateName, rec.CurrentStage)
}

func postingDiff(before, after dbmodels.RecruitmentPosting) []dbmodels.BoardChange {
	result := []dbmodels.BoardChange{}
	if before.Status != after.Status {
		result = append(result, dbmodels.BoardChange{Field: "status", OldValue: before.Status, NewValue: after.Status})
	}
	if before.CandidateCount != after.CandidateCount {
		result = append(result, dbmodels.BoardChange{Field: "candidate_count", OldValue: before.CandidateCount, NewValue: after.CandidateCount})
	}
	return result
}

func candidateDiff(before, after dbmodels.CandidateApplication) []dbmodels.BoardChange {
	result := []dbmodels.BoardChange{}
	if before.CurrentStage != after.CurrentStage {
		result = append(result, dbmodels.BoardChange{Field: "current_stage", OldValue: before.CurrentStage, NewValue: after.CurrentStage})
	}
	if before.NormalInterviewPassed != after.NormalInterviewPassed {
		result = append(result, dbmodels.BoardChange{Field: "normal_interview_passed", OldValue: before.NormalInterviewPassed, NewValue: after.NormalInterviewPassed})
	}
	if before.TechnicalInterviewPassed != after.TechnicalInterviewPassed {
		result = append(result, dbmodels.BoardChange{Field: "technical_interview_passed", OldValue: before.TechnicalInterviewPassed, NewValue: after.TechnicalInterviewPassed})
	}
	if salaryOf(before) != salaryOf(after) {
		result = append(result, dbmodels.BoardChange{Field: "proposed_salary", OldValue: salaryOf(before), NewValue: salaryOf(after)})
	}
	if before.CvRef != after.CvRef {
		result = append(result, dbmodels.BoardChange{Field: "cv_ref", OldValue: before.CvRef, NewValue: after.CvRef})
	}
	return result
}

func salaryOf(rec dbmodels.CandidateApplication) int {
	if rec.ProposedSalary == nil {
		return 0
	}
	return *rec.ProposedSalary
}
