package board

import (
	"context"
	"fmt"
	"time"

	stagetransition "recruitment-board/lib/stage-transition"
	"recruitment-board/lib/utils/lock"
	"recruitment-board/models"
	candidateapimodels "recruitment-board/models/api/candidate"
	dbmodels "recruitment-board/models/db"

	"github.com/pkg/errors"
)

type candidateRule func(rec dbmodels.CandidateApplication, now time.Time) (stagetransition.CandidateResult, error)

func (b *Board) GetCandidate(id string) (dbmodels.CandidateApplication, error) {
	rec, ok := b.candidates.Get(id)
	if !ok {
		return dbmodels.CandidateApplication{}, models.ErrNotFound
	}
	return rec, nil
}

func (b *Board) Candidates() []dbmodels.CandidateApplication {
	return b.candidates.ListByRecruitment("")
}

// CandidateView трекинг кандидатов по этапам, пустой recruitmentID - все вакансии
func (b *Board) CandidateView(recruitmentID string) candidateapimodels.TrackingView {
	result := candidateapimodels.TrackingView{
		RecruitmentID: recruitmentID,
		Columns:       []candidateapimodels.CandidateColumnView{},
	}
	for _, stage := range models.AllCandidateColumns() {
		column := candidateapimodels.CandidateColumnView{
			Stage:       string(stage),
			BoardColumn: string(stage.BoardColumn()),
			Items:       []candidateapimodels.CandidateView{},
		}
		for _, rec := range b.candidates.GetByStage(recruitmentID, stage) {
			column.Items = append(column.Items, candidateapimodels.CandidateConvert(rec, b.isPending(rec.ID)))
		}
		result.Columns = append(result.Columns, column)
	}
	return result
}

// OnCandidateDragEnd перенос карточки кандидата на этап
func (b *Board) OnCandidateDragEnd(ctx context.Context, actor models.Actor, candidateID, dropTarget string) (dbmodels.CandidateApplication, error) {
	b.clearDragging(actor.ID)
	return b.applyCandidate(ctx, actor, candidateID, func(rec dbmodels.CandidateApplication, now time.Time) (stagetransition.CandidateResult, error) {
		return stagetransition.RequestCandidateTransition(rec, dropTarget, now)
	})
}

func (b *Board) AdvanceCandidate(ctx context.Context, actor models.Actor, candidateID string) (dbmodels.CandidateApplication, error) {
	return b.applyCandidate(ctx, actor, candidateID, stagetransition.Advance)
}

func (b *Board) ValidateInterview(ctx context.Context, actor models.Actor, candidateID string, interviewType models.InterviewType) (dbmodels.CandidateApplication, error) {
	return b.applyCandidate(ctx, actor, candidateID, func(rec dbmodels.CandidateApplication, now time.Time) (stagetransition.CandidateResult, error) {
		return stagetransition.ValidateInterview(rec, string(interviewType), now)
	})
}

func (b *Board) ProposeOffer(ctx context.Context, actor models.Actor, candidateID string, salary int) (dbmodels.CandidateApplication, error) {
	return b.applyCandidate(ctx, actor, candidateID, func(rec dbmodels.CandidateApplication, now time.Time) (stagetransition.CandidateResult, error) {
		return stagetransition.ProposeOffer(rec, salary, now)
	})
}

func (b *Board) RejectCandidate(ctx context.Context, actor models.Actor, candidateID, comment string) (dbmodels.CandidateApplication, error) {
	return b.applyCandidate(ctx, actor, candidateID, func(rec dbmodels.CandidateApplication, now time.Time) (stagetransition.CandidateResult, error) {
		return stagetransition.Reject(rec, comment, now)
	})
}

func (b *Board) FinalizeCandidate(ctx context.Context, actor models.Actor, candidateID string) (dbmodels.CandidateApplication, error) {
	return b.applyCandidate(ctx, actor, candidateID, stagetransition.Finalize)
}

// AttachCV сохраняет ссылку на загруженное резюме
func (b *Board) AttachCV(ctx context.Context, actor models.Actor, candidateID, ref string) (dbmodels.CandidateApplication, error) {
	return b.applyCandidate(ctx, actor, candidateID, func(rec dbmodels.CandidateApplication, now time.Time) (stagetransition.CandidateResult, error) {
		if rec.CvRef == ref {
			return stagetransition.CandidateResult{NoOp: true, Candidate: rec}, nil
		}
		rec.CvRef = ref
		return stagetransition.CandidateResult{
			Action:    dbmodels.HistoryTypeCv,
			Candidate: rec,
			Patch:     dbmodels.CandidatePatch{CvRef: &ref},
		}, nil
	})
}

// applyCandidate правило -> локальное изменение -> сохранение -> подтверждение или откат
func (b *Board) applyCandidate(ctx context.Context, actor models.Actor, candidateID string, rule candidateRule) (dbmodels.CandidateApplication, error) {
	logger := b.getLogger(actor).WithField("item_id", candidateID)

	var before dbmodels.CandidateApplication
	var res stagetransition.CandidateResult
	err := b.guard(ctx, candidateID, func() (err error) {
		rec, ok := b.candidates.Get(candidateID)
		if !ok {
			return models.ErrNotFound
		}
		res, err = rule(rec, b.deps.Now())
		if err != nil {
			return err
		}
		if res.NoOp {
			return nil
		}
		if err = b.candidates.ApplyLocalUpdate(candidateID, res.Patch); err != nil {
			return err
		}
		if err = b.candidates.Persist(ctx, candidateID, rec.Version, res.Patch); err != nil {
			b.rollbackCandidates(ctx, actor, candidateID, err)
			return err
		}
		before = rec
		return nil
	})
	if err != nil {
		logger.WithError(err).Warn("действие с кандидатом не выполнено")
		b.notifyFailure(actor, err)
		return dbmodels.CandidateApplication{}, err
	}
	if res.NoOp {
		return res.Candidate, nil
	}
	after, ok := b.candidates.Get(candidateID)
	if !ok {
		after = res.Candidate
	}
	logger.
		WithField("action", res.Action).
		WithField("stage", after.CurrentStage).
		Info("изменение по кандидату сохранено")
	b.notifyCandidateSuccess(actor, res, after)
	b.candidateChanged(ctx, actor, before, after, res.Action)
	return after, nil
}

func (b *Board) notifyCandidateSuccess(actor models.Actor, res stagetransition.CandidateResult, rec dbmodels.CandidateApplication) {
	notifier := b.deps.Notifier
	switch res.Action {
	case dbmodels.HistoryTypeInterviewValidated:
		interviewType := models.InterviewTypeNormal
		if res.Patch.TechnicalInterviewPassed != nil {
			interviewType = models.InterviewTypeTechnical
		}
		notifier.Success(actor.ID, models.PushInterviewValidated, rec.CandidateName, interviewType.ToHuman(), rec.CurrentStage)
	case dbmodels.HistoryTypeOffer:
		salary := 0
		if rec.ProposedSalary != nil {
			salary = *rec.ProposedSalary
		}
		notifier.Success(actor.ID, models.PushOfferProposed, rec.CandidateName, salary)
	case dbmodels.HistoryTypeReject:
		notifier.Success(actor.ID, models.PushCandidateRejected, rec.CandidateName)
	case dbmodels.HistoryTypeFinalize:
		notifier.Success(actor.ID, models.PushCandidateHired, rec.CandidateName)
	case dbmodels.HistoryTypeCv:
	default:
		notifier.Success(actor.ID, models.PushCandidateMoved, rec.CandidateName, rec.CurrentStage)
	}
}

// AddCandidate кандидат на начальном этапе, счетчик кандидатов вакансии увеличивается
func (b *Board) AddCandidate(ctx context.Context, actor models.Actor, rec dbmodels.CandidateApplication) (dbmodels.CandidateApplication, error) {
	logger := b.getLogger(actor).WithField("recruitment_id", rec.RecruitmentID)
	posting, ok := b.postings.Get(rec.RecruitmentID)
	if !ok {
		return dbmodels.CandidateApplication{}, models.ErrNotFound
	}
	rec, err := b.candidates.Add(ctx, rec)
	if err != nil {
		logger.WithError(err).Error("ошибка добавления кандидата")
		b.notifyFailure(actor, err)
		return dbmodels.CandidateApplication{}, err
	}
	b.saveHistory(ctx, actor, models.ItemKindCandidate, rec.ID, dbmodels.HistoryTypeAdded, dbmodels.BoardChanges{
		Description: fmt.Sprintf("Кандидат %s добавлен на вакансию «%s»", rec.CandidateName, posting.PositionTitle),
	})
	if err = b.syncCandidateCount(ctx, posting.ID); err != nil {
		logger.WithError(err).Warn("счетчик кандидатов вакансии не обновлен")
	}
	b.deps.Notifier.Success(actor.ID, models.PushCandidateAdded, rec.CandidateName, posting.PositionTitle)
	return rec, nil
}

const (
	countAttempts    = 3
	countPendingWait = 2 * time.Second
)

// syncCandidateCount счетчик вакансии пересчитывается по снимку кандидатов.
// Занятая запись и конфликт версий не теряют изменение: попытка повторяется.
func (b *Board) syncCandidateCount(ctx context.Context, postingID string) (err error) {
	wait := b.deps.PendingWait
	if wait < countPendingWait {
		wait = countPendingWait
	}
	for attempt := 0; attempt < countAttempts; attempt++ {
		var success bool
		success, err = lock.WithDelay(ctx, b.itemKey(postingID), wait, func() error {
			posting, ok := b.postings.Get(postingID)
			if !ok {
				return models.ErrNotFound
			}
			count := len(b.candidates.ListByRecruitment(postingID))
			if count == posting.CandidateCount {
				return nil
			}
			patch := dbmodels.PostingPatch{CandidateCount: &count}
			if err := b.postings.ApplyLocalUpdate(postingID, patch); err != nil {
				return err
			}
			if err := b.postings.Persist(ctx, postingID, posting.Version, patch); err != nil {
				if reloadErr := b.postings.RevertAndReload(ctx); reloadErr != nil {
					return reloadErr
				}
				return err
			}
			return nil
		})
		if !success {
			err = models.ErrItemBusy
			if ctx.Err() != nil {
				return err
			}
			continue
		}
		if err == nil || !errors.Is(err, models.ErrVersionConflict) {
			return err
		}
	}
	return err
}

func (b *Board) rollbackCandidates(ctx context.Context, actor models.Actor, itemID string, cause error) {
	b.getLogger(actor).
		WithField("item_id", itemID).
		WithError(cause).
		Warn("изменение не сохранено, кандидаты перезагружаются")
	if err := b.candidates.RevertAndReload(ctx); err != nil {
		b.getLogger(actor).WithError(err).Error("ошибка перезагрузки кандидатов после отката")
		b.deps.Notifier.Error(actor.ID, models.PushLoadFailed, errorText(err))
	}
	b.saveHistory(ctx, actor, models.ItemKindCandidate, itemID, dbmodels.HistoryTypeRollback, dbmodels.BoardChanges{
		Description: errorText(cause),
	})
}
