package board

import (
	"context"
	"testing"
	"time"

	"recruitment-board/lib/utils/lock"
	"recruitment-board/models"
	dbmodels "recruitment-board/models/db"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

const spaceID = "space-1"

var actor = models.Actor{ID: "user-1", Name: "Marie Curie"}

type testEnv struct {
	postings   *fakePostingStore
	candidates *fakeCandidateStore
	notifier   *fakeNotifier
	history    *fakeHistory
	events     *fakeEvents
	mail       *fakeMail
	provider   Provider
}

func newTestEnv() *testEnv {
	env := &testEnv{
		postings:   &fakePostingStore{},
		candidates: &fakeCandidateStore{},
		notifier:   &fakeNotifier{},
		history:    &fakeHistory{},
		events:     &fakeEvents{},
		mail:       &fakeMail{},
	}
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	env.provider = NewInstance(Deps{
		Postings:   env.postings,
		Candidates: env.candidates,
		Notifier:   env.notifier,
		History:    env.history,
		Events:     env.events,
		Mail:       env.mail,
		Now:        func() time.Time { return now },
	})
	return env
}

func (e *testEnv) board(t *testing.T) *Board {
	b, err := e.provider.Get(context.Background(), spaceID, actor)
	require.NoError(t, err)
	return b
}

func posting(id, title string, status models.PostingStatus, priority models.PostingPriority) dbmodels.RecruitmentPosting {
	rec := dbmodels.RecruitmentPosting{
		PositionTitle: title,
		Priority:      priority,
		Status:        status,
	}
	rec.ID = id
	rec.SpaceID = spaceID
	return rec
}

func candidate(id, recruitmentID string, stage models.CandidateStage) dbmodels.CandidateApplication {
	rec := dbmodels.CandidateApplication{
		RecruitmentID:  recruitmentID,
		CandidateName:  "Jean Dupont",
		CandidateEmail: "jean@example.com",
		CurrentStage:   stage,
		StageHistory:   dbmodels.StageHistory{{Stage: stage, Timestamp: time.Now()}},
	}
	rec.ID = id
	rec.SpaceID = spaceID
	return rec
}

func TestPostingDragEnd(t *testing.T) {
	ctx := context.Background()
	t.Run(`drag persisted check`, func(t *testing.T) {
		env := newTestEnv()
		env.postings.items = []dbmodels.RecruitmentPosting{posting("p1", "Développeur", models.PostingStatusOpened, models.PriorityHigh)}
		b := env.board(t)

		require.NoError(t, b.OnDragStart(actor, "p1"))
		require.Equal(t, "p1", b.View(actor.ID).DraggingID)

		err := b.OnDragEnd(ctx, actor, "p1", "En cours")
		require.NoError(t, err)

		rec, err := b.GetPosting("p1")
		require.NoError(t, err)
		require.Equal(t, models.PostingStatusInProgress, rec.Status)
		require.Equal(t, 1, rec.Version)
		require.Equal(t, models.PostingStatusInProgress, env.postings.status("p1"))
		require.Len(t, env.postings.updates, 1)
		require.Equal(t, models.PostingStatusInProgress, env.postings.updates[0]["status"])
		require.Empty(t, b.View(actor.ID).DraggingID)

		last := env.notifier.last()
		require.Equal(t, models.PushSuccess, last.code)
		require.Equal(t, models.PushPostingMoved, last.tpl)
		require.Contains(t, last.msg, "En cours")
		require.True(t, env.history.has(dbmodels.HistoryTypeStageChange))
		require.Len(t, env.events.list, 1)
		require.Equal(t, "Ouverte", env.events.list[0].FromStage)
		require.Equal(t, "En cours", env.events.list[0].ToStage)
	})
	t.Run(`persist error rollback check`, func(t *testing.T) {
		env := newTestEnv()
		env.postings.items = []dbmodels.RecruitmentPosting{posting("p1", "Développeur", models.PostingStatusOpened, models.PriorityHigh)}
		b := env.board(t)
		env.postings.failWrite = errors.New("connection refused")

		err := b.OnDragEnd(ctx, actor, "p1", "En cours")
		require.Error(t, err)
		require.True(t, models.IsPersistError(err))

		rec, err := b.GetPosting("p1")
		require.NoError(t, err)
		require.Equal(t, models.PostingStatusOpened, rec.Status)
		last := env.notifier.last()
		require.Equal(t, models.PushError, last.code)
		require.Equal(t, models.PushSaveFailed, last.tpl)
		require.True(t, env.history.has(dbmodels.HistoryTypeRollback))
		require.Empty(t, env.events.list)
	})
	t.Run(`version conflict reload check`, func(t *testing.T) {
		env := newTestEnv()
		env.postings.items = []dbmodels.RecruitmentPosting{posting("p1", "Développeur", models.PostingStatusOpened, models.PriorityHigh)}
		b := env.board(t)
		// параллельное изменение в обход доски
		env.postings.items[0].Status = models.PostingStatusInterviews
		env.postings.items[0].Version = 3

		err := b.OnDragEnd(ctx, actor, "p1", "Offre")
		require.Error(t, err)
		require.ErrorIs(t, err, models.ErrVersionConflict)

		rec, _ := b.GetPosting("p1")
		require.Equal(t, models.PostingStatusInterviews, rec.Status)
		require.Equal(t, 3, rec.Version)
	})
	t.Run(`unknown column check`, func(t *testing.T) {
		env := newTestEnv()
		env.postings.items = []dbmodels.RecruitmentPosting{posting("p1", "Développeur", models.PostingStatusOpened, models.PriorityHigh)}
		b := env.board(t)

		err := b.OnDragEnd(ctx, actor, "p1", "Archive")
		require.True(t, models.IsInvalidStage(err))
		require.Empty(t, env.postings.updates)
		require.Equal(t, models.PushError, env.notifier.last().code)
		rec, _ := b.GetPosting("p1")
		require.Equal(t, models.PostingStatusOpened, rec.Status)
	})
	t.Run(`same column no-op check`, func(t *testing.T) {
		env := newTestEnv()
		env.postings.items = []dbmodels.RecruitmentPosting{posting("p1", "Développeur", models.PostingStatusOpened, models.PriorityHigh)}
		b := env.board(t)

		require.NoError(t, b.OnDragEnd(ctx, actor, "p1", "Ouvert"))
		require.Empty(t, env.postings.updates)
		require.Zero(t, env.notifier.count())
	})
	t.Run(`unknown posting check`, func(t *testing.T) {
		env := newTestEnv()
		b := env.board(t)
		require.ErrorIs(t, b.OnDragStart(actor, "nope"), models.ErrNotFound)
		require.ErrorIs(t, b.OnDragEnd(ctx, actor, "nope", "Offre"), models.ErrNotFound)
	})
	t.Run(`busy item check`, func(t *testing.T) {
		env := newTestEnv()
		env.postings.items = []dbmodels.RecruitmentPosting{posting("p1", "Développeur", models.PostingStatusOpened, models.PriorityHigh)}
		b := env.board(t)

		success, err := lock.TryRun(b.itemKey("p1"), func() error {
			require.True(t, b.IsPending("p1"))
			require.True(t, b.View(actor.ID).Columns[0].Items[0].Pending)
			return b.OnDragEnd(ctx, actor, "p1", "Offre")
		})
		require.True(t, success)
		require.ErrorIs(t, err, models.ErrItemBusy)
		require.Empty(t, env.postings.updates)
		require.False(t, b.IsPending("p1"))
	})
}

func TestSortColumn(t *testing.T) {
	env := newTestEnv()
	env.postings.items = []dbmodels.RecruitmentPosting{
		posting("p1", "A", models.PostingStatusOpened, models.PriorityLow),
		posting("p2", "B", models.PostingStatusInProgress, models.PriorityUrgent),
		posting("p3", "C", models.PostingStatusOpened, "Inconnue"),
		posting("p4", "D", models.PostingStatusOpened, "Urgent"),
		posting("p5", "E", models.PostingStatusOpened, models.PriorityMedium),
	}
	b := env.board(t)

	t.Run(`priority order check`, func(t *testing.T) {
		require.NoError(t, b.SortColumn(actor, "Ouverte"))
		ids := []string{}
		for _, item := range b.View(actor.ID).Columns[0].Items {
			ids = append(ids, item.ID)
		}
		require.Equal(t, []string{"p4", "p5", "p1", "p3"}, ids)
		require.False(t, b.View(actor.ID).Columns[0].Organizing)
		require.Equal(t, models.PushColumnSorted, env.notifier.last().tpl)
	})
	t.Run(`other columns untouched check`, func(t *testing.T) {
		require.Len(t, b.View(actor.ID).Columns[1].Items, 1)
		require.Equal(t, "p2", b.View(actor.ID).Columns[1].Items[0].ID)
		list := b.Postings()
		require.Equal(t, "p2", list[1].ID)
		require.Equal(t, models.PostingStatusInProgress, list[1].Status)
		require.Empty(t, env.postings.updates)
	})
	t.Run(`unknown column check`, func(t *testing.T) {
		require.True(t, models.IsInvalidStage(b.SortColumn(actor, "Archive")))
	})
}

func TestLoad(t *testing.T) {
	ctx := context.Background()
	t.Run(`load error empty board check`, func(t *testing.T) {
		env := newTestEnv()
		env.postings.items = []dbmodels.RecruitmentPosting{posting("p1", "A", models.PostingStatusOpened, models.PriorityLow)}
		env.postings.failList = errors.New("permission denied")

		b, err := env.provider.Get(ctx, spaceID, actor)
		require.True(t, models.IsLoadError(err))
		for _, column := range b.View(actor.ID).Columns {
			require.Empty(t, column.Items)
		}
		require.Empty(t, env.provider.Loaded())

		require.Error(t, b.Reload(ctx, actor))
		require.Equal(t, models.PushLoadFailed, env.notifier.last().tpl)

		env.postings.failList = nil
		require.NoError(t, b.Reload(ctx, actor))
		require.Len(t, b.Postings(), 1)
		require.Len(t, env.provider.Loaded(), 1)
	})
	t.Run(`unknown status coerced check`, func(t *testing.T) {
		env := newTestEnv()
		env.postings.items = []dbmodels.RecruitmentPosting{posting("p1", "A", "Archivée", models.PriorityLow)}
		b := env.board(t)
		require.Len(t, b.View(actor.ID).Columns[0].Items, 1)
	})
	t.Run(`sync idle check`, func(t *testing.T) {
		env := newTestEnv()
		b := env.board(t)
		env.postings.items = []dbmodels.RecruitmentPosting{posting("p1", "A", models.PostingStatusOffer, models.PriorityLow)}
		require.NoError(t, b.SyncIdle(ctx))
		require.Len(t, b.View(actor.ID).Columns[3].Items, 1)
	})
}

func TestCandidateActions(t *testing.T) {
	ctx := context.Background()
	t.Run(`dual interview gate check`, func(t *testing.T) {
		env := newTestEnv()
		env.postings.items = []dbmodels.RecruitmentPosting{posting("p1", "A", models.PostingStatusInterviews, models.PriorityLow)}
		env.candidates.items = []dbmodels.CandidateApplication{candidate("c1", "p1", models.CandidateStageHrInterview)}
		b := env.board(t)

		rec, err := b.ValidateInterview(ctx, actor, "c1", models.InterviewTypeNormal)
		require.NoError(t, err)
		require.True(t, rec.NormalInterviewPassed)
		require.Equal(t, models.CandidateStageHrInterview, rec.CurrentStage)
		require.Equal(t, models.PostingStatusInterviews, rec.CurrentStage.BoardColumn())
		require.Empty(t, env.events.list)

		rec, err = b.ValidateInterview(ctx, actor, "c1", models.InterviewTypeTechnical)
		require.NoError(t, err)
		require.Equal(t, models.CandidateStageOfferSent, rec.CurrentStage)
		require.Equal(t, models.PostingStatusOffer, rec.CurrentStage.BoardColumn())
		stored := env.candidates.get("c1")
		require.Equal(t, models.CandidateStageOfferSent, stored.CurrentStage)
		require.True(t, stored.TechnicalInterviewPassed)
		last, _ := stored.StageHistory.Last()
		require.Equal(t, stored.CurrentStage, last.Stage)
		require.Len(t, env.events.list, 1)
		require.Equal(t, models.PushInterviewValidated, env.notifier.last().tpl)
	})
	t.Run(`offer and finalize check`, func(t *testing.T) {
		env := newTestEnv()
		env.postings.items = []dbmodels.RecruitmentPosting{posting("p1", "A", models.PostingStatusOffer, models.PriorityLow)}
		rec := candidate("c1", "p1", models.CandidateStageFinalInterview)
		rec.NormalInterviewPassed = true
		rec.TechnicalInterviewPassed = true
		env.candidates.items = []dbmodels.CandidateApplication{rec}
		b := env.board(t)

		_, err := b.FinalizeCandidate(ctx, actor, "c1")
		require.True(t, models.IsTransitionRefused(err))

		got, err := b.ProposeOffer(ctx, actor, "c1", 52000)
		require.NoError(t, err)
		require.Equal(t, models.CandidateStageOfferSent, got.CurrentStage)
		require.Equal(t, 52000, *got.ProposedSalary)

		got, err = b.FinalizeCandidate(ctx, actor, "c1")
		require.NoError(t, err)
		require.Equal(t, models.CandidateStageHired, got.CurrentStage)
		require.Equal(t, []dbmodels.ActionType{dbmodels.HistoryTypeOffer, dbmodels.HistoryTypeFinalize}, env.mail.actions)

		// завершающий этап больше не меняется
		_, err = b.RejectCandidate(ctx, actor, "c1", "")
		require.True(t, models.IsTransitionRefused(err))
		got, err = b.AdvanceCandidate(ctx, actor, "c1")
		require.NoError(t, err)
		require.Equal(t, models.CandidateStageHired, got.CurrentStage)
	})
	t.Run(`candidate drag backward check`, func(t *testing.T) {
		env := newTestEnv()
		env.candidates.items = []dbmodels.CandidateApplication{candidate("c1", "p1", models.CandidateStageTechTest)}
		b := env.board(t)

		_, err := b.OnCandidateDragEnd(ctx, actor, "c1", string(models.CandidateStageCvReview))
		require.True(t, models.IsTransitionRefused(err))
		got, err := b.OnCandidateDragEnd(ctx, actor, "c1", string(models.CandidateStageTechInterview))
		require.NoError(t, err)
		require.Equal(t, models.CandidateStageTechInterview, got.CurrentStage)
	})
	t.Run(`reject with comment check`, func(t *testing.T) {
		env := newTestEnv()
		env.candidates.items = []dbmodels.CandidateApplication{candidate("c1", "p1", models.CandidateStageCvReview)}
		b := env.board(t)

		got, err := b.RejectCandidate(ctx, actor, "c1", "profil junior")
		require.NoError(t, err)
		require.Equal(t, models.CandidateStageRejected, got.CurrentStage)
		last, _ := got.StageHistory.Last()
		require.Equal(t, "profil junior", last.Comment)
		require.Equal(t, []dbmodels.ActionType{dbmodels.HistoryTypeReject}, env.mail.actions)
	})
	t.Run(`candidate persist error rollback check`, func(t *testing.T) {
		env := newTestEnv()
		env.candidates.items = []dbmodels.CandidateApplication{candidate("c1", "p1", models.CandidateStageApplied)}
		b := env.board(t)
		env.candidates.failWrite = errors.New("timeout")

		_, err := b.AdvanceCandidate(ctx, actor, "c1")
		require.True(t, models.IsPersistError(err))
		got, err := b.GetCandidate("c1")
		require.NoError(t, err)
		require.Equal(t, models.CandidateStageApplied, got.CurrentStage)
		require.Len(t, got.StageHistory, 1)
		require.Equal(t, models.PushSaveFailed, env.notifier.last().tpl)
	})
	t.Run(`attach cv check`, func(t *testing.T) {
		env := newTestEnv()
		env.candidates.items = []dbmodels.CandidateApplication{candidate("c1", "p1", models.CandidateStageApplied)}
		b := env.board(t)

		got, err := b.AttachCV(ctx, actor, "c1", "space-1/cv/c1/file.pdf")
		require.NoError(t, err)
		require.Equal(t, "space-1/cv/c1/file.pdf", got.CvRef)
		require.Equal(t, models.CandidateStageApplied, got.CurrentStage)
		require.True(t, env.history.has(dbmodels.HistoryTypeCv))
		require.Empty(t, env.events.list)
	})
}

func TestAddItems(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	b := env.board(t)

	p, err := b.AddPosting(ctx, actor, dbmodels.RecruitmentPosting{PositionTitle: "Data engineer", Priority: models.PriorityHigh})
	require.NoError(t, err)
	require.Equal(t, models.PostingStatusOpened, p.Status)

	c, err := b.AddCandidate(ctx, actor, dbmodels.CandidateApplication{RecruitmentID: p.ID, CandidateName: "Ada"})
	require.NoError(t, err)
	require.Equal(t, models.CandidateStageApplied, c.CurrentStage)
	require.Len(t, c.StageHistory, 1)

	got, err := b.GetPosting(p.ID)
	require.NoError(t, err)
	require.Equal(t, 1, got.CandidateCount)
	require.Equal(t, models.PushCandidateAdded, env.notifier.last().tpl)

	view := b.CandidateView(p.ID)
	require.Len(t, view.Columns, len(models.CandidateStages)+1)
	require.Len(t, view.Columns[0].Items, 1)

	_, err = b.AddCandidate(ctx, actor, dbmodels.CandidateApplication{RecruitmentID: "nope", CandidateName: "Bob"})
	require.ErrorIs(t, err, models.ErrNotFound)
}

// blockAfterList задерживает следующий List хранилища: fetched закрывается, когда список уже прочитан,
// результат возвращается после закрытия release
func blockAfterList(set func(hook func())) (fetched, release chan struct{}) {
	fetched = make(chan struct{})
	release = make(chan struct{})
	set(func() {
		set(nil)
		close(fetched)
		<-release
	})
	return fetched, release
}

func TestReloadDuringAction(t *testing.T) {
	ctx := context.Background()
	t.Run(`sync during posting drag check`, func(t *testing.T) {
		env := newTestEnv()
		env.postings.items = []dbmodels.RecruitmentPosting{posting("p1", "Développeur", models.PostingStatusOpened, models.PriorityHigh)}
		b := env.board(t)

		fetched, release := blockAfterList(env.postings.setAfterList)
		done := make(chan error)
		go func() {
			done <- b.SyncIdle(ctx)
		}()
		<-fetched
		require.NoError(t, b.OnDragEnd(ctx, actor, "p1", "En cours"))
		close(release)
		require.NoError(t, <-done)

		rec, err := b.GetPosting("p1")
		require.NoError(t, err)
		require.Equal(t, models.PostingStatusInProgress, rec.Status)
		require.Equal(t, 1, rec.Version)
		require.Equal(t, models.PostingStatusInProgress, env.postings.status("p1"))

		// следующее действие не получает ложного конфликта версий
		require.NoError(t, b.OnDragEnd(ctx, actor, "p1", "Entretiens"))
		require.Equal(t, models.PostingStatusInterviews, env.postings.status("p1"))
	})
	t.Run(`reload during candidate action check`, func(t *testing.T) {
		env := newTestEnv()
		env.candidates.items = []dbmodels.CandidateApplication{candidate("c1", "p1", models.CandidateStageApplied)}
		b := env.board(t)

		fetched, release := blockAfterList(env.candidates.setAfterList)
		done := make(chan error)
		go func() {
			done <- b.Reload(ctx, actor)
		}()
		<-fetched
		got, err := b.AdvanceCandidate(ctx, actor, "c1")
		require.NoError(t, err)
		require.Equal(t, models.CandidateStageCvReview, got.CurrentStage)
		close(release)
		require.NoError(t, <-done)

		rec, err := b.GetCandidate("c1")
		require.NoError(t, err)
		require.Equal(t, models.CandidateStageCvReview, rec.CurrentStage)
		require.Equal(t, 1, rec.Version)
		last, _ := rec.StageHistory.Last()
		require.Equal(t, rec.CurrentStage, last.Stage)

		got, err = b.AdvanceCandidate(ctx, actor, "c1")
		require.NoError(t, err)
		require.Equal(t, models.CandidateStageHrInterview, got.CurrentStage)
		require.Equal(t, models.CandidateStageHrInterview, env.candidates.get("c1").CurrentStage)
	})
	t.Run(`external change still loaded check`, func(t *testing.T) {
		env := newTestEnv()
		env.postings.items = []dbmodels.RecruitmentPosting{
			posting("p1", "A", models.PostingStatusOpened, models.PriorityHigh),
			posting("p2", "B", models.PostingStatusOpened, models.PriorityLow),
		}
		b := env.board(t)

		fetched, release := blockAfterList(env.postings.setAfterList)
		env.postings.mu.Lock()
		env.postings.items[1].Status = models.PostingStatusClosed
		env.postings.items[1].Version = 4
		env.postings.mu.Unlock()
		done := make(chan error)
		go func() {
			done <- b.SyncIdle(ctx)
		}()
		<-fetched
		require.NoError(t, b.OnDragEnd(ctx, actor, "p1", "Offre"))
		close(release)
		require.NoError(t, <-done)

		p1, _ := b.GetPosting("p1")
		require.Equal(t, models.PostingStatusOffer, p1.Status)
		p2, _ := b.GetPosting("p2")
		require.Equal(t, models.PostingStatusClosed, p2.Status)
		require.Equal(t, 4, p2.Version)
	})
}

func TestPartialLoadError(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	env.postings.items = []dbmodels.RecruitmentPosting{posting("p1", "A", models.PostingStatusOpened, models.PriorityLow)}
	env.candidates.failList = errors.New("permission denied")

	t.Run(`candidates load error clears postings check`, func(t *testing.T) {
		b, err := env.provider.Get(ctx, spaceID, actor)
		require.True(t, models.IsLoadError(err))
		require.Empty(t, b.Postings())
		require.Empty(t, b.Candidates())
		require.Empty(t, env.provider.Loaded())
	})
	t.Run(`reload after recovery check`, func(t *testing.T) {
		env.candidates.setFailList(nil)
		b, err := env.provider.Get(ctx, spaceID, actor)
		require.NoError(t, err)
		require.Len(t, b.Postings(), 1)
	})
}

func TestCandidateCount(t *testing.T) {
	ctx := context.Background()
	t.Run(`busy posting count check`, func(t *testing.T) {
		env := newTestEnv()
		env.postings.items = []dbmodels.RecruitmentPosting{posting("p1", "A", models.PostingStatusOpened, models.PriorityLow)}
		b := env.board(t)

		held := make(chan struct{})
		release := make(chan struct{})
		go func() {
			_, _ = lock.TryRun(b.itemKey("p1"), func() error {
				close(held)
				<-release
				return nil
			})
		}()
		<-held
		time.AfterFunc(150*time.Millisecond, func() { close(release) })

		c, err := b.AddCandidate(ctx, actor, dbmodels.CandidateApplication{RecruitmentID: "p1", CandidateName: "Ada"})
		require.NoError(t, err)
		require.NotEmpty(t, c.ID)

		require.Equal(t, 1, env.postings.get("p1").CandidateCount)
		rec, _ := b.GetPosting("p1")
		require.Equal(t, 1, rec.CandidateCount)
	})
	t.Run(`version conflict count check`, func(t *testing.T) {
		env := newTestEnv()
		env.postings.items = []dbmodels.RecruitmentPosting{posting("p1", "A", models.PostingStatusOpened, models.PriorityLow)}
		b := env.board(t)
		// изменение вакансии в обход доски
		env.postings.mu.Lock()
		env.postings.items[0].Version = 2
		env.postings.mu.Unlock()

		_, err := b.AddCandidate(ctx, actor, dbmodels.CandidateApplication{RecruitmentID: "p1", CandidateName: "Ada"})
		require.NoError(t, err)
		require.Equal(t, 1, env.postings.get("p1").CandidateCount)
		require.Equal(t, 3, env.postings.get("p1").Version)
	})
	t.Run(`count follows candidates check`, func(t *testing.T) {
		env := newTestEnv()
		env.postings.items = []dbmodels.RecruitmentPosting{posting("p1", "A", models.PostingStatusOpened, models.PriorityLow)}
		env.candidates.items = []dbmodels.CandidateApplication{
			candidate("c1", "p1", models.CandidateStageApplied),
			candidate("c2", "p1", models.CandidateStageCvReview),
		}
		b := env.board(t)

		_, err := b.AddCandidate(ctx, actor, dbmodels.CandidateApplication{RecruitmentID: "p1", CandidateName: "Ada"})
		require.NoError(t, err)
		require.Equal(t, 3, env.postings.get("p1").CandidateCount)
	})
}
