package pipeline

import (
	"context"
	"testing"
	"time"

	"recruitment-board/models"
	dbmodels "recruitment-board/models/db"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func candidate(id, recruitmentID string, stage models.CandidateStage) dbmodels.CandidateApplication {
	rec := dbmodels.CandidateApplication{
		RecruitmentID: recruitmentID,
		CandidateName: "Candidat " + id,
		CurrentStage:  stage,
		StageHistory:  dbmodels.StageHistory{{Stage: stage, Timestamp: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)}},
	}
	rec.ID = id
	return rec
}

func TestCandidateStoreLoad(t *testing.T) {
	ctx := context.Background()
	t.Run(`stage normalized by history check`, func(t *testing.T) {
		broken := candidate("c1", "p1", "Inconnu")
		noHistory := candidate("c2", "p1", models.CandidateStageTechTest)
		noHistory.StageHistory = nil
		store := &candidateStore{items: []dbmodels.CandidateApplication{broken, noHistory}}
		s := NewCandidateStore("space-1", store)
		require.NoError(t, s.Load(ctx))

		c1, ok := s.Get("c1")
		require.True(t, ok)
		require.Equal(t, models.CandidateStageApplied, c1.CurrentStage)
		last, _ := c1.StageHistory.Last()
		require.Equal(t, models.CandidateStageApplied, last.Stage)

		c2, _ := s.Get("c2")
		require.Len(t, c2.StageHistory, 1)
		require.Equal(t, models.CandidateStageTechTest, c2.StageHistory[0].Stage)
	})
	t.Run(`load error check`, func(t *testing.T) {
		s := NewCandidateStore("space-1", &candidateStore{failList: errors.New("timeout")})
		require.True(t, models.IsLoadError(s.Load(ctx)))
		require.Empty(t, s.ListByRecruitment(""))
	})
}

func TestCandidateStoreQueries(t *testing.T) {
	ctx := context.Background()
	store := &candidateStore{items: []dbmodels.CandidateApplication{
		candidate("c1", "p1", models.CandidateStageApplied),
		candidate("c2", "p2", models.CandidateStageApplied),
		candidate("c3", "p1", models.CandidateStageRejected),
	}}
	s := NewCandidateStore("space-1", store)
	require.NoError(t, s.Load(ctx))

	t.Run(`by recruitment check`, func(t *testing.T) {
		require.Len(t, s.ListByRecruitment("p1"), 2)
		require.Len(t, s.ListByRecruitment(""), 3)
	})
	t.Run(`by stage check`, func(t *testing.T) {
		require.Len(t, s.GetByStage("", models.CandidateStageApplied), 2)
		require.Len(t, s.GetByStage("p1", models.CandidateStageApplied), 1)
		require.Len(t, s.GetByStage("p2", models.CandidateStageRejected), 0)
	})
	t.Run(`clone isolation check`, func(t *testing.T) {
		rec, _ := s.Get("c1")
		rec.StageHistory[0].Stage = models.CandidateStageHired
		again, _ := s.Get("c1")
		require.Equal(t, models.CandidateStageApplied, again.StageHistory[0].Stage)
	})
}

func TestCandidateStoreUpdate(t *testing.T) {
	ctx := context.Background()
	store := &candidateStore{items: []dbmodels.CandidateApplication{candidate("c1", "p1", models.CandidateStageApplied)}}
	s := NewCandidateStore("space-1", store)
	require.NoError(t, s.Load(ctx))

	stage := models.CandidateStageCvReview
	patch := dbmodels.CandidatePatch{
		CurrentStage: &stage,
		StageHistory: dbmodels.StageHistory{
			{Stage: models.CandidateStageApplied},
			{Stage: models.CandidateStageCvReview},
		},
	}

	t.Run(`persist check`, func(t *testing.T) {
		require.NoError(t, s.ApplyLocalUpdate("c1", patch))
		require.NoError(t, s.Persist(ctx, "c1", 0, patch))
		rec, _ := s.Get("c1")
		require.Equal(t, models.CandidateStageCvReview, rec.CurrentStage)
		require.Equal(t, 1, rec.Version)
		require.Len(t, store.updates, 1)
		require.Contains(t, store.updates[0], "stage_history")
	})
	t.Run(`persist error check`, func(t *testing.T) {
		store.failSave = errors.New("permission denied")
		defer func() { store.failSave = nil }()
		err := s.Persist(ctx, "c1", 1, patch)
		require.True(t, models.IsPersistError(err))
	})
	t.Run(`add candidate check`, func(t *testing.T) {
		rec, err := s.Add(ctx, dbmodels.CandidateApplication{RecruitmentID: "p1", CandidateName: "Ada"})
		require.NoError(t, err)
		require.Equal(t, models.CandidateStageApplied, rec.CurrentStage)
		require.Len(t, rec.StageHistory, 1)
		require.Equal(t, "space-1", rec.SpaceID)
		require.Len(t, s.ListByRecruitment("p1"), 2)
	})
}

func TestCandidateStoreLoadDuringPersist(t *testing.T) {
	ctx := context.Background()
	store := &candidateStore{items: []dbmodels.CandidateApplication{
		candidate("c1", "p1", models.CandidateStageApplied),
		candidate("c2", "p1", models.CandidateStageApplied),
	}}
	s := NewCandidateStore("space-1", store)
	require.NoError(t, s.Load(ctx))

	stage := models.CandidateStageCvReview
	patch := dbmodels.CandidatePatch{
		CurrentStage: &stage,
		StageHistory: dbmodels.StageHistory{
			{Stage: models.CandidateStageApplied},
			{Stage: models.CandidateStageCvReview},
		},
	}

	t.Run(`persist during fetch check`, func(t *testing.T) {
		fetched := make(chan struct{})
		release := make(chan struct{})
		store.setAfterList(func() {
			close(fetched)
			<-release
		})
		done := make(chan error)
		go func() {
			done <- s.Load(ctx)
		}()
		<-fetched
		require.NoError(t, s.ApplyLocalUpdate("c1", patch))
		require.NoError(t, s.Persist(ctx, "c1", 0, patch))
		close(release)
		require.NoError(t, <-done)

		rec, _ := s.Get("c1")
		require.Equal(t, models.CandidateStageCvReview, rec.CurrentStage)
		require.Equal(t, 1, rec.Version)
		last, _ := rec.StageHistory.Last()
		require.Equal(t, rec.CurrentStage, last.Stage)
	})
	t.Run(`next reload takes stored state check`, func(t *testing.T) {
		require.NoError(t, s.Load(ctx))
		rec, _ := s.Get("c1")
		require.Equal(t, models.CandidateStageCvReview, rec.CurrentStage)
		other, _ := s.Get("c2")
		require.Equal(t, models.CandidateStageApplied, other.CurrentStage)
	})
}
