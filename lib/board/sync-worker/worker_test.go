package boardsyncworker

import (
	"context"
	"sync"
	"testing"

	"recruitment-board/lib/board"
	"recruitment-board/models"
	dbmodels "recruitment-board/models/db"

	"github.com/stretchr/testify/require"
)

type postingStore struct {
	mu    sync.Mutex
	items []dbmodels.RecruitmentPosting
}

func (s *postingStore) Create(ctx context.Context, rec dbmodels.RecruitmentPosting) (string, error) {
	return rec.ID, nil
}

func (s *postingStore) List(ctx context.Context, spaceID string) ([]dbmodels.RecruitmentPosting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]dbmodels.RecruitmentPosting{}, s.items...), nil
}

func (s *postingStore) Update(ctx context.Context, spaceID, id string, version int, updMap map[string]interface{}) error {
	return nil
}

type candidateStore struct{}

func (candidateStore) Create(ctx context.Context, rec dbmodels.CandidateApplication) (string, error) {
	return rec.ID, nil
}

func (candidateStore) List(ctx context.Context, spaceID string) ([]dbmodels.CandidateApplication, error) {
	return nil, nil
}

func (candidateStore) Update(ctx context.Context, spaceID, id string, version int, updMap map[string]interface{}) error {
	return nil
}

func TestHandle(t *testing.T) {
	ctx := context.Background()
	postings := &postingStore{}
	provider := board.NewInstance(board.Deps{Postings: postings, Candidates: candidateStore{}})
	b, err := provider.Get(ctx, "space-1", models.Actor{})
	require.NoError(t, err)
	require.Empty(t, b.Postings())

	rec := dbmodels.RecruitmentPosting{PositionTitle: "Juriste", Status: models.PostingStatusOffer}
	rec.ID = "p1"
	postings.mu.Lock()
	postings.items = []dbmodels.RecruitmentPosting{rec}
	postings.mu.Unlock()

	worker := impl{boards: provider}
	worker.WorkerName = "BoardSyncWorker"
	worker.handle(ctx)

	list := b.Postings()
	require.Len(t, list, 1)
	require.Equal(t, models.PostingStatusOffer, list[0].Status)
}
