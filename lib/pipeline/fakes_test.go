package pipeline

import (
	"context"
	"sync"

	"recruitment-board/models"
	dbmodels "recruitment-board/models/db"

	"github.com/google/uuid"
)

type postingStore struct {
	mu       sync.Mutex
	items    []dbmodels.RecruitmentPosting
	failList error
	failSave error
	// block удерживает Update до закрытия канала
	block chan struct{}
	// afterList вызывается после чтения списка
	afterList func()
}

func (s *postingStore) Create(ctx context.Context, rec dbmodels.RecruitmentPosting) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failSave != nil {
		return "", s.failSave
	}
	rec.ID = uuid.NewString()
	s.items = append(s.items, rec)
	return rec.ID, nil
}

func (s *postingStore) List(ctx context.Context, spaceID string) ([]dbmodels.RecruitmentPosting, error) {
	s.mu.Lock()
	if s.failList != nil {
		s.mu.Unlock()
		return nil, s.failList
	}
	result := append([]dbmodels.RecruitmentPosting{}, s.items...)
	hook := s.afterList
	s.afterList = nil
	s.mu.Unlock()
	if hook != nil {
		hook()
	}
	return result, nil
}

func (s *postingStore) setAfterList(hook func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.afterList = hook
}

func (s *postingStore) Update(ctx context.Context, spaceID, id string, version int, updMap map[string]interface{}) error {
	if s.block != nil {
		<-s.block
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failSave != nil {
		return s.failSave
	}
	for k := range s.items {
		if s.items[k].ID != id {
			continue
		}
		if s.items[k].Version != version {
			return models.ErrVersionConflict
		}
		if status, ok := updMap["status"].(models.PostingStatus); ok {
			s.items[k].Status = status
		}
		if count, ok := updMap["candidate_count"].(int); ok {
			s.items[k].CandidateCount = count
		}
		s.items[k].Version++
		return nil
	}
	return models.ErrVersionConflict
}

type candidateStore struct {
	mu       sync.Mutex
	items    []dbmodels.CandidateApplication
	failList error
	failSave error
	updates  []map[string]interface{}
	// afterList вызывается после чтения списка
	afterList func()
}

func (s *candidateStore) Create(ctx context.Context, rec dbmodels.CandidateApplication) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failSave != nil {
		return "", s.failSave
	}
	rec.ID = uuid.NewString()
	s.items = append(s.items, rec.Clone())
	return rec.ID, nil
}

func (s *candidateStore) List(ctx context.Context, spaceID string) ([]dbmodels.CandidateApplication, error) {
	s.mu.Lock()
	if s.failList != nil {
		s.mu.Unlock()
		return nil, s.failList
	}
	result := []dbmodels.CandidateApplication{}
	for _, item := range s.items {
		result = append(result, item.Clone())
	}
	hook := s.afterList
	s.afterList = nil
	s.mu.Unlock()
	if hook != nil {
		hook()
	}
	return result, nil
}

func (s *candidateStore) setAfterList(hook func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.afterList = hook
}

func (s *candidateStore) Update(ctx context.Context, spaceID, id string, version int, updMap map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failSave != nil {
		return s.failSave
	}
	s.updates = append(s.updates, updMap)
	for k := range s.items {
		if s.items[k].ID == id {
			if stage, ok := updMap["current_stage"].(models.CandidateStage); ok {
				s.items[k].CurrentStage = stage
			}
			if history, ok := updMap["stage_history"].(dbmodels.StageHistory); ok {
				s.items[k].StageHistory = history
			}
			s.items[k].Version++
			return nil
		}
	}
	return models.ErrVersionConflict
}
