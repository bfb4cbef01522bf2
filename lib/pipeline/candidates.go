package pipeline

import (
	"context"
	candidatestore "recruitment-board/lib/candidate/store"
	"recruitment-board/models"
	dbmodels "recruitment-board/models/db"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// CandidateStore локальный снимок кандидатов пространства
type CandidateStore struct {
	spaceID string
	store   candidatestore.Provider
	mu      sync.RWMutex
	items   []dbmodels.CandidateApplication
	changes changeLog
	pending int32
}

func NewCandidateStore(spaceID string, store candidatestore.Provider) *CandidateStore {
	return &CandidateStore{
		spaceID: spaceID,
		store:   store,
	}
}

func (s *CandidateStore) getLogger() *log.Entry {
	return log.WithField("space_id", s.spaceID)
}

func (s *CandidateStore) Load(ctx context.Context) error {
	logger := s.getLogger()
	if s.spaceID == "" {
		s.replace(nil)
		return models.LoadError{Err: errors.New("не указано пространство")}
	}
	start := s.generation()
	list, err := s.store.List(ctx, s.spaceID)
	if err != nil {
		s.replace(nil)
		logger.WithError(err).Error("ошибка загрузки кандидатов")
		return models.LoadError{Err: err}
	}
	for k := range list {
		if normalizeCandidate(&list[k]) {
			logger.
				WithField("rec_id", list[k].ID).
				Warn("этап кандидата не совпадал с историей, запись нормализована")
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = mergeSnapshot(list, s.items, candidateID, &s.changes, start)
	return nil
}

// normalizeCandidate текущий этап должен быть известен и совпадать с последней записью истории
func normalizeCandidate(rec *dbmodels.CandidateApplication) (changed bool) {
	stage := models.CoerceCandidateStage(string(rec.CurrentStage))
	if stage != rec.CurrentStage {
		rec.CurrentStage = stage
		changed = true
	}
	last, ok := rec.StageHistory.Last()
	if !ok || last.Stage != rec.CurrentStage {
		ts := rec.UpdatedAt
		if ts.IsZero() {
			ts = rec.CreatedAt
		}
		rec.StageHistory = append(rec.StageHistory, dbmodels.StageHistoryEntry{
			Stage:     rec.CurrentStage,
			Timestamp: ts,
		})
		changed = true
	}
	return changed
}

func (s *CandidateStore) RevertAndReload(ctx context.Context) error {
	return s.Load(ctx)
}

func (s *CandidateStore) Reset() {
	s.replace(nil)
}

func (s *CandidateStore) ReloadIfIdle(ctx context.Context) (reloaded bool, err error) {
	if atomic.LoadInt32(&s.pending) > 0 {
		return false, nil
	}
	return true, s.Load(ctx)
}

func (s *CandidateStore) Get(id string) (dbmodels.CandidateApplication, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := s.indexOf(id)
	if idx < 0 {
		return dbmodels.CandidateApplication{}, false
	}
	return s.items[idx].Clone(), true
}

// ListByRecruitment кандидаты вакансии, recruitmentID пустой - все кандидаты
func (s *CandidateStore) ListByRecruitment(recruitmentID string) []dbmodels.CandidateApplication {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := []dbmodels.CandidateApplication{}
	for _, item := range s.items {
		if recruitmentID == "" || item.RecruitmentID == recruitmentID {
			result = append(result, item.Clone())
		}
	}
	return result
}

// GetByStage кандидаты этапа, recruitmentID пустой - по всем вакансиям
func (s *CandidateStore) GetByStage(recruitmentID string, stage models.CandidateStage) []dbmodels.CandidateApplication {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := []dbmodels.CandidateApplication{}
	for _, item := range s.items {
		if item.CurrentStage != stage {
			continue
		}
		if recruitmentID != "" && item.RecruitmentID != recruitmentID {
			continue
		}
		result = append(result, item.Clone())
	}
	return result
}

func (s *CandidateStore) ApplyLocalUpdate(id string, patch dbmodels.CandidatePatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexOf(id)
	if idx < 0 {
		return models.ErrNotFound
	}
	patch.Apply(&s.items[idx])
	s.changes.touch(id)
	return nil
}

func (s *CandidateStore) Persist(ctx context.Context, id string, version int, patch dbmodels.CandidatePatch) error {
	if patch.IsEmpty() {
		return nil
	}
	atomic.AddInt32(&s.pending, 1)
	defer atomic.AddInt32(&s.pending, -1)
	err := s.store.Update(ctx, s.spaceID, id, version, patch.UpdMap())
	if err != nil {
		s.getLogger().
			WithField("rec_id", id).
			WithError(err).
			Error("ошибка сохранения кандидата")
		return models.PersistError{ItemID: id, Err: err}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx := s.indexOf(id); idx >= 0 {
		patch.Apply(&s.items[idx])
		s.items[idx].Version = version + 1
		s.items[idx].UpdatedAt = time.Now()
		s.changes.touch(id)
	}
	return nil
}

// Add создает кандидата на начальном этапе
func (s *CandidateStore) Add(ctx context.Context, rec dbmodels.CandidateApplication) (dbmodels.CandidateApplication, error) {
	now := time.Now()
	rec.SpaceID = s.spaceID
	rec.CreatedAt = now
	rec.UpdatedAt = now
	rec.CurrentStage = models.CandidateStages[0]
	rec.StageHistory = dbmodels.StageHistory{{Stage: rec.CurrentStage, Timestamp: now}}
	id, err := s.store.Create(ctx, rec)
	if err != nil {
		return dbmodels.CandidateApplication{}, models.PersistError{Err: err}
	}
	rec.ID = id
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]dbmodels.CandidateApplication{rec.Clone()}, s.items...)
	s.changes.touch(rec.ID)
	return rec, nil
}

func (s *CandidateStore) replace(list []dbmodels.CandidateApplication) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = list
}

func (s *CandidateStore) generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.changes.gen
}

func candidateID(rec dbmodels.CandidateApplication) string {
	return rec.ID
}

func (s *CandidateStore) indexOf(id string) int {
	for idx, item := range s.items {
		if item.ID == id {
			return idx
		}
	}
	return -1
}
