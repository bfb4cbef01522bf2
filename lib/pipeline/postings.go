package pipeline

import (
	"context"
	postingstore "recruitment-board/lib/posting/store"
	"recruitment-board/models"
	dbmodels "recruitment-board/models/db"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// PostingStore локальный снимок вакансий пространства.
// Снимок меняется только методами хранилища.
type PostingStore struct {
	spaceID string
	store   postingstore.Provider
	mu      sync.RWMutex
	items   []dbmodels.RecruitmentPosting
	changes changeLog
	pending int32
}

func NewPostingStore(spaceID string, store postingstore.Provider) *PostingStore {
	return &PostingStore{
		spaceID: spaceID,
		store:   store,
	}
}

func (s *PostingStore) getLogger() *log.Entry {
	return log.WithField("space_id", s.spaceID)
}

// Load заново читает вакансии, при ошибке снимок остается пустым.
// Записи, измененные локально во время чтения, не перезаписываются.
func (s *PostingStore) Load(ctx context.Context) error {
	logger := s.getLogger()
	if s.spaceID == "" {
		s.replace(nil)
		return models.LoadError{Err: errors.New("не указано пространство")}
	}
	start := s.generation()
	list, err := s.store.List(ctx, s.spaceID)
	if err != nil {
		s.replace(nil)
		logger.WithError(err).Error("ошибка загрузки вакансий")
		return models.LoadError{Err: err}
	}
	for k := range list {
		status := models.CoercePostingStatus(string(list[k].Status))
		if status != list[k].Status {
			logger.
				WithField("rec_id", list[k].ID).
				WithField("status", list[k].Status).
				Warn("неизвестный статус вакансии, установлен начальный")
			list[k].Status = status
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = mergeSnapshot(list, s.items, postingID, &s.changes, start)
	return nil
}

// RevertAndReload отбрасывает неподтвержденные локальные изменения и перечитывает хранилище.
// Сохраняются только изменения, сделанные после начала чтения.
func (s *PostingStore) RevertAndReload(ctx context.Context) error {
	return s.Load(ctx)
}

// Reset очищает снимок
func (s *PostingStore) Reset() {
	s.replace(nil)
}

// ReloadIfIdle перечитывает снимок, если нет незавершенных сохранений
func (s *PostingStore) ReloadIfIdle(ctx context.Context) (reloaded bool, err error) {
	if atomic.LoadInt32(&s.pending) > 0 {
		return false, nil
	}
	return true, s.Load(ctx)
}

func (s *PostingStore) List() []dbmodels.RecruitmentPosting {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]dbmodels.RecruitmentPosting{}, s.items...)
}

func (s *PostingStore) Get(id string) (dbmodels.RecruitmentPosting, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := s.indexOf(id)
	if idx < 0 {
		return dbmodels.RecruitmentPosting{}, false
	}
	return s.items[idx], true
}

// GetByStage вакансии колонки в порядке снимка
func (s *PostingStore) GetByStage(status models.PostingStatus) []dbmodels.RecruitmentPosting {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := []dbmodels.RecruitmentPosting{}
	for _, item := range s.items {
		if item.Status == status {
			result = append(result, item)
		}
	}
	return result
}

// ApplyLocalUpdate меняет только снимок, хранилище не трогает
func (s *PostingStore) ApplyLocalUpdate(id string, patch dbmodels.PostingPatch) error {
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

// Persist сохраняет изменения при совпадении версии записи
func (s *PostingStore) Persist(ctx context.Context, id string, version int, patch dbmodels.PostingPatch) error {
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
			Error("ошибка сохранения вакансии")
		return models.PersistError{ItemID: id, Err: err}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	// снимок мог быть перечитан во время сохранения
	if idx := s.indexOf(id); idx >= 0 {
		patch.Apply(&s.items[idx])
		s.items[idx].Version = version + 1
		s.items[idx].UpdatedAt = time.Now()
		s.changes.touch(id)
	}
	return nil
}

// ReorderStage меняет порядок вакансий внутри колонки, позиции других колонок не меняются
func (s *PostingStore) ReorderStage(status models.PostingStatus, order func(items []dbmodels.RecruitmentPosting) []dbmodels.RecruitmentPosting) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	positions := []int{}
	column := []dbmodels.RecruitmentPosting{}
	for idx, item := range s.items {
		if item.Status == status {
			positions = append(positions, idx)
			column = append(column, item)
		}
	}
	ordered := order(column)
	if len(ordered) != len(positions) {
		return errors.New("состав колонки изменился при сортировке")
	}
	for k, pos := range positions {
		if ordered[k].Status != status {
			return errors.New("состав колонки изменился при сортировке")
		}
		s.items[pos] = ordered[k]
	}
	return nil
}

// Add создает вакансию в хранилище и добавляет ее в начало снимка
func (s *PostingStore) Add(ctx context.Context, rec dbmodels.RecruitmentPosting) (dbmodels.RecruitmentPosting, error) {
	now := time.Now()
	rec.SpaceID = s.spaceID
	rec.CreatedAt = now
	rec.UpdatedAt = now
	id, err := s.store.Create(ctx, rec)
	if err != nil {
		return dbmodels.RecruitmentPosting{}, models.PersistError{Err: err}
	}
	rec.ID = id
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]dbmodels.RecruitmentPosting{rec}, s.items...)
	s.changes.touch(rec.ID)
	return rec, nil
}

func (s *PostingStore) replace(list []dbmodels.RecruitmentPosting) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = list
}

func (s *PostingStore) generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.changes.gen
}

func postingID(rec dbmodels.RecruitmentPosting) string {
	return rec.ID
}

func (s *PostingStore) indexOf(id string) int {
	for idx, item := range s.items {
		if item.ID == id {
			return idx
		}
	}
	return -1
}
