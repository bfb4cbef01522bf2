package board

import (
	"context"
	"sync"

	"recruitment-board/lib/events"
	"recruitment-board/models"
	boardapimodels "recruitment-board/models/api/board"
	dbmodels "recruitment-board/models/db"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type fakePostingStore struct {
	mu        sync.Mutex
	items     []dbmodels.RecruitmentPosting
	failList  error
	failWrite error
	updates   []map[string]interface{}
	// afterList вызывается после чтения списка, до возврата результата
	afterList func()
}

func (f *fakePostingStore) Create(ctx context.Context, rec dbmodels.RecruitmentPosting) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWrite != nil {
		return "", f.failWrite
	}
	rec.ID = uuid.NewString()
	f.items = append([]dbmodels.RecruitmentPosting{rec}, f.items...)
	return rec.ID, nil
}

func (f *fakePostingStore) List(ctx context.Context, spaceID string) ([]dbmodels.RecruitmentPosting, error) {
	f.mu.Lock()
	if f.failList != nil {
		f.mu.Unlock()
		return nil, f.failList
	}
	result := append([]dbmodels.RecruitmentPosting{}, f.items...)
	hook := f.afterList
	f.mu.Unlock()
	if hook != nil {
		hook()
	}
	return result, nil
}

func (f *fakePostingStore) setAfterList(hook func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.afterList = hook
}

func (f *fakePostingStore) get(id string) dbmodels.RecruitmentPosting {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, item := range f.items {
		if item.ID == id {
			return item
		}
	}
	return dbmodels.RecruitmentPosting{}
}

func (f *fakePostingStore) Update(ctx context.Context, spaceID, id string, version int, updMap map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, updMap)
	if f.failWrite != nil {
		return f.failWrite
	}
	for k := range f.items {
		if f.items[k].ID != id {
			continue
		}
		if f.items[k].Version != version {
			return models.ErrVersionConflict
		}
		if status, ok := updMap["status"]; ok {
			f.items[k].Status = status.(models.PostingStatus)
		}
		if count, ok := updMap["candidate_count"]; ok {
			f.items[k].CandidateCount = count.(int)
		}
		f.items[k].Version++
		return nil
	}
	return models.ErrNotFound
}

func (f *fakePostingStore) status(id string) models.PostingStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, item := range f.items {
		if item.ID == id {
			return item.Status
		}
	}
	return ""
}

type fakeCandidateStore struct {
	mu        sync.Mutex
	items     []dbmodels.CandidateApplication
	failList  error
	failWrite error
	updates   []map[string]interface{}
	// afterList вызывается после чтения списка, до возврата результата
	afterList func()
}

func (f *fakeCandidateStore) Create(ctx context.Context, rec dbmodels.CandidateApplication) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWrite != nil {
		return "", f.failWrite
	}
	rec.ID = uuid.NewString()
	f.items = append([]dbmodels.CandidateApplication{rec.Clone()}, f.items...)
	return rec.ID, nil
}

func (f *fakeCandidateStore) List(ctx context.Context, spaceID string) ([]dbmodels.CandidateApplication, error) {
	f.mu.Lock()
	if f.failList != nil {
		f.mu.Unlock()
		return nil, f.failList
	}
	result := make([]dbmodels.CandidateApplication, 0, len(f.items))
	for _, item := range f.items {
		result = append(result, item.Clone())
	}
	hook := f.afterList
	f.mu.Unlock()
	if hook != nil {
		hook()
	}
	return result, nil
}

func (f *fakeCandidateStore) setAfterList(hook func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.afterList = hook
}

func (f *fakeCandidateStore) setFailList(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failList = err
}

func (f *fakeCandidateStore) Update(ctx context.Context, spaceID, id string, version int, updMap map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, updMap)
	if f.failWrite != nil {
		return f.failWrite
	}
	for k := range f.items {
		if f.items[k].ID != id {
			continue
		}
		if f.items[k].Version != version {
			return models.ErrVersionConflict
		}
		rec := &f.items[k]
		if v, ok := updMap["current_stage"]; ok {
			rec.CurrentStage = v.(models.CandidateStage)
		}
		if v, ok := updMap["stage_history"]; ok {
			rec.StageHistory = append(dbmodels.StageHistory{}, v.(dbmodels.StageHistory)...)
		}
		if v, ok := updMap["normal_interview_passed"]; ok {
			rec.NormalInterviewPassed = v.(bool)
		}
		if v, ok := updMap["technical_interview_passed"]; ok {
			rec.TechnicalInterviewPassed = v.(bool)
		}
		if v, ok := updMap["proposed_salary"]; ok {
			salary := v.(int)
			rec.ProposedSalary = &salary
		}
		if v, ok := updMap["cv_ref"]; ok {
			rec.CvRef = v.(string)
		}
		rec.Version++
		return nil
	}
	return models.ErrNotFound
}

func (f *fakeCandidateStore) get(id string) dbmodels.CandidateApplication {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, item := range f.items {
		if item.ID == id {
			return item.Clone()
		}
	}
	return dbmodels.CandidateApplication{}
}

type push struct {
	code models.PushCode
	tpl  models.PushTplCode
	msg  string
}

type fakeNotifier struct {
	mu    sync.Mutex
	items []push
}

func (f *fakeNotifier) Success(userID string, tpl models.PushTplCode, args ...interface{}) {
	f.add(models.PushSuccess, tpl, args...)
}

func (f *fakeNotifier) Error(userID string, tpl models.PushTplCode, args ...interface{}) {
	f.add(models.PushError, tpl, args...)
}

func (f *fakeNotifier) add(code models.PushCode, tpl models.PushTplCode, args ...interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append(f.items, push{code: code, tpl: tpl, msg: tpl.Format(args...)})
}

func (f *fakeNotifier) last() push {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.items) == 0 {
		return push{}
	}
	return f.items[len(f.items)-1]
}

func (f *fakeNotifier) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.items)
}

type fakeHistory struct {
	mu      sync.Mutex
	actions []dbmodels.ActionType
}

func (f *fakeHistory) List(ctx context.Context, spaceID, itemID string, filter boardapimodels.HistoryFilter) ([]boardapimodels.HistoryView, int64, error) {
	return nil, 0, errors.New("not implemented")
}

func (f *fakeHistory) Save(ctx context.Context, spaceID string, kind models.ItemKind, itemID string, actor models.Actor, action dbmodels.ActionType, changes dbmodels.BoardChanges) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.actions = append(f.actions, action)
}

func (f *fakeHistory) has(action dbmodels.ActionType) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, item := range f.actions {
		if item == action {
			return true
		}
	}
	return false
}

type fakeEvents struct {
	mu   sync.Mutex
	list []events.StageChangeEvent
}

func (f *fakeEvents) PublishStageChange(ctx context.Context, event events.StageChangeEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.list = append(f.list, event)
	return nil
}

func (f *fakeEvents) Close() {}

type fakeMail struct {
	mu      sync.Mutex
	actions []dbmodels.ActionType
}

func (f *fakeMail) Notify(rec dbmodels.CandidateApplication, action dbmodels.ActionType, positionTitle string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.actions = append(f.actions, action)
	return nil
}
