package board

import (
	"context"
	"sync"
	"time"

	boardhistoryhandler "recruitment-board/lib/board-history"
	candidatemail "recruitment-board/lib/candidate-mail"
	candidatestore "recruitment-board/lib/candidate/store"
	"recruitment-board/lib/events"
	postingstore "recruitment-board/lib/posting/store"
	"recruitment-board/models"
)

// Notifier всплывающие уведомления пользователю
type Notifier interface {
	Success(userID string, tpl models.PushTplCode, args ...interface{})
	Error(userID string, tpl models.PushTplCode, args ...interface{})
}

// Deps внешние зависимости доски. Необязательные зависимости могут быть nil.
type Deps struct {
	Postings    postingstore.Provider
	Candidates  candidatestore.Provider
	Notifier    Notifier
	History     boardhistoryhandler.Provider
	Events      events.Publisher
	Mail        candidatemail.Provider
	PendingWait time.Duration // ожидание завершения предыдущего сохранения по записи
	Now         func() time.Time
}

type Provider interface {
	// Get доска пространства, при первом обращении загружается из хранилища.
	// Об ошибке загрузки сообщается пользователю actor.
	Get(ctx context.Context, spaceID string, actor models.Actor) (*Board, error)
	// Loaded доски, уже загруженные в память
	Loaded() []*Board
}

var Instance Provider

func NewHandler(deps Deps) {
	Instance = NewInstance(deps)
}

func NewInstance(deps Deps) Provider {
	if deps.Notifier == nil {
		deps.Notifier = silentNotifier{}
	}
	if deps.Events == nil {
		deps.Events = events.Instance
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &impl{
		deps:   deps,
		boards: map[string]*Board{},
	}
}

type impl struct {
	deps   Deps
	mu     sync.Mutex
	boards map[string]*Board
}

func (i *impl) Get(ctx context.Context, spaceID string, actor models.Actor) (*Board, error) {
	i.mu.Lock()
	b, ok := i.boards[spaceID]
	if !ok {
		b = newBoard(spaceID, i.deps)
		i.boards[spaceID] = b
	}
	i.mu.Unlock()
	if err := b.ensureLoaded(ctx); err != nil {
		b.getLogger(actor).WithError(err).Error("ошибка загрузки доски")
		i.deps.Notifier.Error(actor.ID, models.PushLoadFailed, errorText(err))
		return b, err
	}
	return b, nil
}

func (i *impl) Loaded() []*Board {
	i.mu.Lock()
	defer i.mu.Unlock()
	result := make([]*Board, 0, len(i.boards))
	for _, b := range i.boards {
		if b.isLoaded() {
			result = append(result, b)
		}
	}
	return result
}

type silentNotifier struct{}

func (silentNotifier) Success(userID string, tpl models.PushTplCode, args ...interface{}) {}

func (silentNotifier) Error(userID string, tpl models.PushTplCode, args ...interface{}) {}
