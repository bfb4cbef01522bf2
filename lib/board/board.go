package board

import (
	"context"
	"fmt"
	"sync"

	columnsorter "recruitment-board/lib/column-sorter"
	"recruitment-board/lib/pipeline"
	stagetransition "recruitment-board/lib/stage-transition"
	"recruitment-board/lib/utils/lock"
	"recruitment-board/models"
	boardapimodels "recruitment-board/models/api/board"
	dbmodels "recruitment-board/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Board доска вакансий и трекинг кандидатов одного пространства
type Board struct {
	spaceID    string
	postings   *pipeline.PostingStore
	candidates *pipeline.CandidateStore
	deps       Deps

	mu         sync.Mutex
	loaded     bool
	dragging   map[string]string // map[userID]itemID
	organizing map[models.PostingStatus]bool
}

func newBoard(spaceID string, deps Deps) *Board {
	return &Board{
		spaceID:    spaceID,
		postings:   pipeline.NewPostingStore(spaceID, deps.Postings),
		candidates: pipeline.NewCandidateStore(spaceID, deps.Candidates),
		deps:       deps,
		dragging:   map[string]string{},
		organizing: map[models.PostingStatus]bool{},
	}
}

func (b *Board) SpaceID() string {
	return b.spaceID
}

func (b *Board) getLogger(actor models.Actor) *log.Entry {
	return log.
		WithField("space_id", b.spaceID).
		WithField("user_id", actor.ID)
}

func (b *Board) isLoaded() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.loaded
}

func (b *Board) ensureLoaded(ctx context.Context) error {
	if b.isLoaded() {
		return nil
	}
	return b.load(ctx)
}

// load при ошибке любой части доска остается пустой
func (b *Board) load(ctx context.Context) error {
	err := b.postings.Load(ctx)
	if err == nil {
		err = b.candidates.Load(ctx)
	}
	if err != nil {
		b.postings.Reset()
		b.candidates.Reset()
	}
	b.mu.Lock()
	b.loaded = err == nil
	b.mu.Unlock()
	return err
}

// Reload ручная перезагрузка доски пользователем
func (b *Board) Reload(ctx context.Context, actor models.Actor) error {
	if err := b.load(ctx); err != nil {
		b.getLogger(actor).WithError(err).Error("ошибка перезагрузки доски")
		b.deps.Notifier.Error(actor.ID, models.PushLoadFailed, errorText(err))
		return err
	}
	return nil
}

// SyncIdle фоновая синхронизация, снимки с незавершенными сохранениями пропускаются
func (b *Board) SyncIdle(ctx context.Context) error {
	if _, err := b.postings.ReloadIfIdle(ctx); err != nil {
		return err
	}
	_, err := b.candidates.ReloadIfIdle(ctx)
	return err
}

// View состояние доски для пользователя
func (b *Board) View(userID string) boardapimodels.BoardView {
	b.mu.Lock()
	draggingID := b.dragging[userID]
	organizing := make(map[models.PostingStatus]bool, len(b.organizing))
	for k, v := range b.organizing {
		organizing[k] = v
	}
	b.mu.Unlock()

	result := boardapimodels.BoardView{
		Columns:    make([]boardapimodels.ColumnView, 0, len(models.PostingStatuses)),
		DraggingID: draggingID,
	}
	for _, status := range models.PostingStatuses {
		column := boardapimodels.ColumnView{
			Stage:      string(status),
			Organizing: organizing[status],
			Items:      []boardapimodels.PostingView{},
		}
		for _, rec := range b.postings.GetByStage(status) {
			column.Items = append(column.Items, boardapimodels.PostingConvert(rec, b.isPending(rec.ID)))
		}
		result.Columns = append(result.Columns, column)
	}
	return result
}

func (b *Board) Postings() []dbmodels.RecruitmentPosting {
	return b.postings.List()
}

func (b *Board) GetPosting(id string) (dbmodels.RecruitmentPosting, error) {
	rec, ok := b.postings.Get(id)
	if !ok {
		return dbmodels.RecruitmentPosting{}, models.ErrNotFound
	}
	return rec, nil
}

func (b *Board) IsPending(itemID string) bool {
	return b.isPending(itemID)
}

// OnDragStart запоминает перетаскиваемую карточку, состояние доски не меняется
func (b *Board) OnDragStart(actor models.Actor, itemID string) error {
	if _, ok := b.postings.Get(itemID); !ok {
		return models.ErrNotFound
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.dragging[actor.ID] = itemID
	return nil
}

// OnDragEnd перенос вакансии в другую колонку
func (b *Board) OnDragEnd(ctx context.Context, actor models.Actor, itemID, dropTarget string) error {
	b.clearDragging(actor.ID)
	logger := b.getLogger(actor).
		WithField("item_id", itemID).
		WithField("drop_target", dropTarget)

	var before, after dbmodels.RecruitmentPosting
	var changed bool
	err := b.guard(ctx, itemID, func() error {
		rec, ok := b.postings.Get(itemID)
		if !ok {
			return models.ErrNotFound
		}
		res, err := stagetransition.RequestPostingTransition(rec, dropTarget)
		if err != nil {
			return err
		}
		if res.NoOp {
			return nil
		}
		if err = b.postings.ApplyLocalUpdate(itemID, res.Patch); err != nil {
			return err
		}
		if err = b.postings.Persist(ctx, itemID, rec.Version, res.Patch); err != nil {
			b.rollbackPostings(ctx, actor, itemID, err)
			return err
		}
		before, after, changed = rec, res.Posting, true
		return nil
	})
	if err != nil {
		logger.WithError(err).Warn("перенос вакансии не выполнен")
		b.notifyFailure(actor, err)
		return err
	}
	if !changed {
		return nil
	}
	logger.Info("вакансия перенесена")
	b.deps.Notifier.Success(actor.ID, models.PushPostingMoved, after.PositionTitle, after.Status)
	b.postingChanged(ctx, actor, before, after, dbmodels.HistoryTypeStageChange)
	return nil
}

func (b *Board) clearDragging(userID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.dragging, userID)
}

// SortColumn упорядочивает колонку по приоритету, хранилище не меняется
func (b *Board) SortColumn(actor models.Actor, stage string) error {
	status, ok := models.ParsePostingStatus(stage)
	if !ok {
		err := models.InvalidStageError{Stage: stage}
		b.notifyFailure(actor, err)
		return err
	}
	b.setOrganizing(status, true)
	defer b.setOrganizing(status, false)

	err := b.postings.ReorderStage(status, func(items []dbmodels.RecruitmentPosting) []dbmodels.RecruitmentPosting {
		return columnsorter.Sort(items, func(item dbmodels.RecruitmentPosting) int {
			return columnsorter.PriorityRank(item.Priority)
		})
	})
	if err != nil {
		b.getLogger(actor).WithError(err).Error("ошибка сортировки колонки")
		b.notifyFailure(actor, err)
		return err
	}
	b.deps.Notifier.Success(actor.ID, models.PushColumnSorted, status)
	return nil
}

func (b *Board) setOrganizing(status models.PostingStatus, value bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if value {
		b.organizing[status] = true
		return
	}
	delete(b.organizing, status)
}

// AddPosting новая вакансия в колонке начального статуса
func (b *Board) AddPosting(ctx context.Context, actor models.Actor, rec dbmodels.RecruitmentPosting) (dbmodels.RecruitmentPosting, error) {
	rec.Status = models.CoercePostingStatus(string(rec.Status))
	rec.CandidateCount = 0
	rec, err := b.postings.Add(ctx, rec)
	if err != nil {
		b.getLogger(actor).WithError(err).Error("ошибка создания вакансии")
		return dbmodels.RecruitmentPosting{}, err
	}
	b.saveHistory(ctx, actor, models.ItemKindPosting, rec.ID, dbmodels.HistoryTypeAdded, dbmodels.BoardChanges{
		Description: fmt.Sprintf("Вакансия «%s» добавлена", rec.PositionTitle),
	})
	return rec, nil
}

func (b *Board) rollbackPostings(ctx context.Context, actor models.Actor, itemID string, cause error) {
	b.getLogger(actor).
		WithField("item_id", itemID).
		WithError(cause).
		Warn("изменение не сохранено, доска перезагружается")
	if err := b.postings.RevertAndReload(ctx); err != nil {
		b.getLogger(actor).WithError(err).Error("ошибка перезагрузки вакансий после отката")
		b.deps.Notifier.Error(actor.ID, models.PushLoadFailed, errorText(err))
	}
	b.saveHistory(ctx, actor, models.ItemKindPosting, itemID, dbmodels.HistoryTypeRollback, dbmodels.BoardChanges{
		Description: errorText(cause),
	})
}

func (b *Board) itemKey(itemID string) string {
	return "board:" + b.spaceID + ":" + itemID
}

func (b *Board) isPending(itemID string) bool {
	return lock.IsLocked(b.itemKey(itemID))
}

// guard не допускает параллельных изменений одной записи
func (b *Board) guard(ctx context.Context, itemID string, fn func() error) error {
	success, err := lock.WithDelay(ctx, b.itemKey(itemID), b.deps.PendingWait, fn)
	if !success {
		return models.ErrItemBusy
	}
	return err
}

// notifyFailure для ошибки сохранения сообщается, что изменение не сохранено
func (b *Board) notifyFailure(actor models.Actor, err error) {
	var persistErr models.PersistError
	if errors.As(err, &persistErr) {
		b.deps.Notifier.Error(actor.ID, models.PushSaveFailed, errorText(persistErr.Err))
		return
	}
	b.deps.Notifier.Error(actor.ID, models.PushActionFailed, errorText(err))
}

func errorText(err error) string {
	var persistErr models.PersistError
	if errors.As(err, &persistErr) {
		return persistErr.Err.Error()
	}
	return err.Error()
}
