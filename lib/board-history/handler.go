package boardhistoryhandler

import (
	"context"
	"recruitment-board/db"
	boardhistorystore "recruitment-board/lib/board-history/store"
	"recruitment-board/models"
	boardapimodels "recruitment-board/models/api/board"
	dbmodels "recruitment-board/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	List(ctx context.Context, spaceID, itemID string, filter boardapimodels.HistoryFilter) ([]boardapimodels.HistoryView, int64, error)
	// Save ошибки записи истории только логируются
	Save(ctx context.Context, spaceID string, kind models.ItemKind, itemID string, actor models.Actor, action dbmodels.ActionType, changes dbmodels.BoardChanges)
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(boardhistorystore.NewInstance(db.DB))
}

func NewInstance(store boardhistorystore.Provider) Provider {
	return impl{
		store: store,
	}
}

type impl struct {
	store boardhistorystore.Provider
}

func (i impl) List(ctx context.Context, spaceID, itemID string, filter boardapimodels.HistoryFilter) ([]boardapimodels.HistoryView, int64, error) {
	rowCount, err := i.store.ListCount(ctx, spaceID, itemID, filter)
	if err != nil {
		return nil, 0, err
	}

	page, limit := filter.GetPage()
	offset := (page - 1) * limit
	if int64(offset) > rowCount {
		return []boardapimodels.HistoryView{}, rowCount, nil
	}

	list, err := i.store.List(ctx, spaceID, itemID, filter)
	if err != nil {
		log.WithError(err).Error("ошибка получения списка действий")
		return nil, 0, errors.New("ошибка получения списка действий")
	}
	result := make([]boardapimodels.HistoryView, 0, len(list))
	for _, rec := range list {
		result = append(result, boardapimodels.HistoryConvert(rec))
	}
	return result, rowCount, nil
}

func (i impl) Save(ctx context.Context, spaceID string, kind models.ItemKind, itemID string, actor models.Actor, action dbmodels.ActionType, changes dbmodels.BoardChanges) {
	logger := log.WithField("space_id", spaceID).
		WithField("item_id", itemID).
		WithField("item_kind", kind).
		WithField("action", action).
		WithField("description", changes.Description)
	rec := dbmodels.BoardHistory{
		BaseSpaceModel: dbmodels.BaseSpaceModel{
			SpaceID: spaceID,
		},
		ItemKind:   kind,
		ItemID:     itemID,
		ActionType: action,
		Changes:    changes,
		UserName:   actor.DisplayName(),
	}
	if actor.ID != "" {
		rec.UserID = &actor.ID
	}
	_, err := i.store.Create(ctx, rec)
	if err != nil {
		logger.WithError(err).Error("ошибка сохранения истории действий по записи")
	}
}
