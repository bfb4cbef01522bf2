package boardhistorystore

import (
	"context"
	boardapimodels "recruitment-board/models/api/board"
	dbmodels "recruitment-board/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Create(ctx context.Context, rec dbmodels.BoardHistory) (id string, err error)
	ListCount(ctx context.Context, spaceID, itemID string, filter boardapimodels.HistoryFilter) (count int64, err error)
	List(ctx context.Context, spaceID, itemID string, filter boardapimodels.HistoryFilter) (list []dbmodels.BoardHistory, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(ctx context.Context, rec dbmodels.BoardHistory) (id string, err error) {
	err = i.db.WithContext(ctx).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ListCount(ctx context.Context, spaceID, itemID string, filter boardapimodels.HistoryFilter) (count int64, err error) {
	var rowCount int64
	tx := i.filtered(ctx, spaceID, itemID, filter)
	err = tx.Count(&rowCount).Error
	if err != nil {
		log.WithError(err).Error("ошибка получения общего количества действий по записи")
		return 0, errors.New("ошибка получения общего количества действий по записи")
	}
	return rowCount, nil
}

func (i impl) List(ctx context.Context, spaceID, itemID string, filter boardapimodels.HistoryFilter) (list []dbmodels.BoardHistory, err error) {
	list = []dbmodels.BoardHistory{}
	tx := i.filtered(ctx, spaceID, itemID, filter)
	page, limit := filter.GetPage()
	i.setPage(tx, page, limit)
	err = tx.Order("created_at").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) filtered(ctx context.Context, spaceID, itemID string, filter boardapimodels.HistoryFilter) *gorm.DB {
	tx := i.db.WithContext(ctx).
		Model(dbmodels.BoardHistory{}).
		Where("space_id = ?", spaceID).
		Where("item_id = ?", itemID)
	if filter.ActionType != "" {
		tx = tx.Where("action_type = ?", filter.ActionType)
	}
	return tx
}

func (i impl) setPage(tx *gorm.DB, page, limit int) {
	offset := (page - 1) * limit
	tx.Limit(limit).Offset(offset)
}
