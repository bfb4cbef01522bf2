package candidatestore

import (
	"context"
	"recruitment-board/models"
	dbmodels "recruitment-board/models/db"
	"time"

	"gorm.io/gorm"
)

type Provider interface {
	Create(ctx context.Context, rec dbmodels.CandidateApplication) (id string, err error)
	List(ctx context.Context, spaceID string) (list []dbmodels.CandidateApplication, err error)
	Update(ctx context.Context, spaceID, id string, version int, updMap map[string]interface{}) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(ctx context.Context, rec dbmodels.CandidateApplication) (id string, err error) {
	err = i.db.WithContext(ctx).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) List(ctx context.Context, spaceID string) (list []dbmodels.CandidateApplication, err error) {
	list = []dbmodels.CandidateApplication{}
	err = i.db.WithContext(ctx).
		Where("space_id = ?", spaceID).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Update(ctx context.Context, spaceID, id string, version int, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	updMap["version"] = gorm.Expr("version + 1")
	updMap["updated_at"] = time.Now()
	tx := i.db.WithContext(ctx).
		Model(&dbmodels.CandidateApplication{}).
		Where("id = ?", id).
		Where("space_id = ?", spaceID).
		Where("version = ?", version).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return models.ErrVersionConflict
	}
	return nil
}
