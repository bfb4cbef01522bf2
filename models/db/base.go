package dbmodels

import (
	"time"
)

type BaseModel struct {
	ID        string    `gorm:"primaryKey;default:uuid_generate_v4()" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type BaseSpaceModel struct {
	BaseModel
	SpaceID string `gorm:"type:varchar(36);index" json:"space_id"`
}

// VersionedModel версия записи для сохранения с проверкой (compare-and-swap)
type VersionedModel struct {
	Version int `gorm:"not null;default:0" json:"version"`
}
