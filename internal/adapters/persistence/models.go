package persistence

import "time"

// SaveModel represents the saves table. The game state is stored as one
// JSON document per named slot; schema evolution is handled by
// defaulting missing fields at load, never by migrations of the blob.
type SaveModel struct {
	Name      string    `gorm:"column:name;primaryKey;not null"`
	State     string    `gorm:"column:state;type:text;not null"`
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;autoUpdateTime"`
}

func (SaveModel) TableName() string {
	return "saves"
}
