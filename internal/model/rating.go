package model

import "time"

// Rating is a per-user score for an equipment item. One rating per
// (user, equipment) is enforced by the composite unique index.
type Rating struct {
	ID          uint      `json:"rating_id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_rating_user_equipment"`
	EquipmentID uint      `json:"equipment_id" gorm:"not null;uniqueIndex:idx_rating_user_equipment"`
	Score       int       `json:"score" gorm:"not null"`
	Comment     string    `json:"comment,omitempty" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`

	// Relations
	User      User      `json:"-" gorm:"foreignKey:UserID"`
	Equipment Equipment `json:"-" gorm:"foreignKey:EquipmentID"`
}
