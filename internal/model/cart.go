package model

import "time"

// CartLine is a pending-purchase reservation: stock is decremented the moment
// a line is created or grown, and returned when the line shrinks via the
// remove-item path. Lines are consumed (deleted) at order placement.
type CartLine struct {
	ID          uint      `json:"cart_id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"not null;index"`
	EquipmentID uint      `json:"equipment_id" gorm:"not null;index"`
	Quantity    int       `json:"quantity" gorm:"not null"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`

	// Relations
	User      User      `json:"-" gorm:"foreignKey:UserID"`
	Equipment Equipment `json:"-" gorm:"foreignKey:EquipmentID"`
}
