package model

import "time"

// Order is an immutable record of a placed cart. Stock is not touched at
// placement; it was already reserved at add-to-cart time.
type Order struct {
	ID     uint      `json:"order_id" gorm:"primaryKey"`
	UserID uint      `json:"user_id" gorm:"not null;index"`
	Date   time.Time `json:"date" gorm:"not null"`

	// Relations
	User  User        `json:"-" gorm:"foreignKey:UserID"`
	Lines []OrderLine `json:"items,omitempty" gorm:"foreignKey:OrderID"`
}

// OrderLine holds the summed quantity of one equipment across the cart lines
// consumed by its order. The composite key lets line insertion merge on
// conflict, keeping placement idempotent under retry.
type OrderLine struct {
	OrderID     uint `json:"order_id" gorm:"primaryKey;autoIncrement:false"`
	EquipmentID uint `json:"equipment_id" gorm:"primaryKey;autoIncrement:false"`
	Quantity    int  `json:"quantity" gorm:"not null"`

	// Relations
	Equipment Equipment `json:"-" gorm:"foreignKey:EquipmentID"`
}
