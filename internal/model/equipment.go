package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// EquipmentStatus is the stock label shown to customers. It is a projection
// of Quantity: the add-to-cart path writes In Use on exact depletion, the
// restock path writes Out of Stock at zero.
type EquipmentStatus = string

const (
	StatusAvailable  EquipmentStatus = "Available"
	StatusOutOfStock EquipmentStatus = "Out of Stock"
	StatusInUse      EquipmentStatus = "In Use"
)

// Equipment represents a rentable inventory item.
type Equipment struct {
	ID           uint            `json:"equipment_id" gorm:"primaryKey"`
	Name         string          `json:"equipment_name" gorm:"size:255;not null;index"`
	ImagePath    string          `json:"equipment_img" gorm:"size:512"`
	Rating       decimal.Decimal `json:"rating" gorm:"type:decimal(3,2);not null;default:5"`
	ModelNumber  string          `json:"model_number" gorm:"size:255;index"`
	PurchaseDate *time.Time      `json:"purchase_date,omitempty"`
	Quantity     int             `json:"quantity" gorm:"not null;default:0"`
	Status       EquipmentStatus `json:"status" gorm:"size:20;not null;default:'Available'"`
	Location     string          `json:"location" gorm:"size:255"`
	CategoryID   uint            `json:"category_id" gorm:"index"`
	SupplierID   uint            `json:"supplier_id" gorm:"index"`
	CreatedAt    time.Time       `json:"-"`
	UpdatedAt    time.Time       `json:"-"`

	// Relations
	Category Category `json:"-" gorm:"foreignKey:CategoryID"`
	Supplier Supplier `json:"-" gorm:"foreignKey:SupplierID"`
}
