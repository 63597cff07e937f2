package model

// Category groups equipment; rows are created on demand by name.
type Category struct {
	ID   uint   `json:"category_id" gorm:"primaryKey"`
	Name string `json:"category_name" gorm:"uniqueIndex;size:255;not null"`
}

// Supplier is the vendor an equipment item was purchased from; rows are
// created on demand by name.
type Supplier struct {
	ID   uint   `json:"supplier_id" gorm:"primaryKey"`
	Name string `json:"supplier_name" gorm:"uniqueIndex;size:255;not null"`
}
