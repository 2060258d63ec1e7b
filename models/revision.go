package models

import (
	"time"
)

// PriceRevision records one bulk price adjustment over a category. The
// stored Factor is what Revert divides by, and the Reverted flag guards
// against applying the same revision twice in either direction.
type PriceRevision struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CategoryID uint      `gorm:"not null;index" json:"category_id"`
	Category   Category  `gorm:"foreignKey:CategoryID" json:"-"`
	Percent    float64   `gorm:"not null" json:"percent"`
	Factor     float64   `gorm:"not null" json:"factor"` // 1 + Percent/100
	Reverted   bool      `gorm:"not null;default:false" json:"reverted"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName specifies the table name for the PriceRevision model
func (PriceRevision) TableName() string {
	return "price_revisions"
}
