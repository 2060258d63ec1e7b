package models

import (
	"time"

	"gorm.io/gorm"
)

// Admin is a back-office operator. The first-created admin and the last
// remaining admin are protected from deletion.
type Admin struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	Email      string         `gorm:"not null" json:"email"`
	EmailLower string         `gorm:"uniqueIndex;not null" json:"-"`
	Name       string         `gorm:"not null" json:"name"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Admin model
func (Admin) TableName() string {
	return "admins"
}

// ShippingSetting is a single-row table of storefront-wide fee knobs
type ShippingSetting struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	DeliveryFee       float64   `gorm:"not null;default:99" json:"delivery_fee"`
	CODFee            float64   `gorm:"not null;default:20" json:"cod_fee"`
	AdvancePercent    float64   `gorm:"not null;default:10" json:"advance_percent"`
	FreeDeliveryAbove float64   `gorm:"not null;default:0" json:"free_delivery_above"` // 0 disables the threshold
	UpdatedAt         time.Time `json:"updated_at"`
}

// TableName specifies the table name for the ShippingSetting model
func (ShippingSetting) TableName() string {
	return "shipping_settings"
}

// DefaultShippingSetting returns the fee values used until an admin saves
// their own.
func DefaultShippingSetting() ShippingSetting {
	return ShippingSetting{
		DeliveryFee:    99,
		CODFee:         20,
		AdvancePercent: 10,
	}
}
