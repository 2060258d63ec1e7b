package models

import (
	"time"

	"gorm.io/gorm"
)

// ShopOwnerLead is a wholesale enquiry left by a repair-shop owner
type ShopOwnerLead struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"not null" json:"name"`
	Phone     string         `gorm:"not null" json:"phone"`
	ShopName  string         `json:"shop_name"`
	City      string         `json:"city"`
	Message   string         `gorm:"type:text" json:"message"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the ShopOwnerLead model
func (ShopOwnerLead) TableName() string {
	return "shop_owner_leads"
}

// ContactMessage is a contact-form submission, persisted before it is
// relayed to the shop inbox.
type ContactMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null" json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for the ContactMessage model
func (ContactMessage) TableName() string {
	return "contact_messages"
}
