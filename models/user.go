package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a storefront customer, keyed by the identity provider's
// subject claim. Profiles are merged (upserted) on auth events.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UID       string         `gorm:"uniqueIndex;not null" json:"uid"` // identity provider 'sub' claim
	Name      string         `json:"name"`
	Email     string         `gorm:"index" json:"email"`
	Phone     string         `json:"phone"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}

// Address is one saved shipping address of a user
type Address struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UID       string    `gorm:"not null;index" json:"uid"`
	Name      string    `gorm:"not null" json:"name"`
	Line      string    `gorm:"not null" json:"line"`
	City      string    `gorm:"not null" json:"city"`
	State     string    `gorm:"not null" json:"state"`
	Pin       string    `gorm:"not null" json:"pin"`
	Phone     string    `gorm:"not null" json:"phone"`
	IsDefault bool      `gorm:"not null;default:false" json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Address model
func (Address) TableName() string {
	return "addresses"
}

// CartItem is one product (optionally a specific variation) in a user's cart
type CartItem struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UID         string     `gorm:"not null;uniqueIndex:idx_cart_uid_product" json:"uid"`
	ProductID   uint       `gorm:"not null;uniqueIndex:idx_cart_uid_product" json:"product_id"`
	Product     Product    `gorm:"foreignKey:ProductID" json:"product"`
	VariationID *uint      `gorm:"uniqueIndex:idx_cart_uid_product" json:"variation_id,omitempty"`
	Variation   *Variation `gorm:"foreignKey:VariationID" json:"variation,omitempty"`
	Quantity    int        `gorm:"not null;default:1" json:"quantity"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TableName specifies the table name for the CartItem model
func (CartItem) TableName() string {
	return "cart_items"
}

// Favorite marks a product a user has saved
type Favorite struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UID       string    `gorm:"not null;uniqueIndex:idx_fav_uid_product" json:"uid"`
	ProductID uint      `gorm:"not null;uniqueIndex:idx_fav_uid_product" json:"product_id"`
	Product   Product   `gorm:"foreignKey:ProductID" json:"product"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for the Favorite model
func (Favorite) TableName() string {
	return "favorites"
}
