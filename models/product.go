package models

import (
	"time"

	"gorm.io/gorm"
)

// Product represents a spare part in the catalog. A variable product carries
// its sellable price/stock on Variations; a simple product carries them on
// the product row itself.
type Product struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"not null" json:"title"`
	TitleLower  string         `gorm:"uniqueIndex;not null" json:"-"`
	SKU         string         `gorm:"index" json:"sku"`
	Slug        string         `gorm:"index" json:"slug"`
	Description string         `gorm:"type:text" json:"description"`
	CategoryID  uint           `gorm:"not null;index" json:"category_id"`
	Category    Category       `gorm:"foreignKey:CategoryID" json:"category"`
	BrandID     uint           `gorm:"not null;index" json:"brand_id"`
	Brand       Brand          `gorm:"foreignKey:BrandID" json:"brand"`
	ModelID     *uint          `gorm:"index" json:"model_id"`
	Model       *DeviceModel   `gorm:"foreignKey:ModelID" json:"model,omitempty"`
	ListPrice   float64        `gorm:"not null" json:"list_price"`
	SalePrice   float64        `json:"sale_price"`
	Stock       int            `gorm:"not null;default:0" json:"stock"`
	IsVariable  bool           `gorm:"not null;default:false" json:"is_variable"`
	OrdersCount int            `gorm:"not null;default:0" json:"orders_count"` // cumulative purchased quantity
	Variations  []Variation    `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"variations,omitempty"`
	Images      []ProductImage `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// Variation is a color/quality combination of a variable product with its
// own price, stock and images.
type Variation struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	ProductID uint           `gorm:"not null;index" json:"product_id"`
	Color     string         `json:"color"`
	Quality   string         `json:"quality"` // e.g. "OEM", "Original", "Copy"
	ListPrice float64        `gorm:"not null" json:"list_price"`
	SalePrice float64        `json:"sale_price"`
	Stock     int            `gorm:"not null;default:0" json:"stock"`
	Images    []ProductImage `gorm:"foreignKey:VariationID" json:"images,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Variation model
func (Variation) TableName() string {
	return "variations"
}

// ProductImage stores the object-storage URL of one product or variation image
type ProductImage struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ProductID   uint      `gorm:"not null;index" json:"product_id"`
	VariationID *uint     `gorm:"index" json:"variation_id,omitempty"` // nil for product-level images
	URL         string    `gorm:"not null" json:"url"`
	Position    int       `gorm:"not null;default:0" json:"position"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName specifies the table name for the ProductImage model
func (ProductImage) TableName() string {
	return "product_images"
}
