package models

import (
	"time"

	"gorm.io/gorm"
)

// Category represents a spare-part category (displays, batteries, ...)
type Category struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"not null" json:"name"`
	NameLower string         `gorm:"uniqueIndex;not null" json:"-"` // folded name for case-insensitive uniqueness
	Slug      string         `gorm:"index" json:"slug"`
	ImageURL  string         `json:"image_url"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Category model
func (Category) TableName() string {
	return "categories"
}

// Brand represents a device manufacturer (Samsung, Xiaomi, ...)
type Brand struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"not null" json:"name"`
	NameLower string         `gorm:"uniqueIndex;not null" json:"-"`
	Slug      string         `gorm:"index" json:"slug"`
	ImageURL  string         `json:"image_url"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Brand model
func (Brand) TableName() string {
	return "brands"
}

// Series represents a device series within a brand (Galaxy A, Redmi Note, ...)
type Series struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	BrandID   uint           `gorm:"not null;uniqueIndex:idx_series_brand_name" json:"brand_id"`
	Brand     Brand          `gorm:"foreignKey:BrandID" json:"-"`
	Name      string         `gorm:"not null" json:"name"`
	NameLower string         `gorm:"not null;uniqueIndex:idx_series_brand_name" json:"-"`
	Slug      string         `gorm:"index" json:"slug"`
	ImageURL  string         `json:"image_url"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Series model
func (Series) TableName() string {
	return "series"
}

// DeviceModel represents a device model within a brand/series (Galaxy A52, ...)
type DeviceModel struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	BrandID   uint           `gorm:"not null;uniqueIndex:idx_models_brand_name" json:"brand_id"`
	Brand     Brand          `gorm:"foreignKey:BrandID" json:"-"`
	SeriesID  *uint          `gorm:"index" json:"series_id"` // nullable, some brands have no series level
	Series    *Series        `gorm:"foreignKey:SeriesID" json:"-"`
	Name      string         `gorm:"not null" json:"name"`
	NameLower string         `gorm:"not null;uniqueIndex:idx_models_brand_name" json:"-"`
	Slug      string         `gorm:"index" json:"slug"`
	ImageURL  string         `json:"image_url"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the DeviceModel model
func (DeviceModel) TableName() string {
	return "device_models"
}
