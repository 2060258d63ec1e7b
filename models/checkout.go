package models

import (
	"time"
)

// Checkout modes
const (
	CheckoutModePrepaid = "prepaid"
	CheckoutModeCOD     = "cod"
)

// Delivery types
const (
	DeliveryTypeFree = "free"
	DeliveryTypePaid = "paid"
)

// CheckoutSession is the staging record for a cart snapshot prior to an
// order being confirmed. Prepaid sessions are later filled with a
// gateway-assigned redirect URL by the out-of-process payment webhook;
// COD sessions are immutable after creation.
type CheckoutSession struct {
	ID  string `gorm:"primaryKey;size:36" json:"id"`
	UID string `gorm:"not null;index" json:"uid"`

	Mode string `gorm:"not null" json:"mode"` // "prepaid" or "cod"

	// Shipping address snapshot
	AddressName  string `json:"address_name"`
	AddressLine  string `json:"address_line"`
	AddressCity  string `json:"address_city"`
	AddressState string `json:"address_state"`
	AddressPin   string `json:"address_pin"`
	AddressPhone string `json:"address_phone"`

	// Prepaid-only fields
	SuccessURL   string `json:"success_url,omitempty"`
	CancelURL    string `json:"cancel_url,omitempty"`
	GatewayURL   string `json:"gateway_url,omitempty"`   // assigned asynchronously by the payment webhook
	GatewayError string `json:"gateway_error,omitempty"` // set instead of GatewayURL on gateway failure

	// Computed amounts
	Subtotal     float64 `json:"subtotal"`
	DeliveryType string  `json:"delivery_type"`
	DeliveryFee  float64 `json:"delivery_fee"`
	CODFee       float64 `json:"cod_fee"`
	Total        float64 `json:"total"`
	Advance      float64 `json:"advance"`   // collected online for COD orders
	Remaining    float64 `json:"remaining"` // collected at the door

	Items []CheckoutItem `gorm:"foreignKey:CheckoutSessionID;constraint:OnDelete:CASCADE" json:"items"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for the CheckoutSession model
func (CheckoutSession) TableName() string {
	return "checkout_sessions"
}

// CheckoutItem is one line item within a checkout session. Price fields are
// snapshots taken at checkout time, not references to live product rows.
type CheckoutItem struct {
	ID                uint    `gorm:"primaryKey" json:"id"`
	CheckoutSessionID string  `gorm:"not null;index;size:36" json:"-"`
	ProductID         uint    `gorm:"not null" json:"product_id"`
	VariationID       *uint   `json:"variation_id,omitempty"`
	Title             string  `gorm:"not null" json:"title"`
	Color             string  `json:"color,omitempty"`
	Quality           string  `json:"quality,omitempty"`
	ImageURL          string  `json:"image_url,omitempty"`
	UnitPrice         float64 `gorm:"not null" json:"unit_price"`
	UnitPriceMinor    int64   `gorm:"not null" json:"unit_price_minor"` // paise, what the gateway is charged in
	Quantity          int     `gorm:"not null" json:"quantity"`
}

// TableName specifies the table name for the CheckoutItem model
func (CheckoutItem) TableName() string {
	return "checkout_items"
}
