package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderStatus is the lifecycle state of an order
type OrderStatus string

const (
	OrderStatusPlaced    OrderStatus = "placed"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Order is created exactly once per checkout session: its primary key is the
// checkout session id, which is what makes order creation idempotent across
// page-reload retries.
type Order struct {
	ID                string          `gorm:"primaryKey;size:36" json:"id"` // == CheckoutSession.ID
	UID               string          `gorm:"not null;index" json:"uid"`
	CheckoutSessionID string          `gorm:"not null;size:36" json:"checkout_session_id"`
	CheckoutSession   CheckoutSession `gorm:"foreignKey:CheckoutSessionID" json:"checkout_session"`

	Status      OrderStatus `gorm:"not null;default:'placed'" json:"status"`
	PaymentMode string      `gorm:"not null" json:"payment_mode"` // "prepaid" or "cod"
	AmountPaid  float64     `json:"amount_paid"`                  // advance for COD, full total for prepaid
	AmountDue   float64     `json:"amount_due"`                   // remaining COD amount, 0 for prepaid

	AWB           string `json:"awb,omitempty"` // shipping partner waybill, set once shipped
	InvoiceNumber *int   `gorm:"uniqueIndex" json:"invoice_number,omitempty"`
	InvoiceURL    string `json:"invoice_url,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// CanTransitionTo reports whether the status change is a legal lifecycle move
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch s {
	case OrderStatusPlaced:
		return next == OrderStatusConfirmed || next == OrderStatusCancelled
	case OrderStatusConfirmed:
		return next == OrderStatusShipped || next == OrderStatusCancelled
	case OrderStatusShipped:
		return next == OrderStatusDelivered
	default:
		// delivered and cancelled are terminal
		return false
	}
}

// InvoiceCounter is a single-row table whose Next column is bumped under a
// row lock to assign gapless invoice numbers.
type InvoiceCounter struct {
	ID   uint `gorm:"primaryKey"`
	Next int  `gorm:"not null;default:1"`
}

// TableName specifies the table name for the InvoiceCounter model
func (InvoiceCounter) TableName() string {
	return "invoice_counters"
}
