package models

import (
	"time"

	"gorm.io/gorm"
)

// ReturnType distinguishes the three after-sales flows
type ReturnType string

const (
	ReturnTypeReturn      ReturnType = "return"
	ReturnTypeReplacement ReturnType = "replacement"
	ReturnTypeSelfShip    ReturnType = "self_ship"
)

// ReturnStatus is the lifecycle state of a return/replacement request
type ReturnStatus string

const (
	ReturnStatusRequested ReturnStatus = "requested"
	ReturnStatusApproved  ReturnStatus = "approved"
	ReturnStatusRejected  ReturnStatus = "rejected"
	ReturnStatusPickedUp  ReturnStatus = "picked_up"
	ReturnStatusCompleted ReturnStatus = "completed"
)

// ReturnRequest captures a user's return or replacement claim against one
// order line. Product fields are snapshots so the claim survives later
// product edits.
type ReturnRequest struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	OrderID string `gorm:"not null;index;size:36" json:"order_id"`
	Order   Order  `gorm:"foreignKey:OrderID" json:"-"`
	UID     string `gorm:"not null;index" json:"uid"`

	Type   ReturnType   `gorm:"not null" json:"type"`
	Status ReturnStatus `gorm:"not null;default:'requested'" json:"status"`
	Reason string       `gorm:"type:text" json:"reason"`

	// Product snapshot
	ProductID    uint    `gorm:"not null" json:"product_id"`
	ProductTitle string  `gorm:"not null" json:"product_title"`
	Color        string  `json:"color,omitempty"`
	Quality      string  `json:"quality,omitempty"`
	UnitPrice    float64 `json:"unit_price"`
	Quantity     int     `gorm:"not null;default:1" json:"quantity"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the ReturnRequest model
func (ReturnRequest) TableName() string {
	return "return_requests"
}

// CanTransitionTo reports whether the status change is a legal lifecycle move
func (s ReturnStatus) CanTransitionTo(next ReturnStatus) bool {
	switch s {
	case ReturnStatusRequested:
		return next == ReturnStatusApproved || next == ReturnStatusRejected
	case ReturnStatusApproved:
		return next == ReturnStatusPickedUp || next == ReturnStatusCompleted
	case ReturnStatusPickedUp:
		return next == ReturnStatusCompleted
	default:
		return false
	}
}
