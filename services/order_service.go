package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/intellij1704/mobile-display-sub002/config"
	"github.com/intellij1704/mobile-display-sub002/models"
)

// Order errors surfaced to controllers
var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("invalid order status transition")
)

var orderLog = componentLogger("order")

// UpdateOrderStatus moves an order through its lifecycle. The status change
// is persisted first; the notification mail and (on delivery) the invoice
// are fired afterwards best-effort: a failed side effect is logged, never
// rolled back into the already-persisted status.
func UpdateOrderStatus(ctx context.Context, orderID string, next models.OrderStatus) (*models.Order, error) {
	db := config.GetDB()

	var order models.Order
	if err := db.WithContext(ctx).
		Preload("CheckoutSession").Preload("CheckoutSession.Items").
		First(&order, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if !order.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, next)
	}

	if err := db.Model(&order).Update("status", next).Error; err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	order.Status = next

	notifyOrderStatus(db, &order)

	if next == models.OrderStatusDelivered {
		if err := GenerateInvoice(db, &order); err != nil {
			orderLog.Errorf("invoice generation failed for order %s: %v", order.ID, err)
		}
	}

	return &order, nil
}

// notifyOrderStatus mails the customer about the new status, when both a
// mailer and a user email are available.
func notifyOrderStatus(db *gorm.DB, order *models.Order) {
	mailer := GetMailService()
	if mailer == nil {
		return
	}

	var user models.User
	if err := db.Where("uid = ?", order.UID).First(&user).Error; err != nil || user.Email == "" {
		orderLog.Warnf("no email on file for order %s, skipping notification", order.ID)
		return
	}

	if err := mailer.SendOrderStatus(user.Email, order); err != nil {
		orderLog.Errorf("status mail failed for order %s: %v", order.ID, err)
	}
}

// UpdateReturnStatus moves a return/replacement request through its
// lifecycle and mails the customer, same side-effect policy as orders.
func UpdateReturnStatus(ctx context.Context, requestID uint, next models.ReturnStatus) (*models.ReturnRequest, error) {
	db := config.GetDB()

	var request models.ReturnRequest
	if err := db.WithContext(ctx).First(&request, requestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if !request.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, request.Status, next)
	}

	if err := db.Model(&request).Update("status", next).Error; err != nil {
		return nil, fmt.Errorf("failed to update return status: %w", err)
	}
	request.Status = next

	if mailer := GetMailService(); mailer != nil {
		var user models.User
		if err := db.Where("uid = ?", request.UID).First(&user).Error; err == nil && user.Email != "" {
			if err := mailer.SendReturnStatus(user.Email, &request); err != nil {
				orderLog.Errorf("return status mail failed for request %d: %v", request.ID, err)
			}
		}
	}

	return &request, nil
}
