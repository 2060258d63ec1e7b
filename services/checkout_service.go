package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/intellij1704/mobile-display-sub002/config"
	"github.com/intellij1704/mobile-display-sub002/models"
	"github.com/intellij1704/mobile-display-sub002/utils"
)

// Checkout errors surfaced to controllers
var (
	ErrCartEmpty        = errors.New("cart is empty")
	ErrAddressNotFound  = errors.New("address not found")
	ErrCheckoutNotFound = errors.New("checkout session not found")
	ErrNotCODCheckout   = errors.New("not a cash-on-delivery checkout")
	ErrAlreadyProcessed = errors.New("order already processed")
	ErrGatewayTimeout   = errors.New("payment gateway did not respond in time")
)

// gatewayPollWaits is the escalating wait sequence used while the
// out-of-process payment webhook fills in the session's redirect URL.
var gatewayPollWaits = []time.Duration{2 * time.Second, 3 * time.Second, 5 * time.Second}

var checkoutLog = componentLogger("checkout")

// buildSession snapshots the user's cart into a new checkout session.
// Unit prices are taken from the product's current sale-aware price; the
// session owns the snapshot from here on.
func buildSession(db *gorm.DB, uid string, addressID uint, mode string) (*models.CheckoutSession, error) {
	var cart []models.CartItem
	if err := db.Preload("Product").Preload("Product.Images").Preload("Variation").
		Where("uid = ?", uid).Find(&cart).Error; err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if len(cart) == 0 {
		return nil, ErrCartEmpty
	}

	var address models.Address
	if err := db.Where("id = ? AND uid = ?", addressID, uid).First(&address).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAddressNotFound
		}
		return nil, err
	}

	session := &models.CheckoutSession{
		ID:           uuid.NewString(),
		UID:          uid,
		Mode:         mode,
		AddressName:  address.Name,
		AddressLine:  address.Line,
		AddressCity:  address.City,
		AddressState: address.State,
		AddressPin:   address.Pin,
		AddressPhone: address.Phone,
	}

	var subtotal float64
	for _, item := range cart {
		list, sale := item.Product.ListPrice, item.Product.SalePrice
		color, quality := "", ""
		if item.Variation != nil {
			list, sale = item.Variation.ListPrice, item.Variation.SalePrice
			color, quality = item.Variation.Color, item.Variation.Quality
		}
		price := UnitPrice(list, sale)

		imageURL := ""
		if len(item.Product.Images) > 0 {
			imageURL = item.Product.Images[0].URL
		}

		session.Items = append(session.Items, models.CheckoutItem{
			ProductID:      item.ProductID,
			VariationID:    item.VariationID,
			Title:          item.Product.Title,
			Color:          color,
			Quality:        quality,
			ImageURL:       imageURL,
			UnitPrice:      price,
			UnitPriceMinor: utils.ToMinorUnits(price),
			Quantity:       item.Quantity,
		})
		subtotal += price * float64(item.Quantity)
	}

	settings := GetShippingSettings(db)
	totals := ComputeTotals(subtotal, models.DeliveryTypePaid, mode == models.CheckoutModeCOD, settings)

	session.Subtotal = totals.Subtotal
	session.DeliveryType = models.DeliveryTypePaid
	if totals.DeliveryFee == 0 {
		session.DeliveryType = models.DeliveryTypeFree
	}
	session.DeliveryFee = totals.DeliveryFee
	session.CODFee = totals.CODFee
	session.Total = totals.Total
	session.Advance = totals.Advance
	session.Remaining = totals.Remaining

	return session, nil
}

// GetShippingSettings returns the stored fee settings, or the defaults when
// no admin has saved any yet.
func GetShippingSettings(db *gorm.DB) models.ShippingSetting {
	var settings models.ShippingSetting
	if err := db.First(&settings).Error; err != nil {
		return models.DefaultShippingSetting()
	}
	return settings
}

// CreateCODCheckout snapshots the cart into an immutable cash-on-delivery
// checkout session with the full amount breakdown computed synchronously.
func CreateCODCheckout(uid string, addressID uint) (*models.CheckoutSession, error) {
	db := config.GetDB()

	session, err := buildSession(db, uid, addressID, models.CheckoutModeCOD)
	if err != nil {
		return nil, err
	}
	if err := db.Create(session).Error; err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}
	return session, nil
}

// CreatePrepaidCheckout snapshots the cart into a prepaid checkout session,
// persists it, then waits for the payment webhook to assign the gateway
// redirect URL. The wait sequence is bounded (2s, 3s, 5s) and aborts as soon
// as the caller's request context is cancelled, so an abandoned checkout does
// not keep polling server-side.
func CreatePrepaidCheckout(ctx context.Context, uid string, addressID uint, successURL, cancelURL string) (*models.CheckoutSession, error) {
	db := config.GetDB()

	session, err := buildSession(db, uid, addressID, models.CheckoutModePrepaid)
	if err != nil {
		return nil, err
	}
	session.SuccessURL = successURL
	session.CancelURL = cancelURL

	if err := db.Create(session).Error; err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	for attempt, wait := range gatewayPollWaits {
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			checkoutLog.Infof("prepaid checkout %s abandoned before gateway URL arrived", session.ID)
			return nil, ctx.Err()
		case <-timer.C:
		}

		var current models.CheckoutSession
		if err := db.Preload("Items").First(&current, "id = ?", session.ID).Error; err != nil {
			return nil, fmt.Errorf("failed to poll checkout session: %w", err)
		}
		if current.GatewayError != "" {
			checkoutLog.Warnf("gateway reported error for checkout %s: %s", session.ID, current.GatewayError)
			return nil, fmt.Errorf("payment gateway error: %s", current.GatewayError)
		}
		if current.GatewayURL != "" {
			checkoutLog.Infof("checkout %s got gateway URL after %d attempt(s)", session.ID, attempt+1)
			return &current, nil
		}
	}

	checkoutLog.Warnf("checkout %s exhausted gateway polls", session.ID)
	return nil, ErrGatewayTimeout
}

// flatItem is the flattened (product, variation, quantity) view of a
// checkout's nested line items.
type flatItem struct {
	ProductID   uint
	VariationID *uint
	Quantity    int
}

func flattenItems(items []models.CheckoutItem) []flatItem {
	flat := make([]flatItem, 0, len(items))
	for _, item := range items {
		flat = append(flat, flatItem{
			ProductID:   item.ProductID,
			VariationID: item.VariationID,
			Quantity:    item.Quantity,
		})
	}
	return flat
}

// FinalizeCOD turns a cash-on-delivery checkout session into an order. The
// session must belong to the caller and must have been created in COD mode;
// a prepaid session never becomes an order here, its payment is collected by
// the gateway instead.
//
// The whole sequence runs inside one transaction: the existence check makes
// the operation idempotent per checkout id (a page-reload retry gets
// ErrAlreadyProcessed and nothing else happens), and a failure in any later
// step rolls back the order row, the cart prune and the counter updates
// together instead of leaving a partially applied state.
func FinalizeCOD(ctx context.Context, uid, checkoutID string) (*models.Order, error) {
	db := config.GetDB()

	var order *models.Order
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Order
		err := tx.First(&existing, "id = ?", checkoutID).Error
		if err == nil {
			return ErrAlreadyProcessed
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		var session models.CheckoutSession
		if err := tx.Preload("Items").First(&session, "id = ?", checkoutID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCheckoutNotFound
			}
			return err
		}
		// Someone else's checkout id looks exactly like a missing one
		if session.UID != uid {
			return ErrCheckoutNotFound
		}
		if session.Mode != models.CheckoutModeCOD {
			return ErrNotCODCheckout
		}

		order = &models.Order{
			ID:                session.ID,
			UID:               session.UID,
			CheckoutSessionID: session.ID,
			Status:            models.OrderStatusPlaced,
			PaymentMode:       models.CheckoutModeCOD,
			AmountPaid:        session.Advance,
			AmountDue:         session.Remaining,
		}
		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		flat := flattenItems(session.Items)

		// Prune the purchased products from the user's cart
		productIDs := make([]uint, 0, len(flat))
		for _, item := range flat {
			productIDs = append(productIDs, item.ProductID)
		}
		if err := tx.Where("uid = ? AND product_id IN ?", session.UID, productIDs).
			Delete(&models.CartItem{}).Error; err != nil {
			return fmt.Errorf("failed to prune cart: %w", err)
		}

		// Decrement stock and bump the cumulative orders counter
		for _, item := range flat {
			if item.VariationID != nil {
				if err := tx.Model(&models.Variation{}).Where("id = ?", *item.VariationID).
					UpdateColumn("stock", gorm.Expr("stock - ?", item.Quantity)).Error; err != nil {
					return fmt.Errorf("failed to decrement variation stock: %w", err)
				}
			} else {
				if err := tx.Model(&models.Product{}).Where("id = ?", item.ProductID).
					UpdateColumn("stock", gorm.Expr("stock - ?", item.Quantity)).Error; err != nil {
					return fmt.Errorf("failed to decrement stock: %w", err)
				}
			}
			if err := tx.Model(&models.Product{}).Where("id = ?", item.ProductID).
				UpdateColumn("orders_count", gorm.Expr("orders_count + ?", item.Quantity)).Error; err != nil {
				return fmt.Errorf("failed to bump orders counter: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	checkoutLog.Infof("order %s placed (cod, due %.2f)", order.ID, order.AmountDue)
	return order, nil
}
