package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/intellij1704/mobile-display-sub002/models"
)

func seedOrder(t *testing.T, db *gorm.DB, uid string, status models.OrderStatus) models.Order {
	session := models.CheckoutSession{
		ID: "chk-" + string(status), UID: uid, Mode: models.CheckoutModeCOD,
		Subtotal: 1200, DeliveryFee: 99, CODFee: 20, Total: 1319,
		Advance: 131.9, Remaining: 1187.1,
		Items: []models.CheckoutItem{
			{ProductID: 1, Title: "Galaxy A52 Display", UnitPrice: 1200, UnitPriceMinor: 120000, Quantity: 1},
		},
	}
	if err := db.Create(&session).Error; err != nil {
		t.Fatalf("Failed to seed checkout session: %v", err)
	}

	order := models.Order{
		ID: session.ID, UID: uid, CheckoutSessionID: session.ID,
		Status: status, PaymentMode: models.CheckoutModeCOD,
		AmountPaid: 131.9, AmountDue: 1187.1,
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("Failed to seed order: %v", err)
	}
	return order
}

func TestListMyOrders_OwnershipScoped(t *testing.T) {
	db := setupControllerTestDB(t)
	uid := "auth0|customer123"
	seedOrder(t, db, uid, models.OrderStatusPlaced)
	seedOrder(t, db, "auth0|someone-else", models.OrderStatusConfirmed)

	router := setupTestRouter()
	router.GET("/orders", mockAuthMiddleware(uid, ""), ListMyOrders)

	w := performJSON(router, http.MethodGet, "/orders", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	response := parseResponse(t, w)
	data := response["data"].([]interface{})
	assert.Len(t, data, 1)
}

func TestGetMyOrder_OtherUsersOrder(t *testing.T) {
	db := setupControllerTestDB(t)
	order := seedOrder(t, db, "auth0|someone-else", models.OrderStatusPlaced)

	router := setupTestRouter()
	router.GET("/orders/:id", mockAuthMiddleware("auth0|customer123", ""), GetMyOrder)

	w := performJSON(router, http.MethodGet, "/orders/"+order.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateOrderStatusEndpoint(t *testing.T) {
	db := setupControllerTestDB(t)
	order := seedOrder(t, db, "auth0|customer123", models.OrderStatusPlaced)

	router := setupTestRouter()
	router.PUT("/orders/:id/status", UpdateOrderStatus)

	w := performJSON(router, http.MethodPut, "/orders/"+order.ID+"/status", map[string]interface{}{
		"status": "confirmed",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	// placed again is a backwards move
	w = performJSON(router, http.MethodPut, "/orders/"+order.ID+"/status", map[string]interface{}{
		"status": "placed",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assertErrorCode(t, w, "INVALID_TRANSITION")

	// skipping shipped is rejected too
	w = performJSON(router, http.MethodPut, "/orders/"+order.ID+"/status", map[string]interface{}{
		"status": "delivered",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestUpdateOrderStatusEndpoint_NotFound(t *testing.T) {
	setupControllerTestDB(t)

	router := setupTestRouter()
	router.PUT("/orders/:id/status", UpdateOrderStatus)

	w := performJSON(router, http.MethodPut, "/orders/nope/status", map[string]interface{}{
		"status": "confirmed",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAssignOrderAWB(t *testing.T) {
	db := setupControllerTestDB(t)
	order := seedOrder(t, db, "auth0|customer123", models.OrderStatusConfirmed)

	router := setupTestRouter()
	router.PUT("/orders/:id/awb", AssignOrderAWB)

	w := performJSON(router, http.MethodPut, "/orders/"+order.ID+"/awb", map[string]interface{}{
		"awb": "AWB12345",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var stored models.Order
	db.First(&stored, "id = ?", order.ID)
	assert.Equal(t, "AWB12345", stored.AWB)
}
