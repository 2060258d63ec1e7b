package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/intellij1704/mobile-display-sub002/config"
	"github.com/intellij1704/mobile-display-sub002/middleware"
	"github.com/intellij1704/mobile-display-sub002/models"
	"github.com/intellij1704/mobile-display-sub002/services"
)

// OrderStatusRequest represents the request body for a status change
type OrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// AWBRequest represents the request body for attaching a shipping AWB
type AWBRequest struct {
	AWB string `json:"awb" binding:"required"`
}

// ListMyOrders handles GET /api/v1/orders - the caller's own orders
func ListMyOrders(c *gin.Context) {
	uid, err := middleware.GetUserID(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Could not extract user information")
		return
	}

	var orders []models.Order
	if err := config.GetDB().Preload("CheckoutSession").Preload("CheckoutSession.Items").
		Where("uid = ?", uid).Order("created_at DESC").Find(&orders).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load orders")
		return
	}
	respondData(c, http.StatusOK, orders)
}

// GetMyOrder handles GET /api/v1/orders/:id - ownership enforced in the query
func GetMyOrder(c *gin.Context) {
	uid, err := middleware.GetUserID(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Could not extract user information")
		return
	}

	var order models.Order
	if err := config.GetDB().Preload("CheckoutSession").Preload("CheckoutSession.Items").
		Where("id = ? AND uid = ?", c.Param("id"), uid).First(&order).Error; err != nil {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Order not found")
		return
	}
	respondData(c, http.StatusOK, order)
}

// ListOrders handles GET /api/v1/admin/orders?status=
func ListOrders(c *gin.Context) {
	query := config.GetDB().Preload("CheckoutSession").Preload("CheckoutSession.Items")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var orders []models.Order
	if err := query.Order("created_at DESC").Find(&orders).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load orders")
		return
	}
	respondData(c, http.StatusOK, orders)
}

// UpdateOrderStatus handles PUT /api/v1/admin/orders/:id/status. Illegal
// lifecycle moves are rejected, a delivered order gets its invoice generated
// as a side effect.
func UpdateOrderStatus(c *gin.Context) {
	var req OrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "A status is required")
		return
	}

	order, err := services.UpdateOrderStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			respondError(c, http.StatusNotFound, "NOT_FOUND", "Order not found")
		case errors.Is(err, services.ErrInvalidTransition):
			respondError(c, http.StatusConflict, "INVALID_TRANSITION", err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update order")
		}
		return
	}
	respondData(c, http.StatusOK, order)
}

// AssignOrderAWB handles PUT /api/v1/admin/orders/:id/awb - links the order
// to its courier shipment for tracking.
func AssignOrderAWB(c *gin.Context) {
	var req AWBRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "An AWB number is required")
		return
	}

	db := config.GetDB()
	var order models.Order
	if err := db.First(&order, "id = ?", c.Param("id")).Error; err != nil {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Order not found")
		return
	}

	if err := db.Model(&order).Update("awb", req.AWB).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to save AWB")
		return
	}
	order.AWB = req.AWB
	respondData(c, http.StatusOK, order)
}
