package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/intellij1704/mobile-display-sub002/config"
	"github.com/intellij1704/mobile-display-sub002/services"
)

// newShipmozoService is swapped in tests to point at a stub partner API
var newShipmozoService = func() *services.ShipmozoService {
	return services.NewShipmozoService(config.GetConfig())
}

// GetShipmozoTracking handles GET /api/shipmozo/tracking?orderId= - resolves
// the live tracking state for an order. The partner credentials stay
// server-side; the browser only ever sees this proxy. An order without an
// assigned waybill returns a null tracking field, which is a valid
// "not yet shipped" state rather than an error.
func GetShipmozoTracking(c *gin.Context) {
	orderID := c.Query("orderId")
	if orderID == "" {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", "orderId is required")
		return
	}

	result, err := newShipmozoService().Tracking(orderID)
	if err != nil {
		respondError(c, http.StatusBadGateway, "SHIPMOZO_ERROR", err.Error())
		return
	}

	c.JSON(http.StatusOK, result)
}

// ShipmozoCancelRequest represents the request body for a shipment cancellation
type ShipmozoCancelRequest struct {
	OrderID string `json:"orderId"`
	AWB     string `json:"awb"`
}

// CancelShipmozoOrder handles POST /api/shipmozo/cancel - cancels a shipment
// with the partner. Both the order id and the waybill are required; missing
// either is the caller's mistake, not a partner fault.
func CancelShipmozoOrder(c *gin.Context) {
	var req ShipmozoCancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data")
		return
	}
	if req.OrderID == "" || req.AWB == "" {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", "orderId and awb are required")
		return
	}

	if err := newShipmozoService().CancelOrder(req.OrderID, req.AWB); err != nil {
		respondError(c, http.StatusBadGateway, "SHIPMOZO_ERROR", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Shipment cancelled",
	})
}
