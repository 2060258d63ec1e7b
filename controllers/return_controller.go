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

// ReturnRequestBody represents the request body for opening a return or
// replacement claim against an order line.
type ReturnRequestBody struct {
	OrderID   string            `json:"order_id" binding:"required"`
	ProductID uint              `json:"product_id" binding:"required"`
	Type      models.ReturnType `json:"type" binding:"required"`
	Reason    string            `json:"reason"`
	Quantity  int               `json:"quantity"`
}

// ReturnStatusRequest represents the request body for a status change
type ReturnStatusRequest struct {
	Status models.ReturnStatus `json:"status" binding:"required"`
}

func validReturnType(t models.ReturnType) bool {
	switch t {
	case models.ReturnTypeReturn, models.ReturnTypeReplacement, models.ReturnTypeSelfShip:
		return true
	}
	return false
}

// CreateReturnRequest handles POST /api/v1/returns. The claim must target an
// order the caller owns and a product that order actually contains; the line
// item fields are snapshotted onto the request.
func CreateReturnRequest(c *gin.Context) {
	uid, err := middleware.GetUserID(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Could not extract user information")
		return
	}

	var req ReturnRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Order, product and type are required")
		return
	}
	if !validReturnType(req.Type) {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Type must be return, replacement or self_ship")
		return
	}

	db := config.GetDB()
	var order models.Order
	if err := db.Preload("CheckoutSession").Preload("CheckoutSession.Items").
		Where("id = ? AND uid = ?", req.OrderID, uid).First(&order).Error; err != nil {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Order not found")
		return
	}
	if order.Status != models.OrderStatusDelivered {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Returns can only be opened for delivered orders")
		return
	}

	var line *models.CheckoutItem
	for i := range order.CheckoutSession.Items {
		if order.CheckoutSession.Items[i].ProductID == req.ProductID {
			line = &order.CheckoutSession.Items[i]
			break
		}
	}
	if line == nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "This order does not contain that product")
		return
	}

	quantity := req.Quantity
	if quantity <= 0 || quantity > line.Quantity {
		quantity = line.Quantity
	}

	request := models.ReturnRequest{
		OrderID:      order.ID,
		UID:          uid,
		Type:         req.Type,
		Status:       models.ReturnStatusRequested,
		Reason:       req.Reason,
		ProductID:    line.ProductID,
		ProductTitle: line.Title,
		Color:        line.Color,
		Quality:      line.Quality,
		UnitPrice:    line.UnitPrice,
		Quantity:     quantity,
	}
	if err := db.Create(&request).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create return request")
		return
	}
	respondData(c, http.StatusCreated, request)
}

// ListMyReturnRequests handles GET /api/v1/returns
func ListMyReturnRequests(c *gin.Context) {
	uid, err := middleware.GetUserID(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Could not extract user information")
		return
	}

	var requests []models.ReturnRequest
	if err := config.GetDB().Where("uid = ?", uid).
		Order("created_at DESC").Find(&requests).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load return requests")
		return
	}
	respondData(c, http.StatusOK, requests)
}

// ListReturnRequests handles GET /api/v1/admin/returns?status=
func ListReturnRequests(c *gin.Context) {
	query := config.GetDB()
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var requests []models.ReturnRequest
	if err := query.Order("created_at DESC").Find(&requests).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load return requests")
		return
	}
	respondData(c, http.StatusOK, requests)
}

// UpdateReturnStatus handles PUT /api/v1/admin/returns/:id/status
func UpdateReturnStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req ReturnStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "A status is required")
		return
	}

	request, err := services.UpdateReturnStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			respondError(c, http.StatusNotFound, "NOT_FOUND", "Return request not found")
		case errors.Is(err, services.ErrInvalidTransition):
			respondError(c, http.StatusConflict, "INVALID_TRANSITION", err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update return request")
		}
		return
	}
	respondData(c, http.StatusOK, request)
}
