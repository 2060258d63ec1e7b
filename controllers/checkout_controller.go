package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/intellij1704/mobile-display-sub002/middleware"
	"github.com/intellij1704/mobile-display-sub002/services"
)

// PrepaidCheckoutRequest represents the request body for a prepaid checkout
type PrepaidCheckoutRequest struct {
	AddressID  uint   `json:"address_id" binding:"required"`
	SuccessURL string `json:"success_url" binding:"required,url"`
	CancelURL  string `json:"cancel_url" binding:"required,url"`
}

// CODCheckoutRequest represents the request body for a cash-on-delivery checkout
type CODCheckoutRequest struct {
	AddressID uint `json:"address_id" binding:"required"`
}

func respondCheckoutError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrCartEmpty):
		respondError(c, http.StatusBadRequest, "CART_EMPTY", "Your cart is empty")
	case errors.Is(err, services.ErrAddressNotFound):
		respondError(c, http.StatusBadRequest, "ADDRESS_NOT_FOUND", "Shipping address not found")
	case errors.Is(err, services.ErrGatewayTimeout):
		respondError(c, http.StatusGatewayTimeout, "GATEWAY_TIMEOUT", "Payment gateway did not respond, try again")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		// client went away, nothing useful to write
		c.Abort()
	default:
		respondError(c, http.StatusBadGateway, "CHECKOUT_ERROR", err.Error())
	}
}

// CreatePrepaidCheckout handles POST /api/v1/checkout/prepaid. The response
// carries the gateway redirect URL once the payment webhook has filled it in.
func CreatePrepaidCheckout(c *gin.Context) {
	uid, err := middleware.GetUserID(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Could not extract user information")
		return
	}

	var req PrepaidCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Address and redirect URLs are required")
		return
	}

	session, err := services.CreatePrepaidCheckout(c.Request.Context(), uid, req.AddressID, req.SuccessURL, req.CancelURL)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	respondData(c, http.StatusCreated, session)
}

// CreateCODCheckout handles POST /api/v1/checkout/cod
func CreateCODCheckout(c *gin.Context) {
	uid, err := middleware.GetUserID(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Could not extract user information")
		return
	}

	var req CODCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "A shipping address is required")
		return
	}

	session, err := services.CreateCODCheckout(uid, req.AddressID)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	respondData(c, http.StatusCreated, session)
}

// FinalizeCODCheckout handles POST /api/v1/checkout/:id/finalize - places
// the order for a cash-on-delivery session. Safe to retry: a repeat call for
// the same checkout id conflicts instead of double-placing.
func FinalizeCODCheckout(c *gin.Context) {
	uid, err := middleware.GetUserID(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Could not extract user information")
		return
	}

	checkoutID := c.Param("id")
	if checkoutID == "" {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", "Checkout id is required")
		return
	}

	order, err := services.FinalizeCOD(c.Request.Context(), uid, checkoutID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAlreadyProcessed):
			respondError(c, http.StatusConflict, "ALREADY_PROCESSED", "This checkout has already been placed")
		case errors.Is(err, services.ErrCheckoutNotFound):
			respondError(c, http.StatusNotFound, "NOT_FOUND", "Checkout session not found")
		case errors.Is(err, services.ErrNotCODCheckout):
			respondError(c, http.StatusBadRequest, "NOT_COD_CHECKOUT", "Only cash-on-delivery checkouts can be placed this way")
		default:
			respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to place order")
		}
		return
	}
	respondData(c, http.StatusCreated, order)
}
