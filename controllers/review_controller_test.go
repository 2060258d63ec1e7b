package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/intellij1704/mobile-display-sub002/models"
)

func TestReviewModeration(t *testing.T) {
	db := setupControllerTestDB(t)
	uid := "auth0|customer123"
	product := seedProduct(t, db)

	router := setupTestRouter()
	router.POST("/reviews", mockAuthMiddleware(uid, ""), CreateReview)
	router.GET("/products/:id/reviews", ListProductReviews)
	router.PUT("/admin/reviews/:id/approve", ApproveReview)

	w := performJSON(router, http.MethodPost, "/reviews", map[string]interface{}{
		"product_id": product.ID, "rating": 5, "comment": "Perfect fit",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	// Unmoderated reviews are invisible on the storefront
	w = performJSON(router, http.MethodGet, fmt.Sprintf("/products/%d/reviews", product.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, parseResponse(t, w)["data"].([]interface{}), 0)

	var review models.Review
	db.First(&review)
	w = performJSON(router, http.MethodPut, fmt.Sprintf("/admin/reviews/%d/approve", review.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = performJSON(router, http.MethodGet, fmt.Sprintf("/products/%d/reviews", product.ID), nil)
	assert.Len(t, parseResponse(t, w)["data"].([]interface{}), 1)
}

func TestCreateReview_Validation(t *testing.T) {
	db := setupControllerTestDB(t)
	product := seedProduct(t, db)

	router := setupTestRouter()
	router.POST("/reviews", mockAuthMiddleware("auth0|customer123", ""), CreateReview)

	// Rating outside 1-5
	w := performJSON(router, http.MethodPost, "/reviews", map[string]interface{}{
		"product_id": product.ID, "rating": 6,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown product
	w = performJSON(router, http.MethodPost, "/reviews", map[string]interface{}{
		"product_id": 9999, "rating": 4,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
