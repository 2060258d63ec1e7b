package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/intellij1704/mobile-display-sub002/config"
	"github.com/intellij1704/mobile-display-sub002/middleware"
	"github.com/intellij1704/mobile-display-sub002/models"
)

// ReviewRequest represents the request body for submitting a review
type ReviewRequest struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Rating    int    `json:"rating" binding:"required,gte=1,lte=5"`
	Comment   string `json:"comment"`
}

// ListProductReviews handles GET /api/v1/products/:id/reviews - only
// approved reviews are served on the storefront.
func ListProductReviews(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var reviews []models.Review
	if err := config.GetDB().Where("product_id = ? AND approved = ?", id, true).
		Order("created_at DESC").Find(&reviews).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load reviews")
		return
	}
	respondData(c, http.StatusOK, reviews)
}

// CreateReview handles POST /api/v1/reviews - reviews land unapproved and
// wait for moderation.
func CreateReview(c *gin.Context) {
	uid, err := middleware.GetUserID(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Could not extract user information")
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Product, rating 1-5 required")
		return
	}

	db := config.GetDB()
	if err := db.First(&models.Product{}, req.ProductID).Error; err != nil {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Product not found")
		return
	}

	review := models.Review{
		ProductID: req.ProductID,
		UID:       uid,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}
	if err := db.Create(&review).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create review")
		return
	}
	respondData(c, http.StatusCreated, review)
}

// ListAllReviews handles GET /api/v1/admin/reviews - moderation queue
func ListAllReviews(c *gin.Context) {
	var reviews []models.Review
	if err := config.GetDB().Order("created_at DESC").Find(&reviews).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load reviews")
		return
	}
	respondData(c, http.StatusOK, reviews)
}

// ApproveReview handles PUT /api/v1/admin/reviews/:id/approve
func ApproveReview(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	db := config.GetDB()
	var review models.Review
	if err := db.First(&review, id).Error; err != nil {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Review not found")
		return
	}

	if err := db.Model(&review).Update("approved", true).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to approve review")
		return
	}
	review.Approved = true
	respondData(c, http.StatusOK, review)
}

// DeleteReview handles DELETE /api/v1/admin/reviews/:id
func DeleteReview(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := config.GetDB().Delete(&models.Review{}, id).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete review")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
