package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/intellij1704/mobile-display-sub002/config"
	"github.com/intellij1704/mobile-display-sub002/models"
	"github.com/intellij1704/mobile-display-sub002/services"
)

// PriceRevisionRequest represents the request body for a bulk price revision
type PriceRevisionRequest struct {
	CategoryID uint    `json:"category_id"`
	Percent    float64 `json:"percent"`
}

// ListPriceRevisions handles GET /api/v1/admin/price-revisions
func ListPriceRevisions(c *gin.Context) {
	var revisions []models.PriceRevision
	if err := config.GetDB().Order("created_at DESC").Find(&revisions).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load revisions")
		return
	}
	respondData(c, http.StatusOK, revisions)
}

// ApplyPriceRevision handles POST /api/v1/admin/price-revisions - applies a
// percentage adjustment to every price in a category.
func ApplyPriceRevision(c *gin.Context) {
	var req PriceRevisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data")
		return
	}

	revision, err := services.ApplyPriceRevision(req.CategoryID, req.Percent)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidPercent), errors.Is(err, services.ErrCategoryRequired):
			respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to apply revision")
		}
		return
	}
	respondData(c, http.StatusCreated, revision)
}

// RevertPriceRevision handles POST /api/v1/admin/price-revisions/:id/revert -
// reverses (or re-applies) a recorded revision.
func RevertPriceRevision(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	revision, err := services.RevertPriceRevision(id)
	if err != nil {
		if errors.Is(err, services.ErrRevisionNotFound) {
			respondError(c, http.StatusNotFound, "NOT_FOUND", err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to revert revision")
		return
	}
	respondData(c, http.StatusOK, revision)
}
