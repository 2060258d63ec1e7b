package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/intellij1704/mobile-display-sub002/config"
	"github.com/intellij1704/mobile-display-sub002/models"
	"github.com/intellij1704/mobile-display-sub002/services"
)

// AdminRequest represents the request body for creating/updating an admin
type AdminRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name" binding:"required"`
}

// ListAdmins handles GET /api/v1/admin/admins
func ListAdmins(c *gin.Context) {
	var admins []models.Admin
	if err := config.GetDB().Order("id").Find(&admins).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load admins")
		return
	}
	respondData(c, http.StatusOK, admins)
}

// CreateAdmin handles POST /api/v1/admin/admins
func CreateAdmin(c *gin.Context) {
	var req AdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Email and name are required")
		return
	}

	db := config.GetDB()
	emailLower := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	if err := db.Model(&models.Admin{}).Where("email_lower = ?", emailLower).Count(&count).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to check email")
		return
	}
	if count > 0 {
		respondError(c, http.StatusConflict, "DUPLICATE_EMAIL", "An admin with this email already exists")
		return
	}

	admin := models.Admin{
		Email:      req.Email,
		EmailLower: emailLower,
		Name:       req.Name,
	}
	if err := db.Create(&admin).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create admin")
		return
	}
	respondData(c, http.StatusCreated, admin)
}

// DeleteAdmin handles DELETE /api/v1/admin/admins/:id. The first-created
// admin and the last remaining admin cannot be deleted, or the back office
// could lock itself out.
func DeleteAdmin(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	db := config.GetDB()
	var admin models.Admin
	if err := db.First(&admin, id).Error; err != nil {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Admin not found")
		return
	}

	var count int64
	if err := db.Model(&models.Admin{}).Count(&count).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to count admins")
		return
	}
	if count <= 1 {
		respondError(c, http.StatusForbidden, "FORBIDDEN", "The last remaining admin cannot be deleted")
		return
	}

	var first models.Admin
	if err := db.Order("id").First(&first).Error; err == nil && first.ID == admin.ID {
		respondError(c, http.StatusForbidden, "FORBIDDEN", "The first-created admin cannot be deleted")
		return
	}

	if err := db.Delete(&admin).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete admin")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ShippingSettingRequest represents the request body for the fee settings
type ShippingSettingRequest struct {
	DeliveryFee       float64 `json:"delivery_fee" binding:"gte=0"`
	CODFee            float64 `json:"cod_fee" binding:"gte=0"`
	AdvancePercent    float64 `json:"advance_percent" binding:"gte=0,lte=100"`
	FreeDeliveryAbove float64 `json:"free_delivery_above" binding:"gte=0"`
}

// GetShippingSettings handles GET /api/v1/admin/shipping-settings
func GetShippingSettings(c *gin.Context) {
	respondData(c, http.StatusOK, services.GetShippingSettings(config.GetDB()))
}

// UpdateShippingSettings handles PUT /api/v1/admin/shipping-settings -
// upserts the single settings row.
func UpdateShippingSettings(c *gin.Context) {
	var req ShippingSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid settings")
		return
	}

	db := config.GetDB()
	var settings models.ShippingSetting
	if err := db.First(&settings).Error; err != nil {
		settings = models.DefaultShippingSetting()
	}

	settings.DeliveryFee = req.DeliveryFee
	settings.CODFee = req.CODFee
	settings.AdvancePercent = req.AdvancePercent
	settings.FreeDeliveryAbove = req.FreeDeliveryAbove

	if err := db.Save(&settings).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to save settings")
		return
	}
	respondData(c, http.StatusOK, settings)
}
