package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/intellij1704/mobile-display-sub002/config"
	"github.com/intellij1704/mobile-display-sub002/models"
	"github.com/intellij1704/mobile-display-sub002/services"
)

// LeadRequest represents the request body for a shop-owner wholesale enquiry
type LeadRequest struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	ShopName string `json:"shop_name"`
	City     string `json:"city"`
	Message  string `json:"message"`
}

// SubmitLead handles POST /api/leads - public, no auth
func SubmitLead(c *gin.Context) {
	var req LeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Name and phone are required")
		return
	}

	lead := models.ShopOwnerLead{
		Name:     req.Name,
		Phone:    req.Phone,
		ShopName: req.ShopName,
		City:     req.City,
		Message:  req.Message,
	}
	if err := config.GetDB().Create(&lead).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to save enquiry")
		return
	}
	respondData(c, http.StatusCreated, lead)
}

// ListLeads handles GET /api/v1/admin/leads
func ListLeads(c *gin.Context) {
	var leads []models.ShopOwnerLead
	if err := config.GetDB().Order("created_at DESC").Find(&leads).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load leads")
		return
	}
	respondData(c, http.StatusOK, leads)
}

// ExportLeads handles GET /api/v1/admin/leads/export?format=xlsx|pdf and
// streams the rendered file back as a download.
func ExportLeads(c *gin.Context) {
	var leads []models.ShopOwnerLead
	if err := config.GetDB().Order("created_at DESC").Find(&leads).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load leads")
		return
	}

	stamp := time.Now().Format("2006-01-02")
	switch c.DefaultQuery("format", "xlsx") {
	case "xlsx":
		data, err := services.ExportLeadsXLSX(leads)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "EXPORT_ERROR", "Failed to build export")
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="leads-%s.xlsx"`, stamp))
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
	case "pdf":
		data, err := services.ExportLeadsPDF(leads)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "EXPORT_ERROR", "Failed to build export")
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="leads-%s.pdf"`, stamp))
		c.Data(http.StatusOK, "application/pdf", data)
	default:
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", "format must be xlsx or pdf")
	}
}

// ListContactMessages handles GET /api/v1/admin/contact-messages
func ListContactMessages(c *gin.Context) {
	var messages []models.ContactMessage
	if err := config.GetDB().Order("created_at DESC").Find(&messages).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load messages")
		return
	}
	respondData(c, http.StatusOK, messages)
}
