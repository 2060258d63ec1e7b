package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/intellij1704/mobile-display-sub002/config"
	"github.com/intellij1704/mobile-display-sub002/models"
	"github.com/intellij1704/mobile-display-sub002/services"
)

// ContactRequest represents the request body for the contact form
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message" binding:"required"`
}

// SubmitContact handles POST /api/contact - persists the submission and
// relays it to the shop inbox. The message is stored before the relay, so a
// mail outage never loses the enquiry.
func SubmitContact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}

	message := models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	}

	db := config.GetDB()
	if err := db.Create(&message).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to save message")
		return
	}

	mailer := services.GetMailService()
	if mailer == nil {
		respondError(c, http.StatusInternalServerError, "MAIL_NOT_CONFIGURED", "Mail service is not configured")
		return
	}
	if err := mailer.SendContact(&message); err != nil {
		respondError(c, http.StatusBadGateway, "MAIL_ERROR", "Failed to relay message: "+err.Error())
		return
	}

	respondData(c, http.StatusCreated, message)
}
