package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/intellij1704/mobile-display-sub002/models"
)

func TestSubmitLead(t *testing.T) {
	db := setupControllerTestDB(t)

	router := setupTestRouter()
	router.POST("/leads", SubmitLead)

	w := performJSON(router, http.MethodPost, "/leads", map[string]interface{}{
		"name": "Suresh", "phone": "9876543210",
		"shop_name": "Suresh Mobiles", "city": "Chennai",
		"message": "Need wholesale rates for Samsung displays",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var lead models.ShopOwnerLead
	assert.NoError(t, db.First(&lead).Error)
	assert.Equal(t, "Suresh Mobiles", lead.ShopName)
}

func TestSubmitLead_Validation(t *testing.T) {
	setupControllerTestDB(t)

	router := setupTestRouter()
	router.POST("/leads", SubmitLead)

	w := performJSON(router, http.MethodPost, "/leads", map[string]interface{}{
		"name": "Suresh",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assertErrorCode(t, w, "VALIDATION_ERROR")
}

func TestExportLeads(t *testing.T) {
	db := setupControllerTestDB(t)
	db.Create(&models.ShopOwnerLead{Name: "Suresh", Phone: "9876543210", ShopName: "Suresh Mobiles", City: "Chennai"})

	router := setupTestRouter()
	router.GET("/leads/export", ExportLeads)

	// Default format is XLSX
	w := performJSON(router, http.MethodGet, "/leads/export", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "leads-")
	assert.True(t, w.Body.Len() > 0)

	w = performJSON(router, http.MethodGet, "/leads/export?format=pdf", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, "%PDF", w.Body.String()[:4])

	w = performJSON(router, http.MethodGet, "/leads/export?format=csv", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assertErrorCode(t, w, "INVALID_REQUEST")
}
