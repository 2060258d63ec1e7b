package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/intellij1704/mobile-display-sub002/services"
	"github.com/intellij1704/mobile-display-sub002/utils"
)

// allowedUploadPrefixes keeps admin uploads inside the catalog key space
var allowedUploadPrefixes = map[string]bool{
	"categories": true,
	"brands":     true,
	"series":     true,
	"models":     true,
	"products":   true,
}

// UploadImage handles POST /api/v1/admin/uploads - multipart image upload
// returning the public URL to embed in a later create/update call.
func UploadImage(c *gin.Context) {
	imageService := services.GetImageService()
	if imageService == nil {
		respondError(c, http.StatusInternalServerError, "STORAGE_NOT_CONFIGURED", "Image storage is not configured")
		return
	}

	prefix := c.DefaultPostForm("prefix", "products")
	if !allowedUploadPrefixes[prefix] {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", "Unknown upload prefix")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "An image file is required")
		return
	}

	url, err := imageService.UploadImage(prefix, fileHeader)
	if err != nil {
		var uploadErr *utils.FileUploadError
		if errors.As(err, &uploadErr) {
			respondError(c, http.StatusBadRequest, uploadErr.Code, uploadErr.Message)
			return
		}
		respondError(c, http.StatusInternalServerError, "UPLOAD_ERROR", "Failed to upload image")
		return
	}

	respondData(c, http.StatusCreated, gin.H{"url": url})
}
