package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/intellij1704/mobile-display-sub002/config"
	"github.com/intellij1704/mobile-display-sub002/models"
	"github.com/intellij1704/mobile-display-sub002/utils"
)

// nameTaken reports whether another row of the given model already uses the
// folded name. The excludeID escape hatch lets an update keep its own name;
// entities folded on a column other than name_lower pass it via extra.
func nameTaken(db *gorm.DB, model interface{}, nameLower string, excludeID uint, extra map[string]interface{}) (bool, error) {
	query := db.Model(model)
	if nameLower != "" {
		query = query.Where("name_lower = ?", nameLower)
	}
	for column, value := range extra {
		query = query.Where(column+" = ?", value)
	}
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid id")
		return 0, false
	}
	return uint(id), true
}

// CategoryRequest represents the request body for creating/updating a category
type CategoryRequest struct {
	Name     string `json:"name" binding:"required"`
	ImageURL string `json:"image_url"`
}

// ListCategories handles GET /api/v1/categories
func ListCategories(c *gin.Context) {
	var categories []models.Category
	if err := config.GetDB().Order("name_lower").Find(&categories).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load categories")
		return
	}
	respondData(c, http.StatusOK, categories)
}

// CreateCategory handles POST /api/v1/admin/categories
func CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Name is required")
		return
	}

	db := config.GetDB()
	nameLower := utils.NormalizeName(req.Name)
	if nameLower == "" {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Name is required")
		return
	}

	taken, err := nameTaken(db, &models.Category{}, nameLower, 0, nil)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to check name")
		return
	}
	if taken {
		respondError(c, http.StatusConflict, "DUPLICATE_NAME", "A category with this name already exists")
		return
	}

	category := models.Category{
		Name:      req.Name,
		NameLower: nameLower,
		Slug:      utils.Slugify(req.Name),
		ImageURL:  req.ImageURL,
	}
	if err := db.Create(&category).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create category")
		return
	}
	respondData(c, http.StatusCreated, category)
}

// UpdateCategory handles PUT /api/v1/admin/categories/:id
func UpdateCategory(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Name is required")
		return
	}

	db := config.GetDB()
	var category models.Category
	if err := db.First(&category, id).Error; err != nil {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Category not found")
		return
	}

	nameLower := utils.NormalizeName(req.Name)
	if nameLower == "" {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Name is required")
		return
	}

	taken, err := nameTaken(db, &models.Category{}, nameLower, category.ID, nil)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to check name")
		return
	}
	if taken {
		respondError(c, http.StatusConflict, "DUPLICATE_NAME", "A category with this name already exists")
		return
	}

	category.Name = req.Name
	category.NameLower = nameLower
	category.Slug = utils.Slugify(req.Name)
	if req.ImageURL != "" {
		category.ImageURL = req.ImageURL
	}
	if err := db.Save(&category).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update category")
		return
	}
	respondData(c, http.StatusOK, category)
}

// DeleteCategory handles DELETE /api/v1/admin/categories/:id.
// Deletion is unconditional: products referencing the category keep their
// rows and simply lose the association on read.
func DeleteCategory(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := config.GetDB().Delete(&models.Category{}, id).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete category")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// BrandRequest represents the request body for creating/updating a brand
type BrandRequest struct {
	Name     string `json:"name" binding:"required"`
	ImageURL string `json:"image_url"`
}

// ListBrands handles GET /api/v1/brands
func ListBrands(c *gin.Context) {
	var brands []models.Brand
	if err := config.GetDB().Order("name_lower").Find(&brands).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load brands")
		return
	}
	respondData(c, http.StatusOK, brands)
}

// CreateBrand handles POST /api/v1/admin/brands
func CreateBrand(c *gin.Context) {
	var req BrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Name is required")
		return
	}

	db := config.GetDB()
	nameLower := utils.NormalizeName(req.Name)
	if nameLower == "" {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Name is required")
		return
	}

	taken, err := nameTaken(db, &models.Brand{}, nameLower, 0, nil)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to check name")
		return
	}
	if taken {
		respondError(c, http.StatusConflict, "DUPLICATE_NAME", "A brand with this name already exists")
		return
	}

	brand := models.Brand{
		Name:      req.Name,
		NameLower: nameLower,
		Slug:      utils.Slugify(req.Name),
		ImageURL:  req.ImageURL,
	}
	if err := db.Create(&brand).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create brand")
		return
	}
	respondData(c, http.StatusCreated, brand)
}

// UpdateBrand handles PUT /api/v1/admin/brands/:id
func UpdateBrand(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req BrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Name is required")
		return
	}

	db := config.GetDB()
	var brand models.Brand
	if err := db.First(&brand, id).Error; err != nil {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Brand not found")
		return
	}

	nameLower := utils.NormalizeName(req.Name)
	if nameLower == "" {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Name is required")
		return
	}

	taken, err := nameTaken(db, &models.Brand{}, nameLower, brand.ID, nil)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to check name")
		return
	}
	if taken {
		respondError(c, http.StatusConflict, "DUPLICATE_NAME", "A brand with this name already exists")
		return
	}

	brand.Name = req.Name
	brand.NameLower = nameLower
	brand.Slug = utils.Slugify(req.Name)
	if req.ImageURL != "" {
		brand.ImageURL = req.ImageURL
	}
	if err := db.Save(&brand).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update brand")
		return
	}
	respondData(c, http.StatusOK, brand)
}

// DeleteBrand handles DELETE /api/v1/admin/brands/:id
func DeleteBrand(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := config.GetDB().Delete(&models.Brand{}, id).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete brand")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// SeriesRequest represents the request body for creating/updating a series
type SeriesRequest struct {
	BrandID  uint   `json:"brand_id" binding:"required"`
	Name     string `json:"name" binding:"required"`
	ImageURL string `json:"image_url"`
}

// ListSeries handles GET /api/v1/series?brandId=
func ListSeries(c *gin.Context) {
	query := config.GetDB().Order("name_lower")
	if brandID := c.Query("brandId"); brandID != "" {
		query = query.Where("brand_id = ?", brandID)
	}

	var series []models.Series
	if err := query.Find(&series).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load series")
		return
	}
	respondData(c, http.StatusOK, series)
}

// CreateSeries handles POST /api/v1/admin/series. Series names are unique
// within their brand, not globally.
func CreateSeries(c *gin.Context) {
	var req SeriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Brand and name are required")
		return
	}

	db := config.GetDB()
	if err := db.First(&models.Brand{}, req.BrandID).Error; err != nil {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Brand not found")
		return
	}

	nameLower := utils.NormalizeName(req.Name)
	taken, err := nameTaken(db, &models.Series{}, nameLower, 0, map[string]interface{}{"brand_id": req.BrandID})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to check name")
		return
	}
	if taken {
		respondError(c, http.StatusConflict, "DUPLICATE_NAME", "A series with this name already exists for this brand")
		return
	}

	series := models.Series{
		BrandID:   req.BrandID,
		Name:      req.Name,
		NameLower: nameLower,
		Slug:      utils.Slugify(req.Name),
		ImageURL:  req.ImageURL,
	}
	if err := db.Create(&series).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create series")
		return
	}
	respondData(c, http.StatusCreated, series)
}

// UpdateSeries handles PUT /api/v1/admin/series/:id
func UpdateSeries(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req SeriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Brand and name are required")
		return
	}

	db := config.GetDB()
	var series models.Series
	if err := db.First(&series, id).Error; err != nil {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Series not found")
		return
	}

	nameLower := utils.NormalizeName(req.Name)
	if nameLower == "" {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Name is required")
		return
	}

	taken, err := nameTaken(db, &models.Series{}, nameLower, series.ID, map[string]interface{}{"brand_id": req.BrandID})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to check name")
		return
	}
	if taken {
		respondError(c, http.StatusConflict, "DUPLICATE_NAME", "A series with this name already exists for this brand")
		return
	}

	series.BrandID = req.BrandID
	series.Name = req.Name
	series.NameLower = nameLower
	series.Slug = utils.Slugify(req.Name)
	if req.ImageURL != "" {
		series.ImageURL = req.ImageURL
	}
	if err := db.Save(&series).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update series")
		return
	}
	respondData(c, http.StatusOK, series)
}

// DeleteSeries handles DELETE /api/v1/admin/series/:id
func DeleteSeries(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := config.GetDB().Delete(&models.Series{}, id).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete series")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeviceModelRequest represents the request body for creating/updating a device model
type DeviceModelRequest struct {
	BrandID  uint   `json:"brand_id" binding:"required"`
	SeriesID *uint  `json:"series_id"`
	Name     string `json:"name" binding:"required"`
	ImageURL string `json:"image_url"`
}

// ListDeviceModels handles GET /api/v1/models?brandId=&seriesId=
func ListDeviceModels(c *gin.Context) {
	query := config.GetDB().Order("name_lower")
	if brandID := c.Query("brandId"); brandID != "" {
		query = query.Where("brand_id = ?", brandID)
	}
	if seriesID := c.Query("seriesId"); seriesID != "" {
		query = query.Where("series_id = ?", seriesID)
	}

	var deviceModels []models.DeviceModel
	if err := query.Find(&deviceModels).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load models")
		return
	}
	respondData(c, http.StatusOK, deviceModels)
}

// CreateDeviceModel handles POST /api/v1/admin/models. Model names are
// unique within their brand.
func CreateDeviceModel(c *gin.Context) {
	var req DeviceModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Brand and name are required")
		return
	}

	db := config.GetDB()
	if err := db.First(&models.Brand{}, req.BrandID).Error; err != nil {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Brand not found")
		return
	}

	nameLower := utils.NormalizeName(req.Name)
	taken, err := nameTaken(db, &models.DeviceModel{}, nameLower, 0, map[string]interface{}{"brand_id": req.BrandID})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to check name")
		return
	}
	if taken {
		respondError(c, http.StatusConflict, "DUPLICATE_NAME", "A model with this name already exists for this brand")
		return
	}

	deviceModel := models.DeviceModel{
		BrandID:   req.BrandID,
		SeriesID:  req.SeriesID,
		Name:      req.Name,
		NameLower: nameLower,
		Slug:      utils.Slugify(req.Name),
		ImageURL:  req.ImageURL,
	}
	if err := db.Create(&deviceModel).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create model")
		return
	}
	respondData(c, http.StatusCreated, deviceModel)
}

// UpdateDeviceModel handles PUT /api/v1/admin/models/:id
func UpdateDeviceModel(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req DeviceModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Brand and name are required")
		return
	}

	db := config.GetDB()
	var deviceModel models.DeviceModel
	if err := db.First(&deviceModel, id).Error; err != nil {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Model not found")
		return
	}

	nameLower := utils.NormalizeName(req.Name)
	if nameLower == "" {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Name is required")
		return
	}

	taken, err := nameTaken(db, &models.DeviceModel{}, nameLower, deviceModel.ID, map[string]interface{}{"brand_id": req.BrandID})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to check name")
		return
	}
	if taken {
		respondError(c, http.StatusConflict, "DUPLICATE_NAME", "A model with this name already exists for this brand")
		return
	}

	deviceModel.BrandID = req.BrandID
	deviceModel.SeriesID = req.SeriesID
	deviceModel.Name = req.Name
	deviceModel.NameLower = nameLower
	deviceModel.Slug = utils.Slugify(req.Name)
	if req.ImageURL != "" {
		deviceModel.ImageURL = req.ImageURL
	}
	if err := db.Save(&deviceModel).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update model")
		return
	}
	respondData(c, http.StatusOK, deviceModel)
}

// DeleteDeviceModel handles DELETE /api/v1/admin/models/:id
func DeleteDeviceModel(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := config.GetDB().Delete(&models.DeviceModel{}, id).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete model")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
