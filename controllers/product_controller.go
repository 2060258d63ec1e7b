package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/intellij1704/mobile-display-sub002/config"
	"github.com/intellij1704/mobile-display-sub002/models"
	"github.com/intellij1704/mobile-display-sub002/utils"
)

// VariationRequest is one color/quality combination in a product payload
type VariationRequest struct {
	Color     string   `json:"color"`
	Quality   string   `json:"quality"`
	ListPrice float64  `json:"list_price" binding:"required,gt=0"`
	SalePrice float64  `json:"sale_price"`
	Stock     int      `json:"stock"`
	ImageURLs []string `json:"image_urls"`
}

// ProductRequest represents the request body for creating/updating a product
type ProductRequest struct {
	Title       string             `json:"title" binding:"required"`
	SKU         string             `json:"sku"`
	Description string             `json:"description"`
	CategoryID  uint               `json:"category_id" binding:"required"`
	BrandID     uint               `json:"brand_id" binding:"required"`
	ModelID     *uint              `json:"model_id"`
	ListPrice   float64            `json:"list_price"`
	SalePrice   float64            `json:"sale_price"`
	Stock       int                `json:"stock"`
	IsVariable  bool               `json:"is_variable"`
	Variations  []VariationRequest `json:"variations"`
	ImageURLs   []string           `json:"image_urls"`
}

// ListProducts handles GET /api/v1/products?categoryId=&brandId=&modelId=
func ListProducts(c *gin.Context) {
	query := config.GetDB().Preload("Category").Preload("Brand").Preload("Model").
		Preload("Images", "variation_id IS NULL").Preload("Variations").Preload("Variations.Images")

	if categoryID := c.Query("categoryId"); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}
	if brandID := c.Query("brandId"); brandID != "" {
		query = query.Where("brand_id = ?", brandID)
	}
	if modelID := c.Query("modelId"); modelID != "" {
		query = query.Where("model_id = ?", modelID)
	}

	var products []models.Product
	if err := query.Order("orders_count DESC").Find(&products).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load products")
		return
	}
	respondData(c, http.StatusOK, products)
}

// GetProduct handles GET /api/v1/products/:id
func GetProduct(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var product models.Product
	err := config.GetDB().Preload("Category").Preload("Brand").Preload("Model").
		Preload("Images", "variation_id IS NULL").Preload("Variations").Preload("Variations.Images").
		First(&product, id).Error
	if err != nil {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Product not found")
		return
	}
	respondData(c, http.StatusOK, product)
}

func (req *ProductRequest) validatePricing(c *gin.Context) bool {
	if req.IsVariable {
		if len(req.Variations) == 0 {
			respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "A variable product needs at least one variation")
			return false
		}
		return true
	}
	if req.ListPrice <= 0 {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "List price must be greater than zero")
		return false
	}
	return true
}

func buildVariations(reqs []VariationRequest) []models.Variation {
	variations := make([]models.Variation, 0, len(reqs))
	for _, v := range reqs {
		variation := models.Variation{
			Color:     v.Color,
			Quality:   v.Quality,
			ListPrice: v.ListPrice,
			SalePrice: v.SalePrice,
			Stock:     v.Stock,
		}
		for i, url := range v.ImageURLs {
			variation.Images = append(variation.Images, models.ProductImage{URL: url, Position: i})
		}
		variations = append(variations, variation)
	}
	return variations
}

// CreateProduct handles POST /api/v1/admin/products
func CreateProduct(c *gin.Context) {
	var req ProductRequest
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
	if !req.validatePricing(c) {
		return
	}

	db := config.GetDB()
	titleLower := utils.NormalizeName(req.Title)
	if titleLower == "" {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Title is required")
		return
	}

	taken, err := nameTaken(db, &models.Product{}, "", 0, map[string]interface{}{"title_lower": titleLower})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to check title")
		return
	}
	if taken {
		respondError(c, http.StatusConflict, "DUPLICATE_NAME", "A product with this title already exists")
		return
	}

	product := models.Product{
		Title:       req.Title,
		TitleLower:  titleLower,
		SKU:         req.SKU,
		Slug:        utils.Slugify(req.Title),
		Description: req.Description,
		CategoryID:  req.CategoryID,
		BrandID:     req.BrandID,
		ModelID:     req.ModelID,
		ListPrice:   req.ListPrice,
		SalePrice:   req.SalePrice,
		Stock:       req.Stock,
		IsVariable:  req.IsVariable,
		Variations:  buildVariations(req.Variations),
	}
	for i, url := range req.ImageURLs {
		product.Images = append(product.Images, models.ProductImage{URL: url, Position: i})
	}

	if err := db.Create(&product).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create product")
		return
	}
	respondData(c, http.StatusCreated, product)
}

// UpdateProduct handles PUT /api/v1/admin/products/:id. Variations are
// replaced wholesale with the submitted set.
func UpdateProduct(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data")
		return
	}
	if !req.validatePricing(c) {
		return
	}

	db := config.GetDB()
	var product models.Product
	if err := db.First(&product, id).Error; err != nil {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Product not found")
		return
	}

	titleLower := utils.NormalizeName(req.Title)
	if titleLower == "" {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Title is required")
		return
	}

	taken, err := nameTaken(db, &models.Product{}, "", product.ID, map[string]interface{}{"title_lower": titleLower})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to check title")
		return
	}
	if taken {
		respondError(c, http.StatusConflict, "DUPLICATE_NAME", "A product with this title already exists")
		return
	}

	product.Title = req.Title
	product.TitleLower = titleLower
	product.SKU = req.SKU
	product.Slug = utils.Slugify(req.Title)
	product.Description = req.Description
	product.CategoryID = req.CategoryID
	product.BrandID = req.BrandID
	product.ModelID = req.ModelID
	product.ListPrice = req.ListPrice
	product.SalePrice = req.SalePrice
	product.Stock = req.Stock
	product.IsVariable = req.IsVariable

	if err := db.Save(&product).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update product")
		return
	}

	// Replace variations and product-level images with the submitted sets
	if err := db.Where("product_id = ?", product.ID).Delete(&models.Variation{}).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update variations")
		return
	}
	if err := db.Where("product_id = ? AND variation_id IS NULL", product.ID).Delete(&models.ProductImage{}).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update images")
		return
	}

	variations := buildVariations(req.Variations)
	for i := range variations {
		variations[i].ProductID = product.ID
	}
	if len(variations) > 0 {
		if err := db.Create(&variations).Error; err != nil {
			respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update variations")
			return
		}
	}
	for i, url := range req.ImageURLs {
		image := models.ProductImage{ProductID: product.ID, URL: url, Position: i}
		if err := db.Create(&image).Error; err != nil {
			respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update images")
			return
		}
	}

	GetProductByID(c, product.ID)
}

// GetProductByID reloads and responds with a full product
func GetProductByID(c *gin.Context, id uint) {
	var product models.Product
	err := config.GetDB().Preload("Category").Preload("Brand").Preload("Model").
		Preload("Images", "variation_id IS NULL").Preload("Variations").Preload("Variations.Images").
		First(&product, id).Error
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load product")
		return
	}
	respondData(c, http.StatusOK, product)
}

// DeleteProduct handles DELETE /api/v1/admin/products/:id
func DeleteProduct(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := config.GetDB().Delete(&models.Product{}, id).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete product")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
