package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/intellij1704/mobile-display-sub002/config"
	"github.com/intellij1704/mobile-display-sub002/middleware"
	"github.com/intellij1704/mobile-display-sub002/models"
)

// ProfileRequest represents the request body for updating the caller's profile
type ProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email" binding:"omitempty,email"`
	Phone string `json:"phone"`
}

// AddressRequest represents the request body for a saved address
type AddressRequest struct {
	Name      string `json:"name" binding:"required"`
	Line      string `json:"line" binding:"required"`
	City      string `json:"city" binding:"required"`
	State     string `json:"state" binding:"required"`
	Pin       string `json:"pin" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	IsDefault bool   `json:"is_default"`
}

// CartItemRequest represents the request body for adding/updating a cart line
type CartItemRequest struct {
	ProductID   uint  `json:"product_id" binding:"required"`
	VariationID *uint `json:"variation_id"`
	Quantity    int   `json:"quantity" binding:"required,gt=0"`
}

// FavoriteRequest represents the request body for toggling a favorite
type FavoriteRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
}

func requireUID(c *gin.Context) (string, bool) {
	uid, err := middleware.GetUserID(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Could not extract user information")
		return "", false
	}
	return uid, true
}

// GetProfile handles GET /api/v1/me - creates an empty profile row on first
// sight of a new subject so later upserts are plain updates.
func GetProfile(c *gin.Context) {
	uid, ok := requireUID(c)
	if !ok {
		return
	}

	db := config.GetDB()
	var user models.User
	if err := db.Where("uid = ?", uid).First(&user).Error; err != nil {
		user = models.User{UID: uid}
		if email, err := middleware.GetEmail(c); err == nil {
			user.Email = email
		}
		if err := db.Create(&user).Error; err != nil {
			respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create profile")
			return
		}
	}
	respondData(c, http.StatusOK, user)
}

// UpdateProfile handles PUT /api/v1/me - merge semantics, empty fields in the
// payload leave the stored value alone.
func UpdateProfile(c *gin.Context) {
	uid, ok := requireUID(c)
	if !ok {
		return
	}

	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid profile data")
		return
	}

	db := config.GetDB()
	var user models.User
	if err := db.Where("uid = ?", uid).First(&user).Error; err != nil {
		user = models.User{UID: uid}
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}

	if err := db.Save(&user).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to save profile")
		return
	}
	respondData(c, http.StatusOK, user)
}

// ListAddresses handles GET /api/v1/addresses
func ListAddresses(c *gin.Context) {
	uid, ok := requireUID(c)
	if !ok {
		return
	}

	var addresses []models.Address
	if err := config.GetDB().Where("uid = ?", uid).
		Order("is_default DESC, created_at DESC").Find(&addresses).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load addresses")
		return
	}
	respondData(c, http.StatusOK, addresses)
}

// clearDefaultAddress drops the default flag from the user's other addresses
func clearDefaultAddress(db *gorm.DB, uid string) error {
	return db.Model(&models.Address{}).Where("uid = ?", uid).
		Update("is_default", false).Error
}

// CreateAddress handles POST /api/v1/addresses
func CreateAddress(c *gin.Context) {
	uid, ok := requireUID(c)
	if !ok {
		return
	}

	var req AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "All address fields are required")
		return
	}

	db := config.GetDB()
	if req.IsDefault {
		if err := clearDefaultAddress(db, uid); err != nil {
			respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to save address")
			return
		}
	}

	address := models.Address{
		UID:       uid,
		Name:      req.Name,
		Line:      req.Line,
		City:      req.City,
		State:     req.State,
		Pin:       req.Pin,
		Phone:     req.Phone,
		IsDefault: req.IsDefault,
	}
	if err := db.Create(&address).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to save address")
		return
	}
	respondData(c, http.StatusCreated, address)
}

// UpdateAddress handles PUT /api/v1/addresses/:id
func UpdateAddress(c *gin.Context) {
	uid, ok := requireUID(c)
	if !ok {
		return
	}
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "All address fields are required")
		return
	}

	db := config.GetDB()
	var address models.Address
	if err := db.Where("id = ? AND uid = ?", id, uid).First(&address).Error; err != nil {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Address not found")
		return
	}

	if req.IsDefault && !address.IsDefault {
		if err := clearDefaultAddress(db, uid); err != nil {
			respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to save address")
			return
		}
	}

	address.Name = req.Name
	address.Line = req.Line
	address.City = req.City
	address.State = req.State
	address.Pin = req.Pin
	address.Phone = req.Phone
	address.IsDefault = req.IsDefault

	if err := db.Save(&address).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to save address")
		return
	}
	respondData(c, http.StatusOK, address)
}

// DeleteAddress handles DELETE /api/v1/addresses/:id
func DeleteAddress(c *gin.Context) {
	uid, ok := requireUID(c)
	if !ok {
		return
	}
	id, ok := paramID(c)
	if !ok {
		return
	}

	result := config.GetDB().Where("id = ? AND uid = ?", id, uid).Delete(&models.Address{})
	if result.Error != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete address")
		return
	}
	if result.RowsAffected == 0 {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Address not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetCart handles GET /api/v1/cart
func GetCart(c *gin.Context) {
	uid, ok := requireUID(c)
	if !ok {
		return
	}

	var items []models.CartItem
	if err := config.GetDB().Preload("Product").Preload("Product.Images").Preload("Variation").
		Where("uid = ?", uid).Order("created_at").Find(&items).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load cart")
		return
	}
	respondData(c, http.StatusOK, items)
}

// AddCartItem handles POST /api/v1/cart. Re-adding an existing line sets its
// quantity instead of duplicating the row.
func AddCartItem(c *gin.Context) {
	uid, ok := requireUID(c)
	if !ok {
		return
	}

	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Product and a positive quantity are required")
		return
	}

	db := config.GetDB()
	var product models.Product
	if err := db.First(&product, req.ProductID).Error; err != nil {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Product not found")
		return
	}
	if req.VariationID != nil {
		var variation models.Variation
		if err := db.Where("id = ? AND product_id = ?", *req.VariationID, req.ProductID).
			First(&variation).Error; err != nil {
			respondError(c, http.StatusNotFound, "NOT_FOUND", "Variation not found")
			return
		}
	} else if product.IsVariable {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "This product requires a variation")
		return
	}

	// Re-adding the same line replaces its quantity instead of stacking rows.
	// The lookup must spell out IS NULL: the unique index treats NULL
	// variation ids as distinct, so an upsert clause alone would not match.
	lineQuery := db.Where("uid = ? AND product_id = ?", uid, req.ProductID)
	if req.VariationID != nil {
		lineQuery = lineQuery.Where("variation_id = ?", *req.VariationID)
	} else {
		lineQuery = lineQuery.Where("variation_id IS NULL")
	}

	var item models.CartItem
	if err := lineQuery.First(&item).Error; err == nil {
		item.Quantity = req.Quantity
		if err := db.Save(&item).Error; err != nil {
			respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update cart")
			return
		}
		respondData(c, http.StatusCreated, item)
		return
	}

	item = models.CartItem{
		UID:         uid,
		ProductID:   req.ProductID,
		VariationID: req.VariationID,
		Quantity:    req.Quantity,
	}
	if err := db.Create(&item).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update cart")
		return
	}
	respondData(c, http.StatusCreated, item)
}

// UpdateCartItem handles PUT /api/v1/cart/:id
func UpdateCartItem(c *gin.Context) {
	uid, ok := requireUID(c)
	if !ok {
		return
	}
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req struct {
		Quantity int `json:"quantity" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "A positive quantity is required")
		return
	}

	db := config.GetDB()
	var item models.CartItem
	if err := db.Where("id = ? AND uid = ?", id, uid).First(&item).Error; err != nil {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Cart item not found")
		return
	}

	if err := db.Model(&item).Update("quantity", req.Quantity).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update cart")
		return
	}
	item.Quantity = req.Quantity
	respondData(c, http.StatusOK, item)
}

// RemoveCartItem handles DELETE /api/v1/cart/:id
func RemoveCartItem(c *gin.Context) {
	uid, ok := requireUID(c)
	if !ok {
		return
	}
	id, ok := paramID(c)
	if !ok {
		return
	}

	result := config.GetDB().Where("id = ? AND uid = ?", id, uid).Delete(&models.CartItem{})
	if result.Error != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update cart")
		return
	}
	if result.RowsAffected == 0 {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Cart item not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ClearCart handles DELETE /api/v1/cart
func ClearCart(c *gin.Context) {
	uid, ok := requireUID(c)
	if !ok {
		return
	}

	if err := config.GetDB().Where("uid = ?", uid).Delete(&models.CartItem{}).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to clear cart")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListFavorites handles GET /api/v1/favorites
func ListFavorites(c *gin.Context) {
	uid, ok := requireUID(c)
	if !ok {
		return
	}

	var favorites []models.Favorite
	if err := config.GetDB().Preload("Product").Preload("Product.Images", "variation_id IS NULL").
		Where("uid = ?", uid).Order("created_at DESC").Find(&favorites).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load favorites")
		return
	}
	respondData(c, http.StatusOK, favorites)
}

// ToggleFavorite handles POST /api/v1/favorites - adds the product if absent,
// removes it if present.
func ToggleFavorite(c *gin.Context) {
	uid, ok := requireUID(c)
	if !ok {
		return
	}

	var req FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "A product is required")
		return
	}

	db := config.GetDB()
	var existing models.Favorite
	err := db.Where("uid = ? AND product_id = ?", uid, req.ProductID).First(&existing).Error
	if err == nil {
		if err := db.Delete(&existing).Error; err != nil {
			respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update favorites")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"favorited": false}})
		return
	}

	if err := db.First(&models.Product{}, req.ProductID).Error; err != nil {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Product not found")
		return
	}

	favorite := models.Favorite{UID: uid, ProductID: req.ProductID}
	if err := db.Create(&favorite).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update favorites")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": gin.H{"favorited": true}})
}
