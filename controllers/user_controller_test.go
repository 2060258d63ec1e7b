package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/intellij1704/mobile-display-sub002/config"
	"github.com/intellij1704/mobile-display-sub002/models"
)

func setupControllerTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Category{}, &models.Brand{}, &models.Series{}, &models.DeviceModel{},
		&models.Product{}, &models.Variation{}, &models.ProductImage{},
		&models.User{}, &models.Address{}, &models.CartItem{}, &models.Favorite{},
		&models.CheckoutSession{}, &models.CheckoutItem{},
		&models.Order{}, &models.InvoiceCounter{}, &models.ReturnRequest{},
		&models.Review{}, &models.Admin{}, &models.ShippingSetting{},
		&models.PriceRevision{}, &models.ShopOwnerLead{}, &models.ContactMessage{},
	); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	config.SetDB(db)
	return db
}

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// mockAuthMiddleware injects the context values the real JWT middleware and
// the RequireAdmin email lookup read.
func mockAuthMiddleware(uid, email string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", uid)
		if email != "" {
			c.Set("user_email", email)
		}
		c.Next()
	}
}

func performJSON(router *gin.Engine, method, path string, payload interface{}) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		json.NewEncoder(&body).Encode(payload)
	}
	req, _ := http.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v (%s)", err, w.Body.String())
	}
	return response
}

func assertErrorCode(t *testing.T, w *httptest.ResponseRecorder, code string) {
	response := parseResponse(t, w)
	assert.False(t, response["success"].(bool))
	errorData := response["error"].(map[string]interface{})
	assert.Equal(t, code, errorData["code"])
}

func seedProduct(t *testing.T, db *gorm.DB) models.Product {
	category := models.Category{Name: "Displays", NameLower: "displays", Slug: "displays"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("Failed to seed category: %v", err)
	}
	brand := models.Brand{Name: "Samsung", NameLower: "samsung", Slug: "samsung"}
	if err := db.Create(&brand).Error; err != nil {
		t.Fatalf("Failed to seed brand: %v", err)
	}

	product := models.Product{
		Title: "Galaxy A52 Display", TitleLower: "galaxy a52 display", Slug: "galaxy-a52-display",
		CategoryID: category.ID, BrandID: brand.ID,
		ListPrice: 1500, SalePrice: 1200, Stock: 10,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("Failed to seed product: %v", err)
	}
	return product
}

func TestGetProfile_CreatesOnFirstSight(t *testing.T) {
	db := setupControllerTestDB(t)
	uid := "auth0|newuser"

	router := setupTestRouter()
	router.GET("/me", mockAuthMiddleware(uid, "new@example.com"), GetProfile)

	w := performJSON(router, http.MethodGet, "/me", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var user models.User
	assert.NoError(t, db.Where("uid = ?", uid).First(&user).Error)
	assert.Equal(t, "new@example.com", user.Email)
}

func TestUpdateProfile_MergesFields(t *testing.T) {
	db := setupControllerTestDB(t)
	uid := "auth0|customer123"
	db.Create(&models.User{UID: uid, Name: "Ravi", Email: "ravi@example.com", Phone: "9876543210"})

	router := setupTestRouter()
	router.PUT("/me", mockAuthMiddleware(uid, ""), UpdateProfile)

	// Only the phone changes; empty fields keep their stored values
	w := performJSON(router, http.MethodPut, "/me", map[string]interface{}{"phone": "9000000000"})
	assert.Equal(t, http.StatusOK, w.Code)

	var user models.User
	db.Where("uid = ?", uid).First(&user)
	assert.Equal(t, "Ravi", user.Name)
	assert.Equal(t, "ravi@example.com", user.Email)
	assert.Equal(t, "9000000000", user.Phone)
}

func TestCreateAddress_DefaultFlagMovesOver(t *testing.T) {
	db := setupControllerTestDB(t)
	uid := "auth0|customer123"

	router := setupTestRouter()
	router.POST("/addresses", mockAuthMiddleware(uid, ""), CreateAddress)

	first := map[string]interface{}{
		"name": "Ravi", "line": "12 MG Road", "city": "Bengaluru",
		"state": "Karnataka", "pin": "560001", "phone": "9876543210",
		"is_default": true,
	}
	w := performJSON(router, http.MethodPost, "/addresses", first)
	assert.Equal(t, http.StatusCreated, w.Code)

	second := map[string]interface{}{
		"name": "Ravi Office", "line": "4 Brigade Road", "city": "Bengaluru",
		"state": "Karnataka", "pin": "560025", "phone": "9876543210",
		"is_default": true,
	}
	w = performJSON(router, http.MethodPost, "/addresses", second)
	assert.Equal(t, http.StatusCreated, w.Code)

	var defaults int64
	db.Model(&models.Address{}).Where("uid = ? AND is_default = ?", uid, true).Count(&defaults)
	assert.Equal(t, int64(1), defaults)
}

func TestDeleteAddress_OtherUsersAddress(t *testing.T) {
	db := setupControllerTestDB(t)
	other := models.Address{UID: "auth0|other", Name: "X", Line: "Y", City: "Z", State: "S", Pin: "1", Phone: "2"}
	db.Create(&other)

	router := setupTestRouter()
	router.DELETE("/addresses/:id", mockAuthMiddleware("auth0|customer123", ""), DeleteAddress)

	w := performJSON(router, http.MethodDelete, "/addresses/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddCartItem(t *testing.T) {
	db := setupControllerTestDB(t)
	uid := "auth0|customer123"
	product := seedProduct(t, db)

	router := setupTestRouter()
	router.POST("/cart", mockAuthMiddleware(uid, ""), AddCartItem)

	w := performJSON(router, http.MethodPost, "/cart", map[string]interface{}{
		"product_id": product.ID,
		"quantity":   2,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var item models.CartItem
	db.Where("uid = ?", uid).First(&item)
	assert.Equal(t, 2, item.Quantity)
}

func TestAddCartItem_VariableProductNeedsVariation(t *testing.T) {
	db := setupControllerTestDB(t)
	uid := "auth0|customer123"
	product := seedProduct(t, db)
	db.Model(&models.Product{}).Where("id = ?", product.ID).Update("is_variable", true)

	router := setupTestRouter()
	router.POST("/cart", mockAuthMiddleware(uid, ""), AddCartItem)

	w := performJSON(router, http.MethodPost, "/cart", map[string]interface{}{
		"product_id": product.ID,
		"quantity":   1,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assertErrorCode(t, w, "VALIDATION_ERROR")
}

func TestAddCartItem_ReAddUpdatesQuantity(t *testing.T) {
	db := setupControllerTestDB(t)
	uid := "auth0|customer123"
	product := seedProduct(t, db)
	variation := models.Variation{ProductID: product.ID, Color: "Black", ListPrice: 1500, Stock: 5}
	db.Create(&variation)
	db.Model(&models.Product{}).Where("id = ?", product.ID).Update("is_variable", true)

	router := setupTestRouter()
	router.POST("/cart", mockAuthMiddleware(uid, ""), AddCartItem)

	payload := map[string]interface{}{
		"product_id":   product.ID,
		"variation_id": variation.ID,
		"quantity":     1,
	}
	w := performJSON(router, http.MethodPost, "/cart", payload)
	assert.Equal(t, http.StatusCreated, w.Code)

	payload["quantity"] = 3
	w = performJSON(router, http.MethodPost, "/cart", payload)
	assert.Equal(t, http.StatusCreated, w.Code)

	var count int64
	db.Model(&models.CartItem{}).Where("uid = ?", uid).Count(&count)
	assert.Equal(t, int64(1), count)

	var item models.CartItem
	db.Where("uid = ?", uid).First(&item)
	assert.Equal(t, 3, item.Quantity)
}

func TestToggleFavorite(t *testing.T) {
	db := setupControllerTestDB(t)
	uid := "auth0|customer123"
	product := seedProduct(t, db)

	router := setupTestRouter()
	router.POST("/favorites", mockAuthMiddleware(uid, ""), ToggleFavorite)

	payload := map[string]interface{}{"product_id": product.ID}

	w := performJSON(router, http.MethodPost, "/favorites", payload)
	assert.Equal(t, http.StatusCreated, w.Code)

	var count int64
	db.Model(&models.Favorite{}).Where("uid = ?", uid).Count(&count)
	assert.Equal(t, int64(1), count)

	// Second toggle removes it
	w = performJSON(router, http.MethodPost, "/favorites", payload)
	assert.Equal(t, http.StatusOK, w.Code)

	db.Model(&models.Favorite{}).Where("uid = ?", uid).Count(&count)
	assert.Equal(t, int64(0), count)
}
