package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/intellij1704/mobile-display-sub002/models"
)

func TestCreateProduct(t *testing.T) {
	db := setupControllerTestDB(t)
	category := models.Category{Name: "Displays", NameLower: "displays", Slug: "displays"}
	brand := models.Brand{Name: "Samsung", NameLower: "samsung", Slug: "samsung"}
	db.Create(&category)
	db.Create(&brand)

	router := setupTestRouter()
	router.POST("/products", CreateProduct)

	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		expectedStatus int
		expectedError  string
	}{
		{
			name: "Simple product",
			requestBody: map[string]interface{}{
				"title": "Galaxy A52 Display", "category_id": category.ID, "brand_id": brand.ID,
				"list_price": 1500, "sale_price": 1200, "stock": 10,
				"image_urls": []string{"https://cdn.example.com/a52.webp"},
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Duplicate title folds case and whitespace",
			requestBody: map[string]interface{}{
				"title": "  GALAXY  A52  display ", "category_id": category.ID, "brand_id": brand.ID,
				"list_price": 1500,
			},
			expectedStatus: http.StatusConflict,
			expectedError:  "DUPLICATE_NAME",
		},
		{
			name: "Simple product needs a positive list price",
			requestBody: map[string]interface{}{
				"title": "S21 Display", "category_id": category.ID, "brand_id": brand.ID,
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "VALIDATION_ERROR",
		},
		{
			name: "Variable product needs at least one variation",
			requestBody: map[string]interface{}{
				"title": "S21 Display", "category_id": category.ID, "brand_id": brand.ID,
				"is_variable": true,
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "VALIDATION_ERROR",
		},
		{
			name: "Variable product with variations",
			requestBody: map[string]interface{}{
				"title": "S21 Display", "category_id": category.ID, "brand_id": brand.ID,
				"is_variable": true,
				"variations": []map[string]interface{}{
					{"color": "Black", "quality": "OLED", "list_price": 3000, "sale_price": 2500, "stock": 2},
					{"color": "Silver", "quality": "Incell", "list_price": 2000, "stock": 1},
				},
			},
			expectedStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performJSON(router, http.MethodPost, "/products", tt.requestBody)
			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				assertErrorCode(t, w, tt.expectedError)
			}
		})
	}

	var variationCount int64
	db.Model(&models.Variation{}).Count(&variationCount)
	assert.Equal(t, int64(2), variationCount)
}

func TestUpdateProduct_ReplacesVariations(t *testing.T) {
	db := setupControllerTestDB(t)
	product := seedProduct(t, db)
	db.Model(&models.Product{}).Where("id = ?", product.ID).Update("is_variable", true)
	db.Create(&models.Variation{ProductID: product.ID, Color: "Black", ListPrice: 2000, Stock: 1})
	db.Create(&models.Variation{ProductID: product.ID, Color: "Silver", ListPrice: 2000, Stock: 1})

	router := setupTestRouter()
	router.PUT("/products/:id", UpdateProduct)

	w := performJSON(router, http.MethodPut, fmt.Sprintf("/products/%d", product.ID), map[string]interface{}{
		"title": product.Title, "category_id": product.CategoryID, "brand_id": product.BrandID,
		"is_variable": true,
		"variations": []map[string]interface{}{
			{"color": "Gold", "list_price": 2200, "stock": 4},
		},
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var variations []models.Variation
	db.Where("product_id = ?", product.ID).Find(&variations)
	assert.Len(t, variations, 1)
	assert.Equal(t, "Gold", variations[0].Color)
}

func TestUpdateProduct_WhitespaceOnlyTitle(t *testing.T) {
	db := setupControllerTestDB(t)
	product := seedProduct(t, db)

	router := setupTestRouter()
	router.PUT("/products/:id", UpdateProduct)

	w := performJSON(router, http.MethodPut, fmt.Sprintf("/products/%d", product.ID), map[string]interface{}{
		"title": "   ", "category_id": product.CategoryID, "brand_id": product.BrandID,
		"list_price": product.ListPrice,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assertErrorCode(t, w, "VALIDATION_ERROR")

	var stored models.Product
	db.First(&stored, product.ID)
	assert.Equal(t, product.Title, stored.Title)
}

func TestListProducts_Filters(t *testing.T) {
	db := setupControllerTestDB(t)
	product := seedProduct(t, db)

	other := models.Category{Name: "Batteries", NameLower: "batteries", Slug: "batteries"}
	db.Create(&other)
	db.Create(&models.Product{
		Title: "A52 Battery", TitleLower: "a52 battery", Slug: "a52-battery",
		CategoryID: other.ID, BrandID: product.BrandID, ListPrice: 500,
	})

	router := setupTestRouter()
	router.GET("/products", ListProducts)

	w := performJSON(router, http.MethodGet, fmt.Sprintf("/products?categoryId=%d", product.CategoryID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	data := parseResponse(t, w)["data"].([]interface{})
	assert.Len(t, data, 1)

	w = performJSON(router, http.MethodGet, "/products", nil)
	data = parseResponse(t, w)["data"].([]interface{})
	assert.Len(t, data, 2)
}

func TestListProducts_PopularFirst(t *testing.T) {
	db := setupControllerTestDB(t)
	product := seedProduct(t, db)
	db.Create(&models.Product{
		Title: "Best Seller", TitleLower: "best seller", Slug: "best-seller",
		CategoryID: product.CategoryID, BrandID: product.BrandID,
		ListPrice: 900, OrdersCount: 25,
	})

	router := setupTestRouter()
	router.GET("/products", ListProducts)

	w := performJSON(router, http.MethodGet, "/products", nil)
	data := parseResponse(t, w)["data"].([]interface{})
	first := data[0].(map[string]interface{})
	assert.Equal(t, "Best Seller", first["title"])
}
