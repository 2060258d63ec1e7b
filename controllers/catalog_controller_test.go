package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/intellij1704/mobile-display-sub002/models"
)

func TestCreateCategory(t *testing.T) {
	setupControllerTestDB(t)

	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "Successfully create category",
			requestBody:    map[string]interface{}{"name": "Displays"},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Exact duplicate rejected",
			requestBody:    map[string]interface{}{"name": "Displays"},
			expectedStatus: http.StatusConflict,
			expectedError:  "DUPLICATE_NAME",
		},
		{
			name:           "Case and whitespace variants collide",
			requestBody:    map[string]interface{}{"name": "  DISPLAYS "},
			expectedStatus: http.StatusConflict,
			expectedError:  "DUPLICATE_NAME",
		},
		{
			name:           "Missing name",
			requestBody:    map[string]interface{}{},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "VALIDATION_ERROR",
		},
		{
			name:           "Whitespace-only name",
			requestBody:    map[string]interface{}{"name": "   "},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "VALIDATION_ERROR",
		},
	}

	router := setupTestRouter()
	router.POST("/categories", CreateCategory)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performJSON(router, http.MethodPost, "/categories", tt.requestBody)
			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				assertErrorCode(t, w, tt.expectedError)
			}
		})
	}
}

func TestUpdateCategory_KeepsOwnName(t *testing.T) {
	db := setupControllerTestDB(t)
	category := models.Category{Name: "Displays", NameLower: "displays", Slug: "displays"}
	db.Create(&category)
	db.Create(&models.Category{Name: "Batteries", NameLower: "batteries", Slug: "batteries"})

	router := setupTestRouter()
	router.PUT("/categories/:id", UpdateCategory)

	// Re-saving under its own name (different casing) is not a collision
	w := performJSON(router, http.MethodPut, "/categories/1", map[string]interface{}{"name": "DISPLAYS"})
	assert.Equal(t, http.StatusOK, w.Code)

	// Renaming onto another category is
	w = performJSON(router, http.MethodPut, "/categories/1", map[string]interface{}{"name": "batteries"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assertErrorCode(t, w, "DUPLICATE_NAME")
}

func TestUpdateCategory_WhitespaceOnlyName(t *testing.T) {
	db := setupControllerTestDB(t)
	category := models.Category{Name: "Displays", NameLower: "displays", Slug: "displays"}
	db.Create(&category)
	db.Create(&models.Category{Name: "Batteries", NameLower: "batteries", Slug: "batteries"})

	router := setupTestRouter()
	router.PUT("/categories/:id", UpdateCategory)

	// A blank name is a validation failure, not a spurious duplicate
	w := performJSON(router, http.MethodPut, "/categories/1", map[string]interface{}{"name": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assertErrorCode(t, w, "VALIDATION_ERROR")

	// The stored name is untouched
	var stored models.Category
	db.First(&stored, category.ID)
	assert.Equal(t, "Displays", stored.Name)
	assert.Equal(t, "displays", stored.NameLower)

	// Same when it is the only row
	db.Where("name_lower = ?", "batteries").Delete(&models.Category{})
	w = performJSON(router, http.MethodPut, "/categories/1", map[string]interface{}{"name": " "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assertErrorCode(t, w, "VALIDATION_ERROR")
}

func TestCreateSeries_PerBrandUniqueness(t *testing.T) {
	db := setupControllerTestDB(t)
	samsung := models.Brand{Name: "Samsung", NameLower: "samsung", Slug: "samsung"}
	apple := models.Brand{Name: "Apple", NameLower: "apple", Slug: "apple"}
	db.Create(&samsung)
	db.Create(&apple)

	router := setupTestRouter()
	router.POST("/series", CreateSeries)

	w := performJSON(router, http.MethodPost, "/series", map[string]interface{}{
		"name": "Galaxy A", "brand_id": samsung.ID,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	// Same name under the same brand collides
	w = performJSON(router, http.MethodPost, "/series", map[string]interface{}{
		"name": "galaxy a", "brand_id": samsung.ID,
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Same name under a different brand is fine
	w = performJSON(router, http.MethodPost, "/series", map[string]interface{}{
		"name": "Galaxy A", "brand_id": apple.ID,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestListCategories_PublicOrdering(t *testing.T) {
	db := setupControllerTestDB(t)
	db.Create(&models.Category{Name: "Displays", NameLower: "displays", Slug: "displays"})
	db.Create(&models.Category{Name: "Batteries", NameLower: "batteries", Slug: "batteries"})

	router := setupTestRouter()
	router.GET("/categories", ListCategories)

	w := performJSON(router, http.MethodGet, "/categories", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	response := parseResponse(t, w)
	data := response["data"].([]interface{})
	assert.Len(t, data, 2)
	first := data[0].(map[string]interface{})
	assert.Equal(t, "Batteries", first["name"])
}
