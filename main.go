package main

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/intellij1704/mobile-display-sub002/config"
	"github.com/intellij1704/mobile-display-sub002/controllers"
	"github.com/intellij1704/mobile-display-sub002/middleware"
	"github.com/intellij1704/mobile-display-sub002/models"
	"github.com/intellij1704/mobile-display-sub002/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	}
	logrus.Info("Starting Mobile Display API server...")

	if err := config.ConnectDatabase(); err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	db := config.GetDB()
	if err := db.AutoMigrate(
		&models.Category{}, &models.Brand{}, &models.Series{}, &models.DeviceModel{},
		&models.Product{}, &models.Variation{}, &models.ProductImage{},
		&models.User{}, &models.Address{}, &models.CartItem{}, &models.Favorite{},
		&models.CheckoutSession{}, &models.CheckoutItem{},
		&models.Order{}, &models.InvoiceCounter{}, &models.ReturnRequest{},
		&models.Review{}, &models.Admin{}, &models.ShippingSetting{},
		&models.PriceRevision{}, &models.ShopOwnerLead{}, &models.ContactMessage{},
	); err != nil {
		logrus.Fatalf("Failed to migrate database: %v", err)
	}
	logrus.Info("Database migration completed successfully")

	s3Service, err := services.InitS3Service()
	if err != nil {
		logrus.Fatalf("Failed to initialize S3 service: %v", err)
	}
	services.InitImageService(s3Service)

	// Mail is optional: the storefront keeps serving when SMTP is not set
	// up, only notifications and the contact relay are disabled.
	if _, err := services.InitMailService(cfg); err != nil {
		logrus.Warnf("Mail disabled: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins(cfg),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Public endpoints, no auth
	router.GET("/api/feed", controllers.GetFeed)
	router.POST("/api/contact", controllers.SubmitContact)
	router.POST("/api/leads", controllers.SubmitLead)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheck)

		// Catalog drill-down
		v1.GET("/categories", controllers.ListCategories)
		v1.GET("/brands", controllers.ListBrands)
		v1.GET("/series", controllers.ListSeries)
		v1.GET("/models", controllers.ListDeviceModels)
		v1.GET("/products", controllers.ListProducts)
		v1.GET("/products/:id", controllers.GetProduct)
		v1.GET("/products/:id/reviews", controllers.ListProductReviews)
	}

	// Endpoints requiring a valid access token
	authed := v1.Group("")
	authed.Use(middleware.EnsureValidToken(cfg))
	{
		authed.GET("/me", controllers.GetProfile)
		authed.PUT("/me", controllers.UpdateProfile)

		authed.GET("/addresses", controllers.ListAddresses)
		authed.POST("/addresses", controllers.CreateAddress)
		authed.PUT("/addresses/:id", controllers.UpdateAddress)
		authed.DELETE("/addresses/:id", controllers.DeleteAddress)

		authed.GET("/cart", controllers.GetCart)
		authed.POST("/cart", controllers.AddCartItem)
		authed.PUT("/cart/:id", controllers.UpdateCartItem)
		authed.DELETE("/cart/:id", controllers.RemoveCartItem)
		authed.DELETE("/cart", controllers.ClearCart)

		authed.GET("/favorites", controllers.ListFavorites)
		authed.POST("/favorites", controllers.ToggleFavorite)

		authed.POST("/checkout/prepaid", controllers.CreatePrepaidCheckout)
		authed.POST("/checkout/cod", controllers.CreateCODCheckout)
		authed.POST("/checkout/:id/finalize", controllers.FinalizeCODCheckout)

		authed.GET("/orders", controllers.ListMyOrders)
		authed.GET("/orders/:id", controllers.GetMyOrder)

		authed.GET("/returns", controllers.ListMyReturnRequests)
		authed.POST("/returns", controllers.CreateReturnRequest)

		authed.POST("/reviews", controllers.CreateReview)
	}

	// Back-office endpoints, token plus admin allow-list
	admin := v1.Group("/admin")
	admin.Use(middleware.EnsureValidToken(cfg), middleware.RequireAdmin())
	{
		admin.POST("/categories", controllers.CreateCategory)
		admin.PUT("/categories/:id", controllers.UpdateCategory)
		admin.DELETE("/categories/:id", controllers.DeleteCategory)

		admin.POST("/brands", controllers.CreateBrand)
		admin.PUT("/brands/:id", controllers.UpdateBrand)
		admin.DELETE("/brands/:id", controllers.DeleteBrand)

		admin.POST("/series", controllers.CreateSeries)
		admin.PUT("/series/:id", controllers.UpdateSeries)
		admin.DELETE("/series/:id", controllers.DeleteSeries)

		admin.POST("/models", controllers.CreateDeviceModel)
		admin.PUT("/models/:id", controllers.UpdateDeviceModel)
		admin.DELETE("/models/:id", controllers.DeleteDeviceModel)

		admin.POST("/products", controllers.CreateProduct)
		admin.PUT("/products/:id", controllers.UpdateProduct)
		admin.DELETE("/products/:id", controllers.DeleteProduct)

		admin.POST("/uploads", controllers.UploadImage)

		admin.GET("/orders", controllers.ListOrders)
		admin.PUT("/orders/:id/status", controllers.UpdateOrderStatus)
		admin.PUT("/orders/:id/awb", controllers.AssignOrderAWB)

		admin.GET("/returns", controllers.ListReturnRequests)
		admin.PUT("/returns/:id/status", controllers.UpdateReturnStatus)

		admin.GET("/reviews", controllers.ListAllReviews)
		admin.PUT("/reviews/:id/approve", controllers.ApproveReview)
		admin.DELETE("/reviews/:id", controllers.DeleteReview)

		admin.GET("/price-revisions", controllers.ListPriceRevisions)
		admin.POST("/price-revisions", controllers.ApplyPriceRevision)
		admin.POST("/price-revisions/:id/revert", controllers.RevertPriceRevision)

		admin.GET("/admins", controllers.ListAdmins)
		admin.POST("/admins", controllers.CreateAdmin)
		admin.DELETE("/admins/:id", controllers.DeleteAdmin)

		admin.GET("/shipping-settings", controllers.GetShippingSettings)
		admin.PUT("/shipping-settings", controllers.UpdateShippingSettings)

		admin.GET("/leads", controllers.ListLeads)
		admin.GET("/leads/export", controllers.ExportLeads)
		admin.GET("/contact-messages", controllers.ListContactMessages)
	}

	// Courier proxy, admin only
	shipmozo := router.Group("/api/shipmozo")
	shipmozo.Use(middleware.EnsureValidToken(cfg), middleware.RequireAdmin())
	{
		shipmozo.GET("/tracking", controllers.GetShipmozoTracking)
		shipmozo.POST("/cancel", controllers.CancelShipmozoOrder)
	}

	addr := ":" + cfg.Port
	logrus.Infof("Server is running on http://localhost%s", addr)
	if err := router.Run(addr); err != nil {
		logrus.Fatalf("Failed to start server: %v", err)
	}
}

// corsOrigins returns the origins allowed to call the API from a browser.
// The local dev frontend is only whitelisted outside production.
func corsOrigins(cfg *config.Config) []string {
	origins := []string{cfg.SiteDomain}
	if !cfg.IsProduction() {
		origins = append(origins, "http://localhost:3000")
	}
	return origins
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Mobile Display API is running",
	})
}
