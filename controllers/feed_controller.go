package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/intellij1704/mobile-display-sub002/config"
	"github.com/intellij1704/mobile-display-sub002/services"
)

// GetFeed handles GET /api/feed - serves the Google Shopping product feed
func GetFeed(c *gin.Context) {
	db := config.GetDB()
	cfg := config.GetConfig()

	siteDomain := "https://www.mobiledisplay.in"
	if cfg != nil && cfg.SiteDomain != "" {
		siteDomain = cfg.SiteDomain
	}

	feed, err := services.GenerateFeed(db, siteDomain)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "FEED_ERROR", "Failed to generate feed")
		return
	}

	c.Data(http.StatusOK, "application/xml; charset=utf-8", feed)
}
