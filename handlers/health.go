package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skyplanner/services"
)

func HealthHandler(c *gin.Context) {
	flightMode := "demo"
	if services.ProviderConfigured() {
		flightMode = "live"
	}
	summaryMode := "template"
	if services.ComposerConfigured() {
		summaryMode = "generative"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"service":   "SkyPlanner API",
		"flights":   flightMode,
		"summaries": summaryMode,
	})
}
