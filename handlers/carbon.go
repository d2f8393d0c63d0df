package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skyplanner/services"
)

type CarbonRequest struct {
	DistanceKm  *float64 `json:"distance_km"`
	Origin      string   `json:"origin"`
	Destination string   `json:"destination"`
}

type CarbonResponse struct {
	DistanceKm float64 `json:"distance_km"`
	CarbonKg   float64 `json:"carbon_kg"`
}

// CarbonHandler estimates CO2 for either an explicit distance or a
// pair of airport codes resolved to a great-circle distance.
func CarbonHandler(c *gin.Context) {
	var req CarbonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	var distanceKm float64
	switch {
	case req.DistanceKm != nil:
		distanceKm = *req.DistanceKm
	case req.Origin != "" && req.Destination != "":
		km, err := services.DistanceKm(req.Origin, req.Destination)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		distanceKm = km
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Provide distance_km or an origin/destination pair"})
		return
	}

	c.JSON(http.StatusOK, CarbonResponse{
		DistanceKm: distanceKm,
		CarbonKg:   services.EstimateEF(distanceKm),
	})
}
