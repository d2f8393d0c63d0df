package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"skyplanner/services"
)

type SearchRequest struct {
	Origin      string `json:"origin" binding:"required"`
	Destination string `json:"destination" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Passengers  int    `json:"passengers"`
}

type SearchResponse struct {
	SearchID string                  `json:"search_id"`
	Flights  []services.FlightOption `json:"flights"`
	Source   string                  `json:"source"` // "live" or "estimated"
}

func SearchHandler(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	req.Origin = strings.ToUpper(strings.TrimSpace(req.Origin))
	req.Destination = strings.ToUpper(strings.TrimSpace(req.Destination))

	if req.Passengers <= 0 {
		req.Passengers = 1
	}

	if len(req.Origin) != 3 || len(req.Destination) != 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Airport codes must be exactly 3 characters (e.g. LOS, ABV)"})
		return
	}

	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
		return
	}

	flights, source := services.SearchFlights(services.SearchCriteria{
		Origin:      req.Origin,
		Destination: req.Destination,
		Date:        req.Date,
		Passengers:  req.Passengers,
	})

	c.JSON(http.StatusOK, SearchResponse{
		SearchID: uuid.New().String(),
		Flights:  flights,
		Source:   source,
	})
}
