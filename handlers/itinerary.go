package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"skyplanner/services"
)

type ItineraryRequest struct {
	Flights    []services.FlightOption `json:"flights"`
	Details    services.SearchDetails  `json:"details"`
	Preference string                  `json:"preference"`
}

type ItineraryResponse struct {
	Ranked  []services.FlightOption `json:"ranked"`
	Summary string                  `json:"summary"`
}

func ItineraryHandler(c *gin.Context) {
	var req ItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	preference := services.ParsePreference(req.Preference)
	ranked := services.RankFlights(req.Flights, preference)
	summary := services.ComposeItinerary(ranked, preference, req.Details)

	c.JSON(http.StatusOK, ItineraryResponse{
		Ranked:  ranked,
		Summary: services.SanitizeText(summary),
	})
}

// PDFHandler renders the ranked options into a downloadable PDF. The
// summary is composed on the fly when the client does not supply one.
func PDFHandler(c *gin.Context) {
	var req struct {
		ItineraryRequest
		Summary string `json:"summary"`
		Source  string `json:"source"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	preference := services.ParsePreference(req.Preference)
	ranked := services.RankFlights(req.Flights, preference)

	summary := req.Summary
	if summary == "" {
		summary = services.ComposeItinerary(ranked, preference, req.Details)
	}

	pdfBytes, err := services.GeneratePDFBytes(services.PDFData{
		Details:     req.Details,
		Preference:  preference,
		Flights:     ranked,
		Summary:     summary,
		IsEstimated: req.Source == "estimated",
	})
	if err != nil {
		log.Printf("❌ PDF generation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF"})
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", "attachment; filename=skyplanner-itinerary.pdf")
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
