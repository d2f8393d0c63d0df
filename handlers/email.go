package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"skyplanner/services"
)

type EmailRequest struct {
	To      string `json:"to" binding:"required"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// EmailHandler sends an itinerary notification. Without SMTP
// configuration the request is logged and acknowledged, never failed.
func EmailHandler(c *gin.Context) {
	var req EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if req.Subject == "" {
		req.Subject = "Your SkyPlanner itinerary"
	}

	if !services.MailerConfigured() {
		log.Printf("Email requested for %s: %q", req.To, req.Subject)
		c.JSON(http.StatusOK, gin.H{"status": "logged"})
		return
	}

	if err := services.SendEmail(req.To, req.Subject, req.Body); err != nil {
		log.Printf("⚠️  Email delivery failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to send email"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "sent"})
}
