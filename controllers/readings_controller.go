package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jyogi-studio/jyogi-manager-api/models"
)

// CreateReadingRequest represents the add-reading form
type CreateReadingRequest struct {
	Date        string `json:"date"`
	ClientName  string `json:"client_name" binding:"required"`
	ReadingType string `json:"reading_type"`
	Question    string `json:"question"`
	Notes       string `json:"notes"`
	Status      string `json:"status"` // New, In Progress, Completed
}

// ListReadings handles GET /api/v1/readings
var ListReadings = listTable(models.TableReadings)

// ReplaceReadings handles PUT /api/v1/readings - bulk table editor save
var ReplaceReadings = replaceTable(models.TableReadings)

// CreateReading handles POST /api/v1/readings - records a new tarot or
// astrology reading
func CreateReading(c *gin.Context) {
	var req CreateReadingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}

	if req.Date == "" {
		req.Date = todayStamp()
	}
	if req.Status == "" {
		req.Status = "New"
	}

	appendRow(c, models.TableReadings, models.Row{
		"Date":         req.Date,
		"Client Name":  req.ClientName,
		"Reading Type": req.ReadingType,
		"Question":     req.Question,
		"Notes":        req.Notes,
		"Status":       req.Status,
	})
}
