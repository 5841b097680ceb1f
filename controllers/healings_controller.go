package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jyogi-studio/jyogi-manager-api/models"
)

// CreateHealingRequest represents the add-healing-request form
type CreateHealingRequest struct {
	Date        string `json:"date"`
	ClientName  string `json:"client_name" binding:"required"`
	RequestType string `json:"request_type"`
	Intention   string `json:"intention"`
	Status      string `json:"status"` // New, In Progress, Completed
}

// ListHealings handles GET /api/v1/healings
var ListHealings = listTable(models.TableHealings)

// ReplaceHealings handles PUT /api/v1/healings - bulk table editor save
var ReplaceHealings = replaceTable(models.TableHealings)

// CreateHealing handles POST /api/v1/healings - records a new healing request
func CreateHealing(c *gin.Context) {
	var req CreateHealingRequest
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

	appendRow(c, models.TableHealings, models.Row{
		"Date":         req.Date,
		"Client Name":  req.ClientName,
		"Request Type": req.RequestType,
		"Intention":    req.Intention,
		"Status":       req.Status,
		"Notes":        "",
	})
}
