package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jyogi-studio/jyogi-manager-api/models"
)

// CreateOrderRequest represents the add-order form
type CreateOrderRequest struct {
	Date     string `json:"date"`
	Customer string `json:"customer" binding:"required"`
	Item     string `json:"item"`
	Amount   string `json:"amount"`
	Status   string `json:"status"` // Paid, Processing, Shipped
	Notes    string `json:"notes"`
}

// ListOrders handles GET /api/v1/orders
var ListOrders = listTable(models.TableOrders)

// ReplaceOrders handles PUT /api/v1/orders - bulk table editor save
var ReplaceOrders = replaceTable(models.TableOrders)

// CreateOrder handles POST /api/v1/orders - records a new sale
func CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
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
		req.Status = "Processing"
	}

	appendRow(c, models.TableOrders, models.Row{
		"Date":     req.Date,
		"Customer": req.Customer,
		"Item":     req.Item,
		"Amount":   req.Amount,
		"Status":   req.Status,
		"Notes":    req.Notes,
	})
}
