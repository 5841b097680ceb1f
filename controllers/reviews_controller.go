package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jyogi-studio/jyogi-manager-api/middleware"
	"github.com/jyogi-studio/jyogi-manager-api/models"
)

// CreateReviewRequest represents the leave-a-review form on the showcase
type CreateReviewRequest struct {
	ReviewerName string `json:"reviewer_name"`
	Rating       string `json:"rating"`
	Review       string `json:"review" binding:"required"`
}

// ListReviews handles GET /api/v1/reviews - the moderation queue. The
// response carries every review plus the pending count.
func ListReviews(c *gin.Context) {
	wb := loadWorkbook(c)
	if wb == nil {
		return
	}

	pending := 0
	for _, row := range wb.Rows(models.TableReviews) {
		if strings.ToLower(row["Status"]) == "pending" {
			pending++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"reviews":       wb.Rows(models.TableReviews),
			"pending_count": pending,
		},
	})
}

// ReplaceReviews handles PUT /api/v1/reviews - bulk moderation save
// (status changes, admin replies, row removal).
var ReplaceReviews = replaceTable(models.TableReviews)

// CreateReview handles POST /api/v1/designs/:id/reviews - the public review
// form. A review lands as Pending unless an admin session submits it, in
// which case it is auto-approved. The referenced design is deliberately not
// validated; a dangling Design ID is tolerated.
func CreateReview(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Review text is required",
			},
		})
		return
	}

	if strings.TrimSpace(req.ReviewerName) == "" {
		req.ReviewerName = "Anonymous"
	}
	if req.Rating == "" {
		req.Rating = "5"
	}

	status := models.ReviewPending
	if middleware.IsAdmin(c) {
		status = models.ReviewApproved
	}

	appendRow(c, models.TableReviews, models.Row{
		"Date":          nowStamp(),
		"Design ID":     c.Param("id"),
		"Reviewer Name": req.ReviewerName,
		"Rating":        req.Rating,
		"Review":        req.Review,
		"Status":        status,
		"Admin Reply":   "",
	})
}
