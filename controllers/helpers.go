package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jyogi-studio/jyogi-manager-api/services"
)

// timestampLayout matches the Created On format the workbook has always used
const timestampLayout = "2006-01-02 15:04"

// dateLayout is the plain date format used by form defaults
const dateLayout = "2006-01-02"

func nowStamp() string {
	return time.Now().Format(timestampLayout)
}

func todayStamp() string {
	return time.Now().Format(dateLayout)
}

// ShareLink builds the showcase deep link for a design. It round-trips
// through the showcase's design query parameter.
func ShareLink(designID string) string {
	return fmt.Sprintf("?page=showcase&design=%s", designID)
}

// respondStorageError maps workbook failures onto the error envelope.
// A locked workbook gets its own code so the client can tell the user to
// close the other program; everything else is a generic storage failure.
func respondStorageError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrStorageLocked) {
		c.JSON(http.StatusConflict, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "STORAGE_LOCKED",
				"message": services.ErrStorageLocked.Error(),
			},
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "STORAGE_ERROR",
			"message": "Failed to save data",
		},
	})
}

// loadWorkbook loads all tables, reporting the (rare) failure as an envelope.
// Returns nil after writing the response when loading failed.
func loadWorkbook(c *gin.Context) services.Workbook {
	wb, err := services.GetWorkbookService().LoadAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "STORAGE_ERROR",
				"message": "Failed to load data",
			},
		})
		return nil
	}
	return wb
}
