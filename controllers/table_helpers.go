package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jyogi-studio/jyogi-manager-api/models"
	"github.com/jyogi-studio/jyogi-manager-api/services"
)

// listTable returns a whole-table GET handler: every row of one table, in
// its normalized column shape.
func listTable(table string) gin.HandlerFunc {
	return func(c *gin.Context) {
		wb := loadWorkbook(c)
		if wb == nil {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    wb.Rows(table),
		})
	}
}

// replaceTable returns a whole-table PUT handler with bulk-editor
// semantics: the submitted rows become the table, rows left out are
// deleted, and the save re-normalizes everything on the way down.
func replaceTable(table string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var rows []models.Row
		if err := c.ShouldBindJSON(&rows); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "VALIDATION_ERROR",
					"message": "Request body must be an array of rows",
				},
			})
			return
		}

		wb := loadWorkbook(c)
		if wb == nil {
			return
		}
		wb[table] = rows

		if err := services.GetWorkbookService().SaveAll(wb); err != nil {
			respondStorageError(c, err)
			return
		}

		saved, err := services.GetWorkbookService().LoadAll()
		if err != nil {
			respondStorageError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    saved.Rows(table),
		})
	}
}

// appendRow persists one new row to the given table and responds 201 with
// the saved row (IDs and sanitization applied by the store).
func appendRow(c *gin.Context, table string, row models.Row) {
	wb := loadWorkbook(c)
	if wb == nil {
		return
	}

	// Normalize up front so the row saved and the row returned carry the
	// same generated ID.
	saved := services.NormalizeTable(table, []models.Row{row})[0]
	wb[table] = append(wb[table], saved)

	if err := services.GetWorkbookService().SaveAll(wb); err != nil {
		respondStorageError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    saved,
	})
}
