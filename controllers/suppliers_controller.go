package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jyogi-studio/jyogi-manager-api/config"
	"github.com/jyogi-studio/jyogi-manager-api/models"
	"github.com/jyogi-studio/jyogi-manager-api/services"
	"github.com/jyogi-studio/jyogi-manager-api/utils"
)

// CreateSupplierRequest represents the add-supplier form
type CreateSupplierRequest struct {
	SupplierName string `json:"supplier_name" binding:"required"`
	Material     string `json:"material"`
	PricePerUnit string `json:"price_per_unit"`
	MOQ          string `json:"moq"`
	ContactInfo  string `json:"contact_info"`
	Notes        string `json:"notes"`
}

// ListSuppliers handles GET /api/v1/suppliers. An optional ?supplier=
// query narrows the result to one supplier name (sanitized before use).
func ListSuppliers(c *gin.Context) {
	wb := loadWorkbook(c)
	if wb == nil {
		return
	}

	rows := wb.Rows(models.TableSuppliers)
	if filter := utils.Sanitize(c.Query("supplier")); filter != "" {
		matched := make([]models.Row, 0, len(rows))
		for _, row := range rows {
			if row["Supplier Name"] == filter {
				matched = append(matched, row)
			}
		}
		rows = matched
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    rows,
	})
}

// CreateSupplier handles POST /api/v1/suppliers - records a new material source
func CreateSupplier(c *gin.Context) {
	var req CreateSupplierRequest
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

	appendRow(c, models.TableSuppliers, models.Row{
		"Supplier Name":  req.SupplierName,
		"Material":       req.Material,
		"Price Per Unit": req.PricePerUnit,
		"MOQ":            req.MOQ,
		"Contact Info":   req.ContactInfo,
		"Notes":          req.Notes,
	})
}

// ReplaceSuppliers handles PUT /api/v1/suppliers. The plain form replaces
// the whole table (bulk editor). With ?merge=true the submitted rows are a
// patch from a filtered view: rows are matched into the full table by ID,
// so a partial save can never drop the suppliers that were filtered out.
func ReplaceSuppliers(c *gin.Context) {
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

	if config.ParseBool(c.Query("merge"), false) {
		wb[models.TableSuppliers] = mergeRowsByID(wb.Rows(models.TableSuppliers), rows)
	} else {
		wb[models.TableSuppliers] = rows
	}

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
		"data":    saved.Rows(models.TableSuppliers),
	})
}

// mergeRowsByID patches the base table with the edited rows, by ID.
// Edited rows whose ID is not present in the base table are ignored,
// matching the filtered-view contract: a partial view can update rows but
// never add or remove them.
func mergeRowsByID(base, patch []models.Row) []models.Row {
	byID := make(map[string]models.Row, len(patch))
	for _, row := range patch {
		if id := row["ID"]; id != "" {
			byID[id] = row
		}
	}

	merged := make([]models.Row, len(base))
	for i, row := range base {
		if edited, ok := byID[row["ID"]]; ok {
			merged[i] = edited
		} else {
			merged[i] = row
		}
	}
	return merged
}
