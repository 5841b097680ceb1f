package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jyogi-studio/jyogi-manager-api/models"
	"github.com/jyogi-studio/jyogi-manager-api/utils"
)

// GetDashboard handles GET /api/v1/dashboard - business totals across the
// workbook. The paid total is best-effort: amounts are free text and
// anything unparseable counts as zero.
func GetDashboard(c *gin.Context) {
	wb := loadWorkbook(c)
	if wb == nil {
		return
	}

	paidTotal := 0.0
	for _, row := range wb.Rows(models.TableOrders) {
		if row["Status"] == "Paid" {
			paidTotal += utils.ParseAmount(row["Amount"])
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"total_orders":   len(wb.Rows(models.TableOrders)),
			"total_healings": len(wb.Rows(models.TableHealings)),
			"total_designs":  len(wb.Rows(models.TableDesigns)),
			"paid_total":     fmt.Sprintf("%.2f", paidTotal),
		},
	})
}
