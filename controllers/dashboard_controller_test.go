package controllers

import (
	"net/http"
	"testing"

	"github.com/jyogi-studio/jyogi-manager-api/models"
	"github.com/jyogi-studio/jyogi-manager-api/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDashboard(t *testing.T) {
	cfg := setupControllerTest(t)
	router := testRouter(cfg)

	seedWorkbook(t, func(wb services.Workbook) {
		wb[models.TableOrders] = []models.Row{
			{"ID": "order-1", "Customer": "Maya", "Amount": "1,234.50", "Status": "Paid"},
			{"ID": "order-2", "Customer": "Dev", "Amount": "45.00", "Status": "Paid"},
			{"ID": "order-3", "Customer": "Ira", "Amount": "99.99", "Status": "Processing"},
			{"ID": "order-4", "Customer": "Sam", "Amount": "not-a-number", "Status": "Paid"},
		}
		wb[models.TableHealings] = []models.Row{
			{"ID": "heal-1", "Client Name": "Ira"},
		}
		wb[models.TableDesigns] = []models.Row{
			{"ID": "design-1", "Design Name": "Moon Ring"},
			{"ID": "design-2", "Design Name": "Sun Cuff"},
		}
	})

	w, response := doJSON(t, router, http.MethodGet, "/api/v1/dashboard", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := response["data"].(map[string]interface{})
	assert.Equal(t, float64(4), data["total_orders"])
	assert.Equal(t, float64(1), data["total_healings"])
	assert.Equal(t, float64(2), data["total_designs"])
	assert.Equal(t, "1279.50", data["paid_total"], "unparseable and unpaid amounts contribute nothing")
}

func TestGetDashboard_EmptyWorkbook(t *testing.T) {
	cfg := setupControllerTest(t)
	router := testRouter(cfg)

	w, response := doJSON(t, router, http.MethodGet, "/api/v1/dashboard", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := response["data"].(map[string]interface{})
	assert.Equal(t, float64(0), data["total_orders"])
	assert.Equal(t, "0.00", data["paid_total"])
}
