package controllers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jyogi-studio/jyogi-manager-api/config"
	"github.com/jyogi-studio/jyogi-manager-api/middleware"
	"github.com/jyogi-studio/jyogi-manager-api/models"
	"github.com/jyogi-studio/jyogi-manager-api/services"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupControllerTest wires a fresh in-memory workbook and a temp image
// directory, returning the config used by the route table.
func setupControllerTest(t *testing.T) *config.Config {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	config.SetDB(db)
	services.InitWorkbookService()
	services.InitImageService(t.TempDir())

	return &config.Config{
		AdminPasscode: "open-sesame",
		SessionSecret: "open-sesame",
	}
}

// testRouter mirrors the production route table for controller tests
func testRouter(cfg *config.Config) *gin.Engine {
	router := gin.New()

	v1 := router.Group("/api/v1")
	v1.Use(middleware.AdminSession(cfg), middleware.PublicMode(cfg))
	{
		v1.POST("/auth/login", Login(cfg))
		v1.POST("/auth/logout", Logout)

		v1.GET("/dashboard", GetDashboard)

		v1.GET("/orders", ListOrders)
		v1.POST("/orders", CreateOrder)
		v1.PUT("/orders", ReplaceOrders)

		v1.GET("/healings", ListHealings)
		v1.POST("/healings", CreateHealing)
		v1.PUT("/healings", ReplaceHealings)

		v1.GET("/readings", ListReadings)
		v1.POST("/readings", CreateReading)
		v1.PUT("/readings", ReplaceReadings)

		v1.GET("/suppliers", ListSuppliers)
		v1.POST("/suppliers", CreateSupplier)
		v1.PUT("/suppliers", ReplaceSuppliers)

		designs := v1.Group("/designs")
		{
			designs.GET("/:id/share", GetDesignShareLink)
			designs.POST("/:id/reviews", CreateReview)

			adminDesigns := designs.Group("", middleware.RequireAdmin())
			{
				adminDesigns.GET("", ListDesigns)
				adminDesigns.POST("", CreateDesign)
				adminDesigns.PUT("", ReplaceDesigns)
				adminDesigns.POST("/prune", PruneDesigns)
				adminDesigns.DELETE("/:id", DeleteDesign)
			}
		}

		reviews := v1.Group("/reviews", middleware.RequireAdmin())
		{
			reviews.GET("", ListReviews)
			reviews.PUT("", ReplaceReviews)
		}

		v1.GET("/showcase", GetShowcase)
		v1.GET("/uploads/:filename", GetUploadedImage)
	}

	return router
}

// adminToken issues a valid admin session for the test config
func adminToken(t *testing.T, cfg *config.Config) string {
	t.Helper()
	token, err := middleware.IssueAdminSession(cfg)
	require.NoError(t, err)
	return token
}

// doJSON performs a JSON request, optionally as admin, and decodes the
// envelope.
func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	response := map[string]interface{}{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response), "response should be valid JSON: %s", w.Body.String())
	}
	return w, response
}

// doMultipart posts a multipart form, optionally with one file part
func doMultipart(t *testing.T, router *gin.Engine, path, token string, fields map[string]string, fileField, filename string, fileBytes []byte) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	if fileField != "" {
		part, err := writer.CreateFormFile(fileField, filename)
		require.NoError(t, err)
		_, err = part.Write(fileBytes)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	response := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return w, response
}

// seedWorkbook loads, applies the mutation, and saves
func seedWorkbook(t *testing.T, mutate func(services.Workbook)) {
	t.Helper()
	svc := services.GetWorkbookService()
	wb, err := svc.LoadAll()
	require.NoError(t, err)
	mutate(wb)
	require.NoError(t, svc.SaveAll(wb))
}

// tableRows reloads one table straight from the store
func tableRows(t *testing.T, table string) []models.Row {
	t.Helper()
	wb, err := services.GetWorkbookService().LoadAll()
	require.NoError(t, err)
	return wb.Rows(table)
}
