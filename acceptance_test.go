package main

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jyogi-studio/jyogi-manager-api/config"
	"github.com/jyogi-studio/jyogi-manager-api/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAcceptance(t *testing.T, publicMode bool) (*gin.Engine, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	config.SetDB(db)
	imageDir := t.TempDir()
	services.InitWorkbookService()
	services.InitImageService(imageDir)
	require.NoError(t, services.GetWorkbookService().EnsureWorkbook())

	cfg := &config.Config{
		AdminPasscode: "open-sesame",
		SessionSecret: "open-sesame",
		PublicMode:    publicMode,
		ImageDir:      imageDir,
		Port:          "8080",
	}
	return setupRouter(cfg), cfg
}

func request(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var req *http.Request
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	response := map[string]interface{}{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	}
	return w, response
}

// TestShowcaseScenario covers the whole public flow: the admin uploads a
// design with a photo, a visitor filters and sorts the showcase, finds it,
// reviews it, the admin approves the review, and the share link reselects
// the design in a fresh session.
func TestShowcaseScenario(t *testing.T) {
	router, _ := setupAcceptance(t, false)

	// Admin unlock
	w, response := request(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{"passcode": "open-sesame"})
	require.Equal(t, http.StatusOK, w.Code)
	token := response["data"].(map[string]interface{})["token"].(string)

	// Admin uploads the Moon-Ring design with a photo
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("design_name", "Moon-Ring"))
	require.NoError(t, writer.WriteField("category", "Ring"))
	require.NoError(t, writer.WriteField("selling_price", "45.00"))
	require.NoError(t, writer.WriteField("public", "Yes"))
	part, err := writer.CreateFormFile("photo", "ring.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("jpeg-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/designs", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	design := created["data"].(map[string]interface{})
	designID := design["ID"].(string)
	imagePath := design["Image Path"].(string)
	require.NotEmpty(t, designID)
	assert.Equal(t, "Moon-Ring-ring.jpg", imagePath)

	// A pricier design in the same category, to exercise the sort
	w, _ = request(t, router, http.MethodPut, "/api/v1/designs", token, []map[string]string{
		{"ID": designID, "Design Name": "Moon-Ring", "Category": "Ring", "Selling Price": "45.00", "Public": "Yes"},
		{"Design Name": "Royal Ring", "Category": "Ring", "Selling Price": "120.00", "Public": "Yes"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	// Visitor filters by category and sorts price low to high
	w, response = request(t, router, http.MethodGet, "/api/v1/showcase?category=Ring&sort=price_asc", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := response["data"].(map[string]interface{})
	designs := data["designs"].([]interface{})
	require.Len(t, designs, 2)

	first := designs[0].(map[string]interface{})
	assert.Equal(t, designID, first["id"], "cheapest design sorts first")
	assert.Equal(t, false, first["image_missing"])
	shareLink := first["share_link"].(string)
	assert.Equal(t, "?page=showcase&design="+designID, shareLink)

	// Visitor leaves a review; it lands pending and stays hidden
	w, _ = request(t, router, http.MethodPost, "/api/v1/designs/"+designID+"/reviews", "", map[string]interface{}{
		"reviewer_name": "Priya",
		"rating":        "5",
		"review":        "Absolutely stunning!",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, response = request(t, router, http.MethodGet, "/api/v1/showcase?design="+designID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	entry := findDesign(t, response, designID)
	assert.Empty(t, entry["reviews"], "pending review is not public")

	// Admin approves it
	w, response = request(t, router, http.MethodGet, "/api/v1/reviews", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	reviewRows := response["data"].(map[string]interface{})["reviews"].([]interface{})
	require.Len(t, reviewRows, 1)
	reviewRow := reviewRows[0].(map[string]interface{})
	reviewRow["Status"] = "Approved"
	reviewRow["Admin Reply"] = "Thank you!"

	w, _ = request(t, router, http.MethodPut, "/api/v1/reviews", token, []interface{}{reviewRow})
	require.Equal(t, http.StatusOK, w.Code)

	// The share link round-trips in a brand new visitor session
	w, response = request(t, router, http.MethodGet, "/api/v1/showcase"+shareLink+"&sort=price_asc", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data = response["data"].(map[string]interface{})
	assert.Equal(t, designID, data["selected_id"], "share link reselects the design")

	entry = findDesign(t, response, designID)
	reviews := entry["reviews"].([]interface{})
	require.Len(t, reviews, 1)
	approved := reviews[0].(map[string]interface{})
	assert.Equal(t, "Priya", approved["reviewer_name"])
	assert.Equal(t, "Thank you!", approved["admin_reply"])
}

func findDesign(t *testing.T, response map[string]interface{}, id string) map[string]interface{} {
	t.Helper()
	data := response["data"].(map[string]interface{})
	for _, item := range data["designs"].([]interface{}) {
		entry := item.(map[string]interface{})
		if entry["id"] == id {
			return entry
		}
	}
	t.Fatalf("design %s not in showcase response", id)
	return nil
}

// TestPublicModeDeployment verifies that the public-mode flag forces
// visitors to the showcase across the real route table.
func TestPublicModeDeployment(t *testing.T) {
	router, _ := setupAcceptance(t, true)

	w, _ := request(t, router, http.MethodGet, "/api/v1/showcase", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = request(t, router, http.MethodGet, "/api/v1/orders", "", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// The admin can still unlock and reach everything
	w, response := request(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{"passcode": "open-sesame"})
	require.Equal(t, http.StatusOK, w.Code)
	token := response["data"].(map[string]interface{})["token"].(string)

	w, _ = request(t, router, http.MethodGet, "/api/v1/orders", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
