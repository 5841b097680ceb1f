package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jyogi-studio/jyogi-manager-api/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUploadedImage_ServesStoredPhoto(t *testing.T) {
	cfg := setupControllerTest(t)
	router := testRouter(cfg)

	name, err := services.GetImageService().StoreImage("Moon Ring", "ring.jpg", strings.NewReader("jpeg-bytes"))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/uploads/"+name, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/jpeg", w.Header().Get("Content-Type"))
	assert.Equal(t, "jpeg-bytes", w.Body.String())
}

func TestGetUploadedImage_NotFound(t *testing.T) {
	cfg := setupControllerTest(t)
	router := testRouter(cfg)

	w, response := doJSON(t, router, http.MethodGet, "/api/v1/uploads/ghost.png", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	errObj := response["error"].(map[string]interface{})
	assert.Equal(t, "FILE_NOT_FOUND", errObj["code"])
}

func TestGetUploadedImage_RejectsTraversalAndBadTypes(t *testing.T) {
	cfg := setupControllerTest(t)
	router := testRouter(cfg)

	tests := []struct {
		name     string
		filename string
	}{
		{"dot-dot prefix", "..secrets.png"},
		{"dot-dot inside", "a..b.png"},
		{"non-image extension", "notes.txt"},
		{"no extension", "README"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := doJSON(t, router, http.MethodGet, "/api/v1/uploads/"+tt.filename, "", nil)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}
