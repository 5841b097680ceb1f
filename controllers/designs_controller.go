package controllers

import (
	"log"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jyogi-studio/jyogi-manager-api/middleware"
	"github.com/jyogi-studio/jyogi-manager-api/models"
	"github.com/jyogi-studio/jyogi-manager-api/services"
	"github.com/jyogi-studio/jyogi-manager-api/utils"
)

// ListDesigns handles GET /api/v1/designs - the full admin design library
var ListDesigns = listTable(models.TableDesigns)

// CreateDesign handles POST /api/v1/designs - multipart form with the
// design fields and an optional photo. A failed photo write is reported in
// the response but never aborts the save; the design is stored without an
// image instead.
func CreateDesign(c *gin.Context) {
	designName := c.PostForm("design_name")
	if designName == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Design name is required",
			},
		})
		return
	}

	public := c.PostForm("public")
	if public == "" {
		public = "No"
	}

	imageFilename := models.NoImage
	imageWarning := ""
	if fileHeader, err := c.FormFile("photo"); err == nil && fileHeader != nil {
		imageFilename, imageWarning = storeUploadedPhoto(designName, fileHeader)
	}

	row := models.Row{
		"Created On":    nowStamp(),
		"Design Name":   designName,
		"Category":      c.PostForm("category"),
		"Components":    c.PostForm("components"),
		"My Cost":       c.PostForm("my_cost"),
		"Selling Price": c.PostForm("selling_price"),
		"Public":        public,
		"Image Path":    imageFilename,
		"Notes":         "",
	}

	wb := loadWorkbook(c)
	if wb == nil {
		return
	}
	saved := services.NormalizeTable(models.TableDesigns, []models.Row{row})[0]
	wb[models.TableDesigns] = append(wb[models.TableDesigns], saved)

	if err := services.GetWorkbookService().SaveAll(wb); err != nil {
		respondStorageError(c, err)
		return
	}

	body := gin.H{
		"success": true,
		"data":    saved,
	}
	if imageWarning != "" {
		body["warning"] = imageWarning
	}
	c.JSON(http.StatusCreated, body)
}

// storeUploadedPhoto validates and stores the photo, returning the stored
// filename. On any failure it returns the no-image sentinel plus a warning
// for the response.
func storeUploadedPhoto(designName string, fileHeader *multipart.FileHeader) (string, string) {
	if err := utils.ValidateImageSize(fileHeader.Size); err != nil {
		return models.NoImage, err.Error()
	}

	src, err := fileHeader.Open()
	if err != nil {
		log.Printf("Failed to open uploaded photo: %v", err)
		return models.NoImage, "Image failed to save; design stored without a photo"
	}
	defer src.Close()

	filename, err := services.GetImageService().StoreImage(designName, fileHeader.Filename, src)
	if err != nil {
		log.Printf("Failed to store photo: %v", err)
		return models.NoImage, "Image failed to save; design stored without a photo"
	}
	return filename, ""
}

// ReplaceDesigns handles PUT /api/v1/designs - bulk table editor save.
// ID, Created On and Image Path are editor-disabled columns: for rows that
// already exist, the stored values of those columns win over whatever the
// client sent.
func ReplaceDesigns(c *gin.Context) {
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

	stored := make(map[string]models.Row, len(wb.Rows(models.TableDesigns)))
	for _, row := range wb.Rows(models.TableDesigns) {
		stored[row["ID"]] = row
	}
	for _, row := range rows {
		if prev, ok := stored[row["ID"]]; ok {
			row["Created On"] = prev["Created On"]
			row["Image Path"] = prev["Image Path"]
		}
	}
	wb[models.TableDesigns] = rows

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
		"data":    saved.Rows(models.TableDesigns),
	})
}

// DeleteDesign handles DELETE /api/v1/designs/:id. Deleting a design
// cascades: every review whose Design ID matches is removed in the same
// save.
func DeleteDesign(c *gin.Context) {
	id := utils.Sanitize(c.Param("id"))

	wb := loadWorkbook(c)
	if wb == nil {
		return
	}

	if !wb.RemoveDesign(id) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DESIGN_NOT_FOUND",
				"message": "No design with that ID",
			},
		})
		return
	}

	if err := services.GetWorkbookService().SaveAll(wb); err != nil {
		respondStorageError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Design deleted",
	})
}

// PruneDesigns handles POST /api/v1/designs/prune - drops design rows whose
// non-ID fields are all blank (rows abandoned by the bulk editor).
func PruneDesigns(c *gin.Context) {
	wb := loadWorkbook(c)
	if wb == nil {
		return
	}

	designs := wb.Rows(models.TableDesigns)
	kept := make([]models.Row, 0, len(designs))
	for _, row := range designs {
		if row.IsBlank() {
			continue
		}
		kept = append(kept, row)
	}
	removed := len(designs) - len(kept)
	wb[models.TableDesigns] = kept

	if err := services.GetWorkbookService().SaveAll(wb); err != nil {
		respondStorageError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"removed": removed,
		},
	})
}

// GetDesignShareLink handles GET /api/v1/designs/:id/share - the showcase
// deep link for one design. Available to admins for any design and to
// everyone for public designs.
func GetDesignShareLink(c *gin.Context) {
	id := utils.Sanitize(c.Param("id"))

	wb := loadWorkbook(c)
	if wb == nil {
		return
	}

	row, ok := wb.Find(models.TableDesigns, id)
	if ok && !middleware.IsAdmin(c) {
		var design models.Design
		design.FromRow(row)
		ok = design.IsPublic()
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DESIGN_NOT_FOUND",
				"message": "No design with that ID",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"share_link": ShareLink(id),
		},
	})
}
