package controllers

import (
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jyogi-studio/jyogi-manager-api/middleware"
	"github.com/jyogi-studio/jyogi-manager-api/models"
	"github.com/jyogi-studio/jyogi-manager-api/services"
	"github.com/jyogi-studio/jyogi-manager-api/utils"
)

// Showcase sort orders
const (
	SortNewest    = "newest"
	SortName      = "name"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
)

// ShowcaseEntry is one design as the public sees it: the design itself,
// its approved reviews, its share link, and a warning flag when the stored
// image file is missing from disk.
type ShowcaseEntry struct {
	models.Design
	ShareLink    string          `json:"share_link"`
	ImageMissing bool            `json:"image_missing"`
	Reviews      []models.Review `json:"reviews"`
}

// GetShowcase handles GET /api/v1/showcase - the public design gallery.
// Non-admin sessions see only designs whose Public flag reads "yes"
// (case-insensitive); admins see everything. Query parameters:
// q (search name/components), category, sort (newest | name | price_asc |
// price_desc), design (deep-link preselect).
func GetShowcase(c *gin.Context) {
	wb := loadWorkbook(c)
	if wb == nil {
		return
	}
	isAdmin := middleware.IsAdmin(c)

	designs := make([]models.Design, 0, len(wb.Rows(models.TableDesigns)))
	for _, row := range wb.Rows(models.TableDesigns) {
		var d models.Design
		d.FromRow(row)
		if !isAdmin && !d.IsPublic() {
			continue
		}
		designs = append(designs, d)
	}

	designs = filterDesigns(designs, c.Query("q"), c.Query("category"))
	sortDesigns(designs, c.Query("sort"))

	approved := approvedReviewsByDesign(wb.Rows(models.TableReviews))
	images := services.GetImageService()

	entries := make([]ShowcaseEntry, len(designs))
	for i, d := range designs {
		entries[i] = ShowcaseEntry{
			Design:       d,
			ShareLink:    ShareLink(d.ID),
			ImageMissing: d.HasImage() && !images.ImageExists(d.ImagePath),
			Reviews:      approved[d.ID],
		}
	}

	// Deep link: when the design parameter names a visible design, it wins;
	// otherwise the first entry is preselected.
	selectedID := ""
	if len(entries) > 0 {
		selectedID = entries[0].ID
	}
	if want := utils.Sanitize(c.Query("design")); want != "" {
		for _, e := range entries {
			if e.ID == want {
				selectedID = want
				break
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"designs":     entries,
			"selected_id": selectedID,
			"count":       len(entries),
		},
	})
}

// filterDesigns applies the sanitized search and the category filter
func filterDesigns(designs []models.Design, query, category string) []models.Design {
	q := strings.ToLower(utils.Sanitize(query))
	category = utils.Sanitize(category)

	out := make([]models.Design, 0, len(designs))
	for _, d := range designs {
		if q != "" &&
			!strings.Contains(strings.ToLower(d.DesignName), q) &&
			!strings.Contains(strings.ToLower(d.Components), q) {
			continue
		}
		if category != "" && d.Category != category {
			continue
		}
		out = append(out, d)
	}
	return out
}

// sortDesigns orders the gallery in place. Newest is a best-effort string
// sort on Created On (the stored format is lexicographically ordered);
// price sorts parse the free-text price, unparseable values sorting as zero.
func sortDesigns(designs []models.Design, order string) {
	switch order {
	case SortName:
		sort.SliceStable(designs, func(i, j int) bool {
			return designs[i].DesignName < designs[j].DesignName
		})
	case SortPriceAsc:
		sort.SliceStable(designs, func(i, j int) bool {
			return utils.ParseAmount(designs[i].SellingPrice) < utils.ParseAmount(designs[j].SellingPrice)
		})
	case SortPriceDesc:
		sort.SliceStable(designs, func(i, j int) bool {
			return utils.ParseAmount(designs[i].SellingPrice) > utils.ParseAmount(designs[j].SellingPrice)
		})
	default: // SortNewest
		sort.SliceStable(designs, func(i, j int) bool {
			return designs[i].CreatedOn > designs[j].CreatedOn
		})
	}
}

// approvedReviewsByDesign groups publicly visible reviews by design,
// newest first.
func approvedReviewsByDesign(rows []models.Row) map[string][]models.Review {
	out := make(map[string][]models.Review)
	for _, row := range rows {
		var r models.Review
		r.FromRow(row)
		if !r.IsApproved() {
			continue
		}
		out[r.DesignID] = append(out[r.DesignID], r)
	}
	for id := range out {
		reviews := out[id]
		sort.SliceStable(reviews, func(i, j int) bool {
			return reviews[i].Date > reviews[j].Date
		})
	}
	return out
}
