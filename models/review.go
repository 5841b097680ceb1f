package models

import "strings"

// Review statuses. Stored as free text; only "approved" (case-insensitive)
// makes a review publicly visible.
const (
	ReviewPending  = "Pending"
	ReviewApproved = "Approved"
)

// Review represents one customer review of a design. DesignID references
// Designs.ID but is not enforced at write time; the only coupling is the
// cascading delete when a design is removed.
type Review struct {
	ID           string `gorm:"primaryKey" json:"id"`
	Date         string `json:"date"`
	DesignID     string `json:"design_id"`
	ReviewerName string `json:"reviewer_name"`
	Rating       string `json:"rating"`
	Review       string `json:"review"`
	Status       string `json:"status"`
	AdminReply   string `json:"admin_reply"`
}

// TableName specifies the table name for the Review model
func (Review) TableName() string {
	return "reviews"
}

// IsApproved reports whether the review is publicly visible
func (r Review) IsApproved() bool {
	return strings.ToLower(r.Status) == "approved"
}

// ToRow converts the review to its untyped column form
func (r Review) ToRow() Row {
	return Row{
		"ID":            r.ID,
		"Date":          r.Date,
		"Design ID":     r.DesignID,
		"Reviewer Name": r.ReviewerName,
		"Rating":        r.Rating,
		"Review":        r.Review,
		"Status":        r.Status,
		"Admin Reply":   r.AdminReply,
	}
}

// FromRow fills the review from an untyped row
func (r *Review) FromRow(row Row) {
	r.ID = row["ID"]
	r.Date = row["Date"]
	r.DesignID = row["Design ID"]
	r.ReviewerName = row["Reviewer Name"]
	r.Rating = row["Rating"]
	r.Review = row["Review"]
	r.Status = row["Status"]
	r.AdminReply = row["Admin Reply"]
}
