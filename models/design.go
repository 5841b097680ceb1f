package models

import "strings"

// NoImage is the sentinel Image Path value marking a design without a photo
const NoImage = "None"

// Design represents one catalog entry in the design library. Costs and the
// selling price are free text (parsed on demand for sorting); Public is a
// free-text flag compared case-insensitively against "yes".
type Design struct {
	ID           string `gorm:"primaryKey" json:"id"`
	CreatedOn    string `json:"created_on"`
	DesignName   string `json:"design_name"`
	Category     string `json:"category"`
	Components   string `json:"components"`
	MyCost       string `json:"my_cost"`
	SellingPrice string `json:"selling_price"`
	Public       string `json:"public"`
	ImagePath    string `json:"image_path"`
	Notes        string `json:"notes"`
}

// TableName specifies the table name for the Design model
func (Design) TableName() string {
	return "designs"
}

// IsPublic reports whether the design is publicly visible
func (d Design) IsPublic() bool {
	return strings.ToLower(d.Public) == "yes"
}

// HasImage reports whether the design references an uploaded photo
func (d Design) HasImage() bool {
	return d.ImagePath != "" && d.ImagePath != NoImage
}

// ToRow converts the design to its untyped column form
func (d Design) ToRow() Row {
	return Row{
		"ID":            d.ID,
		"Created On":    d.CreatedOn,
		"Design Name":   d.DesignName,
		"Category":      d.Category,
		"Components":    d.Components,
		"My Cost":       d.MyCost,
		"Selling Price": d.SellingPrice,
		"Public":        d.Public,
		"Image Path":    d.ImagePath,
		"Notes":         d.Notes,
	}
}

// FromRow fills the design from an untyped row
func (d *Design) FromRow(r Row) {
	d.ID = r["ID"]
	d.CreatedOn = r["Created On"]
	d.DesignName = r["Design Name"]
	d.Category = r["Category"]
	d.Components = r["Components"]
	d.MyCost = r["My Cost"]
	d.SellingPrice = r["Selling Price"]
	d.Public = r["Public"]
	d.ImagePath = r["Image Path"]
	d.Notes = r["Notes"]
}
