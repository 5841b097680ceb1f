package models

// Supplier represents one material source and its cost terms
type Supplier struct {
	ID           string `gorm:"primaryKey" json:"id"`
	SupplierName string `json:"supplier_name"`
	Material     string `json:"material"`
	PricePerUnit string `json:"price_per_unit"`
	MOQ          string `json:"moq"`
	ContactInfo  string `json:"contact_info"`
	Notes        string `json:"notes"`
}

// TableName specifies the table name for the Supplier model
func (Supplier) TableName() string {
	return "suppliers"
}

// ToRow converts the supplier to its untyped column form
func (s Supplier) ToRow() Row {
	return Row{
		"ID":             s.ID,
		"Supplier Name":  s.SupplierName,
		"Material":       s.Material,
		"Price Per Unit": s.PricePerUnit,
		"MOQ":            s.MOQ,
		"Contact Info":   s.ContactInfo,
		"Notes":          s.Notes,
	}
}

// FromRow fills the supplier from an untyped row
func (s *Supplier) FromRow(r Row) {
	s.ID = r["ID"]
	s.SupplierName = r["Supplier Name"]
	s.Material = r["Material"]
	s.PricePerUnit = r["Price Per Unit"]
	s.MOQ = r["MOQ"]
	s.ContactInfo = r["Contact Info"]
	s.Notes = r["Notes"]
}
