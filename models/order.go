package models

// Order represents one sale of a finished piece. Every business field is
// stored as sanitized text; Amount is parsed on demand for dashboard totals
// and never rewritten from its parsed form.
type Order struct {
	ID       string `gorm:"primaryKey" json:"id"`
	Date     string `json:"date"`
	Customer string `json:"customer"`
	Item     string `json:"item"`
	Amount   string `json:"amount"`
	Status   string `json:"status"` // Paid, Processing, Shipped
	Notes    string `json:"notes"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// ToRow converts the order to its untyped column form
func (o Order) ToRow() Row {
	return Row{
		"ID":       o.ID,
		"Date":     o.Date,
		"Customer": o.Customer,
		"Item":     o.Item,
		"Amount":   o.Amount,
		"Status":   o.Status,
		"Notes":    o.Notes,
	}
}

// FromRow fills the order from an untyped row
func (o *Order) FromRow(r Row) {
	o.ID = r["ID"]
	o.Date = r["Date"]
	o.Customer = r["Customer"]
	o.Item = r["Item"]
	o.Amount = r["Amount"]
	o.Status = r["Status"]
	o.Notes = r["Notes"]
}
