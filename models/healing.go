package models

// Healing represents one healing or spell request from a client
type Healing struct {
	ID          string `gorm:"primaryKey" json:"id"`
	Date        string `json:"date"`
	ClientName  string `json:"client_name"`
	RequestType string `json:"request_type"`
	Intention   string `json:"intention"`
	Status      string `json:"status"` // New, In Progress, Completed
	Notes       string `json:"notes"`
}

// TableName specifies the table name for the Healing model
func (Healing) TableName() string {
	return "healings"
}

// ToRow converts the healing request to its untyped column form
func (h Healing) ToRow() Row {
	return Row{
		"ID":           h.ID,
		"Date":         h.Date,
		"Client Name":  h.ClientName,
		"Request Type": h.RequestType,
		"Intention":    h.Intention,
		"Status":       h.Status,
		"Notes":        h.Notes,
	}
}

// FromRow fills the healing request from an untyped row
func (h *Healing) FromRow(r Row) {
	h.ID = r["ID"]
	h.Date = r["Date"]
	h.ClientName = r["Client Name"]
	h.RequestType = r["Request Type"]
	h.Intention = r["Intention"]
	h.Status = r["Status"]
	h.Notes = r["Notes"]
}
