package models

// Reading represents one tarot or astrology reading for a client
type Reading struct {
	ID          string `gorm:"primaryKey" json:"id"`
	Date        string `json:"date"`
	ClientName  string `json:"client_name"`
	ReadingType string `json:"reading_type"`
	Question    string `json:"question"`
	Notes       string `json:"notes"`
	Status      string `json:"status"` // New, In Progress, Completed
}

// TableName specifies the table name for the Reading model
func (Reading) TableName() string {
	return "readings"
}

// ToRow converts the reading to its untyped column form
func (r Reading) ToRow() Row {
	return Row{
		"ID":           r.ID,
		"Date":         r.Date,
		"Client Name":  r.ClientName,
		"Reading Type": r.ReadingType,
		"Question":     r.Question,
		"Notes":        r.Notes,
		"Status":       r.Status,
	}
}

// FromRow fills the reading from an untyped row
func (r *Reading) FromRow(row Row) {
	r.ID = row["ID"]
	r.Date = row["Date"]
	r.ClientName = row["Client Name"]
	r.ReadingType = row["Reading Type"]
	r.Question = row["Question"]
	r.Notes = row["Notes"]
	r.Status = row["Status"]
}
