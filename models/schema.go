package models

// Table names, as they appear in the workbook.
const (
	TableOrders    = "Orders"
	TableHealings  = "Healings"
	TableDesigns   = "Designs"
	TableSuppliers = "Suppliers"
	TableReviews   = "Reviews"
	TableReadings  = "Readings"
)

// TableNames lists every workbook table in its canonical order.
var TableNames = []string{
	TableOrders,
	TableHealings,
	TableDesigns,
	TableSuppliers,
	TableReviews,
	TableReadings,
}

// schema is the fixed column list of each table, in storage order.
// It is never mutated at runtime.
var schema = map[string][]string{
	TableOrders:    {"ID", "Date", "Customer", "Item", "Amount", "Status", "Notes"},
	TableHealings:  {"ID", "Date", "Client Name", "Request Type", "Intention", "Status", "Notes"},
	TableDesigns:   {"ID", "Created On", "Design Name", "Category", "Components", "My Cost", "Selling Price", "Public", "Image Path", "Notes"},
	TableSuppliers: {"ID", "Supplier Name", "Material", "Price Per Unit", "MOQ", "Contact Info", "Notes"},
	TableReviews:   {"ID", "Date", "Design ID", "Reviewer Name", "Rating", "Review", "Status", "Admin Reply"},
	TableReadings:  {"ID", "Date", "Client Name", "Reading Type", "Question", "Notes", "Status"},
}

// ColumnsOf returns the ordered column list of the given table, or nil for
// an unknown table. The returned slice is a copy; callers may modify it.
func ColumnsOf(table string) []string {
	cols, ok := schema[table]
	if !ok {
		return nil
	}
	out := make([]string, len(cols))
	copy(out, cols)
	return out
}

// IsTable reports whether name is a known workbook table
func IsTable(name string) bool {
	_, ok := schema[name]
	return ok
}
