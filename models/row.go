package models

// Row is the untyped form of one record: a mapping from schema column name
// to its stored text value. Rows are what handlers exchange with the
// workbook store; the conversion to and from the typed table models happens
// exactly once, at the storage boundary.
type Row map[string]string

// Clone returns an independent copy of the row
func (r Row) Clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// IsBlank reports whether every column except ID is empty or whitespace.
// Used by the designs prune operation to drop rows abandoned by the bulk
// editor.
func (r Row) IsBlank() bool {
	for col, val := range r {
		if col == "ID" {
			continue
		}
		for _, c := range val {
			if c != ' ' && c != '\t' {
				return false
			}
		}
	}
	return true
}
