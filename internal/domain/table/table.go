package table

// Record represents a single parsed row
// Key = column name, Value = raw cell text
//
// Values are always strings; numeric or semantic interpretation is left
// to whoever consumes the record.
type Record map[string]string

// Copy creates a copy of the record to prevent mutation
func (r Record) Copy() Record {
	dup := make(Record, len(r))
	for k, v := range r {
		dup[k] = v
	}
	return dup
}

// Table holds one parsed source: its header row and its data rows.
// A Table is built once by the parser and never mutated afterwards.
type Table struct {
	Name    string
	Headers []string
	Rows    []Record
}

// HasColumn reports whether the table's header row contains name.
func (t *Table) HasColumn(name string) bool {
	for _, h := range t.Headers {
		if h == name {
			return true
		}
	}
	return false
}
