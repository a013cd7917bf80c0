package testutil

import (
	"github.com/leengari/sheetmerge/internal/domain/table"
)

// CreateLoadsTable creates a loads table with sample data for merge tests
func CreateLoadsTable() *table.Table {
	return &table.Table{
		Name:    "loads",
		Headers: []string{"load_id", "origin", "destination"},
		Rows: []table.Record{
			{"load_id": "L1", "origin": "ATL", "destination": "DFW"},
			{"load_id": "L2", "origin": "ORD", "destination": "DEN"},
			{"load_id": "L3", "origin": "SEA", "destination": "PDX"},
		},
	}
}

// CreateQuotesTable creates a quotes table with sample data for merge tests.
// L1 has three quotes across two carriers, L2 has one, L3 has none.
func CreateQuotesTable() *table.Table {
	return &table.Table{
		Name:    "quotes",
		Headers: []string{"quote_id", "load_id", "carrier_id", "rate"},
		Rows: []table.Record{
			{"quote_id": "Q1", "load_id": "L1", "carrier_id": "C1", "rate": "1200.00"},
			{"quote_id": "Q2", "load_id": "L1", "carrier_id": "C2", "rate": "980.50"},
			{"quote_id": "Q3", "load_id": "L1", "carrier_id": "C2", "rate": "1200.00"},
			{"quote_id": "Q4", "load_id": "L2", "carrier_id": "C3", "rate": "640.00"},
		},
	}
}

// CreateCarriersTable creates a carriers table with sample data for merge tests
func CreateCarriersTable() *table.Table {
	return &table.Table{
		Name:    "carriers",
		Headers: []string{"carrier_id", "name"},
		Rows: []table.Record{
			{"carrier_id": "C1", "name": "Acme Freight"},
			{"carrier_id": "C2", "name": "Blue Line"},
			{"carrier_id": "C3", "name": "Cascade Haulage"},
		},
	}
}
