package models

// SheetData represents a read-only snapshot of one sheet.
type SheetData struct {
	// Name is the sheet name.
	Name string `json:"name"`
	// Rows contains non-empty rows in sheet order.
	Rows []CellRow `json:"rows,omitempty"`
	// Width is the widest row in columns.
	Width int `json:"width"`
}
