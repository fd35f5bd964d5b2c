package models

// WorkbookData represents a workbook snapshot with sheets in workbook order.
type WorkbookData struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets lists sheet snapshots in tab order.
	Sheets []SheetData `json:"sheets"`
}

// Sheet returns the named sheet snapshot.
func (w *WorkbookData) Sheet(name string) (SheetData, bool) {
	for _, s := range w.Sheets {
		if s.Name == name {
			return s, true
		}
	}
	return SheetData{}, false
}
