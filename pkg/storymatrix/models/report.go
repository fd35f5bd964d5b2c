package models

// Diff is the result of reconciling source routes against recorded routes.
type Diff struct {
	// MissingInCode lists routes recorded in the workbook but absent from the source tree.
	MissingInCode []string `json:"missing_in_code"`
	// NewInCode lists routes present in the source tree but not recorded.
	NewInCode []string `json:"new_in_code"`
}

// Empty reports whether both sides agree.
func (d Diff) Empty() bool {
	return len(d.MissingInCode) == 0 && len(d.NewInCode) == 0
}

// Mark is a marker written into a (route, column) intersection.
type Mark struct {
	Sheet  string `json:"sheet"`
	Route  string `json:"route"`
	Target string `json:"target"`
	Cell   string `json:"cell"`
}

// SyncResult summarizes a route sync on one sheet.
type SyncResult struct {
	Sheet   string   `json:"sheet"`
	Deleted []string `json:"deleted,omitempty"`
	Added   []string `json:"added,omitempty"`
	Kept    int      `json:"kept"`
	Skipped bool     `json:"skipped,omitempty"`
}

// RoleMismatch describes a route whose role matrix row disagrees with the role sheets.
type RoleMismatch struct {
	Route    string   `json:"route"`
	Expected []string `json:"expected"`
	Actual   []string `json:"actual"`
	Missing  []string `json:"missing,omitempty"`
	Extra    []string `json:"extra,omitempty"`
}

// RoleReport is the outcome of verifying the role matrix.
type RoleReport struct {
	Total      int            `json:"total"`
	Correct    int            `json:"correct"`
	Mismatches []RoleMismatch `json:"mismatches,omitempty"`
}

// StoryCount compares story counts for one role between the BA document and the workbook.
type StoryCount struct {
	Role     string `json:"role"`
	Document int    `json:"document"`
	Sheet    int    `json:"sheet"`
}

// Match reports whether both counts agree.
func (s StoryCount) Match() bool {
	return s.Document == s.Sheet
}
