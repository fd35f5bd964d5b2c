package models

// Page describes one UI page of the application under analysis.
type Page struct {
	// Route is the normalized URL path, e.g. /projects/[id]/settings.
	Route string `yaml:"route" json:"route" validate:"required,startswith=/"`
	// Name is the human-readable page name.
	Name string `yaml:"name" json:"name"`
	// Function is a short description of what the page does.
	Function string `yaml:"function,omitempty" json:"function,omitempty"`
	// Stories lists the user story IDs the page implements.
	Stories []string `yaml:"stories,omitempty" json:"stories,omitempty"`
	// Tables lists the database tables the page touches.
	Tables []string `yaml:"tables,omitempty" json:"tables,omitempty"`
	// Roles lists explicit role codes granted access regardless of stories.
	Roles []string `yaml:"roles,omitempty" json:"roles,omitempty"`
}

// PageFile is a page marker file discovered in the route tree.
type PageFile struct {
	// Route is the normalized route derived from the file's directory.
	Route string `json:"route"`
	// Source is the slash-separated path relative to the scan base.
	Source string `json:"source"`
	// Path is the file path on disk.
	Path string `json:"-"`
}

// TestID is a data-testid attribute found in a page source.
type TestID struct {
	Value   string `json:"value"`
	Dynamic bool   `json:"dynamic,omitempty"`
}
