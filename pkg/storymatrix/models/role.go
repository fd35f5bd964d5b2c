package models

// Epic groups user stories of one role.
type Epic struct {
	Name    string   `yaml:"name" json:"name" validate:"required"`
	Stories []string `yaml:"stories" json:"stories" validate:"dive,required"`
}

// Role describes one role sheet of the story matrix.
type Role struct {
	// Sheet is the workbook sheet holding the role's matrix, e.g. "1. EMP".
	Sheet string `yaml:"sheet" json:"sheet" validate:"required"`
	// Code is the short role code used in story IDs and the role matrix, e.g. "EMP".
	Code string `yaml:"code" json:"code" validate:"required"`
	// Name is the display name.
	Name string `yaml:"name" json:"name"`
	// Epics lists the role's epics in column order.
	Epics []Epic `yaml:"epics" json:"epics" validate:"dive"`
}

// Stories returns every story ID of the role in column order.
func (r Role) Stories() []string {
	var ids []string
	for _, e := range r.Epics {
		ids = append(ids, e.Stories...)
	}
	return ids
}

// Module groups pages for the tester checklist.
type Module struct {
	Name        string   `yaml:"name" json:"name" validate:"required"`
	Description string   `yaml:"description" json:"description"`
	Routes      []string `yaml:"routes" json:"routes"`
}
