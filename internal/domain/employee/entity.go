package employee

import "time"

type Employee struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Gender    Gender    `json:"gender"`
	DOB       string    `json:"dob"`
	State     string    `json:"state"`
	Image     string    `json:"image"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Gender string

const (
	Male   Gender = "Male"
	Female Gender = "Female"
	Other  Gender = "Other"
)

// Status filter values
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// StatusLabel returns the display label for the active flag.
func (e Employee) StatusLabel() string {
	if e.Active {
		return "Active"
	}
	return "Inactive"
}

// Apply copies the editable fields of data onto e.
func (e *Employee) Apply(data EmployeeFormData) {
	e.Name = data.Name
	e.Gender = data.Gender
	e.DOB = data.DOB
	e.State = data.State
	e.Image = data.Image
	e.Active = data.Active
}

// Stats are computed over the whole collection, never the filtered view.
type Stats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}

// ComputeStats counts employees by status.
func ComputeStats(employees []Employee) Stats {
	stats := Stats{Total: len(employees)}
	for _, emp := range employees {
		if emp.Active {
			stats.Active++
		} else {
			stats.Inactive++
		}
	}
	return stats
}
