package employee

import "strings"

// EmployeeFilters are the session-only criteria for the visible subset.
// Empty fields do not filter.
type EmployeeFilters struct {
	Search string `json:"search"`
	Gender string `json:"gender"`
	Status string `json:"status"`
}

// FilterPatch is a partial update of EmployeeFilters; nil fields are left unchanged.
type FilterPatch struct {
	Search *string `json:"search,omitempty"`
	Gender *string `json:"gender,omitempty"`
	Status *string `json:"status,omitempty"`
}

// IsEmpty reports whether no criterion is set.
func (f EmployeeFilters) IsEmpty() bool {
	return f.Search == "" && f.Gender == "" && f.Status == ""
}

// Merge returns f with the fields present in p replaced.
func (f EmployeeFilters) Merge(p FilterPatch) EmployeeFilters {
	if p.Search != nil {
		f.Search = *p.Search
	}
	if p.Gender != nil {
		f.Gender = *p.Gender
	}
	if p.Status != nil {
		f.Status = *p.Status
	}
	return f
}

// Matches applies the search, gender and status predicates conjunctively.
func (f EmployeeFilters) Matches(emp Employee) bool {
	if f.Search != "" && !strings.Contains(strings.ToLower(emp.Name), strings.ToLower(f.Search)) {
		return false
	}
	if f.Gender != "" && string(emp.Gender) != f.Gender {
		return false
	}
	if f.Status != "" && (f.Status == StatusActive) != emp.Active {
		return false
	}
	return true
}

// Apply returns the matching employees in collection order.
func (f EmployeeFilters) Apply(employees []Employee) []Employee {
	result := make([]Employee, 0, len(employees))
	for _, emp := range employees {
		if f.Matches(emp) {
			result = append(result, emp)
		}
	}
	return result
}
