package employee

import (
	"context"
)

// EmployeeService owns the employee collection and the active filters.
// Mutations persist the whole collection before returning; operations on an
// unknown id are no-ops.
type EmployeeService interface {
	// Load reads the persisted collection, seeding the sample records when none is stored.
	Load(ctx context.Context)

	Add(ctx context.Context, data EmployeeFormData) (Employee, error)
	Update(ctx context.Context, id string, data EmployeeFormData)
	Delete(ctx context.Context, id string)
	ToggleStatus(ctx context.Context, id string)

	// SetFilters merges the given fields into the current filters. Filters are not persisted.
	SetFilters(patch FilterPatch)
	ClearFilters()
	Filters() EmployeeFilters

	GetByID(id string) (Employee, bool)
	Employees() []Employee

	// FilteredEmployees and Stats are recomputed on every call.
	FilteredEmployees() []Employee
	Stats() Stats
}
