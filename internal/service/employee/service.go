package employee

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/cmlabs-hris/employee-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/employee-dashboard-go/internal/fixtures"
	"github.com/cmlabs-hris/employee-dashboard-go/internal/pkg/kvstore"
)

// EmployeeServiceImpl is the single owner of the employee collection. Every
// mutation runs under mu and writes the full collection back before returning.
type EmployeeServiceImpl struct {
	mu        sync.Mutex
	store     kvstore.Store
	now       func() time.Time
	ids       *IDGenerator
	employees []employee.Employee
	filters   employee.EmployeeFilters
}

func NewEmployeeServiceImpl(store kvstore.Store, now func() time.Time, ids *IDGenerator) *EmployeeServiceImpl {
	if now == nil {
		now = time.Now
	}
	if ids == nil {
		ids = NewIDGenerator(nil)
	}
	return &EmployeeServiceImpl{
		store: store,
		now:   now,
		ids:   ids,
	}
}

// NewEmployeeService builds the store and loads the persisted collection.
func NewEmployeeService(ctx context.Context, store kvstore.Store) employee.EmployeeService {
	s := NewEmployeeServiceImpl(store, time.Now, NewIDGenerator(nil))
	s.Load(ctx)
	return s
}

// persist writes the whole collection. Callers hold mu.
func (s *EmployeeServiceImpl) persist(ctx context.Context) {
	kvstore.SetItem(ctx, s.store, kvstore.KeyEmployees, s.employees)
}

func (s *EmployeeServiceImpl) indexOf(id string) int {
	for i := range s.employees {
		if s.employees[i].ID == id {
			return i
		}
	}
	return -1
}

// touch returns the new updatedAt, never earlier than createdAt.
func (s *EmployeeServiceImpl) touch(emp employee.Employee) time.Time {
	now := s.now().UTC()
	if now.Before(emp.CreatedAt) {
		return emp.CreatedAt
	}
	return now
}

// Load implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved := kvstore.GetItem[[]employee.Employee](ctx, s.store, kvstore.KeyEmployees, nil)
	if len(saved) == 0 {
		s.employees = fixtures.SampleEmployees(s.now().UTC())
		s.persist(ctx)
		slog.Info("Seeded sample employees", "count", len(s.employees))
		return
	}

	s.employees = saved
	slog.Info("Loaded employees", "count", len(s.employees))
}

// Add implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Add(ctx context.Context, data employee.EmployeeFormData) (employee.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inUse := make(map[string]struct{}, len(s.employees))
	for _, emp := range s.employees {
		inUse[emp.ID] = struct{}{}
	}
	id, err := s.ids.Next(func(id string) bool {
		_, ok := inUse[id]
		return ok
	})
	if err != nil {
		return employee.Employee{}, err
	}

	now := s.now().UTC()
	newEmployee := employee.Employee{
		ID:        id,
		CreatedAt: now,
		UpdatedAt: now,
	}
	newEmployee.Apply(data)

	s.employees = append(s.employees, newEmployee)
	s.persist(ctx)
	return newEmployee, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, id string, data employee.EmployeeFormData) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		slog.Debug("Update skipped, employee not found", "id", id)
		return
	}

	s.employees[i].Apply(data)
	s.employees[i].UpdatedAt = s.touch(s.employees[i])
	s.persist(ctx)
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		slog.Debug("Delete skipped, employee not found", "id", id)
		return
	}

	remaining := make([]employee.Employee, 0, len(s.employees)-1)
	remaining = append(remaining, s.employees[:i]...)
	remaining = append(remaining, s.employees[i+1:]...)
	s.employees = remaining
	s.persist(ctx)
}

// ToggleStatus implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ToggleStatus(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		slog.Debug("Toggle skipped, employee not found", "id", id)
		return
	}

	s.employees[i].Active = !s.employees[i].Active
	s.employees[i].UpdatedAt = s.touch(s.employees[i])
	s.persist(ctx)
}

// SetFilters implements employee.EmployeeService.
func (s *EmployeeServiceImpl) SetFilters(patch employee.FilterPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = s.filters.Merge(patch)
}

// ClearFilters implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ClearFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = employee.EmployeeFilters{}
}

// Filters implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Filters() employee.EmployeeFilters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

// GetByID implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetByID(id string) (employee.Employee, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return employee.Employee{}, false
	}
	return s.employees[i], true
}

// Employees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Employees() []employee.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]employee.Employee(nil), s.employees...)
}

// FilteredEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) FilteredEmployees() []employee.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters.Apply(s.employees)
}

// Stats implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Stats() employee.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return employee.ComputeStats(s.employees)
}
