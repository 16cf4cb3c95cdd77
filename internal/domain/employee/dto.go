package employee

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/cmlabs-hris/employee-dashboard-go/internal/pkg/validator"
)

const maxNameLength = 255

// EmployeeFormData carries the editable fields of an employee.
type EmployeeFormData struct {
	Name   string `json:"name"`
	Gender Gender `json:"gender"`
	DOB    string `json:"dob"`
	State  string `json:"state"`
	Image  string `json:"image"`
	Active bool   `json:"active"`
}

func (r *EmployeeFormData) Validate(ref ReferenceData, today time.Time) error {
	var errs validator.ValidationErrors

	// Name
	if validator.IsEmpty(r.Name) {
		errs.Add("name", "name is required")
	} else if utf8.RuneCountInString(r.Name) > maxNameLength {
		errs.Add("name", "name must not exceed 255 characters")
	}

	// Gender
	if !ref.HasGender(r.Gender) {
		errs.Add("gender", ErrInvalidGender.Error())
	}

	// Date of birth
	if validator.IsEmpty(r.DOB) {
		errs.Add("dob", "dob is required")
	} else if dob, ok := validator.IsValidDate(r.DOB); !ok {
		errs.Add("dob", "dob must be in YYYY-MM-DD format")
	} else if validator.IsFutureDate(dob, today) {
		errs.Add("dob", ErrFutureDateNotAllowed.Error())
	}

	// State
	if validator.IsEmpty(r.State) {
		errs.Add("state", "state is required")
	} else if !ref.HasRegion(r.State) {
		errs.Add("state", ErrInvalidState.Error())
	}

	// Image is optional
	if r.Image != "" && !validator.IsDataImageURI(r.Image) {
		errs.Add("image", "image must be a base64 encoded data:image URI")
	}

	return errs.Err()
}

// Normalize maps the "all" choice of the dashboard selects to an empty criterion.
func (p *FilterPatch) Normalize() {
	for _, field := range []*string{p.Gender, p.Status} {
		if field != nil && strings.EqualFold(*field, "all") {
			*field = ""
		}
	}
}

func (p *FilterPatch) Validate(ref ReferenceData) error {
	var errs validator.ValidationErrors

	if p.Gender != nil && *p.Gender != "" && !ref.HasGender(Gender(*p.Gender)) {
		errs.Add("gender", ErrInvalidGender.Error())
	}
	if p.Status != nil && *p.Status != "" && *p.Status != StatusActive && *p.Status != StatusInactive {
		errs.Add("status", ErrInvalidStatusFilter.Error())
	}

	return errs.Err()
}

type ListEmployeeResponse struct {
	Employees []Employee      `json:"employees"`
	Filters   EmployeeFilters `json:"filters"`
	Stats     Stats           `json:"stats"`
}
