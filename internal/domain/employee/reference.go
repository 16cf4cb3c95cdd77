package employee

import "github.com/cmlabs-hris/employee-dashboard-go/internal/pkg/validator"

// ReferenceData holds the fixed enumerations the forms choose from.
type ReferenceData struct {
	Genders []Gender `json:"genders" yaml:"genders"`
	Regions []string `json:"regions" yaml:"regions"`
}

func (r ReferenceData) HasGender(g Gender) bool {
	for _, gender := range r.Genders {
		if gender == g {
			return true
		}
	}
	return false
}

func (r ReferenceData) HasRegion(region string) bool {
	return validator.IsInSlice(region, r.Regions)
}
