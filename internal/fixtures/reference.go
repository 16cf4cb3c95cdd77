package fixtures

import (
	"fmt"
	"os"

	"github.com/cmlabs-hris/employee-dashboard-go/internal/domain/employee"
	"gopkg.in/yaml.v3"
)

// LoadReferenceData returns the built-in enumerations, with any list present
// in the YAML file at path replacing its default. An empty path means defaults.
func LoadReferenceData(path string) (employee.ReferenceData, error) {
	ref := DefaultReferenceData()
	if path == "" {
		return ref, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return employee.ReferenceData{}, fmt.Errorf("read reference data: %w", err)
	}

	var override employee.ReferenceData
	if err := yaml.Unmarshal(data, &override); err != nil {
		return employee.ReferenceData{}, fmt.Errorf("parse reference data: %w", err)
	}

	if len(override.Genders) > 0 {
		ref.Genders = override.Genders
	}
	if len(override.Regions) > 0 {
		ref.Regions = override.Regions
	}
	return ref, nil
}
