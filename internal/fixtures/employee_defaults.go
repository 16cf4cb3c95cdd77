package fixtures

import (
	"time"

	"github.com/cmlabs-hris/employee-dashboard-go/internal/domain/employee"
)

// ==========================================
// SEED EMPLOYEES
// ==========================================

// SampleEmployees returns the starter records written when no collection is persisted.
// Both timestamps are set to now.
func SampleEmployees(now time.Time) []employee.Employee {
	// Ids use the same EMP + 4 digit format as generated ones.
	seeds := []employee.Employee{
		{ID: "EMP0001", Name: "Rahul Sharma", Gender: employee.Male, DOB: "1995-04-12", State: "Maharashtra", Active: true},
		{ID: "EMP0002", Name: "Priya Patel", Gender: employee.Female, DOB: "1992-08-25", State: "Gujarat", Active: true},
		{ID: "EMP0003", Name: "Amit Kumar", Gender: employee.Male, DOB: "1988-12-03", State: "Delhi", Active: false},
		{ID: "EMP0004", Name: "Sneha Reddy", Gender: employee.Female, DOB: "1997-06-18", State: "Telangana", Active: true},
	}

	for i := range seeds {
		seeds[i].CreatedAt = now
		seeds[i].UpdatedAt = now
	}
	return seeds
}

// ==========================================
// REFERENCE DATA
// ==========================================

var defaultGenders = []employee.Gender{employee.Male, employee.Female, employee.Other}

// States and union territories offered by the employee form.
var defaultRegions = []string{
	"Andhra Pradesh",
	"Arunachal Pradesh",
	"Assam",
	"Bihar",
	"Chhattisgarh",
	"Goa",
	"Gujarat",
	"Haryana",
	"Himachal Pradesh",
	"Jharkhand",
	"Karnataka",
	"Kerala",
	"Madhya Pradesh",
	"Maharashtra",
	"Manipur",
	"Meghalaya",
	"Mizoram",
	"Nagaland",
	"Odisha",
	"Punjab",
	"Rajasthan",
	"Sikkim",
	"Tamil Nadu",
	"Telangana",
	"Tripura",
	"Uttar Pradesh",
	"Uttarakhand",
	"West Bengal",
	"Andaman and Nicobar Islands",
	"Chandigarh",
	"Dadra and Nagar Haveli and Daman and Diu",
	"Delhi",
	"Jammu and Kashmir",
	"Ladakh",
	"Lakshadweep",
	"Puducherry",
}

// DefaultReferenceData returns fresh copies of the built-in enumerations.
func DefaultReferenceData() employee.ReferenceData {
	return employee.ReferenceData{
		Genders: append([]employee.Gender(nil), defaultGenders...),
		Regions: append([]string(nil), defaultRegions...),
	}
}
