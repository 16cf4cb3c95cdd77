package employee

import "errors"

var (
	ErrEmployeeNotFound     = errors.New("employee not found")
	ErrIDSpaceExhausted     = errors.New("no free employee id left")
	ErrInvalidGender        = errors.New("gender must be one of the configured genders")
	ErrInvalidState         = errors.New("state must be one of the configured regions")
	ErrInvalidStatusFilter  = errors.New("status must be active or inactive")
	ErrFutureDateNotAllowed = errors.New("date cannot be in the future")
)
