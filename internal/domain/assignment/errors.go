package assignment

import "errors"

var (
	ErrAssignmentNotFound = errors.New("shift assignment not found")
	ErrEmptyEmployeeList  = errors.New("bulk assignment requires at least one employee")
)
