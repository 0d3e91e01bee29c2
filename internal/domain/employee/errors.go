package employee

import "errors"

var (
	ErrEmployeeNotFound     = errors.New("employee not found")
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrDepartmentNotFound   = errors.New("department not found")
	ErrOccupationNotFound   = errors.New("occupation not found")
	ErrSkillNotFound        = errors.New("skill not found")
	ErrSkillEntryNotFound   = errors.New("skill entry not found for this employee")
	ErrDuplicateEmail       = errors.New("employee already exists with the provided email")
	ErrDepartmentMismatch   = errors.New("department does not belong to the organization")
)
