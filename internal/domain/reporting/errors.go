package reporting

import "errors"

var (
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrDepartmentNotFound   = errors.New("department not found")
	ErrEmployeeNotFound     = errors.New("employee not found")
)
