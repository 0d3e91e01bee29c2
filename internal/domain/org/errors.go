package org

import "errors"

var (
	ErrOrganizationNotFound   = errors.New("organization not found")
	ErrDepartmentNotFound     = errors.New("department not found")
	ErrDepartmentHasEmployees = errors.New("department has employees assigned")
)
