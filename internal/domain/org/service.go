package org

import "context"

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

func (s *Service) ListOrganizations(ctx context.Context) ([]Organization, error) {
	return s.store.ListOrganizations(ctx)
}

func (s *Service) GetOrganization(ctx context.Context, id int64) (*Organization, error) {
	return s.store.GetOrganization(ctx, id)
}

func (s *Service) CreateOrganization(ctx context.Context, o Organization) (int64, error) {
	return s.store.CreateOrganization(ctx, o)
}

func (s *Service) UpdateOrganization(ctx context.Context, id int64, o Organization) error {
	return s.store.UpdateOrganization(ctx, id, o)
}

func (s *Service) DeleteOrganization(ctx context.Context, id int64) error {
	return s.store.DeleteOrganization(ctx, id)
}

func (s *Service) ListDepartments(ctx context.Context) ([]Department, error) {
	return s.store.ListDepartments(ctx)
}

func (s *Service) ListDepartmentsByOrganization(ctx context.Context, organizationID int64) ([]Department, error) {
	exists, err := s.store.OrganizationExists(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrOrganizationNotFound
	}
	return s.store.ListDepartmentsByOrganization(ctx, organizationID)
}

func (s *Service) GetDepartment(ctx context.Context, id int64) (*Department, error) {
	return s.store.GetDepartment(ctx, id)
}

func (s *Service) CreateDepartment(ctx context.Context, d Department) (int64, error) {
	exists, err := s.store.OrganizationExists(ctx, d.OrganizationID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, ErrOrganizationNotFound
	}
	return s.store.CreateDepartment(ctx, d)
}

func (s *Service) UpdateDepartment(ctx context.Context, id int64, name string) error {
	return s.store.UpdateDepartment(ctx, id, name)
}

// DeleteDepartment refuses while employees are still assigned.
func (s *Service) DeleteDepartment(ctx context.Context, id int64) error {
	hasEmployees, err := s.store.DepartmentHasEmployees(ctx, id)
	if err != nil {
		return err
	}
	if hasEmployees {
		return ErrDepartmentHasEmployees
	}
	return s.store.DeleteDepartment(ctx, id)
}
