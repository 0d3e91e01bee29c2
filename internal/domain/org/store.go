package org

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"pulse/internal/platform/querier"
)

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

func (s *Store) ListOrganizations(ctx context.Context) ([]Organization, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, COALESCE(location, '')
    FROM organizations
    ORDER BY id
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orgs []Organization
	for rows.Next() {
		var o Organization
		if err := rows.Scan(&o.ID, &o.Name, &o.Location); err != nil {
			return nil, err
		}
		orgs = append(orgs, o)
	}
	return orgs, rows.Err()
}

func (s *Store) GetOrganization(ctx context.Context, id int64) (*Organization, error) {
	var o Organization
	err := s.DB.QueryRow(ctx, `
    SELECT id, name, COALESCE(location, '')
    FROM organizations
    WHERE id = $1
  `, id).Scan(&o.ID, &o.Name, &o.Location)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrOrganizationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (s *Store) CreateOrganization(ctx context.Context, o Organization) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO organizations (name, location)
    VALUES ($1, $2)
    RETURNING id
  `, o.Name, o.Location).Scan(&id)
	return id, err
}

func (s *Store) UpdateOrganization(ctx context.Context, id int64, o Organization) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE organizations
    SET name = $1, location = $2
    WHERE id = $3
  `, o.Name, o.Location, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrOrganizationNotFound
	}
	return nil
}

func (s *Store) DeleteOrganization(ctx context.Context, id int64) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM organizations WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrOrganizationNotFound
	}
	return nil
}

func (s *Store) OrganizationExists(ctx context.Context, id int64) (bool, error) {
	var count int
	err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM organizations WHERE id = $1", id).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) ListDepartments(ctx context.Context) ([]Department, error) {
	return s.queryDepartments(ctx, `
    SELECT id, name, organization_id
    FROM departments
    ORDER BY id
  `)
}

func (s *Store) ListDepartmentsByOrganization(ctx context.Context, organizationID int64) ([]Department, error) {
	return s.queryDepartments(ctx, `
    SELECT id, name, organization_id
    FROM departments
    WHERE organization_id = $1
    ORDER BY id
  `, organizationID)
}

func (s *Store) queryDepartments(ctx context.Context, query string, args ...any) ([]Department, error) {
	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []Department
	for rows.Next() {
		var d Department
		if err := rows.Scan(&d.ID, &d.Name, &d.OrganizationID); err != nil {
			return nil, err
		}
		departments = append(departments, d)
	}
	return departments, rows.Err()
}

func (s *Store) GetDepartment(ctx context.Context, id int64) (*Department, error) {
	var d Department
	err := s.DB.QueryRow(ctx, `
    SELECT id, name, organization_id
    FROM departments
    WHERE id = $1
  `, id).Scan(&d.ID, &d.Name, &d.OrganizationID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrDepartmentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *Store) CreateDepartment(ctx context.Context, d Department) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO departments (name, organization_id)
    VALUES ($1, $2)
    RETURNING id
  `, d.Name, d.OrganizationID).Scan(&id)
	return id, err
}

func (s *Store) UpdateDepartment(ctx context.Context, id int64, name string) error {
	tag, err := s.DB.Exec(ctx, "UPDATE departments SET name = $1 WHERE id = $2", name, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrDepartmentNotFound
	}
	return nil
}

func (s *Store) DeleteDepartment(ctx context.Context, id int64) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM departments WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrDepartmentNotFound
	}
	return nil
}

func (s *Store) DepartmentHasEmployees(ctx context.Context, id int64) (bool, error) {
	var count int
	err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM employees WHERE department_id = $1", id).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
