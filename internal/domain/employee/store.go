package employee

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"pulse/internal/platform/querier"
)

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

const employeeColumns = `id, first_name, last_name, email, organization_id, department_id, occupation_id`

func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM employees").Scan(&count)
	return count, err
}

func (s *Store) List(ctx context.Context, limit, offset int) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+employeeColumns+`
    FROM employees
    ORDER BY id
    LIMIT $1 OFFSET $2
  `, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEmployees(rows)
}

func (s *Store) ListByDepartment(ctx context.Context, departmentID int64) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+employeeColumns+`
    FROM employees
    WHERE department_id = $1
    ORDER BY id
  `, departmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEmployees(rows)
}

func scanEmployees(rows pgx.Rows) ([]Employee, error) {
	var employees []Employee
	for rows.Next() {
		var e Employee
		if err := rows.Scan(&e.ID, &e.FirstName, &e.LastName, &e.Email,
			&e.OrganizationID, &e.DepartmentID, &e.OccupationID); err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (s *Store) Get(ctx context.Context, id int64) (*Employee, error) {
	var e Employee
	err := s.DB.QueryRow(ctx, `
    SELECT `+employeeColumns+`
    FROM employees
    WHERE id = $1
  `, id).Scan(&e.ID, &e.FirstName, &e.LastName, &e.Email,
		&e.OrganizationID, &e.DepartmentID, &e.OccupationID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrEmployeeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *Store) Create(ctx context.Context, e Employee) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO employees (first_name, last_name, email, organization_id, department_id, occupation_id)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING id
  `, e.FirstName, e.LastName, e.Email, e.OrganizationID, e.DepartmentID, e.OccupationID).Scan(&id)
	return id, err
}

func (s *Store) Update(ctx context.Context, id int64, e Employee) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE employees
    SET first_name = $1, last_name = $2, email = $3,
        organization_id = $4, department_id = $5, occupation_id = $6
    WHERE id = $7
  `, e.FirstName, e.LastName, e.Email, e.OrganizationID, e.DepartmentID, e.OccupationID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEmployeeNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM employees WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEmployeeNotFound
	}
	return nil
}

func (s *Store) EmailExists(ctx context.Context, email string, excludeID int64) (bool, error) {
	var count int
	err := s.DB.QueryRow(ctx, `
    SELECT COUNT(1)
    FROM employees
    WHERE email = $1 AND id <> $2
  `, email, excludeID).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// DepartmentOrganization returns the organization a department belongs to.
func (s *Store) DepartmentOrganization(ctx context.Context, departmentID int64) (int64, error) {
	var organizationID int64
	err := s.DB.QueryRow(ctx, "SELECT organization_id FROM departments WHERE id = $1", departmentID).Scan(&organizationID)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrDepartmentNotFound
	}
	if err != nil {
		return 0, err
	}
	return organizationID, nil
}

func (s *Store) OrganizationExists(ctx context.Context, id int64) (bool, error) {
	return s.exists(ctx, "SELECT COUNT(1) FROM organizations WHERE id = $1", id)
}

func (s *Store) OccupationExists(ctx context.Context, id int64) (bool, error) {
	return s.exists(ctx, "SELECT COUNT(1) FROM occupations WHERE id = $1", id)
}

func (s *Store) SkillExists(ctx context.Context, id int64) (bool, error) {
	return s.exists(ctx, "SELECT COUNT(1) FROM skills WHERE id = $1", id)
}

func (s *Store) exists(ctx context.Context, query string, id int64) (bool, error) {
	var count int
	if err := s.DB.QueryRow(ctx, query, id).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) ChangeDepartment(ctx context.Context, employeeID, departmentID int64) error {
	tag, err := s.DB.Exec(ctx, "UPDATE employees SET department_id = $1 WHERE id = $2", departmentID, employeeID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEmployeeNotFound
	}
	return nil
}

// SkillEntries returns the employee's entries newest first.
func (s *Store) SkillEntries(ctx context.Context, employeeID int64) ([]SkillEntry, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT se.id, se.employee_id, se.skill_id, sk.name, se.rating, se.entry_date, se.entry_datetime
    FROM skill_entries se
    JOIN skills sk ON se.skill_id = sk.id
    WHERE se.employee_id = $1
    ORDER BY se.entry_date DESC, se.entry_datetime DESC
  `, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []SkillEntry
	for rows.Next() {
		var e SkillEntry
		if err := rows.Scan(&e.ID, &e.EmployeeID, &e.SkillID, &e.SkillName, &e.Rating, &e.EntryDate, &e.EntryDateTime); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) AddSkillEntry(ctx context.Context, employeeID, skillID int64, rating float64, now time.Time) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO skill_entries (employee_id, skill_id, rating, entry_date, entry_datetime)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id
  `, employeeID, skillID, rating, now.Format("2006-01-02"), now).Scan(&id)
	return id, err
}

func (s *Store) DeleteSkillEntry(ctx context.Context, employeeID, entryID int64) error {
	tag, err := s.DB.Exec(ctx, `
    DELETE FROM skill_entries
    WHERE id = $1 AND employee_id = $2
  `, entryID, employeeID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSkillEntryNotFound
	}
	return nil
}
