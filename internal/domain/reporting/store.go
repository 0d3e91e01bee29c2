package reporting

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"pulse/internal/platform/querier"
)

// Store reads the reporting views. It implements both SampleStore and
// Directory.
type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

func (s *Store) SkillSamples(ctx context.Context, filter Filter) ([]RatingSample, error) {
	if filter.EmployeeID != 0 {
		return s.employeeSkillSamples(ctx, filter)
	}
	return s.orgSkillSamples(ctx, filter)
}

func (s *Store) orgSkillSamples(ctx context.Context, filter Filter) ([]RatingSample, error) {
	pred := filter.compileSamples("entry_date")
	query := `
    SELECT organization_id, organization_name, department_id, department_name,
           employee_id, skill_id, skill_name, rating, entry_date
    FROM v_org_department_skill_period
    WHERE ` + pred.where() + `
    ORDER BY skill_name, entry_date`

	rows, err := s.DB.Query(ctx, query, pred.arguments()...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var samples []RatingSample
	for rows.Next() {
		var sample RatingSample
		if err := rows.Scan(&sample.OrganizationID, &sample.OrganizationName, &sample.DepartmentID, &sample.DepartmentName,
			&sample.EmployeeID, &sample.SkillID, &sample.SkillName, &sample.Rating, &sample.EntryDate); err != nil {
			return nil, err
		}
		samples = append(samples, sample)
	}
	return samples, rows.Err()
}

func (s *Store) employeeSkillSamples(ctx context.Context, filter Filter) ([]RatingSample, error) {
	pred := filter.compileSamples("entry_date")
	query := `
    SELECT employee_id, first_name, last_name, skill_id, skill_name, rating, entry_date
    FROM v_employee_skill_period
    WHERE ` + pred.where() + `
    ORDER BY skill_name, entry_date`

	rows, err := s.DB.Query(ctx, query, pred.arguments()...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var samples []RatingSample
	for rows.Next() {
		var sample RatingSample
		if err := rows.Scan(&sample.EmployeeID, &sample.FirstName, &sample.LastName,
			&sample.SkillID, &sample.SkillName, &sample.Rating, &sample.EntryDate); err != nil {
			return nil, err
		}
		samples = append(samples, sample)
	}
	return samples, rows.Err()
}

// OverallRatings reads review-level overall scores for the filter's scope.
// The skill filter never applies here.
func (s *Store) OverallRatings(ctx context.Context, filter Filter) ([]OverallSample, error) {
	pred := &predicate{}
	var query string
	if filter.EmployeeID != 0 {
		pred.eq("employee_id", filter.EmployeeID)
		if filter.StartDate != nil {
			pred.gte("review_date", *filter.StartDate)
		}
		if filter.EndDate != nil {
			pred.lte("review_date", *filter.EndDate)
		}
		query = `
      SELECT review_date, overall_rating
      FROM performance_reviews
      WHERE review_date IS NOT NULL AND overall_rating IS NOT NULL
        AND ` + pred.where() + `
      ORDER BY review_date`
	} else {
		pred.eq("d.organization_id", filter.OrganizationID)
		if filter.DepartmentID != nil {
			pred.eq("d.id", *filter.DepartmentID)
		}
		if filter.StartDate != nil {
			pred.gte("pr.review_date", *filter.StartDate)
		}
		if filter.EndDate != nil {
			pred.lte("pr.review_date", *filter.EndDate)
		}
		query = `
      SELECT pr.review_date, pr.overall_rating
      FROM performance_reviews pr
      JOIN employees e ON pr.employee_id = e.id
      JOIN departments d ON e.department_id = d.id
      WHERE pr.review_date IS NOT NULL AND pr.overall_rating IS NOT NULL
        AND ` + pred.where() + `
      ORDER BY pr.review_date`
	}

	rows, err := s.DB.Query(ctx, query, pred.arguments()...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var samples []OverallSample
	for rows.Next() {
		var sample OverallSample
		if err := rows.Scan(&sample.ReviewDate, &sample.Rating); err != nil {
			return nil, err
		}
		samples = append(samples, sample)
	}
	return samples, rows.Err()
}

func (s *Store) OrganizationName(ctx context.Context, id int64) (string, error) {
	var name string
	err := s.DB.QueryRow(ctx, "SELECT name FROM organizations WHERE id = $1", id).Scan(&name)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrOrganizationNotFound
	}
	if err != nil {
		return "", err
	}
	return name, nil
}

func (s *Store) DepartmentName(ctx context.Context, id int64) (string, error) {
	var name string
	err := s.DB.QueryRow(ctx, "SELECT name FROM departments WHERE id = $1", id).Scan(&name)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrDepartmentNotFound
	}
	if err != nil {
		return "", err
	}
	return name, nil
}

func (s *Store) EmployeeName(ctx context.Context, id int64) (string, string, error) {
	var first, last string
	err := s.DB.QueryRow(ctx, "SELECT first_name, last_name FROM employees WHERE id = $1", id).Scan(&first, &last)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", "", ErrEmployeeNotFound
	}
	if err != nil {
		return "", "", err
	}
	return first, last, nil
}
