package review

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"

	"pulse/internal/platform/querier"
)

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

const reviewColumns = `id, employee_id, review_date, overall_rating, COALESCE(reviewer, ''), COALESCE(notes, '')`

func (s *Store) List(ctx context.Context, filter ListFilter) ([]Review, error) {
	query := `
    SELECT ` + reviewColumns + `
    FROM performance_reviews
    WHERE 1=1`
	args := []any{}

	if filter.EmployeeID != 0 {
		query += " AND employee_id = $" + strconv.Itoa(len(args)+1)
		args = append(args, filter.EmployeeID)
	}
	if filter.From != nil {
		query += " AND review_date >= $" + strconv.Itoa(len(args)+1)
		args = append(args, *filter.From)
	}
	if filter.To != nil {
		query += " AND review_date <= $" + strconv.Itoa(len(args)+1)
		args = append(args, *filter.To)
	}
	query += " ORDER BY review_date DESC, id DESC"

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []Review
	for rows.Next() {
		var r Review
		if err := rows.Scan(&r.ID, &r.EmployeeID, &r.ReviewDate, &r.OverallRating, &r.Reviewer, &r.Notes); err != nil {
			return nil, err
		}
		reviews = append(reviews, r)
	}
	return reviews, rows.Err()
}

func (s *Store) Get(ctx context.Context, id int64) (*Review, error) {
	var r Review
	err := s.DB.QueryRow(ctx, `
    SELECT `+reviewColumns+`
    FROM performance_reviews
    WHERE id = $1
  `, id).Scan(&r.ID, &r.EmployeeID, &r.ReviewDate, &r.OverallRating, &r.Reviewer, &r.Notes)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrReviewNotFound
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *Store) Create(ctx context.Context, r Review) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO performance_reviews (employee_id, review_date, overall_rating, reviewer, notes)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id
  `, r.EmployeeID, r.ReviewDate, r.OverallRating, r.Reviewer, r.Notes).Scan(&id)
	return id, err
}

func (s *Store) Update(ctx context.Context, id int64, r Review) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE performance_reviews
    SET review_date = $1, overall_rating = $2, reviewer = $3, notes = $4
    WHERE id = $5
  `, r.ReviewDate, r.OverallRating, r.Reviewer, r.Notes, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrReviewNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM performance_reviews WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrReviewNotFound
	}
	return nil
}

func (s *Store) EmployeeExists(ctx context.Context, id int64) (bool, error) {
	var count int
	err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM employees WHERE id = $1", id).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
