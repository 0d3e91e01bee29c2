package skill

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

func (s *Store) ListSkills(ctx context.Context) ([]Skill, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, COALESCE(description, ''), COALESCE(esco_id, '')
    FROM skills
    ORDER BY id
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var skills []Skill
	for rows.Next() {
		var sk Skill
		if err := rows.Scan(&sk.ID, &sk.Name, &sk.Description, &sk.EscoID); err != nil {
			return nil, err
		}
		skills = append(skills, sk)
	}
	return skills, rows.Err()
}

func (s *Store) GetSkill(ctx context.Context, id int64) (*Skill, error) {
	var sk Skill
	err := s.DB.QueryRow(ctx, `
    SELECT id, name, COALESCE(description, ''), COALESCE(esco_id, '')
    FROM skills
    WHERE id = $1
  `, id).Scan(&sk.ID, &sk.Name, &sk.Description, &sk.EscoID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrSkillNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sk, nil
}

func (s *Store) CreateSkill(ctx context.Context, sk Skill) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO skills (name, description, esco_id)
    VALUES ($1, $2, $3)
    RETURNING id
  `, sk.Name, sk.Description, sk.EscoID).Scan(&id)
	return id, err
}

func (s *Store) UpdateSkill(ctx context.Context, id int64, sk Skill) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE skills
    SET name = $1, description = $2, esco_id = $3
    WHERE id = $4
  `, sk.Name, sk.Description, sk.EscoID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSkillNotFound
	}
	return nil
}

func (s *Store) DeleteSkill(ctx context.Context, id int64) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM skills WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSkillNotFound
	}
	return nil
}

func (s *Store) ListOccupations(ctx context.Context, limit, offset int) ([]Occupation, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name
    FROM occupations
    ORDER BY id
    LIMIT $1 OFFSET $2
  `, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var occupations []Occupation
	for rows.Next() {
		var o Occupation
		if err := rows.Scan(&o.ID, &o.Name); err != nil {
			return nil, err
		}
		occupations = append(occupations, o)
	}
	return occupations, rows.Err()
}

func (s *Store) GetOccupation(ctx context.Context, id int64) (*Occupation, error) {
	var o Occupation
	err := s.DB.QueryRow(ctx, "SELECT id, name FROM occupations WHERE id = $1", id).Scan(&o.ID, &o.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrOccupationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (s *Store) CreateOccupation(ctx context.Context, o Occupation) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, "INSERT INTO occupations (name) VALUES ($1) RETURNING id", o.Name).Scan(&id)
	return id, err
}

func (s *Store) UpdateOccupation(ctx context.Context, id int64, name string) error {
	tag, err := s.DB.Exec(ctx, "UPDATE occupations SET name = $1 WHERE id = $2", name, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrOccupationNotFound
	}
	return nil
}

func (s *Store) DeleteOccupation(ctx context.Context, id int64) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM occupations WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrOccupationNotFound
	}
	return nil
}
