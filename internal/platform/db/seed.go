package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type seedOrg struct {
	name        string
	location    string
	departments []string
}

type seedSkill struct {
	name        string
	description string
	escoID      string
}

var seedOrgs = []seedOrg{
	{"University of Macedonia", "Thessaloniki", []string{"HR", "Marketing", "Supply", "Senior Leadership Team", "Technology"}},
	{"International Hellenic University", "Thessaloniki", []string{"Administration", "IT Services"}},
	{"BestSecret", "Munich", []string{"Engineering", "Operations"}},
}

var seedSkills = []seedSkill{
	{"Java", "Software development with Java & Spring.", "19a8293b-8e95-4de3-983f-77484079c389"},
	{"SQL", "Relational database querying and optimization.", "598de5b0-5b58-4ea7-8058-a4bc4d18c742"},
	{"Python", "Software development with Python.", "ccd0a1d9-afda-43d9-b901-96344886e14d"},
	{"Communication", "Clear written and verbal communication.", "15d76317-c71a-4fa2-aadc-2ecc34e627b7"},
	{"Leadership", "People leadership and decision-making.", "b1e9a1f2-4f63-45f7-a9ef-3f8f9c27a210"},
}

var seedOccupations = []string{
	"Software Engineer",
	"Data Analyst",
	"HR Specialist",
	"Marketing Manager",
	"Operations Lead",
}

// Seed inserts the demo dataset if it is not already present. It never
// overwrites existing rows, so repeated startups are safe.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	for _, org := range seedOrgs {
		orgID, err := ensureOrganization(ctx, pool, org.name, org.location)
		if err != nil {
			return err
		}
		for _, dept := range org.departments {
			if err := ensureDepartment(ctx, pool, orgID, dept); err != nil {
				return err
			}
		}
	}

	for _, skill := range seedSkills {
		if _, err := pool.Exec(ctx, `
      INSERT INTO skills (name, description, esco_id)
      VALUES ($1, $2, $3)
      ON CONFLICT (name) DO NOTHING
    `, skill.name, skill.description, skill.escoID); err != nil {
			return err
		}
	}

	for _, occupation := range seedOccupations {
		if _, err := pool.Exec(ctx, "INSERT INTO occupations (name) VALUES ($1) ON CONFLICT (name) DO NOTHING", occupation); err != nil {
			return err
		}
	}

	return nil
}

func ensureOrganization(ctx context.Context, pool *pgxpool.Pool, name, location string) (int64, error) {
	var id int64
	err := pool.QueryRow(ctx, "SELECT id FROM organizations WHERE name = $1", name).Scan(&id)
	if err == nil {
		return id, nil
	}

	err = pool.QueryRow(ctx, "INSERT INTO organizations (name, location) VALUES ($1, $2) RETURNING id", name, location).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func ensureDepartment(ctx context.Context, pool *pgxpool.Pool, orgID int64, name string) error {
	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(1) FROM departments WHERE organization_id = $1 AND name = $2", orgID, name).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	_, err := pool.Exec(ctx, "INSERT INTO departments (organization_id, name) VALUES ($1, $2)", orgID, name)
	return err
}
