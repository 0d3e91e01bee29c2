package employee

import (
	"context"
	"time"
)

type Service struct {
	store *Store
	now   func() time.Time
}

func NewService(store *Store) *Service {
	return &Service{store: store, now: time.Now}
}

func (s *Service) Count(ctx context.Context) (int, error) {
	return s.store.Count(ctx)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]Employee, error) {
	return s.store.List(ctx, limit, offset)
}

func (s *Service) ListByDepartment(ctx context.Context, departmentID int64) ([]Employee, error) {
	if _, err := s.store.DepartmentOrganization(ctx, departmentID); err != nil {
		return nil, err
	}
	return s.store.ListByDepartment(ctx, departmentID)
}

func (s *Service) Get(ctx context.Context, id int64) (*Employee, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, e Employee) (int64, error) {
	if err := s.checkRelations(ctx, e, 0); err != nil {
		return 0, err
	}
	return s.store.Create(ctx, e)
}

func (s *Service) Update(ctx context.Context, id int64, e Employee) error {
	if err := s.checkRelations(ctx, e, id); err != nil {
		return err
	}
	return s.store.Update(ctx, id, e)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}

// BulkCreate inserts employees one by one with the same relation checks as
// Create; it stops at the first failure.
func (s *Service) BulkCreate(ctx context.Context, employees []Employee) ([]int64, error) {
	ids := make([]int64, 0, len(employees))
	for _, e := range employees {
		id, err := s.Create(ctx, e)
		if err != nil {
			return ids, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ChangeDepartment moves the employee into a department of the same
// organization.
func (s *Service) ChangeDepartment(ctx context.Context, employeeID, departmentID int64) error {
	e, err := s.store.Get(ctx, employeeID)
	if err != nil {
		return err
	}
	orgID, err := s.store.DepartmentOrganization(ctx, departmentID)
	if err != nil {
		return err
	}
	if orgID != e.OrganizationID {
		return ErrDepartmentMismatch
	}
	return s.store.ChangeDepartment(ctx, employeeID, departmentID)
}

func (s *Service) SkillEntries(ctx context.Context, employeeID int64) ([]SkillEntry, error) {
	if _, err := s.store.Get(ctx, employeeID); err != nil {
		return nil, err
	}
	return s.store.SkillEntries(ctx, employeeID)
}

// LatestSkillRatings returns the most recent rating per skill.
func (s *Service) LatestSkillRatings(ctx context.Context, employeeID int64) ([]SkillRating, error) {
	entries, err := s.SkillEntries(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return latestPerSkill(entries), nil
}

func (s *Service) AddSkillEntry(ctx context.Context, employeeID, skillID int64, rating float64) (int64, error) {
	if _, err := s.store.Get(ctx, employeeID); err != nil {
		return 0, err
	}
	ok, err := s.store.SkillExists(ctx, skillID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrSkillNotFound
	}
	return s.store.AddSkillEntry(ctx, employeeID, skillID, rating, s.now())
}

func (s *Service) RemoveSkillEntry(ctx context.Context, employeeID, entryID int64) error {
	return s.store.DeleteSkillEntry(ctx, employeeID, entryID)
}

func (s *Service) checkRelations(ctx context.Context, e Employee, excludeID int64) error {
	taken, err := s.store.EmailExists(ctx, e.Email, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return ErrDuplicateEmail
	}

	ok, err := s.store.OrganizationExists(ctx, e.OrganizationID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrOrganizationNotFound
	}

	orgID, err := s.store.DepartmentOrganization(ctx, e.DepartmentID)
	if err != nil {
		return err
	}
	if orgID != e.OrganizationID {
		return ErrDepartmentMismatch
	}

	ok, err = s.store.OccupationExists(ctx, e.OccupationID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrOccupationNotFound
	}
	return nil
}
