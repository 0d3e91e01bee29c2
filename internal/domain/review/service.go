package review

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

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Review, error) {
	return s.store.List(ctx, filter)
}

func (s *Service) Get(ctx context.Context, id int64) (*Review, error) {
	return s.store.Get(ctx, id)
}

// Create records a review; a zero review date defaults to today.
func (s *Service) Create(ctx context.Context, r Review) (int64, error) {
	exists, err := s.store.EmployeeExists(ctx, r.EmployeeID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, ErrEmployeeNotFound
	}
	if r.ReviewDate.IsZero() {
		r.ReviewDate = s.now().UTC().Truncate(24 * time.Hour)
	}
	return s.store.Create(ctx, r)
}

func (s *Service) Update(ctx context.Context, id int64, r Review) error {
	return s.store.Update(ctx, id, r)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}
