package skill

import "context"

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

func (s *Service) ListSkills(ctx context.Context) ([]Skill, error) {
	return s.store.ListSkills(ctx)
}

func (s *Service) GetSkill(ctx context.Context, id int64) (*Skill, error) {
	return s.store.GetSkill(ctx, id)
}

func (s *Service) CreateSkill(ctx context.Context, sk Skill) (int64, error) {
	return s.store.CreateSkill(ctx, sk)
}

func (s *Service) UpdateSkill(ctx context.Context, id int64, sk Skill) error {
	return s.store.UpdateSkill(ctx, id, sk)
}

func (s *Service) DeleteSkill(ctx context.Context, id int64) error {
	return s.store.DeleteSkill(ctx, id)
}

func (s *Service) ListOccupations(ctx context.Context, limit, offset int) ([]Occupation, error) {
	return s.store.ListOccupations(ctx, limit, offset)
}

func (s *Service) GetOccupation(ctx context.Context, id int64) (*Occupation, error) {
	return s.store.GetOccupation(ctx, id)
}

func (s *Service) CreateOccupation(ctx context.Context, o Occupation) (int64, error) {
	return s.store.CreateOccupation(ctx, o)
}

func (s *Service) UpdateOccupation(ctx context.Context, id int64, name string) error {
	return s.store.UpdateOccupation(ctx, id, name)
}

func (s *Service) DeleteOccupation(ctx context.Context, id int64) error {
	return s.store.DeleteOccupation(ctx, id)
}
