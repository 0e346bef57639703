package users

import (
	"context"

	"github.com/xyz-asif/studycoach/internal/features/modules"
	apperrors "github.com/xyz-asif/studycoach/pkg/errors"
)

// Store is the relationship persistence on user documents
type Store interface {
	AddToSet(ctx context.Context, userID, field string, moduleID int) (bool, error)
	Pull(ctx context.Context, userID, field string, moduleID int) (bool, error)
	HasMember(ctx context.Context, userID, field string, moduleID int) (bool, error)
	FindProfile(ctx context.Context, userID string) (*Profile, error)
	SetStudentProfile(ctx context.Context, userID, text string) (bool, error)
}

// Catalog resolves module ids to catalog entries
type Catalog interface {
	Exists(ctx context.Context, moduleID int) (bool, error)
	GetMany(ctx context.Context, ids []int) ([]modules.Module, error)
	GetMinimals(ctx context.Context, ids []int) ([]modules.ModuleMinimal, error)
}

// Service manages favorites, enrollments and the free-text student profile
type Service struct {
	store   Store
	catalog Catalog
}

func NewService(store Store, catalog Catalog) *Service {
	return &Service{store: store, catalog: catalog}
}

func (s *Service) AddFavorite(ctx context.Context, userID string, moduleID int) error {
	return s.add(ctx, userID, fieldFavorites, moduleID)
}

func (s *Service) RemoveFavorite(ctx context.Context, userID string, moduleID int) error {
	return s.remove(ctx, userID, fieldFavorites, moduleID)
}

func (s *Service) HasFavorite(ctx context.Context, userID string, moduleID int) (bool, error) {
	return s.store.HasMember(ctx, userID, fieldFavorites, moduleID)
}

func (s *Service) ListFavorites(ctx context.Context, userID string) ([]modules.Module, error) {
	profile, err := s.profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.catalog.GetMany(ctx, profile.FavoriteModules)
}

func (s *Service) Enroll(ctx context.Context, userID string, moduleID int) error {
	return s.add(ctx, userID, fieldChosen, moduleID)
}

func (s *Service) Unenroll(ctx context.Context, userID string, moduleID int) error {
	return s.remove(ctx, userID, fieldChosen, moduleID)
}

func (s *Service) IsEnrolled(ctx context.Context, userID string, moduleID int) (bool, error) {
	return s.store.HasMember(ctx, userID, fieldChosen, moduleID)
}

func (s *Service) ListEnrollments(ctx context.Context, userID string) ([]modules.Module, error) {
	profile, err := s.profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.catalog.GetMany(ctx, profile.ChosenModules)
}

func (s *Service) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	return s.profile(ctx, userID)
}

func (s *Service) UpdateStudentProfile(ctx context.Context, userID, text string) error {
	matched, err := s.store.SetStudentProfile(ctx, userID, text)
	if err != nil {
		return err
	}
	if !matched {
		return apperrors.ErrUserNotFound
	}
	return nil
}

func (s *Service) GetAccount(ctx context.Context, userID string) (*Account, error) {
	profile, err := s.profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	chosen, err := s.catalog.GetMinimals(ctx, profile.ChosenModules)
	if err != nil {
		return nil, err
	}

	return &Account{
		Name:           profile.Name,
		StudentProfile: profile.StudentProfile,
		ChosenModules:  chosen,
	}, nil
}

func (s *Service) add(ctx context.Context, userID, field string, moduleID int) error {
	exists, err := s.catalog.Exists(ctx, moduleID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.ErrModuleNotFound
	}

	matched, err := s.store.AddToSet(ctx, userID, field, moduleID)
	if err != nil {
		return err
	}
	if !matched {
		return apperrors.ErrUserNotFound
	}
	return nil
}

func (s *Service) remove(ctx context.Context, userID, field string, moduleID int) error {
	matched, err := s.store.Pull(ctx, userID, field, moduleID)
	if err != nil {
		return err
	}
	if !matched {
		return apperrors.ErrUserNotFound
	}
	return nil
}

func (s *Service) profile(ctx context.Context, userID string) (*Profile, error) {
	profile, err := s.store.FindProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperrors.ErrUserNotFound
	}
	return profile, nil
}
