package modules

import (
	"context"
)

// Store is the catalog persistence the service reads from
type Store interface {
	FindAll(ctx context.Context, f Filters) ([]Module, error)
	FindByModuleID(ctx context.Context, moduleID int) (*Module, error)
	FindByModuleIDs(ctx context.Context, ids []int) ([]Module, error)
	FindMinimalsByModuleIDs(ctx context.Context, ids []int) ([]ModuleMinimal, error)
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// List returns every module matching f; paging is up to the caller
func (s *Service) List(ctx context.Context, f Filters) ([]Module, error) {
	return s.store.FindAll(ctx, f)
}

// Get returns nil, nil when the module does not exist
func (s *Service) Get(ctx context.Context, moduleID int) (*Module, error) {
	return s.store.FindByModuleID(ctx, moduleID)
}

func (s *Service) GetMany(ctx context.Context, ids []int) ([]Module, error) {
	if len(ids) == 0 {
		return []Module{}, nil
	}
	return s.store.FindByModuleIDs(ctx, ids)
}

func (s *Service) GetMinimals(ctx context.Context, ids []int) ([]ModuleMinimal, error) {
	if len(ids) == 0 {
		return []ModuleMinimal{}, nil
	}
	return s.store.FindMinimalsByModuleIDs(ctx, ids)
}

// Exists reports whether a module with the id is in the catalog
func (s *Service) Exists(ctx context.Context, moduleID int) (bool, error) {
	module, err := s.store.FindByModuleID(ctx, moduleID)
	if err != nil {
		return false, err
	}
	return module != nil, nil
}
