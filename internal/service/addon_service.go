package service

import (
	"context"

	"github.com/Waer1/complex-product-CRUD/internal/cache"
	"github.com/Waer1/complex-product-CRUD/internal/dto"
	"github.com/Waer1/complex-product-CRUD/internal/repository"
)

// AddonService manages addons and their items on their own.
type AddonService interface {
	Create(ctx context.Context, req dto.CreateAddonRequest) (*dto.AddonResponse, error)
	FindAll(ctx context.Context) ([]dto.AddonResponse, error)
	FindOne(ctx context.Context, id uint) (*dto.AddonResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateAddonRequest) (*dto.AddonResponse, error)
	Remove(ctx context.Context, id uint) (*dto.AddonResponse, error)
}

type addonService struct {
	repo  repository.AddonRepository
	cache *cache.ProductCache
}

func NewAddonService(repo repository.AddonRepository, c *cache.ProductCache) AddonService {
	return &addonService{repo: repo, cache: c}
}

func (s *addonService) Create(ctx context.Context, req dto.CreateAddonRequest) (*dto.AddonResponse, error) {
	a := newAddon(req)
	if err := s.repo.Create(ctx, &a); err != nil {
		return nil, err
	}
	resp := mapAddon(a)
	return &resp, nil
}

func (s *addonService) FindAll(ctx context.Context) ([]dto.AddonResponse, error) {
	list, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.AddonResponse, 0, len(list))
	for _, a := range list {
		result = append(result, mapAddon(a))
	}
	return result, nil
}

func (s *addonService) FindOne(ctx context.Context, id uint) (*dto.AddonResponse, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "addon with id %d not found", id)
	}
	resp := mapAddon(*a)
	return &resp, nil
}

// Update shallow-merges the addon and the items named in the patch.
// Unknown item ids are ignored here; the product route validates them.
func (s *addonService) Update(ctx context.Context, id uint, req dto.UpdateAddonRequest) (*dto.AddonResponse, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "addon with id %d not found", id)
	}
	mergeAddonFields(a, req)
	if err := s.repo.Save(ctx, a); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)
	resp := mapAddon(*a)
	return &resp, nil
}

func (s *addonService) Remove(ctx context.Context, id uint) (*dto.AddonResponse, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "addon with id %d not found", id)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)
	resp := mapAddon(*a)
	return &resp, nil
}
