package service

import (
	"context"

	"github.com/Waer1/complex-product-CRUD/internal/cache"
	"github.com/Waer1/complex-product-CRUD/internal/dto"
	"github.com/Waer1/complex-product-CRUD/internal/repository"
)

// UOMService manages UOMs on their own, outside of a product.
type UOMService interface {
	Create(ctx context.Context, req dto.CreateUOMRequest) (*dto.UOMResponse, error)
	FindAll(ctx context.Context) ([]dto.UOMResponse, error)
	FindOne(ctx context.Context, id uint) (*dto.UOMResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateUOMRequest) (*dto.UOMResponse, error)
	Remove(ctx context.Context, id uint) (*dto.UOMResponse, error)
}

type uomService struct {
	repo  repository.UOMRepository
	cache *cache.ProductCache
}

func NewUOMService(repo repository.UOMRepository, c *cache.ProductCache) UOMService {
	return &uomService{repo: repo, cache: c}
}

func (s *uomService) Create(ctx context.Context, req dto.CreateUOMRequest) (*dto.UOMResponse, error) {
	u := newUOM(req)
	if err := s.repo.Create(ctx, &u); err != nil {
		return nil, err
	}
	resp := mapUOM(u)
	return &resp, nil
}

func (s *uomService) FindAll(ctx context.Context) ([]dto.UOMResponse, error) {
	list, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.UOMResponse, 0, len(list))
	for _, u := range list {
		result = append(result, mapUOM(u))
	}
	return result, nil
}

func (s *uomService) FindOne(ctx context.Context, id uint) (*dto.UOMResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "UOM with id %d not found", id)
	}
	resp := mapUOM(*u)
	return &resp, nil
}

func (s *uomService) Update(ctx context.Context, id uint, req dto.UpdateUOMRequest) (*dto.UOMResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "UOM with id %d not found", id)
	}
	mergeUOMFields(u, req.Name, req.UOMBarcode, req.UOMImage)
	if err := s.repo.Save(ctx, u); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)
	resp := mapUOM(*u)
	return &resp, nil
}

func (s *uomService) Remove(ctx context.Context, id uint) (*dto.UOMResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "UOM with id %d not found", id)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)
	resp := mapUOM(*u)
	return &resp, nil
}
