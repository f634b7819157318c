package service

import (
	"context"
	"errors"

	"github.com/Waer1/complex-product-CRUD/internal/apierror"
	"github.com/Waer1/complex-product-CRUD/internal/cache"
	"github.com/Waer1/complex-product-CRUD/internal/dto"
	"github.com/Waer1/complex-product-CRUD/internal/model"
	"github.com/Waer1/complex-product-CRUD/internal/repository"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ProductService defines the operations on the product aggregate, including
// attaching and detaching UOMs and addons.
type ProductService interface {
	Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	FindAll(ctx context.Context) ([]dto.ProductResponse, error)
	FindOne(ctx context.Context, id uint) (*dto.ProductResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Remove(ctx context.Context, id uint) (*dto.ProductResponse, error)

	AddUOM(ctx context.Context, productID uint, req dto.CreateUOMRequest) (*dto.ProductResponse, error)
	RemoveUOM(ctx context.Context, productID, uomID uint) (*dto.ProductResponse, error)
	AddAddon(ctx context.Context, productID, uomID uint, req dto.CreateAddonRequest) (*dto.ProductResponse, error)
	RemoveAddon(ctx context.Context, productID, uomID, addonID uint) (*dto.ProductResponse, error)
}

type productService struct {
	repo      repository.ProductRepository
	uomRepo   repository.UOMRepository
	addonRepo repository.AddonRepository
	cache     *cache.ProductCache
}

func NewProductService(
	repo repository.ProductRepository,
	uomRepo repository.UOMRepository,
	addonRepo repository.AddonRepository,
	c *cache.ProductCache,
) ProductService {
	return &productService{repo: repo, uomRepo: uomRepo, addonRepo: addonRepo, cache: c}
}

var errNameTaken = apierror.Conflict("product with that name already exists")

// ── Reads ────────────────────────────────────────────────────────────────────

func (s *productService) FindAll(ctx context.Context) ([]dto.ProductResponse, error) {
	return cache.Fetch(ctx, s.cache, cache.ListKey, func(ctx context.Context) ([]dto.ProductResponse, error) {
		products, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}
		result := make([]dto.ProductResponse, 0, len(products))
		for _, p := range products {
			result = append(result, mapProduct(p))
		}
		return result, nil
	})
}

func (s *productService) FindOne(ctx context.Context, id uint) (*dto.ProductResponse, error) {
	return cache.Fetch(ctx, s.cache, cache.ProductKey(id), func(ctx context.Context) (*dto.ProductResponse, error) {
		p, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return nil, notFound(err, "product with id %d not found", id)
		}
		resp := mapProduct(*p)
		return &resp, nil
	})
}

// ── Create / Remove ──────────────────────────────────────────────────────────

func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	var created *model.Product
	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.ensureNameFree(tx, req.Name); err != nil {
			return err
		}
		p := newProduct(req)
		if err := s.repo.CreateTx(tx, &p); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return errNameTaken
			}
			return err
		}
		var err error
		created, err = s.repo.FindByIDTx(tx, p.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return s.committed(ctx, "created", created), nil
}

// Remove deletes the product and, through cascading foreign keys, its whole
// subtree. It returns the aggregate as it was before the delete.
func (s *productService) Remove(ctx context.Context, id uint) (*dto.ProductResponse, error) {
	var snapshot *model.Product
	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		p, err := s.loadForUpdate(tx, id)
		if err != nil {
			return err
		}
		snapshot = p
		return s.repo.DeleteTx(tx, id)
	})
	if err != nil {
		return nil, err
	}
	return s.committed(ctx, "removed", snapshot), nil
}

// ── Update ───────────────────────────────────────────────────────────────────
// Single transaction keyed by the product id:
//   1. reject an empty patch before touching storage
//   2. lock and load the current aggregate
//   3. validation pass over every referenced UOM / addon / addon item
//   4. merge pass, then persist the whole aggregate

func (s *productService) Update(ctx context.Context, id uint, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if req.IsEmpty() {
		return nil, apierror.BadRequest("update payload must not be empty")
	}

	var updated *model.Product
	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		p, err := s.loadForUpdate(tx, id)
		if err != nil {
			return err
		}
		if req.Name != nil && *req.Name != p.Name {
			if err := s.ensureNameFree(tx, *req.Name); err != nil {
				return err
			}
		}

		if err := mergeProduct(p, req, false); err != nil {
			return err
		}
		if err := mergeProduct(p, req, true); err != nil {
			return err
		}

		if err := s.repo.SaveTx(tx, p); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return errNameTaken
			}
			return err
		}
		updated, err = s.repo.FindByIDTx(tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return s.committed(ctx, "updated", updated), nil
}

// ── Attach / detach ──────────────────────────────────────────────────────────
// Each operation returns the aggregate reloaded inside the same transaction.

func (s *productService) AddUOM(ctx context.Context, productID uint, req dto.CreateUOMRequest) (*dto.ProductResponse, error) {
	return s.mutate(ctx, productID, "uom attached", func(tx *gorm.DB, p *model.Product) error {
		u := newUOM(req)
		u.ProductID = &p.ID
		return s.uomRepo.CreateTx(tx, &u)
	})
}

func (s *productService) RemoveUOM(ctx context.Context, productID, uomID uint) (*dto.ProductResponse, error) {
	return s.mutate(ctx, productID, "uom detached", func(tx *gorm.DB, p *model.Product) error {
		if findByID(p.UOMs, uomID, uomIDOf) == nil {
			return uomNotFound(uomID, productID)
		}
		return s.uomRepo.DeleteTx(tx, uomID)
	})
}

func (s *productService) AddAddon(ctx context.Context, productID, uomID uint, req dto.CreateAddonRequest) (*dto.ProductResponse, error) {
	return s.mutate(ctx, productID, "addon attached", func(tx *gorm.DB, p *model.Product) error {
		u := findByID(p.UOMs, uomID, uomIDOf)
		if u == nil {
			return uomNotFound(uomID, productID)
		}
		a := newAddon(req)
		a.UOMID = &u.ID
		return s.addonRepo.CreateTx(tx, &a)
	})
}

func (s *productService) RemoveAddon(ctx context.Context, productID, uomID, addonID uint) (*dto.ProductResponse, error) {
	return s.mutate(ctx, productID, "addon detached", func(tx *gorm.DB, p *model.Product) error {
		u := findByID(p.UOMs, uomID, uomIDOf)
		if u == nil {
			return uomNotFound(uomID, productID)
		}
		if findByID(u.Addons, addonID, addonIDOf) == nil {
			return apierror.NotFound(fmtNotFound("addon", addonID, "UOM", uomID))
		}
		return s.addonRepo.DeleteTx(tx, addonID)
	})
}

// ── Helpers ──────────────────────────────────────────────────────────────────

// mutate locks and loads the product, runs fn, and reloads the aggregate in
// the same transaction.
func (s *productService) mutate(ctx context.Context, productID uint, event string, fn func(tx *gorm.DB, p *model.Product) error) (*dto.ProductResponse, error) {
	var updated *model.Product
	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		p, err := s.loadForUpdate(tx, productID)
		if err != nil {
			return err
		}
		if err := fn(tx, p); err != nil {
			return err
		}
		updated, err = s.repo.FindByIDTx(tx, productID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return s.committed(ctx, event, updated), nil
}

func (s *productService) loadForUpdate(tx *gorm.DB, id uint) (*model.Product, error) {
	if err := s.repo.LockTx(tx, id); err != nil {
		return nil, notFound(err, "product with id %d not found", id)
	}
	p, err := s.repo.FindByIDTx(tx, id)
	if err != nil {
		return nil, notFound(err, "product with id %d not found", id)
	}
	return p, nil
}

func (s *productService) ensureNameFree(tx *gorm.DB, name string) error {
	existing, err := s.repo.FindByNameTx(tx, name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if existing != nil {
		return errNameTaken
	}
	return nil
}

// committed invalidates cached reads and maps the aggregate for the response.
func (s *productService) committed(ctx context.Context, event string, p *model.Product) *dto.ProductResponse {
	s.cache.Invalidate(ctx)
	log.Debug().Uint("product_id", p.ID).Msg("product " + event)
	resp := mapProduct(*p)
	return &resp
}

func uomNotFound(uomID, productID uint) error {
	return apierror.NotFound(fmtNotFound("UOM", uomID, "product", productID))
}
