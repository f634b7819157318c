package service

import (
	"github.com/Waer1/complex-product-CRUD/internal/dto"
	"github.com/Waer1/complex-product-CRUD/internal/model"
)

// ─── model → response ────────────────────────────────────────────────────────

func mapProduct(p model.Product) dto.ProductResponse {
	uoms := make([]dto.UOMResponse, 0, len(p.UOMs))
	for _, u := range p.UOMs {
		uoms = append(uoms, mapUOM(u))
	}
	return dto.ProductResponse{ID: p.ID, Name: p.Name, UOMs: uoms}
}

func mapUOM(u model.UOM) dto.UOMResponse {
	resp := dto.UOMResponse{
		ID:        u.ID,
		ProductID: u.ProductID,
		Name:      u.Name,
		Addons:    make([]dto.AddonResponse, 0, len(u.Addons)),
	}
	if u.Barcode != nil {
		resp.UOMBarcode = &dto.UOMBarcodeResponse{ID: u.Barcode.ID, Barcode: u.Barcode.Barcode}
	}
	if u.Image != nil {
		resp.UOMImage = &dto.UOMImageResponse{ID: u.Image.ID, URL: u.Image.URL}
	}
	for _, a := range u.Addons {
		resp.Addons = append(resp.Addons, mapAddon(a))
	}
	return resp
}

func mapAddon(a model.Addon) dto.AddonResponse {
	items := make([]dto.AddonItemResponse, 0, len(a.AddonItems))
	for _, it := range a.AddonItems {
		items = append(items, dto.AddonItemResponse{ID: it.ID, Name: it.Name})
	}
	return dto.AddonResponse{ID: a.ID, UOMID: a.UOMID, Name: a.Name, AddonItems: items}
}

// ─── request → model ─────────────────────────────────────────────────────────

func newProduct(req dto.CreateProductRequest) model.Product {
	p := model.Product{Name: req.Name, UOMs: make([]model.UOM, 0, len(req.UOMs))}
	for _, u := range req.UOMs {
		p.UOMs = append(p.UOMs, newUOM(u))
	}
	return p
}

func newUOM(req dto.CreateUOMRequest) model.UOM {
	u := model.UOM{Name: req.Name, Addons: make([]model.Addon, 0, len(req.Addons))}
	if req.UOMBarcode != nil {
		u.Barcode = &model.UOMBarcode{Barcode: req.UOMBarcode.Barcode}
	}
	if req.UOMImage != nil {
		u.Image = &model.UOMImage{URL: req.UOMImage.URL}
	}
	for _, a := range req.Addons {
		u.Addons = append(u.Addons, newAddon(a))
	}
	return u
}

func newAddon(req dto.CreateAddonRequest) model.Addon {
	a := model.Addon{Name: req.Name, AddonItems: make([]model.AddonItem, 0, len(req.AddonItems))}
	for _, it := range req.AddonItems {
		a.AddonItems = append(a.AddonItems, model.AddonItem{Name: it.Name})
	}
	return a
}
