package service

import (
	"fmt"

	"github.com/Waer1/complex-product-CRUD/internal/apierror"
	"github.com/Waer1/complex-product-CRUD/internal/dto"
	"github.com/Waer1/complex-product-CRUD/internal/model"
)

// findByID returns a pointer into items for the element whose id matches, or nil.
func findByID[T any](items []T, id uint, idOf func(*T) uint) *T {
	for i := range items {
		if idOf(&items[i]) == id {
			return &items[i]
		}
	}
	return nil
}

// eachMatch pairs every patch with the child it references by id and calls fn
// on the pair. It stops with a NotFound error at the first patch whose id has
// no child, before fn runs for that patch.
func eachMatch[C, P any](kind string, children []C, patches []P, childID func(*C) uint, patchID func(*P) uint, fn func(*C, *P) error) error {
	for i := range patches {
		p := &patches[i]
		c := findByID(children, patchID(p), childID)
		if c == nil {
			return apierror.NotFound(fmt.Sprintf("%s with id %d not found", kind, patchID(p)))
		}
		if err := fn(c, p); err != nil {
			return err
		}
	}
	return nil
}

func fmtNotFound(kind string, id uint, parent string, parentID uint) string {
	return fmt.Sprintf("%s with id %d not found in %s %d", kind, id, parent, parentID)
}

// assign overwrites dst when the patch carries a value.
func assign[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func uomIDOf(u *model.UOM) uint { return u.ID }
func addonIDOf(a *model.Addon) uint { return a.ID }
func addonItemIDOf(i *model.AddonItem) uint { return i.ID }
func uomPatchID(p *dto.UpdateProductUOMRequest) uint { return p.UOMID }
func addonPatchID(p *dto.UpdateProductAddonRequest) uint { return p.AddonID }
func itemPatchID(p *dto.UpdateAddonItemRequest) uint { return p.AddonItemID }

// mergeProduct walks patch over the loaded aggregate p. With apply unset the
// walk only checks that every referenced UOM, addon and addon item exists
// under its stated parent and leaves p untouched.
func mergeProduct(p *model.Product, patch dto.UpdateProductRequest, apply bool) error {
	err := eachMatch("UOM", p.UOMs, patch.UOMs, uomIDOf, uomPatchID, func(u *model.UOM, up *dto.UpdateProductUOMRequest) error {
		err := eachMatch("addon", u.Addons, up.Addons, addonIDOf, addonPatchID, func(a *model.Addon, ap *dto.UpdateProductAddonRequest) error {
			err := eachMatch("addon item", a.AddonItems, ap.AddonItems, addonItemIDOf, itemPatchID, func(it *model.AddonItem, ip *dto.UpdateAddonItemRequest) error {
				if apply {
					assign(&it.Name, ip.Name)
				}
				return nil
			})
			if err != nil {
				return err
			}
			if apply {
				assign(&a.Name, ap.Name)
			}
			return nil
		})
		if err != nil {
			return err
		}
		if apply {
			mergeUOMFields(u, up.Name, up.UOMBarcode, up.UOMImage)
		}
		return nil
	})
	if err != nil {
		return err
	}
	if apply {
		assign(&p.Name, patch.Name)
	}
	return nil
}

// mergeUOMFields shallow-merges the UOM's own fields, then its barcode and image.
// Existing barcode and image records keep their identity.
func mergeUOMFields(u *model.UOM, name *string, barcode *dto.UpdateUOMBarcodeRequest, image *dto.UpdateUOMImageRequest) {
	assign(&u.Name, name)
	if barcode != nil && barcode.Barcode != nil {
		if u.Barcode == nil {
			u.Barcode = &model.UOMBarcode{UOMID: u.ID}
		}
		u.Barcode.Barcode = *barcode.Barcode
	}
	if image != nil && image.URL != nil {
		if u.Image == nil {
			u.Image = &model.UOMImage{UOMID: u.ID}
		}
		u.Image.URL = *image.URL
	}
}

// mergeAddonFields applies a standalone addon patch. Item ids that do not
// belong to the addon are skipped.
func mergeAddonFields(a *model.Addon, patch dto.UpdateAddonRequest) {
	for i := range patch.AddonItems {
		ip := &patch.AddonItems[i]
		if it := findByID(a.AddonItems, ip.AddonItemID, addonItemIDOf); it != nil {
			assign(&it.Name, ip.Name)
		}
	}
	assign(&a.Name, patch.Name)
}
