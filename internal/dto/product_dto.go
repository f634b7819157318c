package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateProductRequest struct {
	Name string             `json:"name" validate:"required"`
	UOMs []CreateUOMRequest `json:"uoms" validate:"required,dive"`
}

// UpdateProductRequest is a partial patch over the whole product tree.
// Only the fields present in the payload are applied.
type UpdateProductRequest struct {
	Name *string                   `json:"name" validate:"omitempty,min=1"`
	UOMs []UpdateProductUOMRequest `json:"uoms" validate:"omitempty,dive"`
}

// IsEmpty reports whether the patch carries no field at all.
func (r UpdateProductRequest) IsEmpty() bool {
	return r.Name == nil && r.UOMs == nil
}

type UpdateProductUOMRequest struct {
	UOMID      uint                        `json:"uomId"      validate:"required"`
	Name       *string                     `json:"name"       validate:"omitempty,min=1"`
	UOMBarcode *UpdateUOMBarcodeRequest    `json:"uomBarcode"`
	UOMImage   *UpdateUOMImageRequest      `json:"uomImage"`
	Addons     []UpdateProductAddonRequest `json:"addons"     validate:"omitempty,dive"`
}

type UpdateProductAddonRequest struct {
	AddonID    uint                     `json:"addonId"    validate:"required"`
	Name       *string                  `json:"name"       validate:"omitempty,min=1"`
	AddonItems []UpdateAddonItemRequest `json:"addonItems" validate:"omitempty,dive"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductResponse struct {
	ID   uint          `json:"id"`
	Name string        `json:"name"`
	UOMs []UOMResponse `json:"uoms"`
}
