package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateUOMRequest struct {
	Name       string                   `json:"name"       validate:"required"`
	UOMBarcode *CreateUOMBarcodeRequest `json:"uomBarcode" validate:"required"`
	UOMImage   *CreateUOMImageRequest   `json:"uomImage"   validate:"required"`
	Addons     []CreateAddonRequest     `json:"addons"     validate:"required,dive"`
}

type CreateUOMBarcodeRequest struct {
	Barcode string `json:"barcode" validate:"required"`
}

type CreateUOMImageRequest struct {
	URL string `json:"url" validate:"required"`
}

// UpdateUOMRequest patches a standalone UOM. Addons are managed through the product routes.
type UpdateUOMRequest struct {
	Name       *string                  `json:"name"       validate:"omitempty,min=1"`
	UOMBarcode *UpdateUOMBarcodeRequest `json:"uomBarcode"`
	UOMImage   *UpdateUOMImageRequest   `json:"uomImage"`
}

type UpdateUOMBarcodeRequest struct {
	Barcode *string `json:"barcode" validate:"omitempty,min=1"`
}

type UpdateUOMImageRequest struct {
	URL *string `json:"url" validate:"omitempty,min=1"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type UOMResponse struct {
	ID         uint                `json:"id"`
	ProductID  *uint               `json:"productId,omitempty"`
	Name       string              `json:"name"`
	UOMBarcode *UOMBarcodeResponse `json:"uomBarcode"`
	UOMImage   *UOMImageResponse   `json:"uomImage"`
	Addons     []AddonResponse     `json:"addons"`
}

type UOMBarcodeResponse struct {
	ID      uint   `json:"id"`
	Barcode string `json:"barcode"`
}

type UOMImageResponse struct {
	ID  uint   `json:"id"`
	URL string `json:"url"`
}
