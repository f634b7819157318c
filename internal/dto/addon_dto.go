package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateAddonRequest struct {
	Name       string                   `json:"name"       validate:"required"`
	AddonItems []CreateAddonItemRequest `json:"addonItems" validate:"required,dive"`
}

type CreateAddonItemRequest struct {
	Name string `json:"name" validate:"required"`
}

type UpdateAddonRequest struct {
	Name       *string                  `json:"name"       validate:"omitempty,min=1"`
	AddonItems []UpdateAddonItemRequest `json:"addonItems" validate:"omitempty,dive"`
}

type UpdateAddonItemRequest struct {
	AddonItemID uint    `json:"addonItemId" validate:"required"`
	Name        *string `json:"name"        validate:"omitempty,min=1"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type AddonResponse struct {
	ID         uint                `json:"id"`
	UOMID      *uint               `json:"uomId,omitempty"`
	Name       string              `json:"name"`
	AddonItems []AddonItemResponse `json:"addonItems"`
}

type AddonItemResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
