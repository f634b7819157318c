package handler

import (
	"net/http"

	"github.com/Waer1/complex-product-CRUD/internal/dto"
	"github.com/Waer1/complex-product-CRUD/internal/service"

	"github.com/gin-gonic/gin"
)

type AddonsHandler struct{ svc service.AddonService }

func NewAddonsHandler(svc service.AddonService) *AddonsHandler {
	return &AddonsHandler{svc: svc}
}

// Create godoc
// @Summary Create a standalone addon with its items
// @Tags addon
// @Accept json
// @Produce json
// @Param body body dto.CreateAddonRequest true "CreateAddon"
// @Success 201 {object} dto.AddonResponse
// @Failure 422 {object} apierror.ValidationError
// @Router /addon [post]
func (h *AddonsHandler) Create(c *gin.Context) {
	var req dto.CreateAddonRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// FindAll godoc
// @Summary List every addon with its items
// @Tags addon
// @Produce json
// @Success 200 {array} dto.AddonResponse
// @Router /addon [get]
func (h *AddonsHandler) FindAll(c *gin.Context) {
	resp, err := h.svc.FindAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// FindOne godoc
// @Summary Get an addon by id
// @Tags addon
// @Produce json
// @Param id path int true "Addon id"
// @Success 200 {object} dto.AddonResponse
// @Failure 404 {object} apierror.APIError
// @Router /addon/{id} [get]
func (h *AddonsHandler) FindOne(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.FindOne(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update godoc
// @Summary Partially update an addon and its items
// @Tags addon
// @Accept json
// @Produce json
// @Param id path int true "Addon id"
// @Param body body dto.UpdateAddonRequest true "UpdateAddon"
// @Success 200 {object} dto.AddonResponse
// @Failure 404 {object} apierror.APIError
// @Failure 422 {object} apierror.ValidationError
// @Router /addon/{id} [patch]
func (h *AddonsHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateAddonRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Remove godoc
// @Summary Delete an addon and its items
// @Tags addon
// @Produce json
// @Param id path int true "Addon id"
// @Success 200 {object} dto.AddonResponse
// @Failure 404 {object} apierror.APIError
// @Router /addon/{id} [delete]
func (h *AddonsHandler) Remove(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Remove(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
