package handler

import (
	"net/http"

	"github.com/Waer1/complex-product-CRUD/internal/dto"
	"github.com/Waer1/complex-product-CRUD/internal/service"

	"github.com/gin-gonic/gin"
)

type UOMsHandler struct{ svc service.UOMService }

func NewUOMsHandler(svc service.UOMService) *UOMsHandler {
	return &UOMsHandler{svc: svc}
}

// Create godoc
// @Summary Create a standalone UOM tree
// @Tags uom
// @Accept json
// @Produce json
// @Param body body dto.CreateUOMRequest true "CreateUOM"
// @Success 201 {object} dto.UOMResponse
// @Failure 422 {object} apierror.ValidationError
// @Router /uom [post]
func (h *UOMsHandler) Create(c *gin.Context) {
	var req dto.CreateUOMRequest
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
// @Summary List every UOM with its subtree
// @Tags uom
// @Produce json
// @Success 200 {array} dto.UOMResponse
// @Router /uom [get]
func (h *UOMsHandler) FindAll(c *gin.Context) {
	resp, err := h.svc.FindAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// FindOne godoc
// @Summary Get a UOM by id
// @Tags uom
// @Produce json
// @Param id path int true "UOM id"
// @Success 200 {object} dto.UOMResponse
// @Failure 404 {object} apierror.APIError
// @Router /uom/{id} [get]
func (h *UOMsHandler) FindOne(c *gin.Context) {
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
// @Summary Partially update a UOM, its barcode and image
// @Tags uom
// @Accept json
// @Produce json
// @Param id path int true "UOM id"
// @Param body body dto.UpdateUOMRequest true "UpdateUOM"
// @Success 200 {object} dto.UOMResponse
// @Failure 404 {object} apierror.APIError
// @Failure 422 {object} apierror.ValidationError
// @Router /uom/{id} [patch]
func (h *UOMsHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateUOMRequest
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
// @Summary Delete a UOM and everything below it
// @Tags uom
// @Produce json
// @Param id path int true "UOM id"
// @Success 200 {object} dto.UOMResponse
// @Failure 404 {object} apierror.APIError
// @Router /uom/{id} [delete]
func (h *UOMsHandler) Remove(c *gin.Context) {
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
