package handler

import (
	"net/http"

	"github.com/Waer1/complex-product-CRUD/internal/dto"
	"github.com/Waer1/complex-product-CRUD/internal/service"

	"github.com/gin-gonic/gin"
)

type ProductsHandler struct{ svc service.ProductService }

func NewProductsHandler(svc service.ProductService) *ProductsHandler {
	return &ProductsHandler{svc: svc}
}

// Create godoc
// @Summary Create a product with its full UOM tree
// @Tags product
// @Accept json
// @Produce json
// @Param body body dto.CreateProductRequest true "Product"
// @Success 201 {object} dto.ProductResponse
// @Failure 409 {object} apierror.APIError
// @Failure 422 {object} apierror.ValidationError
// @Router /product [post]
func (h *ProductsHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
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
// @Summary List every product with its subtree
// @Tags product
// @Produce json
// @Success 200 {array} dto.ProductResponse
// @Router /product [get]
func (h *ProductsHandler) FindAll(c *gin.Context) {
	resp, err := h.svc.FindAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// FindOne godoc
// @Summary Get a product by id
// @Tags product
// @Produce json
// @Param id path int true "Product id"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} apierror.APIError
// @Router /product/{id} [get]
func (h *ProductsHandler) FindOne(c *gin.Context) {
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
// @Summary Partially update a product tree
// @Description Only fields present in the body are applied. Every uomId, addonId and addonItemId must exist under its parent.
// @Tags product
// @Accept json
// @Produce json
// @Param id path int true "Product id"
// @Param body body dto.UpdateProductRequest true "Patch"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} apierror.APIError
// @Failure 404 {object} apierror.APIError
// @Failure 409 {object} apierror.APIError
// @Router /product/{id} [patch]
func (h *ProductsHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateProductRequest
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
// @Summary Delete a product and everything below it
// @Tags product
// @Produce json
// @Param id path int true "Product id"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} apierror.APIError
// @Router /product/{id} [delete]
func (h *ProductsHandler) Remove(c *gin.Context) {
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

// AddUOM godoc
// @Summary Attach a new UOM tree to a product
// @Tags product
// @Accept json
// @Produce json
// @Param id path int true "Product id"
// @Param body body dto.CreateUOMRequest true "CreateUOM"
// @Success 201 {object} dto.ProductResponse
// @Failure 404 {object} apierror.APIError
// @Failure 422 {object} apierror.ValidationError
// @Router /product/{id}/uoms [post]
func (h *ProductsHandler) AddUOM(c *gin.Context) {
	productID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.CreateUOMRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AddUOM(c.Request.Context(), productID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// RemoveUOM godoc
// @Summary Delete a UOM of a product
// @Tags product
// @Produce json
// @Param id path int true "Product id"
// @Param uomId path int true "UOM id"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} apierror.APIError
// @Router /product/{id}/uoms/{uomId} [delete]
func (h *ProductsHandler) RemoveUOM(c *gin.Context) {
	productID, ok := pathID(c, "id")
	if !ok {
		return
	}
	uomID, ok := pathID(c, "uomId")
	if !ok {
		return
	}
	resp, err := h.svc.RemoveUOM(c.Request.Context(), productID, uomID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AddAddon godoc
// @Summary Attach a new addon to a product UOM
// @Tags product
// @Accept json
// @Produce json
// @Param id path int true "Product id"
// @Param uomId path int true "UOM id"
// @Param body body dto.CreateAddonRequest true "CreateAddon"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} apierror.APIError
// @Failure 422 {object} apierror.ValidationError
// @Router /product/{id}/uoms/{uomId}/addons [post]
func (h *ProductsHandler) AddAddon(c *gin.Context) {
	productID, ok := pathID(c, "id")
	if !ok {
		return
	}
	uomID, ok := pathID(c, "uomId")
	if !ok {
		return
	}
	var req dto.CreateAddonRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AddAddon(c.Request.Context(), productID, uomID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RemoveAddon godoc
// @Summary Delete an addon of a product UOM
// @Tags product
// @Produce json
// @Param id path int true "Product id"
// @Param uomId path int true "UOM id"
// @Param addonId path int true "Addon id"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} apierror.APIError
// @Router /product/{id}/uoms/{uomId}/addons/{addonId} [delete]
func (h *ProductsHandler) RemoveAddon(c *gin.Context) {
	productID, ok := pathID(c, "id")
	if !ok {
		return
	}
	uomID, ok := pathID(c, "uomId")
	if !ok {
		return
	}
	addonID, ok := pathID(c, "addonId")
	if !ok {
		return
	}
	resp, err := h.svc.RemoveAddon(c.Request.Context(), productID, uomID, addonID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
