package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/supermercado/backoffice-system/internal/api/metrics"
	"github.com/supermercado/backoffice-system/internal/core/ports"
)

// ProductHandler handles product CRUD.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// List returns all products.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Product
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Create adds a product.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      productRequest  true  "Product details"
// @Success      200   {object}  domain.Product
// @Failure      400   {object}  errorResponse
// @Router       /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		countPriceRejections(err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.service.Create(c.Request().Context(), toProductInput(req))
	if err != nil {
		return err
	}

	metrics.EntityOpsTotal.WithLabelValues("products", "create").Inc()
	return c.JSON(http.StatusOK, product)
}

// Update replaces a product's fields. A null precoPromocional removes the
// promotion.
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Product id"
// @Param        body  body      productRequest  true  "Product details"
// @Success      200   {object}  domain.Product
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		countPriceRejections(err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.service.Update(c.Request().Context(), c.Param("id"), toProductInput(req))
	if err != nil {
		return err
	}

	metrics.EntityOpsTotal.WithLabelValues("products", "update").Inc()
	return c.JSON(http.StatusOK, product)
}

// Delete removes a product.
//
// @Summary      Delete a product
// @Tags         products
// @Security     BearerAuth
// @Param        id  path  string  true  "Product id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	metrics.EntityOpsTotal.WithLabelValues("products", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}

// countPriceRejections increments the price rule counters only for the
// fields that actually failed.
func countPriceRejections(err error) {
	var ve *ValidationError
	if !errors.As(err, &ve) {
		return
	}
	if ve.FieldFailed("promoprice") {
		metrics.ValidationRejectionsTotal.WithLabelValues("promo_price").Inc()
	}
	if ve.FieldFailed("price") {
		metrics.ValidationRejectionsTotal.WithLabelValues("price").Inc()
	}
}

func toProductInput(req productRequest) ports.ProductInput {
	return ports.ProductInput{
		Name:        req.Name,
		Price:       req.Price,
		PromoPrice:  req.PromoPrice,
		Category:    req.Category,
		Description: req.Description,
		ExpiryDate:  req.ExpiryDate,
	}
}
