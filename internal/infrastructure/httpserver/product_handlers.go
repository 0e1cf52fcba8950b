package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storefront-labs/admin-console/internal/core/domain/backend"
	"github.com/storefront-labs/admin-console/internal/core/domain/product"
	"github.com/storefront-labs/admin-console/internal/infrastructure/httpserver/helpers"
)

// Product handlers
func (s *Server) listProducts(c echo.Context) error {
	params := product.ListParams{
		Search:   c.QueryParam("search"),
		Category: product.Category(c.QueryParam("category")),
	}
	if params.Category == "" {
		params.Category = product.CategoryAll
	}

	products, status, err := s.productService.ListProducts(c.Request().Context(), params)
	if err != nil && products == nil {
		return mapBackendError(err)
	}
	if err != nil {
		// Stale data with a failed refetch behind it: serve what we have.
		s.logger.WithError(err).Warn("serving stale product list after refetch failure")
	}

	page, pageSize := helpers.PageParams(c)
	return c.JSON(http.StatusOK, listResponse[productView]{
		Data:        s.productsToViews(helpers.Paginate(products, page, pageSize)),
		Total:       len(products),
		Page:        page,
		PageSize:    pageSize,
		CacheStatus: status,
	})
}

func (s *Server) getProduct(c echo.Context) error {
	p, _, err := s.productService.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapBackendError(err)
	}
	return c.JSON(http.StatusOK, s.productToView(*p))
}

func (s *Server) createProduct(c echo.Context) error {
	var form product.FormData
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if problems := form.Validate(); len(problems) > 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "validation failed", "fields": problems})
	}

	created, err := s.productService.CreateProduct(c.Request().Context(), form)
	if err != nil {
		return mapBackendError(err)
	}
	return c.JSON(http.StatusCreated, s.productToView(*created))
}

func (s *Server) updateProduct(c echo.Context) error {
	var form product.FormData
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if problems := form.Validate(); len(problems) > 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "validation failed", "fields": problems})
	}

	updated, err := s.productService.UpdateProduct(c.Request().Context(), c.Param("id"), form)
	if err != nil {
		return mapBackendError(err)
	}
	return c.JSON(http.StatusOK, s.productToView(*updated))
}

func (s *Server) deleteProduct(c echo.Context) error {
	if err := s.productService.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return mapBackendError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) listCategories(c echo.Context) error {
	type categoryView struct {
		Value string `json:"value"`
		Label string `json:"label"`
		Color string `json:"color"`
	}
	views := make([]categoryView, 0, len(product.Categories))
	for _, cat := range product.Categories {
		views = append(views, categoryView{Value: cat.String(), Label: cat.Label(), Color: cat.Color()})
	}
	return c.JSON(http.StatusOK, views)
}

// mapBackendError translates core errors into HTTP responses: absent entities
// are 404, anything the backend could not answer is 502.
func mapBackendError(err error) error {
	if backend.IsNotFound(err) {
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	}
	var netErr *backend.NetworkError
	if errors.As(err, &netErr) {
		return echo.NewHTTPError(http.StatusBadGateway, "backend unreachable")
	}
	var statusErr *backend.StatusError
	if errors.As(err, &statusErr) {
		return echo.NewHTTPError(http.StatusBadGateway, "backend error")
	}
	return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
}
