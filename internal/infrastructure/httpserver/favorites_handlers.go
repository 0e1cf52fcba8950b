package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Favorites handlers. The set lives in process memory only; toggling never
// touches the backend or the query cache.
func (s *Server) listFavorites(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"productIds": s.favorites.List(),
		"count":      s.favorites.Len(),
	})
}

func (s *Server) toggleFavorite(c echo.Context) error {
	var req struct {
		ProductID string `json:"productId"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.ProductID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "productId is required")
	}

	favorite := s.favorites.Toggle(req.ProductID)
	return c.JSON(http.StatusOK, map[string]any{
		"productId": req.ProductID,
		"favorite":  favorite,
	})
}
