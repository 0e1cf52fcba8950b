package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storefront-labs/admin-console/internal/core/domain/user"
	"github.com/storefront-labs/admin-console/internal/infrastructure/httpserver/helpers"
)

// User handlers
func (s *Server) listUsers(c echo.Context) error {
	users, status, err := s.userService.ListUsers(c.Request().Context())
	if err != nil && users == nil {
		return mapBackendError(err)
	}
	if err != nil {
		s.logger.WithError(err).Warn("serving stale user list after refetch failure")
	}

	page, pageSize := helpers.PageParams(c)
	return c.JSON(http.StatusOK, listResponse[userView]{
		Data:        usersToViews(helpers.Paginate(users, page, pageSize)),
		Total:       len(users),
		Page:        page,
		PageSize:    pageSize,
		CacheStatus: status,
	})
}

func (s *Server) getUser(c echo.Context) error {
	u, _, err := s.userService.GetUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapBackendError(err)
	}
	return c.JSON(http.StatusOK, userToView(*u))
}

func (s *Server) createUser(c echo.Context) error {
	var form user.FormData
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if problems := form.Validate(); len(problems) > 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "validation failed", "fields": problems})
	}

	created, err := s.userService.CreateUser(c.Request().Context(), form)
	if err != nil {
		return mapBackendError(err)
	}
	return c.JSON(http.StatusCreated, userToView(*created))
}

func (s *Server) updateUser(c echo.Context) error {
	var form user.FormData
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if problems := form.Validate(); len(problems) > 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "validation failed", "fields": problems})
	}

	updated, err := s.userService.UpdateUser(c.Request().Context(), c.Param("id"), form)
	if err != nil {
		return mapBackendError(err)
	}
	return c.JSON(http.StatusOK, userToView(*updated))
}

func (s *Server) deleteUser(c echo.Context) error {
	if err := s.userService.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return mapBackendError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) listRoles(c echo.Context) error {
	type roleView struct {
		Value string `json:"value"`
		Label string `json:"label"`
		Color string `json:"color"`
	}
	views := make([]roleView, 0, len(user.Roles))
	for _, r := range user.Roles {
		views = append(views, roleView{Value: r.String(), Label: r.String(), Color: r.Color()})
	}
	return c.JSON(http.StatusOK, views)
}
