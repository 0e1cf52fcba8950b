// Package backendmock is an in-memory stand-in for the REST backend the admin
// console consumes: plain CRUD over /products and /users with seeded
// fixtures. It backs local development and the integration tests.
package backendmock

import (
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"github.com/storefront-labs/admin-console/internal/core/domain/product"
	"github.com/storefront-labs/admin-console/internal/core/domain/user"
)

type Server struct {
	echo   *echo.Echo
	logger *logrus.Logger

	mu       sync.RWMutex
	products map[string]product.Product
	users    map[string]user.User
}

func NewServer(logger *logrus.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	s := &Server{
		echo:     e,
		logger:   logger,
		products: make(map[string]product.Product),
		users:    make(map[string]user.User),
	}
	s.Seed(DefaultProducts(), DefaultUsers())

	e.GET("/products", s.listProducts)
	e.GET("/products/:id", s.getProduct)
	e.POST("/products", s.createProduct)
	e.PUT("/products/:id", s.updateProduct)
	e.DELETE("/products/:id", s.deleteProduct)

	e.GET("/users", s.listUsers)
	e.GET("/users/:id", s.getUser)
	e.POST("/users", s.createUser)
	e.PUT("/users/:id", s.updateUser)
	e.DELETE("/users/:id", s.deleteUser)

	return s
}

// Seed replaces the stored fixtures.
func (s *Server) Seed(products []product.Product, users []user.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = make(map[string]product.Product, len(products))
	for _, p := range products {
		s.products[p.ID] = p
	}
	s.users = make(map[string]user.User, len(users))
	for _, u := range users {
		s.users[u.ID] = u
	}
}

func (s *Server) Start(addr string) error {
	s.logger.Infof("Starting fixture backend on %s", addr)
	return s.echo.Start(addr)
}

func (s *Server) Echo() *echo.Echo {
	return s.echo
}

// Product handlers
func (s *Server) listProducts(c echo.Context) error {
	category := c.QueryParam("category")

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]product.Product, 0, len(s.products))
	for _, p := range s.products {
		if category != "" && p.Category.String() != category {
			continue
		}
		out = append(out, p)
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) getProduct(c echo.Context) error {
	s.mu.RLock()
	p, ok := s.products[c.Param("id")]
	s.mu.RUnlock()
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	}
	return c.JSON(http.StatusOK, p)
}

func (s *Server) createProduct(c echo.Context) error {
	var p product.Product
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	s.mu.Lock()
	s.products[p.ID] = p
	s.mu.Unlock()
	return c.JSON(http.StatusCreated, p)
}

func (s *Server) updateProduct(c echo.Context) error {
	id := c.Param("id")
	var p product.Product
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[id]; !ok {
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	}
	p.ID = id
	s.products[id] = p
	return c.JSON(http.StatusOK, p)
}

func (s *Server) deleteProduct(c echo.Context) error {
	id := c.Param("id")

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[id]; !ok {
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	}
	delete(s.products, id)
	return c.NoContent(http.StatusOK)
}

// User handlers
func (s *Server) listUsers(c echo.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]user.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) getUser(c echo.Context) error {
	s.mu.RLock()
	u, ok := s.users[c.Param("id")]
	s.mu.RUnlock()
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "user not found")
	}
	return c.JSON(http.StatusOK, u)
}

func (s *Server) createUser(c echo.Context) error {
	var u user.User
	if err := c.Bind(&u); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}

	s.mu.Lock()
	s.users[u.ID] = u
	s.mu.Unlock()
	return c.JSON(http.StatusCreated, u)
}

func (s *Server) updateUser(c echo.Context) error {
	id := c.Param("id")
	var u user.User
	if err := c.Bind(&u); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return echo.NewHTTPError(http.StatusNotFound, "user not found")
	}
	u.ID = id
	s.users[id] = u
	return c.JSON(http.StatusOK, u)
}

func (s *Server) deleteUser(c echo.Context) error {
	id := c.Param("id")

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return echo.NewHTTPError(http.StatusNotFound, "user not found")
	}
	delete(s.users, id)
	return c.NoContent(http.StatusOK)
}
