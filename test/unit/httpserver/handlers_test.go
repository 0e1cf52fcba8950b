package httpserver_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/storefront-labs/admin-console/internal/application/favorites"
	"github.com/storefront-labs/admin-console/internal/core/domain/backend"
	"github.com/storefront-labs/admin-console/internal/core/domain/product"
	"github.com/storefront-labs/admin-console/internal/core/domain/query"
	"github.com/storefront-labs/admin-console/internal/core/domain/user"
	adminhttp "github.com/storefront-labs/admin-console/internal/infrastructure/httpserver"
	"github.com/storefront-labs/admin-console/test/mocks"
)

func newTestServer(deps adminhttp.ServerDeps) *httptest.Server {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	srv := adminhttp.NewServer(&adminhttp.ServerConfig{
		Host: "127.0.0.1", Port: "0",
		ReadTimeout: time.Second, WriteTimeout: time.Second, IdleTimeout: time.Second,
	}, logger, deps)
	return httptest.NewServer(srv.Echo())
}

func doJSON(t *testing.T, ts *httptest.Server, method, path string, body any) (*http.Response, []byte) {
	t.Helper()
	var b []byte
	if body != nil {
		var err error
		b, err = json.Marshal(body)
		require.NoError(t, err)
	}
	req, err := http.NewRequest(method, ts.URL+path, bytes.NewReader(b))
	require.NoError(t, err)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	buf := new(bytes.Buffer)
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp, buf.Bytes()
}

func TestListProducts_DecoratesWithFavoritesAndFormatting(t *testing.T) {
	productSvc := &mocks.ProductServiceMock{}
	productSvc.ListProductsFn = func(ctx context.Context, params product.ListParams) ([]product.Product, query.Status, error) {
		return []product.Product{
			{ID: "1", Name: "Lamp", Price: 149.9, Category: product.CategoryHome, CreatedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
			{ID: "2", Name: "Phone", Price: 999, Category: product.CategoryElectronics, CreatedAt: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		}, query.StatusFresh, nil
	}
	favs := favorites.NewStore()
	favs.Toggle("2")

	ts := newTestServer(adminhttp.ServerDeps{ProductService: productSvc, UserService: &mocks.UserServiceMock{}, Favorites: favs})
	defer ts.Close()

	resp, body := doJSON(t, ts, http.MethodGet, "/api/v1/products", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Data []struct {
			ID            string `json:"id"`
			PriceDisplay  string `json:"priceDisplay"`
			CreatedAtText string `json:"createdAtText"`
			CategoryLabel string `json:"categoryLabel"`
			Favorite      bool   `json:"favorite"`
		} `json:"data"`
		Total       int          `json:"total"`
		Page        int          `json:"page"`
		PageSize    int          `json:"pageSize"`
		CacheStatus query.Status `json:"cacheStatus"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	require.Equal(t, 2, out.Total)
	require.Equal(t, 1, out.Page)
	require.Equal(t, query.StatusFresh, out.CacheStatus)
	require.Len(t, out.Data, 2)
	require.False(t, out.Data[0].Favorite)
	require.True(t, out.Data[1].Favorite)
	require.Equal(t, "₺149.90", out.Data[0].PriceDisplay)
	require.Equal(t, "Mar 1, 2024", out.Data[0].CreatedAtText)
	require.Equal(t, "Home", out.Data[0].CategoryLabel)
}

func TestListProducts_StaleDataStillServed(t *testing.T) {
	productSvc := &mocks.ProductServiceMock{}
	productSvc.ListProductsFn = func(ctx context.Context, params product.ListParams) ([]product.Product, query.Status, error) {
		return []product.Product{{ID: "1", Name: "Lamp", Category: product.CategoryHome}},
			query.StatusStale, fmt.Errorf("refetch failed: %w", &backend.NetworkError{Err: fmt.Errorf("dial tcp")})
	}
	ts := newTestServer(adminhttp.ServerDeps{ProductService: productSvc, UserService: &mocks.UserServiceMock{}, Favorites: favorites.NewStore()})
	defer ts.Close()

	resp, body := doJSON(t, ts, http.MethodGet, "/api/v1/products", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, "cached data outranks the refetch error")

	var out struct {
		CacheStatus query.Status `json:"cacheStatus"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	require.Equal(t, query.StatusStale, out.CacheStatus)
}

func TestGetProduct_ErrorMapping(t *testing.T) {
	productSvc := &mocks.ProductServiceMock{}
	productSvc.GetProductFn = func(ctx context.Context, id string) (*product.Product, query.Status, error) {
		switch id {
		case "missing":
			return nil, query.StatusFresh, fmt.Errorf("product %s: %w", id, backend.ErrNotFound)
		case "unreachable":
			return nil, query.StatusLoading, fmt.Errorf("failed: %w", &backend.NetworkError{Err: fmt.Errorf("dial tcp")})
		default:
			return &product.Product{ID: id, Name: "Thing", Category: product.CategoryBooks}, query.StatusFresh, nil
		}
	}
	ts := newTestServer(adminhttp.ServerDeps{ProductService: productSvc, UserService: &mocks.UserServiceMock{}, Favorites: favorites.NewStore()})
	defer ts.Close()

	resp, _ := doJSON(t, ts, http.MethodGet, "/api/v1/products/1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, ts, http.MethodGet, "/api/v1/products/missing", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, ts, http.MethodGet, "/api/v1/products/unreachable", nil)
	require.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestCreateProduct_ValidationFailureReportsFields(t *testing.T) {
	created := false
	productSvc := &mocks.ProductServiceMock{CreateProductFn: func(ctx context.Context, form product.FormData) (*product.Product, error) {
		created = true
		return &product.Product{ID: "new"}, nil
	}}
	ts := newTestServer(adminhttp.ServerDeps{ProductService: productSvc, UserService: &mocks.UserServiceMock{}, Favorites: favorites.NewStore()})
	defer ts.Close()

	resp, body := doJSON(t, ts, http.MethodPost, "/api/v1/products", map[string]any{
		"name": "", "price": -5, "description": "", "category": "electronics",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.False(t, created, "invalid form must not reach the service")

	var out struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	require.Equal(t, "validation failed", out.Error)
	require.Contains(t, out.Fields, "name")
	require.Contains(t, out.Fields, "price")
}

func TestCreateUser_ValidationFailureReportsFields(t *testing.T) {
	ts := newTestServer(adminhttp.ServerDeps{ProductService: &mocks.ProductServiceMock{}, UserService: &mocks.UserServiceMock{}, Favorites: favorites.NewStore()})
	defer ts.Close()

	resp, body := doJSON(t, ts, http.MethodPost, "/api/v1/users", map[string]any{
		"name": "A", "email": "not-an-email", "role": "user", "phone": "abc", "address": "short",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var out struct {
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	require.Contains(t, out.Fields, "email")
	require.Contains(t, out.Fields, "phone")
	require.Contains(t, out.Fields, "address")
}

func TestCreateUser_Success(t *testing.T) {
	userSvc := &mocks.UserServiceMock{CreateUserFn: func(ctx context.Context, form user.FormData) (*user.User, error) {
		return &user.User{ID: "new", Name: form.Name, Email: form.Email, Role: form.Role, CreatedAt: time.Now()}, nil
	}}
	ts := newTestServer(adminhttp.ServerDeps{ProductService: &mocks.ProductServiceMock{}, UserService: userSvc, Favorites: favorites.NewStore()})
	defer ts.Close()

	resp, body := doJSON(t, ts, http.MethodPost, "/api/v1/users", map[string]any{
		"name": "Dana", "email": "dana@example.com", "role": "Manager",
		"phone": "+1 555 000 1111", "address": "1 Long Street, Springfield",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out struct {
		ID        string `json:"id"`
		RoleColor string `json:"roleColor"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	require.Equal(t, "new", out.ID)
	require.NotEmpty(t, out.RoleColor)
}

func TestFavoritesEndpoints_ToggleAndList(t *testing.T) {
	ts := newTestServer(adminhttp.ServerDeps{ProductService: &mocks.ProductServiceMock{}, UserService: &mocks.UserServiceMock{}, Favorites: favorites.NewStore()})
	defer ts.Close()

	resp, body := doJSON(t, ts, http.MethodPost, "/api/v1/favorites", map[string]string{"productId": "42"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var toggled struct {
		ProductID string `json:"productId"`
		Favorite  bool   `json:"favorite"`
	}
	require.NoError(t, json.Unmarshal(body, &toggled))
	require.True(t, toggled.Favorite)

	resp, body = doJSON(t, ts, http.MethodGet, "/api/v1/favorites", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var listed struct {
		ProductIDs []string `json:"productIds"`
		Count      int      `json:"count"`
	}
	require.NoError(t, json.Unmarshal(body, &listed))
	require.Equal(t, []string{"42"}, listed.ProductIDs)
	require.Equal(t, 1, listed.Count)

	resp, body = doJSON(t, ts, http.MethodPost, "/api/v1/favorites", map[string]string{"productId": "42"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &toggled))
	require.False(t, toggled.Favorite, "second toggle removes")

	resp, _ = doJSON(t, ts, http.MethodPost, "/api/v1/favorites", map[string]string{})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestListCategoriesAndRoles(t *testing.T) {
	ts := newTestServer(adminhttp.ServerDeps{ProductService: &mocks.ProductServiceMock{}, UserService: &mocks.UserServiceMock{}, Favorites: favorites.NewStore()})
	defer ts.Close()

	resp, body := doJSON(t, ts, http.MethodGet, "/api/v1/categories", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var categories []struct {
		Value string `json:"value"`
		Label string `json:"label"`
	}
	require.NoError(t, json.Unmarshal(body, &categories))
	require.Len(t, categories, len(product.Categories))
	require.Equal(t, "all", categories[0].Value)

	resp, body = doJSON(t, ts, http.MethodGet, "/api/v1/roles", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var roles []struct {
		Value string `json:"value"`
	}
	require.NoError(t, json.Unmarshal(body, &roles))
	require.Len(t, roles, len(user.Roles))
}

func TestHealthEndpoint_NoCheckersIsHealthy(t *testing.T) {
	ts := newTestServer(adminhttp.ServerDeps{ProductService: &mocks.ProductServiceMock{}, UserService: &mocks.UserServiceMock{}, Favorites: favorites.NewStore()})
	defer ts.Close()

	resp, body := doJSON(t, ts, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Status  string `json:"status"`
		Service string `json:"service"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	require.Equal(t, "healthy", out.Status)
	require.Equal(t, "admin-console", out.Service)
}
