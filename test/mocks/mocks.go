package mocks

import (
	"context"
	"fmt"

	"github.com/storefront-labs/admin-console/internal/core/domain/backend"
	"github.com/storefront-labs/admin-console/internal/core/domain/product"
	"github.com/storefront-labs/admin-console/internal/core/domain/query"
	"github.com/storefront-labs/admin-console/internal/core/domain/user"
	"github.com/storefront-labs/admin-console/internal/core/ports"
)

// ProductAPIMock is a lightweight mock for ProductAPI
type ProductAPIMock struct {
	ListFn   func(ctx context.Context, params product.ListParams) ([]product.Product, error)
	GetFn    func(ctx context.Context, id string) (backend.Lookup[product.Product], error)
	CreateFn func(ctx context.Context, form product.FormData) (*product.Product, error)
	UpdateFn func(ctx context.Context, id string, form product.FormData) (*product.Product, error)
	DeleteFn func(ctx context.Context, id string) error
}

func (m *ProductAPIMock) List(ctx context.Context, params product.ListParams) ([]product.Product, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, params)
	}
	return nil, nil
}
func (m *ProductAPIMock) Get(ctx context.Context, id string) (backend.Lookup[product.Product], error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return backend.NotFound[product.Product](), nil
}
func (m *ProductAPIMock) Create(ctx context.Context, form product.FormData) (*product.Product, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, form)
	}
	return nil, fmt.Errorf("not implemented")
}
func (m *ProductAPIMock) Update(ctx context.Context, id string, form product.FormData) (*product.Product, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, form)
	}
	return nil, fmt.Errorf("not implemented")
}
func (m *ProductAPIMock) Delete(ctx context.Context, id string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

// UserAPIMock is a lightweight mock for UserAPI
type UserAPIMock struct {
	ListFn   func(ctx context.Context) ([]user.User, error)
	GetFn    func(ctx context.Context, id string) (backend.Lookup[user.User], error)
	CreateFn func(ctx context.Context, form user.FormData) (*user.User, error)
	UpdateFn func(ctx context.Context, id string, form user.FormData) (*user.User, error)
	DeleteFn func(ctx context.Context, id string) error
}

func (m *UserAPIMock) List(ctx context.Context) ([]user.User, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}
func (m *UserAPIMock) Get(ctx context.Context, id string) (backend.Lookup[user.User], error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return backend.NotFound[user.User](), nil
}
func (m *UserAPIMock) Create(ctx context.Context, form user.FormData) (*user.User, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, form)
	}
	return nil, fmt.Errorf("not implemented")
}
func (m *UserAPIMock) Update(ctx context.Context, id string, form user.FormData) (*user.User, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, form)
	}
	return nil, fmt.Errorf("not implemented")
}
func (m *UserAPIMock) Delete(ctx context.Context, id string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

// QueryCacheMock passes fetches straight through by default and records
// invalidated prefixes.
type QueryCacheMock struct {
	FetchFn      func(ctx context.Context, key string, fn query.FetchFunc) (any, query.Status, error)
	SubscribeFn  func(key string) func()
	InvalidateFn func(prefix string)

	Invalidated []string
}

func (m *QueryCacheMock) Fetch(ctx context.Context, key string, fn query.FetchFunc) (any, query.Status, error) {
	if m.FetchFn != nil {
		return m.FetchFn(ctx, key, fn)
	}
	v, err := fn(ctx)
	if err != nil {
		return nil, query.StatusLoading, err
	}
	return v, query.StatusFresh, nil
}
func (m *QueryCacheMock) Subscribe(key string) func() {
	if m.SubscribeFn != nil {
		return m.SubscribeFn(key)
	}
	return func() {}
}
func (m *QueryCacheMock) Invalidate(prefix string) {
	if m.InvalidateFn != nil {
		m.InvalidateFn(prefix)
		return
	}
	m.Invalidated = append(m.Invalidated, prefix)
}

// ProductServiceMock is a lightweight mock for ProductService
type ProductServiceMock struct {
	ListProductsFn  func(ctx context.Context, params product.ListParams) ([]product.Product, query.Status, error)
	GetProductFn    func(ctx context.Context, id string) (*product.Product, query.Status, error)
	CreateProductFn func(ctx context.Context, form product.FormData) (*product.Product, error)
	UpdateProductFn func(ctx context.Context, id string, form product.FormData) (*product.Product, error)
	DeleteProductFn func(ctx context.Context, id string) error
}

func (m *ProductServiceMock) ListProducts(ctx context.Context, params product.ListParams) ([]product.Product, query.Status, error) {
	if m.ListProductsFn != nil {
		return m.ListProductsFn(ctx, params)
	}
	return nil, query.StatusFresh, nil
}
func (m *ProductServiceMock) GetProduct(ctx context.Context, id string) (*product.Product, query.Status, error) {
	if m.GetProductFn != nil {
		return m.GetProductFn(ctx, id)
	}
	return nil, query.StatusLoading, fmt.Errorf("product %s: %w", id, backend.ErrNotFound)
}
func (m *ProductServiceMock) CreateProduct(ctx context.Context, form product.FormData) (*product.Product, error) {
	if m.CreateProductFn != nil {
		return m.CreateProductFn(ctx, form)
	}
	return nil, fmt.Errorf("not implemented")
}
func (m *ProductServiceMock) UpdateProduct(ctx context.Context, id string, form product.FormData) (*product.Product, error) {
	if m.UpdateProductFn != nil {
		return m.UpdateProductFn(ctx, id, form)
	}
	return nil, fmt.Errorf("not implemented")
}
func (m *ProductServiceMock) DeleteProduct(ctx context.Context, id string) error {
	if m.DeleteProductFn != nil {
		return m.DeleteProductFn(ctx, id)
	}
	return nil
}

// UserServiceMock is a lightweight mock for UserService
type UserServiceMock struct {
	ListUsersFn  func(ctx context.Context) ([]user.User, query.Status, error)
	GetUserFn    func(ctx context.Context, id string) (*user.User, query.Status, error)
	CreateUserFn func(ctx context.Context, form user.FormData) (*user.User, error)
	UpdateUserFn func(ctx context.Context, id string, form user.FormData) (*user.User, error)
	DeleteUserFn func(ctx context.Context, id string) error
}

func (m *UserServiceMock) ListUsers(ctx context.Context) ([]user.User, query.Status, error) {
	if m.ListUsersFn != nil {
		return m.ListUsersFn(ctx)
	}
	return nil, query.StatusFresh, nil
}
func (m *UserServiceMock) GetUser(ctx context.Context, id string) (*user.User, query.Status, error) {
	if m.GetUserFn != nil {
		return m.GetUserFn(ctx, id)
	}
	return nil, query.StatusLoading, fmt.Errorf("user %s: %w", id, backend.ErrNotFound)
}
func (m *UserServiceMock) CreateUser(ctx context.Context, form user.FormData) (*user.User, error) {
	if m.CreateUserFn != nil {
		return m.CreateUserFn(ctx, form)
	}
	return nil, fmt.Errorf("not implemented")
}
func (m *UserServiceMock) UpdateUser(ctx context.Context, id string, form user.FormData) (*user.User, error) {
	if m.UpdateUserFn != nil {
		return m.UpdateUserFn(ctx, id, form)
	}
	return nil, fmt.Errorf("not implemented")
}
func (m *UserServiceMock) DeleteUser(ctx context.Context, id string) error {
	if m.DeleteUserFn != nil {
		return m.DeleteUserFn(ctx, id)
	}
	return nil
}

var (
	_ ports.ProductAPI     = (*ProductAPIMock)(nil)
	_ ports.UserAPI        = (*UserAPIMock)(nil)
	_ ports.QueryCache     = (*QueryCacheMock)(nil)
	_ ports.ProductService = (*ProductServiceMock)(nil)
	_ ports.UserService    = (*UserServiceMock)(nil)
)
