package ports

import (
	"context"

	"github.com/storefront-labs/admin-console/internal/core/domain/backend"
	"github.com/storefront-labs/admin-console/internal/core/domain/product"
	"github.com/storefront-labs/admin-console/internal/core/domain/query"
)

// ProductAPI defines the typed CRUD operations against the backend's
// /products collection.
type ProductAPI interface {
	// List returns products matching params, sorted by creation time
	// descending. The search filter is applied client-side.
	List(ctx context.Context, params product.ListParams) ([]product.Product, error)
	// Get looks up one product. The result distinguishes absence from
	// transient failure.
	Get(ctx context.Context, id string) (backend.Lookup[product.Product], error)
	Create(ctx context.Context, form product.FormData) (*product.Product, error)
	// Update re-fetches the product, merges form fields over it, and writes
	// the merged entity. Fails with backend.ErrNotFound when the product is
	// gone; transient lookup failures are surfaced as-is and issue no write.
	Update(ctx context.Context, id string, form product.FormData) (*product.Product, error)
	Delete(ctx context.Context, id string) error
}

// ProductService is the presentation-facing product surface: reads go through
// the query cache, mutations invalidate it.
type ProductService interface {
	ListProducts(ctx context.Context, params product.ListParams) ([]product.Product, query.Status, error)
	GetProduct(ctx context.Context, id string) (*product.Product, query.Status, error)
	CreateProduct(ctx context.Context, form product.FormData) (*product.Product, error)
	UpdateProduct(ctx context.Context, id string, form product.FormData) (*product.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}
