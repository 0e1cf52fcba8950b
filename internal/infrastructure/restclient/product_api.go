package restclient

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/storefront-labs/admin-console/internal/core/domain/backend"
	"github.com/storefront-labs/admin-console/internal/core/domain/product"
	"github.com/storefront-labs/admin-console/internal/core/ports"
)

// defaultProductImage is attached to products created without an asset,
// matching what the panel has always done.
const defaultProductImage = "https://images.unsplash.com/photo-1560393464-5c69a73c5770?w=400"

type ProductAPI struct {
	client *Client
	logger *logrus.Logger
}

func NewProductAPI(client *Client, logger *logrus.Logger) ports.ProductAPI {
	return &ProductAPI{client: client, logger: logger}
}

func (a *ProductAPI) List(ctx context.Context, params product.ListParams) ([]product.Product, error) {
	path := "/products"
	if params.Category != "" && params.Category != product.CategoryAll {
		path += "?category=" + params.Category.String()
	}

	var products []product.Product
	if err := a.client.Request(ctx, http.MethodGet, path, nil, &products); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	if params.Search != "" {
		needle := strings.ToLower(params.Search)
		filtered := products[:0]
		for _, p := range products {
			if strings.Contains(strings.ToLower(p.Name), needle) ||
				strings.Contains(strings.ToLower(p.Description), needle) {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	sort.SliceStable(products, func(i, j int) bool {
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})
	return products, nil
}

func (a *ProductAPI) Get(ctx context.Context, id string) (backend.Lookup[product.Product], error) {
	var p product.Product
	err := a.client.Request(ctx, http.MethodGet, "/products/"+id, nil, &p)
	if err == nil {
		return backend.Found(p), nil
	}
	if backend.IsNotFound(err) {
		return backend.NotFound[product.Product](), nil
	}
	a.logger.WithError(err).WithField("product_id", id).Debug("transient failure looking up product")
	return backend.Transient[product.Product](err), nil
}

func (a *ProductAPI) Create(ctx context.Context, form product.FormData) (*product.Product, error) {
	newProduct := product.Product{
		ID:          strconv.FormatInt(time.Now().UnixMilli(), 10),
		Name:        form.Name,
		Price:       form.Price,
		Description: form.Description,
		Category:    form.Category,
		Image:       defaultProductImage,
		CreatedAt:   time.Now().UTC(),
	}

	var created product.Product
	if err := a.client.Request(ctx, http.MethodPost, "/products", newProduct, &created); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return &created, nil
}

func (a *ProductAPI) Update(ctx context.Context, id string, form product.FormData) (*product.Product, error) {
	lookup, err := a.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	switch lookup.State {
	case backend.LookupNotFound:
		return nil, fmt.Errorf("product %s: %w", id, backend.ErrNotFound)
	case backend.LookupTransient:
		// A transient failure says nothing about existence; refuse to guess
		// and issue no write.
		return nil, fmt.Errorf("failed to re-fetch product %s: %w", id, lookup.Err)
	}

	merged := lookup.Entity
	merged.Name = form.Name
	merged.Price = form.Price
	merged.Description = form.Description
	merged.Category = form.Category

	var updated product.Product
	if err := a.client.Request(ctx, http.MethodPut, "/products/"+id, merged, &updated); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return &updated, nil
}

func (a *ProductAPI) Delete(ctx context.Context, id string) error {
	if err := a.client.Request(ctx, http.MethodDelete, "/products/"+id, nil, nil); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

var _ ports.ProductAPI = (*ProductAPI)(nil)
