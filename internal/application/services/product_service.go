package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/storefront-labs/admin-console/internal/core/domain/backend"
	"github.com/storefront-labs/admin-console/internal/core/domain/product"
	"github.com/storefront-labs/admin-console/internal/core/domain/query"
	"github.com/storefront-labs/admin-console/internal/core/ports"
)

// ProductService routes product reads through the query cache and follows
// every successful mutation with the invalidations the cached views need.
type ProductService struct {
	api    ports.ProductAPI
	cache  ports.QueryCache
	logger *logrus.Logger
}

func NewProductService(api ports.ProductAPI, cache ports.QueryCache, logger *logrus.Logger) ports.ProductService {
	return &ProductService{api: api, cache: cache, logger: logger}
}

func (s *ProductService) ListProducts(ctx context.Context, params product.ListParams) ([]product.Product, query.Status, error) {
	key := query.ProductListKey(params.Search, params.Category.String())
	return fetchAs(ctx, s.cache, key, func(ctx context.Context) ([]product.Product, error) {
		return s.api.List(ctx, params)
	})
}

func (s *ProductService) GetProduct(ctx context.Context, id string) (*product.Product, query.Status, error) {
	p, status, err := fetchAs(ctx, s.cache, query.ProductDetailKey(id), func(ctx context.Context) (*product.Product, error) {
		lookup, err := s.api.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		switch lookup.State {
		case backend.LookupNotFound:
			// Absence is a cacheable answer; detail invalidation clears it.
			return nil, nil
		case backend.LookupTransient:
			return nil, lookup.Err
		}
		entity := lookup.Entity
		return &entity, nil
	})
	if err != nil {
		return p, status, err
	}
	if p == nil {
		return nil, status, fmt.Errorf("product %s: %w", id, backend.ErrNotFound)
	}
	return p, status, nil
}

func (s *ProductService) CreateProduct(ctx context.Context, form product.FormData) (*product.Product, error) {
	created, err := s.api.Create(ctx, form)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(query.ProductListPrefix)
	s.logger.WithFields(logrus.Fields{"product_id": created.ID, "name": created.Name}).Info("product created")
	return created, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, id string, form product.FormData) (*product.Product, error) {
	updated, err := s.api.Update(ctx, id, form)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(query.ProductListPrefix)
	s.cache.Invalidate(query.ProductDetailKey(id))
	s.logger.WithField("product_id", id).Info("product updated")
	return updated, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.api.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(query.ProductListPrefix)
	s.cache.Invalidate(query.ProductDetailKey(id))
	s.logger.WithField("product_id", id).Info("product deleted")
	return nil
}

var _ ports.ProductService = (*ProductService)(nil)
