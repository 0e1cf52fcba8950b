package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/storefront-labs/admin-console/internal/core/domain/backend"
	"github.com/storefront-labs/admin-console/internal/core/domain/query"
	"github.com/storefront-labs/admin-console/internal/core/domain/user"
	"github.com/storefront-labs/admin-console/internal/core/ports"
)

// UserService routes user reads through the query cache and invalidates the
// affected views after successful mutations.
type UserService struct {
	api    ports.UserAPI
	cache  ports.QueryCache
	logger *logrus.Logger
}

func NewUserService(api ports.UserAPI, cache ports.QueryCache, logger *logrus.Logger) ports.UserService {
	return &UserService{api: api, cache: cache, logger: logger}
}

func (s *UserService) ListUsers(ctx context.Context) ([]user.User, query.Status, error) {
	return fetchAs(ctx, s.cache, query.UserListKey(), func(ctx context.Context) ([]user.User, error) {
		return s.api.List(ctx)
	})
}

func (s *UserService) GetUser(ctx context.Context, id string) (*user.User, query.Status, error) {
	u, status, err := fetchAs(ctx, s.cache, query.UserDetailKey(id), func(ctx context.Context) (*user.User, error) {
		lookup, err := s.api.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		switch lookup.State {
		case backend.LookupNotFound:
			return nil, nil
		case backend.LookupTransient:
			return nil, lookup.Err
		}
		entity := lookup.Entity
		return &entity, nil
	})
	if err != nil {
		return u, status, err
	}
	if u == nil {
		return nil, status, fmt.Errorf("user %s: %w", id, backend.ErrNotFound)
	}
	return u, status, nil
}

func (s *UserService) CreateUser(ctx context.Context, form user.FormData) (*user.User, error) {
	created, err := s.api.Create(ctx, form)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(query.UserListPrefix)
	s.logger.WithFields(logrus.Fields{"user_id": created.ID, "email": created.Email}).Info("user created")
	return created, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id string, form user.FormData) (*user.User, error) {
	updated, err := s.api.Update(ctx, id, form)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(query.UserListPrefix)
	s.cache.Invalidate(query.UserDetailKey(id))
	s.logger.WithField("user_id", id).Info("user updated")
	return updated, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	if err := s.api.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(query.UserListPrefix)
	s.cache.Invalidate(query.UserDetailKey(id))
	s.logger.WithField("user_id", id).Info("user deleted")
	return nil
}

var _ ports.UserService = (*UserService)(nil)
