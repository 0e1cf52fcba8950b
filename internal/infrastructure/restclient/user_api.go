package restclient

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/storefront-labs/admin-console/internal/core/domain/backend"
	"github.com/storefront-labs/admin-console/internal/core/domain/user"
	"github.com/storefront-labs/admin-console/internal/core/ports"
)

// defaultUserAvatar is attached to users created without an asset.
const defaultUserAvatar = "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=200"

type UserAPI struct {
	client *Client
	logger *logrus.Logger
}

func NewUserAPI(client *Client, logger *logrus.Logger) ports.UserAPI {
	return &UserAPI{client: client, logger: logger}
}

func (a *UserAPI) List(ctx context.Context) ([]user.User, error) {
	var users []user.User
	if err := a.client.Request(ctx, http.MethodGet, "/users", nil, &users); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	sort.SliceStable(users, func(i, j int) bool {
		return users[i].CreatedAt.After(users[j].CreatedAt)
	})
	return users, nil
}

func (a *UserAPI) Get(ctx context.Context, id string) (backend.Lookup[user.User], error) {
	var u user.User
	err := a.client.Request(ctx, http.MethodGet, "/users/"+id, nil, &u)
	if err == nil {
		return backend.Found(u), nil
	}
	if backend.IsNotFound(err) {
		return backend.NotFound[user.User](), nil
	}
	a.logger.WithError(err).WithField("user_id", id).Debug("transient failure looking up user")
	return backend.Transient[user.User](err), nil
}

func (a *UserAPI) Create(ctx context.Context, form user.FormData) (*user.User, error) {
	newUser := user.User{
		ID:        strconv.FormatInt(time.Now().UnixMilli(), 10),
		Name:      form.Name,
		Email:     form.Email,
		Role:      form.Role,
		Avatar:    defaultUserAvatar,
		Phone:     form.Phone,
		Address:   form.Address,
		CreatedAt: time.Now().UTC(),
	}

	var created user.User
	if err := a.client.Request(ctx, http.MethodPost, "/users", newUser, &created); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &created, nil
}

func (a *UserAPI) Update(ctx context.Context, id string, form user.FormData) (*user.User, error) {
	lookup, err := a.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	switch lookup.State {
	case backend.LookupNotFound:
		return nil, fmt.Errorf("user %s: %w", id, backend.ErrNotFound)
	case backend.LookupTransient:
		return nil, fmt.Errorf("failed to re-fetch user %s: %w", id, lookup.Err)
	}

	merged := lookup.Entity
	merged.Name = form.Name
	merged.Email = form.Email
	merged.Role = form.Role
	merged.Phone = form.Phone
	merged.Address = form.Address

	var updated user.User
	if err := a.client.Request(ctx, http.MethodPut, "/users/"+id, merged, &updated); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return &updated, nil
}

func (a *UserAPI) Delete(ctx context.Context, id string) error {
	if err := a.client.Request(ctx, http.MethodDelete, "/users/"+id, nil, nil); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

var _ ports.UserAPI = (*UserAPI)(nil)
