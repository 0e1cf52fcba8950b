package ports

import (
	"context"

	"github.com/storefront-labs/admin-console/internal/core/domain/backend"
	"github.com/storefront-labs/admin-console/internal/core/domain/query"
	"github.com/storefront-labs/admin-console/internal/core/domain/user"
)

// UserAPI defines the typed CRUD operations against the backend's /users
// collection.
type UserAPI interface {
	// List returns all users sorted by creation time descending.
	List(ctx context.Context) ([]user.User, error)
	// Get looks up one user. The result distinguishes absence from transient
	// failure.
	Get(ctx context.Context, id string) (backend.Lookup[user.User], error)
	Create(ctx context.Context, form user.FormData) (*user.User, error)
	// Update re-fetches the user, merges form fields over it, and writes the
	// merged entity. Fails with backend.ErrNotFound when the user is gone;
	// transient lookup failures are surfaced as-is and issue no write.
	Update(ctx context.Context, id string, form user.FormData) (*user.User, error)
	Delete(ctx context.Context, id string) error
}

// UserService is the presentation-facing user surface: reads go through the
// query cache, mutations invalidate it.
type UserService interface {
	ListUsers(ctx context.Context) ([]user.User, query.Status, error)
	GetUser(ctx context.Context, id string) (*user.User, query.Status, error)
	CreateUser(ctx context.Context, form user.FormData) (*user.User, error)
	UpdateUser(ctx context.Context, id string, form user.FormData) (*user.User, error)
	DeleteUser(ctx context.Context, id string) error
}
