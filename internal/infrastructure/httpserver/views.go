package httpserver

import (
	"github.com/storefront-labs/admin-console/internal/core/domain/product"
	"github.com/storefront-labs/admin-console/internal/core/domain/query"
	"github.com/storefront-labs/admin-console/internal/core/domain/user"
	"github.com/storefront-labs/admin-console/internal/infrastructure/httpserver/helpers"
)

// productView decorates a product for display: formatted fields, category
// vocabulary, and the session's favorite flag.
type productView struct {
	product.Product
	PriceDisplay  string `json:"priceDisplay"`
	CreatedAtText string `json:"createdAtText"`
	CategoryLabel string `json:"categoryLabel"`
	CategoryColor string `json:"categoryColor"`
	Favorite      bool   `json:"favorite"`
}

func (s *Server) productToView(p product.Product) productView {
	return productView{
		Product:       p,
		PriceDisplay:  helpers.FormatPrice(p.Price),
		CreatedAtText: helpers.FormatDateShort(p.CreatedAt),
		CategoryLabel: p.Category.Label(),
		CategoryColor: p.Category.Color(),
		Favorite:      s.favorites.Contains(p.ID),
	}
}

func (s *Server) productsToViews(products []product.Product) []productView {
	views := make([]productView, 0, len(products))
	for _, p := range products {
		views = append(views, s.productToView(p))
	}
	return views
}

// userView decorates a user for display: role vocabulary and formatted dates.
type userView struct {
	user.User
	RoleColor     string `json:"roleColor"`
	CreatedAtText string `json:"createdAtText"`
}

func userToView(u user.User) userView {
	return userView{
		User:          u,
		RoleColor:     u.Role.Color(),
		CreatedAtText: helpers.FormatDateShort(u.CreatedAt),
	}
}

func usersToViews(users []user.User) []userView {
	views := make([]userView, 0, len(users))
	for _, u := range users {
		views = append(views, userToView(u))
	}
	return views
}

// listResponse is the envelope for paginated list endpoints. Total counts the
// filtered set before pagination; CacheStatus reports query-cache freshness.
type listResponse[T any] struct {
	Data        []T          `json:"data"`
	Total       int          `json:"total"`
	Page        int          `json:"page"`
	PageSize    int          `json:"pageSize"`
	CacheStatus query.Status `json:"cacheStatus"`
}
