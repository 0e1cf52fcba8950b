package backendmock

import (
	"time"

	"github.com/storefront-labs/admin-console/internal/core/domain/product"
	"github.com/storefront-labs/admin-console/internal/core/domain/user"
)

func day(value string) time.Time {
	t, _ := time.Parse("2006-01-02", value)
	return t
}

// DefaultProducts returns the seeded product fixtures.
func DefaultProducts() []product.Product {
	return []product.Product{
		{
			ID:          "1",
			Name:        "Wireless Headphones",
			Price:       129.99,
			Description: "Noise-cancelling over-ear headphones with 30h battery",
			Category:    product.CategoryElectronics,
			Image:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400",
			CreatedAt:   day("2024-01-15"),
		},
		{
			ID:          "2",
			Name:        "Smartphone Case",
			Price:       19.90,
			Description: "Shock-absorbing case for 6.1 inch phones",
			Category:    product.CategoryElectronics,
			Image:       "https://images.unsplash.com/photo-1601593346740-925612772716?w=400",
			CreatedAt:   day("2024-02-20"),
		},
		{
			ID:          "3",
			Name:        "Running Shoes",
			Price:       89.50,
			Description: "Lightweight trainers for daily runs",
			Category:    product.CategorySports,
			Image:       "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=400",
			CreatedAt:   day("2024-03-05"),
		},
		{
			ID:          "4",
			Name:        "Cotton T-Shirt",
			Price:       14.99,
			Description: "Plain crew-neck tee, 100% organic cotton",
			Category:    product.CategoryClothing,
			Image:       "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=400",
			CreatedAt:   day("2024-01-28"),
		},
		{
			ID:          "5",
			Name:        "Desk Lamp",
			Price:       34.00,
			Description: "Adjustable LED lamp with warm and cold modes",
			Category:    product.CategoryHome,
			Image:       "https://images.unsplash.com/photo-1507473885765-e6ed057f782c?w=400",
			CreatedAt:   day("2024-02-02"),
		},
		{
			ID:          "6",
			Name:        "Science Fiction Anthology",
			Price:       24.95,
			Description: "Collected short stories, hardcover edition",
			Category:    product.CategoryBooks,
			Image:       "https://images.unsplash.com/photo-1544947950-fa07a98d237f?w=400",
			CreatedAt:   day("2024-03-12"),
		},
	}
}

// DefaultUsers returns the seeded user fixtures.
func DefaultUsers() []user.User {
	return []user.User{
		{
			ID:        "1",
			Name:      "Alice Turner",
			Email:     "alice.turner@example.com",
			Role:      user.RoleAdmin,
			Avatar:    "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=200",
			Phone:     "+1 555 010 2345",
			Address:   "12 Harbor Street, Portland",
			CreatedAt: day("2024-01-10"),
		},
		{
			ID:        "2",
			Name:      "Marcus Webb",
			Email:     "marcus.webb@example.com",
			Role:      user.RoleManager,
			Avatar:    "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=200",
			Phone:     "+1 555 010 8821",
			Address:   "480 Juniper Avenue, Austin",
			CreatedAt: day("2024-02-14"),
		},
		{
			ID:        "3",
			Name:      "Priya Natarajan",
			Email:     "priya.n@example.com",
			Role:      user.RoleUser,
			Avatar:    "https://images.unsplash.com/photo-1534528741775-53994a69daeb?w=200",
			Phone:     "+1 555 010 6674",
			Address:   "77 Meridian Lane, Chicago",
			CreatedAt: day("2024-03-01"),
		},
	}
}
