package product

import "time"

type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	Category    Category  `json:"category"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Category string

const (
	CategoryAll         Category = "all"
	CategoryElectronics Category = "electronics"
	CategoryClothing    Category = "clothing"
	CategoryBooks       Category = "books"
	CategoryHome        Category = "home"
	CategorySports      Category = "sports"
)

// Categories lists the selectable categories, the "all" sentinel first.
var Categories = []Category{
	CategoryAll,
	CategoryElectronics,
	CategoryClothing,
	CategoryBooks,
	CategoryHome,
	CategorySports,
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryElectronics, CategoryClothing, CategoryBooks, CategoryHome, CategorySports:
		return true
	default:
		return false
	}
}

// Label returns the display label for the category. Unrecognized
// categories fall back to their raw code.
func (c Category) Label() string {
	switch c {
	case CategoryAll:
		return "All Categories"
	case CategoryElectronics:
		return "Electronics"
	case CategoryClothing:
		return "Clothing"
	case CategoryBooks:
		return "Books"
	case CategoryHome:
		return "Home"
	case CategorySports:
		return "Sports"
	default:
		return string(c)
	}
}

// Color returns the display color tag for the category.
func (c Category) Color() string {
	switch c {
	case CategoryElectronics:
		return "blue"
	case CategoryClothing:
		return "purple"
	case CategoryBooks:
		return "green"
	case CategoryHome:
		return "orange"
	case CategorySports:
		return "red"
	default:
		return "default"
	}
}

// FormData carries the mutable product fields submitted by create/edit forms.
type FormData struct {
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
}

// Validate checks form-level constraints and returns a map of field name to
// problem description. An empty map means the form is acceptable.
func (f *FormData) Validate() map[string]string {
	problems := make(map[string]string)
	if f.Name == "" {
		problems["name"] = "name is required"
	}
	if f.Price < 0 {
		problems["price"] = "price must not be negative"
	}
	if !f.Category.IsValid() {
		problems["category"] = "unknown category"
	}
	return problems
}

// ListParams are the accepted filters for product listings. Search is applied
// client-side over name and description; Category is forwarded to the backend
// unless it is empty or the "all" sentinel.
type ListParams struct {
	Search   string
	Category Category
}
