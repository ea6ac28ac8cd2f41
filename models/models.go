package models

// MenuCategory defines the fixed set of menu sections
type MenuCategory string

const (
	CategoryTiffin    MenuCategory = "tiffin"
	CategoryFastFood  MenuCategory = "fast-food"
	CategorySnacks    MenuCategory = "snacks"
	CategoryMeals     MenuCategory = "meals"
	CategoryBeverages MenuCategory = "beverages"
	CategoryDesserts  MenuCategory = "desserts"
)

// AllCategories lists every menu section in display order
var AllCategories = []MenuCategory{
	CategoryTiffin,
	CategoryFastFood,
	CategorySnacks,
	CategoryMeals,
	CategoryBeverages,
	CategoryDesserts,
}

// CustomizationOption is an optional add-on offered on a menu item
type CustomizationOption struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	PriceAdd float64 `json:"price_add"`
}

// MenuItem is one orderable dish. Items are created once at catalog
// load and never mutated afterwards.
type MenuItem struct {
	ID                   string                `json:"id"`
	Name                 string                `json:"name"`
	Description          string                `json:"description"`
	Price                float64               `json:"price"`
	Image                string                `json:"image"`
	Category             MenuCategory          `json:"category"`
	IsSpecial            bool                  `json:"is_special,omitempty"`
	CustomizationOptions []CustomizationOption `json:"customization_options,omitempty"`
}

// CartLine is one entry in a cart. Name, price, image and category are
// snapshots taken at add time and are not re-synced if the catalog changes.
type CartLine struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Price          float64      `json:"price"`
	Quantity       int          `json:"quantity"`
	Image          string       `json:"image"`
	Category       MenuCategory `json:"category"`
	Customizations []string     `json:"customizations,omitempty"`
}

// Identity is the signed-in principal, regular user or administrator.
// Mobile is empty for the administrator.
type Identity struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Mobile  string `json:"mobile"`
	IsAdmin bool   `json:"is_admin"`
}
