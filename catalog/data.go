package catalog

import "github.com/Rajender1411/canteen-savor-hub/models"

// defaultItems is the compiled-in canteen menu: 14 items across the
// six sections. A real backend would serve this from its own catalog
// service behind the same provider contract.
var defaultItems = []models.MenuItem{
	{
		ID:          "tiffin-1",
		Name:        "Masala Dosa",
		Description: "Crispy rice crepe filled with spiced potato, served with sambar and chutney",
		Price:       60,
		Image:       "https://images.unsplash.com/photo-1589301760014-d929f3979dbc?q=80&w=500",
		Category:    models.CategoryTiffin,
		IsSpecial:   true,
	},
	{
		ID:          "tiffin-2",
		Name:        "Idli Sambar",
		Description: "Steamed rice cakes served with lentil soup and coconut chutney",
		Price:       40,
		Image:       "https://images.unsplash.com/photo-1589301761270-da3cab0d887c?q=80&w=500",
		Category:    models.CategoryTiffin,
	},
	{
		ID:          "tiffin-3",
		Name:        "Pongal",
		Description: "Traditional South Indian rice and lentil porridge with ghee",
		Price:       50,
		Image:       "https://images.unsplash.com/photo-1605196560327-31c4f1194d91?q=80&w=500",
		Category:    models.CategoryTiffin,
	},
	{
		ID:          "fast-food-1",
		Name:        "Veg Burger",
		Description: "Garden-fresh vegetable patty with lettuce, tomato, and special sauce",
		Price:       70,
		Image:       "https://images.unsplash.com/photo-1565299507177-b0ac66763828?q=80&w=500",
		Category:    models.CategoryFastFood,
		CustomizationOptions: []models.CustomizationOption{
			{ID: "cheese", Name: "Extra Cheese", PriceAdd: 15},
			{ID: "patty", Name: "Double Patty", PriceAdd: 30},
		},
	},
	{
		ID:          "fast-food-2",
		Name:        "Cheese Pizza",
		Description: "Hand-stretched crust with signature sauce and mozzarella cheese",
		Price:       120,
		Image:       "https://images.unsplash.com/photo-1513104890138-7c749659a591?q=80&w=500",
		Category:    models.CategoryFastFood,
		IsSpecial:   true,
		CustomizationOptions: []models.CustomizationOption{
			{ID: "cheese", Name: "Extra Cheese", PriceAdd: 25},
			{ID: "veg", Name: "Extra Vegetables", PriceAdd: 20},
		},
	},
	{
		ID:          "snacks-1",
		Name:        "Samosa",
		Description: "Crispy pastry filled with spiced potatoes and peas",
		Price:       20,
		Image:       "https://images.unsplash.com/photo-1567337710282-00832b415979?q=80&w=500",
		Category:    models.CategorySnacks,
	},
	{
		ID:          "snacks-2",
		Name:        "Veg Puff",
		Description: "Flaky pastry filled with spiced mixed vegetables",
		Price:       25,
		Image:       "https://images.unsplash.com/photo-1558961363-fa8fdf82db35?q=80&w=500",
		Category:    models.CategorySnacks,
	},
	{
		ID:          "snacks-3",
		Name:        "French Fries",
		Description: "Golden fried potato fingers tossed with peri-peri seasoning",
		Price:       50,
		Image:       "https://images.unsplash.com/photo-1573080496219-bb080dd4f877?q=80&w=500",
		Category:    models.CategorySnacks,
	},
	{
		ID:          "meals-1",
		Name:        "Veg Thali",
		Description: "Complete meal with rice, dal, vegetables, roti, and dessert",
		Price:       120,
		Image:       "https://images.unsplash.com/photo-1626778668571-8a4134ab0628?q=80&w=500",
		Category:    models.CategoryMeals,
		IsSpecial:   true,
	},
	{
		ID:          "meals-2",
		Name:        "Veg Biryani",
		Description: "Fragrant rice cooked with mixed vegetables and aromatic spices",
		Price:       100,
		Image:       "https://images.unsplash.com/photo-1589916047639-06004efe271e?q=80&w=500",
		Category:    models.CategoryMeals,
	},
	{
		ID:          "beverages-1",
		Name:        "Masala Chai",
		Description: "Traditional Indian spiced tea with milk",
		Price:       20,
		Image:       "https://images.unsplash.com/photo-1561336313-0bd5e0b27ec8?q=80&w=500",
		Category:    models.CategoryBeverages,
	},
	{
		ID:          "beverages-2",
		Name:        "Cold Coffee",
		Description: "Chilled coffee blend topped with cream",
		Price:       60,
		Image:       "https://images.unsplash.com/photo-1578314675229-995406e7c8cf?q=80&w=500",
		Category:    models.CategoryBeverages,
		CustomizationOptions: []models.CustomizationOption{
			{ID: "ice-cream", Name: "Add Ice Cream", PriceAdd: 20},
		},
	},
	{
		ID:          "desserts-1",
		Name:        "Gulab Jamun",
		Description: "Sweet milk solid dumplings soaked in sugar syrup",
		Price:       40,
		Image:       "https://images.unsplash.com/photo-1611293388250-580b08c4a145?q=80&w=500",
		Category:    models.CategoryDesserts,
	},
	{
		ID:          "desserts-2",
		Name:        "Chocolate Brownie",
		Description: "Rich chocolate brownie with nuts, served with ice cream",
		Price:       80,
		Image:       "https://images.unsplash.com/photo-1606313564200-e75d5e30476c?q=80&w=500",
		Category:    models.CategoryDesserts,
		IsSpecial:   true,
	},
}
