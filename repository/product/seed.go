package productrepo

import "github.com/aleksiojala-maker/hihoneyapp/model"

func f64(v float64) *float64 { return &v }

// DemoProducts is the launch catalog: the rental collections carried by the
// two studios.
func DemoProducts() []model.Product {
	return []model.Product{
		// Collection: Blank Space
		{
			ID: "h001", Title: "Honey 001", Category: model.CategoryVeil,
			StoreID: "helsinki-oulunkyla", PricePerDay: 40,
			ImageURL:    "https://images.unsplash.com/photo-1594552072238-b8a33785b261?w=800&q=80",
			Description: "Simple beauty that complements the whole. A classic cathedral length veil.",
			Features:    []string{"Natural white (Luonnonvalkoinen)", "300cm"},
			Collection:  "Blank Space",
		},
		{
			ID: "h002", Title: "Honey 002", Category: model.CategoryVeil,
			StoreID: "helsinki-oulunkyla", PricePerDay: 35,
			ImageURL:    "https://images.unsplash.com/photo-1522653216850-4f1415a174fb?w=800&q=80",
			Description: "A shorter, more manageable veil for effortless elegance.",
			Features:    []string{"Natural white (Luonnonvalkoinen)", "200cm"},
			Collection:  "Blank Space",
		},
		{
			ID: "h004", Title: "Honey 004", Category: model.CategoryVeil,
			StoreID: "helsinki-oulunkyla", PricePerDay: 40,
			ImageURL:    "https://images.unsplash.com/photo-1594552072238-b8a33785b261?w=800&q=80",
			Description: "A crisp, bright white veil for modern gowns.",
			Features:    []string{"Bright white (Kirkkaanvalkoinen)", "270cm"},
			Collection:  "Blank Space",
		},
		{
			ID: "h006", Title: "Honey 006", Category: model.CategoryVeil,
			StoreID: "helsinki-oulunkyla", PricePerDay: 20,
			ImageURL:    "https://images.unsplash.com/photo-1595407753234-0882f1e77954?w=800&q=80",
			Description: "A subtle pop of colour for the non-traditional bride.",
			Features:    []string{"Light pink (Vaaleanpunainen)", "100cm"},
			Collection:  "Blank Space",
		},
		// Collection: Cruel Summer
		{
			ID: "cs-first-sight", Title: "First Sight", Category: model.CategoryVeil,
			StoreID: "helsinki-oulunkyla", PricePerDay: 75,
			ImageURL:    "https://images.unsplash.com/photo-1511285560929-80b456fea0bc?w=800&q=80",
			Description: "A voluminous two-layer veil for a dramatic entrance. Also available for purchase.",
			Features:    []string{"Two-layer veil", "Natural white"},
			Collection:  "Cruel Summer",
			BuyPrice:    f64(250),
		},
		{
			ID: "cs-heirloom", Title: "Heirloom", Category: model.CategoryVeil,
			StoreID: "helsinki-oulunkyla", PricePerDay: 55,
			ImageURL:    "https://images.unsplash.com/photo-1519741497674-611481863552?w=800&q=80",
			Description: "Timeless elegance with a delicate lace edge.",
			Features:    []string{"270cm long", "Natural white", "Lace edge"},
			Collection:  "Cruel Summer",
		},
		{
			ID: "cs-pearls", Title: "Pearls", Category: model.CategoryVeil,
			StoreID: "espoo-rebridal", PricePerDay: 50,
			ImageURL:    "https://images.unsplash.com/photo-1594552072238-b8a33785b261?w=800&q=80",
			Description: "Scattered pearls create a romantic, starry effect.",
			Features:    []string{"270cm long", "Natural white", "Pearl details"},
			Collection:  "Cruel Summer",
		},
		{
			ID: "cs-stolen-glance", Title: "Stolen Glance", Category: model.CategoryVeil,
			StoreID: "espoo-rebridal", PricePerDay: 30,
			ImageURL:    "https://images.unsplash.com/photo-1595407753234-0882f1e77954?w=800&q=80",
			Description: "A short, rose-colored lace veil for a vintage vibe.",
			Features:    []string{"Rose-colored", "Lace", "50cm"},
			Collection:  "Cruel Summer",
		},
		{
			ID: "cs-slow-burn", Title: "Slow Burn", Category: model.CategoryVeil,
			StoreID: "espoo-rebridal", PricePerDay: 20,
			ImageURL:    "https://images.unsplash.com/photo-1522653216850-4f1415a174fb?w=800&q=80",
			Description: "Minimalist mini veil with pearl accents.",
			Features:    []string{"Mini-length", "Pearl", "Natural white"},
			Collection:  "Cruel Summer",
		},
		{
			ID: "cs-ever-after", Title: "Ever After", Category: model.CategoryVeil,
			StoreID: "helsinki-oulunkyla", PricePerDay: 45,
			ImageURL:    "https://images.unsplash.com/photo-1519741497674-611481863552?w=800&q=80",
			Description: "Stunning 3D flowers cascading down a cathedral length veil.",
			Features:    []string{"300cm long", "Lace edge", "3D flowers", "Natural white"},
			Collection:  "Cruel Summer",
		},
	}
}
