// model/product.go
package model

type Category string

const (
	CategoryVeil      Category = "Veil"
	CategoryDress     Category = "Dress"
	CategoryAccessory Category = "Accessory"
	CategoryOther     Category = "Other"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryVeil, CategoryDress, CategoryAccessory, CategoryOther:
		return true
	}
	return false
}

type Product struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Category    Category `json:"category"`
	StoreID     string   `json:"store_id"`
	PricePerDay float64  `json:"price_per_day"`
	ImageURL    string   `json:"image_url"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Collection  string   `json:"collection,omitempty"`
	BuyPrice    *float64 `json:"buy_price,omitempty"`
}

// ProductPatch carries the fields of a partial product update. Nil means
// "leave unchanged".
type ProductPatch struct {
	Title       *string   `json:"title,omitempty"`
	Category    *Category `json:"category,omitempty"`
	StoreID     *string   `json:"store_id,omitempty"`
	PricePerDay *float64  `json:"price_per_day,omitempty"`
	ImageURL    *string   `json:"image_url,omitempty"`
	Description *string   `json:"description,omitempty"`
	Features    *[]string `json:"features,omitempty"`
	Collection  *string   `json:"collection,omitempty"`
	BuyPrice    *float64  `json:"buy_price,omitempty"`
}
