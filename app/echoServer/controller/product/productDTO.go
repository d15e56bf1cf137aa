package product

import "github.com/aleksiojala-maker/hihoneyapp/model"

type CreateProductReq struct {
	Title       string   `json:"title" validate:"required"`
	Category    string   `json:"category" validate:"required,oneof=Veil Dress Accessory Other"`
	StoreID     string   `json:"store_id" validate:"required"`
	PricePerDay float64  `json:"price_per_day" validate:"gte=0"`
	ImageURL    string   `json:"image_url"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Collection  string   `json:"collection"`
	BuyPrice    *float64 `json:"buy_price"`
}

func (r CreateProductReq) toModel() model.Product {
	return model.Product{
		Title:       r.Title,
		Category:    model.Category(r.Category),
		StoreID:     r.StoreID,
		PricePerDay: r.PricePerDay,
		ImageURL:    r.ImageURL,
		Description: r.Description,
		Features:    r.Features,
		Collection:  r.Collection,
		BuyPrice:    r.BuyPrice,
	}
}

type UpdateProductReq struct {
	Title       *string   `json:"title"`
	Category    *string   `json:"category" validate:"omitempty,oneof=Veil Dress Accessory Other"`
	StoreID     *string   `json:"store_id"`
	PricePerDay *float64  `json:"price_per_day" validate:"omitempty,gte=0"`
	ImageURL    *string   `json:"image_url"`
	Description *string   `json:"description"`
	Features    *[]string `json:"features"`
	Collection  *string   `json:"collection"`
	BuyPrice    *float64  `json:"buy_price"`
}

func (r UpdateProductReq) toPatch() model.ProductPatch {
	patch := model.ProductPatch{
		Title:       r.Title,
		StoreID:     r.StoreID,
		PricePerDay: r.PricePerDay,
		ImageURL:    r.ImageURL,
		Description: r.Description,
		Features:    r.Features,
		Collection:  r.Collection,
		BuyPrice:    r.BuyPrice,
	}
	if r.Category != nil {
		cat := model.Category(*r.Category)
		patch.Category = &cat
	}
	return patch
}

type AvailabilityQuery struct {
	StartDate  string `query:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate    string `query:"end_date" validate:"required,datetime=2006-01-02"`
	PickupTime string `query:"pickup_time" validate:"omitempty,datetime=15:04"`
	ReturnTime string `query:"return_time" validate:"omitempty,datetime=15:04"`
}
