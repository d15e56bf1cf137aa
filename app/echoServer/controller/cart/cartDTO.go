package cart

import "github.com/aleksiojala-maker/hihoneyapp/model"

type AddItemReq struct {
	ProductID  string `json:"product_id" validate:"required"`
	StartDate  string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate    string `json:"end_date" validate:"required,datetime=2006-01-02"`
	PickupTime string `json:"pickup_time" validate:"omitempty,datetime=15:04"`
	ReturnTime string `json:"return_time" validate:"omitempty,datetime=15:04"`
}

type CardReq struct {
	Number string `json:"number" validate:"required,min=12"`
	Name   string `json:"name" validate:"required"`
	Expiry string `json:"expiry" validate:"required"`
	CVC    string `json:"cvc" validate:"required,min=3,max=4"`
}

func (r *CardReq) toModel() *model.CardDetails {
	if r == nil {
		return nil
	}
	return &model.CardDetails{Number: r.Number, Name: r.Name, Expiry: r.Expiry, CVC: r.CVC}
}

type CheckoutReq struct {
	PaymentMethod string   `json:"payment_method" validate:"required,oneof=card store"`
	Card          *CardReq `json:"card" validate:"omitempty"`
}

type BookNowReq struct {
	UserID        string   `json:"user_id" validate:"required"`
	StartDate     string   `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate       string   `json:"end_date" validate:"required,datetime=2006-01-02"`
	PickupTime    string   `json:"pickup_time" validate:"omitempty,datetime=15:04"`
	ReturnTime    string   `json:"return_time" validate:"omitempty,datetime=15:04"`
	PaymentMethod string   `json:"payment_method" validate:"required,oneof=card store"`
	Card          *CardReq `json:"card" validate:"omitempty"`
}
