package rental

import "github.com/aleksiojala-maker/hihoneyapp/model"

type CardReq struct {
	Number string `json:"number" validate:"required,min=12"`
	Name   string `json:"name" validate:"required"`
	Expiry string `json:"expiry" validate:"required"`
	CVC    string `json:"cvc" validate:"required,min=3,max=4"`
}

func (r CardReq) toModel() model.CardDetails {
	return model.CardDetails{Number: r.Number, Name: r.Name, Expiry: r.Expiry, CVC: r.CVC}
}

type PayRentalReq struct {
	Card CardReq `json:"card" validate:"required"`
}

type AdminBookingReq struct {
	ProductID    string `json:"product_id" validate:"required"`
	CustomerName string `json:"customer_name"`
	StartDate    string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate      string `json:"end_date" validate:"required,datetime=2006-01-02"`
	Status       string `json:"status" validate:"omitempty,oneof=reserved active completed late"`
}

type UpdateRentalReq struct {
	StartDate     *string  `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate       *string  `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Status        *string  `json:"status" validate:"omitempty,oneof=reserved active completed late"`
	PaymentStatus *string  `json:"payment_status" validate:"omitempty,oneof=paid pending"`
	TotalPrice    *float64 `json:"total_price" validate:"omitempty,gte=0"`
}
