// model/rental.go
package model

import "time"

type RentalStatus string

const (
	RentalReserved  RentalStatus = "reserved"
	RentalActive    RentalStatus = "active"
	RentalCompleted RentalStatus = "completed"
	RentalLate      RentalStatus = "late"
)

func (s RentalStatus) Valid() bool {
	switch s {
	case RentalReserved, RentalActive, RentalCompleted, RentalLate:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "paid"
	PaymentPending PaymentStatus = "pending"
)

type Rental struct {
	ID            string        `json:"id"`
	UserID        string        `json:"user_id"`
	ProductID     string        `json:"product_id"`
	StoreID       string        `json:"store_id"`
	StartDate     time.Time     `json:"start_date"`
	EndDate       time.Time     `json:"end_date"`
	Status        RentalStatus  `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	TotalPrice    float64       `json:"total_price"`
}

// RentalPatch carries the fields of a partial rental update. Nil means
// "leave unchanged". Rentals are never physically deleted in the normal
// flow; status transitions drive the soft lifecycle.
type RentalPatch struct {
	StartDate     *time.Time     `json:"start_date,omitempty"`
	EndDate       *time.Time     `json:"end_date,omitempty"`
	Status        *RentalStatus  `json:"status,omitempty"`
	PaymentStatus *PaymentStatus `json:"payment_status,omitempty"`
	TotalPrice    *float64       `json:"total_price,omitempty"`
}
