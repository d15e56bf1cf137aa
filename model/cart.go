// model/cart.go
package model

// CartItem is a client-local staging record: it exists between date
// selection and checkout commit, and carries a snapshot of the product
// so later catalog edits do not change a pending cart.
type CartItem struct {
	ID         string  `json:"id"`
	Product    Product `json:"product"`
	StartDate  string  `json:"start_date"` // YYYY-MM-DD
	EndDate    string  `json:"end_date"`   // YYYY-MM-DD
	PickupTime string  `json:"pickup_time"`
	ReturnTime string  `json:"return_time"`
	TotalPrice float64 `json:"total_price"`
}

// CardDetails is opaque to the core; only the gateway interprets it.
type CardDetails struct {
	Number string `json:"number"`
	Name   string `json:"name"`
	Expiry string `json:"expiry"`
	CVC    string `json:"cvc"`
}

// Last4 returns the trailing digits used in logs; full numbers never leave
// the gateway boundary.
func (c CardDetails) Last4() string {
	if len(c.Number) < 4 {
		return c.Number
	}
	return c.Number[len(c.Number)-4:]
}
