// model/store.go
package model

type Store struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Description string `json:"description,omitempty"`
	Hours       string `json:"hours,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Image       string `json:"image,omitempty"`
}
