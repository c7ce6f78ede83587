package entity

import "time"

// Customer cliente de la empresa de agua embotellada.
type Customer struct {
	ID        string
	Name      string
	Address   string
	Contact   string
	Phone     string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
