package entity

import "github.com/google/uuid"

// Address is saved alongside checkout when provided; orders do not
// reference it back.
type Address struct {
	BaseSimple
	UserID  uuid.UUID `db:"user_id"`
	Street  string    `db:"street"`
	City    string    `db:"city"`
	Zip     string    `db:"zip"`
	Country string    `db:"country"`
	State   string    `db:"state"`
}
