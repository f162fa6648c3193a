package models

import "time"

// Base contains common columns for all tables.
// IDs are opaque strings; new rows get a UUIDv7 from the record store.
type Base struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
