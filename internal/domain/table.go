package domain

import "time"

// Table is one seatable unit of a business. A table may host any party
// whose size does not exceed its capacity.
type Table struct {
	ID         int64     `json:"id"`
	BusinessID int64     `json:"business_id"`
	Label      string    `json:"label" validate:"required"`
	Capacity   int       `json:"capacity" validate:"required,gt=0"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
