package domain

import "time"

// AvailabilityRule is one weekly recurring opening window.
// DayOfWeek follows time.Weekday: 0=Sunday .. 6=Saturday.
// Open/Close are wall-clock "HH:MM" strings; Close earlier than Open means
// the window runs past midnight into the next calendar day.
type AvailabilityRule struct {
	ID         int64     `json:"id"`
	BusinessID int64     `json:"business_id"`
	DayOfWeek  int       `json:"day_of_week" validate:"gte=0,lte=6"`
	Open       string    `json:"open" validate:"required"`
	Close      string    `json:"close" validate:"required"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (r AvailabilityRule) CrossesMidnight() bool {
	return r.Close < r.Open
}
