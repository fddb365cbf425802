package domain

import "time"

type BookingStatus string

const (
	BookingReserved            BookingStatus = "reserved"
	BookingConfirmed           BookingStatus = "confirmed"
	BookingPendingConfirmation BookingStatus = "pending_confirmation"
	BookingPending             BookingStatus = "pending" // waitlisted, no table assigned
	BookingCancelled           BookingStatus = "cancelled"
	BookingCompleted           BookingStatus = "completed"
	BookingRejected            BookingStatus = "rejected"
	BookingNoShow              BookingStatus = "no_show"
	BookingDelayed             BookingStatus = "delayed"
	BookingInProgress          BookingStatus = "in_progress"
)

// BlocksTable reports whether a booking in this status still occupies its
// table for overlap purposes. Terminal statuses free the table.
func (s BookingStatus) BlocksTable() bool {
	switch s {
	case BookingCancelled, BookingRejected, BookingCompleted, BookingNoShow:
		return false
	}
	return true
}

type BookingSource string

const (
	SourceWeb       BookingSource = "web"
	SourceAssistant BookingSource = "assistant"
	SourceStaff     BookingSource = "staff"
)

type Booking struct {
	ID          int64         `json:"id"`
	BusinessID  int64         `json:"business_id" validate:"required"`
	TableID     *int64        `json:"table_id,omitempty"` // nil while waitlisted
	Reference   string        `json:"reference"`
	Date        string        `json:"date" validate:"required"`       // "2006-01-02"
	StartTime   string        `json:"start_time" validate:"required"` // "15:04"
	EndTime     string        `json:"end_time" validate:"required"`
	PartySize   int           `json:"party_size" validate:"required,gt=0"`
	Status      BookingStatus `json:"status"`
	Source      BookingSource `json:"source"`
	GuestName   string        `json:"guest_name"`
	GuestPhone  string        `json:"guest_phone,omitempty"`
	GuestEmail  string        `json:"guest_email,omitempty"`
	Notes       string        `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
	CancelledAt *time.Time    `json:"cancelled_at,omitempty"`

	CancellationReason string `json:"cancellation_reason,omitempty" gorm:"type:text"`

	// Relations
	Table *Table `json:"table,omitempty" gorm:"foreignKey:TableID"`
}
