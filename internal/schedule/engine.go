package schedule

import (
	"time"

	"zebratime/internal/domain"
)

// ListAvailableSlots returns every bookable "HH:MM" start on date for which
// at least one table can host the party, in display order. Calling it twice
// over the same data yields identical output.
func ListAvailableSlots(
	rules []domain.AvailabilityRule,
	tables []domain.Table,
	bookings []domain.Booking,
	date time.Time,
	slotDuration int,
	partySize int,
) ([]string, error) {
	if slotDuration <= 0 {
		slotDuration = domain.DefaultSlotDuration
	}

	slots, err := GenerateSlots(rules, date, slotDuration)
	if err != nil {
		return nil, err
	}

	available := make([]string, 0, len(slots))
	for _, slot := range slots {
		start, err := ToMinutes(slot)
		if err != nil {
			return nil, err
		}
		ok, err := HasFreeTable(tables, bookings, start, start+slotDuration, partySize)
		if err != nil {
			return nil, err
		}
		if ok {
			available = append(available, slot)
		}
	}
	return available, nil
}

// AssignTable runs the selection policy once for one explicit window.
// A nil table with a nil error means no table qualifies; the caller decides
// between waitlisting the booking and rejecting the request.
func AssignTable(
	tables []domain.Table,
	bookings []domain.Booking,
	startTime, endTime string,
	partySize int,
) (*domain.Table, error) {
	start, err := ToMinutes(startTime)
	if err != nil {
		return nil, err
	}
	end, err := ToMinutes(endTime)
	if err != nil {
		return nil, err
	}
	return ChooseTable(tables, bookings, start, end, partySize)
}
