package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zebratime/internal/domain"
)

func table(id int64, label string, capacity int) domain.Table {
	return domain.Table{ID: id, BusinessID: 1, Label: label, Capacity: capacity, IsActive: true}
}

func booked(tableID int64, start, end string, status domain.BookingStatus) domain.Booking {
	return domain.Booking{
		BusinessID: 1,
		TableID:    &tableID,
		Date:       "2026-12-28",
		StartTime:  start,
		EndTime:    end,
		PartySize:  2,
		Status:     status,
	}
}

func TestChooseTable_SmallestSufficientCapacity(t *testing.T) {
	tables := []domain.Table{
		table(1, "T1", 2),
		table(2, "T2", 4),
		table(3, "T3", 6),
	}

	chosen, err := ChooseTable(tables, nil, 720, 780, 3)
	require.NoError(t, err)
	require.NotNil(t, chosen)
	assert.Equal(t, int64(2), chosen.ID)
}

func TestChooseTable_ExactMatchBeatsLarger(t *testing.T) {
	tables := []domain.Table{
		table(3, "T3", 6),
		table(2, "T2", 4),
	}

	chosen, err := ChooseTable(tables, nil, 720, 780, 4)
	require.NoError(t, err)
	require.NotNil(t, chosen)
	assert.Equal(t, int64(2), chosen.ID)
}

func TestChooseTable_SkipsOccupiedTable(t *testing.T) {
	tables := []domain.Table{
		table(2, "T2", 4),
		table(3, "T3", 6),
	}
	bookings := []domain.Booking{
		booked(2, "12:00", "13:00", domain.BookingConfirmed),
	}

	chosen, err := ChooseTable(tables, bookings, 720, 780, 3)
	require.NoError(t, err)
	require.NotNil(t, chosen)
	assert.Equal(t, int64(3), chosen.ID)
}

func TestChooseTable_TerminalStatusesFreeTheTable(t *testing.T) {
	tables := []domain.Table{table(2, "T2", 4)}

	for _, status := range []domain.BookingStatus{
		domain.BookingCancelled,
		domain.BookingRejected,
		domain.BookingCompleted,
		domain.BookingNoShow,
	} {
		bookings := []domain.Booking{booked(2, "12:00", "13:00", status)}
		chosen, err := ChooseTable(tables, bookings, 720, 780, 4)
		require.NoError(t, err)
		assert.NotNil(t, chosen, "status %s should not block", status)
	}
}

func TestChooseTable_WaitlistedBookingDoesNotBlock(t *testing.T) {
	tables := []domain.Table{table(2, "T2", 4)}
	bookings := []domain.Booking{{
		BusinessID: 1,
		TableID:    nil,
		Date:       "2026-12-28",
		StartTime:  "12:00",
		EndTime:    "13:00",
		PartySize:  4,
		Status:     domain.BookingPending,
	}}

	chosen, err := ChooseTable(tables, bookings, 720, 780, 4)
	require.NoError(t, err)
	assert.NotNil(t, chosen)
}

func TestChooseTable_NoTableFitsParty(t *testing.T) {
	tables := []domain.Table{
		table(1, "T1", 2),
		table(2, "T2", 4),
	}

	chosen, err := ChooseTable(tables, nil, 720, 780, 8)
	require.NoError(t, err)
	assert.Nil(t, chosen)
}

func TestChooseTable_InactiveTableIgnored(t *testing.T) {
	inactive := table(1, "T1", 4)
	inactive.IsActive = false

	chosen, err := ChooseTable([]domain.Table{inactive}, nil, 720, 780, 2)
	require.NoError(t, err)
	assert.Nil(t, chosen)
}

func TestChooseTable_TouchingWindowsDoNotConflict(t *testing.T) {
	tables := []domain.Table{table(2, "T2", 4)}
	bookings := []domain.Booking{
		booked(2, "20:00", "22:00", domain.BookingReserved),
	}

	// 22:00-23:00 starts exactly when the reservation ends.
	chosen, err := ChooseTable(tables, bookings, 1320, 1380, 4)
	require.NoError(t, err)
	assert.NotNil(t, chosen)
}

func TestChooseTable_EarlyOpeningStraddleConflicts(t *testing.T) {
	tables := []domain.Table{table(1, "T1", 4)}
	bookings := []domain.Booking{
		booked(1, "05:30", "06:30", domain.BookingConfirmed),
	}

	// 06:00-07:00 at an early-opening business overlaps the stored
	// pre-dawn booking even though only one window sits below 06:00.
	chosen, err := ChooseTable(tables, bookings, 360, 420, 4)
	require.NoError(t, err)
	assert.Nil(t, chosen)
}

func TestChooseTable_LateNightOverlap(t *testing.T) {
	tables := []domain.Table{table(2, "T2", 4)}
	bookings := []domain.Booking{
		booked(2, "01:00", "02:00", domain.BookingConfirmed),
	}

	// Candidate 23:30-01:30 crosses midnight into the stored 01:00 booking.
	chosen, err := ChooseTable(tables, bookings, 1410, 1530, 4)
	require.NoError(t, err)
	assert.Nil(t, chosen)
}
