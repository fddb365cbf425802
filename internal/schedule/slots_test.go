package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zebratime/internal/domain"
)

var (
	monday    = time.Date(2026, 12, 28, 0, 0, 0, 0, time.UTC)
	wednesday = time.Date(2026, 12, 30, 0, 0, 0, 0, time.UTC)
)

func rule(day int, open, close string) domain.AvailabilityRule {
	return domain.AvailabilityRule{BusinessID: 1, DayOfWeek: day, Open: open, Close: close}
}

func TestGenerateSlots_RegularDay(t *testing.T) {
	rules := []domain.AvailabilityRule{rule(1, "09:00", "17:00")}

	slots, err := GenerateSlots(rules, monday, 60)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00",
	}, slots)
}

func TestGenerateSlots_ClosedDay(t *testing.T) {
	rules := []domain.AvailabilityRule{rule(1, "09:00", "17:00")}

	slots, err := GenerateSlots(rules, wednesday, 60)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateSlots_MidnightCrossing(t *testing.T) {
	rules := []domain.AvailabilityRule{rule(1, "22:00", "02:00")}

	slots, err := GenerateSlots(rules, monday, 60)
	require.NoError(t, err)

	// Post-midnight slots sort after the evening ones.
	assert.Equal(t, []string{"22:00", "23:00", "00:00", "01:00"}, slots)
}

func TestGenerateSlots_SplitHoursUnion(t *testing.T) {
	rules := []domain.AvailabilityRule{
		rule(1, "18:00", "22:00"),
		rule(1, "12:00", "15:00"),
	}

	slots, err := GenerateSlots(rules, monday, 60)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"12:00", "13:00", "14:00", "18:00", "19:00", "20:00", "21:00",
	}, slots)
}

func TestGenerateSlots_EmptyWindow(t *testing.T) {
	rules := []domain.AvailabilityRule{rule(1, "12:00", "12:00")}

	slots, err := GenerateSlots(rules, monday, 60)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateSlots_HalfHourGranularity(t *testing.T) {
	rules := []domain.AvailabilityRule{rule(1, "12:00", "15:00")}

	slots, err := GenerateSlots(rules, monday, 30)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"12:00", "12:30", "13:00", "13:30", "14:00", "14:30",
	}, slots)
}

func TestGenerateSlots_BadRuleTime(t *testing.T) {
	rules := []domain.AvailabilityRule{rule(1, "nine", "17:00")}

	_, err := GenerateSlots(rules, monday, 60)
	assert.Error(t, err)
}
