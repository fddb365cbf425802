package schedule

import (
	"sort"
	"time"

	"zebratime/internal/domain"
)

// GenerateSlots expands the weekly rules matching date's weekday into the
// candidate booking start times at slotDuration granularity. Multiple rules
// for the same weekday (split lunch/dinner hours) are expanded independently
// and unioned. A date with no matching rule yields an empty list.
func GenerateSlots(rules []domain.AvailabilityRule, date time.Time, slotDuration int) ([]string, error) {
	if slotDuration <= 0 {
		slotDuration = domain.DefaultSlotDuration
	}

	weekday := int(date.Weekday())
	seen := make(map[int]struct{})
	var minutes []int

	for _, rule := range rules {
		if rule.DayOfWeek != weekday {
			continue
		}
		start, err := ToMinutes(rule.Open)
		if err != nil {
			return nil, err
		}
		end, err := ToMinutes(rule.Close)
		if err != nil {
			return nil, err
		}
		start, end = NormalizeWindow(start, end)

		// The last bookable start leaves a full slot before closing,
		// so the loop never emits the closing time itself.
		for cur := start; cur < end; cur += slotDuration {
			m := ((cur % minutesPerDay) + minutesPerDay) % minutesPerDay
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			minutes = append(minutes, m)
		}
	}

	sort.Slice(minutes, func(i, j int) bool {
		ei, ej := effectiveMinute(minutes[i]), effectiveMinute(minutes[j])
		if ei != ej {
			return ei < ej
		}
		return FromMinutes(minutes[i]) < FromMinutes(minutes[j])
	})

	slots := make([]string, 0, len(minutes))
	for _, m := range minutes {
		slots = append(slots, FromMinutes(m))
	}
	return slots, nil
}
