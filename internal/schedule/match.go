package schedule

import (
	"sort"

	"zebratime/internal/domain"
)

// ChooseTable picks the free table whose capacity is closest to (but at
// least) partySize for the wall-clock window [startMin, endMin) — an exact
// capacity match wins over any larger free table. Bookings must already be
// scoped to the same business and date; statuses that no longer occupy a
// table are skipped here. Returns nil when no table qualifies.
func ChooseTable(tables []domain.Table, bookings []domain.Booking, startMin, endMin, partySize int) (*domain.Table, error) {
	candidates := make([]domain.Table, 0, len(tables))
	for _, t := range tables {
		if t.IsActive && t.Capacity >= partySize {
			candidates = append(candidates, t)
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Capacity != candidates[j].Capacity {
			return candidates[i].Capacity < candidates[j].Capacity
		}
		return candidates[i].Label < candidates[j].Label
	})

	for _, t := range candidates {
		free, err := tableFree(t.ID, bookings, startMin, endMin)
		if err != nil {
			return nil, err
		}
		if free {
			chosen := t
			return &chosen, nil
		}
	}
	return nil, nil
}

// HasFreeTable is the read-path variant: it only reports feasibility.
func HasFreeTable(tables []domain.Table, bookings []domain.Booking, startMin, endMin, partySize int) (bool, error) {
	t, err := ChooseTable(tables, bookings, startMin, endMin, partySize)
	if err != nil {
		return false, err
	}
	return t != nil, nil
}

func tableFree(tableID int64, bookings []domain.Booking, startMin, endMin int) (bool, error) {
	for _, b := range bookings {
		if b.TableID == nil || *b.TableID != tableID {
			continue
		}
		if !b.Status.BlocksTable() {
			continue
		}
		bStart, err := ToMinutes(b.StartTime)
		if err != nil {
			return false, err
		}
		bEnd, err := ToMinutes(b.EndTime)
		if err != nil {
			return false, err
		}
		if Overlaps(startMin, endMin, bStart, bEnd) {
			return false, nil
		}
	}
	return true, nil
}
