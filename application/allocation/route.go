package allocation

import (
	"sort"

	"github.com/google/uuid"
	"github.com/muhammadheryan/stock-allocation/model"
)

// Sequence orders picks into an S-shaped walk over the row/column grid. Rows are visited
// ascending; the column direction flips on each next contiguous row and resets to ascending
// after a gap. Unlocated picks keep their relative order at the end.
func Sequence(picks []model.Pick) []model.Pick {
	out := make([]model.Pick, 0, len(picks))
	var located, unlocated []model.Pick
	for _, p := range picks {
		if p.Located() {
			located = append(located, p)
		} else {
			unlocated = append(unlocated, p)
		}
	}

	sort.SliceStable(located, func(i, j int) bool {
		return *located[i].Row < *located[j].Row
	})

	ascending := true
	for start := 0; start < len(located); {
		row := *located[start].Row
		end := start + 1
		for end < len(located) && *located[end].Row == row {
			end++
		}
		if start > 0 {
			if row == *located[start-1].Row+1 {
				ascending = !ascending
			} else {
				ascending = true
			}
		}

		group := located[start:end]
		asc := ascending
		sort.SliceStable(group, func(i, j int) bool {
			if asc {
				return *group[i].Column < *group[j].Column
			}
			return *group[i].Column > *group[j].Column
		})
		out = append(out, group...)
		start = end
	}

	return append(out, unlocated...)
}

// LedgerEntries converts route-ordered picks into unsaved ledger entries with fresh ids.
func LedgerEntries(picks []model.Pick) []model.LedgerEntry {
	entries := make([]model.LedgerEntry, 0, len(picks))
	for i, p := range picks {
		entries = append(entries, model.LedgerEntry{
			ID:        uuid.NewString(),
			Position:  i,
			SlotID:    p.SlotID,
			BatchID:   p.BatchID,
			ProductID: p.ProductID,
			Quantity:  p.Quantity,
			Row:       p.Row,
			Column:    p.Column,
		})
	}
	return entries
}
