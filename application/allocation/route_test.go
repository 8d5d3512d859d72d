package allocation

import (
	"testing"

	"github.com/muhammadheryan/stock-allocation/model"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func at(row, col int) model.Pick {
	slot, batch := "s", "b"
	return model.Pick{SlotID: &slot, BatchID: &batch, ProductID: "p", Quantity: 1, Row: &row, Column: &col}
}

type cell struct{ row, col int }

func cells(picks []model.Pick) []cell {
	out := make([]cell, 0, len(picks))
	for _, p := range picks {
		if !p.Located() {
			out = append(out, cell{-1, -1})
			continue
		}
		out = append(out, cell{*p.Row, *p.Column})
	}
	return out
}

func TestSequence(t *testing.T) {
	unlocatedA := model.Pick{ProductID: "a", Quantity: 3}
	unlocatedB := model.Pick{ProductID: "b", Quantity: 4}

	tests := []struct {
		name  string
		picks []model.Pick
		want  []cell
	}{
		{
			name:  "empty",
			picks: nil,
			want:  []cell{},
		},
		{
			name:  "contiguous rows alternate direction",
			picks: []model.Pick{at(3, 1), at(1, 2), at(2, 1), at(1, 1), at(2, 3), at(3, 4)},
			want:  []cell{{1, 1}, {1, 2}, {2, 3}, {2, 1}, {3, 1}, {3, 4}},
		},
		{
			name:  "gap resets to ascending",
			picks: []model.Pick{at(3, 1), at(1, 5), at(3, 9), at(1, 2)},
			want:  []cell{{1, 2}, {1, 5}, {3, 1}, {3, 9}},
		},
		{
			name:  "flip continues after reset",
			picks: []model.Pick{at(1, 1), at(1, 2), at(4, 1), at(4, 2), at(5, 1), at(5, 2)},
			want:  []cell{{1, 1}, {1, 2}, {4, 1}, {4, 2}, {5, 2}, {5, 1}},
		},
		{
			name:  "unlocated picks go last in input order",
			picks: []model.Pick{unlocatedA, at(2, 2), unlocatedB, at(1, 1)},
			want:  []cell{{1, 1}, {2, 2}, {-1, -1}, {-1, -1}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cells(Sequence(tt.picks)))
		})
	}

	got := Sequence([]model.Pick{unlocatedA, at(2, 2), unlocatedB})
	assert.Equal(t, []model.Pick{at(2, 2), unlocatedA, unlocatedB}, got)
}

func TestSequence_Properties(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 30).Draw(rt, "n")
		picks := make([]model.Pick, 0, n)
		for i := 0; i < n; i++ {
			if rapid.IntRange(0, 9).Draw(rt, "unlocated") == 0 {
				picks = append(picks, model.Pick{ProductID: "x", Quantity: int64(i + 1)})
				continue
			}
			picks = append(picks, at(rapid.IntRange(0, 6).Draw(rt, "row"), rapid.IntRange(0, 6).Draw(rt, "col")))
		}

		got := Sequence(picks)
		if len(got) != len(picks) {
			rt.Fatalf("sequence changed length: %d -> %d", len(picks), len(got))
		}
		assert.ElementsMatch(rt, picks, got)

		seenUnlocated := false
		ascending := true
		for i, p := range got {
			if !p.Located() {
				seenUnlocated = true
				continue
			}
			if seenUnlocated {
				rt.Fatalf("located pick at %d after an unlocated pick", i)
			}
			if i == 0 {
				continue
			}
			prev := got[i-1]
			switch {
			case *p.Row < *prev.Row:
				rt.Fatalf("rows not ascending at %d", i)
			case *p.Row == *prev.Row:
				if ascending && *p.Column < *prev.Column || !ascending && *p.Column > *prev.Column {
					rt.Fatalf("row %d not monotone in its sweep direction", *p.Row)
				}
			case *p.Row == *prev.Row+1:
				ascending = !ascending
			default:
				ascending = true
			}
		}
		// output is a fixed point
		assert.Equal(rt, cells(got), cells(Sequence(got)))
	})
}
