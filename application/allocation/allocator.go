package allocation

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/stock-allocation/constant"
	"github.com/muhammadheryan/stock-allocation/model"
	batchrepo "github.com/muhammadheryan/stock-allocation/repository/batch"
	slotrepo "github.com/muhammadheryan/stock-allocation/repository/slot"
	"github.com/muhammadheryan/stock-allocation/utils/errors"
	"github.com/muhammadheryan/stock-allocation/utils/logger"
	"go.uber.org/zap"
)

// Allocator selects batches in FIFO waves and reserves them against the slot store.
type Allocator interface {
	// Allocate reserves items inside tx. Picks are returned in emission order, not route order.
	// Without forceAccept any shortfall fails with ErrInsufficientStock and the caller must roll
	// tx back; with forceAccept the shortfall is appended as unlocated picks.
	Allocate(ctx context.Context, tx *sqlx.Tx, items []model.OrderItemRequest, forceAccept bool) (*model.Allocation, error)
}

type Options struct {
	// LastResortWave lets products still short after wave 2 draw from their newest batch.
	LastResortWave bool
}

type allocator struct {
	batchRepo batchrepo.BatchRepository
	slotRepo  slotrepo.SlotRepository
	opts      Options
}

var _ Allocator = (*allocator)(nil)

func NewAllocator(batchRepo batchrepo.BatchRepository, slotRepo slotrepo.SlotRepository, opts Options) Allocator {
	return &allocator{batchRepo: batchRepo, slotRepo: slotRepo, opts: opts}
}

// run tracks one allocation pass. order keeps first-seen product order.
type run struct {
	order     []string
	remaining map[string]int64
	picks     []model.Pick
}

func (r *run) short() []string {
	var ids []string
	for _, id := range r.order {
		if r.remaining[id] > 0 {
			ids = append(ids, id)
		}
	}
	return ids
}

func newRun(items []model.OrderItemRequest) *run {
	r := &run{remaining: make(map[string]int64, len(items))}
	for _, it := range items {
		if _, ok := r.remaining[it.ProductID]; !ok {
			r.order = append(r.order, it.ProductID)
		}
		r.remaining[it.ProductID] += it.Quantity
	}
	return r
}

func (a *allocator) Allocate(ctx context.Context, tx *sqlx.Tx, items []model.OrderItemRequest, forceAccept bool) (*model.Allocation, error) {
	if len(items) == 0 {
		return nil, errors.SetCustomError(constant.ErrEmptyOrder)
	}

	r := newRun(items)
	batches, err := a.batchRepo.OldestBatchesTx(ctx, tx, r.order)
	if err != nil {
		return nil, fmt.Errorf("oldest batches: %w", err)
	}

	if err := a.firstWave(ctx, tx, r, batches); err != nil {
		return nil, err
	}

	// wave 2: everything between the oldest and the newest batch
	if err := a.lockedWave(ctx, tx, r, func(ids []string) []string {
		if len(ids) < 3 {
			return nil
		}
		return ids[1 : len(ids)-1]
	}, batches); err != nil {
		return nil, err
	}

	if a.opts.LastResortWave {
		if err := a.lockedWave(ctx, tx, r, func(ids []string) []string {
			if len(ids) < 2 {
				return nil
			}
			return ids[len(ids)-1:]
		}, batches); err != nil {
			return nil, err
		}
	}

	res := &model.Allocation{Picks: r.picks, Shortfall: make([]model.Shortfall, 0)}
	for _, id := range r.short() {
		res.Shortfall = append(res.Shortfall, model.Shortfall{ProductID: id, Quantity: r.remaining[id]})
	}
	if len(res.Shortfall) == 0 {
		return res, nil
	}

	if !forceAccept {
		logger.Info("[Allocate] insufficient stock", zap.Any("shortfall", res.Shortfall))
		return nil, errors.SetCustomErrorWithDetails(constant.ErrInsufficientStock, res.Shortfall)
	}
	for _, s := range res.Shortfall {
		res.Picks = append(res.Picks, model.Pick{ProductID: s.ProductID, Quantity: s.Quantity})
	}
	return res, nil
}

// firstWave tries each product's single oldest batch with an unlocked read. Reservations are
// conditional, so a concurrent writer surfaces as slot.ErrReservationConflict.
func (a *allocator) firstWave(ctx context.Context, tx *sqlx.Tx, r *run, batches map[string][]string) error {
	owner := make(map[string]string, len(r.order))
	ids := make([]string, 0, len(r.order))
	for _, pid := range r.order {
		if b := batches[pid]; len(b) > 0 {
			owner[b[0]] = pid
			ids = append(ids, b[0])
		}
	}
	if len(ids) == 0 {
		return nil
	}

	slots, err := a.slotRepo.FindEntriesByBatchesTx(ctx, tx, ids, false)
	if err != nil {
		return fmt.Errorf("wave 1 slots: %w", err)
	}
	for _, s := range slots {
		for _, e := range s.Entries {
			pid, ok := owner[e.BatchID]
			if !ok {
				continue
			}
			if err := a.take(ctx, tx, r, s, e, pid); err != nil {
				return fmt.Errorf("wave 1 reserve: %w", err)
			}
		}
	}
	return nil
}

type located struct {
	slot  model.Slot
	entry model.SlotEntry
}

// lockedWave widens the search for still-short products to the batches chosen by pick,
// reading the slot entries under row locks. Walk order is product, then batch, then slot.
func (a *allocator) lockedWave(ctx context.Context, tx *sqlx.Tx, r *run, pick func([]string) []string, batches map[string][]string) error {
	plan := make(map[string][]string)
	var ids []string
	for _, pid := range r.short() {
		if b := pick(batches[pid]); len(b) > 0 {
			plan[pid] = b
			ids = append(ids, b...)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	slots, err := a.slotRepo.FindEntriesByBatchesTx(ctx, tx, ids, true)
	if err != nil {
		return fmt.Errorf("locked wave slots: %w", err)
	}
	byBatch := make(map[string][]located)
	for _, s := range slots {
		for _, e := range s.Entries {
			byBatch[e.BatchID] = append(byBatch[e.BatchID], located{slot: s, entry: e})
		}
	}

	for _, pid := range r.order {
		for _, bid := range plan[pid] {
			for _, l := range byBatch[bid] {
				if r.remaining[pid] <= 0 {
					break
				}
				if err := a.take(ctx, tx, r, l.slot, l.entry, pid); err != nil {
					return fmt.Errorf("locked wave reserve: %w", err)
				}
			}
		}
	}
	return nil
}

func (a *allocator) take(ctx context.Context, tx *sqlx.Tx, r *run, s model.Slot, e model.SlotEntry, productID string) error {
	qty := min(r.remaining[productID], e.Promised)
	if qty <= 0 {
		return nil
	}
	if err := a.slotRepo.ReservePromisedTx(ctx, tx, e.ID, qty); err != nil {
		return err
	}
	r.remaining[productID] -= qty
	r.picks = append(r.picks, newPick(s, e, productID, qty))
	return nil
}

func newPick(s model.Slot, e model.SlotEntry, productID string, qty int64) model.Pick {
	slotID, batchID := s.ID, e.BatchID
	row, col := s.Row, s.Column
	return model.Pick{
		SlotID:     &slotID,
		BatchID:    &batchID,
		ProductID:  productID,
		Quantity:   qty,
		Row:        &row,
		Column:     &col,
		LocationID: s.LocationID,
	}
}
