package allocation

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/stock-allocation/model"
	slotrepo "github.com/muhammadheryan/stock-allocation/repository/slot"
	"github.com/muhammadheryan/stock-allocation/utils/logger"
	"github.com/muhammadheryan/stock-allocation/utils/metrics"
	"go.uber.org/zap"
)

// Compensator gives reserved quantities back to the slot store.
type Compensator interface {
	// Reverse re-credits promised stock for every located entry. It returns the entries whose
	// batch had left the slot and was re-inserted with on-hand zero.
	Reverse(ctx context.Context, tx *sqlx.Tx, entries []model.LedgerEntry) ([]model.LedgerEntry, error)
}

type compensator struct {
	slotRepo slotrepo.SlotRepository
}

var _ Compensator = (*compensator)(nil)

func NewCompensator(slotRepo slotrepo.SlotRepository) Compensator {
	return &compensator{slotRepo: slotRepo}
}

func (c *compensator) Reverse(ctx context.Context, tx *sqlx.Tx, entries []model.LedgerEntry) ([]model.LedgerEntry, error) {
	missing := make([]model.LedgerEntry, 0)
	for _, e := range entries {
		// unlocated remainder, nothing was reserved
		if e.BatchID == nil || e.SlotID == nil {
			continue
		}

		s, err := c.slotRepo.GetSlotTx(ctx, tx, *e.SlotID, true)
		if err != nil {
			return nil, fmt.Errorf("get slot %s: %w", *e.SlotID, err)
		}
		if s == nil {
			return nil, fmt.Errorf("slot %s referenced by ledger entry %s does not exist", *e.SlotID, e.ID)
		}

		if i := s.EntryIndex(*e.BatchID); i >= 0 {
			if err := c.slotRepo.CreditPromisedTx(ctx, tx, s.Entries[i].ID, e.Quantity); err != nil {
				return nil, fmt.Errorf("credit slot %s batch %s: %w", s.ID, *e.BatchID, err)
			}
			continue
		}

		if err := c.slotRepo.AppendEntryTx(ctx, tx, &model.SlotEntry{
			ID:       uuid.NewString(),
			SlotID:   s.ID,
			BatchID:  *e.BatchID,
			OnHand:   0,
			Promised: e.Quantity,
		}); err != nil {
			return nil, fmt.Errorf("re-insert slot %s batch %s: %w", s.ID, *e.BatchID, err)
		}
		metrics.ReversalSlotMissing.Inc()
		logger.Warn("[Reverse] batch no longer in slot, promise re-created",
			zap.String("slot_id", s.ID),
			zap.String("batch_id", *e.BatchID),
			zap.String("ledger_id", e.LedgerID),
			zap.Int64("quantity", e.Quantity))
		missing = append(missing, e)
	}
	return missing, nil
}
