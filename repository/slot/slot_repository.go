package slot

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/stock-allocation/model"
	txrepo "github.com/muhammadheryan/stock-allocation/repository/tx"
)

var (
	// ErrReservationConflict means the entry no longer had enough promised stock when the
	// conditional decrement ran; another transaction reserved it first.
	ErrReservationConflict = errors.New("slot entry reservation conflict")
	// ErrNegativeQuantity means an adjustment would drive on-hand or promised below zero.
	ErrNegativeQuantity = errors.New("slot entry quantity would become negative")
)

// SlotRepository is the slot store: per-location ordered batch entries with on-hand and
// promised counters. Slot entries are only mutated inside a caller-owned transaction.
type SlotRepository interface {
	// FindEntriesByBatchesTx returns slots holding any of batchIDs, each carrying only the
	// matching entries, ordered by slot id then position. lock takes row locks on the entries.
	FindEntriesByBatchesTx(ctx context.Context, tx *sqlx.Tx, batchIDs []string, lock bool) ([]model.Slot, error)
	FindEntriesByBatches(ctx context.Context, batchIDs []string) ([]model.Slot, error)
	// GetSlotTx returns the slot with all of its entries, or nil when absent.
	GetSlotTx(ctx context.Context, tx *sqlx.Tx, slotID string, lock bool) (*model.Slot, error)
	GetSlotByAddressTx(ctx context.Context, tx *sqlx.Tx, addr model.SlotAddress, lock bool) (*model.Slot, error)
	InsertSlotTx(ctx context.Context, tx *sqlx.Tx, s *model.Slot) error
	// ReservePromisedTx decrements promised by qty only if promised >= qty.
	ReservePromisedTx(ctx context.Context, tx *sqlx.Tx, entryID string, qty int64) error
	// CreditPromisedTx increments promised by qty, leaving on-hand untouched.
	CreditPromisedTx(ctx context.Context, tx *sqlx.Tx, entryID string, qty int64) error
	// AppendEntryTx adds a new entry after the slot's last position and sets e.Position.
	AppendEntryTx(ctx context.Context, tx *sqlx.Tx, e *model.SlotEntry) error
	// AdjustEntryTx adds delta to both on-hand and promised.
	AdjustEntryTx(ctx context.Context, tx *sqlx.Tx, entryID string, delta int64) error
	DeleteEntryTx(ctx context.Context, tx *sqlx.Tx, entryID string) error
}

type SQL struct {
	conn *sqlx.DB
}

func NewSlotRepository(conn *sqlx.DB) SlotRepository {
	return &SQL{conn: conn}
}

const (
	entryColumns = `e.id, e.slot_id, e.batch_id, e.position, e.on_hand_qty, e.promised_qty, s.row_no, s.column_no, s.location_id`

	findEntriesByBatchesQuery = `SELECT ` + entryColumns + ` FROM slot_entries e
JOIN slots s ON s.id = e.slot_id
WHERE e.batch_id IN (?)
ORDER BY s.id, e.position`

	getSlotQuery          = `SELECT id, row_no, column_no, location_id FROM slots WHERE id = ?`
	getSlotByAddressQuery = `SELECT id, row_no, column_no, location_id FROM slots WHERE row_no = ? AND column_no = ? AND location_id = ?`
	getSlotEntriesQuery   = `SELECT id, slot_id, batch_id, position, on_hand_qty, promised_qty FROM slot_entries WHERE slot_id = ? ORDER BY position`
	insertSlotQuery       = `INSERT INTO slots (id, row_no, column_no, location_id) VALUES (?, ?, ?, ?)`
	nextPositionQuery     = `SELECT COALESCE(MAX(position), -1) + 1 FROM slot_entries WHERE slot_id = ?`
	insertEntryQuery      = `INSERT INTO slot_entries (id, slot_id, batch_id, position, on_hand_qty, promised_qty) VALUES (?, ?, ?, ?, ?, ?)`
	reserveQuery          = `UPDATE slot_entries SET promised_qty = promised_qty - ? WHERE id = ? AND promised_qty >= ?`
	creditQuery           = `UPDATE slot_entries SET promised_qty = promised_qty + ? WHERE id = ?`
	adjustQuery           = `UPDATE slot_entries SET on_hand_qty = on_hand_qty + ?, promised_qty = promised_qty + ?
WHERE id = ? AND on_hand_qty + ? >= 0 AND promised_qty + ? >= 0`
	deleteEntryQuery = `DELETE FROM slot_entries WHERE id = ?`
)

type entryRow struct {
	model.SlotEntry
	Row        int    `db:"row_no"`
	Column     int    `db:"column_no"`
	LocationID string `db:"location_id"`
}

func (r *SQL) FindEntriesByBatchesTx(ctx context.Context, tx *sqlx.Tx, batchIDs []string, lock bool) ([]model.Slot, error) {
	return findEntriesByBatches(ctx, tx, batchIDs, lock)
}

func (r *SQL) FindEntriesByBatches(ctx context.Context, batchIDs []string) ([]model.Slot, error) {
	return findEntriesByBatches(ctx, r.conn, batchIDs, false)
}

func findEntriesByBatches(ctx context.Context, q sqlx.ExtContext, batchIDs []string, lock bool) ([]model.Slot, error) {
	if len(batchIDs) == 0 {
		return nil, nil
	}
	query := findEntriesByBatchesQuery
	if lock {
		query += txrepo.ForUpdate(q)
	}
	query, args, err := sqlx.In(query, batchIDs)
	if err != nil {
		return nil, err
	}

	var rows []entryRow
	if err := sqlx.SelectContext(ctx, q, &rows, q.Rebind(query), args...); err != nil {
		return nil, err
	}

	slots := make([]model.Slot, 0)
	for _, row := range rows {
		if n := len(slots); n == 0 || slots[n-1].ID != row.SlotID {
			slots = append(slots, model.Slot{
				ID:         row.SlotID,
				Row:        row.Row,
				Column:     row.Column,
				LocationID: row.LocationID,
			})
		}
		last := &slots[len(slots)-1]
		last.Entries = append(last.Entries, row.SlotEntry)
	}
	return slots, nil
}

func (r *SQL) GetSlotTx(ctx context.Context, tx *sqlx.Tx, slotID string, lock bool) (*model.Slot, error) {
	return r.getSlot(ctx, tx, getSlotQuery, lock, slotID)
}

func (r *SQL) GetSlotByAddressTx(ctx context.Context, tx *sqlx.Tx, addr model.SlotAddress, lock bool) (*model.Slot, error) {
	return r.getSlot(ctx, tx, getSlotByAddressQuery, lock, addr.Row, addr.Column, addr.LocationID)
}

func (r *SQL) getSlot(ctx context.Context, tx *sqlx.Tx, query string, lock bool, args ...interface{}) (*model.Slot, error) {
	suffix := ""
	if lock {
		suffix = txrepo.ForUpdate(tx)
	}

	var s model.Slot
	if err := tx.GetContext(ctx, &s, tx.Rebind(query+suffix), args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	s.Entries = make([]model.SlotEntry, 0)
	if err := tx.SelectContext(ctx, &s.Entries, tx.Rebind(getSlotEntriesQuery+suffix), s.ID); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SQL) InsertSlotTx(ctx context.Context, tx *sqlx.Tx, s *model.Slot) error {
	_, err := tx.ExecContext(ctx, tx.Rebind(insertSlotQuery), s.ID, s.Row, s.Column, s.LocationID)
	return err
}

func (r *SQL) ReservePromisedTx(ctx context.Context, tx *sqlx.Tx, entryID string, qty int64) error {
	if qty <= 0 {
		return ErrNegativeQuantity
	}
	n, err := execAffected(ctx, tx, reserveQuery, qty, entryID, qty)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrReservationConflict
	}
	return nil
}

func (r *SQL) CreditPromisedTx(ctx context.Context, tx *sqlx.Tx, entryID string, qty int64) error {
	if qty <= 0 {
		return ErrNegativeQuantity
	}
	n, err := execAffected(ctx, tx, creditQuery, qty, entryID)
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *SQL) AppendEntryTx(ctx context.Context, tx *sqlx.Tx, e *model.SlotEntry) error {
	if e.OnHand < 0 || e.Promised < 0 {
		return ErrNegativeQuantity
	}
	var pos int
	if err := tx.GetContext(ctx, &pos, tx.Rebind(nextPositionQuery), e.SlotID); err != nil {
		return err
	}
	e.Position = pos
	_, err := tx.ExecContext(ctx, tx.Rebind(insertEntryQuery), e.ID, e.SlotID, e.BatchID, e.Position, e.OnHand, e.Promised)
	return err
}

func (r *SQL) AdjustEntryTx(ctx context.Context, tx *sqlx.Tx, entryID string, delta int64) error {
	n, err := execAffected(ctx, tx, adjustQuery, delta, delta, entryID, delta, delta)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNegativeQuantity
	}
	return nil
}

func (r *SQL) DeleteEntryTx(ctx context.Context, tx *sqlx.Tx, entryID string) error {
	_, err := tx.ExecContext(ctx, tx.Rebind(deleteEntryQuery), entryID)
	return err
}

func execAffected(ctx context.Context, tx *sqlx.Tx, query string, args ...interface{}) (int64, error) {
	res, err := tx.ExecContext(ctx, tx.Rebind(query), args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
