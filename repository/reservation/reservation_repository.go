package reservation

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/stock-allocation/constant"
	"github.com/muhammadheryan/stock-allocation/model"
	txrepo "github.com/muhammadheryan/stock-allocation/repository/tx"
)

type SQL struct {
	conn *sqlx.DB
}

// ReservationRepository persists reservation ledgers and their ordered picks.
type ReservationRepository interface {
	InsertLedgerTx(ctx context.Context, tx *sqlx.Tx, l *model.Ledger) error
	// InsertLedgerEntriesTx stores entries in slice order, assigning ledger id and position.
	InsertLedgerEntriesTx(ctx context.Context, tx *sqlx.Tx, ledgerID string, entries []model.LedgerEntry) error
	// ListLedgersByOrderTx locks and returns the order's ledgers without entries.
	ListLedgersByOrderTx(ctx context.Context, tx *sqlx.Tx, orderID string) ([]model.Ledger, error)
	// GetLedger reads without locking; lock the order, then its ledgers, before mutating.
	// Returns nil, nil when absent.
	GetLedger(ctx context.Context, ledgerID string) (*model.Ledger, error)
	GetLedgerEntriesTx(ctx context.Context, tx *sqlx.Tx, ledgerID string) ([]model.LedgerEntry, error)
	UpdateLedgerStatusTx(ctx context.Context, tx *sqlx.Tx, ledgerID string, status constant.OrderStatus) error
	ListLedgersWithEntries(ctx context.Context, orderID string) ([]model.Ledger, error)
}

func NewReservationRepository(conn *sqlx.DB) ReservationRepository {
	return &SQL{conn: conn}
}

const (
	insertLedgerQuery = `INSERT INTO reservation_ledgers (id, order_id, location_id, status, created_at) VALUES (?, ?, ?, ?, ?)`
	insertEntryQuery  = `INSERT INTO reservation_ledger_entries (id, ledger_id, position, slot_id, batch_id, product_id, quantity)
VALUES (?, ?, ?, ?, ?, ?, ?)`
	listLedgersQuery   = `SELECT id, order_id, location_id, status, created_at FROM reservation_ledgers WHERE order_id = ? ORDER BY created_at, location_id`
	getLedgerQuery     = `SELECT id, order_id, location_id, status, created_at FROM reservation_ledgers WHERE id = ?`
	updateLedgerStatus = `UPDATE reservation_ledgers SET status = ? WHERE id = ?`

	// slots are joined for the route coordinates; unlocated entries keep NULL row and column.
	getEntriesQuery = `SELECT e.id, e.ledger_id, e.position, e.slot_id, e.batch_id, e.product_id, e.quantity, s.row_no, s.column_no
FROM reservation_ledger_entries e
LEFT JOIN slots s ON s.id = e.slot_id
WHERE e.ledger_id = ?
ORDER BY e.position`
)

func (r *SQL) InsertLedgerTx(ctx context.Context, tx *sqlx.Tx, l *model.Ledger) error {
	_, err := tx.ExecContext(ctx, tx.Rebind(insertLedgerQuery), l.ID, l.OrderID, l.LocationID, l.Status, l.CreatedAt)
	return err
}

func (r *SQL) InsertLedgerEntriesTx(ctx context.Context, tx *sqlx.Tx, ledgerID string, entries []model.LedgerEntry) error {
	q := tx.Rebind(insertEntryQuery)
	for i := range entries {
		e := &entries[i]
		e.LedgerID = ledgerID
		e.Position = i
		if _, err := tx.ExecContext(ctx, q, e.ID, e.LedgerID, e.Position, e.SlotID, e.BatchID, e.ProductID, e.Quantity); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQL) ListLedgersByOrderTx(ctx context.Context, tx *sqlx.Tx, orderID string) ([]model.Ledger, error) {
	ledgers := make([]model.Ledger, 0)
	if err := tx.SelectContext(ctx, &ledgers, tx.Rebind(listLedgersQuery+txrepo.ForUpdate(tx)), orderID); err != nil {
		return nil, err
	}
	return ledgers, nil
}

func (r *SQL) GetLedger(ctx context.Context, ledgerID string) (*model.Ledger, error) {
	var l model.Ledger
	if err := r.conn.GetContext(ctx, &l, r.conn.Rebind(getLedgerQuery), ledgerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}

func (r *SQL) GetLedgerEntriesTx(ctx context.Context, tx *sqlx.Tx, ledgerID string) ([]model.LedgerEntry, error) {
	return getEntries(ctx, tx, ledgerID)
}

func (r *SQL) UpdateLedgerStatusTx(ctx context.Context, tx *sqlx.Tx, ledgerID string, status constant.OrderStatus) error {
	_, err := tx.ExecContext(ctx, tx.Rebind(updateLedgerStatus), status, ledgerID)
	return err
}

func (r *SQL) ListLedgersWithEntries(ctx context.Context, orderID string) ([]model.Ledger, error) {
	ledgers := make([]model.Ledger, 0)
	if err := r.conn.SelectContext(ctx, &ledgers, r.conn.Rebind(listLedgersQuery), orderID); err != nil {
		return nil, err
	}
	for i := range ledgers {
		entries, err := getEntries(ctx, r.conn, ledgers[i].ID)
		if err != nil {
			return nil, err
		}
		ledgers[i].Entries = entries
	}
	return ledgers, nil
}

func getEntries(ctx context.Context, q sqlx.ExtContext, ledgerID string) ([]model.LedgerEntry, error) {
	entries := make([]model.LedgerEntry, 0)
	if err := sqlx.SelectContext(ctx, q, &entries, q.Rebind(getEntriesQuery), ledgerID); err != nil {
		return nil, err
	}
	return entries, nil
}
