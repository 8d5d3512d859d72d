// Package testdb opens throwaway SQLite databases with the production schema applied and
// seeds inventory for engine tests.
package testdb

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/stock-allocation/repository/schema"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// New returns an in-memory database. A single connection keeps every statement on the
// same memory database.
func New(t testing.TB) *sqlx.DB {
	t.Helper()

	db, err := sqlx.Open("sqlite", "file::memory:?_pragma=foreign_keys(1)")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, schema.Apply(context.Background(), db))
	return db
}

// NewFile returns a database file under t.TempDir() opened the way the server opens SQLite,
// so several connections contend for the write lock.
func NewFile(t testing.TB, maxConns int) *sqlx.DB {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "stock.db") + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	db, err := sqlx.Open("sqlite", dsn)
	require.NoError(t, err)
	db.SetMaxOpenConns(maxConns)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, schema.Apply(context.Background(), db))
	return db
}

// Reset empties every table, children first.
func Reset(t require.TestingT, db *sqlx.DB) {
	for _, table := range []string{
		"reservation_ledger_entries", "reservation_ledgers", "order_items", "orders",
		"slot_entries", "slots", "batches", "products",
	} {
		_, err := db.Exec("DELETE FROM " + table)
		require.NoError(t, err)
	}
}

func Product(t require.TestingT, db *sqlx.DB) string {
	id := uuid.NewString()
	_, err := db.Exec(`INSERT INTO products (id, disabled, created_at) VALUES (?, ?, ?)`, id, false, time.Now().UTC())
	require.NoError(t, err)
	return id
}

func DisableProduct(t require.TestingT, db *sqlx.DB, id string) {
	_, err := db.Exec(`UPDATE products SET disabled = ? WHERE id = ?`, true, id)
	require.NoError(t, err)
}

func Batch(t require.TestingT, db *sqlx.DB, productID string, createdAt time.Time) string {
	id := uuid.NewString()
	_, err := db.Exec(`INSERT INTO batches (id, product_id, created_at) VALUES (?, ?, ?)`, id, productID, createdAt.UTC())
	require.NoError(t, err)
	return id
}

func Slot(t require.TestingT, db *sqlx.DB, row, column int, locationID string) string {
	id := uuid.NewString()
	_, err := db.Exec(`INSERT INTO slots (id, row_no, column_no, location_id) VALUES (?, ?, ?, ?)`, id, row, column, locationID)
	require.NoError(t, err)
	return id
}

func Entry(t require.TestingT, db *sqlx.DB, slotID, batchID string, onHand, promised int64) string {
	id := uuid.NewString()
	_, err := db.Exec(`INSERT INTO slot_entries (id, slot_id, batch_id, position, on_hand_qty, promised_qty)
SELECT ?, ?, ?, COALESCE(MAX(position), -1) + 1, ?, ? FROM slot_entries WHERE slot_id = ?`,
		id, slotID, batchID, onHand, promised, slotID)
	require.NoError(t, err)
	return id
}

// Promised returns slot_id/batch_id -> promised_qty for every slot entry.
func Promised(t require.TestingT, db *sqlx.DB) map[string]int64 {
	return counters(t, db, "promised_qty")
}

// OnHand returns slot_id/batch_id -> on_hand_qty for every slot entry.
func OnHand(t require.TestingT, db *sqlx.DB) map[string]int64 {
	return counters(t, db, "on_hand_qty")
}

func counters(t require.TestingT, db *sqlx.DB, column string) map[string]int64 {
	var rows []struct {
		SlotID  string `db:"slot_id"`
		BatchID string `db:"batch_id"`
		Qty     int64  `db:"qty"`
	}
	require.NoError(t, db.Select(&rows, fmt.Sprintf(`SELECT slot_id, batch_id, %s AS qty FROM slot_entries`, column)))

	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[Key(r.SlotID, r.BatchID)] = r.Qty
	}
	return out
}

func Key(slotID, batchID string) string {
	return slotID + "/" + batchID
}
