package tx

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

type TxRepository interface {
	BeginTx(ctx context.Context) (*sqlx.Tx, error)
	CommitTx(tx *sqlx.Tx) error
	RollbackTx(tx *sqlx.Tx) error
	// SetLockTimeoutTx bounds how long statements in tx wait for row locks.
	SetLockTimeoutTx(ctx context.Context, tx *sqlx.Tx, timeout time.Duration) error
}

type txRepo struct {
	db *sqlx.DB
}

func NewTxRepository(db *sqlx.DB) TxRepository {
	return &txRepo{db: db}
}

func (r *txRepo) BeginTx(ctx context.Context) (*sqlx.Tx, error) {
	return r.db.BeginTxx(ctx, nil)
}

func (r *txRepo) CommitTx(tx *sqlx.Tx) error {
	return tx.Commit()
}

func (r *txRepo) RollbackTx(tx *sqlx.Tx) error {
	return tx.Rollback()
}

func (r *txRepo) SetLockTimeoutTx(ctx context.Context, tx *sqlx.Tx, timeout time.Duration) error {
	if timeout <= 0 {
		return nil
	}
	switch tx.DriverName() {
	case "pgx", "postgres":
		_, err := tx.ExecContext(ctx, fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", timeout.Milliseconds()))
		return err
	default:
		// MySQL has no transaction-scoped lock wait; every pooled connection gets
		// innodb_lock_wait_timeout from the DSN instead (config.GetDSN).
		return nil
	}
}

const (
	mysqlLockWaitTimeout = 1205
	mysqlDeadlock        = 1213
	pgLockNotAvailable   = "55P03"
	pgDeadlockDetected   = "40P01"
)

// IsLockTimeout reports whether err is a bounded lock wait that gave up (or a deadlock victim).
// Both are transient and safe to retry with a fresh transaction. On SQLite that is a busy or
// locked database, including extended codes such as SQLITE_BUSY_SNAPSHOT.
func IsLockTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return me.Number == mysqlLockWaitTimeout || me.Number == mysqlDeadlock
	}
	var pe *pgconn.PgError
	if errors.As(err, &pe) {
		return pe.Code == pgLockNotAvailable || pe.Code == pgDeadlockDetected
	}
	var se *sqlite.Error
	if errors.As(err, &se) {
		code := se.Code() & 0xff
		return code == sqlite3.SQLITE_BUSY || code == sqlite3.SQLITE_LOCKED
	}
	return false
}

// ForUpdate returns the row-lock suffix for SELECTs on the driver behind q.
// SQLite serializes writers at the database level and has no row locks.
func ForUpdate(q sqlx.ExtContext) string {
	if q.DriverName() == "sqlite" {
		return ""
	}
	return " FOR UPDATE"
}
