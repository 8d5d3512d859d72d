package tx

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func TestIsLockTimeout(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "plain error", err: errors.New("boom"), want: false},
		{name: "mysql lock wait timeout", err: &mysql.MySQLError{Number: 1205}, want: true},
		{name: "mysql deadlock wrapped", err: fmt.Errorf("reserve: %w", &mysql.MySQLError{Number: 1213}), want: true},
		{name: "mysql duplicate key", err: &mysql.MySQLError{Number: 1062}, want: false},
		{name: "postgres lock not available", err: &pgconn.PgError{Code: "55P03"}, want: true},
		{name: "postgres unique violation", err: &pgconn.PgError{Code: "23505"}, want: false},
		{name: "context deadline", err: context.DeadlineExceeded, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsLockTimeout(tt.err))
		})
	}
}

func TestIsLockTimeout_SQLiteBusy(t *testing.T) {
	ctx := context.Background()
	dsn := "file:" + filepath.Join(t.TempDir(), "lock.db")

	holder, err := sqlx.Open("sqlite", dsn)
	require.NoError(t, err)
	defer holder.Close()
	_, err = holder.Exec(`CREATE TABLE counters (id INTEGER PRIMARY KEY, n INTEGER NOT NULL)`)
	require.NoError(t, err)
	_, err = holder.Exec(`INSERT INTO counters (id, n) VALUES (1, 0)`)
	require.NoError(t, err)

	repo := NewTxRepository(holder)
	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	defer func() { _ = repo.RollbackTx(tx) }()
	require.NoError(t, repo.SetLockTimeoutTx(ctx, tx, time.Second))
	_, err = tx.ExecContext(ctx, `UPDATE counters SET n = n + 1 WHERE id = 1`)
	require.NoError(t, err)

	// no busy_timeout: the second writer fails at once instead of waiting
	contender, err := sqlx.Open("sqlite", dsn)
	require.NoError(t, err)
	defer contender.Close()
	_, err = contender.Exec(`UPDATE counters SET n = n + 1 WHERE id = 1`)
	require.Error(t, err)
	assert.True(t, IsLockTimeout(fmt.Errorf("locked wave reserve: %w", err)), err.Error())

	assert.Equal(t, "", ForUpdate(tx))
}
