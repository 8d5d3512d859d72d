package batch

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/stock-allocation/model"
)

type SQL struct {
	conn *sqlx.DB
}

// BatchRepository is the batch ledger: per-product dated lots in FIFO order.
type BatchRepository interface {
	// OldestBatchesTx maps each enabled product to its batch ids ordered by created_at ascending.
	// Unknown and disabled products are absent from the map.
	OldestBatchesTx(ctx context.Context, tx *sqlx.Tx, productIDs []string) (map[string][]string, error)
	GetByIDTx(ctx context.Context, tx *sqlx.Tx, id string) (*model.Batch, error)
	ListByProduct(ctx context.Context, productID string) ([]model.Batch, error)
	Insert(ctx context.Context, b *model.Batch) error
}

func NewBatchRepository(conn *sqlx.DB) BatchRepository {
	return &SQL{conn: conn}
}

const (
	oldestBatchesQuery = `SELECT b.id, b.product_id, b.created_at FROM batches b
JOIN products p ON p.id = b.product_id
WHERE b.product_id IN (?) AND p.disabled = ?
ORDER BY b.product_id, b.created_at, b.id`

	getBatchQuery      = `SELECT id, product_id, created_at FROM batches WHERE id = ?`
	listByProductQuery = `SELECT id, product_id, created_at FROM batches WHERE product_id = ? ORDER BY created_at, id`
	insertBatchQuery   = `INSERT INTO batches (id, product_id, created_at) VALUES (?, ?, ?)`
)

func (r *SQL) OldestBatchesTx(ctx context.Context, tx *sqlx.Tx, productIDs []string) (map[string][]string, error) {
	res := make(map[string][]string, len(productIDs))
	if len(productIDs) == 0 {
		return res, nil
	}

	q, args, err := sqlx.In(oldestBatchesQuery, productIDs, false)
	if err != nil {
		return nil, err
	}

	var rows []model.Batch
	if err := tx.SelectContext(ctx, &rows, tx.Rebind(q), args...); err != nil {
		return nil, err
	}
	for _, b := range rows {
		res[b.ProductID] = append(res[b.ProductID], b.ID)
	}
	return res, nil
}

func (r *SQL) GetByIDTx(ctx context.Context, tx *sqlx.Tx, id string) (*model.Batch, error) {
	var b model.Batch
	if err := tx.GetContext(ctx, &b, tx.Rebind(getBatchQuery), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (r *SQL) ListByProduct(ctx context.Context, productID string) ([]model.Batch, error) {
	items := make([]model.Batch, 0)
	if err := r.conn.SelectContext(ctx, &items, r.conn.Rebind(listByProductQuery), productID); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *SQL) Insert(ctx context.Context, b *model.Batch) error {
	_, err := r.conn.ExecContext(ctx, r.conn.Rebind(insertBatchQuery), b.ID, b.ProductID, b.CreatedAt)
	return err
}
