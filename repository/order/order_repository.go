package order

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

type OrderRepository interface {
	InsertOrderTx(ctx context.Context, tx *sqlx.Tx, req *model.InsertOrderTxItem) error
	InsertOrderItemsTx(ctx context.Context, tx *sqlx.Tx, orderID string, items []model.OrderItemRequest) error
	UpdateOrderStatusTx(ctx context.Context, tx *sqlx.Tx, orderID string, status constant.OrderStatus) error
	// GetOrderDetailTx locks the order row. Returns nil, nil when absent.
	GetOrderDetailTx(ctx context.Context, tx *sqlx.Tx, orderID string) (*model.OrderDetail, error)
	GetOrderDetail(ctx context.Context, orderID string) (*model.OrderDetail, error)
	GetOrderItems(ctx context.Context, orderID string) ([]model.OrderItemRequest, error)
}

func NewOrderRepository(conn *sqlx.DB) OrderRepository {
	return &SQL{conn: conn}
}

const (
	insertOrderQuery     = `INSERT INTO orders (id, status, force_accepted, created_at) VALUES (?, ?, ?, ?)`
	insertOrderItemQuery = `INSERT INTO order_items (order_id, product_id, position, quantity) VALUES (?, ?, ?, ?)`
	updateStatusQuery    = `UPDATE orders SET status = ? WHERE id = ?`
	getOrderQuery        = `SELECT id, status, force_accepted, created_at FROM orders WHERE id = ?`
	getOrderItemsQuery   = `SELECT product_id, quantity FROM order_items WHERE order_id = ? ORDER BY position`
)

func (r *SQL) InsertOrderTx(ctx context.Context, tx *sqlx.Tx, req *model.InsertOrderTxItem) error {
	_, err := tx.ExecContext(ctx, tx.Rebind(insertOrderQuery), req.ID, req.Status, req.ForceAccepted, req.CreatedAt)
	return err
}

func (r *SQL) InsertOrderItemsTx(ctx context.Context, tx *sqlx.Tx, orderID string, items []model.OrderItemRequest) error {
	q := tx.Rebind(insertOrderItemQuery)
	for i, it := range items {
		if _, err := tx.ExecContext(ctx, q, orderID, it.ProductID, i, it.Quantity); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQL) UpdateOrderStatusTx(ctx context.Context, tx *sqlx.Tx, orderID string, status constant.OrderStatus) error {
	_, err := tx.ExecContext(ctx, tx.Rebind(updateStatusQuery), status, orderID)
	return err
}

func (r *SQL) GetOrderDetailTx(ctx context.Context, tx *sqlx.Tx, orderID string) (*model.OrderDetail, error) {
	return getOrderDetail(ctx, tx, getOrderQuery+txrepo.ForUpdate(tx), orderID)
}

func (r *SQL) GetOrderDetail(ctx context.Context, orderID string) (*model.OrderDetail, error) {
	return getOrderDetail(ctx, r.conn, getOrderQuery, orderID)
}

func getOrderDetail(ctx context.Context, q sqlx.ExtContext, query, orderID string) (*model.OrderDetail, error) {
	var detail model.OrderDetail
	row := q.QueryRowxContext(ctx, q.Rebind(query), orderID)
	if err := row.StructScan(&detail); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &detail, nil
}

func (r *SQL) GetOrderItems(ctx context.Context, orderID string) ([]model.OrderItemRequest, error) {
	items := make([]model.OrderItemRequest, 0)
	if err := r.conn.SelectContext(ctx, &items, r.conn.Rebind(getOrderItemsQuery), orderID); err != nil {
		return nil, err
	}
	return items, nil
}
