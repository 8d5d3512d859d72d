package product

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

type ProductRepository interface {
	Insert(ctx context.Context, p *model.Product) error
	GetByID(ctx context.Context, id string) (*model.Product, error)
	SetDisabled(ctx context.Context, id string, disabled bool) (bool, error)
}

func NewProductRepository(conn *sqlx.DB) ProductRepository {
	return &SQL{conn: conn}
}

const (
	insertProductQuery  = `INSERT INTO products (id, disabled, created_at) VALUES (?, ?, ?)`
	getProductQuery     = `SELECT id, disabled, created_at FROM products WHERE id = ?`
	updateDisabledQuery = `UPDATE products SET disabled = ? WHERE id = ?`
)

func (s *SQL) Insert(ctx context.Context, p *model.Product) error {
	_, err := s.conn.ExecContext(ctx, s.conn.Rebind(insertProductQuery), p.ID, p.Disabled, p.CreatedAt)
	return err
}

// GetByID returns nil, nil when the product does not exist.
func (s *SQL) GetByID(ctx context.Context, id string) (*model.Product, error) {
	var p model.Product
	if err := s.conn.GetContext(ctx, &p, s.conn.Rebind(getProductQuery), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (s *SQL) SetDisabled(ctx context.Context, id string, disabled bool) (bool, error) {
	res, err := s.conn.ExecContext(ctx, s.conn.Rebind(updateDisabledQuery), disabled, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if n > 0 {
		return true, nil
	}
	// MySQL reports zero affected rows when the value is unchanged
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	return p != nil, nil
}
