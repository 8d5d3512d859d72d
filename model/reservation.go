package model

import (
	"time"

	"github.com/muhammadheryan/stock-allocation/constant"
)

// Pick is one reservation of qty units of a batch at a slot. SlotID, BatchID, Row and
// Column are nil for an unlocated pick that carries a force-accepted shortfall.
type Pick struct {
	SlotID    *string `json:"slot_id"`
	BatchID   *string `json:"batch_id"`
	ProductID string  `json:"product_id"`
	Quantity  int64   `json:"quantity"`
	Row       *int    `json:"row"`
	Column    *int    `json:"column"`
	// LocationID of the slot; empty for an unlocated pick.
	LocationID string `json:"location_id,omitempty"`
}

func (p Pick) Located() bool {
	return p.SlotID != nil && p.Row != nil && p.Column != nil
}

type Shortfall struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// Allocation is the result of one allocation pass, picks in emission order.
type Allocation struct {
	Picks     []Pick
	Shortfall []Shortfall
}

// Ledger records, for one order and one location, what was committed against the slot store.
type Ledger struct {
	ID         string               `db:"id" json:"id"`
	OrderID    string               `db:"order_id" json:"order_id"`
	LocationID string               `db:"location_id" json:"location_id"`
	Status     constant.OrderStatus `db:"status" json:"status"`
	CreatedAt  time.Time            `db:"created_at" json:"created_at"`
	Entries    []LedgerEntry        `db:"-" json:"entries"`
}

// LedgerEntry is one pick in route order. SlotID/BatchID are nil for an unlocated remainder.
type LedgerEntry struct {
	ID        string  `db:"id" json:"id"`
	LedgerID  string  `db:"ledger_id" json:"ledger_id"`
	Position  int     `db:"position" json:"position"`
	SlotID    *string `db:"slot_id" json:"slot_id"`
	BatchID   *string `db:"batch_id" json:"batch_id"`
	ProductID string  `db:"product_id" json:"product_id"`
	Quantity  int64   `db:"quantity" json:"quantity"`
	Row       *int    `db:"row_no" json:"row"`
	Column    *int    `db:"column_no" json:"column"`
}
