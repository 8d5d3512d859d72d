package model

import (
	"time"

	"github.com/muhammadheryan/stock-allocation/constant"
)

type OrderItemRequest struct {
	ProductID string `json:"product_id" db:"product_id" validate:"required,uuid"`
	Quantity  int64  `json:"quantity" db:"quantity" validate:"required,gt=0"`
}

type OrderRequest struct {
	Items       []OrderItemRequest `json:"items" validate:"dive"`
	ForceAccept bool               `json:"-"`
}

type OrderResponse struct {
	OrderID       string               `json:"order_id"`
	Status        constant.OrderStatus `json:"status"`
	LedgerID      string               `json:"ledger_id"`
	LedgerEntries []LedgerEntry        `json:"ledger_entries"`
	Shortfall     []Shortfall          `json:"shortfall"`
}

type InsertOrderTxItem struct {
	ID            string
	Status        constant.OrderStatus
	ForceAccepted bool
	CreatedAt     time.Time
}

type OrderDetail struct {
	ID            string               `db:"id" json:"id"`
	Status        constant.OrderStatus `db:"status" json:"status"`
	ForceAccepted bool                 `db:"force_accepted" json:"force_accepted"`
	CreatedAt     time.Time            `db:"created_at" json:"created_at"`
}

type OrderView struct {
	OrderDetail
	Items   []OrderItemRequest `json:"items"`
	Ledgers []Ledger           `json:"ledgers"`
}

type CancelOrderRequest struct {
	OrderID     string
	ForceCancel bool
}

type PatchLedgerStatusRequest struct {
	Status constant.OrderStatus `json:"status" validate:"required,order_status"`
}

type CancelOrderResponse struct {
	OrderID string               `json:"order_id"`
	Status  constant.OrderStatus `json:"status"`
}
