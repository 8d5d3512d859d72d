package rabbitmq

import (
	"time"

	"github.com/muhammadheryan/stock-allocation/constant"
	"github.com/muhammadheryan/stock-allocation/model"
)

const (
	RoutingKeyOrderCreated      = "order.created"
	RoutingKeyOrderCancelled    = "order.cancelled"
	RoutingKeySlotMissing       = "reservation.slot_missing"
	RoutingKeyLedgerStatusPatch = "reservation.status"
)

type OrderCreatedMessage struct {
	OrderID       string            `json:"order_id"`
	Status        string            `json:"status"`
	ForceAccepted bool              `json:"force_accepted"`
	LedgerIDs     []string          `json:"ledger_ids"`
	Shortfall     []model.Shortfall `json:"shortfall"`
	CreatedAt     time.Time         `json:"created_at"`
}

type OrderCancelledMessage struct {
	OrderID        string    `json:"order_id"`
	Forced         bool      `json:"forced"`
	ReversedPicks  int       `json:"reversed_picks"`
	SlotMissing    int       `json:"slot_missing"`
	CancelledAt    time.Time `json:"cancelled_at"`
	PreviousStatus string    `json:"previous_status"`
}

// SlotMissingMessage reports a reversed pick whose batch had left its slot.
type SlotMissingMessage struct {
	OrderID   string `json:"order_id"`
	LedgerID  string `json:"ledger_id"`
	SlotID    string `json:"slot_id"`
	BatchID   string `json:"batch_id"`
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// LedgerStatusMessage is sent by picker devices as work progresses.
type LedgerStatusMessage struct {
	LedgerID string               `json:"ledger_id"`
	Status   constant.OrderStatus `json:"status"`
}
