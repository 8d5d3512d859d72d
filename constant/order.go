package constant

type OrderStatus string

const (
	OrderStatusPending         OrderStatus = "PENDING"
	OrderStatusPicking         OrderStatus = "PICKING"
	OrderStatusReadyForTransit OrderStatus = "READY_FOR_TRANSIT"
	OrderStatusInTransit       OrderStatus = "IN_TRANSIT"
	OrderStatusDelivered       OrderStatus = "DELIVERED"
	OrderStatusCancelled       OrderStatus = "CANCELLED"
)

// orderStatusNext is the forward lifecycle. CANCELLED and DELIVERED have no successor.
var orderStatusNext = map[OrderStatus]OrderStatus{
	OrderStatusPending:         OrderStatusPicking,
	OrderStatusPicking:         OrderStatusReadyForTransit,
	OrderStatusReadyForTransit: OrderStatusInTransit,
	OrderStatusInTransit:       OrderStatusDelivered,
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPicking, OrderStatusReadyForTransit,
		OrderStatusInTransit, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// CanAdvanceTo reports whether next is the single forward step after s.
func (s OrderStatus) CanAdvanceTo(next OrderStatus) bool {
	n, ok := orderStatusNext[s]
	return ok && n == next
}

func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// InFlight statuses block a plain cancellation.
func (s OrderStatus) InFlight() bool {
	return s == OrderStatusPicking || s == OrderStatusReadyForTransit || s == OrderStatusInTransit
}
