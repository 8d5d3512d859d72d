package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrEmptyOrder
	ErrInsufficientStock
	ErrLockTimeout
	ErrInvalidOrderStatus
	ErrOrderNotCancellable
	ErrNegativeStock
	ErrInvalidStatusTransition
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:                 "success",
	ErrInternal:                "error internal",
	ErrNotFound:                "data not found",
	ErrInvalidRequest:          "invalid request",
	ErrUnauthorize:             "unauthorize request",
	ErrEmptyOrder:              "order has no items",
	ErrInsufficientStock:       "insufficient stock",
	ErrLockTimeout:             "inventory is busy, retry later",
	ErrInvalidOrderStatus:      "invalid order status",
	ErrOrderNotCancellable:     "order is being picked or shipped",
	ErrNegativeStock:           "stock cannot become negative",
	ErrInvalidStatusTransition: "invalid status transition",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:                 http.StatusOK,
	ErrInternal:                http.StatusInternalServerError,
	ErrNotFound:                http.StatusNotFound,
	ErrInvalidRequest:          http.StatusBadRequest,
	ErrUnauthorize:             http.StatusUnauthorized,
	ErrEmptyOrder:              http.StatusUnprocessableEntity,
	ErrInsufficientStock:       http.StatusUnprocessableEntity,
	ErrLockTimeout:             http.StatusServiceUnavailable,
	ErrInvalidOrderStatus:      http.StatusBadRequest,
	ErrOrderNotCancellable:     http.StatusConflict,
	ErrNegativeStock:           http.StatusUnprocessableEntity,
	ErrInvalidStatusTransition: http.StatusConflict,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:                 "0000",
	ErrInternal:                "0001",
	ErrNotFound:                "0002",
	ErrInvalidRequest:          "0003",
	ErrUnauthorize:             "0004",
	ErrEmptyOrder:              "0005",
	ErrInsufficientStock:       "0006",
	ErrLockTimeout:             "0007",
	ErrInvalidOrderStatus:      "0008",
	ErrOrderNotCancellable:     "0009",
	ErrNegativeStock:           "0010",
	ErrInvalidStatusTransition: "0011",
}

// retryable error types are transient; the caller may resubmit the same request.
var retryable = map[ErrorType]bool{
	ErrLockTimeout: true,
}

func IsRetryable(t ErrorType) bool {
	return retryable[t]
}
