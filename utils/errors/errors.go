package errors

import (
	stderrors "errors"

	"github.com/muhammadheryan/stock-allocation/constant"
)

type CustomError struct {
	errType constant.ErrorType
	details interface{}
}

func (c CustomError) Error() string {
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func (c CustomError) Type() constant.ErrorType {
	return c.errType
}

// Details carries a machine-readable payload, e.g. the shortfall of a rejected order.
func (c CustomError) Details() interface{} {
	return c.details
}

func (c CustomError) Retryable() bool {
	return constant.IsRetryable(c.errType)
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

func SetCustomErrorWithDetails(errorType constant.ErrorType, details interface{}) CustomError {
	return CustomError{
		errType: errorType,
		details: details,
	}
}

// IsType reports whether err is a CustomError of the given type.
func IsType(err error, errorType constant.ErrorType) bool {
	var ce CustomError
	return stderrors.As(err, &ce) && ce.errType == errorType
}
