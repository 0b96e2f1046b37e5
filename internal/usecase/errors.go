package usecase

import (
	"errors"
	"fmt"
)

// Error taxonomy surfaced by the workflow. Handlers map these onto HTTP
// responses; raw storage errors never leave the usecase layer.
var (
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrQuoteNotFound      = errors.New("quote not found")
	ErrInvoiceNotFound    = errors.New("invoice not found")
	ErrProjectNotFound    = errors.New("project not found")
	ErrPersistenceFailure = errors.New("persistence failure")
	ErrValidation         = errors.New("validation failed")
	ErrQuoteHasPayments   = errors.New("quote has recorded payments")

	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
	ErrPaymentDeclined            = errors.New("payment declined by provider")
)

func validationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func persistenceError(err error) error {
	return fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
}

func transitionError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidTransition, fmt.Sprintf(format, args...))
}
