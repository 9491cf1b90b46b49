package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyCart        = errors.New("cart is empty")
	ErrInvalidPromo     = errors.New("invalid promo code")
	ErrTermsNotAccepted = errors.New("terms and conditions not accepted")
	ErrInvalidStep      = errors.New("invalid checkout step")
	ErrOrderPlaced      = errors.New("order already placed")
	ErrSnapshotNotFound = errors.New("cart snapshot not found")
	ErrSnapshotCorrupt  = errors.New("cart snapshot is corrupt")
	ErrUnknownShipping  = errors.New("unknown shipping option")
	ErrUnknownPayment   = errors.New("unknown payment method")
)

// ValidationError points at the first form field that failed validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field %s: %s", e.Field, e.Reason)
}
