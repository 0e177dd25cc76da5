package billing

import "errors"

var (
	ErrBillNotFound     = errors.New("bill not found")
	ErrMetadataNotFound = errors.New("bill metadata not found")
	ErrNoLineItems      = errors.New("bill must have at least one line item")
	ErrNegativeAmount   = errors.New("line item amount must be non-negative")
	ErrNegativeRate     = errors.New("gst rate must be non-negative")
	ErrInvalidBill      = errors.New("bill is missing required fields")
	ErrBillAlreadyPaid  = errors.New("bill already marked as paid")
	ErrBillCancelled    = errors.New("bill is cancelled")
)
