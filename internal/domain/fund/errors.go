package fund

import "errors"

var (
	ErrTransactionNotFound = errors.New("fund transaction not found")
)
