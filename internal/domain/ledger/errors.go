package ledger

import "errors"

var (
	ErrLedgerNotFound = errors.New("period ledger not found")
	ErrInvalidPeriod  = errors.New("period month must be between 1 and 12")
)
