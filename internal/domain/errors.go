package domain

import "errors"

var (
	// Registry errors
	ErrInvalidPool     = errors.New("unknown account pool")
	ErrAccountNotFound = errors.New("account not found")
	ErrNotFiatAccount  = errors.New("account does not carry an exchange rate")

	// Transaction errors
	ErrInvalidAmount       = errors.New("amount must be a positive number")
	ErrInvalidCategory     = errors.New("unknown transaction category")
	ErrInvalidStatus       = errors.New("unknown transaction status")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrMissingSource       = errors.New("transaction category requires a source account")
	ErrMissingDest         = errors.New("transaction category requires a destination account")

	// Auth errors
	ErrInvalidPIN     = errors.New("PIN must be 4 digits")
	ErrAccessDenied   = errors.New("access denied")
	ErrSessionExpired = errors.New("session expired")
)
