package domain

import "time"

// Operator is a dashboard user identified by a 4-digit PIN. Only the bcrypt
// hash of the PIN is ever stored.
type Operator struct {
	ID        string
	Name      string
	PINHash   string
	CreatedAt time.Time
}
