package domain

import "time"

// AuditActor is the fixed acting user recorded on audit entries.
const AuditActor = "Treasury Finance"

// Audit action names. String values match the dashboard's historical log
// entries so existing rows stay consistent.
const (
	AuditActionLogin          = "User Login"
	AuditActionLogout         = "System Logout"
	AuditActionAutoLock       = "System Auto-Lock"
	AuditActionEntryAdded     = "Entry Added"
	AuditActionStatusUpdated  = "Status Updated"
	AuditActionStatusReverted = "Status Reverted"
	AuditActionEntryDeleted   = "Entry Deleted"
	AuditActionTreasuryUpdate = "Treasury Update"
)

// AuditLog is an immutable record of an operator action. Entries are created
// by every mutating operation and never updated or deleted.
type AuditLog struct {
	ID        string
	Timestamp string // wall-clock display timestamp
	Action    string
	UserName  string
	Details   string
	CreatedAt time.Time
}
