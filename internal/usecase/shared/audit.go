package shared

import (
	"github.com/google/uuid"
)

const (
	AuditActionCreate = "create"
	AuditActionUpdate = "update"
	AuditActionDelete = "delete"

	AuditTableReservations = "reservations"
	AuditTableGuests       = "guests"
	AuditTableRooms        = "rooms"
)

// AuditEntry is one append-only change record. Old/NewValues hold serialized
// field state: the full new state on create, field diffs on update.
type AuditEntry struct {
	Action      string
	TableName   string
	RecordID    uuid.UUID
	OldValues   []byte
	NewValues   []byte
	ChangedBy   string
	Description string
}
