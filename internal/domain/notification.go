package domain

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationJobApproved         NotificationType = "job_approved"
	NotificationJobDeclined         NotificationType = "job_declined"
	NotificationApplicationReceived NotificationType = "application_received"
	NotificationApplicationStatus   NotificationType = "application_status"
	NotificationWelcome             NotificationType = "welcome"
	NotificationSystem              NotificationType = "system"
)

func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationJobApproved, NotificationJobDeclined,
		NotificationApplicationReceived, NotificationApplicationStatus,
		NotificationWelcome, NotificationSystem:
		return true
	}
	return false
}

type Notification struct {
	ID        uuid.UUID        `json:"id" db:"id"`
	UserID    uuid.UUID        `json:"user_id" db:"user_id"`
	Type      NotificationType `json:"type" db:"type"`
	Title     string           `json:"title" db:"title"`
	Message   string           `json:"message" db:"message"`
	Data      map[string]any   `json:"data,omitempty" db:"-"`
	DataRaw   []byte           `json:"-" db:"data"`
	IsRead    bool             `json:"is_read" db:"is_read"`
	ReadAt    *time.Time       `json:"read_at,omitempty" db:"read_at"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
}

// Event is what lifecycle code emits instead of writing notifications
// directly. The dispatcher turns one event into a stored notification
// and, for some types, an email.
type Event struct {
	Type      NotificationType
	Recipient uuid.UUID
	Title     string
	Message   string
	Data      map[string]any
}
