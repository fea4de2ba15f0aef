package model

import "time"

// Interaction records a conversation in which a mental-health concern was detected.
type Interaction struct {
	ID               string
	ConversationID   string
	SessionID        string
	ConcernLevel     ConcernLevel
	TriggersFound    []string
	ResourceIDs      []string
	RequiresFollowUp bool
	IPAddress        string
	CreatedAt        time.Time
}

// AlertStatus is the handling state of a CrisisAlert.
type AlertStatus string

const (
	AlertStatusNew          AlertStatus = "new"
	AlertStatusAcknowledged AlertStatus = "acknowledged"
	AlertStatusContacted    AlertStatus = "contacted"
	AlertStatusResolved     AlertStatus = "resolved"
	AlertStatusEscalated    AlertStatus = "escalated"
)

// CrisisAlert asks staff to follow up on a crisis-level interaction.
type CrisisAlert struct {
	ID            string
	InteractionID string
	SessionID     string
	Message       string
	Status        AlertStatus
	CreatedAt     time.Time
}
