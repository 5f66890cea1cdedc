package models

import (
	"time"

	"github.com/google/uuid"
)

// LinkedAccount is an external payment account submitted for admin approval.
// There is at most one per (UserID, Provider).
type LinkedAccount struct {
	UserID        uuid.UUID  `json:"user_id" db:"user_id"`
	Provider      Provider   `json:"provider" db:"provider"`
	AccountName   string     `json:"account_name" db:"account_name"`
	AccountNumber string     `json:"account_number" db:"account_number"`
	BankName      string     `json:"bank_name,omitempty" db:"bank_name"`
	Status        LinkStatus `json:"status" db:"status"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}

// LinkStatuses is the per-provider status view. It always holds every provider.
type LinkStatuses map[Provider]LinkStatus

// NewLinkStatuses returns a view with every provider set to StatusNone.
func NewLinkStatuses() LinkStatuses {
	statuses := make(LinkStatuses, len(Providers))
	for _, p := range Providers {
		statuses[p] = StatusNone
	}
	return statuses
}
