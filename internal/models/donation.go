package models

import (
	"time"

	"github.com/google/uuid"
)

// Donation is the immutable record of an accepted donation.
type Donation struct {
	DonationID    uuid.UUID `json:"id" db:"donation_id"`
	UserID        uuid.UUID `json:"user_id" db:"user_id"`
	ProjectID     uuid.UUID `json:"project_id" db:"project_id"`
	ProjectTitle  string    `json:"title" db:"title"` // Joined from projects on read
	Amount        Amount    `json:"amount" db:"amount"`
	WalletVersion int64     `json:"wallet_version" db:"wallet_version"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// TopUp is the immutable record of an accepted wallet top-up.
type TopUp struct {
	TopUpID       uuid.UUID `json:"id" db:"topup_id"`
	UserID        uuid.UUID `json:"user_id" db:"user_id"`
	Provider      Provider  `json:"provider" db:"provider"`
	Amount        Amount    `json:"amount" db:"amount"`
	WalletVersion int64     `json:"wallet_version" db:"wallet_version"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}
