package models

import (
	"time"

	"github.com/google/uuid"
)

// Wallet holds the spendable balance of exactly one user.
type Wallet struct {
	UserID    uuid.UUID `json:"user_id" db:"user_id"`       // Owner of the wallet
	Balance   Amount    `json:"balance" db:"balance"`       // Never negative
	Version   int64     `json:"version" db:"version"`       // Incremented on every mutation
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"` // Timestamp of the last mutation
}

// EntryKind tells whether a ledger entry decreased or increased a balance.
type EntryKind string

const (
	EntryDebit  EntryKind = "debit"
	EntryCredit EntryKind = "credit"
)

// WalletEntry is one append-only line of a wallet's transaction log.
type WalletEntry struct {
	EntryID      uuid.UUID `json:"id" db:"entry_id"`
	UserID       uuid.UUID `json:"user_id" db:"user_id"`
	Kind         EntryKind `json:"kind" db:"kind"`
	Amount       Amount    `json:"amount" db:"amount"`
	Reason       string    `json:"reason" db:"reason"`
	BalanceAfter Amount    `json:"balance_after" db:"balance_after"`
	Version      int64     `json:"version" db:"version"` // Wallet version produced by this entry
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
