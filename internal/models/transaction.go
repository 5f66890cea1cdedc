package models

// Operations published with transaction events.
const (
	OperationDonation = "donation"
	OperationTopUp    = "topup"
)

// Transaction is the event published after a donation or top-up is committed.
type Transaction struct {
	TransactionID string `json:"transaction_id"`       // Donation or top-up record id
	Timestamp     int64  `json:"timestamp"`            // Unix seconds of the commit
	Amount        Amount `json:"amount"`               // Amount moved
	UserID        string `json:"user_id"`              // Wallet owner
	Operation     string `json:"operation"`            // donation or topup
	ProjectID     string `json:"project_id,omitempty"` // Set for donations
	Provider      string `json:"provider,omitempty"`   // Set for top-ups
	BalanceAfter  Amount `json:"balance_after"`        // Wallet balance after the commit
	WalletVersion int64  `json:"wallet_version"`       // Wallet version after the commit
}
