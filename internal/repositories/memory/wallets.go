package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-donation-wallet/internal/models"
)

// WalletRepository stores wallets and their entry log in a Store.
type WalletRepository struct {
	s   *Store
	now func() time.Time
}

// NewWalletRepository creates a new WalletRepository.
func NewWalletRepository(s *Store) *WalletRepository {
	return &WalletRepository{s: s, now: func() time.Time { return time.Now().UTC() }}
}

// Create adds an empty wallet for userID.
func (r *WalletRepository) Create(ctx context.Context, userID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.wallets[userID]; ok {
		return models.ErrAlreadyExists
	}
	r.s.wallets[userID] = models.Wallet{UserID: userID, UpdatedAt: r.now()}
	record(ctx, func() { delete(r.s.wallets, userID) })
	return nil
}

// GetByUserID returns the wallet of userID.
func (r *WalletRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Wallet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	w, ok := r.s.wallets[userID]
	if !ok {
		return nil, fmt.Errorf("%w: wallet for user %s", models.ErrNotFound, userID)
	}
	return &w, nil
}

// GetForUpdate returns the wallet of userID. Exclusion comes from the caller's user lock.
func (r *WalletRepository) GetForUpdate(ctx context.Context, userID uuid.UUID) (*models.Wallet, error) {
	return r.GetByUserID(ctx, userID)
}

// UpdateBalance sets the balance if the stored version still equals expectedVersion.
func (r *WalletRepository) UpdateBalance(ctx context.Context, userID uuid.UUID, balance models.Amount, expectedVersion int64) (*models.Wallet, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	prev, ok := r.s.wallets[userID]
	if !ok {
		return nil, fmt.Errorf("%w: wallet for user %s", models.ErrNotFound, userID)
	}
	if prev.Version != expectedVersion {
		return nil, fmt.Errorf("%w: wallet version %d, expected %d", models.ErrConcurrentModification, prev.Version, expectedVersion)
	}
	if balance < 0 {
		return nil, fmt.Errorf("%w: balance would become negative", models.ErrInsufficientFunds)
	}

	next := models.Wallet{
		UserID:    userID,
		Balance:   balance,
		Version:   prev.Version + 1,
		UpdatedAt: r.now(),
	}
	r.s.wallets[userID] = next
	record(ctx, func() { r.s.wallets[userID] = prev })
	return &next, nil
}

// AppendEntry appends one entry to the log of its wallet.
func (r *WalletRepository) AppendEntry(ctx context.Context, entry models.WalletEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.entries[entry.UserID] = append(r.s.entries[entry.UserID], entry)
	record(ctx, func() {
		r.s.entries[entry.UserID] = removeEntry(r.s.entries[entry.UserID], entry.EntryID)
	})
	return nil
}

// ListEntries returns the log of userID in version order.
func (r *WalletRepository) ListEntries(ctx context.Context, userID uuid.UUID) ([]models.WalletEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	entries := r.s.entries[userID]
	out := make([]models.WalletEntry, len(entries))
	copy(out, entries)
	return out, nil
}

func removeEntry(entries []models.WalletEntry, id uuid.UUID) []models.WalletEntry {
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].EntryID == id {
			return append(entries[:i:i], entries[i+1:]...)
		}
	}
	return entries
}
