package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-donation-wallet/internal/logger"
	"github.com/sbilibin2017/gw-donation-wallet/internal/models"
)

// UserLocker serializes every wallet-affecting operation of one user.
// Work for different users must never wait on each other.
type UserLocker interface {
	WithUserLock(ctx context.Context, userID uuid.UUID, fn func(ctx context.Context) error) error
}

// Transactor runs fn inside one atomic storage scope. A call made with a context
// that already carries a scope joins it.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// WalletStore persists wallets and their entry log.
type WalletStore interface {
	Create(ctx context.Context, userID uuid.UUID) error                                                                        // Creates an empty wallet
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Wallet, error)                                                 // Plain read
	GetForUpdate(ctx context.Context, userID uuid.UUID) (*models.Wallet, error)                                                // Read that locks the row for the scope
	UpdateBalance(ctx context.Context, userID uuid.UUID, balance models.Amount, expectedVersion int64) (*models.Wallet, error) // Version-checked write
	AppendEntry(ctx context.Context, entry models.WalletEntry) error                                                           // Appends to the log
	ListEntries(ctx context.Context, userID uuid.UUID) ([]models.WalletEntry, error)                                           // Log in version order
}

// WalletLedger owns every balance mutation.
type WalletLedger struct {
	wallets WalletStore
	locker  UserLocker
	tx      Transactor
	now     func() time.Time
}

// NewWalletLedger creates a new WalletLedger.
func NewWalletLedger(wallets WalletStore, locker UserLocker, tx Transactor) *WalletLedger {
	return &WalletLedger{
		wallets: wallets,
		locker:  locker,
		tx:      tx,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// GetBalance returns the current wallet of a user.
func (l *WalletLedger) GetBalance(ctx context.Context, userID uuid.UUID) (models.Wallet, error) {
	w, err := l.wallets.GetByUserID(ctx, userID)
	if err != nil {
		logFailure("get balance", err, "userID", userID)
		return models.Wallet{}, err
	}
	return *w, nil
}

// Entries returns the wallet log of a user, oldest first.
func (l *WalletLedger) Entries(ctx context.Context, userID uuid.UUID) ([]models.WalletEntry, error) {
	if _, err := l.wallets.GetByUserID(ctx, userID); err != nil {
		logFailure("list wallet entries", err, "userID", userID)
		return nil, err
	}
	entries, err := l.wallets.ListEntries(ctx, userID)
	if err != nil {
		logFailure("list wallet entries", err, "userID", userID)
		return nil, err
	}
	return entries, nil
}

// Debit decreases the balance of a user by amount.
func (l *WalletLedger) Debit(ctx context.Context, userID uuid.UUID, amount models.Amount, reason string) (models.Wallet, error) {
	return l.mutate(ctx, userID, amount, reason, l.applyDebit)
}

// Credit increases the balance of a user by amount.
func (l *WalletLedger) Credit(ctx context.Context, userID uuid.UUID, amount models.Amount, reason string) (models.Wallet, error) {
	return l.mutate(ctx, userID, amount, reason, l.applyCredit)
}

type applyFunc func(ctx context.Context, w *models.Wallet, amount models.Amount, reason string) (models.Wallet, error)

func (l *WalletLedger) mutate(ctx context.Context, userID uuid.UUID, amount models.Amount, reason string, apply applyFunc) (models.Wallet, error) {
	if !amount.IsPositive() {
		return models.Wallet{}, fmt.Errorf("%w: amount must be greater than zero", models.ErrInvalidAmount)
	}

	var result models.Wallet
	err := l.locker.WithUserLock(ctx, userID, func(ctx context.Context) error {
		return l.tx.WithinTx(ctx, func(ctx context.Context) error {
			w, err := l.wallets.GetForUpdate(ctx, userID)
			if err != nil {
				return err
			}
			result, err = apply(ctx, w, amount, reason)
			return err
		})
	})
	if err != nil {
		logFailure("wallet mutation", err, "userID", userID, "amount", amount, "reason", reason)
		return models.Wallet{}, err
	}
	return result, nil
}

// lockedWallet reads the wallet for update. The caller must hold the user lock
// and run inside a storage scope.
func (l *WalletLedger) lockedWallet(ctx context.Context, userID uuid.UUID) (*models.Wallet, error) {
	return l.wallets.GetForUpdate(ctx, userID)
}

// applyDebit writes a debit against a wallet read in the current scope.
func (l *WalletLedger) applyDebit(ctx context.Context, w *models.Wallet, amount models.Amount, reason string) (models.Wallet, error) {
	if amount > w.Balance {
		return models.Wallet{}, fmt.Errorf("%w: balance %s is less than %s", models.ErrInsufficientFunds, w.Balance, amount)
	}
	return l.write(ctx, w, models.EntryDebit, w.Balance-amount, amount, reason)
}

// applyCredit writes a credit against a wallet read in the current scope.
func (l *WalletLedger) applyCredit(ctx context.Context, w *models.Wallet, amount models.Amount, reason string) (models.Wallet, error) {
	balance, err := w.Balance.Add(amount)
	if err != nil {
		return models.Wallet{}, err
	}
	return l.write(ctx, w, models.EntryCredit, balance, amount, reason)
}

func (l *WalletLedger) write(ctx context.Context, w *models.Wallet, kind models.EntryKind, balance, amount models.Amount, reason string) (models.Wallet, error) {
	if balance < 0 {
		return models.Wallet{}, fmt.Errorf("%w: balance would become negative", models.ErrInsufficientFunds)
	}

	updated, err := l.wallets.UpdateBalance(ctx, w.UserID, balance, w.Version)
	if err != nil {
		return models.Wallet{}, err
	}

	entry := models.WalletEntry{
		EntryID:      uuid.New(),
		UserID:       w.UserID,
		Kind:         kind,
		Amount:       amount,
		Reason:       reason,
		BalanceAfter: updated.Balance,
		Version:      updated.Version,
		CreatedAt:    l.now(),
	}
	if err := l.wallets.AppendEntry(ctx, entry); err != nil {
		return models.Wallet{}, err
	}

	logger.Log.Infow("wallet updated",
		"userID", w.UserID,
		"kind", kind,
		"amount", amount,
		"balance", updated.Balance,
		"version", updated.Version,
	)
	return *updated, nil
}
