package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-donation-wallet/internal/models"
)

// WalletRepository stores wallets and their entry log in PostgreSQL.
type WalletRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewWalletRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *WalletRepository {
	return &WalletRepository{db: db, txGetter: txGetter}
}

// Create inserts an empty wallet.
func (r *WalletRepository) Create(ctx context.Context, userID uuid.UUID) error {
	query := `
		INSERT INTO wallets (user_id, balance, version, updated_at)
		VALUES ($1, 0, 0, NOW())
	`

	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, userID)

	logQuery(query, []any{userID}, nil, err)

	return mapError(err, "wallet for user "+userID.String())
}

// GetByUserID reads a wallet without locking it.
func (r *WalletRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Wallet, error) {
	const query = `
		SELECT user_id, balance, version, updated_at
		FROM wallets
		WHERE user_id = $1
	`
	return r.get(ctx, query, userID)
}

// GetForUpdate reads a wallet and locks its row until the transaction ends.
func (r *WalletRepository) GetForUpdate(ctx context.Context, userID uuid.UUID) (*models.Wallet, error) {
	const query = `
		SELECT user_id, balance, version, updated_at
		FROM wallets
		WHERE user_id = $1
		FOR UPDATE
	`
	return r.get(ctx, query, userID)
}

func (r *WalletRepository) get(ctx context.Context, query string, userID uuid.UUID) (*models.Wallet, error) {
	var w models.Wallet
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &w, query, userID)

	logQuery(query, []any{userID}, w, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: wallet for user %s", models.ErrNotFound, userID)
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// UpdateBalance writes balance if the row still has expectedVersion.
func (r *WalletRepository) UpdateBalance(ctx context.Context, userID uuid.UUID, balance models.Amount, expectedVersion int64) (*models.Wallet, error) {
	query := `
		UPDATE wallets
		SET balance = $2, version = version + 1, updated_at = NOW()
		WHERE user_id = $1 AND version = $3
		RETURNING user_id, balance, version, updated_at
	`
	args := []any{userID, balance, expectedVersion}

	var w models.Wallet
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &w, query, args...)

	logQuery(query, args, w, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: wallet of user %s is no longer at version %d", models.ErrConcurrentModification, userID, expectedVersion)
	}
	if err != nil {
		return nil, mapError(err, "wallet balance")
	}
	return &w, nil
}

// AppendEntry inserts one line of the wallet log.
func (r *WalletRepository) AppendEntry(ctx context.Context, entry models.WalletEntry) error {
	query := `
		INSERT INTO wallet_entries (entry_id, user_id, kind, amount, reason, balance_after, version, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	args := []any{entry.EntryID, entry.UserID, entry.Kind, entry.Amount, entry.Reason, entry.BalanceAfter, entry.Version, entry.CreatedAt}

	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)

	logQuery(query, args, nil, err)

	return mapError(err, "wallet entry")
}

// ListEntries returns the wallet log in version order.
func (r *WalletRepository) ListEntries(ctx context.Context, userID uuid.UUID) ([]models.WalletEntry, error) {
	const query = `
		SELECT entry_id, user_id, kind, amount, reason, balance_after, version, created_at
		FROM wallet_entries
		WHERE user_id = $1
		ORDER BY version ASC
	`

	entries := []models.WalletEntry{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &entries, query, userID)

	logQuery(query, []any{userID}, len(entries), err)

	if err != nil {
		return nil, err
	}
	return entries, nil
}
