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

// LinkedAccountRepository stores linked accounts in PostgreSQL.
type LinkedAccountRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewLinkedAccountRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *LinkedAccountRepository {
	return &LinkedAccountRepository{db: db, txGetter: txGetter}
}

func (r *LinkedAccountRepository) Get(ctx context.Context, userID uuid.UUID, provider models.Provider) (*models.LinkedAccount, error) {
	const query = `
		SELECT user_id, provider, account_name, account_number, bank_name, status, created_at, updated_at
		FROM linked_accounts
		WHERE user_id = $1 AND provider = $2
	`
	args := []any{userID, provider}

	var acc models.LinkedAccount
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &acc, query, args...)

	logQuery(query, args, acc.Status, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s account", models.ErrNotFound, provider)
	}
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

// Save performs an UPSERT on (user_id, provider).
func (r *LinkedAccountRepository) Save(ctx context.Context, acc models.LinkedAccount) error {
	query := `
		INSERT INTO linked_accounts (user_id, provider, account_name, account_number, bank_name, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id, provider)
		DO UPDATE SET account_name = EXCLUDED.account_name,
		              account_number = EXCLUDED.account_number,
		              bank_name = EXCLUDED.bank_name,
		              status = EXCLUDED.status,
		              updated_at = EXCLUDED.updated_at
	`
	args := []any{acc.UserID, acc.Provider, acc.AccountName, acc.AccountNumber, acc.BankName, acc.Status, acc.CreatedAt, acc.UpdatedAt}

	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)

	logQuery(query, []any{acc.UserID, acc.Provider, acc.Status}, nil, err)

	return err
}

func (r *LinkedAccountRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.LinkedAccount, error) {
	const query = `
		SELECT user_id, provider, account_name, account_number, bank_name, status, created_at, updated_at
		FROM linked_accounts
		WHERE user_id = $1
		ORDER BY provider ASC
	`

	accounts := []models.LinkedAccount{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &accounts, query, userID)

	logQuery(query, []any{userID}, len(accounts), err)

	if err != nil {
		return nil, err
	}
	return accounts, nil
}
