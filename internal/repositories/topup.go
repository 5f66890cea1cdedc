package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-donation-wallet/internal/models"
)

// TopUpRepository stores top-ups in PostgreSQL.
type TopUpRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTopUpRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TopUpRepository {
	return &TopUpRepository{db: db, txGetter: txGetter}
}

func (r *TopUpRepository) Save(ctx context.Context, t models.TopUp) error {
	query := `
		INSERT INTO topups (topup_id, user_id, provider, amount, wallet_version, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	args := []any{t.TopUpID, t.UserID, t.Provider, t.Amount, t.WalletVersion, t.CreatedAt}

	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)

	logQuery(query, args, nil, err)

	return mapError(err, "top-up "+t.TopUpID.String())
}

// ListByUser returns the top-ups of a user, most recent first.
func (r *TopUpRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.TopUp, error) {
	const query = `
		SELECT topup_id, user_id, provider, amount, wallet_version, created_at
		FROM topups
		WHERE user_id = $1
		ORDER BY seq DESC
	`

	topUps := []models.TopUp{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &topUps, query, userID)

	logQuery(query, []any{userID}, len(topUps), err)

	if err != nil {
		return nil, err
	}
	return topUps, nil
}
