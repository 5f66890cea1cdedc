package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-donation-wallet/internal/models"
)

// DonationRepository stores donations in PostgreSQL.
type DonationRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewDonationRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *DonationRepository {
	return &DonationRepository{db: db, txGetter: txGetter}
}

func (r *DonationRepository) Save(ctx context.Context, d models.Donation) error {
	query := `
		INSERT INTO donations (donation_id, user_id, project_id, amount, wallet_version, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	args := []any{d.DonationID, d.UserID, d.ProjectID, d.Amount, d.WalletVersion, d.CreatedAt}

	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)

	logQuery(query, args, nil, err)

	return mapError(err, "donation "+d.DonationID.String())
}

// ListByUser returns the donations of a user with project titles, most recent first.
func (r *DonationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Donation, error) {
	const query = `
		SELECT d.donation_id, d.user_id, d.project_id, p.title, d.amount, d.wallet_version, d.created_at
		FROM donations d
		JOIN projects p ON p.project_id = d.project_id
		WHERE d.user_id = $1
		ORDER BY d.seq DESC
	`

	donations := []models.Donation{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &donations, query, userID)

	logQuery(query, []any{userID}, len(donations), err)

	if err != nil {
		return nil, err
	}
	return donations, nil
}
