package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-donation-wallet/internal/logger"
	"github.com/sbilibin2017/gw-donation-wallet/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=coordinator.go -destination=coordinator_mock_test.go -package=services

// DonationStore persists accepted donations.
type DonationStore interface {
	Save(ctx context.Context, donation models.Donation) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Donation, error) // Most recent first
}

// TopUpStore persists accepted top-ups.
type TopUpStore interface {
	Save(ctx context.Context, topUp models.TopUp) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.TopUp, error) // Most recent first
}

// IdempotencyStore remembers the result of a request per (scope, user, key).
type IdempotencyStore interface {
	Get(ctx context.Context, scope string, userID uuid.UUID, key string) ([]byte, bool, error)
	Put(ctx context.Context, scope string, userID uuid.UUID, key string, value []byte) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
}

// DonateRequest asks to move amount from a user's wallet to a project.
type DonateRequest struct {
	UserID         uuid.UUID
	ProjectID      uuid.UUID
	Amount         models.Amount
	IdempotencyKey string // Optional
}

func (r DonateRequest) fingerprint() string {
	return fingerprint(r.ProjectID.String(), r.Amount.String())
}

// DonationResult is the committed state after a donation.
type DonationResult struct {
	Wallet   models.Wallet   `json:"wallet"`
	Project  models.Project  `json:"project"`
	Donation models.Donation `json:"donation"`
	Replayed bool            `json:"-"` // Set when returned from the idempotency store
}

// TopUpRequest asks to credit a wallet from a linked account.
type TopUpRequest struct {
	UserID         uuid.UUID
	Provider       models.Provider
	Amount         models.Amount
	IdempotencyKey string // Optional
}

func (r TopUpRequest) fingerprint() string {
	return fingerprint(r.Provider.String(), r.Amount.String())
}

// TopUpResult is the committed state after a top-up.
type TopUpResult struct {
	Wallet   models.Wallet `json:"wallet"`
	TopUp    models.TopUp  `json:"topup"`
	Replayed bool          `json:"-"`
}

// TransactionCoordinator runs donations and top-ups as single atomic units.
type TransactionCoordinator struct {
	ledger      *WalletLedger
	projects    *ProjectFundingTracker
	links       *LinkedAccountService
	donations   DonationStore
	topUps      TopUpStore
	idempotency IdempotencyStore // nil disables replay
	kafkaWriter KafkaWriter      // nil disables publishing
	locker      UserLocker
	tx          Transactor
	now         func() time.Time
}

// NewTransactionCoordinator creates a new TransactionCoordinator.
func NewTransactionCoordinator(
	ledger *WalletLedger,
	projects *ProjectFundingTracker,
	links *LinkedAccountService,
	donations DonationStore,
	topUps TopUpStore,
	idempotency IdempotencyStore,
	kafkaWriter KafkaWriter,
	locker UserLocker,
	tx Transactor,
) *TransactionCoordinator {
	return &TransactionCoordinator{
		ledger:      ledger,
		projects:    projects,
		links:       links,
		donations:   donations,
		topUps:      topUps,
		idempotency: idempotency,
		kafkaWriter: kafkaWriter,
		locker:      locker,
		tx:          tx,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Donate debits the wallet, credits the project and records the donation, or does nothing.
func (c *TransactionCoordinator) Donate(ctx context.Context, req DonateRequest) (DonationResult, error) {
	if !req.Amount.IsPositive() {
		err := fmt.Errorf("%w: amount must be greater than zero", models.ErrInvalidAmount)
		logFailure("donate", err, "userID", req.UserID, "projectID", req.ProjectID)
		return DonationResult{}, err
	}

	var result DonationResult
	err := c.locker.WithUserLock(ctx, req.UserID, func(ctx context.Context) error {
		replayed, err := c.replay(ctx, models.OperationDonation, req.UserID, req.IdempotencyKey, req.fingerprint(), &result)
		if err != nil || replayed {
			return err
		}

		err = c.tx.WithinTx(ctx, func(ctx context.Context) error {
			w, err := c.ledger.lockedWallet(ctx, req.UserID)
			if err != nil {
				return err
			}
			if req.Amount > w.Balance {
				return fmt.Errorf("%w: balance %s is less than %s", models.ErrInsufficientFunds, w.Balance, req.Amount)
			}
			target, err := c.projects.Get(ctx, req.ProjectID)
			if err != nil {
				return err
			}

			wallet, err := c.ledger.applyDebit(ctx, w, req.Amount, "donation to "+target.Title)
			if err != nil {
				return err
			}
			project, err := c.projects.ApplyDonation(ctx, req.ProjectID, req.Amount)
			if err != nil {
				return err
			}

			donation := models.Donation{
				DonationID:    uuid.New(),
				UserID:        req.UserID,
				ProjectID:     project.ProjectID,
				ProjectTitle:  project.Title,
				Amount:        req.Amount,
				WalletVersion: wallet.Version,
				CreatedAt:     c.now(),
			}
			if err := c.donations.Save(ctx, donation); err != nil {
				return err
			}

			result = DonationResult{Wallet: wallet, Project: project, Donation: donation}
			return nil
		})
		if err != nil {
			return err
		}

		c.remember(ctx, models.OperationDonation, req.UserID, req.IdempotencyKey, req.fingerprint(), result)
		return nil
	})
	if err != nil {
		logFailure("donate", err, "userID", req.UserID, "projectID", req.ProjectID, "amount", req.Amount)
		return DonationResult{}, err
	}
	if result.Replayed {
		logger.Log.Infow("donation replayed", "userID", req.UserID, "donationID", result.Donation.DonationID)
		return result, nil
	}

	logger.Log.Infow("donation accepted",
		"userID", req.UserID,
		"projectID", req.ProjectID,
		"amount", req.Amount,
		"balance", result.Wallet.Balance,
	)
	c.publishTransaction(ctx, models.Transaction{
		TransactionID: result.Donation.DonationID.String(),
		Timestamp:     result.Donation.CreatedAt.Unix(),
		Amount:        req.Amount,
		UserID:        req.UserID.String(),
		Operation:     models.OperationDonation,
		ProjectID:     req.ProjectID.String(),
		BalanceAfter:  result.Wallet.Balance,
		WalletVersion: result.Wallet.Version,
	})
	return result, nil
}

// TopUp credits the wallet from an approved linked account and records the top-up.
func (c *TransactionCoordinator) TopUp(ctx context.Context, req TopUpRequest) (TopUpResult, error) {
	if !req.Amount.IsPositive() {
		err := fmt.Errorf("%w: amount must be greater than zero", models.ErrInvalidAmount)
		logFailure("top up", err, "userID", req.UserID, "provider", req.Provider)
		return TopUpResult{}, err
	}
	if !req.Provider.Valid() {
		err := fmt.Errorf("%w: unknown provider", models.ErrNotFound)
		logFailure("top up", err, "userID", req.UserID)
		return TopUpResult{}, err
	}

	var result TopUpResult
	err := c.locker.WithUserLock(ctx, req.UserID, func(ctx context.Context) error {
		replayed, err := c.replay(ctx, models.OperationTopUp, req.UserID, req.IdempotencyKey, req.fingerprint(), &result)
		if err != nil || replayed {
			return err
		}

		err = c.tx.WithinTx(ctx, func(ctx context.Context) error {
			approved, err := c.links.approvedUnlocked(ctx, req.UserID, req.Provider)
			if err != nil {
				return err
			}
			if !approved {
				return fmt.Errorf("%w: %s account is not approved", models.ErrAccountNotApproved, req.Provider)
			}

			w, err := c.ledger.lockedWallet(ctx, req.UserID)
			if err != nil {
				return err
			}
			wallet, err := c.ledger.applyCredit(ctx, w, req.Amount, "top-up via "+req.Provider.String())
			if err != nil {
				return err
			}

			topUp := models.TopUp{
				TopUpID:       uuid.New(),
				UserID:        req.UserID,
				Provider:      req.Provider,
				Amount:        req.Amount,
				WalletVersion: wallet.Version,
				CreatedAt:     c.now(),
			}
			if err := c.topUps.Save(ctx, topUp); err != nil {
				return err
			}

			result = TopUpResult{Wallet: wallet, TopUp: topUp}
			return nil
		})
		if err != nil {
			return err
		}

		c.remember(ctx, models.OperationTopUp, req.UserID, req.IdempotencyKey, req.fingerprint(), result)
		return nil
	})
	if err != nil {
		logFailure("top up", err, "userID", req.UserID, "provider", req.Provider, "amount", req.Amount)
		return TopUpResult{}, err
	}
	if result.Replayed {
		logger.Log.Infow("top-up replayed", "userID", req.UserID, "topUpID", result.TopUp.TopUpID)
		return result, nil
	}

	logger.Log.Infow("top-up accepted",
		"userID", req.UserID,
		"provider", req.Provider,
		"amount", req.Amount,
		"balance", result.Wallet.Balance,
	)
	c.publishTransaction(ctx, models.Transaction{
		TransactionID: result.TopUp.TopUpID.String(),
		Timestamp:     result.TopUp.CreatedAt.Unix(),
		Amount:        req.Amount,
		UserID:        req.UserID.String(),
		Operation:     models.OperationTopUp,
		Provider:      req.Provider.String(),
		BalanceAfter:  result.Wallet.Balance,
		WalletVersion: result.Wallet.Version,
	})
	return result, nil
}

// ListDonationHistory returns the donations of a user, most recent first.
func (c *TransactionCoordinator) ListDonationHistory(ctx context.Context, userID uuid.UUID) ([]models.Donation, error) {
	if _, err := c.ledger.wallets.GetByUserID(ctx, userID); err != nil {
		logFailure("list donation history", err, "userID", userID)
		return nil, err
	}
	donations, err := c.donations.ListByUser(ctx, userID)
	if err != nil {
		logFailure("list donation history", err, "userID", userID)
		return nil, err
	}
	return donations, nil
}

// ListTopUpHistory returns the top-ups of a user, most recent first.
func (c *TransactionCoordinator) ListTopUpHistory(ctx context.Context, userID uuid.UUID) ([]models.TopUp, error) {
	if _, err := c.ledger.wallets.GetByUserID(ctx, userID); err != nil {
		logFailure("list top-up history", err, "userID", userID)
		return nil, err
	}
	topUps, err := c.topUps.ListByUser(ctx, userID)
	if err != nil {
		logFailure("list top-up history", err, "userID", userID)
		return nil, err
	}
	return topUps, nil
}

// storedResult is what the idempotency store holds for one key.
type storedResult struct {
	Fingerprint string          `json:"fingerprint"`
	Result      json.RawMessage `json:"result"`
}

// fingerprint hashes the request fields a replayed key must match.
func fingerprint(fields ...string) string {
	h := sha256.New()
	for _, f := range fields {
		h.Write([]byte(f))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// replay loads a stored result into dst. It reports false when there is nothing to replay
// and fails with ErrConflict when the key was used for a different request.
func (c *TransactionCoordinator) replay(ctx context.Context, scope string, userID uuid.UUID, key, fp string, dst any) (bool, error) {
	if c.idempotency == nil || key == "" {
		return false, nil
	}

	data, ok, err := c.idempotency.Get(ctx, scope, userID, key)
	if err != nil || !ok {
		return false, err
	}
	var stored storedResult
	if err := json.Unmarshal(data, &stored); err != nil {
		return false, fmt.Errorf("decode stored %s result: %w", scope, err)
	}
	if stored.Fingerprint != fp {
		return false, fmt.Errorf("%w: idempotency key was used for a different %s", models.ErrConflict, scope)
	}
	if err := json.Unmarshal(stored.Result, dst); err != nil {
		return false, fmt.Errorf("decode stored %s result: %w", scope, err)
	}

	switch r := dst.(type) {
	case *DonationResult:
		r.Replayed = true
	case *TopUpResult:
		r.Replayed = true
	}
	return true, nil
}

// remember stores a committed result. A failure here is logged only; the operation has committed.
func (c *TransactionCoordinator) remember(ctx context.Context, scope string, userID uuid.UUID, key, fp string, result any) {
	if c.idempotency == nil || key == "" {
		return
	}

	raw, err := json.Marshal(result)
	if err != nil {
		logger.Log.Errorw("failed to encode idempotent result", "scope", scope, "userID", userID, "error", err)
		return
	}
	data, err := json.Marshal(storedResult{Fingerprint: fp, Result: raw})
	if err != nil {
		logger.Log.Errorw("failed to encode idempotent result", "scope", scope, "userID", userID, "error", err)
		return
	}
	if err := c.idempotency.Put(ctx, scope, userID, key, data); err != nil {
		logger.Log.Errorw("failed to store idempotent result", "scope", scope, "userID", userID, "error", err)
	}
}

// publishTransaction publishes a committed transaction to Kafka.
func (c *TransactionCoordinator) publishTransaction(ctx context.Context, txn models.Transaction) {
	if c.kafkaWriter == nil {
		logger.Log.Debugw("kafka writer not configured, skipping publishing", "transaction_id", txn.TransactionID)
		return
	}

	data, err := json.Marshal(txn)
	if err != nil {
		logger.Log.Errorw("failed to marshal transaction for kafka", "transaction_id", txn.TransactionID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(txn.UserID),
		Value: data,
	}

	if err := c.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish transaction to kafka", "transaction_id", txn.TransactionID, "error", err)
	} else {
		logger.Log.Infow("transaction published to kafka", "transaction_id", txn.TransactionID, "operation", txn.Operation)
	}
}
