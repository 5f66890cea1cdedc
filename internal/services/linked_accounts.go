package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-donation-wallet/internal/logger"
	"github.com/sbilibin2017/gw-donation-wallet/internal/models"
)

// gcashNumberLength is the length of a GCash mobile number, e.g. 09171234567.
const gcashNumberLength = 11

// LinkedAccountStore persists one linked account per (user, provider).
type LinkedAccountStore interface {
	Get(ctx context.Context, userID uuid.UUID, provider models.Provider) (*models.LinkedAccount, error) // ErrNotFound when absent
	Save(ctx context.Context, account models.LinkedAccount) error                                       // Insert or overwrite
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.LinkedAccount, error)
}

// SubmitLinkedAccountRequest carries the fields of a linking form.
type SubmitLinkedAccountRequest struct {
	UserID        uuid.UUID
	Provider      models.Provider
	AccountName   string
	AccountNumber string
	BankName      string // Optional, bank only
}

// LinkedAccountService validates submissions and drives the approval workflow.
type LinkedAccountService struct {
	store   LinkedAccountStore
	locker  UserLocker
	tx      Transactor
	machine ApprovalStateMachine
	now     func() time.Time
}

// NewLinkedAccountService creates a new LinkedAccountService.
func NewLinkedAccountService(store LinkedAccountStore, locker UserLocker, tx Transactor) *LinkedAccountService {
	return &LinkedAccountService{
		store:  store,
		locker: locker,
		tx:     tx,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Submit stores a new or resubmitted account with status pending.
func (s *LinkedAccountService) Submit(ctx context.Context, req SubmitLinkedAccountRequest) (models.LinkedAccount, error) {
	account, err := validateSubmission(req)
	if err != nil {
		logFailure("submit linked account", err, "userID", req.UserID, "provider", req.Provider)
		return models.LinkedAccount{}, err
	}

	err = s.locker.WithUserLock(ctx, req.UserID, func(ctx context.Context) error {
		return s.tx.WithinTx(ctx, func(ctx context.Context) error {
			current, err := s.get(ctx, req.UserID, req.Provider)
			if err != nil {
				return err
			}

			next, err := s.machine.Submit(statusOf(current))
			if err != nil {
				return err
			}

			now := s.now()
			account.Status = next
			account.CreatedAt = now
			account.UpdatedAt = now
			if current != nil {
				account.CreatedAt = current.CreatedAt
			}
			return s.store.Save(ctx, account)
		})
	})
	if err != nil {
		logFailure("submit linked account", err, "userID", req.UserID, "provider", req.Provider)
		return models.LinkedAccount{}, err
	}

	logger.Log.Infow("linked account submitted", "userID", req.UserID, "provider", req.Provider)
	return account, nil
}

// GetStatus returns the status for one provider, StatusNone when nothing was submitted.
func (s *LinkedAccountService) GetStatus(ctx context.Context, userID uuid.UUID, provider models.Provider) (models.LinkStatus, error) {
	if !provider.Valid() {
		return models.StatusNone, fmt.Errorf("%w: unknown provider", models.ErrNotFound)
	}
	current, err := s.get(ctx, userID, provider)
	if err != nil {
		logFailure("get link status", err, "userID", userID, "provider", provider)
		return models.StatusNone, err
	}
	return statusOf(current), nil
}

// ListStatuses returns the status of every provider for a user.
func (s *LinkedAccountService) ListStatuses(ctx context.Context, userID uuid.UUID) (models.LinkStatuses, error) {
	accounts, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		logFailure("list link statuses", err, "userID", userID)
		return nil, err
	}

	statuses := models.NewLinkStatuses()
	for _, acc := range accounts {
		if acc.Provider.Valid() {
			statuses[acc.Provider] = acc.Status
		}
	}
	return statuses, nil
}

// SetStatus applies an admin decision to a pending account.
func (s *LinkedAccountService) SetStatus(ctx context.Context, userID uuid.UUID, provider models.Provider, decision models.LinkStatus) (models.LinkedAccount, error) {
	if !provider.Valid() {
		return models.LinkedAccount{}, fmt.Errorf("%w: unknown provider", models.ErrNotFound)
	}

	var updated models.LinkedAccount
	err := s.locker.WithUserLock(ctx, userID, func(ctx context.Context) error {
		return s.tx.WithinTx(ctx, func(ctx context.Context) error {
			current, err := s.get(ctx, userID, provider)
			if err != nil {
				return err
			}

			next, err := s.machine.Review(statusOf(current), decision)
			if err != nil {
				return err
			}

			updated = *current
			updated.Status = next
			updated.UpdatedAt = s.now()
			return s.store.Save(ctx, updated)
		})
	})
	if err != nil {
		logFailure("set link status", err, "userID", userID, "provider", provider, "decision", decision)
		return models.LinkedAccount{}, err
	}

	logger.Log.Infow("linked account reviewed", "userID", userID, "provider", provider, "status", updated.Status)
	return updated, nil
}

// approvedUnlocked reports whether the account is approved. The caller holds the user lock.
func (s *LinkedAccountService) approvedUnlocked(ctx context.Context, userID uuid.UUID, provider models.Provider) (bool, error) {
	current, err := s.get(ctx, userID, provider)
	if err != nil {
		return false, err
	}
	return statusOf(current) == models.StatusApproved, nil
}

// get returns the stored account or nil when none exists.
func (s *LinkedAccountService) get(ctx context.Context, userID uuid.UUID, provider models.Provider) (*models.LinkedAccount, error) {
	acc, err := s.store.Get(ctx, userID, provider)
	if errors.Is(err, models.ErrNotFound) {
		return nil, nil
	}
	return acc, err
}

func statusOf(acc *models.LinkedAccount) models.LinkStatus {
	if acc == nil {
		return models.StatusNone
	}
	return acc.Status
}

func validateSubmission(req SubmitLinkedAccountRequest) (models.LinkedAccount, error) {
	if !req.Provider.Valid() {
		return models.LinkedAccount{}, fmt.Errorf("%w: unknown provider", models.ErrValidation)
	}

	name := strings.TrimSpace(req.AccountName)
	number := strings.TrimSpace(req.AccountNumber)
	if name == "" {
		return models.LinkedAccount{}, fmt.Errorf("%w: account name is required", models.ErrValidation)
	}
	if number == "" {
		return models.LinkedAccount{}, fmt.Errorf("%w: account number is required", models.ErrValidation)
	}
	if req.Provider == models.ProviderGCash && !isDigits(number, gcashNumberLength) {
		return models.LinkedAccount{}, fmt.Errorf("%w: gcash number must be exactly %d digits", models.ErrValidation, gcashNumberLength)
	}

	acc := models.LinkedAccount{
		UserID:        req.UserID,
		Provider:      req.Provider,
		AccountName:   name,
		AccountNumber: number,
	}
	if req.Provider == models.ProviderBank {
		acc.BankName = strings.TrimSpace(req.BankName)
	}
	return acc, nil
}

func isDigits(s string, length int) bool {
	if len(s) != length {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
