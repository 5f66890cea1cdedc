package memory

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-donation-wallet/internal/models"
)

// DonationRepository stores donations in a Store.
type DonationRepository struct {
	s *Store
}

// NewDonationRepository creates a new DonationRepository.
func NewDonationRepository(s *Store) *DonationRepository {
	return &DonationRepository{s: s}
}

// Save appends a donation to the history of its user.
func (r *DonationRepository) Save(ctx context.Context, donation models.Donation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.donations[donation.UserID] = append(r.s.donations[donation.UserID], donation)
	record(ctx, func() {
		list := r.s.donations[donation.UserID]
		for i := len(list) - 1; i >= 0; i-- {
			if list[i].DonationID == donation.DonationID {
				r.s.donations[donation.UserID] = append(list[:i:i], list[i+1:]...)
				return
			}
		}
	})
	return nil
}

// ListByUser returns the donations of userID, most recent first.
func (r *DonationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Donation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	list := r.s.donations[userID]
	out := make([]models.Donation, 0, len(list))
	for i := len(list) - 1; i >= 0; i-- {
		out = append(out, list[i])
	}
	return out, nil
}

// TopUpRepository stores top-ups in a Store.
type TopUpRepository struct {
	s *Store
}

// NewTopUpRepository creates a new TopUpRepository.
func NewTopUpRepository(s *Store) *TopUpRepository {
	return &TopUpRepository{s: s}
}

// Save appends a top-up to the history of its user.
func (r *TopUpRepository) Save(ctx context.Context, topUp models.TopUp) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.topUps[topUp.UserID] = append(r.s.topUps[topUp.UserID], topUp)
	record(ctx, func() {
		list := r.s.topUps[topUp.UserID]
		for i := len(list) - 1; i >= 0; i-- {
			if list[i].TopUpID == topUp.TopUpID {
				r.s.topUps[topUp.UserID] = append(list[:i:i], list[i+1:]...)
				return
			}
		}
	})
	return nil
}

// ListByUser returns the top-ups of userID, most recent first.
func (r *TopUpRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.TopUp, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	list := r.s.topUps[userID]
	out := make([]models.TopUp, 0, len(list))
	for i := len(list) - 1; i >= 0; i-- {
		out = append(out, list[i])
	}
	return out, nil
}

// LinkedAccountRepository stores linked accounts in a Store.
type LinkedAccountRepository struct {
	s *Store
}

// NewLinkedAccountRepository creates a new LinkedAccountRepository.
func NewLinkedAccountRepository(s *Store) *LinkedAccountRepository {
	return &LinkedAccountRepository{s: s}
}

// Get returns the account of userID for provider.
func (r *LinkedAccountRepository) Get(ctx context.Context, userID uuid.UUID, provider models.Provider) (*models.LinkedAccount, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	acc, ok := r.s.links[linkKey{userID, provider}]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &acc, nil
}

// Save inserts or overwrites the account for its (user, provider).
func (r *LinkedAccountRepository) Save(ctx context.Context, account models.LinkedAccount) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := linkKey{account.UserID, account.Provider}
	prev, existed := r.s.links[key]
	r.s.links[key] = account
	record(ctx, func() {
		if existed {
			r.s.links[key] = prev
			return
		}
		delete(r.s.links, key)
	})
	return nil
}

// ListByUser returns every account of userID in provider order.
func (r *LinkedAccountRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.LinkedAccount, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []models.LinkedAccount
	for _, p := range models.Providers {
		if acc, ok := r.s.links[linkKey{userID, p}]; ok {
			out = append(out, acc)
		}
	}
	return out, nil
}
