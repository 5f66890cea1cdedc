// Package memory is an in-process storage backend. Writes made inside WithinTx
// record a compensating action; the actions run in reverse order when the
// scope fails.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-donation-wallet/internal/logger"
	"github.com/sbilibin2017/gw-donation-wallet/internal/models"
)

type linkKey struct {
	userID   uuid.UUID
	provider models.Provider
}

// Store holds every table of the in-memory backend behind one mutex.
type Store struct {
	mu        sync.RWMutex
	users     map[uuid.UUID]models.UserDB
	emails    map[string]uuid.UUID
	wallets   map[uuid.UUID]models.Wallet
	entries   map[uuid.UUID][]models.WalletEntry
	projects  map[uuid.UUID]models.Project
	order     []uuid.UUID // Project ids in creation order
	donations map[uuid.UUID][]models.Donation
	topUps    map[uuid.UUID][]models.TopUp
	links     map[linkKey]models.LinkedAccount
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		users:     make(map[uuid.UUID]models.UserDB),
		emails:    make(map[string]uuid.UUID),
		wallets:   make(map[uuid.UUID]models.Wallet),
		entries:   make(map[uuid.UUID][]models.WalletEntry),
		projects:  make(map[uuid.UUID]models.Project),
		donations: make(map[uuid.UUID][]models.Donation),
		topUps:    make(map[uuid.UUID][]models.TopUp),
		links:     make(map[linkKey]models.LinkedAccount),
	}
}

type undoKey struct{}

// undoLog collects compensating actions of one scope. It is used by a single goroutine.
type undoLog struct {
	actions []func()
}

// WithinTx runs fn in a scope. If fn fails or panics every write made in the
// scope is undone. A nested call joins the outer scope.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, ok := ctx.Value(undoKey{}).(*undoLog); ok {
		return fn(ctx)
	}

	log := &undoLog{}
	ctx = context.WithValue(ctx, undoKey{}, log)

	defer func() {
		if p := recover(); p != nil {
			s.rollback(log)
			logger.Log.Errorw("panic in memory transaction, rolled back", "panic", p)
			panic(p)
		}
		if err != nil {
			s.rollback(log)
			logger.Log.Debugw("memory transaction rolled back", "actions", len(log.actions), "error", err)
		}
	}()

	return fn(ctx)
}

// record registers undo for a write already applied. The caller holds s.mu.
func record(ctx context.Context, undo func()) {
	if log, ok := ctx.Value(undoKey{}).(*undoLog); ok {
		log.actions = append(log.actions, undo)
	}
}

func (s *Store) rollback(log *undoLog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(log.actions) - 1; i >= 0; i-- {
		log.actions[i]()
	}
	log.actions = nil
}
