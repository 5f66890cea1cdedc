package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-donation-wallet/internal/locks"
	"github.com/sbilibin2017/gw-donation-wallet/internal/models"
	"github.com/sbilibin2017/gw-donation-wallet/internal/repositories/memory"
	"github.com/sbilibin2017/gw-donation-wallet/internal/services"
	"github.com/stretchr/testify/require"
)

// testEnv wires the services over the in-memory backend.
type testEnv struct {
	store       *memory.Store
	users       *memory.UserRepository
	wallets     *memory.WalletRepository
	projects    *memory.ProjectRepository
	donations   *memory.DonationRepository
	topUps      *memory.TopUpRepository
	links       *memory.LinkedAccountRepository
	idempotency *memory.IdempotencyStore
	locker      *locks.KeyedMutex

	ledger  *services.WalletLedger
	tracker *services.ProjectFundingTracker
	linked  *services.LinkedAccountService
	coord   *services.TransactionCoordinator
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWith(t, nil, nil)
}

// newTestEnvWith lets a test wrap the project store and attach a Kafka writer.
func newTestEnvWith(t *testing.T, wrapProjects func(services.ProjectStore) services.ProjectStore, kafka services.KafkaWriter) *testEnv {
	t.Helper()

	store := memory.NewStore()
	env := &testEnv{
		store:       store,
		users:       memory.NewUserRepository(store),
		wallets:     memory.NewWalletRepository(store),
		projects:    memory.NewProjectRepository(store),
		donations:   memory.NewDonationRepository(store),
		topUps:      memory.NewTopUpRepository(store),
		links:       memory.NewLinkedAccountRepository(store),
		idempotency: memory.NewIdempotencyStore(time.Minute),
		locker:      locks.NewKeyedMutex(),
	}
	var projects services.ProjectStore = env.projects
	if wrapProjects != nil {
		projects = wrapProjects(env.projects)
	}

	env.ledger = services.NewWalletLedger(env.wallets, env.locker, store)
	env.tracker = services.NewProjectFundingTracker(projects)
	env.linked = services.NewLinkedAccountService(env.links, env.locker, store)
	env.coord = services.NewTransactionCoordinator(
		env.ledger, env.tracker, env.linked,
		env.donations, env.topUps, env.idempotency, kafka,
		env.locker, store,
	)
	return env
}

// newWallet creates a wallet holding balance and returns its owner.
func (e *testEnv) newWallet(t *testing.T, balance models.Amount) uuid.UUID {
	t.Helper()
	userID := uuid.New()
	require.NoError(t, e.wallets.Create(context.Background(), userID))
	if balance > 0 {
		_, err := e.ledger.Credit(context.Background(), userID, balance, "seed")
		require.NoError(t, err)
	}
	return userID
}

// newProject creates a project with target and already raised current.
func (e *testEnv) newProject(t *testing.T, target, current models.Amount) uuid.UUID {
	t.Helper()
	p, err := e.tracker.CreateProject(context.Background(), "Clean Water", "Wells for villages", target)
	require.NoError(t, err)
	if current > 0 {
		_, err = e.tracker.ApplyDonation(context.Background(), p.ProjectID, current)
		require.NoError(t, err)
	}
	return p.ProjectID
}

// approve links and approves an account of provider for userID.
func (e *testEnv) approve(t *testing.T, userID uuid.UUID, provider models.Provider) {
	t.Helper()
	number := "1234567890"
	if provider == models.ProviderGCash {
		number = "09171234567"
	}
	_, err := e.linked.Submit(context.Background(), services.SubmitLinkedAccountRequest{
		UserID:        userID,
		Provider:      provider,
		AccountName:   "Juan Dela Cruz",
		AccountNumber: number,
	})
	require.NoError(t, err)
	_, err = e.linked.SetStatus(context.Background(), userID, provider, models.StatusApproved)
	require.NoError(t, err)
}

func pesos(n int64) models.Amount {
	return models.Amount(n * 100)
}
