package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-donation-wallet/internal/models"
	"github.com/sbilibin2017/gw-donation-wallet/internal/services"
)

//go:generate mockgen -source=wallet.go -destination=wallet_mock_test.go -package=handlers

// BalanceReader defines the interface that the ledger must implement.
type BalanceReader interface {
	GetBalance(ctx context.Context, userID uuid.UUID) (models.Wallet, error)
}

// EntryLister returns a wallet's ledger log.
type EntryLister interface {
	Entries(ctx context.Context, userID uuid.UUID) ([]models.WalletEntry, error)
}

// TopUpper credits a wallet from an approved linked account.
type TopUpper interface {
	TopUp(ctx context.Context, req services.TopUpRequest) (services.TopUpResult, error)
}

// TopUpHistoryLister returns past top-ups.
type TopUpHistoryLister interface {
	ListTopUpHistory(ctx context.Context, userID uuid.UUID) ([]models.TopUp, error)
}

// BalanceResponse represents the caller's wallet
// swagger:model BalanceResponse
type BalanceResponse struct {
	// Spendable balance
	// default: 100.00
	Balance models.Amount `json:"balance" swaggertype:"number"`

	// Wallet version
	Version int64 `json:"version"`

	UpdatedAt time.Time `json:"updated_at"`
}

// TopUpRequest represents the JSON body for a top-up
// swagger:model TopUpRequest
type TopUpRequest struct {
	// Linked account provider
	// required: true
	// default: gcash
	Provider string `json:"provider" enums:"bank,gcash"`

	// Amount to add
	// required: true
	// default: 50.00
	Amount models.Amount `json:"amount" swaggertype:"number"`
}

// TopUpResponse represents a committed top-up
// swagger:model TopUpResponse
type TopUpResponse struct {
	Balance BalanceResponse `json:"wallet"`
	TopUp   models.TopUp    `json:"topup"`
}

func balanceResponse(w models.Wallet) BalanceResponse {
	return BalanceResponse{Balance: w.Balance, Version: w.Version, UpdatedAt: w.UpdatedAt}
}

// NewGetBalanceHandler returns an HTTP handler for fetching the wallet balance.
// @Summary Get wallet balance
// @Tags wallet
// @Produce json
// @Success 200 {object} handlers.BalanceResponse "Wallet balance"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Wallet not found"
// @Router /wallet/balance [get]
// @Security BearerAuth
func NewGetBalanceHandler(ledger BalanceReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := userID(r)
		if err != nil {
			writeError(w, err)
			return
		}

		wallet, err := ledger.GetBalance(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, balanceResponse(wallet))
	}
}

// NewListEntriesHandler returns the wallet ledger log, oldest first.
// @Summary Wallet ledger entries
// @Tags wallet
// @Produce json
// @Success 200 {array} models.WalletEntry
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /wallet/entries [get]
// @Security BearerAuth
func NewListEntriesHandler(ledger EntryLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := userID(r)
		if err != nil {
			writeError(w, err)
			return
		}

		entries, err := ledger.Entries(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		if entries == nil {
			entries = []models.WalletEntry{}
		}

		writeJSON(w, http.StatusOK, entries)
	}
}

// NewTopUpHandler returns an HTTP handler for wallet top-ups.
// @Summary Top up wallet
// @Description Credits the wallet through an approved linked account. Repeating a request with the same Idempotency-Key replays the first result.
// @Tags wallet
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Client retry key"
// @Param topUpRequest body handlers.TopUpRequest true "Top-up request"
// @Success 201 {object} handlers.TopUpResponse "Top-up committed"
// @Success 200 {object} handlers.TopUpResponse "Replayed result"
// @Failure 400 {object} handlers.ErrorResponse "Invalid amount"
// @Failure 403 {object} handlers.ErrorResponse "Linked account not approved"
// @Failure 404 {object} handlers.ErrorResponse "Unknown provider or wallet"
// @Router /wallet/topup [post]
// @Security BearerAuth
func NewTopUpHandler(svc TopUpper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := userID(r)
		if err != nil {
			writeError(w, err)
			return
		}

		key, err := idempotencyKey(r)
		if err != nil {
			writeError(w, err)
			return
		}

		var req TopUpRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, err)
			return
		}

		// Unknown names stay ProviderUnknown and are reported as NotFound by the coordinator.
		provider, _ := models.ParseProvider(req.Provider)

		result, err := svc.TopUp(r.Context(), services.TopUpRequest{
			UserID:         id,
			Provider:       provider,
			Amount:         req.Amount,
			IdempotencyKey: key,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, committedStatus(w, result.Replayed), TopUpResponse{
			Balance: balanceResponse(result.Wallet),
			TopUp:   result.TopUp,
		})
	}
}

// NewListTopUpsHandler returns past top-ups, most recent first.
// @Summary Top-up history
// @Tags wallet
// @Produce json
// @Success 200 {array} models.TopUp
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /wallet/topups [get]
// @Security BearerAuth
func NewListTopUpsHandler(svc TopUpHistoryLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := userID(r)
		if err != nil {
			writeError(w, err)
			return
		}

		topUps, err := svc.ListTopUpHistory(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		if topUps == nil {
			topUps = []models.TopUp{}
		}

		writeJSON(w, http.StatusOK, topUps)
	}
}

func committedStatus(w http.ResponseWriter, replayed bool) int {
	if replayed {
		w.Header().Set(ReplayedHeader, "true")
		return http.StatusOK
	}
	return http.StatusCreated
}
