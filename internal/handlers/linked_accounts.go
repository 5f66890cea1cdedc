package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-donation-wallet/internal/models"
	"github.com/sbilibin2017/gw-donation-wallet/internal/services"
)

//go:generate mockgen -source=linked_accounts.go -destination=linked_accounts_mock_test.go -package=handlers

// LinkedAccountSubmitter submits an account for approval.
type LinkedAccountSubmitter interface {
	Submit(ctx context.Context, req services.SubmitLinkedAccountRequest) (models.LinkedAccount, error)
}

// LinkStatusLister returns the status of every provider.
type LinkStatusLister interface {
	ListStatuses(ctx context.Context, userID uuid.UUID) (models.LinkStatuses, error)
}

// LinkStatusSetter applies an admin decision.
type LinkStatusSetter interface {
	SetStatus(ctx context.Context, userID uuid.UUID, provider models.Provider, decision models.LinkStatus) (models.LinkedAccount, error)
}

// LinkedAccountRequest represents the JSON body for linking an account
// swagger:model LinkedAccountRequest
type LinkedAccountRequest struct {
	// required: true
	// default: gcash
	Provider string `json:"provider" enums:"bank,gcash"`

	// required: true
	// default: Juan Dela Cruz
	AccountName string `json:"account_name"`

	// GCash numbers are 11 digits
	// required: true
	// default: 09171234567
	AccountNumber string `json:"account_number"`

	// Only used for bank accounts
	BankName string `json:"bank_name,omitempty"`
}

// LinkStatusRequest represents an admin decision
// swagger:model LinkStatusRequest
type LinkStatusRequest struct {
	// required: true
	// default: approved
	Status string `json:"status" enums:"approved,rejected"`
}

// NewListLinkStatusesHandler returns the caller's status per provider.
// @Summary Linked account statuses
// @Tags linked-accounts
// @Produce json
// @Success 200 {object} map[string]string "Status per provider"
// @Failure 401 {object} handlers.ErrorResponse
// @Router /linked-accounts [get]
// @Security BearerAuth
func NewListLinkStatusesHandler(svc LinkStatusLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := userID(r)
		if err != nil {
			writeError(w, err)
			return
		}

		statuses, err := svc.ListStatuses(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, statuses)
	}
}

// NewSubmitLinkedAccountHandler returns an HTTP handler for linking an account.
// @Summary Submit linked account
// @Description Stores the account with status pending. Resubmission is allowed only after a rejection.
// @Tags linked-accounts
// @Accept json
// @Produce json
// @Param linkedAccountRequest body handlers.LinkedAccountRequest true "Account"
// @Success 201 {object} models.LinkedAccount
// @Failure 400 {object} handlers.ErrorResponse "Validation error"
// @Failure 409 {object} handlers.ErrorResponse "Pending or approved account exists"
// @Router /linked-accounts [post]
// @Security BearerAuth
func NewSubmitLinkedAccountHandler(svc LinkedAccountSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := userID(r)
		if err != nil {
			writeError(w, err)
			return
		}

		var req LinkedAccountRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, err)
			return
		}

		// Unknown names stay ProviderUnknown and fail validation in the service.
		provider, _ := models.ParseProvider(req.Provider)

		account, err := svc.Submit(r.Context(), services.SubmitLinkedAccountRequest{
			UserID:        id,
			Provider:      provider,
			AccountName:   req.AccountName,
			AccountNumber: req.AccountNumber,
			BankName:      req.BankName,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, account)
	}
}

// NewSetLinkStatusHandler returns an HTTP handler for admin review.
// @Summary Review linked account
// @Tags admin
// @Accept json
// @Produce json
// @Param userID path string true "Account owner"
// @Param provider path string true "Provider" Enums(bank, gcash)
// @Param linkStatusRequest body handlers.LinkStatusRequest true "Decision"
// @Success 200 {object} models.LinkedAccount
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 409 {object} handlers.ErrorResponse "Account is not pending"
// @Router /admin/linked-accounts/{userID}/{provider}/status [put]
// @Security BearerAuth
func NewSetLinkStatusHandler(svc LinkStatusSetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, err := uuid.Parse(chi.URLParam(r, "userID"))
		if err != nil {
			writeError(w, fmt.Errorf("%w: invalid user id", models.ErrValidation))
			return
		}

		provider, err := models.ParseProvider(chi.URLParam(r, "provider"))
		if err != nil {
			writeError(w, err)
			return
		}

		var req LinkStatusRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, err)
			return
		}

		decision, err := models.ParseLinkStatus(req.Status)
		if err != nil {
			writeError(w, err)
			return
		}

		account, err := svc.SetStatus(r.Context(), owner, provider, decision)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, account)
	}
}
