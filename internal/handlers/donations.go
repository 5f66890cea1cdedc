package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-donation-wallet/internal/models"
	"github.com/sbilibin2017/gw-donation-wallet/internal/services"
)

//go:generate mockgen -source=donations.go -destination=donations_mock_test.go -package=handlers

// Donator moves funds from a wallet to a project.
type Donator interface {
	Donate(ctx context.Context, req services.DonateRequest) (services.DonationResult, error)
}

// DonationHistoryLister returns past donations.
type DonationHistoryLister interface {
	ListDonationHistory(ctx context.Context, userID uuid.UUID) ([]models.Donation, error)
}

// DonateRequest represents the JSON body for a donation
// swagger:model DonateRequest
type DonateRequest struct {
	// Project to fund
	// required: true
	ProjectID uuid.UUID `json:"project_id"`

	// Amount to donate
	// required: true
	// default: 30.00
	Amount models.Amount `json:"amount" swaggertype:"number"`
}

// DonateResponse represents a committed donation
// swagger:model DonateResponse
type DonateResponse struct {
	Wallet   BalanceResponse `json:"wallet"`
	Project  ProjectResponse `json:"project"`
	Donation models.Donation `json:"donation"`
}

// NewDonateHandler returns an HTTP handler for donations.
// @Summary Donate to a project
// @Description Debits the wallet and credits the project atomically. Repeating a request with the same Idempotency-Key replays the first result.
// @Tags donations
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Client retry key"
// @Param donateRequest body handlers.DonateRequest true "Donation request"
// @Success 201 {object} handlers.DonateResponse "Donation committed"
// @Success 200 {object} handlers.DonateResponse "Replayed result"
// @Failure 400 {object} handlers.ErrorResponse "Invalid amount"
// @Failure 404 {object} handlers.ErrorResponse "Unknown project or wallet"
// @Failure 422 {object} handlers.ErrorResponse "Insufficient funds"
// @Router /donations [post]
// @Security BearerAuth
func NewDonateHandler(svc Donator) http.HandlerFunc {
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

		var req DonateRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, err)
			return
		}

		result, err := svc.Donate(r.Context(), services.DonateRequest{
			UserID:         id,
			ProjectID:      req.ProjectID,
			Amount:         req.Amount,
			IdempotencyKey: key,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, committedStatus(w, result.Replayed), DonateResponse{
			Wallet:   balanceResponse(result.Wallet),
			Project:  projectResponse(result.Project),
			Donation: result.Donation,
		})
	}
}

// NewListDonationsHandler returns past donations, most recent first.
// @Summary Donation history
// @Tags donations
// @Produce json
// @Success 200 {array} models.Donation
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /donations [get]
// @Security BearerAuth
func NewListDonationsHandler(svc DonationHistoryLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := userID(r)
		if err != nil {
			writeError(w, err)
			return
		}

		donations, err := svc.ListDonationHistory(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		if donations == nil {
			donations = []models.Donation{}
		}

		writeJSON(w, http.StatusOK, donations)
	}
}
