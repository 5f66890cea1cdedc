package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-donation-wallet/internal/jwt"
	"github.com/sbilibin2017/gw-donation-wallet/internal/logger"
	"github.com/sbilibin2017/gw-donation-wallet/internal/models"
	"github.com/sbilibin2017/gw-donation-wallet/internal/services"
)

// IdempotencyKeyHeader lets clients retry donations and top-ups safely.
const IdempotencyKeyHeader = "Idempotency-Key"

// ReplayedHeader is set to "true" when a response is a stored replay.
const ReplayedHeader = "Idempotent-Replayed"

const maxIdempotencyKeyLength = 255

// Error codes returned in ErrorResponse.Code.
const (
	CodeInvalidAmount      = "InvalidAmount"
	CodeInsufficientFunds  = "InsufficientFunds"
	CodeAccountNotApproved = "AccountNotApproved"
	CodeValidation         = "ValidationError"
	CodeConflict           = "Conflict"
	CodeNotFound           = "NotFound"
	CodeUnauthorized       = "Unauthorized"
	CodeInternal           = "Internal"
)

// ErrorResponse is the body of every failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Human readable message
	// default: insufficient funds
	Error string `json:"error"`

	// Error kind
	// default: InsufficientFunds
	Code string `json:"code"`
}

var errUnauthorized = errors.New("unauthorized")

// writeError maps an error kind to its HTTP status. Unknown errors are logged
// and hidden behind a generic message.
func writeError(w http.ResponseWriter, err error) {
	status, code := http.StatusInternalServerError, CodeInternal
	switch {
	case errors.Is(err, models.ErrInvalidAmount):
		status, code = http.StatusBadRequest, CodeInvalidAmount
	case errors.Is(err, models.ErrValidation):
		status, code = http.StatusBadRequest, CodeValidation
	case errors.Is(err, models.ErrAccountNotApproved):
		status, code = http.StatusForbidden, CodeAccountNotApproved
	case errors.Is(err, models.ErrNotFound):
		status, code = http.StatusNotFound, CodeNotFound
	case errors.Is(err, models.ErrConflict):
		status, code = http.StatusConflict, CodeConflict
	case errors.Is(err, models.ErrInsufficientFunds):
		status, code = http.StatusUnprocessableEntity, CodeInsufficientFunds
	case errors.Is(err, services.ErrInvalidCredentials), errors.Is(err, errUnauthorized):
		status, code = http.StatusUnauthorized, CodeUnauthorized
	}

	msg := err.Error()
	if status == http.StatusInternalServerError {
		logger.Log.Errorw("internal server error", "err", err)
		msg = "internal server error"
	}
	writeJSON(w, status, ErrorResponse{Error: msg, Code: code})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Log.Errorw("failed to encode response", "err", err)
	}
}

// decodeJSON reads the request body into dst. Amount errors keep their kind,
// everything else becomes a validation error.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, models.ErrInvalidAmount) {
			return err
		}
		return fmt.Errorf("%w: invalid request body", models.ErrValidation)
	}
	return nil
}

// userID returns the caller identity placed in the context by the auth middleware.
func userID(r *http.Request) (uuid.UUID, error) {
	claims, ok := jwt.ClaimsFromContext(r.Context())
	if !ok {
		return uuid.Nil, errUnauthorized
	}
	return claims.UserID, nil
}

func idempotencyKey(r *http.Request) (string, error) {
	key := r.Header.Get(IdempotencyKeyHeader)
	if len(key) > maxIdempotencyKeyLength {
		return "", fmt.Errorf("%w: idempotency key too long", models.ErrValidation)
	}
	return key, nil
}
