package services

import (
	"errors"

	"github.com/sbilibin2017/gw-donation-wallet/internal/logger"
	"github.com/sbilibin2017/gw-donation-wallet/internal/models"
)

// businessErrors are expected rejections; they are logged as warnings.
var businessErrors = []error{
	models.ErrInvalidAmount,
	models.ErrInsufficientFunds,
	models.ErrAccountNotApproved,
	models.ErrValidation,
	models.ErrConflict,
	models.ErrNotFound,
}

func isBusinessError(err error) bool {
	for _, target := range businessErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// logFailure logs err for op, as a warning when it is an expected rejection.
func logFailure(op string, err error, keysAndValues ...any) {
	kv := append([]any{"op", op, "error", err}, keysAndValues...)
	if isBusinessError(err) {
		logger.Log.Warnw("operation rejected", kv...)
		return
	}
	logger.Log.Errorw("operation failed", kv...)
}
