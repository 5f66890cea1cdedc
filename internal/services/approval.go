package services

import (
	"fmt"

	"github.com/sbilibin2017/gw-donation-wallet/internal/models"
)

// ApprovalStateMachine holds the legal transitions of a linked account:
//
//	none -> pending (submit)
//	rejected -> pending (resubmit)
//	pending -> approved | rejected (admin review)
//
// An approved account cannot be changed through either path.
type ApprovalStateMachine struct{}

// Submit returns the status a submission moves the account to.
func (ApprovalStateMachine) Submit(current models.LinkStatus) (models.LinkStatus, error) {
	switch current {
	case models.StatusNone, models.StatusRejected:
		return models.StatusPending, nil
	case models.StatusPending:
		return current, fmt.Errorf("%w: account is already awaiting approval", models.ErrConflict)
	case models.StatusApproved:
		return current, fmt.Errorf("%w: account is already approved", models.ErrConflict)
	default:
		return current, fmt.Errorf("%w: unexpected status %s", models.ErrConflict, current)
	}
}

// Review returns the status an admin decision moves the account to.
func (ApprovalStateMachine) Review(current, decision models.LinkStatus) (models.LinkStatus, error) {
	if decision != models.StatusApproved && decision != models.StatusRejected {
		return current, fmt.Errorf("%w: decision must be approved or rejected", models.ErrValidation)
	}
	switch current {
	case models.StatusNone:
		return current, fmt.Errorf("%w: no account submitted", models.ErrNotFound)
	case models.StatusPending:
		return decision, nil
	default:
		return current, fmt.Errorf("%w: cannot move %s account to %s", models.ErrConflict, current, decision)
	}
}
