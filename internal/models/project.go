package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Project is a fundraising target that receives donations.
type Project struct {
	ProjectID     uuid.UUID `json:"id" db:"project_id"`
	Title         string    `json:"title" db:"title"`
	Description   string    `json:"description" db:"description"`
	TargetAmount  Amount    `json:"target_amount" db:"target_amount"`
	CurrentAmount Amount    `json:"current_amount" db:"current_amount"` // May exceed the target
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

var hundred = decimal.NewFromInt(100)

// ProgressPercent returns min(100, 100*current/target) rounded to two decimals.
// A zero target yields 0.
func (p Project) ProgressPercent() float64 {
	if p.TargetAmount <= 0 || p.CurrentAmount <= 0 {
		return 0
	}
	progress := decimal.NewFromInt(int64(p.CurrentAmount)).
		Mul(hundred).
		Div(decimal.NewFromInt(int64(p.TargetAmount)))
	if progress.GreaterThan(hundred) {
		progress = hundred
	}
	f, _ := progress.Round(2).Float64()
	return f
}
