package bonus

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

type BonusTier string

const (
	TierNone BonusTier = "none"
	Tier1    BonusTier = "tier_1"
	Tier2    BonusTier = "tier_2"
	Tier3    BonusTier = "tier_3"
	Tier4    BonusTier = "tier_4"
	Tier5    BonusTier = "tier_5"
)

// TierLevel is one rung of the bonus ladder: reach MinRevenue in a week,
// receive Amount.
type TierLevel struct {
	MinRevenue decimal.Decimal `json:"min_revenue"`
	Tier       BonusTier       `json:"tier"`
	Amount     decimal.Decimal `json:"amount"`
}

// TierLadder is an ordered threshold table, highest MinRevenue first.
// Classification walks it top-down and the first matching level wins.
type TierLadder []TierLevel

// DefaultTierLadder returns the canonical bonus program ladder.
func DefaultTierLadder() TierLadder {
	return TierLadder{
		{MinRevenue: decimal.NewFromInt(2400), Tier: Tier5, Amount: decimal.NewFromInt(180)},
		{MinRevenue: decimal.NewFromInt(2100), Tier: Tier4, Amount: decimal.NewFromInt(135)},
		{MinRevenue: decimal.NewFromInt(1800), Tier: Tier3, Amount: decimal.NewFromInt(95)},
		{MinRevenue: decimal.NewFromInt(1500), Tier: Tier2, Amount: decimal.NewFromInt(60)},
		{MinRevenue: decimal.NewFromInt(1200), Tier: Tier1, Amount: decimal.NewFromInt(35)},
	}
}

// ParseTierLadder decodes a JSON ladder override (config) and validates it.
func ParseTierLadder(raw string) (TierLadder, error) {
	var ladder TierLadder
	if err := json.Unmarshal([]byte(raw), &ladder); err != nil {
		return nil, fmt.Errorf("failed to parse tier ladder: %w", err)
	}
	if err := ladder.Validate(); err != nil {
		return nil, err
	}
	return ladder, nil
}

// Validate checks the ladder is well formed: non-empty, thresholds strictly
// descending, amounts non-increasing, no level named "none" and no negative
// values. A malformed ladder is rejected before any computation runs.
func (l TierLadder) Validate() error {
	if len(l) == 0 {
		return ErrLadderEmpty
	}
	for i, level := range l {
		if level.Tier == TierNone || level.Tier == "" {
			return fmt.Errorf("tier ladder level %d: tier name %q is reserved", i, level.Tier)
		}
		if level.MinRevenue.Sign() <= 0 {
			return fmt.Errorf("tier ladder level %d (%s): %w", i, level.Tier, ErrLadderNotMonotonic)
		}
		if level.Amount.Sign() < 0 {
			return fmt.Errorf("tier ladder level %d (%s): amount must not be negative", i, level.Tier)
		}
		if i == 0 {
			continue
		}
		if level.MinRevenue.Cmp(l[i-1].MinRevenue) >= 0 {
			return fmt.Errorf("tier ladder level %d (%s): %w", i, level.Tier, ErrLadderNotMonotonic)
		}
		if level.Amount.Cmp(l[i-1].Amount) > 0 {
			return fmt.Errorf("tier ladder level %d (%s): %w", i, level.Tier, ErrLadderAmountOrder)
		}
	}
	return nil
}

// Classification is the outcome of running one weekly revenue figure through
// the ladder.
type Classification struct {
	Tier       BonusTier
	Amount     decimal.Decimal
	IsEligible bool
}

// Classify maps a weekly revenue amount to its bonus tier. Total over all
// inputs: zero and negative revenue classify as none with a zero amount.
func (l TierLadder) Classify(weeklyRevenue decimal.Decimal) Classification {
	for _, level := range l {
		if weeklyRevenue.Cmp(level.MinRevenue) >= 0 {
			return Classification{Tier: level.Tier, Amount: level.Amount, IsEligible: true}
		}
	}
	return Classification{Tier: TierNone, Amount: decimal.Zero, IsEligible: false}
}

// AmountFor returns the payout for a tier, zero for none or an unknown tier.
func (l TierLadder) AmountFor(tier BonusTier) decimal.Decimal {
	for _, level := range l {
		if level.Tier == tier {
			return level.Amount
		}
	}
	return decimal.Zero
}
