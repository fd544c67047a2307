package bonus

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	ladder := DefaultTierLadder()

	tests := []struct {
		name       string
		revenue    int64
		wantTier   BonusTier
		wantAmount int64
		eligible   bool
	}{
		{"high performer lands top tier", 2500, Tier5, 180, true},
		{"exactly top threshold", 2400, Tier5, 180, true},
		{"just below top threshold", 2399, Tier4, 135, true},
		{"tier four threshold", 2100, Tier4, 135, true},
		{"tier three threshold", 1800, Tier3, 95, true},
		{"tier two threshold", 1500, Tier2, 60, true},
		{"modest week lands bottom tier", 1300, Tier1, 35, true},
		{"exactly bottom threshold", 1200, Tier1, 35, true},
		{"just below bottom threshold", 1199, TierNone, 0, false},
		{"well below any tier", 999, TierNone, 0, false},
		{"zero revenue", 0, TierNone, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ladder.Classify(decimal.NewFromInt(tt.revenue))
			assert.Equal(t, tt.wantTier, c.Tier)
			assert.True(t, c.Amount.Equal(decimal.NewFromInt(tt.wantAmount)), "amount %s", c.Amount)
			assert.Equal(t, tt.eligible, c.IsEligible)
		})
	}
}

func TestClassifyNegativeRevenue(t *testing.T) {
	c := DefaultTierLadder().Classify(decimal.NewFromInt(-500))
	assert.Equal(t, TierNone, c.Tier)
	assert.True(t, c.Amount.IsZero())
	assert.False(t, c.IsEligible)
}

// Higher revenue must never classify into a lower-paying tier.
func TestClassifyMonotonic(t *testing.T) {
	ladder := DefaultTierLadder()

	prev := decimal.NewFromInt(-1)
	prevAmount := decimal.Zero
	for revenue := int64(0); revenue <= 3000; revenue += 50 {
		c := ladder.Classify(decimal.NewFromInt(revenue))
		require.True(t, c.Amount.Cmp(prevAmount) >= 0,
			"amount dropped from %s to %s between revenue %s and %d", prevAmount, c.Amount, prev, revenue)
		prev = decimal.NewFromInt(revenue)
		prevAmount = c.Amount
	}
}

func TestTierLadderValidate(t *testing.T) {
	t.Run("default ladder is valid", func(t *testing.T) {
		assert.NoError(t, DefaultTierLadder().Validate())
	})

	t.Run("empty ladder rejected", func(t *testing.T) {
		assert.ErrorIs(t, TierLadder{}.Validate(), ErrLadderEmpty)
	})

	t.Run("ascending thresholds rejected", func(t *testing.T) {
		ladder := TierLadder{
			{MinRevenue: decimal.NewFromInt(1000), Tier: Tier1, Amount: decimal.NewFromInt(10)},
			{MinRevenue: decimal.NewFromInt(2000), Tier: Tier2, Amount: decimal.NewFromInt(5)},
		}
		assert.ErrorIs(t, ladder.Validate(), ErrLadderNotMonotonic)
	})

	t.Run("duplicate thresholds rejected", func(t *testing.T) {
		ladder := TierLadder{
			{MinRevenue: decimal.NewFromInt(1000), Tier: Tier2, Amount: decimal.NewFromInt(20)},
			{MinRevenue: decimal.NewFromInt(1000), Tier: Tier1, Amount: decimal.NewFromInt(10)},
		}
		assert.ErrorIs(t, ladder.Validate(), ErrLadderNotMonotonic)
	})

	t.Run("amounts increasing down the ladder rejected", func(t *testing.T) {
		ladder := TierLadder{
			{MinRevenue: decimal.NewFromInt(2000), Tier: Tier2, Amount: decimal.NewFromInt(20)},
			{MinRevenue: decimal.NewFromInt(1000), Tier: Tier1, Amount: decimal.NewFromInt(50)},
		}
		assert.ErrorIs(t, ladder.Validate(), ErrLadderAmountOrder)
	})

	t.Run("reserved tier name rejected", func(t *testing.T) {
		ladder := TierLadder{
			{MinRevenue: decimal.NewFromInt(1000), Tier: TierNone, Amount: decimal.NewFromInt(10)},
		}
		assert.Error(t, ladder.Validate())
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		ladder := TierLadder{
			{MinRevenue: decimal.NewFromInt(1000), Tier: Tier1, Amount: decimal.NewFromInt(-10)},
		}
		assert.Error(t, ladder.Validate())
	})
}

func TestParseTierLadder(t *testing.T) {
	t.Run("valid override", func(t *testing.T) {
		raw := `[
			{"min_revenue": "2000", "tier": "tier_2", "amount": "100"},
			{"min_revenue": "1000", "tier": "tier_1", "amount": "50"}
		]`
		ladder, err := ParseTierLadder(raw)
		require.NoError(t, err)
		require.Len(t, ladder, 2)

		c := ladder.Classify(decimal.NewFromInt(1500))
		assert.Equal(t, Tier1, c.Tier)
		assert.True(t, c.Amount.Equal(decimal.NewFromInt(50)))
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := ParseTierLadder(`{not json`)
		assert.Error(t, err)
	})

	t.Run("invalid ladder rejected", func(t *testing.T) {
		raw := `[
			{"min_revenue": "1000", "tier": "tier_1", "amount": "50"},
			{"min_revenue": "2000", "tier": "tier_2", "amount": "100"}
		]`
		_, err := ParseTierLadder(raw)
		assert.ErrorIs(t, err, ErrLadderNotMonotonic)
	})
}

func TestAmountFor(t *testing.T) {
	ladder := DefaultTierLadder()

	assert.True(t, ladder.AmountFor(Tier3).Equal(decimal.NewFromInt(95)))
	assert.True(t, ladder.AmountFor(TierNone).IsZero())
	assert.True(t, ladder.AmountFor(BonusTier("tier_99")).IsZero())
}
