package bonus

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextStatus(t *testing.T) {
	t.Run("happy path to paid", func(t *testing.T) {
		status := BonusStatusPending
		for _, step := range []struct {
			action AuditAction
			want   BonusStatus
		}{
			{AuditActionRequest, BonusStatusRequested},
			{AuditActionApprove, BonusStatusApproved},
			{AuditActionPay, BonusStatusPaid},
		} {
			next, err := NextStatus(status, step.action)
			require.NoError(t, err)
			assert.Equal(t, step.want, next)
			status = next
		}
	})

	t.Run("rejection path", func(t *testing.T) {
		next, err := NextStatus(BonusStatusRequested, AuditActionReject)
		require.NoError(t, err)
		assert.Equal(t, BonusStatusRejected, next)
	})

	t.Run("no action leads out of terminal states", func(t *testing.T) {
		for _, terminal := range []BonusStatus{BonusStatusPaid, BonusStatusRejected} {
			for _, action := range TransitionActions() {
				_, err := NextStatus(terminal, action)
				assert.ErrorIs(t, err, ErrInvalidTransition, "%s from %s", action, terminal)
			}
		}
	})

	t.Run("wrong precondition carries both statuses", func(t *testing.T) {
		_, err := NextStatus(BonusStatusPending, AuditActionApprove)
		require.Error(t, err)

		var transitionErr *InvalidTransitionError
		require.True(t, errors.As(err, &transitionErr))
		assert.Equal(t, AuditActionApprove, transitionErr.Action)
		assert.Equal(t, BonusStatusPending, transitionErr.Current)
		assert.Equal(t, BonusStatusRequested, transitionErr.Expected)
	})

	t.Run("unknown action", func(t *testing.T) {
		_, err := NextStatus(BonusStatusPending, AuditAction("escalate"))
		assert.ErrorIs(t, err, ErrUnknownAction)
	})

	t.Run("sync is not a transition", func(t *testing.T) {
		_, err := NextStatus(BonusStatusPending, AuditActionSync)
		assert.ErrorIs(t, err, ErrUnknownAction)
	})
}
