package cron

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowpoint/salon-backend-go/internal/domain/bonus"
	"github.com/glowpoint/salon-backend-go/internal/domain/branch"
	"github.com/glowpoint/salon-backend-go/internal/domain/employee"
	"github.com/glowpoint/salon-backend-go/internal/domain/revenue"
	"github.com/glowpoint/salon-backend-go/internal/repository/memory"
	bonussvc "github.com/glowpoint/salon-backend-go/internal/service/bonus"
)

type noopAlerts struct{}

func (noopAlerts) SendDiscrepancyAlert(context.Context, string, *bonus.DiscrepancyReport) error {
	return nil
}

func TestSyncWeeklyBonuses(t *testing.T) {
	ctx := context.Background()

	branchRepo := memory.NewBranchRepository()
	employeeRepo := memory.NewEmployeeRepository()
	revenueRepo := memory.NewRevenueRepository()
	bonusRepo := memory.NewBonusRepository()

	central, err := branchRepo.Create(ctx, branch.Branch{Name: "Central", Code: "CTR"})
	require.NoError(t, err)
	north, err := branchRepo.Create(ctx, branch.Branch{Name: "North", Code: "NTH"})
	require.NoError(t, err)

	// A deactivated branch stays out of the sync.
	closed, err := branchRepo.Create(ctx, branch.Branch{Name: "Closed", Code: "CLS"})
	require.NoError(t, err)
	inactive := false
	require.NoError(t, branchRepo.Update(ctx, branch.UpdateBranchRequest{ID: closed.ID, IsActive: &inactive}))

	emp, err := employeeRepo.Create(ctx, employee.Employee{
		BranchID: central.ID,
		FullName: "Ayu Lestari",
		Position: employee.PositionStylist,
		HireDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	_, err = revenueRepo.Create(ctx, revenue.DailyRevenue{
		EmployeeID:  emp.ID,
		BranchID:    central.ID,
		Date:        time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC),
		TotalAmount: decimal.NewFromInt(2500),
	})
	require.NoError(t, err)

	svc := bonussvc.NewBonusService(nil, bonusRepo, branchRepo, employeeRepo, revenueRepo,
		nil, noopAlerts{}, "ops@example.com", nil)
	jobs := NewBonusJobs(branchRepo, svc, time.Hour)

	// 2025-06-10 falls in week 2 of June (days 8 through 15).
	require.NoError(t, jobs.syncFor(ctx, time.Date(2025, 6, 10, 1, 0, 0, 0, time.UTC)))

	wb, err := bonusRepo.GetByBranchWeek(ctx, central.ID, 2025, 6, 2)
	require.NoError(t, err)
	assert.True(t, wb.TotalAmount.Equal(decimal.NewFromInt(180)))

	// Branches with no revenue still get a computed week.
	_, err = bonusRepo.GetByBranchWeek(ctx, north.ID, 2025, 6, 2)
	assert.NoError(t, err)

	_, err = bonusRepo.GetByBranchWeek(ctx, closed.ID, 2025, 6, 2)
	assert.ErrorIs(t, err, bonus.ErrWeeklyBonusNotFound)

	// Sync rows carry the system actor.
	logs, _, err := bonusRepo.ListAuditLogs(ctx, bonus.AuditLogFilter{WeeklyBonusID: &wb.ID})
	require.NoError(t, err)
	require.NotEmpty(t, logs)
	for _, l := range logs {
		assert.Equal(t, SystemActor, l.PerformedBy)
	}
}

func TestSyncWeeklyBonusesIdempotent(t *testing.T) {
	ctx := context.Background()

	branchRepo := memory.NewBranchRepository()
	employeeRepo := memory.NewEmployeeRepository()
	revenueRepo := memory.NewRevenueRepository()
	bonusRepo := memory.NewBonusRepository()

	central, err := branchRepo.Create(ctx, branch.Branch{Name: "Central", Code: "CTR"})
	require.NoError(t, err)

	svc := bonussvc.NewBonusService(nil, bonusRepo, branchRepo, employeeRepo, revenueRepo,
		nil, noopAlerts{}, "ops@example.com", nil)
	jobs := NewBonusJobs(branchRepo, svc, time.Hour)

	date := time.Date(2025, 6, 10, 1, 0, 0, 0, time.UTC)
	require.NoError(t, jobs.syncFor(ctx, date))
	require.NoError(t, jobs.syncFor(ctx, date))

	_, totalCount, err := bonusRepo.List(ctx, bonus.ListFilter{BranchID: &central.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), totalCount, "repeated syncs reuse the same weekly bonus row")
}
