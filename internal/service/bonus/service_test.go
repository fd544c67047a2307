package bonus

import (
	"context"
	"errors"
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
)

type alertRecorder struct {
	sent []bonus.DiscrepancyReport
	fail bool
}

func (a *alertRecorder) SendDiscrepancyAlert(_ context.Context, _ string, report *bonus.DiscrepancyReport) error {
	if a.fail {
		return errors.New("smtp unreachable")
	}
	a.sent = append(a.sent, *report)
	return nil
}

type fixture struct {
	svc          *BonusServiceImpl
	bonusRepo    *memory.BonusRepository
	branchRepo   *memory.BranchRepository
	employeeRepo *memory.EmployeeRepository
	revenueRepo  *memory.RevenueRepository
	alerts       *alertRecorder

	branch branch.Branch
	ayu    employee.Employee
	bima   employee.Employee
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	f := &fixture{
		bonusRepo:    memory.NewBonusRepository(),
		branchRepo:   memory.NewBranchRepository(),
		employeeRepo: memory.NewEmployeeRepository(),
		revenueRepo:  memory.NewRevenueRepository(),
		alerts:       &alertRecorder{},
	}

	var err error
	f.branch, err = f.branchRepo.Create(ctx, branch.Branch{Name: "Central", Code: "CTR"})
	require.NoError(t, err)

	f.ayu, err = f.employeeRepo.Create(ctx, employee.Employee{
		BranchID: f.branch.ID,
		FullName: "Ayu Lestari",
		Position: employee.PositionStylist,
		HireDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	f.bima, err = f.employeeRepo.Create(ctx, employee.Employee{
		BranchID: f.branch.ID,
		FullName: "Bima Putra",
		Position: employee.PositionTherapist,
		HireDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	f.svc = NewBonusService(nil, f.bonusRepo, f.branchRepo, f.employeeRepo, f.revenueRepo,
		bonus.DefaultTierLadder(), f.alerts, "ops@example.com", nil)

	return f
}

func (f *fixture) addRevenue(t *testing.T, employeeID string, day int, amount int64) {
	t.Helper()
	_, err := f.revenueRepo.Create(context.Background(), revenue.DailyRevenue{
		EmployeeID:  employeeID,
		BranchID:    f.branch.ID,
		Date:        time.Date(2025, 6, day, 0, 0, 0, 0, time.UTC),
		TotalAmount: decimal.NewFromInt(amount),
	})
	require.NoError(t, err)
}

// week 2 of June 2025 covers days 8 through 15
func (f *fixture) computeWeek2(t *testing.T) bonus.WeeklyBonusResponse {
	t.Helper()
	resp, err := f.svc.ComputeWeeklyBonus(context.Background(), bonus.ComputeWeeklyBonusRequest{
		BranchID: f.branch.ID, Year: 2025, Month: 6, WeekNumber: 2,
	}, "user-1")
	require.NoError(t, err)
	return resp
}

func detailFor(t *testing.T, resp bonus.WeeklyBonusResponse, employeeID string) bonus.BonusDetailResponse {
	t.Helper()
	for _, d := range resp.Details {
		if d.EmployeeID == employeeID {
			return d
		}
	}
	t.Fatalf("no detail for employee %s", employeeID)
	return bonus.BonusDetailResponse{}
}

func TestComputeWeeklyBonus(t *testing.T) {
	f := newFixture(t)
	f.addRevenue(t, f.ayu.ID, 9, 1500)
	f.addRevenue(t, f.ayu.ID, 10, 1000)
	f.addRevenue(t, f.bima.ID, 11, 1300)

	resp := f.computeWeek2(t)

	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "2025-06-08", resp.WeekStart)
	assert.Equal(t, "2025-06-15", resp.WeekEnd)
	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(215)), "total %s", resp.TotalAmount)
	require.Len(t, resp.Details, 2)

	ayu := detailFor(t, resp, f.ayu.ID)
	assert.Equal(t, "tier_5", ayu.BonusTier)
	assert.True(t, ayu.WeeklyRevenue.Equal(decimal.NewFromInt(2500)))
	assert.True(t, ayu.BonusAmount.Equal(decimal.NewFromInt(180)))
	assert.True(t, ayu.IsEligible)

	bima := detailFor(t, resp, f.bima.ID)
	assert.Equal(t, "tier_1", bima.BonusTier)
	assert.True(t, bima.BonusAmount.Equal(decimal.NewFromInt(35)))
}

func TestComputeWeeklyBonusIdempotent(t *testing.T) {
	f := newFixture(t)
	f.addRevenue(t, f.ayu.ID, 9, 2500)
	f.addRevenue(t, f.bima.ID, 11, 1300)

	first := f.computeWeek2(t)
	second := f.computeWeek2(t)

	assert.Equal(t, first.ID, second.ID)
	assert.True(t, first.TotalAmount.Equal(second.TotalAmount))
	require.Equal(t, len(first.Details), len(second.Details))
	for _, d := range first.Details {
		after := detailFor(t, second, d.EmployeeID)
		assert.Equal(t, d.ID, after.ID, "detail row replaced instead of updated")
		assert.Equal(t, d.BonusTier, after.BonusTier)
		assert.True(t, d.WeeklyRevenue.Equal(after.WeeklyRevenue))
		assert.True(t, d.BonusAmount.Equal(after.BonusAmount))
	}

	// Only the audit log grows: one sync row per run.
	logs, total, err := f.bonusRepo.ListAuditLogs(context.Background(), bonus.AuditLogFilter{WeeklyBonusID: &first.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	for _, l := range logs {
		assert.Equal(t, bonus.AuditActionSync, l.Action)
		require.NotNil(t, l.OldStatus)
		require.NotNil(t, l.NewStatus)
		assert.Equal(t, *l.OldStatus, *l.NewStatus)
		assert.Equal(t, "user-1", l.PerformedBy)
	}
}

func TestComputeWeeklyBonusZeroRevenueEmployee(t *testing.T) {
	f := newFixture(t)
	f.addRevenue(t, f.ayu.ID, 9, 1800)

	resp := f.computeWeek2(t)

	require.Len(t, resp.Details, 2, "zero-revenue employee must still get a row")
	bima := detailFor(t, resp, f.bima.ID)
	assert.Equal(t, "none", bima.BonusTier)
	assert.True(t, bima.WeeklyRevenue.IsZero())
	assert.True(t, bima.BonusAmount.IsZero())
	assert.False(t, bima.IsEligible)

	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(95)))
}

func TestComputeWeeklyBonusInvariants(t *testing.T) {
	f := newFixture(t)
	f.addRevenue(t, f.ayu.ID, 8, 2200)
	f.addRevenue(t, f.bima.ID, 15, 600)

	resp := f.computeWeek2(t)

	sum := decimal.Zero
	for _, d := range resp.Details {
		sum = sum.Add(d.BonusAmount)
		assert.Equal(t, d.BonusTier != "none", d.IsEligible, "eligibility must match tier for %s", d.EmployeeID)
	}
	assert.True(t, resp.TotalAmount.Equal(sum), "total %s != sum of details %s", resp.TotalAmount, sum)
}

func TestComputeWeeklyBonusRevenueFollowsEmployee(t *testing.T) {
	f := newFixture(t)

	// Revenue recorded while Ayu worked at another branch still counts
	// for her current branch's week.
	_, err := f.revenueRepo.Create(context.Background(), revenue.DailyRevenue{
		EmployeeID:  f.ayu.ID,
		BranchID:    "some-other-branch",
		Date:        time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
		TotalAmount: decimal.NewFromInt(1500),
	})
	require.NoError(t, err)

	resp := f.computeWeek2(t)
	ayu := detailFor(t, resp, f.ayu.ID)
	assert.True(t, ayu.WeeklyRevenue.Equal(decimal.NewFromInt(1500)))
	assert.Equal(t, "tier_2", ayu.BonusTier)
}

func TestComputeWeeklyBonusRecomputeAfterRevenueChange(t *testing.T) {
	f := newFixture(t)
	f.addRevenue(t, f.ayu.ID, 9, 1300)
	first := f.computeWeek2(t)
	assert.True(t, first.TotalAmount.Equal(decimal.NewFromInt(35)))

	// A late revenue entry pushes Ayu up two tiers.
	f.addRevenue(t, f.ayu.ID, 10, 500)
	second := f.computeWeek2(t)

	ayu := detailFor(t, second, f.ayu.ID)
	assert.Equal(t, "tier_3", ayu.BonusTier)
	assert.True(t, ayu.WeeklyRevenue.Equal(decimal.NewFromInt(1800)))
	assert.True(t, second.TotalAmount.Equal(decimal.NewFromInt(95)))
}

func TestComputeWeeklyBonusStaleDetailUntouched(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addRevenue(t, f.ayu.ID, 9, 2500)
	f.addRevenue(t, f.bima.ID, 11, 1300)
	first := f.computeWeek2(t)

	// Bima resigns; he no longer appears in the aggregation but his
	// detail row stays as computed.
	resigned := string(employee.EmploymentStatusResigned)
	require.NoError(t, f.employeeRepo.Update(ctx, employee.UpdateEmployeeRequest{
		ID: f.bima.ID, EmploymentStatus: &resigned,
	}))

	second := f.computeWeek2(t)

	bimaBefore := detailFor(t, first, f.bima.ID)
	bimaAfter := detailFor(t, second, f.bima.ID)
	assert.Equal(t, bimaBefore.ID, bimaAfter.ID)
	assert.True(t, bimaBefore.BonusAmount.Equal(bimaAfter.BonusAmount))

	// The total still sums every detail row, stale ones included.
	assert.True(t, second.TotalAmount.Equal(decimal.NewFromInt(215)))
}

func TestComputeWeeklyBonusValidation(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.ComputeWeeklyBonus(context.Background(), bonus.ComputeWeeklyBonusRequest{
		BranchID: f.branch.ID, Year: 2025, Month: 6, WeekNumber: 5,
	}, "user-1")
	assert.Error(t, err)

	_, err = f.svc.ComputeWeeklyBonus(context.Background(), bonus.ComputeWeeklyBonusRequest{
		BranchID: "missing", Year: 2025, Month: 6, WeekNumber: 1,
	}, "user-1")
	assert.ErrorIs(t, err, branch.ErrBranchNotFound)
}

func TestUpsertDetailConflictRetry(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addRevenue(t, f.ayu.ID, 9, 2500)
	resp := f.computeWeek2(t)

	// Simulate the losing side of a concurrent insert race: the caller
	// believed the row was absent, but it exists by the time it inserts.
	detail := bonus.BonusDetail{
		WeeklyBonusID: resp.ID,
		EmployeeID:    f.ayu.ID,
		WeeklyRevenue: decimal.NewFromInt(1500),
		BonusTier:     bonus.Tier2,
		BonusAmount:   decimal.NewFromInt(60),
		IsEligible:    true,
	}
	require.NoError(t, f.svc.upsertDetail(ctx, detail, false))

	details, err := f.bonusRepo.GetDetails(ctx, resp.ID)
	require.NoError(t, err)
	require.Len(t, details, 1, "conflict retry must update, not duplicate")
	assert.Equal(t, bonus.Tier2, details[0].BonusTier)
}

func TestTransitionWorkflow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addRevenue(t, f.ayu.ID, 9, 2500)
	resp := f.computeWeek2(t)

	resp, err := f.svc.Transition(ctx, resp.ID, bonus.TransitionRequest{Action: "request"}, "supervisor-1")
	require.NoError(t, err)
	assert.Equal(t, "requested", resp.Status)

	resp, err = f.svc.Transition(ctx, resp.ID, bonus.TransitionRequest{Action: "approve"}, "admin-1")
	require.NoError(t, err)
	assert.Equal(t, "approved", resp.Status)

	resp, err = f.svc.Transition(ctx, resp.ID, bonus.TransitionRequest{Action: "pay"}, "admin-1")
	require.NoError(t, err)
	assert.Equal(t, "paid", resp.Status)

	// Terminal: nothing leads out of paid.
	for _, action := range []string{"request", "approve", "reject", "pay"} {
		_, err := f.svc.Transition(ctx, resp.ID, bonus.TransitionRequest{Action: action, Details: "x"}, "admin-1")
		assert.ErrorIs(t, err, bonus.ErrInvalidTransition, "action %s", action)
	}

	logs, _, err := f.bonusRepo.ListAuditLogs(ctx, bonus.AuditLogFilter{WeeklyBonusID: &resp.ID})
	require.NoError(t, err)

	byAction := map[bonus.AuditAction]int{}
	for _, l := range logs {
		byAction[l.Action]++
	}
	assert.Equal(t, 1, byAction[bonus.AuditActionSync])
	assert.Equal(t, 1, byAction[bonus.AuditActionRequest])
	assert.Equal(t, 1, byAction[bonus.AuditActionApprove])
	assert.Equal(t, 1, byAction[bonus.AuditActionPay])
}

func TestTransitionReject(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addRevenue(t, f.ayu.ID, 9, 1300)
	resp := f.computeWeek2(t)

	_, err := f.svc.Transition(ctx, resp.ID, bonus.TransitionRequest{Action: "request"}, "supervisor-1")
	require.NoError(t, err)

	// A reject without a reason never reaches the state machine.
	_, err = f.svc.Transition(ctx, resp.ID, bonus.TransitionRequest{Action: "reject"}, "admin-1")
	assert.ErrorIs(t, err, bonus.ErrRejectReasonRequired)

	got, err := f.svc.Get(ctx, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, "requested", got.Status)

	resp, err = f.svc.Transition(ctx, resp.ID, bonus.TransitionRequest{Action: "reject", Details: "revenue entries under review"}, "admin-1")
	require.NoError(t, err)
	assert.Equal(t, "rejected", resp.Status)

	logs, _, err := f.bonusRepo.ListAuditLogs(ctx, bonus.AuditLogFilter{WeeklyBonusID: &resp.ID})
	require.NoError(t, err)

	var rejects []bonus.AuditLog
	for _, l := range logs {
		if l.Action == bonus.AuditActionReject {
			rejects = append(rejects, l)
		}
	}
	require.Len(t, rejects, 1)
	assert.Equal(t, "revenue entries under review", rejects[0].Details)
	assert.Equal(t, "admin-1", rejects[0].PerformedBy)
}

func TestTransitionUnknownAction(t *testing.T) {
	f := newFixture(t)
	f.addRevenue(t, f.ayu.ID, 9, 1300)
	resp := f.computeWeek2(t)

	_, err := f.svc.Transition(context.Background(), resp.ID, bonus.TransitionRequest{Action: "escalate"}, "admin-1")
	assert.Error(t, err)
}

func TestDetectBonusDiscrepanciesCleanWeek(t *testing.T) {
	f := newFixture(t)
	f.addRevenue(t, f.ayu.ID, 9, 2500)
	f.addRevenue(t, f.bima.ID, 11, 1300)
	resp := f.computeWeek2(t)

	report, err := f.svc.DetectBonusDiscrepancies(context.Background(), resp.ID, "admin-1")
	require.NoError(t, err)
	assert.False(t, report.HasDiscrepancy)
	assert.Empty(t, report.Discrepancies)
	assert.True(t, report.RegisteredTotal.Equal(report.ExpectedTotal))
	assert.False(t, report.AlertSent)
	assert.Empty(t, f.alerts.sent)
}

func TestDetectBonusDiscrepanciesRevenueDrift(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addRevenue(t, f.ayu.ID, 9, 1300)
	resp := f.computeWeek2(t)

	// Revenue corrected upward after the computation ran.
	f.addRevenue(t, f.ayu.ID, 10, 700)

	report, err := f.svc.DetectBonusDiscrepancies(ctx, resp.ID, "admin-1")
	require.NoError(t, err)
	require.True(t, report.HasDiscrepancy)
	require.Len(t, report.Discrepancies, 1)

	entry := report.Discrepancies[0]
	assert.Equal(t, f.ayu.ID, entry.EmployeeID)
	assert.True(t, entry.RegisteredRevenue.Equal(decimal.NewFromInt(1300)))
	assert.True(t, entry.ActualRevenue.Equal(decimal.NewFromInt(2000)))
	assert.True(t, entry.RevenueDiff.Equal(entry.ActualRevenue.Sub(entry.RegisteredRevenue)))
	assert.True(t, entry.RegisteredBonus.Equal(decimal.NewFromInt(35)))
	assert.True(t, entry.ExpectedBonus.Equal(decimal.NewFromInt(95)))
	assert.True(t, entry.BonusDiff.Equal(entry.ExpectedBonus.Sub(entry.RegisteredBonus)))

	// Detection never mutates the registered rows.
	after, err := f.svc.Get(ctx, resp.ID)
	require.NoError(t, err)
	assert.True(t, after.TotalAmount.Equal(resp.TotalAmount))
	ayu := detailFor(t, after, f.ayu.ID)
	assert.True(t, ayu.WeeklyRevenue.Equal(decimal.NewFromInt(1300)))

	// Alert dispatched and recorded.
	assert.True(t, report.AlertSent)
	require.Len(t, f.alerts.sent, 1)

	logs, _, err := f.bonusRepo.ListAuditLogs(ctx, bonus.AuditLogFilter{WeeklyBonusID: &resp.ID})
	require.NoError(t, err)
	var alertRows int
	for _, l := range logs {
		if l.Action == bonus.AuditActionDiscrepancyAlertSent {
			alertRows++
		}
	}
	assert.Equal(t, 1, alertRows)
}

func TestDetectBonusDiscrepanciesDriftIsSymmetric(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addRevenue(t, f.ayu.ID, 9, 1300)
	f.addRevenue(t, f.ayu.ID, 10, 700)
	resp := f.computeWeek2(t)

	// Revenue removed after the computation: drift in the other direction.
	revenues, _, err := f.revenueRepo.List(ctx, revenue.ListRevenueFilter{EmployeeID: &f.ayu.ID})
	require.NoError(t, err)
	for _, rev := range revenues {
		if rev.Date.Day() == 10 {
			require.NoError(t, f.revenueRepo.Delete(ctx, rev.ID))
		}
	}

	report, err := f.svc.DetectBonusDiscrepancies(ctx, resp.ID, "admin-1")
	require.NoError(t, err)
	require.Len(t, report.Discrepancies, 1)

	entry := report.Discrepancies[0]
	assert.True(t, entry.RevenueDiff.Equal(decimal.NewFromInt(-700)))
	assert.True(t, entry.BonusDiff.Equal(decimal.NewFromInt(-60)), "95 registered vs 35 expected")
}

func TestDetectBonusDiscrepanciesUnregisteredEmployee(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addRevenue(t, f.ayu.ID, 9, 2500)
	resp := f.computeWeek2(t)

	// Citra joins after the computation ran, with revenue inside the week.
	citra, err := f.employeeRepo.Create(ctx, employee.Employee{
		BranchID: f.branch.ID,
		FullName: "Citra Dewi",
		Position: employee.PositionStylist,
		HireDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	f.addRevenue(t, citra.ID, 12, 1600)

	report, err := f.svc.DetectBonusDiscrepancies(ctx, resp.ID, "admin-1")
	require.NoError(t, err)
	require.True(t, report.HasDiscrepancy)
	require.Len(t, report.Discrepancies, 1)

	entry := report.Discrepancies[0]
	assert.Equal(t, citra.ID, entry.EmployeeID)
	assert.Equal(t, "Citra Dewi", entry.EmployeeName)
	assert.True(t, entry.RegisteredRevenue.IsZero())
	assert.True(t, entry.RegisteredBonus.IsZero())
	assert.True(t, entry.RevenueDiff.Equal(entry.ActualRevenue), "diff must equal the full actual revenue")
	assert.True(t, entry.ExpectedBonus.Equal(decimal.NewFromInt(60)))
}

func TestDetectBonusDiscrepanciesAlertFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.alerts.fail = true
	f.addRevenue(t, f.ayu.ID, 9, 1300)
	resp := f.computeWeek2(t)
	f.addRevenue(t, f.ayu.ID, 10, 700)

	report, err := f.svc.DetectBonusDiscrepancies(ctx, resp.ID, "admin-1")
	require.NoError(t, err, "dispatch failure must not fail the check")
	assert.True(t, report.HasDiscrepancy)
	assert.False(t, report.AlertSent)

	logs, _, err := f.bonusRepo.ListAuditLogs(ctx, bonus.AuditLogFilter{WeeklyBonusID: &resp.ID})
	require.NoError(t, err)
	var found bool
	for _, l := range logs {
		if l.Action == bonus.AuditActionDiscrepancyAlertSent {
			found = true
			assert.Contains(t, l.Details, "failed")
		}
	}
	assert.True(t, found, "failed dispatch must still be audited")
}

func TestDeleteWeeklyBonus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addRevenue(t, f.ayu.ID, 9, 2500)
	resp := f.computeWeek2(t)

	require.NoError(t, f.svc.Delete(ctx, resp.ID))

	_, err := f.svc.Get(ctx, resp.ID)
	assert.ErrorIs(t, err, bonus.ErrWeeklyBonusNotFound)

	details, err := f.bonusRepo.GetDetails(ctx, resp.ID)
	require.NoError(t, err)
	assert.Empty(t, details, "details cascade with the bonus")

	// The audit trail survives deletion.
	logs, _, err := f.bonusRepo.ListAuditLogs(ctx, bonus.AuditLogFilter{WeeklyBonusID: &resp.ID})
	require.NoError(t, err)
	assert.NotEmpty(t, logs)
}

func TestListAndAuditLogFilters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addRevenue(t, f.ayu.ID, 9, 2500)
	f.computeWeek2(t)

	_, err := f.svc.ComputeWeeklyBonus(ctx, bonus.ComputeWeeklyBonusRequest{
		BranchID: f.branch.ID, Year: 2025, Month: 6, WeekNumber: 3,
	}, "user-1")
	require.NoError(t, err)

	list, err := f.svc.List(ctx, bonus.ListFilter{BranchID: &f.branch.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), list.TotalCount)

	status := "pending"
	list, err = f.svc.List(ctx, bonus.ListFilter{BranchID: &f.branch.ID, Status: &status})
	require.NoError(t, err)
	assert.Equal(t, int64(2), list.TotalCount)

	logs, err := f.svc.AuditLogs(ctx, bonus.AuditLogFilter{BranchID: &f.branch.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), logs.TotalCount, "one sync row per computed week")
}

func TestAggregateWeeklyRevenue(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addRevenue(t, f.ayu.ID, 9, 800)
	f.addRevenue(t, f.ayu.ID, 15, 400)
	// Outside the week on both sides.
	f.addRevenue(t, f.ayu.ID, 7, 999)
	f.addRevenue(t, f.ayu.ID, 16, 999)

	weekStart := time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)
	weekEnd := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	entries, err := f.svc.AggregateWeeklyRevenue(ctx, f.branch.ID, weekStart, weekEnd)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	byID := map[string]decimal.Decimal{}
	for _, e := range entries {
		byID[e.Employee.ID] = e.WeeklyRevenue
	}
	assert.True(t, byID[f.ayu.ID].Equal(decimal.NewFromInt(1200)), "boundary days are inclusive")
	assert.True(t, byID[f.bima.ID].IsZero())
}
