// Package bonus implements the weekly bonus computation and reconciliation
// engine: revenue aggregation, tier classification, idempotent computation,
// discrepancy detection and the payout approval workflow.
package bonus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/glowpoint/salon-backend-go/internal/domain/bonus"
	"github.com/glowpoint/salon-backend-go/internal/domain/branch"
	"github.com/glowpoint/salon-backend-go/internal/domain/employee"
	"github.com/glowpoint/salon-backend-go/internal/domain/revenue"
	"github.com/glowpoint/salon-backend-go/internal/pkg/database"
	"github.com/glowpoint/salon-backend-go/internal/repository/postgresql"
)

// AlertSender dispatches discrepancy reports. Implemented by the email
// package; tests plug in a recorder.
type AlertSender interface {
	SendDiscrepancyAlert(ctx context.Context, to string, report *bonus.DiscrepancyReport) error
}

type BonusServiceImpl struct {
	db             *database.DB
	bonusRepo      bonus.Repository
	branchRepo     branch.BranchRepository
	employeeRepo   employee.EmployeeRepository
	revenueRepo    revenue.RevenueRepository
	ladder         bonus.TierLadder
	alerts         AlertSender
	alertRecipient string
	logger         *slog.Logger
}

func NewBonusService(
	db *database.DB,
	bonusRepo bonus.Repository,
	branchRepo branch.BranchRepository,
	employeeRepo employee.EmployeeRepository,
	revenueRepo revenue.RevenueRepository,
	ladder bonus.TierLadder,
	alerts AlertSender,
	alertRecipient string,
	logger *slog.Logger,
) *BonusServiceImpl {
	if ladder == nil {
		ladder = bonus.DefaultTierLadder()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &BonusServiceImpl{
		db:             db,
		bonusRepo:      bonusRepo,
		branchRepo:     branchRepo,
		employeeRepo:   employeeRepo,
		revenueRepo:    revenueRepo,
		ladder:         ladder,
		alerts:         alerts,
		alertRecipient: alertRecipient,
		logger:         logger,
	}
}

// inTx runs fn inside a database transaction carried on the context. With a
// nil db (memory repositories) fn runs directly.
func (s *BonusServiceImpl) inTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.db == nil {
		return fn(ctx)
	}
	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		return fn(txCtx)
	})
}

// RevenueEntry is one employee's aggregated revenue for a payout week.
type RevenueEntry struct {
	Employee      employee.Employee
	WeeklyRevenue decimal.Decimal
}

// AggregateWeeklyRevenue sums each active employee's revenue over the week.
// Employees with no revenue rows in range appear with a zero total. The
// revenue lookup is by employee and date only, so revenue recorded at another
// branch still counts for the employee's current branch.
func (s *BonusServiceImpl) AggregateWeeklyRevenue(ctx context.Context, branchID string, weekStart, weekEnd time.Time) ([]RevenueEntry, error) {
	employees, err := s.employeeRepo.GetActiveByBranchID(ctx, branchID)
	if err != nil {
		return nil, fmt.Errorf("failed to load active employees: %w", err)
	}

	employeeIDs := make([]string, 0, len(employees))
	for _, emp := range employees {
		employeeIDs = append(employeeIDs, emp.ID)
	}

	sums, err := s.revenueRepo.SumByEmployeeDateRange(ctx, employeeIDs, weekStart, weekEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate weekly revenue: %w", err)
	}

	entries := make([]RevenueEntry, 0, len(employees))
	for _, emp := range employees {
		total, ok := sums[emp.ID]
		if !ok {
			total = decimal.Zero
		}
		entries = append(entries, RevenueEntry{Employee: emp, WeeklyRevenue: total})
	}

	return entries, nil
}

// ComputeWeeklyBonus aggregates, classifies and persists one branch's bonus
// for one payout week. Running it again with unchanged revenue leaves every
// bonus row as it was; only the audit log grows by one sync entry per run.
func (s *BonusServiceImpl) ComputeWeeklyBonus(ctx context.Context, req bonus.ComputeWeeklyBonusRequest, performedBy string) (bonus.WeeklyBonusResponse, error) {
	if err := req.Validate(); err != nil {
		return bonus.WeeklyBonusResponse{}, err
	}

	if _, err := s.branchRepo.GetByID(ctx, req.BranchID); err != nil {
		return bonus.WeeklyBonusResponse{}, err
	}

	weekStart, weekEnd, err := bonus.WeekBounds(req.Year, req.Month, req.WeekNumber)
	if err != nil {
		return bonus.WeeklyBonusResponse{}, err
	}

	var bonusID string
	err = s.inTx(ctx, func(ctx context.Context) error {
		wb, err := s.bonusRepo.GetByBranchWeek(ctx, req.BranchID, req.Year, req.Month, req.WeekNumber)
		if err != nil {
			if !errors.Is(err, bonus.ErrWeeklyBonusNotFound) {
				return err
			}
			wb, err = s.bonusRepo.Create(ctx, bonus.WeeklyBonus{
				BranchID:    req.BranchID,
				Year:        req.Year,
				Month:       req.Month,
				WeekNumber:  req.WeekNumber,
				WeekStart:   weekStart,
				WeekEnd:     weekEnd,
				TotalAmount: decimal.Zero,
				Status:      bonus.BonusStatusPending,
			})
			if err != nil {
				return err
			}
		}
		bonusID = wb.ID

		entries, err := s.AggregateWeeklyRevenue(ctx, req.BranchID, weekStart, weekEnd)
		if err != nil {
			return err
		}

		existing, err := s.bonusRepo.GetDetails(ctx, wb.ID)
		if err != nil {
			return err
		}
		registered := make(map[string]bool, len(existing))
		for _, d := range existing {
			registered[d.EmployeeID] = true
		}

		for _, entry := range entries {
			c := s.ladder.Classify(entry.WeeklyRevenue)
			detail := bonus.BonusDetail{
				WeeklyBonusID: wb.ID,
				EmployeeID:    entry.Employee.ID,
				WeeklyRevenue: entry.WeeklyRevenue,
				BonusTier:     c.Tier,
				BonusAmount:   c.Amount,
				IsEligible:    c.IsEligible,
			}
			if err := s.upsertDetail(ctx, detail, registered[entry.Employee.ID]); err != nil {
				return err
			}
		}

		// The total is recomputed only after every detail upsert has landed.
		total, err := s.bonusRepo.SumDetailAmounts(ctx, wb.ID)
		if err != nil {
			return err
		}
		if err := s.bonusRepo.UpdateTotal(ctx, wb.ID, total); err != nil {
			return err
		}

		status := wb.Status
		_, err = s.bonusRepo.InsertAuditLog(ctx, bonus.AuditLog{
			WeeklyBonusID: wb.ID,
			Action:        bonus.AuditActionSync,
			OldStatus:     &status,
			NewStatus:     &status,
			PerformedBy:   performedBy,
			Details:       fmt.Sprintf("computed %d employees, total %s", len(entries), total.String()),
		})
		return err
	})
	if err != nil {
		return bonus.WeeklyBonusResponse{}, err
	}

	return s.Get(ctx, bonusID)
}

// upsertDetail inserts or updates one detail row. A duplicate insert caused
// by a concurrent compute run comes back as ErrDetailConflict and is retried
// once as an update; a second failure is surfaced.
func (s *BonusServiceImpl) upsertDetail(ctx context.Context, detail bonus.BonusDetail, exists bool) error {
	if exists {
		return s.bonusRepo.UpdateDetail(ctx, detail)
	}
	_, err := s.bonusRepo.InsertDetail(ctx, detail)
	if errors.Is(err, bonus.ErrDetailConflict) {
		return s.bonusRepo.UpdateDetail(ctx, detail)
	}
	return err
}

// DetectBonusDiscrepancies recomputes a bonus week from raw revenue and diffs
// the result against the registered rows without mutating them. When the
// report shows drift and an alert sender is wired, the report is mailed; a
// dispatch failure is recorded in the audit log but never fails the check.
func (s *BonusServiceImpl) DetectBonusDiscrepancies(ctx context.Context, weeklyBonusID string, performedBy string) (bonus.DiscrepancyReport, error) {
	wb, err := s.bonusRepo.GetByID(ctx, weeklyBonusID)
	if err != nil {
		return bonus.DiscrepancyReport{}, err
	}

	details, err := s.bonusRepo.GetDetails(ctx, wb.ID)
	if err != nil {
		return bonus.DiscrepancyReport{}, err
	}
	registered := make(map[string]bonus.BonusDetail, len(details))
	for _, d := range details {
		registered[d.EmployeeID] = d
	}

	entries, err := s.AggregateWeeklyRevenue(ctx, wb.BranchID, wb.WeekStart, wb.WeekEnd)
	if err != nil {
		return bonus.DiscrepancyReport{}, err
	}
	actual := make(map[string]RevenueEntry, len(entries))
	for _, e := range entries {
		actual[e.Employee.ID] = e
	}

	// Union of registered and freshly aggregated employees, registered first
	// to keep the report order stable.
	seen := make(map[string]bool)
	var order []string
	for _, d := range details {
		order = append(order, d.EmployeeID)
		seen[d.EmployeeID] = true
	}
	for _, e := range entries {
		if !seen[e.Employee.ID] {
			order = append(order, e.Employee.ID)
		}
	}

	report := bonus.DiscrepancyReport{
		WeeklyBonusID:   wb.ID,
		BranchID:        wb.BranchID,
		Year:            wb.Year,
		Month:           wb.Month,
		WeekNumber:      wb.WeekNumber,
		WeekStart:       wb.WeekStart,
		WeekEnd:         wb.WeekEnd,
		RegisteredTotal: wb.TotalAmount,
		ExpectedTotal:   decimal.Zero,
		CheckedAt:       time.Now(),
	}
	if wb.BranchName != nil {
		report.BranchName = *wb.BranchName
	}

	for _, employeeID := range order {
		regDetail, isRegistered := registered[employeeID]
		regRevenue := decimal.Zero
		regBonus := decimal.Zero
		if isRegistered {
			regRevenue = regDetail.WeeklyRevenue
			regBonus = regDetail.BonusAmount
		}

		actualRevenue := decimal.Zero
		name := ""
		if entry, ok := actual[employeeID]; ok {
			actualRevenue = entry.WeeklyRevenue
			name = entry.Employee.FullName
		} else if regDetail.EmployeeName != nil {
			name = *regDetail.EmployeeName
		}

		expected := s.ladder.Classify(actualRevenue)
		report.ExpectedTotal = report.ExpectedTotal.Add(expected.Amount)

		if isRegistered && actualRevenue.Equal(regRevenue) {
			continue
		}

		report.Discrepancies = append(report.Discrepancies, bonus.DiscrepancyEntry{
			EmployeeID:        employeeID,
			EmployeeName:      name,
			RegisteredRevenue: regRevenue,
			ActualRevenue:     actualRevenue,
			RevenueDiff:       actualRevenue.Sub(regRevenue),
			RegisteredBonus:   regBonus,
			ExpectedBonus:     expected.Amount,
			BonusDiff:         expected.Amount.Sub(regBonus),
		})
	}
	report.HasDiscrepancy = len(report.Discrepancies) > 0

	if report.HasDiscrepancy && s.alerts != nil {
		if err := s.alerts.SendDiscrepancyAlert(ctx, s.alertRecipient, &report); err != nil {
			s.logger.Error("discrepancy alert dispatch failed",
				slog.String("weekly_bonus_id", wb.ID),
				slog.String("error", err.Error()))
			s.auditAlert(ctx, wb.ID, performedBy, fmt.Sprintf("alert dispatch failed: %v", err))
		} else {
			report.AlertSent = true
			s.auditAlert(ctx, wb.ID, performedBy, fmt.Sprintf("alert sent to %s, %d discrepancies", s.alertRecipient, len(report.Discrepancies)))
		}
	}

	return report, nil
}

func (s *BonusServiceImpl) auditAlert(ctx context.Context, weeklyBonusID, performedBy, details string) {
	_, err := s.bonusRepo.InsertAuditLog(ctx, bonus.AuditLog{
		WeeklyBonusID: weeklyBonusID,
		Action:        bonus.AuditActionDiscrepancyAlertSent,
		PerformedBy:   performedBy,
		Details:       details,
	})
	if err != nil {
		s.logger.Error("failed to record discrepancy alert audit entry",
			slog.String("weekly_bonus_id", weeklyBonusID),
			slog.String("error", err.Error()))
	}
}

// Transition applies one workflow action (request, approve, reject, pay) to a
// weekly bonus. Exactly one audit row is written per successful transition.
func (s *BonusServiceImpl) Transition(ctx context.Context, weeklyBonusID string, req bonus.TransitionRequest, performedBy string) (bonus.WeeklyBonusResponse, error) {
	if err := req.Validate(); err != nil {
		return bonus.WeeklyBonusResponse{}, err
	}

	action := bonus.AuditAction(req.Action)
	if action == bonus.AuditActionReject && req.Details == "" {
		return bonus.WeeklyBonusResponse{}, bonus.ErrRejectReasonRequired
	}

	err := s.inTx(ctx, func(ctx context.Context) error {
		wb, err := s.bonusRepo.GetByID(ctx, weeklyBonusID)
		if err != nil {
			return err
		}

		next, err := bonus.NextStatus(wb.Status, action)
		if err != nil {
			return err
		}

		if err := s.bonusRepo.UpdateStatus(ctx, wb.ID, next); err != nil {
			return err
		}

		oldStatus := wb.Status
		_, err = s.bonusRepo.InsertAuditLog(ctx, bonus.AuditLog{
			WeeklyBonusID: wb.ID,
			Action:        action,
			OldStatus:     &oldStatus,
			NewStatus:     &next,
			PerformedBy:   performedBy,
			Details:       req.Details,
		})
		return err
	})
	if err != nil {
		return bonus.WeeklyBonusResponse{}, err
	}

	return s.Get(ctx, weeklyBonusID)
}

func (s *BonusServiceImpl) Get(ctx context.Context, id string) (bonus.WeeklyBonusResponse, error) {
	wb, err := s.bonusRepo.GetByID(ctx, id)
	if err != nil {
		return bonus.WeeklyBonusResponse{}, err
	}

	details, err := s.bonusRepo.GetDetails(ctx, wb.ID)
	if err != nil {
		return bonus.WeeklyBonusResponse{}, err
	}
	wb.Details = details

	return toWeeklyBonusResponse(wb), nil
}

func (s *BonusServiceImpl) List(ctx context.Context, filter bonus.ListFilter) (bonus.ListWeeklyBonusResponse, error) {
	bonuses, totalCount, err := s.bonusRepo.List(ctx, filter)
	if err != nil {
		return bonus.ListWeeklyBonusResponse{}, err
	}

	data := make([]bonus.WeeklyBonusResponse, 0, len(bonuses))
	for _, wb := range bonuses {
		data = append(data, toWeeklyBonusResponse(wb))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}

	return bonus.ListWeeklyBonusResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       page,
		Limit:      limit,
	}, nil
}

// Delete is an admin maintenance operation. Details cascade with the bonus;
// audit log entries are kept.
func (s *BonusServiceImpl) Delete(ctx context.Context, id string) error {
	return s.bonusRepo.Delete(ctx, id)
}

func (s *BonusServiceImpl) AuditLogs(ctx context.Context, filter bonus.AuditLogFilter) (bonus.ListAuditLogResponse, error) {
	entries, totalCount, err := s.bonusRepo.ListAuditLogs(ctx, filter)
	if err != nil {
		return bonus.ListAuditLogResponse{}, err
	}

	data := make([]bonus.AuditLogResponse, 0, len(entries))
	for _, e := range entries {
		data = append(data, toAuditLogResponse(e))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}

	return bonus.ListAuditLogResponse{
		Data:       data,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     filter.Offset,
	}, nil
}

func toWeeklyBonusResponse(wb bonus.WeeklyBonus) bonus.WeeklyBonusResponse {
	resp := bonus.WeeklyBonusResponse{
		ID:          wb.ID,
		BranchID:    wb.BranchID,
		BranchName:  wb.BranchName,
		Year:        wb.Year,
		Month:       wb.Month,
		WeekNumber:  wb.WeekNumber,
		WeekStart:   wb.WeekStart.Format("2006-01-02"),
		WeekEnd:     wb.WeekEnd.Format("2006-01-02"),
		TotalAmount: wb.TotalAmount,
		Status:      string(wb.Status),
	}
	for _, d := range wb.Details {
		dr := bonus.BonusDetailResponse{
			ID:            d.ID,
			EmployeeID:    d.EmployeeID,
			WeeklyRevenue: d.WeeklyRevenue,
			BonusTier:     string(d.BonusTier),
			BonusAmount:   d.BonusAmount,
			IsEligible:    d.IsEligible,
		}
		if d.EmployeeName != nil {
			dr.EmployeeName = *d.EmployeeName
		}
		resp.Details = append(resp.Details, dr)
	}
	return resp
}

func toAuditLogResponse(e bonus.AuditLog) bonus.AuditLogResponse {
	resp := bonus.AuditLogResponse{
		ID:            e.ID,
		WeeklyBonusID: e.WeeklyBonusID,
		Action:        string(e.Action),
		PerformedBy:   e.PerformedBy,
		PerformedAt:   e.PerformedAt.Format(time.RFC3339),
		Details:       e.Details,
	}
	if e.OldStatus != nil {
		old := string(*e.OldStatus)
		resp.OldStatus = &old
	}
	if e.NewStatus != nil {
		next := string(*e.NewStatus)
		resp.NewStatus = &next
	}
	return resp
}

// ToDiscrepancyReportResponse shapes a report for the HTTP layer.
func ToDiscrepancyReportResponse(report bonus.DiscrepancyReport) bonus.DiscrepancyReportResponse {
	resp := bonus.DiscrepancyReportResponse{
		WeeklyBonusID:   report.WeeklyBonusID,
		BranchID:        report.BranchID,
		BranchName:      report.BranchName,
		Year:            report.Year,
		Month:           report.Month,
		WeekNumber:      report.WeekNumber,
		HasDiscrepancy:  report.HasDiscrepancy,
		Discrepancies:   []bonus.DiscrepancyEntryResponse{},
		RegisteredTotal: report.RegisteredTotal,
		ExpectedTotal:   report.ExpectedTotal,
		CheckedAt:       report.CheckedAt.Format(time.RFC3339),
		AlertSent:       report.AlertSent,
	}
	for _, e := range report.Discrepancies {
		resp.Discrepancies = append(resp.Discrepancies, bonus.DiscrepancyEntryResponse{
			EmployeeID:        e.EmployeeID,
			EmployeeName:      e.EmployeeName,
			RegisteredRevenue: e.RegisteredRevenue,
			ActualRevenue:     e.ActualRevenue,
			RevenueDiff:       e.RevenueDiff,
			RegisteredBonus:   e.RegisteredBonus,
			ExpectedBonus:     e.ExpectedBonus,
			BonusDiff:         e.BonusDiff,
		})
	}
	return resp
}
