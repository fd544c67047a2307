package cron

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/glowpoint/salon-backend-go/internal/domain/bonus"
	"github.com/glowpoint/salon-backend-go/internal/domain/branch"
	bonussvc "github.com/glowpoint/salon-backend-go/internal/service/bonus"
)

// SystemActor is the performed_by value for audit rows written by scheduled
// jobs rather than a logged-in user.
const SystemActor = "system:bonus-sync"

type BonusJobs struct {
	branchRepo   branch.BranchRepository
	bonusService *bonussvc.BonusServiceImpl
	interval     time.Duration
}

func NewBonusJobs(branchRepo branch.BranchRepository, bonusService *bonussvc.BonusServiceImpl, interval time.Duration) *BonusJobs {
	if interval <= 0 {
		interval = time.Hour
	}
	return &BonusJobs{
		branchRepo:   branchRepo,
		bonusService: bonusService,
		interval:     interval,
	}
}

func (j *BonusJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("weekly_bonus_sync", j.interval, j.SyncWeeklyBonuses)
}

// SyncWeeklyBonuses recomputes the payout week containing yesterday for every
// active branch and runs a discrepancy check on each result. Yesterday keeps
// the sync on a just-closed week during the first hours of a new one.
// Branches are processed concurrently; their rows are disjoint.
func (j *BonusJobs) SyncWeeklyBonuses(ctx context.Context) error {
	// Only run in the first hour of the day (UTC)
	if time.Now().UTC().Hour() != 1 {
		return nil
	}
	return j.syncFor(ctx, time.Now().UTC().AddDate(0, 0, -1))
}

// syncFor runs the sync for the payout week containing the given date.
// Split out so tests can drive it without the hour gate.
func (j *BonusJobs) syncFor(ctx context.Context, date time.Time) error {
	year, month, week, _, _ := bonus.WeekOf(date)

	branches, err := j.branchRepo.List(ctx, true)
	if err != nil {
		return fmt.Errorf("failed to list branches for bonus sync: %w", err)
	}

	slog.Info("Cron: starting weekly bonus sync",
		"year", year, "month", month, "week", week, "branches", len(branches))

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for _, b := range branches {
		wg.Add(1)
		go func(b branch.Branch) {
			defer wg.Done()

			resp, err := j.bonusService.ComputeWeeklyBonus(ctx, bonus.ComputeWeeklyBonusRequest{
				BranchID:   b.ID,
				Year:       year,
				Month:      month,
				WeekNumber: week,
			}, SystemActor)
			if err != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("branch %s: %w", b.Name, err))
				mu.Unlock()
				return
			}

			report, err := j.bonusService.DetectBonusDiscrepancies(ctx, resp.ID, SystemActor)
			if err != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("branch %s discrepancy check: %w", b.Name, err))
				mu.Unlock()
				return
			}
			if report.HasDiscrepancy {
				slog.Warn("Cron: bonus discrepancy detected",
					"branch", b.Name, "weekly_bonus_id", resp.ID,
					"entries", len(report.Discrepancies), "alert_sent", report.AlertSent)
			}
		}(b)
	}
	wg.Wait()

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	slog.Info("Cron: weekly bonus sync completed", "branches", len(branches))
	return nil
}
