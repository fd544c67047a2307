package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/glowpoint/salon-backend-go/internal/domain/bonus"
)

type BonusRepository struct {
	mu        sync.RWMutex
	bonuses   map[string]bonus.WeeklyBonus
	details   map[string]bonus.BonusDetail
	auditLogs []bonus.AuditLog
}

func NewBonusRepository() *BonusRepository {
	return &BonusRepository{
		bonuses: make(map[string]bonus.WeeklyBonus),
		details: make(map[string]bonus.BonusDetail),
	}
}

func (r *BonusRepository) Create(_ context.Context, wb bonus.WeeklyBonus) (bonus.WeeklyBonus, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	wb.ID = uuid.NewString()
	wb.CreatedAt = now
	wb.UpdatedAt = now
	r.bonuses[wb.ID] = wb

	return wb, nil
}

func (r *BonusRepository) GetByID(_ context.Context, id string) (bonus.WeeklyBonus, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wb, ok := r.bonuses[id]
	if !ok {
		return bonus.WeeklyBonus{}, bonus.ErrWeeklyBonusNotFound
	}
	return wb, nil
}

func (r *BonusRepository) GetByBranchWeek(_ context.Context, branchID string, year, month, weekNumber int) (bonus.WeeklyBonus, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, wb := range r.bonuses {
		if wb.BranchID == branchID && wb.Year == year && wb.Month == month && wb.WeekNumber == weekNumber {
			return wb, nil
		}
	}
	return bonus.WeeklyBonus{}, bonus.ErrWeeklyBonusNotFound
}

func (r *BonusRepository) List(_ context.Context, filter bonus.ListFilter) ([]bonus.WeeklyBonus, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []bonus.WeeklyBonus
	for _, wb := range r.bonuses {
		if filter.BranchID != nil && wb.BranchID != *filter.BranchID {
			continue
		}
		if filter.Year != nil && wb.Year != *filter.Year {
			continue
		}
		if filter.Month != nil && wb.Month != *filter.Month {
			continue
		}
		if filter.Status != nil && string(wb.Status) != *filter.Status {
			continue
		}
		matched = append(matched, wb)
	}
	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if a.Year != b.Year {
			return a.Year > b.Year
		}
		if a.Month != b.Month {
			return a.Month > b.Month
		}
		return a.WeekNumber > b.WeekNumber
	})

	totalCount := int64(len(matched))

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * limit
	if offset >= len(matched) {
		return nil, totalCount, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}

	return matched[offset:end], totalCount, nil
}

func (r *BonusRepository) UpdateTotal(_ context.Context, id string, total decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	wb, ok := r.bonuses[id]
	if !ok {
		return bonus.ErrWeeklyBonusNotFound
	}
	wb.TotalAmount = total
	wb.UpdatedAt = time.Now()
	r.bonuses[id] = wb

	return nil
}

func (r *BonusRepository) UpdateStatus(_ context.Context, id string, status bonus.BonusStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	wb, ok := r.bonuses[id]
	if !ok {
		return bonus.ErrWeeklyBonusNotFound
	}
	wb.Status = status
	wb.UpdatedAt = time.Now()
	r.bonuses[id] = wb

	return nil
}

func (r *BonusRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bonuses[id]; !ok {
		return bonus.ErrWeeklyBonusNotFound
	}
	delete(r.bonuses, id)
	// Details cascade, audit logs survive.
	for detailID, d := range r.details {
		if d.WeeklyBonusID == id {
			delete(r.details, detailID)
		}
	}

	return nil
}

func (r *BonusRepository) GetDetails(_ context.Context, weeklyBonusID string) ([]bonus.BonusDetail, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []bonus.BonusDetail
	for _, d := range r.details {
		if d.WeeklyBonusID == weeklyBonusID {
			result = append(result, d)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].EmployeeID < result[j].EmployeeID })

	return result, nil
}

func (r *BonusRepository) InsertDetail(_ context.Context, detail bonus.BonusDetail) (bonus.BonusDetail, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.details {
		if existing.WeeklyBonusID == detail.WeeklyBonusID && existing.EmployeeID == detail.EmployeeID {
			return bonus.BonusDetail{}, bonus.ErrDetailConflict
		}
	}

	now := time.Now()
	detail.ID = uuid.NewString()
	detail.CreatedAt = now
	detail.UpdatedAt = now
	r.details[detail.ID] = detail

	return detail, nil
}

func (r *BonusRepository) UpdateDetail(_ context.Context, detail bonus.BonusDetail) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, existing := range r.details {
		if existing.WeeklyBonusID == detail.WeeklyBonusID && existing.EmployeeID == detail.EmployeeID {
			existing.WeeklyRevenue = detail.WeeklyRevenue
			existing.BonusTier = detail.BonusTier
			existing.BonusAmount = detail.BonusAmount
			existing.IsEligible = detail.IsEligible
			existing.UpdatedAt = time.Now()
			r.details[id] = existing
			return nil
		}
	}

	return bonus.ErrWeeklyBonusNotFound
}

func (r *BonusRepository) SumDetailAmounts(_ context.Context, weeklyBonusID string) (decimal.Decimal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := decimal.Zero
	for _, d := range r.details {
		if d.WeeklyBonusID == weeklyBonusID {
			total = total.Add(d.BonusAmount)
		}
	}

	return total, nil
}

func (r *BonusRepository) InsertAuditLog(_ context.Context, entry bonus.AuditLog) (bonus.AuditLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry.ID = uuid.NewString()
	entry.PerformedAt = time.Now()
	r.auditLogs = append(r.auditLogs, entry)

	return entry, nil
}

func (r *BonusRepository) ListAuditLogs(_ context.Context, filter bonus.AuditLogFilter) ([]bonus.AuditLog, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []bonus.AuditLog
	for _, e := range r.auditLogs {
		if filter.WeeklyBonusID != nil && e.WeeklyBonusID != *filter.WeeklyBonusID {
			continue
		}
		if filter.BranchID != nil {
			wb, ok := r.bonuses[e.WeeklyBonusID]
			if !ok || wb.BranchID != *filter.BranchID {
				continue
			}
		}
		matched = append(matched, e)
	}
	// Newest first.
	sort.Slice(matched, func(i, j int) bool { return matched[i].PerformedAt.After(matched[j].PerformedAt) })

	totalCount := int64(len(matched))

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	if offset >= len(matched) {
		return nil, totalCount, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}

	return matched[offset:end], totalCount, nil
}
