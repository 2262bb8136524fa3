package subscription

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jahboukie/inner-architect/internal/domain"
	"github.com/jahboukie/inner-architect/pkg/ctxutil"
)

// CheckAndConsume atomically checks the caller's quota for a category and
// consumes one unit. The read-check-increment runs inside a transaction
// under a row lock, so two concurrent requests on the same subject cannot
// both pass a nearly exhausted limit.
//
// On rejection it returns a *domain.QuotaError and bumps the rejected
// counter outside the consumption path.
func (s *Service) CheckAndConsume(ctx context.Context, category domain.QuotaCategory) error {
	if !category.Valid() {
		return domain.NewValidationError("category", "unknown category")
	}

	subject, ok := ctxutil.QuotaSubject(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	limit, err := s.limitFor(ctx, category)
	if err != nil {
		return fmt.Errorf("subscription.CheckAndConsume resolve limit: %w", err)
	}

	// Fully unlimited plans skip counter bookkeeping entirely.
	if limit.Daily == domain.Unlimited && limit.Monthly == domain.Unlimited {
		return nil
	}

	now := time.Now()
	var quotaErr *domain.QuotaError

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		q, err := s.quotas.GetForUpdate(txCtx, subject, category, now)
		if err != nil {
			return fmt.Errorf("lock quota row: %w", err)
		}

		rollCounters(q, now)

		switch {
		case limit.Daily != domain.Unlimited && q.DailyCount >= limit.Daily:
			quotaErr = &domain.QuotaError{
				Category: string(category), Used: q.DailyCount, Limit: limit.Daily, Period: "daily",
			}
		case limit.Monthly != domain.Unlimited && q.MonthlyCount >= limit.Monthly:
			quotaErr = &domain.QuotaError{
				Category: string(category), Used: q.MonthlyCount, Limit: limit.Monthly, Period: "monthly",
			}
		default:
			q.DailyCount++
			q.MonthlyCount++
		}

		// Rolled-over reset anchors persist even on rejection, and a
		// rejection still commits the rejected counter bump.
		if quotaErr != nil {
			if err := s.quotas.IncrementRejected(txCtx, subject, category); err != nil {
				return fmt.Errorf("record rejection: %w", err)
			}
		}
		if err := s.quotas.UpdateCounters(txCtx, q); err != nil {
			return fmt.Errorf("update counters: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("subscription.CheckAndConsume: %w", err)
	}

	if quotaErr != nil {
		s.log.InfoContext(ctx, "quota rejected",
			slog.String("category", string(category)),
			slog.String("period", quotaErr.Period),
			slog.Int("limit", quotaErr.Limit))
		return quotaErr
	}
	return nil
}

// QuotaStatus is the remaining allowance for one category.
type QuotaStatus struct {
	Category     domain.QuotaCategory
	DailyUsed    int
	DailyLimit   int
	MonthlyUsed  int
	MonthlyLimit int
}

// Status reports current usage against limits for every category, for the
// account page. Reads are lock-free; counts whose reset anchor has passed
// display as zero.
func (s *Service) Status(ctx context.Context) ([]QuotaStatus, error) {
	subject, ok := ctxutil.QuotaSubject(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	now := time.Now()
	categories := []domain.QuotaCategory{domain.QuotaMessages, domain.QuotaExercises, domain.QuotaAnalyses}

	out := make([]QuotaStatus, 0, len(categories))
	for _, category := range categories {
		limit, err := s.limitFor(ctx, category)
		if err != nil {
			return nil, fmt.Errorf("subscription.Status resolve limit: %w", err)
		}

		st := QuotaStatus{
			Category:     category,
			DailyLimit:   limit.Daily,
			MonthlyLimit: limit.Monthly,
		}

		q, err := s.quotas.Get(ctx, subject, category)
		switch {
		case err == nil:
			rollCounters(q, now)
			st.DailyUsed = q.DailyCount
			st.MonthlyUsed = q.MonthlyCount
		case errors.Is(err, domain.ErrNotFound):
			// Nothing consumed yet.
		default:
			return nil, fmt.Errorf("subscription.Status get quota: %w", err)
		}

		out = append(out, st)
	}
	return out, nil
}

// limitFor resolves the caller's limit: the subscription plan for
// authenticated users, the anonymous table otherwise. A lapsed paid plan
// falls back to free limits via EffectivePlan.
func (s *Service) limitFor(ctx context.Context, category domain.QuotaCategory) (domain.QuotaLimit, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.AnonymousLimitFor(category), nil
	}

	sub, err := s.subs.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.LimitFor(domain.PlanFree, category), nil
		}
		return domain.QuotaLimit{}, err
	}
	return domain.LimitFor(sub.EffectivePlan(), category), nil
}

// rollCounters zeroes counters whose UTC reset window has passed and
// advances the anchors to the current window.
func rollCounters(q *domain.UsageQuota, now time.Time) {
	if day := startOfDayUTC(now); q.DailyResetAt.Before(day) {
		q.DailyCount = 0
		q.DailyResetAt = day
	}
	if month := startOfMonthUTC(now); q.MonthlyResetAt.Before(month) {
		q.MonthlyCount = 0
		q.MonthlyResetAt = month
	}
}

func startOfDayUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func startOfMonthUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
