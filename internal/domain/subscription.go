package domain

import (
	"time"

	"github.com/google/uuid"
)

// Plan is a subscription tier.
type Plan string

const (
	PlanFree         Plan = "free"
	PlanPremium      Plan = "premium"
	PlanProfessional Plan = "professional"
)

func (p Plan) String() string { return string(p) }

// Valid reports whether p is a known plan.
func (p Plan) Valid() bool {
	switch p {
	case PlanFree, PlanPremium, PlanProfessional:
		return true
	}
	return false
}

// SubscriptionStatus mirrors the Stripe subscription lifecycle states
// the application cares about.
type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionTrialing SubscriptionStatus = "trialing"
	SubscriptionPastDue  SubscriptionStatus = "past_due"
	SubscriptionCanceled SubscriptionStatus = "canceled"
)

// Subscription is the local mirror of a user's billing state. Exactly one
// row exists per user; free accounts hold a row with empty Stripe ids.
type Subscription struct {
	ID                   uuid.UUID
	UserID               uuid.UUID
	Plan                 Plan
	Status               SubscriptionStatus
	StripeCustomerID     string
	StripeSubscriptionID string
	CurrentPeriodEnd     *time.Time
	CancelAtPeriodEnd    bool
	TrialEndsAt          *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// IsPremium reports whether the subscription currently unlocks paid features.
func (s *Subscription) IsPremium() bool {
	if s.Plan == PlanFree {
		return false
	}
	return s.Status == SubscriptionActive || s.Status == SubscriptionTrialing
}

// EffectivePlan returns the plan to apply for quota purposes: a lapsed
// paid subscription falls back to free limits.
func (s *Subscription) EffectivePlan() Plan {
	if s.IsPremium() {
		return s.Plan
	}
	return PlanFree
}

// QuotaCategory names a metered feature.
type QuotaCategory string

const (
	QuotaMessages  QuotaCategory = "messages"
	QuotaExercises QuotaCategory = "exercises"
	QuotaAnalyses  QuotaCategory = "analyses"
)

// Valid reports whether c is a known category.
func (c QuotaCategory) Valid() bool {
	switch c {
	case QuotaMessages, QuotaExercises, QuotaAnalyses:
		return true
	}
	return false
}

// QuotaLimit holds the daily and monthly caps for one category.
// Unlimited is -1.
type QuotaLimit struct {
	Daily   int
	Monthly int
}

// Unlimited is the sentinel for no cap.
const Unlimited = -1

// planLimits maps each plan to its per-category caps. Anonymous visitors
// (no account) use anonymousLimits instead.
var planLimits = map[Plan]map[QuotaCategory]QuotaLimit{
	PlanFree: {
		QuotaMessages:  {Daily: 10, Monthly: 150},
		QuotaExercises: {Daily: 3, Monthly: 30},
		QuotaAnalyses:  {Daily: 2, Monthly: 20},
	},
	PlanPremium: {
		QuotaMessages:  {Daily: 100, Monthly: 2000},
		QuotaExercises: {Daily: Unlimited, Monthly: Unlimited},
		QuotaAnalyses:  {Daily: 20, Monthly: 300},
	},
	PlanProfessional: {
		QuotaMessages:  {Daily: Unlimited, Monthly: Unlimited},
		QuotaExercises: {Daily: Unlimited, Monthly: Unlimited},
		QuotaAnalyses:  {Daily: Unlimited, Monthly: Unlimited},
	},
}

var anonymousLimits = map[QuotaCategory]QuotaLimit{
	QuotaMessages:  {Daily: 5, Monthly: 20},
	QuotaExercises: {Daily: 1, Monthly: 5},
	QuotaAnalyses:  {Daily: 0, Monthly: 0},
}

// LimitFor returns the quota limit for a plan and category.
func LimitFor(plan Plan, category QuotaCategory) QuotaLimit {
	if limits, ok := planLimits[plan]; ok {
		if l, ok := limits[category]; ok {
			return l
		}
	}
	return QuotaLimit{}
}

// AnonymousLimitFor returns the quota limit for visitors without an account.
func AnonymousLimitFor(category QuotaCategory) QuotaLimit {
	return anonymousLimits[category]
}

// UsageQuota is one counter row. Subject is either a user id string or an
// anonymous session id; one row exists per (subject, category).
type UsageQuota struct {
	ID             uuid.UUID
	Subject        string
	Category       QuotaCategory
	DailyCount     int
	MonthlyCount   int
	DailyResetAt   time.Time // start of the UTC day the daily counter belongs to
	MonthlyResetAt time.Time // start of the UTC month the monthly counter belongs to
	UpdatedAt      time.Time
}
