package analytics

import (
	"context"

	repo "github.com/jahboukie/inner-architect/internal/adapter/postgres/analytics"
)

var _ analyticsRepo = &analyticsRepoMock{}

type analyticsRepoMock struct {
	UsersFunc           func(ctx context.Context, rng repo.Range) (repo.UserCounts, error)
	MessageVolumeFunc   func(ctx context.Context, rng repo.Range) ([]repo.MessagesPerDay, error)
	TechniqueUsageFunc  func(ctx context.Context) ([]repo.TechniqueStats, error)
	PlanBreakdownFunc   func(ctx context.Context) ([]repo.PlanCount, error)
	QuotaRejectionsFunc func(ctx context.Context) ([]repo.QuotaRejections, error)
}

func (mock *analyticsRepoMock) Users(ctx context.Context, rng repo.Range) (repo.UserCounts, error) {
	if mock.UsersFunc == nil {
		panic("analyticsRepoMock.UsersFunc: method is nil but analyticsRepo.Users was just called")
	}
	return mock.UsersFunc(ctx, rng)
}

func (mock *analyticsRepoMock) MessageVolume(ctx context.Context, rng repo.Range) ([]repo.MessagesPerDay, error) {
	if mock.MessageVolumeFunc == nil {
		panic("analyticsRepoMock.MessageVolumeFunc: method is nil but analyticsRepo.MessageVolume was just called")
	}
	return mock.MessageVolumeFunc(ctx, rng)
}

func (mock *analyticsRepoMock) TechniqueUsage(ctx context.Context) ([]repo.TechniqueStats, error) {
	if mock.TechniqueUsageFunc == nil {
		panic("analyticsRepoMock.TechniqueUsageFunc: method is nil but analyticsRepo.TechniqueUsage was just called")
	}
	return mock.TechniqueUsageFunc(ctx)
}

func (mock *analyticsRepoMock) PlanBreakdown(ctx context.Context) ([]repo.PlanCount, error) {
	if mock.PlanBreakdownFunc == nil {
		panic("analyticsRepoMock.PlanBreakdownFunc: method is nil but analyticsRepo.PlanBreakdown was just called")
	}
	return mock.PlanBreakdownFunc(ctx)
}

func (mock *analyticsRepoMock) QuotaRejections(ctx context.Context) ([]repo.QuotaRejections, error) {
	if mock.QuotaRejectionsFunc == nil {
		panic("analyticsRepoMock.QuotaRejectionsFunc: method is nil but analyticsRepo.QuotaRejections was just called")
	}
	return mock.QuotaRejectionsFunc(ctx)
}
