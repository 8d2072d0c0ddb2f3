package usecases

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"
	"trade-admin.backend/internal/domain/entities"
	"trade-admin.backend/internal/domain/repositories"
	"trade-admin.backend/pkg/logger"
	"trade-admin.backend/pkg/redis"
)

const statsCacheKey = "analytics:user_stats"

// ChartDateLayout is the day granularity used by the registration chart.
const ChartDateLayout = "2006-01-02"

// AnalyticsUsecase serves the dashboard aggregate views
type AnalyticsUsecase struct {
	userRepo repositories.UserRepository
	statsTTL time.Duration
}

// NewAnalyticsUsecase creates a new analytics usecase
func NewAnalyticsUsecase(userRepo repositories.UserRepository, statsTTL time.Duration) *AnalyticsUsecase {
	return &AnalyticsUsecase{
		userRepo: userRepo,
		statsTTL: statsTTL,
	}
}

// GetUserStats returns the dashboard figures, served from the Redis cache
// when a fresh copy exists. Cache failures fall through to storage.
func (u *AnalyticsUsecase) GetUserStats(ctx context.Context) (*entities.UserStats, error) {
	if redis.GetClient() != nil {
		if cached, err := redis.Get(ctx, statsCacheKey); err == nil {
			var stats entities.UserStats
			if err := json.Unmarshal([]byte(cached), &stats); err == nil {
				return &stats, nil
			}
		}
	}

	stats, err := u.userRepo.Stats(ctx, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if redis.GetClient() != nil {
		if payload, err := json.Marshal(stats); err == nil {
			if err := redis.Set(ctx, statsCacheKey, payload, u.statsTTL); err != nil {
				logger.Warn(ctx, "failed to cache user stats", zap.Error(err))
			}
		}
	}
	return stats, nil
}

// GetCountryStats returns user counts per country, most populous first.
func (u *AnalyticsUsecase) GetCountryStats(ctx context.Context) ([]entities.CountryCount, error) {
	return u.userRepo.CountryStats(ctx)
}

// GetRegistrationChart returns one point per day for the last `days` days,
// today included. Days without registrations carry a zero count.
func (u *AnalyticsUsecase) GetRegistrationChart(ctx context.Context, days int) ([]entities.RegistrationPoint, error) {
	if days < 1 {
		days = 30
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	since := today.AddDate(0, 0, -(days - 1))

	series, err := u.userRepo.RegistrationSeries(ctx, since)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(series))
	for _, p := range series {
		counts[p.Date] = p.Count
	}

	points := make([]entities.RegistrationPoint, 0, days)
	for d := since; !d.After(today); d = d.AddDate(0, 0, 1) {
		date := d.Format(ChartDateLayout)
		points = append(points, entities.RegistrationPoint{
			Date:  date,
			Count: counts[date],
		})
	}
	return points, nil
}
