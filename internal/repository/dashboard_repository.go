package repository

import (
	"context"
	"time"

	"devboost/internal/telemetry"
)

const dashboardKeyPrefix = "dashboard:"

// SnapshotCache is the keyed JSON storage the dashboard repository needs.
// *cache.Client implements it.
type SnapshotCache interface {
	GetJSON(ctx context.Context, key string, dst any) bool
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// DashboardRepository stores per-user dashboard simulation state.
type DashboardRepository interface {
	Load(ctx context.Context, userID string) (*telemetry.Snapshot, bool)
	Save(ctx context.Context, userID string, snapshot *telemetry.Snapshot) error
	Delete(ctx context.Context, userID string) error
}

type dashboardRepository struct {
	cache SnapshotCache
	ttl   time.Duration
}

// NewDashboardRepository creates a repository whose entries expire after ttl.
func NewDashboardRepository(cache SnapshotCache, ttl time.Duration) DashboardRepository {
	return &dashboardRepository{cache: cache, ttl: ttl}
}

// Load returns the stored snapshot. A miss, including an unreachable cache, reports false.
func (r *dashboardRepository) Load(ctx context.Context, userID string) (*telemetry.Snapshot, bool) {
	var snapshot telemetry.Snapshot
	if !r.cache.GetJSON(ctx, dashboardKeyPrefix+userID, &snapshot) {
		return nil, false
	}
	return &snapshot, true
}

// Save stores snapshot and refreshes its TTL.
func (r *dashboardRepository) Save(ctx context.Context, userID string, snapshot *telemetry.Snapshot) error {
	return r.cache.SetJSON(ctx, dashboardKeyPrefix+userID, snapshot, r.ttl)
}

// Delete drops the stored snapshot.
func (r *dashboardRepository) Delete(ctx context.Context, userID string) error {
	return r.cache.Delete(ctx, dashboardKeyPrefix+userID)
}
