package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"go.uber.org/zap"

	apperrors "devboost/internal/errors"
	"devboost/internal/repository"
	"devboost/internal/telemetry"
)

// ErrNotificationNotFound is returned for an unknown notification id.
var ErrNotificationNotFound = apperrors.Reason(apperrors.ErrNotFound, "Notification not found")

// NotificationFeed is the notification list with its unread count.
type NotificationFeed struct {
	Notifications []telemetry.Notification `json:"notifications"`
	UnreadCount   int                      `json:"unreadCount"`
}

// Overview is every dashboard feed advanced to the same instant.
type Overview struct {
	Metrics     []telemetry.Metric           `json:"metrics"`
	Deployments []telemetry.Deployment       `json:"deployments"`
	Activities  []telemetry.Activity         `json:"activities"`
	Points      []telemetry.PerformancePoint `json:"points"`
	UnreadCount int                          `json:"unreadCount"`
}

// DashboardService serves each user's simulated analytics.
type DashboardService interface {
	Overview(ctx context.Context, userID string) (Overview, error)
	// Reset discards the user's simulation; the next read starts from seed data.
	Reset(ctx context.Context, userID string) error

	Metrics(ctx context.Context, userID string) ([]telemetry.Metric, error)
	Deployments(ctx context.Context, userID string) ([]telemetry.Deployment, error)
	Activity(ctx context.Context, userID string) ([]telemetry.Activity, error)
	Performance(ctx context.Context, userID string) ([]telemetry.PerformancePoint, error)

	Notifications(ctx context.Context, userID string) (NotificationFeed, error)
	MarkNotificationRead(ctx context.Context, userID, id string) (NotificationFeed, error)
	MarkAllNotificationsRead(ctx context.Context, userID string) (NotificationFeed, error)
	ClearNotification(ctx context.Context, userID, id string) (NotificationFeed, error)
}

type dashboardService struct {
	repo   repository.DashboardRepository
	logger *zap.Logger
	now    func() time.Time
	rand   telemetry.Rand

	locksMu sync.Mutex
	locks   map[string]*userLock
}

// userLock is evicted once no request holds or waits for it.
type userLock struct {
	mu   sync.Mutex
	refs int
}

// DashboardOption customises a dashboard service.
type DashboardOption func(*dashboardService)

// WithDashboardClock sets the time source.
func WithDashboardClock(now func() time.Time) DashboardOption {
	return func(s *dashboardService) { s.now = now }
}

// WithDashboardRand sets the randomness source. It must be safe for
// concurrent use if the service is shared between users.
func WithDashboardRand(r telemetry.Rand) DashboardOption {
	return func(s *dashboardService) { s.rand = r }
}

// NewDashboardService creates a dashboard service backed by repo.
func NewDashboardService(repo repository.DashboardRepository, logger *zap.Logger, opts ...DashboardOption) DashboardService {
	s := &dashboardService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
		rand:   globalRand{},
		locks:  make(map[string]*userLock),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *dashboardService) Overview(ctx context.Context, userID string) (Overview, error) {
	var out Overview
	err := s.update(ctx, userID, func(snap *telemetry.Snapshot, now time.Time) error {
		snap.Advance(now, s.rand)
		out = Overview{
			Metrics:     snap.Metrics,
			Deployments: snap.Deployments,
			Activities:  snap.Activity,
			Points:      snap.Performance,
			UnreadCount: snap.UnreadCount(),
		}
		return nil
	})
	return out, err
}

func (s *dashboardService) Reset(ctx context.Context, userID string) error {
	release := s.acquire(userID)
	defer release()

	if err := s.repo.Delete(ctx, userID); err != nil {
		return fmt.Errorf("reset dashboard: %w", err)
	}
	return nil
}

func (s *dashboardService) Metrics(ctx context.Context, userID string) ([]telemetry.Metric, error) {
	var out []telemetry.Metric
	err := s.update(ctx, userID, func(snap *telemetry.Snapshot, now time.Time) error {
		snap.AdvanceMetrics(now, s.rand)
		out = snap.Metrics
		return nil
	})
	return out, err
}

func (s *dashboardService) Deployments(ctx context.Context, userID string) ([]telemetry.Deployment, error) {
	var out []telemetry.Deployment
	err := s.update(ctx, userID, func(snap *telemetry.Snapshot, now time.Time) error {
		snap.AdvanceDeployments(now, s.rand)
		out = snap.Deployments
		return nil
	})
	return out, err
}

func (s *dashboardService) Activity(ctx context.Context, userID string) ([]telemetry.Activity, error) {
	var out []telemetry.Activity
	err := s.update(ctx, userID, func(snap *telemetry.Snapshot, now time.Time) error {
		snap.AdvanceActivity(now, s.rand)
		out = snap.Activity
		return nil
	})
	return out, err
}

func (s *dashboardService) Performance(ctx context.Context, userID string) ([]telemetry.PerformancePoint, error) {
	var out []telemetry.PerformancePoint
	err := s.update(ctx, userID, func(snap *telemetry.Snapshot, now time.Time) error {
		snap.AdvancePerformance(now, s.rand)
		out = snap.Performance
		return nil
	})
	return out, err
}

func (s *dashboardService) Notifications(ctx context.Context, userID string) (NotificationFeed, error) {
	return s.notificationOp(ctx, userID, func(*telemetry.Snapshot) error { return nil })
}

func (s *dashboardService) MarkNotificationRead(ctx context.Context, userID, id string) (NotificationFeed, error) {
	return s.notificationOp(ctx, userID, func(snap *telemetry.Snapshot) error {
		if !snap.MarkRead(id) {
			return ErrNotificationNotFound
		}
		return nil
	})
}

func (s *dashboardService) MarkAllNotificationsRead(ctx context.Context, userID string) (NotificationFeed, error) {
	return s.notificationOp(ctx, userID, func(snap *telemetry.Snapshot) error {
		snap.MarkAllRead()
		return nil
	})
}

func (s *dashboardService) ClearNotification(ctx context.Context, userID, id string) (NotificationFeed, error) {
	return s.notificationOp(ctx, userID, func(snap *telemetry.Snapshot) error {
		if !snap.Clear(id) {
			return ErrNotificationNotFound
		}
		return nil
	})
}

func (s *dashboardService) notificationOp(ctx context.Context, userID string, op func(*telemetry.Snapshot) error) (NotificationFeed, error) {
	var feed NotificationFeed
	err := s.update(ctx, userID, func(snap *telemetry.Snapshot, now time.Time) error {
		snap.AdvanceNotifications(now, s.rand)
		if err := op(snap); err != nil {
			return err
		}
		feed = NotificationFeed{Notifications: snap.Notifications, UnreadCount: snap.UnreadCount()}
		return nil
	})
	return feed, err
}

// update runs fn on the user's snapshot under a per-user lock and persists
// the result, even when fn reports an error. A snapshot that cannot be loaded
// starts over from seed data.
func (s *dashboardService) update(ctx context.Context, userID string, fn func(*telemetry.Snapshot, time.Time) error) error {
	release := s.acquire(userID)
	defer release()

	now := s.now()
	snap, ok := s.repo.Load(ctx, userID)
	if !ok {
		snap = telemetry.NewSnapshot(now, s.rand)
	}

	opErr := fn(snap, now)

	if err := s.repo.Save(ctx, userID, snap); err != nil {
		s.logger.Warn("dashboard snapshot not saved", zap.String("user_id", userID), zap.Error(err))
	}
	return opErr
}

// acquire locks userID and returns the matching release.
func (s *dashboardService) acquire(userID string) func() {
	s.locksMu.Lock()
	l, ok := s.locks[userID]
	if !ok {
		l = &userLock{}
		s.locks[userID] = l
	}
	l.refs++
	s.locksMu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()

		s.locksMu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.locks, userID)
		}
		s.locksMu.Unlock()
	}
}

// globalRand draws from math/rand/v2's goroutine-safe top-level source.
type globalRand struct{}

func (globalRand) IntN(n int) int    { return rand.IntN(n) }
func (globalRand) Float64() float64 { return rand.Float64() }
