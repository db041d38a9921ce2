// Package telemetry simulates the dashboard's analytics feeds. Every feed is a
// random walk over a Snapshot that advances lazily in fixed time steps.
package telemetry

import (
	"time"

	"github.com/shopspring/decimal"
)

// Rand is the randomness the simulation draws from. *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// Step intervals per feed.
const (
	MetricsInterval     = 3 * time.Second
	DeploymentsInterval = 2 * time.Second
	ActivityInterval    = 8 * time.Second
	PerformanceInterval = 5 * time.Second

	NotificationMinInterval = 15 * time.Second
	NotificationMaxInterval = 30 * time.Second

	// MaxCatchUp bounds how many steps a single read applies after a long idle period.
	MaxCatchUp = 20

	maxActivities    = 10
	maxNotifications = 20
	performanceWidth = 6
)

// Trend is the direction of a metric's last move.
type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
)

// MetricKey identifies a headline metric.
type MetricKey string

const (
	MetricActivePRs     MetricKey = "active_prs"
	MetricAvgReviewTime MetricKey = "avg_review_time"
	MetricTestsPassing  MetricKey = "tests_passing"
	MetricOpenIssues    MetricKey = "open_issues"
)

// Metric is one headline number with its last change.
type Metric struct {
	Key     MetricKey       `json:"key"`
	Title   string          `json:"title"`
	Value   decimal.Decimal `json:"value"`
	Unit    string          `json:"unit,omitempty"`
	Change  decimal.Decimal `json:"change"`
	Trend   Trend           `json:"trend"`
	Display string          `json:"display"`
}

// DeploymentStatus is the state of a simulated deployment.
type DeploymentStatus string

const (
	DeploymentSuccess    DeploymentStatus = "success"
	DeploymentFailed     DeploymentStatus = "failed"
	DeploymentInProgress DeploymentStatus = "in-progress"
)

// Deployment is one pipeline run.
type Deployment struct {
	ID          string           `json:"id"`
	Environment string           `json:"environment"`
	Branch      string           `json:"branch"`
	Status      DeploymentStatus `json:"status"`
	Duration    string           `json:"duration"`
	StartedAt   time.Time        `json:"startedAt"`
	Progress    *int             `json:"progress,omitempty"`
}

// ActivityType classifies team activity.
type ActivityType string

const (
	ActivityCommit ActivityType = "commit"
	ActivityPR     ActivityType = "pr"
	ActivityReview ActivityType = "review"
)

// ActivityStatus is the optional outcome of an activity.
type ActivityStatus string

const (
	ActivitySuccess ActivityStatus = "success"
	ActivityPending ActivityStatus = "pending"
	ActivityFailed  ActivityStatus = "failed"
)

// Activity is one entry of the team feed.
type Activity struct {
	ID     string         `json:"id"`
	User   string         `json:"user"`
	Action string         `json:"action"`
	Type   ActivityType   `json:"type"`
	Status ActivityStatus `json:"status,omitempty"`
	At     time.Time      `json:"at"`
}

// PerformancePoint is one sample of the performance charts.
type PerformancePoint struct {
	Time         string          `json:"time"`
	ReviewTime   decimal.Decimal `json:"reviewTime"`
	Deployments  int             `json:"deployments"`
	TestCoverage decimal.Decimal `json:"testCoverage"`
}

// NotificationType is the closed set of notification kinds.
type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationSuccess NotificationType = "success"
	NotificationWarning NotificationType = "warning"
	NotificationError   NotificationType = "error"
)

// Notification is one entry of the notification feed.
type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Timestamp time.Time        `json:"timestamp"`
	Read      bool             `json:"read"`
}

// Snapshot is the full simulation state of one user's dashboard.
type Snapshot struct {
	Metrics   []Metric  `json:"metrics"`
	MetricsAt time.Time `json:"metricsAt"`

	Deployments   []Deployment `json:"deployments"`
	DeploymentsAt time.Time    `json:"deploymentsAt"`

	Activity   []Activity `json:"activity"`
	ActivityAt time.Time  `json:"activityAt"`

	Performance   []PerformancePoint `json:"performance"`
	PerformanceAt time.Time          `json:"performanceAt"`

	Notifications      []Notification `json:"notifications"`
	NextNotificationAt time.Time      `json:"nextNotificationAt"`

	Seq int `json:"seq"`
}
