package telemetry

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var (
	one        = decimal.NewFromInt(1)
	tenth      = decimal.RequireFromString("0.1")
	halfHour   = decimal.RequireFromString("0.5")
	ninety     = decimal.NewFromInt(90)
	hundred    = decimal.NewFromInt(100)
	reviewLow  = decimal.RequireFromString("1.5")
	reviewHigh = decimal.NewFromInt(3)
)

var teamMembers = []string{"Alice Chen", "Bob Smith", "Carol Davis", "David Lee", "Eve Wilson"}

var activityTemplates = []struct {
	action string
	pr     bool
	typ    ActivityType
	status ActivityStatus
}{
	{action: "Merged PR #", pr: true, typ: ActivityPR, status: ActivitySuccess},
	{action: "Pushed commits to main", typ: ActivityCommit},
	{action: "Reviewed PR #", pr: true, typ: ActivityReview, status: ActivitySuccess},
	{action: "Opened PR #", pr: true, typ: ActivityPR, status: ActivityPending},
}

// NewSnapshot returns the starting state of a dashboard at now.
func NewSnapshot(now time.Time, r Rand) *Snapshot {
	s := &Snapshot{
		Metrics: []Metric{
			newMetric(MetricActivePRs, "Active PRs", "", "12", "3", TrendUp),
			newMetric(MetricAvgReviewTime, "Avg Review Time", "h", "2.1", "-0.3", TrendDown),
			newMetric(MetricTestsPassing, "Tests Passing", "%", "98.5", "1.2", TrendUp),
			newMetric(MetricOpenIssues, "Open Issues", "", "8", "-4", TrendDown),
		},
		MetricsAt: now,
		Deployments: []Deployment{
			{ID: "1", Environment: "Production", Branch: "main", Status: DeploymentSuccess, Duration: "2m 34s", StartedAt: now.Add(-5 * time.Minute)},
			{ID: "2", Environment: "Staging", Branch: "develop", Status: DeploymentInProgress, Duration: "1m 12s", StartedAt: now, Progress: intPtr(65)},
			{ID: "3", Environment: "Production", Branch: "hotfix/auth", Status: DeploymentSuccess, Duration: "3m 01s", StartedAt: now.Add(-time.Hour)},
			{ID: "4", Environment: "Development", Branch: "feature/dashboard", Status: DeploymentFailed, Duration: "45s", StartedAt: now.Add(-2 * time.Hour)},
		},
		DeploymentsAt: now,
		Activity: []Activity{
			{ID: "1", User: "Alice Chen", Action: "Merged PR #234", Type: ActivityPR, Status: ActivitySuccess, At: now.Add(-2 * time.Minute)},
			{ID: "2", User: "Bob Smith", Action: "Pushed 3 commits to main", Type: ActivityCommit, At: now.Add(-5 * time.Minute)},
			{ID: "3", User: "Carol Davis", Action: "Reviewed PR #235", Type: ActivityReview, Status: ActivitySuccess, At: now.Add(-8 * time.Minute)},
			{ID: "4", User: "David Lee", Action: "Opened PR #236", Type: ActivityPR, Status: ActivityPending, At: now.Add(-12 * time.Minute)},
		},
		ActivityAt: now,
		Performance: []PerformancePoint{
			newPoint("00:00", "2.5", 3, "95"),
			newPoint("04:00", "2.3", 5, "96"),
			newPoint("08:00", "2.1", 8, "97"),
			newPoint("12:00", "1.9", 12, "98"),
			newPoint("16:00", "2.0", 10, "98.5"),
			newPoint("20:00", "2.1", 7, "98.5"),
		},
		PerformanceAt:      now,
		Notifications:      []Notification{},
		NextNotificationAt: now.Add(notificationDelay(r)),
	}
	return s
}

// Advance brings every feed up to now.
func (s *Snapshot) Advance(now time.Time, r Rand) {
	s.AdvanceMetrics(now, r)
	s.AdvanceDeployments(now, r)
	s.AdvanceActivity(now, r)
	s.AdvancePerformance(now, r)
	s.AdvanceNotifications(now, r)
}

// AdvanceMetrics applies one random-walk step per elapsed MetricsInterval.
func (s *Snapshot) AdvanceMetrics(now time.Time, r Rand) {
	for range stepTimes(&s.MetricsAt, now, MetricsInterval) {
		for i := range s.Metrics {
			s.Metrics[i] = stepMetric(s.Metrics[i], r)
		}
	}
}

// AdvanceDeployments moves in-progress deployments towards completion.
func (s *Snapshot) AdvanceDeployments(now time.Time, r Rand) {
	for range stepTimes(&s.DeploymentsAt, now, DeploymentsInterval) {
		for i := range s.Deployments {
			d := &s.Deployments[i]
			if d.Status != DeploymentInProgress || d.Progress == nil {
				continue
			}
			next := *d.Progress + 1 + r.IntN(10)
			if next >= 100 {
				next = 100
				d.Status = DeploymentSuccess
			}
			d.Progress = intPtr(next)
		}
	}
}

// AdvanceActivity prepends one random team event per elapsed ActivityInterval.
func (s *Snapshot) AdvanceActivity(now time.Time, r Rand) {
	for _, at := range stepTimes(&s.ActivityAt, now, ActivityInterval) {
		tmpl := activityTemplates[r.IntN(len(activityTemplates))]
		action := tmpl.action
		if tmpl.pr {
			action = fmt.Sprintf("%s%d", action, 200+r.IntN(100))
		}
		entry := Activity{
			ID:     s.nextID("act"),
			User:   teamMembers[r.IntN(len(teamMembers))],
			Action: action,
			Type:   tmpl.typ,
			Status: tmpl.status,
			At:     at,
		}
		s.Activity = prepend(s.Activity, entry, maxActivities)
	}
}

// AdvancePerformance slides the performance window one sample per PerformanceInterval.
func (s *Snapshot) AdvancePerformance(now time.Time, r Rand) {
	for _, at := range stepTimes(&s.PerformanceAt, now, PerformanceInterval) {
		if len(s.Performance) == 0 {
			return
		}
		last := s.Performance[len(s.Performance)-1]
		point := PerformancePoint{
			Time:         at.Format("15:04"),
			ReviewTime:   clamp(last.ReviewTime.Add(jitter(r, "0.2")), reviewLow, reviewHigh),
			Deployments:  max(0, last.Deployments+r.IntN(3)-1),
			TestCoverage: clamp(last.TestCoverage.Add(jitter(r, "0.5")), ninety, hundred),
		}
		s.Performance = append(s.Performance, point)
		if len(s.Performance) > performanceWidth {
			s.Performance = s.Performance[len(s.Performance)-performanceWidth:]
		}
	}
}

func newMetric(key MetricKey, title, unit, value, change string, trend Trend) Metric {
	m := Metric{
		Key:    key,
		Title:  title,
		Unit:   unit,
		Value:  decimal.RequireFromString(value),
		Change: decimal.RequireFromString(change),
		Trend:  trend,
	}
	m.Display = display(m)
	return m
}

func stepMetric(m Metric, r Rand) Metric {
	up := r.Float64() > 0.5

	delta, floor, ceil := one, decimal.Zero, decimal.Decimal{}
	hasCeil := false
	switch m.Key {
	case MetricAvgReviewTime:
		delta, floor = tenth, halfHour
	case MetricTestsPassing:
		delta, floor, ceil, hasCeil = tenth, ninety, hundred, true
	}
	if !up {
		delta = delta.Neg()
	}

	next := decimal.Max(floor, m.Value.Add(delta))
	if hasCeil {
		next = decimal.Min(ceil, next)
	}

	m.Change = next.Sub(m.Value)
	m.Value = next
	m.Trend = TrendDown
	if up {
		m.Trend = TrendUp
	}
	m.Display = display(m)
	return m
}

func display(m Metric) string {
	switch m.Key {
	case MetricAvgReviewTime, MetricTestsPassing:
		return m.Value.StringFixed(1) + m.Unit
	default:
		return m.Value.StringFixed(0) + m.Unit
	}
}

func newPoint(at, review string, deployments int, coverage string) PerformancePoint {
	return PerformancePoint{
		Time:         at,
		ReviewTime:   decimal.RequireFromString(review),
		Deployments:  deployments,
		TestCoverage: decimal.RequireFromString(coverage),
	}
}

// jitter returns a uniform value in [-span/2, span/2) rounded to two places.
func jitter(r Rand, span string) decimal.Decimal {
	return decimal.NewFromFloat(r.Float64() - 0.5).Mul(decimal.RequireFromString(span)).Round(2)
}

func clamp(v, lo, hi decimal.Decimal) decimal.Decimal {
	return decimal.Min(hi, decimal.Max(lo, v))
}

// stepTimes returns the instants of every whole interval elapsed since *last
// and moves *last forward. At most MaxCatchUp steps are returned; when more
// have elapsed the most recent ones are kept and *last jumps to now.
func stepTimes(last *time.Time, now time.Time, interval time.Duration) []time.Time {
	if now.Before(*last) {
		return nil
	}
	n := int(now.Sub(*last) / interval)
	if n == 0 {
		return nil
	}

	start := *last
	if n > MaxCatchUp {
		start = now.Add(-time.Duration(MaxCatchUp) * interval)
		n = MaxCatchUp
	}

	times := make([]time.Time, n)
	for i := range times {
		times[i] = start.Add(time.Duration(i+1) * interval)
	}
	*last = times[n-1]
	return times
}

func (s *Snapshot) nextID(prefix string) string {
	s.Seq++
	return fmt.Sprintf("%s-%d", prefix, s.Seq)
}

func prepend[T any](items []T, item T, limit int) []T {
	out := make([]T, 0, min(len(items)+1, limit))
	out = append(out, item)
	for _, it := range items {
		if len(out) == limit {
			break
		}
		out = append(out, it)
	}
	return out
}

func intPtr(v int) *int { return &v }
