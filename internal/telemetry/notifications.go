package telemetry

import "time"

var notificationTemplates = []struct {
	typ     NotificationType
	title   string
	message string
}{
	{typ: NotificationSuccess, title: "Deployment Successful", message: "Your changes have been deployed to production"},
	{typ: NotificationInfo, title: "Code Review Request", message: "Alice Chen requested your review on PR #234"},
	{typ: NotificationWarning, title: "Test Coverage Low", message: "Test coverage dropped below 90% in feature/dashboard"},
	{typ: NotificationSuccess, title: "PR Merged", message: "Your pull request #235 has been merged to main"},
	{typ: NotificationInfo, title: "New Comment", message: "Bob Smith commented on your pull request"},
	{typ: NotificationError, title: "Build Failed", message: "The pipeline for feature/dashboard failed on the lint stage"},
}

// AdvanceNotifications delivers every notification due by now. Delivery gaps
// are drawn uniformly from [NotificationMinInterval, NotificationMaxInterval].
func (s *Snapshot) AdvanceNotifications(now time.Time, r Rand) {
	delivered := 0
	for !now.Before(s.NextNotificationAt) {
		if delivered == MaxCatchUp {
			s.NextNotificationAt = now.Add(notificationDelay(r))
			return
		}
		tmpl := notificationTemplates[r.IntN(len(notificationTemplates))]
		s.Notifications = prepend(s.Notifications, Notification{
			ID:        s.nextID("ntf"),
			Type:      tmpl.typ,
			Title:     tmpl.title,
			Message:   tmpl.message,
			Timestamp: s.NextNotificationAt,
		}, maxNotifications)
		s.NextNotificationAt = s.NextNotificationAt.Add(notificationDelay(r))
		delivered++
	}
}

// UnreadCount returns the number of unread notifications.
func (s *Snapshot) UnreadCount() int {
	n := 0
	for _, ntf := range s.Notifications {
		if !ntf.Read {
			n++
		}
	}
	return n
}

// MarkRead marks the notification with id as read. It reports whether id exists.
func (s *Snapshot) MarkRead(id string) bool {
	for i := range s.Notifications {
		if s.Notifications[i].ID == id {
			s.Notifications[i].Read = true
			return true
		}
	}
	return false
}

// MarkAllRead marks every notification as read.
func (s *Snapshot) MarkAllRead() {
	for i := range s.Notifications {
		s.Notifications[i].Read = true
	}
}

// Clear removes the notification with id. It reports whether id existed.
func (s *Snapshot) Clear(id string) bool {
	for i := range s.Notifications {
		if s.Notifications[i].ID == id {
			s.Notifications = append(s.Notifications[:i], s.Notifications[i+1:]...)
			return true
		}
	}
	return false
}

func notificationDelay(r Rand) time.Duration {
	span := int((NotificationMaxInterval - NotificationMinInterval) / time.Millisecond)
	return NotificationMinInterval + time.Duration(r.IntN(span+1))*time.Millisecond
}
