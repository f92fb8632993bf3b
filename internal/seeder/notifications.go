package seeder

import (
	"context"
	"fmt"
	"time"

	"uevent/internal/models"
)

// quietUserProb leaves ~10% of users with an empty notification feed.
const quietUserProb = 0.1

// buildNotification fills in type-specific copy by cross-referencing random
// rows from earlier stages. A nil return means the draw could not be
// completed (no events yet, or an event whose company is unknown) and the
// notification is simply not sent.
func (s *Seeder) buildNotification(user *models.User, users []models.User, events []models.Event, companies []models.Company, companyByID map[string]*models.Company) *models.Notification {
	n := &models.Notification{
		Type:      PickAny(s.rng, models.NotificationTypes),
		IsRead:    s.rng.Chance(0.5),
		UserID:    user.ID,
		CreatedAt: s.rng.DateBetween(s.now.AddDate(0, 0, -30), s.now),
	}

	link := func(format string, args ...any) *string {
		l := fmt.Sprintf(format, args...)
		return &l
	}

	switch n.Type {
	case models.NotifyEventReminder:
		event, err := PickOne(s.rng, events)
		if err != nil {
			return nil
		}
		n.Title = "Reminder: " + event.Title
		n.Content = fmt.Sprintf("Don't forget about %q tomorrow!", event.Title)
		n.Link = link("/events/%s", event.ID)

	case models.NotifyTicketPurchase:
		event, err := PickOne(s.rng, events)
		if err != nil {
			return nil
		}
		n.Title = "Ticket Purchased"
		n.Content = fmt.Sprintf("You successfully purchased a ticket for %q", event.Title)
		n.Link = link("/users/%s/tickets", user.ID)

	case models.NotifyNewComment:
		event, err := PickOne(s.rng, events)
		if err != nil {
			return nil
		}
		sender := PickAny(s.rng, users)
		n.Title = "New comment on " + event.Title
		n.Content = fmt.Sprintf("%s commented: %q", sender.Name, s.rng.sentence())
		n.Link = link("/events/%s#comments", event.ID)
		n.SentByID = &sender.ID

	case models.NotifyCommentReply:
		sender := PickAny(s.rng, users)
		n.Title = "New reply to your comment"
		n.Content = fmt.Sprintf("%s replied: %q", sender.Name, s.rng.sentence())
		n.SentByID = &sender.ID
		if event, err := PickOne(s.rng, events); err == nil {
			n.Link = link("/events/%s#comments", event.ID)
		}

	case models.NotifyEventUpdate:
		event, err := PickOne(s.rng, events)
		if err != nil {
			return nil
		}
		company, ok := companyByID[event.CompanyID]
		if !ok {
			return nil
		}
		n.Title = company.Name + " Updated Event"
		n.Content = fmt.Sprintf("%s just updated: %q", company.Name, event.Title)
		n.Link = link("/events/%s", event.ID)
		n.SentByID = &company.OwnerID

	case models.NotifyCompanyUpdate:
		company, err := PickOne(s.rng, companies)
		if err != nil {
			return nil
		}
		n.Title = company.Name + " News"
		n.Content = fmt.Sprintf("%s just published: %q", company.Name, s.rng.catchphrase())
		n.Link = link("/companies/%s/news", company.ID)
		n.SentByID = &company.OwnerID

	case models.NotifyEventDelete:
		company, err := PickOne(s.rng, companies)
		if err != nil {
			return nil
		}
		n.Title = company.Name + " Event Cancelled"
		n.Content = fmt.Sprintf("The event %q has been cancelled.", s.rng.catchphrase())
		n.SentByID = &company.OwnerID

	case models.NotifyNewEventAttendee:
		event, err := PickOne(s.rng, events)
		if err != nil {
			return nil
		}
		attendee := PickAny(s.rng, users)
		n.Title = "New attendee of the event"
		n.Content = fmt.Sprintf("%s joined the event %q", attendee.Name, event.Title)
		n.Link = link("/events/%s#attendees", event.ID)
		n.SentByID = &attendee.ID
	}

	return n
}

func (s *Seeder) buildNotifications(users []models.User, events []models.Event, companies []models.Company) []models.Notification {
	companyByID := make(map[string]*models.Company, len(companies))
	for i := range companies {
		companyByID[companies[i].ID] = &companies[i]
	}

	var notifications []models.Notification
	for i := range users {
		if s.rng.Chance(quietUserProb) {
			continue
		}
		count := s.rng.IntBetween(s.cfg.NotificationsPerUser.Min, s.cfg.NotificationsPerUser.Max)
		for j := 0; j < count; j++ {
			if n := s.buildNotification(&users[i], users, events, companies, companyByID); n != nil {
				notifications = append(notifications, *n)
			}
		}
	}
	return notifications
}

func (s *Seeder) seedNotifications(ctx context.Context, users []models.User, events []models.Event, companies []models.Company) (int, error) {
	start := time.Now()
	s.log.Info("Creating notifications...")

	notifications := s.buildNotifications(users, events, companies)

	if s.dryRun {
		assignFakeIDs(notifications, func(n *models.Notification, id string) { n.ID = id })
	} else if err := createInBatches(ctx, notifications, notificationBatchSize, s.repos.Notifications.Create); err != nil {
		return 0, err
	}

	s.log.Info("Created notifications", "count", len(notifications), "duration", time.Since(start).Round(time.Millisecond))
	return len(notifications), nil
}
