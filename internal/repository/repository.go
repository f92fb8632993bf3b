package repository

import (
	"uevent/internal/database"
)

type Repositories struct {
	Locations     *LocationRepository
	Users         *UserRepository
	Companies     *CompanyRepository
	Events        *EventRepository
	Subscriptions *SubscriptionRepository
	Tickets       *TicketRepository
	Comments      *CommentRepository
	Reactions     *ReactionRepository
	News          *NewsRepository
	PromoCodes    *PromoCodeRepository
	Notifications *NotificationRepository
}

func NewRepositories(db *database.DB) *Repositories {
	return &Repositories{
		Locations:     NewLocationRepository(db),
		Users:         NewUserRepository(db),
		Companies:     NewCompanyRepository(db),
		Events:        NewEventRepository(db),
		Subscriptions: NewSubscriptionRepository(db),
		Tickets:       NewTicketRepository(db),
		Comments:      NewCommentRepository(db),
		Reactions:     NewReactionRepository(db),
		News:          NewNewsRepository(db),
		PromoCodes:    NewPromoCodeRepository(db),
		Notifications: NewNotificationRepository(db),
	}
}
