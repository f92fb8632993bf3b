package models

import (
	"time"
)

// Location is a geocoded address. A location is consumed by at most one
// company or one event.
type Location struct {
	ID        string    `json:"id" db:"id"`
	Address   string    `json:"address" db:"address"`
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// User represents a user account. Settings is not a column; it is created in
// the same transaction as the user row and filled on load.
type User struct {
	ID            string       `json:"id" db:"id"`
	Name          string       `json:"name" db:"name"`
	Email         string       `json:"email" db:"email"`
	PasswordHash  *string      `json:"-" db:"password_hash"`
	Avatar        *string      `json:"avatar" db:"avatar"`
	Bio           *string      `json:"bio" db:"bio"`
	Role          UserRole     `json:"role" db:"role"`
	AuthProvider  AuthProvider `json:"auth_provider" db:"auth_provider"`
	EmailVerified bool         `json:"email_verified" db:"email_verified"`
	CreatedAt     time.Time    `json:"created_at" db:"created_at"`

	Settings UserSettings `json:"settings,omitempty"`
}

// UserSettings holds per-user notification and visibility preferences.
type UserSettings struct {
	ID                    string              `json:"id" db:"id"`
	UserID                string              `json:"user_id" db:"user_id"`
	ShowInAttendeeList    bool                `json:"show_in_attendee_list" db:"show_in_attendee_list"`
	ShowFollowingList     bool                `json:"show_following_list" db:"show_following_list"`
	EventReminderChannel  NotificationChannel `json:"event_reminder_channel" db:"event_reminder_channel"`
	TicketPurchaseChannel NotificationChannel `json:"ticket_purchase_channel" db:"ticket_purchase_channel"`
	NewCommentChannel     NotificationChannel `json:"new_comment_channel" db:"new_comment_channel"`
	CompanyUpdateChannel  NotificationChannel `json:"company_update_channel" db:"company_update_channel"`
	ThemeMainColor        *string             `json:"theme_main_color" db:"theme_main_color"`
}

// Company is an event organizer owned by a user.
type Company struct {
	ID              string    `json:"id" db:"id"`
	Name            string    `json:"name" db:"name"`
	Email           string    `json:"email" db:"email"`
	Description     *string   `json:"description" db:"description"`
	Website         *string   `json:"website" db:"website"`
	Logo            *string   `json:"logo" db:"logo"`
	CoverImage      *string   `json:"cover_image" db:"cover_image"`
	IsVerified      bool      `json:"is_verified" db:"is_verified"`
	StripeAccountID *string   `json:"stripe_account_id" db:"stripe_account_id"`
	OwnerID         string    `json:"owner_id" db:"owner_id"`
	LocationID      string    `json:"location_id" db:"location_id"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

// Event is a timed event published by a company. LocationID is nil for
// virtual events.
type Event struct {
	ID                  string       `json:"id" db:"id"`
	Title               string       `json:"title" db:"title"`
	Description         string       `json:"description" db:"description"`
	PosterURL           *string      `json:"poster_url" db:"poster_url"`
	StartDate           time.Time    `json:"start_date" db:"start_date"`
	EndDate             time.Time    `json:"end_date" db:"end_date"`
	PublishDate         time.Time    `json:"publish_date" db:"publish_date"`
	Price               float64      `json:"price" db:"price"`
	MaxAttendees        *int         `json:"max_attendees" db:"max_attendees"`
	ShowAttendeeList    bool         `json:"show_attendee_list" db:"show_attendee_list"`
	NotifyOnNewAttendee bool         `json:"notify_on_new_attendee" db:"notify_on_new_attendee"`
	Format              EventFormat  `json:"format" db:"format"`
	Themes              []EventTheme `json:"themes" db:"themes"`
	StripeProductID     *string      `json:"stripe_product_id" db:"stripe_product_id"`
	StripePriceID       *string      `json:"stripe_price_id" db:"stripe_price_id"`
	CompanyID           string       `json:"company_id" db:"company_id"`
	CreatorID           string       `json:"creator_id" db:"creator_id"`
	LocationID          *string      `json:"location_id" db:"location_id"`
	CreatedAt           time.Time    `json:"created_at" db:"created_at"`
}

// EventSubscription is a (user, event) follow record.
type EventSubscription struct {
	UserID  string `json:"user_id" db:"user_id"`
	EventID string `json:"event_id" db:"event_id"`
}

// CompanySubscription is a (user, company) follow record.
type CompanySubscription struct {
	UserID    string `json:"user_id" db:"user_id"`
	CompanyID string `json:"company_id" db:"company_id"`
}

// EventAttendee records that a user attends an event. Created before its
// ticket inside the same transaction.
type EventAttendee struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	EventID   string    `json:"event_id" db:"event_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Ticket is the 1:1 counterpart of an attendee record.
type Ticket struct {
	ID         string       `json:"id" db:"id"`
	Status     TicketStatus `json:"status" db:"status"`
	UserID     string       `json:"user_id" db:"user_id"`
	EventID    string       `json:"event_id" db:"event_id"`
	AttendeeID string       `json:"attendee_id" db:"attendee_id"`
	CreatedAt  time.Time    `json:"created_at" db:"created_at"`
}

// Payment exists for a ticket iff the event was paid at generation time.
type Payment struct {
	ID            string        `json:"id" db:"id"`
	Amount        float64       `json:"amount" db:"amount"`
	Status        PaymentStatus `json:"status" db:"status"`
	PaymentIntent string        `json:"payment_intent" db:"payment_intent"`
	UserID        string        `json:"user_id" db:"user_id"`
	TicketID      string        `json:"ticket_id" db:"ticket_id"`
	CreatedAt     time.Time     `json:"created_at" db:"created_at"`
}

// Comment attaches to exactly one of an event or a news item. Replies carry
// ParentID and inherit the parent's target; threads are one level deep.
type Comment struct {
	ID        string    `json:"id" db:"id"`
	Content   string    `json:"content" db:"content"`
	UserID    string    `json:"user_id" db:"user_id"`
	EventID   *string   `json:"event_id" db:"event_id"`
	NewsID    *string   `json:"news_id" db:"news_id"`
	ParentID  *string   `json:"parent_id" db:"parent_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Reaction is a typed reaction on a comment, unique per (user, comment).
type Reaction struct {
	Type      ReactionType `json:"type" db:"type"`
	UserID    string       `json:"user_id" db:"user_id"`
	CommentID string       `json:"comment_id" db:"comment_id"`
}

// CompanyNews is an announcement published by a company.
type CompanyNews struct {
	ID        string    `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	ImageURL  *string   `json:"image_url" db:"image_url"`
	CompanyID string    `json:"company_id" db:"company_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// PromoCode is a discount code backed by billing coupon/promotion objects.
// Only verified companies with a billing account carry promo codes.
type PromoCode struct {
	ID             string `json:"id" db:"id"`
	Code           string `json:"code" db:"code"`
	MaxUses        int    `json:"max_uses" db:"max_uses"`
	Uses           int    `json:"uses" db:"uses"`
	Discount       int    `json:"discount" db:"discount"`
	StripeID       string `json:"stripe_id" db:"stripe_id"`
	StripeCouponID string `json:"stripe_coupon_id" db:"stripe_coupon_id"`
	CompanyID      string `json:"company_id" db:"company_id"`
}

// Notification is an in-app notification addressed to a user. SentByID is
// nil for system-originated notifications.
type Notification struct {
	ID        string           `json:"id" db:"id"`
	Type      NotificationType `json:"type" db:"type"`
	Title     string           `json:"title" db:"title"`
	Content   string           `json:"content" db:"content"`
	Link      *string          `json:"link" db:"link"`
	IsRead    bool             `json:"is_read" db:"is_read"`
	UserID    string           `json:"user_id" db:"user_id"`
	SentByID  *string          `json:"sent_by_id" db:"sent_by_id"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
}
