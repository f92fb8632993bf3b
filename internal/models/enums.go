package models

// AuthProvider identifies how a user account authenticates.
type AuthProvider string

const (
	AuthProviderEmail  AuthProvider = "EMAIL"
	AuthProviderGoogle AuthProvider = "GOOGLE"
)

// UserRole is the platform-wide role of an account.
type UserRole string

const (
	RoleUser  UserRole = "USER"
	RoleAdmin UserRole = "ADMIN"
)

// NotificationChannel selects where a notification kind is delivered.
type NotificationChannel string

const (
	ChannelNone  NotificationChannel = "NONE"
	ChannelInApp NotificationChannel = "IN_APP"
	ChannelEmail NotificationChannel = "EMAIL"
	ChannelBoth  NotificationChannel = "BOTH"
)

// NotificationChannels lists all delivery channel values.
var NotificationChannels = []NotificationChannel{ChannelNone, ChannelInApp, ChannelEmail, ChannelBoth}

// EventFormat describes the format of an event.
type EventFormat string

const (
	FormatConference EventFormat = "CONFERENCE"
	FormatLecture    EventFormat = "LECTURE"
	FormatWorkshop   EventFormat = "WORKSHOP"
	FormatFest       EventFormat = "FEST"
	FormatConcert    EventFormat = "CONCERT"
	FormatCeremony   EventFormat = "CEREMONY"
	FormatMeetup     EventFormat = "MEETUP"
	FormatOther      EventFormat = "OTHER"
)

// EventFormats lists all event format values.
var EventFormats = []EventFormat{
	FormatConference, FormatLecture, FormatWorkshop, FormatFest,
	FormatConcert, FormatCeremony, FormatMeetup, FormatOther,
}

// EventTheme tags an event with a topic.
type EventTheme string

const (
	ThemeArt        EventTheme = "ART"
	ThemeMusic      EventTheme = "MUSIC"
	ThemeBusiness   EventTheme = "BUSINESS"
	ThemeTechnology EventTheme = "TECHNOLOGY"
	ThemeSports     EventTheme = "SPORTS"
	ThemeEducation  EventTheme = "EDUCATION"
	ThemeHealth     EventTheme = "HEALTH"
	ThemeFood       EventTheme = "FOOD"
	ThemeScience    EventTheme = "SCIENCE"
	ThemeOther      EventTheme = "OTHER"
)

// EventThemes lists all event theme values.
var EventThemes = []EventTheme{
	ThemeArt, ThemeMusic, ThemeBusiness, ThemeTechnology, ThemeSports,
	ThemeEducation, ThemeHealth, ThemeFood, ThemeScience, ThemeOther,
}

// TicketStatus is the lifecycle state of a ticket.
type TicketStatus string

const (
	TicketValid     TicketStatus = "VALID"
	TicketUsed      TicketStatus = "USED"
	TicketCancelled TicketStatus = "CANCELLED"
)

// PaymentStatus is the state of a payment.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentCompleted PaymentStatus = "COMPLETED"
	PaymentFailed    PaymentStatus = "FAILED"
	PaymentRefunded  PaymentStatus = "REFUNDED"
)

// ReactionType is the kind of reaction a user leaves on a comment.
type ReactionType string

const (
	ReactionLike    ReactionType = "LIKE"
	ReactionDislike ReactionType = "DISLIKE"
	ReactionLove    ReactionType = "LOVE"
	ReactionLaugh   ReactionType = "LAUGH"
	ReactionWow     ReactionType = "WOW"
	ReactionSad     ReactionType = "SAD"
	ReactionAngry   ReactionType = "ANGRY"
)

// ReactionTypes lists all reaction values.
var ReactionTypes = []ReactionType{
	ReactionLike, ReactionDislike, ReactionLove, ReactionLaugh,
	ReactionWow, ReactionSad, ReactionAngry,
}

// NotificationType is one of the notification kinds the platform dispatches.
type NotificationType string

const (
	NotifyEventReminder    NotificationType = "EVENT_REMINDER"
	NotifyTicketPurchase   NotificationType = "TICKET_PURCHASE"
	NotifyNewComment       NotificationType = "NEW_COMMENT"
	NotifyCommentReply     NotificationType = "COMMENT_REPLY"
	NotifyEventUpdate      NotificationType = "EVENT_UPDATE"
	NotifyCompanyUpdate    NotificationType = "COMPANY_UPDATE"
	NotifyEventDelete      NotificationType = "EVENT_DELETE"
	NotifyNewEventAttendee NotificationType = "NEW_EVENT_ATTENDEE"
)

// NotificationTypes lists all notification kinds.
var NotificationTypes = []NotificationType{
	NotifyEventReminder, NotifyTicketPurchase, NotifyNewComment, NotifyCommentReply,
	NotifyEventUpdate, NotifyCompanyUpdate, NotifyEventDelete, NotifyNewEventAttendee,
}
