// Package push turns inbound push messages into local notifications.
package push

const (
	// NotificationID is shared by every notification so a new message
	// replaces the previous one instead of stacking.
	NotificationID = 1

	// ChannelID names the notification channel used for news messages.
	ChannelID = "news_notifications"
)

// Message is the title/body pair delivered by the messaging provider
type Message struct {
	Title string `json:"title" validate:"max=256"`
	Body  string `json:"body" validate:"max=4096"`
}

// TokenRegistration carries a device token issued by the messaging provider
type TokenRegistration struct {
	Token string `json:"token" validate:"required,max=4096"`
}

// Notification is what gets shown to the user. Activating it relaunches
// the main screen when Relaunch is set.
type Notification struct {
	ID       int    `json:"id"`
	Channel  string `json:"channel"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	Relaunch bool   `json:"relaunch"`
}

// NewNotification builds the notification for msg
func NewNotification(msg Message) Notification {
	return Notification{
		ID:       NotificationID,
		Channel:  ChannelID,
		Title:    msg.Title,
		Body:     msg.Body,
		Relaunch: true,
	}
}
