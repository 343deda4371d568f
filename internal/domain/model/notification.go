package model

// NotificationField represents a titled section within a notification payload.
type NotificationField struct {
	Name  string
	Value string
}

// Notification is a transport-agnostic message shown to the user.
// A notification with only a Title renders as a single line.
type Notification struct {
	Title       string
	Description string
	Fields      []NotificationField
}

// Message builds a one-line notification.
func Message(text string) Notification {
	return Notification{Title: text}
}
