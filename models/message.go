package models

import "time"

// Message is a contact form submission. It is write-only from the
// application's perspective: there are no routes that read, update or
// delete stored messages.
type Message struct {
	MessageID string    `json:"-"`
	FullName  string    `json:"fullname"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Message model.
func (m Message) TableName() string {
	return "messages"
}
