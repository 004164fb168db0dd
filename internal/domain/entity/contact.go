package entity

import "time"

// Contact is a message submitted through the public contact form.
// Number and Subject are optional and may be empty.
type Contact struct {
	ID        string    // Store-generated identifier for this submission.
	Name      string    // Name of the sender.
	Email     string    // Email address of the sender.
	Number    string    // Optional phone number.
	Subject   string    // Optional subject line.
	Message   string    // Body of the message.
	CreatedAt time.Time // Timestamp of when the form was submitted.
}
