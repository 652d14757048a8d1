package model

// EmailDraft holds the generated notification email content.
type EmailDraft struct {
	Subject string
	Body    string
}
