package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// RegistrationConfirmationEmailData holds data for the event registration confirmation.
type RegistrationConfirmationEmailData struct {
	Email      string
	Name       string
	EventTitle string
	EventDate  string
	Location   string
}

// TeamRequestNotificationEmailData holds data for the organisers' team request notice.
type TeamRequestNotificationEmailData struct {
	To          string
	StartupName string
	FounderName string
	Phone       string
	Roles       []string
	Description string
}

// ContactNotificationEmailData holds data for the organisers' contact form notice.
type ContactNotificationEmailData struct {
	To      string
	Name    string
	Phone   string
	Email   string
	Message string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendRegistrationConfirmation(ctx context.Context, data *RegistrationConfirmationEmailData) error
	SendTeamRequestNotification(ctx context.Context, data *TeamRequestNotificationEmailData) error
	SendContactNotification(ctx context.Context, data *ContactNotificationEmailData) error
}
