// internal/email/mailer/welcome.go
package mailer

import "github.com/emateapp/emate/internal/email"

// WelcomeTemplateData contains data for the welcome email template
type WelcomeTemplateData struct {
	Name string
}

// SendWelcomeEmail sends the first-signup welcome email
func SendWelcomeEmail(s *email.Service, to, name string) error {
	templateData := WelcomeTemplateData{
		Name: name,
	}

	emailData := email.EmailData{
		To:           to,
		FromName:     "eMate",
		Subject:      "Welcome to eMate!",
		TemplateName: "welcome",
		TemplateData: templateData,
	}

	return s.SendEmail(emailData)
}
