// internal/email/mailer/referee_request.go
package mailer

import "github.com/emateapp/emate/internal/email"

// RefereeRequestTemplateData contains data for the referee request template
type RefereeRequestTemplateData struct {
	FirstName string
	Projects  []string
}

// SendRefereeRequestEmail asks a referee to vouch for the listed projects
func SendRefereeRequestEmail(s *email.Service, to, firstName string, projects []string) error {
	templateData := RefereeRequestTemplateData{
		FirstName: firstName,
		Projects:  projects,
	}

	emailData := email.EmailData{
		To:           to,
		FromName:     "eMate",
		Subject:      "Reference request for engineering projects",
		TemplateName: "referee_request",
		TemplateData: templateData,
	}

	return s.SendEmail(emailData)
}
