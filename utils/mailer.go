package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"gopkg.in/gomail.v2"

	"doctorconnect/config"
	"doctorconnect/models"
)

// Mailer sends the transactional emails triggered by intake handlers.
// Implementations must be safe to call after the triggering record has
// committed; send failures are the caller's to log and swallow.
type Mailer interface {
	SendInquiryConfirmation(inquiry *models.ContactInquiry) error
	SendTeamNotification(inquiry *models.ContactInquiry) error
	SendNewsletterWelcome(sub *models.NewsletterSubscription) error
	SendQuickContactNotification(inquiry *models.ContactInquiry, preference string) error
}

type emailData struct {
	Subject  string
	To       []string
	ReplyTo  string
	Template string
	Data     interface{}
}

// Embedded email templates
var emailTemplates = map[string]string{
	"doctor_confirmation": `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>{{.Subject}}</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { color: #2c3e50; border-bottom: 1px solid #eee; padding-bottom: 10px; }
        .content { margin: 20px 0; }
        .services { margin: 10px 0 10px 20px; }
        .footer { margin-top: 30px; font-size: 12px; color: #7f8c8d; text-align: center; }
    </style>
</head>
<body>
    <div class="header">
        <h2>Thank You for Your Inquiry</h2>
    </div>

    <div class="content">
        <p>Dear Dr. {{.Inquiry.LastName}},</p>
        <p>We received your inquiry for <strong>{{.Inquiry.PracticeName}}</strong> and will get back to you within 2 hours.</p>

        {{if .Inquiry.ServicesNeeded}}
        <p>Services you're interested in:</p>
        <ul class="services">
            {{range .Inquiry.ServicesNeeded}}<li>{{.}}</li>{{end}}
        </ul>
        {{end}}

        <p>If anything is urgent in the meantime, just reply to this email.</p>
    </div>

    <div class="footer">
        <p>© {{.Year}} DoctorConnect. All rights reserved.</p>
    </div>
</body>
</html>`,

	"team_notification": `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>{{.Subject}}</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { color: #2c3e50; border-bottom: 1px solid #eee; padding-bottom: 10px; }
        .content { margin: 20px 0; }
        .meta { font-size: 13px; color: #7f8c8d; }
    </style>
</head>
<body>
    <div class="header">
        <h2>New Contact Inquiry</h2>
    </div>

    <div class="content">
        <p><strong>{{.Inquiry.FullName}}</strong> ({{.Inquiry.Email}}{{if .Inquiry.Phone}}, {{.Inquiry.Phone}}{{end}})</p>
        <p>Practice: {{.Inquiry.PracticeName}} — {{.Inquiry.Specialty}} — {{.Inquiry.Location}}</p>

        {{if .Inquiry.ServicesNeeded}}
        <p>Services requested:</p>
        <ul>
            {{range .Inquiry.ServicesNeeded}}<li>{{.}}</li>{{end}}
        </ul>
        {{end}}

        {{if .Inquiry.BudgetRange}}<p>Budget: {{.Inquiry.BudgetRange}}</p>{{end}}
        {{if .Inquiry.Timeline}}<p>Timeline: {{.Inquiry.Timeline}}</p>{{end}}

        <p>Message:</p>
        <blockquote>{{.Inquiry.Message}}</blockquote>

        <p class="meta">Submitted {{.Inquiry.SubmittedAt.Format "2006-01-02 15:04"}} from {{.Inquiry.IPAddress}}</p>
    </div>
</body>
</html>`,

	"newsletter_welcome": `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>{{.Subject}}</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { color: #2c3e50; border-bottom: 1px solid #eee; padding-bottom: 10px; }
        .content { margin: 20px 0; }
        .footer { margin-top: 30px; font-size: 12px; color: #7f8c8d; text-align: center; }
    </style>
</head>
<body>
    <div class="header">
        <h2>Welcome to the DoctorConnect Newsletter</h2>
    </div>

    <div class="content">
        <p>Hello {{.Subscription.FullName}},</p>
        <p>Thanks for subscribing! You'll receive occasional updates on digital marketing trends and tips for medical practices.</p>
    </div>

    <div class="footer">
        <p>© {{.Year}} DoctorConnect. All rights reserved.</p>
    </div>
</body>
</html>`,

	"quick_contact_notification": `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>{{.Subject}}</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { color: #2c3e50; border-bottom: 1px solid #eee; padding-bottom: 10px; }
        .content { margin: 20px 0; }
        .meta { font-size: 13px; color: #7f8c8d; }
    </style>
</head>
<body>
    <div class="header">
        <h2>Quick Contact Request</h2>
    </div>

    <div class="content">
        <p><strong>{{.Inquiry.FullName}}</strong> ({{.Inquiry.Email}}{{if .Inquiry.Phone}}, {{.Inquiry.Phone}}{{end}})</p>
        <p>Preferred contact method: <strong>{{.Preference}}</strong></p>

        <p>Message:</p>
        <blockquote>{{.Inquiry.Message}}</blockquote>

        <p class="meta">Submitted {{.Inquiry.SubmittedAt.Format "2006-01-02 15:04"}} from {{.Inquiry.IPAddress}}</p>
    </div>
</body>
</html>`,
}

// SMTPMailer sends mail through the configured SMTP server.
type SMTPMailer struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
	TeamEmail string
}

// NewMailer builds an SMTPMailer from the loaded configuration. The team
// recipient falls back to the sender address when TEAM_EMAIL is not set.
func NewMailer() *SMTPMailer {
	cfg := config.AppConfig
	team := cfg.TeamEmail
	if team == "" {
		team = cfg.FromEmail
	}
	return &SMTPMailer{
		Host:      cfg.SMTPHost,
		Port:      cfg.SMTPPort,
		Username:  cfg.SMTPUsername,
		Password:  cfg.SMTPPassword,
		FromEmail: cfg.FromEmail,
		FromName:  cfg.FromName,
		TeamEmail: team,
	}
}

func (m *SMTPMailer) send(data emailData) error {
	tmplContent, ok := emailTemplates[data.Template]
	if !ok {
		return fmt.Errorf("template '%s' not found", data.Template)
	}

	tmpl, err := template.New("email").Parse(tmplContent)
	if err != nil {
		return fmt.Errorf("error parsing template: %v", err)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data.Data); err != nil {
		return fmt.Errorf("error executing template: %v", err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", fmt.Sprintf("%s <%s>", m.FromName, m.FromEmail))
	msg.SetHeader("To", data.To...)
	if data.ReplyTo != "" {
		msg.SetHeader("Reply-To", data.ReplyTo)
	}
	msg.SetHeader("Subject", data.Subject)
	msg.SetBody("text/html", body.String())

	d := gomail.NewDialer(m.Host, m.Port, m.Username, m.Password)
	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("error sending email: %v", err)
	}
	return nil
}

// SendInquiryConfirmation thanks the doctor for the full inquiry.
// Replies go back to the team sender address.
func (m *SMTPMailer) SendInquiryConfirmation(inquiry *models.ContactInquiry) error {
	return m.send(emailData{
		Subject:  fmt.Sprintf("Thank you for your inquiry, Dr. %s!", inquiry.LastName),
		To:       []string{inquiry.Email},
		ReplyTo:  m.FromEmail,
		Template: "doctor_confirmation",
		Data: struct {
			Subject string
			Inquiry *models.ContactInquiry
			Year    int
		}{
			Subject: "Thank you for your inquiry",
			Inquiry: inquiry,
			Year:    time.Now().Year(),
		},
	})
}

// SendTeamNotification tells the team about a new full inquiry. Replies
// go straight to the submitter.
func (m *SMTPMailer) SendTeamNotification(inquiry *models.ContactInquiry) error {
	return m.send(emailData{
		Subject:  fmt.Sprintf("New Contact Inquiry: %s", inquiry.PracticeName),
		To:       []string{m.TeamEmail},
		ReplyTo:  inquiry.Email,
		Template: "team_notification",
		Data: struct {
			Subject string
			Inquiry *models.ContactInquiry
		}{
			Subject: "New contact inquiry",
			Inquiry: inquiry,
		},
	})
}

func (m *SMTPMailer) SendNewsletterWelcome(sub *models.NewsletterSubscription) error {
	return m.send(emailData{
		Subject:  "Welcome to DoctorConnect Newsletter!",
		To:       []string{sub.Email},
		Template: "newsletter_welcome",
		Data: struct {
			Subject      string
			Subscription *models.NewsletterSubscription
			Year         int
		}{
			Subject:      "Welcome",
			Subscription: sub,
			Year:         time.Now().Year(),
		},
	})
}

func (m *SMTPMailer) SendQuickContactNotification(inquiry *models.ContactInquiry, preference string) error {
	return m.send(emailData{
		Subject:  fmt.Sprintf("Quick Contact: %s %s", inquiry.FirstName, inquiry.LastName),
		To:       []string{m.TeamEmail},
		ReplyTo:  inquiry.Email,
		Template: "quick_contact_notification",
		Data: struct {
			Subject    string
			Inquiry    *models.ContactInquiry
			Preference string
		}{
			Subject:    "Quick contact",
			Inquiry:    inquiry,
			Preference: preference,
		},
	})
}
