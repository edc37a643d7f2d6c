package utils

import (
	"bytes"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"

	"taalimflow/config"
)

// Embedded email templates
var emailTemplates = map[string]string{
	"contact_submission": `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>{{.Subject}}</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { color: #2563eb; border-bottom: 2px solid #e5e7eb; padding-bottom: 10px; }
        .details { background: #f9fafb; padding: 20px; border-radius: 8px; margin: 20px 0; }
        .message { background: white; padding: 15px; border-left: 4px solid #2563eb; margin-top: 10px; }
        .footer { margin-top: 30px; font-size: 12px; color: #6b7280; text-align: center; }
    </style>
</head>
<body>
    <div class="header">
        <h2>🎓 Nouvelle soumission de contact / New Contact Submission</h2>
    </div>

    <div class="details">
        <p><strong>👤 Nom/Name:</strong> {{.Name}}</p>
        <p><strong>📧 Email:</strong> {{.Email}}</p>
        <p><strong>📱 Téléphone/Phone:</strong> {{.Phone}}</p>
        <p><strong>🏫 École/School:</strong> {{.SchoolName}}</p>
        <p><strong>💬 Message:</strong></p>
        <div class="message">{{.Message}}</div>
    </div>

    <p>🕐 <strong>Soumis le/Submitted at:</strong> {{.SubmittedAt}}</p>

    <div class="footer">
        <p>TaalimFlow - School Management Platform</p>
    </div>
</body>
</html>`,

	"demo_request": `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>{{.Subject}}</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { color: #2563eb; border-bottom: 2px solid #e5e7eb; padding-bottom: 10px; }
        .details { background: #f9fafb; padding: 20px; border-radius: 8px; margin: 20px 0; }
        .footer { margin-top: 30px; font-size: 12px; color: #6b7280; text-align: center; }
    </style>
</head>
<body>
    <div class="header">
        <h2>🎯 Nouvelle demande de démonstration / New Demo Request</h2>
    </div>

    <div class="details">
        <p><strong>👤 Nom/Name:</strong> {{.Name}}</p>
        <p><strong>📧 Email:</strong> {{.Email}}</p>
        <p><strong>📱 Téléphone/Phone:</strong> {{.Phone}}</p>
        <p><strong>🏫 École/School:</strong> {{.SchoolName}}</p>
        <p><strong>🏷️ Type d'école/School Type:</strong> {{.SchoolType}}</p>
        <p><strong>👥 Nombre d'étudiants/Students:</strong> {{.NumberOfStudents}}</p>
    </div>

    <p>🕐 <strong>Soumis le/Submitted at:</strong> {{.SubmittedAt}}</p>

    <div class="footer">
        <p>TaalimFlow - School Management Platform</p>
    </div>
</body>
</html>`,
}

// Mailer sends one message per notification with every admin as a
// recipient.
type Mailer struct {
	cfg        config.SMTPConfig
	recipients []string
}

// NewMailer returns nil when SMTP or the admin recipient list is not
// configured, which disables the channel.
func NewMailer(cfg config.SMTPConfig, adminEmails string) *Mailer {
	recipients := SplitAndTrim(adminEmails)
	if cfg.Host == "" || cfg.Username == "" || cfg.Password == "" || len(recipients) == 0 {
		return nil
	}
	return &Mailer{cfg: cfg, recipients: recipients}
}

// Send renders the named template and delivers a dual-body message
// (plain text with an HTML alternative) to all admins.
func (m *Mailer) Send(subject, templateName, textBody string, data interface{}) error {
	tmplContent, ok := emailTemplates[templateName]
	if !ok {
		return fmt.Errorf("template '%s' not found", templateName)
	}

	tmpl, err := template.New("email").Parse(tmplContent)
	if err != nil {
		return fmt.Errorf("error parsing template: %v", err)
	}

	var htmlBody bytes.Buffer
	if err := tmpl.Execute(&htmlBody, data); err != nil {
		return fmt.Errorf("error executing template: %v", err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", m.recipients...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", textBody)
	msg.AddAlternative("text/html", htmlBody.String())

	d := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)
	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("error sending email: %v", err)
	}
	return nil
}
