package utils

import (
	"fmt"
	"html"
	"sync"
	"time"

	"taalimflow/config"
	"taalimflow/models"
)

const (
	notProvided = "Non fourni/Not provided"
	noMessage   = "Aucun message/No message"
)

// Notifier fans a stored submission out to the configured channels.
// Channel failures are logged and swallowed; by the time a notification
// runs, the HTTP response has already been decided by the store write.
type Notifier struct {
	telegram *TelegramNotifier
	mailer   *Mailer
}

func NewNotifier(cfg config.Config) *Notifier {
	return &Notifier{
		telegram: NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatIDs),
		mailer:   NewMailer(cfg.SMTP, cfg.AdminEmails),
	}
}

func orPlaceholder(value, placeholder string) string {
	if value == "" {
		return placeholder
	}
	return value
}

func formatTimestamp(t time.Time) string {
	return t.Format("02/01/2006 15:04:05")
}

// FormatContactSubmission renders the Telegram message body (HTML parse
// mode, so user fields are escaped).
func FormatContactSubmission(s *models.ContactSubmission) string {
	return fmt.Sprintf(`🆕 <b>Nouvelle soumission de contact / New Contact Submission</b>

👤 <b>Nom/Name:</b> %s
📧 <b>Email:</b> %s
📱 <b>Téléphone/Phone:</b> %s
🏫 <b>École/School:</b> %s
💬 <b>Message:</b> %s
🕐 <b>Soumis le/Submitted at:</b> %s`,
		html.EscapeString(s.Name),
		html.EscapeString(s.Email),
		html.EscapeString(orPlaceholder(s.Phone, notProvided)),
		html.EscapeString(orPlaceholder(s.SchoolName, notProvided)),
		html.EscapeString(orPlaceholder(s.Message, noMessage)),
		formatTimestamp(s.SubmittedAt))
}

// FormatDemoRequest renders the Telegram message body for a demo request.
func FormatDemoRequest(r *models.DemoRequest) string {
	return fmt.Sprintf(`🎯 <b>Nouvelle demande de démonstration / New Demo Request</b>

👤 <b>Nom/Name:</b> %s
📧 <b>Email:</b> %s
📱 <b>Téléphone/Phone:</b> %s
🏫 <b>École/School:</b> %s
🏷️ <b>Type d'école/School Type:</b> %s
👥 <b>Nombre d'étudiants/Students:</b> %s
🕐 <b>Soumis le/Submitted at:</b> %s`,
		html.EscapeString(r.Name),
		html.EscapeString(r.Email),
		html.EscapeString(orPlaceholder(r.Phone, notProvided)),
		html.EscapeString(orPlaceholder(r.SchoolName, notProvided)),
		html.EscapeString(orPlaceholder(r.SchoolType, notProvided)),
		html.EscapeString(orPlaceholder(r.NumberOfStudents, notProvided)),
		formatTimestamp(r.SubmittedAt))
}

type contactEmailData struct {
	Subject     string
	Name        string
	Email       string
	Phone       string
	SchoolName  string
	Message     string
	SubmittedAt string
}

type demoEmailData struct {
	Subject          string
	Name             string
	Email            string
	Phone            string
	SchoolName       string
	SchoolType       string
	NumberOfStudents string
	SubmittedAt      string
}

// NotifyContactSubmission dispatches both channels in parallel and waits
// for them; errors are logged, never returned.
func (n *Notifier) NotifyContactSubmission(s *models.ContactSubmission) {
	var wg sync.WaitGroup

	if n.telegram != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := n.telegram.Send(FormatContactSubmission(s)); err != nil {
				LogError("telegram_notification", err, map[string]interface{}{
					"submission_id": s.ID,
					"type":          "contact",
				})
			}
		}()
	}

	if n.mailer != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			subject := "🎓 Nouvelle soumission de contact - TaalimFlow"
			data := contactEmailData{
				Subject:     subject,
				Name:        s.Name,
				Email:       s.Email,
				Phone:       orPlaceholder(s.Phone, notProvided),
				SchoolName:  orPlaceholder(s.SchoolName, notProvided),
				Message:     orPlaceholder(s.Message, noMessage),
				SubmittedAt: formatTimestamp(s.SubmittedAt),
			}
			text := fmt.Sprintf(`Nouvelle soumission de contact / New Contact Submission

Nom/Name: %s
Email: %s
Téléphone/Phone: %s
École/School: %s
Message: %s

Soumis le/Submitted at: %s`,
				data.Name, data.Email, data.Phone, data.SchoolName, data.Message, data.SubmittedAt)

			if err := n.mailer.Send(subject, "contact_submission", text, data); err != nil {
				LogError("email_notification", err, map[string]interface{}{
					"submission_id": s.ID,
					"type":          "contact",
				})
			}
		}()
	}

	wg.Wait()
}

// NotifyDemoRequest mirrors NotifyContactSubmission for demo requests.
func (n *Notifier) NotifyDemoRequest(r *models.DemoRequest) {
	var wg sync.WaitGroup

	if n.telegram != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := n.telegram.Send(FormatDemoRequest(r)); err != nil {
				LogError("telegram_notification", err, map[string]interface{}{
					"submission_id": r.ID,
					"type":          "demo",
				})
			}
		}()
	}

	if n.mailer != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			subject := "🎯 Nouvelle demande de démonstration - TaalimFlow"
			data := demoEmailData{
				Subject:          subject,
				Name:             r.Name,
				Email:            r.Email,
				Phone:            orPlaceholder(r.Phone, notProvided),
				SchoolName:       orPlaceholder(r.SchoolName, notProvided),
				SchoolType:       orPlaceholder(r.SchoolType, notProvided),
				NumberOfStudents: orPlaceholder(r.NumberOfStudents, notProvided),
				SubmittedAt:      formatTimestamp(r.SubmittedAt),
			}
			text := fmt.Sprintf(`Nouvelle demande de démonstration / New Demo Request

Nom/Name: %s
Email: %s
Téléphone/Phone: %s
École/School: %s
Type d'école/School Type: %s
Nombre d'étudiants/Students: %s

Soumis le/Submitted at: %s`,
				data.Name, data.Email, data.Phone, data.SchoolName, data.SchoolType,
				data.NumberOfStudents, data.SubmittedAt)

			if err := n.mailer.Send(subject, "demo_request", text, data); err != nil {
				LogError("email_notification", err, map[string]interface{}{
					"submission_id": r.ID,
					"type":          "demo",
				})
			}
		}()
	}

	wg.Wait()
}
