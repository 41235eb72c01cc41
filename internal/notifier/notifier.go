// Package notifier persists notification records and optionally mails
// them out. Delivery is best-effort: a failure here is logged and never
// turns a successful primary operation into an error.
package notifier

import (
	"fmt"

	"task-tracker-backend/internal/model"
	"task-tracker-backend/internal/repository"

	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"
)

type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewMailer returns nil when host is empty, which disables email.
func NewMailer(host string, port int, user, pass, from string) *Mailer {
	if host == "" {
		return nil
	}
	return &Mailer{dialer: gomail.NewDialer(host, port, user, pass), from: from}
}

func (m *Mailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	return m.dialer.DialAndSend(msg)
}

type Notifier struct {
	repo     repository.NotificationRepository
	userRepo repository.UserRepository
	mailer   *Mailer
	log      zerolog.Logger
}

func New(repo repository.NotificationRepository, userRepo repository.UserRepository, mailer *Mailer, log zerolog.Logger) *Notifier {
	return &Notifier{repo: repo, userRepo: userRepo, mailer: mailer, log: log}
}

// Notify writes one notification for each recipient. It never returns
// an error.
func (n *Notifier) Notify(recipientIDs []uint, typ model.NotificationType, title, message string, relatedID uint) {
	if len(recipientIDs) == 0 {
		return
	}

	notifications := make([]model.Notification, 0, len(recipientIDs))
	for _, id := range recipientIDs {
		notifications = append(notifications, model.Notification{
			RecipientID: id,
			Type:        typ,
			Title:       title,
			Message:     message,
			RelatedID:   relatedID,
		})
	}

	if err := n.repo.CreateMany(notifications); err != nil {
		n.log.Error().Err(err).
			Str("type", string(typ)).
			Int("recipients", len(recipientIDs)).
			Msg("failed to persist notifications")
		return
	}

	if n.mailer == nil {
		return
	}
	for _, id := range recipientIDs {
		n.mail(id, title, message)
	}
}

func (n *Notifier) mail(recipientID uint, subject, body string) {
	user, err := n.userRepo.FindByID(recipientID)
	if err != nil {
		n.log.Warn().Err(err).Uint("recipient_id", recipientID).Msg("skipping notification email, recipient lookup failed")
		return
	}
	if err := n.mailer.Send(user.Email, subject, body); err != nil {
		n.log.Warn().Err(err).Str("to", user.Email).Msg(fmt.Sprintf("notification email failed: %s", subject))
	}
}
