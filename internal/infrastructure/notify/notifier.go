package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/notes-api/config"
	"github.com/oksasatya/notes-api/internal/application"
	"github.com/oksasatya/notes-api/pkg/mailer"
	"github.com/oksasatya/notes-api/pkg/mailer/templates"
)

// Publisher is satisfied by helpers.RabbitPublisher
type Publisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// JobSender is satisfied by mailer.Mailgun
type JobSender interface {
	SendJob(ctx context.Context, job mailer.EmailJob) error
}

const publishTimeout = 5 * time.Second

// SignupCodeJob builds the email job for a signup code
func SignupCodeJob(cfg *config.Config, msg application.SignupCode) mailer.EmailJob {
	opts := []templates.Option{
		templates.WithExpiresIn(msg.ExpiresIn),
		templates.WithTime(time.Now()),
	}
	if msg.IP != "" {
		opts = append(opts, templates.WithIP(msg.IP))
	}
	if msg.UserAgent != "" {
		opts = append(opts, templates.WithUserAgent(msg.UserAgent))
	}
	return mailer.EmailJob{
		To:       msg.Email,
		Template: templates.SignupOTP,
		Data:     templates.NewSignupOTPData(cfg, msg.Name, msg.Email, msg.Code, opts...),
	}
}

// QueueNotifier hands signup codes to the email worker through RabbitMQ
type QueueNotifier struct {
	Cfg       *config.Config
	Publisher Publisher
}

func NewQueueNotifier(cfg *config.Config, p Publisher) *QueueNotifier {
	return &QueueNotifier{Cfg: cfg, Publisher: p}
}

func (n *QueueNotifier) SendSignupCode(ctx context.Context, msg application.SignupCode) error {
	if n.Publisher == nil {
		return fmt.Errorf("email queue unavailable")
	}
	c, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()
	if err := n.Publisher.PublishJSON(c, SignupCodeJob(n.Cfg, msg)); err != nil {
		return fmt.Errorf("publish email job: %w", err)
	}
	return nil
}

// MailgunNotifier sends signup codes inline, without the queue
type MailgunNotifier struct {
	Cfg    *config.Config
	Sender JobSender
}

func NewMailgunNotifier(cfg *config.Config, s JobSender) *MailgunNotifier {
	return &MailgunNotifier{Cfg: cfg, Sender: s}
}

func (n *MailgunNotifier) SendSignupCode(ctx context.Context, msg application.SignupCode) error {
	if err := n.Sender.SendJob(ctx, SignupCodeJob(n.Cfg, msg)); err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	return nil
}

// LogNotifier writes the code to the log. Local development only.
type LogNotifier struct {
	Logger *logrus.Logger
}

func NewLogNotifier(logger *logrus.Logger) *LogNotifier {
	return &LogNotifier{Logger: logger}
}

func (n *LogNotifier) SendSignupCode(_ context.Context, msg application.SignupCode) error {
	if n.Logger == nil {
		return nil
	}
	n.Logger.WithFields(logrus.Fields{
		"email":      msg.Email,
		"code":       msg.Code,
		"expires_in": msg.ExpiresIn.String(),
	}).Info("signup code")
	return nil
}

var (
	_ application.Notifier = (*QueueNotifier)(nil)
	_ application.Notifier = (*MailgunNotifier)(nil)
	_ application.Notifier = (*LogNotifier)(nil)
)
