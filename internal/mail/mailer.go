package mail

import (
	"context"
	"fmt"
	"log"

	"jobdeck/internal/config"

	gomail "github.com/wneessen/go-mail"
)

// Mailer sends approval decision notices and generated application kits
// over SMTP. Without SMTP configuration it degrades to a logged no-op so
// local setups work without a relay.
type Mailer struct {
	client *gomail.Client
	from   string
	logger *log.Logger
}

func NewMailer(cfg config.SMTPConfig, logger *log.Logger) *Mailer {
	if cfg.Host == "" || cfg.From == "" {
		if logger != nil {
			logger.Printf("[Mail] SMTP not configured, mail delivery disabled")
		}
		return &Mailer{logger: logger}
	}

	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		if logger != nil {
			logger.Printf("[Mail] SMTP client init failed, mail delivery disabled | err=%v", err)
		}
		return &Mailer{logger: logger}
	}

	return &Mailer{client: client, from: cfg.From, logger: logger}
}

// Enabled reports whether an SMTP relay is configured.
func (m *Mailer) Enabled() bool {
	return m != nil && m.client != nil
}

func (m *Mailer) SendApprovalDecision(ctx context.Context, to string, approved bool) error {
	if m == nil || m.client == nil {
		return nil
	}

	subject := "Your account has been approved"
	body := "Good news: an administrator approved your account. You can now use the job dashboard."
	if !approved {
		subject = "Your account request was declined"
		body = "An administrator reviewed your account request and declined it. Reply to this mail if you believe this is a mistake."
	}

	msg := gomail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("set from: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("set to: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	if m.logger != nil {
		m.logger.Printf("[Mail] Decision mail sent | to=%s approved=%t", to, approved)
	}
	return nil
}

// KitMessage carries the plain-text pieces of a generated application kit.
type KitMessage struct {
	JobTitle        string
	Company         string
	ResumeSummary   string
	CoverLetter     string
	OutreachMessage string
}

func (m *Mailer) SendKit(ctx context.Context, to string, km KitMessage) error {
	if m == nil || m.client == nil {
		return nil
	}

	subject := fmt.Sprintf("Application kit: %s at %s", km.JobTitle, km.Company)
	body := fmt.Sprintf(
		"Your application kit for %s at %s.\n\n== Resume summary ==\n%s\n\n== Cover letter ==\n%s\n\n== Outreach message ==\n%s\n",
		km.JobTitle, km.Company, km.ResumeSummary, km.CoverLetter, km.OutreachMessage,
	)

	msg := gomail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("set from: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("set to: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	if m.logger != nil {
		m.logger.Printf("[Mail] Kit mail sent | to=%s job=%s", to, km.JobTitle)
	}
	return nil
}
