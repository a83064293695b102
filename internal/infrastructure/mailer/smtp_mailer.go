package mailer

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"

	"dischley_intake/internal/usecase/interfaces"

	"github.com/wneessen/go-mail"
)

var (
	ErrMissingMailCredentials = errors.New("missing MAIL_USERNAME/MAIL_PASSWORD")
	ErrMissingDefaultSender   = errors.New("missing MAIL_DEFAULT_SENDER")
	ErrNoRecipients           = errors.New("no non-empty recipient")
)

// Config carries SMTP settings. The firm's account uses STARTTLS on 587,
// so TLS is mandatory unless the mock mode is on.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	Sender   string
}

// SMTPMailer sends plain-text notifications over SMTP. With MAIL_MOCK set
// it logs instead of dialing, which keeps local runs offline.
type SMTPMailer struct {
	client   *mail.Client
	sender   string
	mockMode bool
}

var _ interfaces.IMailSender = (*SMTPMailer)(nil)

func NewSMTPMailer(cfg Config) (*SMTPMailer, error) {
	if isMailMockEnabled() {
		log.Printf("[mail][dispatcher] mock mode enabled")
		return &SMTPMailer{mockMode: true, sender: cfg.Sender}, nil
	}

	if cfg.Username == "" || cfg.Password == "" {
		log.Printf("[mail][dispatcher] missing MAIL_USERNAME/MAIL_PASSWORD")
		return nil, ErrMissingMailCredentials
	}
	if cfg.Sender == "" {
		log.Printf("[mail][dispatcher] missing MAIL_DEFAULT_SENDER")
		return nil, ErrMissingDefaultSender
	}

	client, err := mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		log.Printf("[mail][dispatcher] failed creating smtp client err=%v", err)
		return nil, err
	}
	log.Printf("[mail][dispatcher] smtp client initialized host=%s port=%d", cfg.Host, cfg.Port)

	return &SMTPMailer{client: client, sender: cfg.Sender}, nil
}

func (m *SMTPMailer) Send(ctx context.Context, out interfaces.OutboundMail) error {
	to := nonEmpty(out.To)
	if len(to) == 0 {
		return ErrNoRecipients
	}

	if m.mockMode {
		log.Printf("[mail][dispatcher] mock send subject=%q to=%v body_len=%d", out.Subject, to, len(out.Body))
		return nil
	}

	msg := mail.NewMsg()
	if err := msg.FromFormat(out.SenderName, m.sender); err != nil {
		return err
	}
	if err := msg.To(to...); err != nil {
		return err
	}
	msg.Subject(out.Subject)
	msg.SetBodyString(mail.TypeTextPlain, out.Body)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		log.Printf("[mail][dispatcher] send failed subject=%q err=%v", out.Subject, err)
		return err
	}
	log.Printf("[mail][dispatcher] send success subject=%q to=%v", out.Subject, to)
	return nil
}

func nonEmpty(addrs []string) []string {
	out := make([]string, 0, len(addrs))
	for _, a := range addrs {
		if strings.TrimSpace(a) != "" {
			out = append(out, a)
		}
	}
	return out
}

func isMailMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("MAIL_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
