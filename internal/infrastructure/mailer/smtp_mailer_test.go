package mailer

import (
	"context"
	"errors"
	"testing"

	"dischley_intake/internal/usecase/interfaces"
)

func TestNewSMTPMailer(t *testing.T) {
	t.Run("missing credentials", func(t *testing.T) {
		t.Setenv("MAIL_MOCK", "")
		_, err := NewSMTPMailer(Config{Host: "smtp.example.com", Port: 587, Sender: "intake@dischleylaw.com"})
		if !errors.Is(err, ErrMissingMailCredentials) {
			t.Fatalf("expected ErrMissingMailCredentials, got %v", err)
		}
	})

	t.Run("missing sender", func(t *testing.T) {
		t.Setenv("MAIL_MOCK", "")
		_, err := NewSMTPMailer(Config{Host: "smtp.example.com", Port: 587, Username: "u", Password: "p"})
		if !errors.Is(err, ErrMissingDefaultSender) {
			t.Fatalf("expected ErrMissingDefaultSender, got %v", err)
		}
	})

	t.Run("mock mode needs no credentials", func(t *testing.T) {
		t.Setenv("MAIL_MOCK", "true")
		m, err := NewSMTPMailer(Config{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		err = m.Send(context.Background(), interfaces.OutboundMail{
			Subject: "New Client Intake Form Submission",
			Body:    "hello",
			To:      []string{"attorneys@dischleylaw.com"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestSMTPMailer_SendRecipients(t *testing.T) {
	t.Setenv("MAIL_MOCK", "true")
	m, err := NewSMTPMailer(Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("no recipients", func(t *testing.T) {
		err := m.Send(context.Background(), interfaces.OutboundMail{Subject: "s", Body: "b"})
		if !errors.Is(err, ErrNoRecipients) {
			t.Fatalf("expected ErrNoRecipients, got %v", err)
		}
	})

	t.Run("only blank recipients", func(t *testing.T) {
		err := m.Send(context.Background(), interfaces.OutboundMail{Subject: "s", Body: "b", To: []string{"", "   "}})
		if !errors.Is(err, ErrNoRecipients) {
			t.Fatalf("expected ErrNoRecipients, got %v", err)
		}
	})
}

func TestNonEmpty(t *testing.T) {
	got := nonEmpty([]string{"a@b.com", "", "  ", "c@d.com"})
	if len(got) != 2 || got[0] != "a@b.com" || got[1] != "c@d.com" {
		t.Fatalf("unexpected recipients: %v", got)
	}
}
