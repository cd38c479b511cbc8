package facades

import (
	"context"
	"fmt"
	"strings"

	"github.com/wneessen/go-mail"

	"github.com/sbilibin2017/paperplane-redeem/internal/logger"
)

// MailConfig describes the outbound SMTP account.
type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	// TLS is one of "mandatory", "opportunistic" or "none".
	TLS string
}

// MailFacade sends HTML email through an SMTP server.
type MailFacade struct {
	client *mail.Client
	from   string
}

// NewMailFacade creates a facade for the configured SMTP account.
// No connection is made until the first message is sent.
func NewMailFacade(cfg MailConfig) (*MailFacade, error) {
	policy, err := tlsPolicy(cfg.TLS)
	if err != nil {
		return nil, err
	}

	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(policy),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}

	from := cfg.From
	if from == "" {
		from = cfg.Username
	}
	return &MailFacade{client: client, from: from}, nil
}

// Send delivers one HTML message to a single recipient.
func (f *MailFacade) Send(ctx context.Context, to, subject, html string) error {
	msg, err := newMessage(f.from, to, subject, html)
	if err != nil {
		return err
	}

	if err := f.client.DialAndSendWithContext(ctx, msg); err != nil {
		logger.Log.Errorw("smtp delivery failed", "to", to, "subject", subject, "error", err)
		return err
	}

	logger.Log.Infow("smtp delivery accepted", "to", to, "subject", subject)
	return nil
}

// Close releases the transport. Connections are opened and closed per message,
// so there is nothing left open between sends.
func (f *MailFacade) Close() error {
	return nil
}

func newMessage(from, to, subject, html string) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(from); err != nil {
		return nil, fmt.Errorf("invalid sender %q: %w", from, err)
	}
	if err := msg.To(to); err != nil {
		return nil, fmt.Errorf("invalid recipient %q: %w", to, err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, html)
	return msg, nil
}

func tlsPolicy(s string) (mail.TLSPolicy, error) {
	switch strings.ToLower(s) {
	case "", "mandatory":
		return mail.TLSMandatory, nil
	case "opportunistic":
		return mail.TLSOpportunistic, nil
	case "none":
		return mail.NoTLS, nil
	default:
		return mail.NoTLS, fmt.Errorf("unknown smtp tls policy %q", s)
	}
}
