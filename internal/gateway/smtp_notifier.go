package gateway

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/wneessen/go-mail"

	"osg-reconciler/internal/config"
	"osg-reconciler/internal/domain"
)

// SMTPNotifier sends claim emails through an SMTP relay, upgrading to TLS when
// the relay offers STARTTLS.
type SMTPNotifier struct {
	cfg    config.SMTPConfig
	logger *logrus.Logger
}

func NewSMTPNotifier(cfg config.SMTPConfig, logger *logrus.Logger) *SMTPNotifier {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &SMTPNotifier{cfg: cfg, logger: logger}
}

// Send delivers the email to the configured claim desk, copying every CC address.
func (n *SMTPNotifier) Send(ctx context.Context, email domain.ClaimEmail) error {
	from := strings.TrimSpace(n.cfg.From)
	to := strings.TrimSpace(n.cfg.To)
	if from == "" || to == "" {
		return errors.New("smtp: sender and target addresses are required")
	}
	if n.cfg.Host == "" {
		return errors.New("smtp: host is required")
	}

	msg, err := newMessage(from, to, n.cfg.CC, email)
	if err != nil {
		return err
	}

	client, err := mail.NewClient(n.cfg.Host, n.clientOptions()...)
	if err != nil {
		return fmt.Errorf("smtp: client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp: send: %w", err)
	}

	n.logger.WithFields(logrus.Fields{
		"to":          to,
		"cc":          len(n.cfg.CC),
		"attachments": len(email.Attachments),
	}).Info("claim email sent")
	return nil
}

func (n *SMTPNotifier) clientOptions() []mail.Option {
	opts := []mail.Option{
		mail.WithTimeout(n.cfg.Timeout),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if n.cfg.Port > 0 {
		opts = append(opts, mail.WithPort(n.cfg.Port))
	}
	if n.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(n.cfg.Username),
			mail.WithPassword(n.cfg.Password),
		)
	}
	return opts
}

// newMessage builds the HTML claim email with one part per attachment.
func newMessage(from, to string, cc []string, email domain.ClaimEmail) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(from); err != nil {
		return nil, fmt.Errorf("smtp: sender %q: %w", from, err)
	}
	if err := msg.To(to); err != nil {
		return nil, fmt.Errorf("smtp: target %q: %w", to, err)
	}

	var copies []string
	for _, addr := range cc {
		if addr = strings.TrimSpace(addr); addr != "" {
			copies = append(copies, addr)
		}
	}
	if len(copies) > 0 {
		if err := msg.Cc(copies...); err != nil {
			return nil, fmt.Errorf("smtp: cc: %w", err)
		}
	}

	msg.Subject(email.Subject)
	date := email.SubmittedAt
	if date.IsZero() {
		date = time.Now()
	}
	msg.SetDateWithValue(date)
	msg.SetBodyString(mail.TypeTextHTML, email.HTMLBody)

	for _, a := range email.Attachments {
		name := filepath.Base(strings.TrimSpace(a.Filename))
		if name == "" || name == "." || name == string(filepath.Separator) {
			name = "attachment"
		}
		msg.AttachReadSeeker(name, bytes.NewReader(a.Content))
	}
	return msg, nil
}
