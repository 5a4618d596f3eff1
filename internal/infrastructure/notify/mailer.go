package notify

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/jhoicas/store-api/internal/application/ports"
	"github.com/jhoicas/store-api/pkg/config"
)

var _ ports.ResetNotifier = (*SMTPNotifier)(nil)

// SMTPNotifier entrega tokens de reseteo por correo usando gomail.
// El envío es sincrónico pero acotado por el contexto del caller.
type SMTPNotifier struct {
	cfg config.SMTPConfig
}

// NewSMTPNotifier construye el adaptador SMTP.
func NewSMTPNotifier(cfg config.SMTPConfig) *SMTPNotifier {
	return &SMTPNotifier{cfg: cfg}
}

// SendResetToken envía el token al email del usuario.
func (n *SMTPNotifier) SendResetToken(ctx context.Context, email, token string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", n.cfg.From)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Password reset")
	m.SetBody("text/plain", fmt.Sprintf(
		"Use this token to reset your password (valid for 1 hour): %s", token,
	))

	d := gomail.NewDialer(n.cfg.Host, n.cfg.Port, n.cfg.User, n.cfg.Password)

	// gomail no acepta contexto; respetar la cancelación envolviendo el envío.
	done := make(chan error, 1)
	go func() { done <- d.DialAndSend(m) }()
	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("enviar email de reseteo: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
