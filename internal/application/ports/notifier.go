package ports

import "context"

// ResetNotifier define el puerto de salida para entregar tokens de reseteo de
// password fuera de banda (email/SMS). Cualquier adaptador (SMTP, mock) debe
// implementar esta interfaz; la aplicación solo conoce este contrato (DIP).
type ResetNotifier interface {
	// SendResetToken entrega el token al destinatario. El contexto debe llevar
	// un timeout para evitar bloqueos en llamadas externas.
	SendResetToken(ctx context.Context, email, token string) error
}
