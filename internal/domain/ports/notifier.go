package ports

// Eventos publicados no stream de notificações de admins
const (
	NotificationQueryCreated  = "query.created"
	NotificationReviewCreated = "review.created"
)

// Notifier publica eventos de interesse administrativo em tempo real.
// Implementações devem ser não-bloqueantes para o caminho da requisição.
type Notifier interface {
	Broadcast(event string, payload any)
}
