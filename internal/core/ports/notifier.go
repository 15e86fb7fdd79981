package ports

import "github.com/vperfumes/order-tracking/internal/core/domain"

// Notifier hands order events to the real-time fan-out. Implementations
// must never block the caller and never surface delivery failures.
type Notifier interface {
	OrderCreated(order *domain.Order)
}
