package ports

import (
	"context"

	"github.com/vperfumes/order-tracking/internal/core/domain"
)

// HistoryRepository persists append-only audit records. No update or
// delete operation exists on purpose.
type HistoryRepository interface {
	Insert(ctx context.Context, h *domain.OrderHistory) error
	// FindByOrderID returns all entries for an order, newest first.
	FindByOrderID(ctx context.Context, orderID string) ([]domain.OrderHistory, error)
}
