package ports

import (
	"context"
	"time"

	"github.com/vperfumes/order-tracking/internal/core/domain"
)

// OrderRepository defines persistence operations over the orders
// collection. All reads project away the store's native primary key.
type OrderRepository interface {
	Insert(ctx context.Context, o *domain.Order) error
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	// SetFields applies a field-level $set of the given fields (bson
	// names). Concurrent disjoint updates must both survive.
	SetFields(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
	// List returns orders sorted by created_at descending. An empty
	// companyID means no tenant filter (admin).
	List(ctx context.Context, companyID string) ([]domain.Order, error)
	// FindClosedBetween returns orders with status completed or
	// cancelled whose created_at falls inside [start, end].
	FindClosedBetween(ctx context.Context, start, end time.Time) ([]domain.Order, error)
	// CountByStatus returns order counters, optionally scoped to a company.
	CountByStatus(ctx context.Context, companyID string) (domain.StatusCounts, error)
}
