package ports

import (
	"context"

	"github.com/vperfumes/order-tracking/internal/core/domain"
)

// CreateOrderInput carries all data needed to create an order.
// CompanyName is consulted only for admin callers; company callers get
// their tenant identity applied regardless of what the client sent.
type CreateOrderInput struct {
	OrderNumber   string
	CustomerName  string
	CustomerPhone string
	DeliveryArea  string
	OrderPrice    float64
	DeliveryCost  float64
	Status        domain.OrderStatus
	OrderDate     string
	Notes         string
	CompanyName   string
}

// UpdateOrderInput is a partial patch: nil fields were not provided and
// must not participate in the diff.
type UpdateOrderInput struct {
	OrderNumber   *string
	CustomerName  *string
	CustomerPhone *string
	DeliveryArea  *string
	OrderPrice    *float64
	DeliveryCost  *float64
	Status        *domain.OrderStatus
	OrderDate     *string
	Notes         *string
}

// OrderService defines the role-scoped order use-cases.
type OrderService interface {
	Create(ctx context.Context, ident domain.Identity, in CreateOrderInput) (*domain.Order, error)
	Update(ctx context.Context, ident domain.Identity, orderID string, in UpdateOrderInput) (*domain.Order, error)
	Delete(ctx context.Context, ident domain.Identity, orderID string) error
	List(ctx context.Context, ident domain.Identity) ([]domain.Order, error)
	// Report returns completed/cancelled orders created on the given
	// UTC calendar day (YYYY-MM-DD).
	Report(ctx context.Context, date string) ([]domain.Order, error)
	Stats(ctx context.Context, ident domain.Identity) (domain.StatusCounts, error)
	History(ctx context.Context, orderID string) ([]domain.OrderHistory, error)
}
