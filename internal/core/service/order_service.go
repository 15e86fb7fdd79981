package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/vperfumes/order-tracking/internal/core/domain"
	"github.com/vperfumes/order-tracking/internal/core/ports"
)

// OrderService implements the role-scoped order use-cases: CRUD with
// ownership checks, field-level audit history, daily reporting and
// tenant stats.
type OrderService struct {
	orders   ports.OrderRepository
	history  ports.HistoryRepository
	users    ports.UserRepository
	notifier ports.Notifier
	log      zerolog.Logger
}

func NewOrderService(
	orders ports.OrderRepository,
	history ports.HistoryRepository,
	users ports.UserRepository,
	notifier ports.Notifier,
	log zerolog.Logger,
) *OrderService {
	return &OrderService{orders: orders, history: history, users: users, notifier: notifier, log: log}
}

// Create stores a new order. Company callers own the order regardless of
// any client-supplied tenant fields; admin callers must name an existing
// company. A "created" history entry and a best-effort notification are
// emitted after the write.
func (s *OrderService) Create(ctx context.Context, ident domain.Identity, in ports.CreateOrderInput) (*domain.Order, error) {
	var companyID, companyName string
	switch ident.Role {
	case domain.RoleCompany:
		companyID = ident.ID
		companyName = ident.CompanyName
	case domain.RoleAdmin:
		company, err := s.users.FindCompanyByName(ctx, in.CompanyName)
		if err != nil {
			return nil, fmt.Errorf("create order: %w", err)
		}
		companyID = company.ID
		companyName = company.CompanyName
	default:
		return nil, domain.ErrForbidden
	}

	now := time.Now().UTC()
	order := &domain.Order{
		ID:            uuid.NewString(),
		OrderNumber:   in.OrderNumber,
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		DeliveryArea:  in.DeliveryArea,
		OrderPrice:    in.OrderPrice,
		DeliveryCost:  in.DeliveryCost,
		Status:        in.Status,
		OrderDate:     in.OrderDate,
		Notes:         in.Notes,
		CompanyID:     companyID,
		CompanyName:   companyName,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.orders.Insert(ctx, order); err != nil {
		s.log.Error().Err(err).Str("order_number", order.OrderNumber).Msg("failed to insert order")
		return nil, err
	}

	s.recordHistory(ctx, &domain.OrderHistory{
		ID:        uuid.NewString(),
		OrderID:   order.ID,
		Action:    domain.ActionCreated,
		Changes:   orderSnapshot(order),
		UserID:    ident.ID,
		Username:  ident.Username,
		Timestamp: time.Now().UTC(),
	})

	s.notifier.OrderCreated(order)

	s.log.Info().
		Str("order_id", order.ID).
		Str("company_id", order.CompanyID).
		Msg("order created")

	return order, nil
}

// Update applies a partial patch. Existence is confirmed before
// ownership so a foreign order yields Forbidden, not NotFound. An empty
// diff returns the current order without touching history or updated_at.
func (s *OrderService) Update(ctx context.Context, ident domain.Identity, orderID string, in ports.UpdateOrderInput) (*domain.Order, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if ident.Role == domain.RoleCompany && order.CompanyID != ident.ID {
		return nil, domain.ErrForbidden
	}

	fields, changes := diffOrder(order, in)
	if len(changes) == 0 {
		return order, nil
	}

	fields["updated_at"] = time.Now().UTC()
	if err := s.orders.SetFields(ctx, orderID, fields); err != nil {
		return nil, err
	}

	historyChanges := make(map[string]any, len(changes))
	for field, change := range changes {
		historyChanges[field] = change
	}
	s.recordHistory(ctx, &domain.OrderHistory{
		ID:        uuid.NewString(),
		OrderID:   orderID,
		Action:    domain.ActionUpdated,
		Changes:   historyChanges,
		UserID:    ident.ID,
		Username:  ident.Username,
		Timestamp: time.Now().UTC(),
	})

	return s.orders.FindByID(ctx, orderID)
}

// Delete hard-deletes the order; its last full snapshot survives only
// inside the "deleted" history entry.
func (s *OrderService) Delete(ctx context.Context, ident domain.Identity, orderID string) error {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	if ident.Role == domain.RoleCompany && order.CompanyID != ident.ID {
		return domain.ErrForbidden
	}

	if err := s.orders.Delete(ctx, orderID); err != nil {
		return err
	}

	s.recordHistory(ctx, &domain.OrderHistory{
		ID:        uuid.NewString(),
		OrderID:   orderID,
		Action:    domain.ActionDeleted,
		Changes:   map[string]any{"order": orderSnapshot(order)},
		UserID:    ident.ID,
		Username:  ident.Username,
		Timestamp: time.Now().UTC(),
	})

	s.log.Info().Str("order_id", orderID).Str("username", ident.Username).Msg("order deleted")
	return nil
}

// List returns the caller's visible orders, newest first.
func (s *OrderService) List(ctx context.Context, ident domain.Identity) ([]domain.Order, error) {
	companyID := ""
	if ident.Role == domain.RoleCompany {
		companyID = ident.ID
	}
	return s.orders.List(ctx, companyID)
}

// Report returns completed/cancelled orders created inside the UTC
// calendar day named by date (YYYY-MM-DD).
func (s *OrderService) Report(ctx context.Context, date string) ([]domain.Order, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("%w: use YYYY-MM-DD", domain.ErrInvalidDate)
	}

	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24*time.Hour - time.Nanosecond)

	return s.orders.FindClosedBetween(ctx, start, end)
}

// Stats returns role-scoped order counters.
func (s *OrderService) Stats(ctx context.Context, ident domain.Identity) (domain.StatusCounts, error) {
	companyID := ""
	if ident.Role == domain.RoleCompany {
		companyID = ident.ID
	}
	return s.orders.CountByStatus(ctx, companyID)
}

// History returns the audit trail of an order, newest first. Entries
// remain retrievable after the order itself is gone.
func (s *OrderService) History(ctx context.Context, orderID string) ([]domain.OrderHistory, error) {
	return s.history.FindByOrderID(ctx, orderID)
}

// recordHistory writes an audit entry. A failure is logged and
// swallowed: the order mutation already succeeded and is not rolled
// back, leaving a documented inconsistency window.
func (s *OrderService) recordHistory(ctx context.Context, h *domain.OrderHistory) {
	if err := s.history.Insert(ctx, h); err != nil {
		s.log.Warn().Err(err).
			Str("order_id", h.OrderID).
			Str("action", string(h.Action)).
			Msg("failed to insert history entry")
	}
}

// diffOrder compares the provided patch fields against the stored order.
// It returns the bson field set to persist and the old/new pairs to
// record; both are empty when nothing effectively changed. Field names
// double as history keys since json and bson tags agree.
func diffOrder(o *domain.Order, in ports.UpdateOrderInput) (map[string]any, map[string]domain.FieldChange) {
	fields := make(map[string]any)
	changes := make(map[string]domain.FieldChange)

	set := func(name string, oldVal, newVal any, differs bool) {
		if !differs {
			return
		}
		fields[name] = newVal
		changes[name] = domain.FieldChange{Old: oldVal, New: newVal}
	}

	if in.OrderNumber != nil {
		set("order_number", o.OrderNumber, *in.OrderNumber, *in.OrderNumber != o.OrderNumber)
	}
	if in.CustomerName != nil {
		set("customer_name", o.CustomerName, *in.CustomerName, *in.CustomerName != o.CustomerName)
	}
	if in.CustomerPhone != nil {
		set("customer_phone", o.CustomerPhone, *in.CustomerPhone, *in.CustomerPhone != o.CustomerPhone)
	}
	if in.DeliveryArea != nil {
		set("delivery_area", o.DeliveryArea, *in.DeliveryArea, *in.DeliveryArea != o.DeliveryArea)
	}
	if in.OrderPrice != nil {
		set("order_price", o.OrderPrice, *in.OrderPrice, *in.OrderPrice != o.OrderPrice)
	}
	if in.DeliveryCost != nil {
		set("delivery_cost", o.DeliveryCost, *in.DeliveryCost, *in.DeliveryCost != o.DeliveryCost)
	}
	if in.Status != nil {
		set("status", string(o.Status), string(*in.Status), *in.Status != o.Status)
	}
	if in.OrderDate != nil {
		set("order_date", o.OrderDate, *in.OrderDate, *in.OrderDate != o.OrderDate)
	}
	if in.Notes != nil {
		set("notes", o.Notes, *in.Notes, *in.Notes != o.Notes)
	}

	return fields, changes
}

// orderSnapshot flattens an order into the map stored inside "created"
// and "deleted" history entries (the store's native key never appears).
func orderSnapshot(o *domain.Order) map[string]any {
	return map[string]any{
		"id":             o.ID,
		"order_number":   o.OrderNumber,
		"customer_name":  o.CustomerName,
		"customer_phone": o.CustomerPhone,
		"delivery_area":  o.DeliveryArea,
		"order_price":    o.OrderPrice,
		"delivery_cost":  o.DeliveryCost,
		"status":         string(o.Status),
		"order_date":     o.OrderDate,
		"notes":          o.Notes,
		"company_id":     o.CompanyID,
		"company_name":   o.CompanyName,
		"created_at":     o.CreatedAt,
		"updated_at":     o.UpdatedAt,
	}
}
