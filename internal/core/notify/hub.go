// Package notify implements the per-company real-time fan-out. A single
// goroutine owns the connection registry; registration, removal and
// broadcast are messages into that goroutine, so membership reads and
// writes never race.
package notify

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/vperfumes/order-tracking/internal/api/metrics"
	"github.com/vperfumes/order-tracking/internal/core/domain"
)

const queueBuffer = 256

// Conn is the transport-side of one live subscriber connection. The hub
// is the only writer; implementations need not be safe for concurrent
// writes.
type Conn interface {
	WriteJSON(v any) error
	Close() error
}

// Event is the wire shape pushed to subscribers.
type Event struct {
	Type    string        `json:"type"`
	Message string        `json:"message"`
	Order   *domain.Order `json:"order"`
}

type registration struct {
	companyID string
	conn      Conn
}

type broadcast struct {
	companyID string
	event     Event
}

// Hub maintains company_id → set of open connections. The registry is
// process-local and rebuilt from zero on restart; delivery is
// best-effort, at-most-once, with no buffering for offline tenants.
type Hub struct {
	registerCh   chan registration
	unregisterCh chan registration
	broadcastCh  chan broadcast
	log          zerolog.Logger
}

func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		registerCh:   make(chan registration, queueBuffer),
		unregisterCh: make(chan registration, queueBuffer),
		broadcastCh:  make(chan broadcast, queueBuffer),
		log:          log,
	}
}

// Run owns the registry until ctx is cancelled. Start it exactly once.
func (h *Hub) Run(ctx context.Context) {
	conns := make(map[string]map[Conn]struct{})

	for {
		select {
		case <-ctx.Done():
			for _, set := range conns {
				for c := range set {
					_ = c.Close()
				}
			}
			return

		case r := <-h.registerCh:
			set, ok := conns[r.companyID]
			if !ok {
				set = make(map[Conn]struct{})
				conns[r.companyID] = set
			}
			set[r.conn] = struct{}{}
			metrics.ActiveConnections.Inc()
			h.log.Debug().Str("company_id", r.companyID).Int("connections", len(set)).Msg("subscriber attached")

		case r := <-h.unregisterCh:
			h.drop(conns, r.companyID, r.conn)

		case b := <-h.broadcastCh:
			for c := range conns[b.companyID] {
				if err := c.WriteJSON(b.event); err != nil {
					// One dead connection must not affect the rest.
					metrics.NotificationsTotal.WithLabelValues("failed").Inc()
					h.log.Warn().Err(err).Str("company_id", b.companyID).Msg("notification send failed, dropping connection")
					h.drop(conns, b.companyID, c)
					continue
				}
				metrics.NotificationsTotal.WithLabelValues("sent").Inc()
			}
		}
	}
}

// Register attaches a connection to the company's set after a
// successful handshake.
func (h *Hub) Register(companyID string, c Conn) {
	h.registerCh <- registration{companyID: companyID, conn: c}
}

// Unregister removes a connection when its transport terminates.
func (h *Hub) Unregister(companyID string, c Conn) {
	h.unregisterCh <- registration{companyID: companyID, conn: c}
}

// OrderCreated implements ports.Notifier. The enqueue never blocks the
// triggering request: when the hub is saturated the event is dropped.
func (h *Hub) OrderCreated(order *domain.Order) {
	b := broadcast{
		companyID: order.CompanyID,
		event: Event{
			Type:    "new_order",
			Message: "You have a new order",
			Order:   order,
		},
	}
	select {
	case h.broadcastCh <- b:
	default:
		metrics.NotificationsTotal.WithLabelValues("dropped").Inc()
		h.log.Warn().Str("company_id", order.CompanyID).Msg("notification queue full, event dropped")
	}
}

// drop is only called from Run. Empty sets are pruned to bound memory.
func (h *Hub) drop(conns map[string]map[Conn]struct{}, companyID string, c Conn) {
	set, ok := conns[companyID]
	if !ok {
		return
	}
	if _, member := set[c]; !member {
		return
	}
	delete(set, c)
	_ = c.Close()
	metrics.ActiveConnections.Dec()
	if len(set) == 0 {
		delete(conns, companyID)
	}
	h.log.Debug().Str("company_id", companyID).Msg("subscriber detached")
}
