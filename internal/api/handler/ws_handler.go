package handler

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/vperfumes/order-tracking/internal/core/notify"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Browser dashboards connect from a different origin than the API.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WSHandler attaches browser connections to the notification hub.
type WSHandler struct {
	hub *notify.Hub
	log zerolog.Logger
}

func NewWSHandler(hub *notify.Hub, log zerolog.Logger) *WSHandler {
	return &WSHandler{hub: hub, log: log}
}

// Attach handles GET /ws/orders/:company_id. The connection stays
// registered until the client goes away; the read loop exists only to
// detect the close.
func (h *WSHandler) Attach(c echo.Context) error {
	companyID := c.Param("company_id")

	ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		h.log.Warn().Err(err).Str("company_id", companyID).Msg("websocket upgrade failed")
		return nil
	}

	h.hub.Register(companyID, ws)
	defer h.hub.Unregister(companyID, ws)

	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			return nil
		}
	}
}
