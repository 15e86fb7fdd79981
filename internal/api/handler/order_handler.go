package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vperfumes/order-tracking/internal/api/metrics"
	"github.com/vperfumes/order-tracking/internal/core/domain"
	"github.com/vperfumes/order-tracking/internal/core/ports"
)

// OrderHandler handles HTTP requests for order operations.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// List handles GET /api/orders — the caller's visible orders, newest first.
//
// @Summary      List orders
// @Tags         orders
// @Produce      json
// @Success      200  {array}   orderResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	orders, err := h.service.List(c.Request().Context(), ident)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderResponses(orders))
}

// Create handles POST /api/orders.
//
// @Summary      Create an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body      createOrderRequest  true  "Order details"
// @Success      201   {object}  orderResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	order, err := h.service.Create(c.Request().Context(), ident, toCreateInput(req))
	if err != nil {
		if errors.Is(err, domain.ErrCompanyNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "company not found"})
		}
		return err
	}
	metrics.OrdersCreatedTotal.WithLabelValues(string(order.Status)).Inc()

	return c.JSON(http.StatusCreated, toOrderResponse(order))
}

// Report handles GET /api/orders/report?date=YYYY-MM-DD (admin-only route).
//
// @Summary      Daily report of closed orders
// @Tags         orders
// @Produce      json
// @Param        date  query     string  true  "Date (YYYY-MM-DD)"
// @Success      200   {array}   orderResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/orders/report [get]
func (h *OrderHandler) Report(c echo.Context) error {
	date := c.QueryParam("date")
	if date == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "date query parameter is required"})
	}

	orders, err := h.service.Report(c.Request().Context(), date)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidDate) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		return err
	}
	return c.JSON(http.StatusOK, toOrderResponses(orders))
}

// Update handles PUT /api/orders/:id — a partial patch with diff tracking.
//
// @Summary      Update an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id    path      string              true  "Order id"
// @Param        body  body      updateOrderRequest  true  "Changed fields"
// @Success      200   {object}  orderResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/orders/{id} [put]
func (h *OrderHandler) Update(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	order, err := h.service.Update(c.Request().Context(), ident, c.Param("id"), toUpdateInput(req))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOrderNotFound):
			return c.JSON(http.StatusNotFound, errorResponse{Error: "order not found"})
		case errors.Is(err, domain.ErrForbidden):
			return c.JSON(http.StatusForbidden, errorResponse{Error: "you do not have permission to modify this order"})
		}
		return err
	}
	return c.JSON(http.StatusOK, toOrderResponse(order))
}

// Delete handles DELETE /api/orders/:id.
//
// @Summary      Delete an order
// @Tags         orders
// @Produce      json
// @Param        id  path  string  true  "Order id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/orders/{id} [delete]
func (h *OrderHandler) Delete(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), ident, c.Param("id")); err != nil {
		switch {
		case errors.Is(err, domain.ErrOrderNotFound):
			return c.JSON(http.StatusNotFound, errorResponse{Error: "order not found"})
		case errors.Is(err, domain.ErrForbidden):
			return c.JSON(http.StatusForbidden, errorResponse{Error: "you do not have permission to delete this order"})
		}
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Order deleted successfully"})
}

// History handles GET /api/orders/:id/history (admin-only route).
// Entries survive the order's deletion, so this never 404s on a missing
// order — an unknown id simply has an empty trail.
//
// @Summary      Order audit history
// @Tags         orders
// @Produce      json
// @Param        id  path  string  true  "Order id"
// @Success      200  {array}   historyEntryResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/orders/{id}/history [get]
func (h *OrderHandler) History(c echo.Context) error {
	entries, err := h.service.History(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toHistoryResponses(entries))
}

// Stats handles GET /api/stats — role-scoped order counters.
//
// @Summary      Order counters
// @Tags         orders
// @Produce      json
// @Success      200  {object}  statsResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/stats [get]
func (h *OrderHandler) Stats(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	counts, err := h.service.Stats(c.Request().Context(), ident)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statsResponse(counts))
}
