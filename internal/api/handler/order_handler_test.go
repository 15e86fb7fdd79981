package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/vperfumes/order-tracking/internal/api/middleware"
	"github.com/vperfumes/order-tracking/internal/core/domain"
	"github.com/vperfumes/order-tracking/internal/core/ports"
)

type stubOrderService struct {
	createFn  func(ctx context.Context, ident domain.Identity, in ports.CreateOrderInput) (*domain.Order, error)
	updateFn  func(ctx context.Context, ident domain.Identity, orderID string, in ports.UpdateOrderInput) (*domain.Order, error)
	deleteFn  func(ctx context.Context, ident domain.Identity, orderID string) error
	listFn    func(ctx context.Context, ident domain.Identity) ([]domain.Order, error)
	reportFn  func(ctx context.Context, date string) ([]domain.Order, error)
	statsFn   func(ctx context.Context, ident domain.Identity) (domain.StatusCounts, error)
	historyFn func(ctx context.Context, orderID string) ([]domain.OrderHistory, error)
}

func (s *stubOrderService) Create(ctx context.Context, ident domain.Identity, in ports.CreateOrderInput) (*domain.Order, error) {
	return s.createFn(ctx, ident, in)
}

func (s *stubOrderService) Update(ctx context.Context, ident domain.Identity, orderID string, in ports.UpdateOrderInput) (*domain.Order, error) {
	return s.updateFn(ctx, ident, orderID, in)
}

func (s *stubOrderService) Delete(ctx context.Context, ident domain.Identity, orderID string) error {
	return s.deleteFn(ctx, ident, orderID)
}

func (s *stubOrderService) List(ctx context.Context, ident domain.Identity) ([]domain.Order, error) {
	return s.listFn(ctx, ident)
}

func (s *stubOrderService) Report(ctx context.Context, date string) ([]domain.Order, error) {
	return s.reportFn(ctx, date)
}

func (s *stubOrderService) Stats(ctx context.Context, ident domain.Identity) (domain.StatusCounts, error) {
	return s.statsFn(ctx, ident)
}

func (s *stubOrderService) History(ctx context.Context, orderID string) ([]domain.OrderHistory, error) {
	return s.historyFn(ctx, orderID)
}

var testIdent = domain.Identity{ID: "c1", Username: "acme", Role: domain.RoleCompany, CompanyName: "Acme"}

const validOrderBody = `{
	"order_number": "ORD-100",
	"customer_name": "Dana",
	"customer_phone": "+1-555-0100",
	"delivery_area": "Downtown",
	"order_price": 120,
	"delivery_cost": 15,
	"status": "ongoing",
	"order_date": "2026-08-30"
}`

func TestOrderHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubOrderService{
		createFn: func(_ context.Context, ident domain.Identity, in ports.CreateOrderInput) (*domain.Order, error) {
			if ident.ID != "c1" {
				t.Fatalf("identity not forwarded: %+v", ident)
			}
			if in.Status != domain.StatusOngoing || in.OrderNumber != "ORD-100" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.Order{ID: "o1", OrderNumber: in.OrderNumber, Status: in.Status, CompanyID: ident.ID}, nil
		},
	}
	h := NewOrderHandler(stub)

	c, rec := jsonRequest(e, http.MethodPost, "/api/orders", validOrderBody)
	middleware.SetIdentity(c, testIdent)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["id"] != "o1" || resp["status"] != "ongoing" {
		t.Errorf("unexpected body: %+v", resp)
	}
}

func TestOrderHandler_Create_InvalidStatusRejected(t *testing.T) {
	e := newTestEcho()
	h := NewOrderHandler(&stubOrderService{})

	body := `{"order_number":"ORD-1","customer_name":"D","customer_phone":"1","delivery_area":"A","status":"shipped","order_date":"2026-08-30"}`
	c, rec := jsonRequest(e, http.MethodPost, "/api/orders", body)
	middleware.SetIdentity(c, testIdent)

	_ = h.Create(c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestOrderHandler_Create_UnknownCompany(t *testing.T) {
	e := newTestEcho()
	stub := &stubOrderService{
		createFn: func(_ context.Context, _ domain.Identity, _ ports.CreateOrderInput) (*domain.Order, error) {
			return nil, domain.ErrCompanyNotFound
		},
	}
	h := NewOrderHandler(stub)

	c, rec := jsonRequest(e, http.MethodPost, "/api/orders", validOrderBody)
	middleware.SetIdentity(c, domain.Identity{ID: "a1", Role: domain.RoleAdmin})

	_ = h.Create(c)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestOrderHandler_Update_NotFoundBeforeForbidden(t *testing.T) {
	e := newTestEcho()
	stub := &stubOrderService{
		updateFn: func(_ context.Context, _ domain.Identity, orderID string, _ ports.UpdateOrderInput) (*domain.Order, error) {
			if orderID == "missing" {
				return nil, domain.ErrOrderNotFound
			}
			return nil, domain.ErrForbidden
		},
	}
	h := NewOrderHandler(stub)

	c, rec := jsonRequest(e, http.MethodPut, "/api/orders/missing", `{"notes":"x"}`)
	c.SetParamNames("id")
	c.SetParamValues("missing")
	middleware.SetIdentity(c, testIdent)
	_ = h.Update(c)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for a missing order, got %d", rec.Code)
	}

	c, rec = jsonRequest(e, http.MethodPut, "/api/orders/foreign", `{"notes":"x"}`)
	c.SetParamNames("id")
	c.SetParamValues("foreign")
	middleware.SetIdentity(c, testIdent)
	_ = h.Update(c)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for a foreign order, got %d", rec.Code)
	}
}

func TestOrderHandler_Update_PartialPatchForwarded(t *testing.T) {
	e := newTestEcho()
	stub := &stubOrderService{
		updateFn: func(_ context.Context, _ domain.Identity, _ string, in ports.UpdateOrderInput) (*domain.Order, error) {
			if in.Status == nil || *in.Status != domain.StatusCompleted {
				t.Fatalf("status not forwarded: %+v", in)
			}
			if in.OrderNumber != nil {
				t.Error("absent fields must stay nil")
			}
			return &domain.Order{ID: "o1", Status: domain.StatusCompleted}, nil
		},
	}
	h := NewOrderHandler(stub)

	c, rec := jsonRequest(e, http.MethodPut, "/api/orders/o1", `{"status":"completed"}`)
	c.SetParamNames("id")
	c.SetParamValues("o1")
	middleware.SetIdentity(c, testIdent)

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestOrderHandler_Delete_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubOrderService{
		deleteFn: func(_ context.Context, _ domain.Identity, orderID string) error {
			if orderID != "o1" {
				t.Fatalf("unexpected order id %q", orderID)
			}
			return nil
		},
	}
	h := NewOrderHandler(stub)

	c, rec := jsonRequest(e, http.MethodDelete, "/api/orders/o1", "")
	c.SetParamNames("id")
	c.SetParamValues("o1")
	middleware.SetIdentity(c, testIdent)

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestOrderHandler_Report_MissingDate(t *testing.T) {
	e := newTestEcho()
	h := NewOrderHandler(&stubOrderService{})

	c, rec := jsonRequest(e, http.MethodGet, "/api/orders/report", "")
	_ = h.Report(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestOrderHandler_Report_InvalidDate(t *testing.T) {
	e := newTestEcho()
	stub := &stubOrderService{
		reportFn: func(_ context.Context, _ string) ([]domain.Order, error) {
			return nil, domain.ErrInvalidDate
		},
	}
	h := NewOrderHandler(stub)

	c, rec := jsonRequest(e, http.MethodGet, "/api/orders/report?date=garbage", "")
	_ = h.Report(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestOrderHandler_Stats(t *testing.T) {
	e := newTestEcho()
	stub := &stubOrderService{
		statsFn: func(_ context.Context, _ domain.Identity) (domain.StatusCounts, error) {
			return domain.StatusCounts{Total: 3, Ongoing: 1, Completed: 1, Cancelled: 1}, nil
		},
	}
	h := NewOrderHandler(stub)

	c, rec := jsonRequest(e, http.MethodGet, "/api/stats", "")
	middleware.SetIdentity(c, testIdent)

	if err := h.Stats(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp statsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Total != 3 || resp.Ongoing != 1 {
		t.Errorf("unexpected counters: %+v", resp)
	}
}

func TestOrderHandler_History_EmptyTrailIsOK(t *testing.T) {
	e := newTestEcho()
	stub := &stubOrderService{
		historyFn: func(_ context.Context, orderID string) ([]domain.OrderHistory, error) {
			return nil, nil
		},
	}
	h := NewOrderHandler(stub)

	c, rec := jsonRequest(e, http.MethodGet, "/api/orders/ghost/history", "")
	c.SetParamNames("id")
	c.SetParamValues("ghost")

	if err := h.History(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("history must not 404 on unknown orders, got %d", rec.Code)
	}
}
