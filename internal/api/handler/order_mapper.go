package handler

import (
	"github.com/vperfumes/order-tracking/internal/core/domain"
	"github.com/vperfumes/order-tracking/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createOrderRequest) ports.CreateOrderInput {
	return ports.CreateOrderInput{
		OrderNumber:   req.OrderNumber,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		DeliveryArea:  req.DeliveryArea,
		OrderPrice:    req.OrderPrice,
		DeliveryCost:  req.DeliveryCost,
		Status:        domain.OrderStatus(req.Status),
		OrderDate:     req.OrderDate,
		Notes:         req.Notes,
		CompanyName:   req.CompanyName,
	}
}

func toUpdateInput(req updateOrderRequest) ports.UpdateOrderInput {
	in := ports.UpdateOrderInput{
		OrderNumber:   req.OrderNumber,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		DeliveryArea:  req.DeliveryArea,
		OrderPrice:    req.OrderPrice,
		DeliveryCost:  req.DeliveryCost,
		OrderDate:     req.OrderDate,
		Notes:         req.Notes,
	}
	if req.Status != nil {
		status := domain.OrderStatus(*req.Status)
		in.Status = &status
	}
	return in
}

// --- Domain → HTTP response ---

func toOrderResponse(o *domain.Order) orderResponse {
	return orderResponse{
		ID:            o.ID,
		OrderNumber:   o.OrderNumber,
		CustomerName:  o.CustomerName,
		CustomerPhone: o.CustomerPhone,
		DeliveryArea:  o.DeliveryArea,
		OrderPrice:    o.OrderPrice,
		DeliveryCost:  o.DeliveryCost,
		Status:        string(o.Status),
		OrderDate:     o.OrderDate,
		Notes:         o.Notes,
		CompanyID:     o.CompanyID,
		CompanyName:   o.CompanyName,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

func toOrderResponses(orders []domain.Order) []orderResponse {
	out := make([]orderResponse, len(orders))
	for i := range orders {
		out[i] = toOrderResponse(&orders[i])
	}
	return out
}

func toHistoryResponses(entries []domain.OrderHistory) []historyEntryResponse {
	out := make([]historyEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = historyEntryResponse{
			ID:        e.ID,
			OrderID:   e.OrderID,
			Action:    string(e.Action),
			Changes:   e.Changes,
			UserID:    e.UserID,
			Username:  e.Username,
			Timestamp: e.Timestamp,
		}
	}
	return out
}

func toCompanyResponses(companies []domain.User) []companyResponse {
	out := make([]companyResponse, len(companies))
	for i, u := range companies {
		out[i] = companyResponse{
			ID:          u.ID,
			Username:    u.Username,
			Role:        string(u.Role),
			CompanyName: u.CompanyName,
			CreatedAt:   u.CreatedAt,
		}
	}
	return out
}
