package handler

import "time"

type createOrderRequest struct {
	OrderNumber   string  `json:"order_number"   validate:"required"`
	CustomerName  string  `json:"customer_name"  validate:"required"`
	CustomerPhone string  `json:"customer_phone" validate:"required"`
	DeliveryArea  string  `json:"delivery_area"  validate:"required"`
	OrderPrice    float64 `json:"order_price"`
	DeliveryCost  float64 `json:"delivery_cost"  validate:"gte=0"`
	Status        string  `json:"status"         validate:"required,oneof=ongoing completed cancelled"`
	OrderDate     string  `json:"order_date"     validate:"required"`
	Notes         string  `json:"notes"`
	// CompanyName selects the owning tenant when an admin creates the
	// order; company callers have it overridden by their own identity.
	CompanyName string `json:"company_name"`
}

// updateOrderRequest is a partial patch: absent fields stay untouched,
// which is why every field is a pointer.
type updateOrderRequest struct {
	OrderNumber   *string  `json:"order_number"`
	CustomerName  *string  `json:"customer_name"`
	CustomerPhone *string  `json:"customer_phone"`
	DeliveryArea  *string  `json:"delivery_area"`
	OrderPrice    *float64 `json:"order_price"`
	DeliveryCost  *float64 `json:"delivery_cost"`
	Status        *string  `json:"status" validate:"omitempty,oneof=ongoing completed cancelled"`
	OrderDate     *string  `json:"order_date"`
	Notes         *string  `json:"notes"`
}

type orderResponse struct {
	ID            string    `json:"id"`
	OrderNumber   string    `json:"order_number"`
	CustomerName  string    `json:"customer_name"`
	CustomerPhone string    `json:"customer_phone"`
	DeliveryArea  string    `json:"delivery_area"`
	OrderPrice    float64   `json:"order_price"`
	DeliveryCost  float64   `json:"delivery_cost"`
	Status        string    `json:"status"`
	OrderDate     string    `json:"order_date"`
	Notes         string    `json:"notes,omitempty"`
	CompanyID     string    `json:"company_id"`
	CompanyName   string    `json:"company_name"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type statsResponse struct {
	Total     int64 `json:"total"`
	Ongoing   int64 `json:"ongoing"`
	Completed int64 `json:"completed"`
	Cancelled int64 `json:"cancelled"`
}

type historyEntryResponse struct {
	ID        string         `json:"id"`
	OrderID   string         `json:"order_id"`
	Action    string         `json:"action"`
	Changes   map[string]any `json:"changes"`
	UserID    string         `json:"user_id"`
	Username  string         `json:"username"`
	Timestamp time.Time      `json:"timestamp"`
}
