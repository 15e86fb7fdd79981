package domain

import "time"

// OrderStatus represents the lifecycle state of a delivery order.
type OrderStatus string

const (
	StatusOngoing   OrderStatus = "ongoing"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

// Order is the core aggregate. CompanyID and CompanyName are snapshotted
// at creation time and never pass through the update path; CreatedAt is
// immutable and UpdatedAt advances only on an effective mutation.
type Order struct {
	ID            string      `json:"id" bson:"id"`
	OrderNumber   string      `json:"order_number" bson:"order_number"`
	CustomerName  string      `json:"customer_name" bson:"customer_name"`
	CustomerPhone string      `json:"customer_phone" bson:"customer_phone"`
	DeliveryArea  string      `json:"delivery_area" bson:"delivery_area"`
	OrderPrice    float64     `json:"order_price" bson:"order_price"`
	DeliveryCost  float64     `json:"delivery_cost" bson:"delivery_cost"`
	Status        OrderStatus `json:"status" bson:"status"`
	OrderDate     string      `json:"order_date" bson:"order_date"`
	Notes         string      `json:"notes,omitempty" bson:"notes,omitempty"`
	CompanyID     string      `json:"company_id" bson:"company_id"`
	CompanyName   string      `json:"company_name" bson:"company_name"`
	CreatedAt     time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at" bson:"updated_at"`
}

// StatusCounts are the role-scoped order counters served by /api/stats.
type StatusCounts struct {
	Total     int64 `json:"total"`
	Ongoing   int64 `json:"ongoing"`
	Completed int64 `json:"completed"`
	Cancelled int64 `json:"cancelled"`
}
