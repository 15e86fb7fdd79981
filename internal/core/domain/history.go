package domain

import "time"

// HistoryAction identifies what happened to an order.
type HistoryAction string

const (
	ActionCreated HistoryAction = "created"
	ActionUpdated HistoryAction = "updated"
	ActionDeleted HistoryAction = "deleted"
)

// FieldChange is one old/new pair inside an "updated" history entry.
type FieldChange struct {
	Old any `json:"old" bson:"old"`
	New any `json:"new" bson:"new"`
}

// OrderHistory is an append-only audit record. For "created" and
// "deleted" the changes map holds the full order snapshot; for "updated"
// it holds field name → FieldChange. Entries outlive their order.
type OrderHistory struct {
	ID        string         `json:"id" bson:"id"`
	OrderID   string         `json:"order_id" bson:"order_id"`
	Action    HistoryAction  `json:"action" bson:"action"`
	Changes   map[string]any `json:"changes" bson:"changes"`
	UserID    string         `json:"user_id" bson:"user_id"`
	Username  string         `json:"username" bson:"username"`
	Timestamp time.Time      `json:"timestamp" bson:"timestamp"`
}
