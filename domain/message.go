// Package domain defines the core domain models for the GloBot assistant.
package domain

import "time"

// Sender identifies who produced a message.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// MessageKind tags the payload variant carried by a message.
type MessageKind string

const (
	KindPlain       MessageKind = "plain"
	KindProductList MessageKind = "productList"
	KindActionCard  MessageKind = "actionCard"
)

// Message is a single entry in a conversation. Once appended to a session
// it is immutable; Seq is monotonically increasing within a session.
type Message struct {
	MessageID string      `json:"message_id"`
	SessionID string      `json:"session_id"`
	Seq       int64       `json:"seq"`
	Sender    Sender      `json:"sender"`
	Text      string      `json:"text"`
	Kind      MessageKind `json:"kind"`
	CreatedAt time.Time   `json:"created_at"`

	// Payload variants, keyed by Kind.
	Products []Product    `json:"products,omitempty"` // Kind == productList
	Action   *OrderStatus `json:"action,omitempty"`   // Kind == actionCard

	Suggestions []string `json:"suggestions,omitempty"`
}

// OrderStatus is the actionCard payload for an order-tracking reply.
type OrderStatus struct {
	OrderNumber  string       `json:"order_number"`
	TrackingCode string       `json:"tracking_code"`
	Stages       []OrderStage `json:"stages"`
}

// OrderStage is one step of the order status narrative.
type OrderStage struct {
	Label string `json:"label"`
	Date  string `json:"date"`
}
