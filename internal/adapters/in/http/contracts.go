package http

import (
	"time"

	"vastrakala/internal/core/application/usecases/queries"
)

// Error is the uniform error body returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderItem is one order line item on the wire.
type OrderItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Size      string  `json:"size"`
	Color     string  `json:"color"`
	Quantity  int     `json:"quantity"`
}

// CreateOrderRequest is the body of POST /api/orders. Totals are computed by
// the storefront and trusted as-is.
type CreateOrderRequest struct {
	UserID          string            `json:"user_id"`
	Items           []OrderItem       `json:"items"`
	Subtotal        float64           `json:"subtotal"`
	Shipping        float64           `json:"shipping"`
	Total           float64           `json:"total"`
	ShippingAddress map[string]string `json:"shipping_address,omitempty"`
}

// Order is the wire representation of an order.
type Order struct {
	ID              string            `json:"id"`
	UserID          string            `json:"user_id"`
	Items           []OrderItem       `json:"items"`
	Subtotal        float64           `json:"subtotal"`
	Shipping        float64           `json:"shipping"`
	Total           float64           `json:"total"`
	PaymentID       *string           `json:"payment_id"`
	PaymentStatus   string            `json:"payment_status"`
	OrderStatus     string            `json:"order_status"`
	ShippingAddress map[string]string `json:"shipping_address,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
}

// PaymentCreateResponse mirrors the Razorpay checkout contract the
// storefront widget consumes.
type PaymentCreateResponse struct {
	RazorpayOrderID string `json:"razorpay_order_id"`
	Amount          int64  `json:"amount"`
	Currency        string `json:"currency"`
	KeyID           string `json:"key_id"`
	OrderID         string `json:"order_id"`
	MockMode        bool   `json:"mock_mode"`
	Message         string `json:"message"`
}

// PaymentVerifyRequest is the body of POST /api/payment/verify.
type PaymentVerifyRequest struct {
	OrderID   string `json:"order_id"`
	PaymentID string `json:"payment_id"`
	Signature string `json:"signature"`
}

// PaymentVerifyResponse confirms a verified payment.
type PaymentVerifyResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	OrderID string `json:"order_id"`
}

// TrackingUpdateRequest is the body of POST /api/orders/:id/tracking.
// Message and location are optional; an omitted message is resolved from the
// default-message table.
type TrackingUpdateRequest struct {
	Status   string  `json:"status"`
	Message  string  `json:"message,omitempty"`
	Location *string `json:"location,omitempty"`
}

// TrackingEntry is one tracking event on the wire.
type TrackingEntry struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Location  *string   `json:"location"`
}

// TrackingResponse is the body of GET /api/orders/:id/tracking.
type TrackingResponse struct {
	OrderID       string          `json:"order_id"`
	CurrentStatus string          `json:"current_status,omitempty"`
	Tracking      []TrackingEntry `json:"tracking"`
}

// TrackingUpdateResponse confirms an appended tracking event.
type TrackingUpdateResponse struct {
	Success  bool          `json:"success"`
	Tracking TrackingEntry `json:"tracking"`
}

// SimulateDeliveryResponse is the body of POST /api/orders/:id/simulate-delivery.
type SimulateDeliveryResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	FinalStatus string `json:"final_status"`
}

// Health is the body of GET /api/health.
type Health struct {
	Status string `json:"status"`
}

// orderFromReadModel maps a query response to the wire shape.
func orderFromReadModel(resp queries.OrderResponse) Order {
	items := make([]OrderItem, 0, len(resp.Items))
	for _, item := range resp.Items {
		items = append(items, OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Size:      item.Size,
			Color:     item.Color,
			Quantity:  item.Quantity,
		})
	}

	return Order{
		ID:              resp.ID.String(),
		UserID:          resp.UserID,
		Items:           items,
		Subtotal:        resp.Subtotal,
		Shipping:        resp.Shipping,
		Total:           resp.Total,
		PaymentID:       resp.PaymentID,
		PaymentStatus:   resp.PaymentStatus,
		OrderStatus:     resp.Status,
		ShippingAddress: resp.ShippingAddress,
		CreatedAt:       resp.CreatedAt,
	}
}
