// Package http exposes the order core over REST. Handlers translate wire
// requests into commands and queries and map domain errors onto status
// codes; no business logic lives here.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"vastrakala/internal/core/application/usecases/commands"
	"vastrakala/internal/core/application/usecases/queries"
	"vastrakala/internal/core/domain/model/kernel"
	"vastrakala/internal/core/domain/model/order"
	"vastrakala/internal/core/ports"
	"vastrakala/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler       commands.PlaceOrderCommandHandler
	verifyPaymentHandler    commands.VerifyPaymentCommandHandler
	addTrackingEventHandler commands.AddTrackingEventCommandHandler
	simulateDeliveryHandler commands.SimulateDeliveryCommandHandler

	// Query handlers
	getOrderHandler         queries.GetOrderQueryHandler
	getOrdersByUserHandler  queries.GetOrdersByUserQueryHandler
	getAllOrdersHandler     queries.GetAllOrdersQueryHandler
	getOrderTrackingHandler queries.GetOrderTrackingQueryHandler

	gateway ports.PaymentGateway
}

// NewServer creates an HTTP server with the required command and query
// handlers and the payment gateway.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	verifyPaymentHandler commands.VerifyPaymentCommandHandler,
	addTrackingEventHandler commands.AddTrackingEventCommandHandler,
	simulateDeliveryHandler commands.SimulateDeliveryCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrdersByUserHandler queries.GetOrdersByUserQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getOrderTrackingHandler queries.GetOrderTrackingQueryHandler,
	gateway ports.PaymentGateway,
) *Server {
	return &Server{
		placeOrderHandler:       placeOrderHandler,
		verifyPaymentHandler:    verifyPaymentHandler,
		addTrackingEventHandler: addTrackingEventHandler,
		simulateDeliveryHandler: simulateDeliveryHandler,
		getOrderHandler:         getOrderHandler,
		getOrdersByUserHandler:  getOrdersByUserHandler,
		getAllOrdersHandler:     getAllOrdersHandler,
		getOrderTrackingHandler: getOrderTrackingHandler,
		gateway:                 gateway,
	}
}

// RegisterRoutes attaches all endpoints under the /api prefix.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	api.GET("/health", s.Health)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrdersByUser)
	api.GET("/orders/:id", s.GetOrder)
	api.GET("/admin/orders", s.GetAllOrders)

	api.POST("/payment/create", s.CreatePayment)
	api.POST("/payment/verify", s.VerifyPayment)

	api.GET("/orders/:id/tracking", s.GetOrderTracking)
	api.POST("/orders/:id/tracking", s.AddOrderTracking)
	api.POST("/orders/:id/simulate-delivery", s.SimulateDelivery)
}

// Health handles GET /api/health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, Health{Status: "ok"})
}

// CreateOrder handles POST /api/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	items := make([]order.Item, 0, len(req.Items))
	for _, itemReq := range req.Items {
		item, err := order.NewItem(
			itemReq.ProductID,
			itemReq.Name,
			itemReq.Price,
			itemReq.Size,
			itemReq.Color,
			itemReq.Quantity,
		)
		if err != nil {
			return badRequest(ctx, "Invalid order item: "+err.Error())
		}
		items = append(items, item)
	}

	cmd, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(),
		req.UserID,
		items,
		req.Subtotal,
		req.Shipping,
		req.Total,
		order.Address(req.ShippingAddress),
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	placed, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromDomain(placed))
}

// GetOrder handles GET /api/orders/:id - retrieves a single order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromReadModel(resp))
}

// GetOrdersByUser handles GET /api/orders?user_id= - a user's order history.
func (s *Server) GetOrdersByUser(ctx echo.Context) error {
	query, err := queries.NewGetOrdersByUserQuery(ctx.QueryParam("user_id"))
	if err != nil {
		return badRequest(ctx, "user_id is required")
	}

	orders, err := s.getOrdersByUserHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ordersFromReadModels(orders))
}

// GetAllOrders handles GET /api/admin/orders - the back-office listing.
func (s *Server) GetAllOrders(ctx echo.Context) error {
	query := queries.NewGetAllOrdersQuery()

	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ordersFromReadModels(orders))
}

// CreatePayment handles POST /api/payment/create - issues a mock payment
// reference for an order. Takes order_id and amount as query parameters.
func (s *Server) CreatePayment(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.QueryParam("order_id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	amount, err := strconv.ParseFloat(ctx.QueryParam("amount"), 64)
	if err != nil {
		return badRequest(ctx, "Invalid amount")
	}

	intent, err := s.gateway.CreatePayment(ctx.Request().Context(), orderID, amount)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, PaymentCreateResponse{
		RazorpayOrderID: intent.Reference,
		Amount:          intent.AmountMinor,
		Currency:        intent.Currency,
		KeyID:           intent.KeyID,
		OrderID:         orderID.String(),
		MockMode:        intent.Mock,
		Message:         intent.Message,
	})
}

// VerifyPayment handles POST /api/payment/verify - confirms a payment and
// clears the user's cart.
func (s *Server) VerifyPayment(ctx echo.Context) error {
	var req PaymentVerifyRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewVerifyPaymentCommand(orderID, req.PaymentID, req.Signature)
	if err != nil {
		return badRequest(ctx, "Invalid payment data: "+err.Error())
	}

	if err = s.verifyPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, PaymentVerifyResponse{
		Success: true,
		Message: "Payment verified successfully (MOCK MODE)",
		OrderID: req.OrderID,
	})
}

// GetOrderTracking handles GET /api/orders/:id/tracking.
func (s *Server) GetOrderTracking(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderTrackingQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	resp, err := s.getOrderTrackingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	tracking := make([]TrackingEntry, 0, len(resp.Events))
	for _, event := range resp.Events {
		tracking = append(tracking, TrackingEntry{
			Status:    event.Status,
			Message:   event.Message,
			Timestamp: event.Timestamp,
			Location:  event.Location,
		})
	}

	return ctx.JSON(http.StatusOK, TrackingResponse{
		OrderID:       resp.OrderID.String(),
		CurrentStatus: resp.CurrentStatus,
		Tracking:      tracking,
	})
}

// AddOrderTracking handles POST /api/orders/:id/tracking - appends a manual
// tracking update.
func (s *Server) AddOrderTracking(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req TrackingUpdateRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAddTrackingEventCommand(
		orderID,
		order.Status(req.Status),
		req.Message,
		req.Location,
	)
	if err != nil {
		return badRequest(ctx, "Invalid tracking data: "+err.Error())
	}

	entry, err := s.addTrackingEventHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, TrackingUpdateResponse{
		Success: true,
		Tracking: TrackingEntry{
			Status:    entry.Status().String(),
			Message:   entry.Message(),
			Timestamp: entry.Timestamp(),
			Location:  entry.Location(),
		},
	})
}

// SimulateDelivery handles POST /api/orders/:id/simulate-delivery - fast
// forwards the order through the whole fulfillment timeline.
func (s *Server) SimulateDelivery(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewSimulateDeliveryCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	finalStatus, err := s.simulateDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, SimulateDeliveryResponse{
		Success:     true,
		Message:     "Delivery simulation complete",
		FinalStatus: finalStatus.String(),
	})
}

// badRequest writes a 400 with the uniform error body.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps core errors onto HTTP status codes.
func domainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: "Order not found",
		})
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		return badRequest(ctx, err.Error())
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

// orderFromDomain maps a freshly placed aggregate to the wire shape.
func orderFromDomain(placed *order.Order) Order {
	domainItems := placed.Items()
	items := make([]OrderItem, 0, len(domainItems))
	for _, item := range domainItems {
		items = append(items, OrderItem{
			ProductID: item.ProductID(),
			Name:      item.Name(),
			Price:     item.Price(),
			Size:      item.Size(),
			Color:     item.Color(),
			Quantity:  item.Quantity(),
		})
	}

	return Order{
		ID:              placed.ID().String(),
		UserID:          placed.UserID(),
		Items:           items,
		Subtotal:        placed.Subtotal(),
		Shipping:        placed.Shipping(),
		Total:           placed.Total(),
		PaymentID:       placed.PaymentID(),
		PaymentStatus:   placed.PaymentStatus().String(),
		OrderStatus:     placed.Status().String(),
		ShippingAddress: placed.ShippingAddress(),
		CreatedAt:       placed.CreatedAt(),
	}
}

// ordersFromReadModels maps a query listing to the wire shape.
func ordersFromReadModels(orders []queries.OrderResponse) []Order {
	response := make([]Order, 0, len(orders))
	for _, resp := range orders {
		response = append(response, orderFromReadModel(resp))
	}
	return response
}
