package commands_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"vastrakala/internal/core/application/usecases/commands"
	"vastrakala/internal/core/domain/model/kernel"
	"vastrakala/internal/core/domain/model/order"
	"vastrakala/internal/core/ports"
	"vastrakala/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPaymentGateway struct{ mock.Mock }

func (m *MockPaymentGateway) CreatePayment(
	ctx context.Context,
	orderID kernel.UUID,
	amount float64,
) (ports.PaymentIntent, error) {
	args := m.Called(ctx, orderID, amount)
	return args.Get(0).(ports.PaymentIntent), args.Error(1)
}

func (m *MockPaymentGateway) VerifyPayment(ctx context.Context, orderID kernel.UUID, paymentID, signature string) error {
	args := m.Called(ctx, orderID, paymentID, signature)
	return args.Error(0)
}

type PaymentOrderRepo struct{ mock.Mock }

func (m *PaymentOrderRepo) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *PaymentOrderRepo) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *PaymentOrderRepo) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *PaymentOrderRepo) GetAllInProgress(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type PaymentCartRepo struct{ mock.Mock }

func (m *PaymentCartRepo) ClearByUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *PaymentCartRepo) CountByUser(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

type PaymentUnitOfWork struct{ mock.Mock }

func (m *PaymentUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *PaymentUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *PaymentUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *PaymentUnitOfWork) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *PaymentUnitOfWork) CartRepository() ports.CartRepository {
	args := m.Called()
	return args.Get(0).(ports.CartRepository)
}

type PaymentUoWFactory struct{ mock.Mock }

func (m *PaymentUoWFactory) Create() commands.PaymentUoW {
	args := m.Called()
	return args.Get(0).(commands.PaymentUoW)
}

func createUnpaidOrder(t *testing.T, userID string) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), userID, testItems(t), 2000, 100, 2100, nil)
	require.NoError(t, err)
	return o
}

func TestVerifyPaymentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	testOrder := createUnpaidOrder(t, "user-1")
	cmd, err := commands.NewVerifyPaymentCommand(testOrder.ID(), "pay_123", "sig_abc")
	require.NoError(t, err)

	gateway := new(MockPaymentGateway)
	orderRepo := new(PaymentOrderRepo)
	cartRepo := new(PaymentCartRepo)
	uow := new(PaymentUnitOfWork)
	factory := new(PaymentUoWFactory)

	mock.InOrder(
		gateway.On("VerifyPayment", ctx, testOrder.ID(), "pay_123", "sig_abc").Return(nil).Once(),
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, testOrder).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		cartRepo.On("ClearByUser", ctx, "user-1").Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("CartRepository").Return(cartRepo).Once()

	handler := commands.NewVerifyPaymentCommandHandler(gateway, factory, slog.Default())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.PaymentCompleted, testOrder.PaymentStatus())
	assert.Equal(t, order.StatusConfirmed, testOrder.Status())
	require.NotNil(t, testOrder.PaymentID())
	assert.Equal(t, "pay_123", *testOrder.PaymentID())
	gateway.AssertExpectations(t)
	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	cartRepo.AssertExpectations(t)
}

func TestVerifyPaymentCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.VerifyPaymentCommand{} // not constructed properly
	gateway := new(MockPaymentGateway)
	factory := new(PaymentUoWFactory)

	handler := commands.NewVerifyPaymentCommandHandler(gateway, factory, slog.Default())
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be created via NewVerifyPaymentCommand constructor")
}

func TestVerifyPaymentCommandHandler_Handle_GatewayRejects(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewVerifyPaymentCommand(id, "pay_123", "bad_sig")
	require.NoError(t, err)

	gateway := new(MockPaymentGateway)
	factory := new(PaymentUoWFactory)

	gateway.On("VerifyPayment", ctx, id, "pay_123", "bad_sig").
		Return(errors.New("signature mismatch")).Once()

	handler := commands.NewVerifyPaymentCommandHandler(gateway, factory, slog.Default())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "signature mismatch")
	gateway.AssertExpectations(t)
	factory.AssertNotCalled(t, "Create")
}

func TestVerifyPaymentCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewVerifyPaymentCommand(id, "pay_123", "sig_abc")
	require.NoError(t, err)

	gateway := new(MockPaymentGateway)
	orderRepo := new(PaymentOrderRepo)
	uow := new(PaymentUnitOfWork)
	factory := new(PaymentUoWFactory)

	mock.InOrder(
		gateway.On("VerifyPayment", ctx, id, "pay_123", "sig_abc").Return(nil).Once(),
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("orderID", id)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	uow.On("OrderRepository").Return(orderRepo).Once()

	handler := commands.NewVerifyPaymentCommandHandler(gateway, factory, slog.Default())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	gateway.AssertExpectations(t)
	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}

func TestVerifyPaymentCommandHandler_Handle_CartClearError(t *testing.T) {
	ctx := t.Context()
	testOrder := createUnpaidOrder(t, "user-1")
	cmd, err := commands.NewVerifyPaymentCommand(testOrder.ID(), "pay_123", "sig_abc")
	require.NoError(t, err)

	gateway := new(MockPaymentGateway)
	orderRepo := new(PaymentOrderRepo)
	cartRepo := new(PaymentCartRepo)
	uow := new(PaymentUnitOfWork)
	factory := new(PaymentUoWFactory)

	mock.InOrder(
		gateway.On("VerifyPayment", ctx, testOrder.ID(), "pay_123", "sig_abc").Return(nil).Once(),
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, testOrder).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		cartRepo.On("ClearByUser", ctx, "user-1").Return(errors.New("cart unavailable")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("CartRepository").Return(cartRepo).Once()

	handler := commands.NewVerifyPaymentCommandHandler(gateway, factory, slog.Default())
	err = handler.Handle(ctx, cmd)

	// The order confirmation already committed; the failed side effect is
	// surfaced to the caller.
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cart clear failed")
	assert.Equal(t, order.PaymentCompleted, testOrder.PaymentStatus())
	cartRepo.AssertExpectations(t)
}

func TestVerifyPaymentCommandHandler_Handle_Idempotent(t *testing.T) {
	ctx := t.Context()
	testOrder := createUnpaidOrder(t, "user-1")
	require.NoError(t, testOrder.ConfirmPayment("pay_123")) // already paid

	cmd, err := commands.NewVerifyPaymentCommand(testOrder.ID(), "pay_123", "sig_abc")
	require.NoError(t, err)

	gateway := new(MockPaymentGateway)
	orderRepo := new(PaymentOrderRepo)
	cartRepo := new(PaymentCartRepo)
	uow := new(PaymentUnitOfWork)
	factory := new(PaymentUoWFactory)

	mock.InOrder(
		gateway.On("VerifyPayment", ctx, testOrder.ID(), "pay_123", "sig_abc").Return(nil).Once(),
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, testOrder).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		cartRepo.On("ClearByUser", ctx, "user-1").Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("CartRepository").Return(cartRepo).Once()

	handler := commands.NewVerifyPaymentCommandHandler(gateway, factory, slog.Default())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.PaymentCompleted, testOrder.PaymentStatus())
	assert.Equal(t, "pay_123", *testOrder.PaymentID())
}
