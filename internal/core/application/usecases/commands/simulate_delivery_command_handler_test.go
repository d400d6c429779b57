package commands_test

import (
	"errors"
	"testing"

	"vastrakala/internal/core/application/usecases/commands"
	"vastrakala/internal/core/domain/model/kernel"
	"vastrakala/internal/core/domain/model/order"
	"vastrakala/internal/core/domain/model/tracking"
	"vastrakala/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// timelineEntry matches a ledger append against one expected timeline step.
func timelineEntry(status order.Status, message, location string) any {
	return mock.MatchedBy(func(e tracking.Entry) bool {
		return e.Status() == status &&
			e.Message() == message &&
			e.Location() != nil && *e.Location() == location
	})
}

func TestSimulateDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	address := order.Address{"city": "Mumbai"}
	testOrder, err := order.NewOrder(kernel.NewUUID(), "user-1", testItems(t), 2000, 100, 2100, address)
	require.NoError(t, err)

	cmd, err := commands.NewSimulateDeliveryCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	ledgerRepo := new(MockTrackingRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		ledgerRepo.On("Append", mock.Anything, testOrder.ID(),
			timelineEntry(order.StatusConfirmed, "Order confirmed and being processed", "Warehouse")).
			Return(nil).Once(),
		ledgerRepo.On("Append", mock.Anything, testOrder.ID(),
			timelineEntry(order.StatusPacked, "Order has been packed", "Warehouse")).
			Return(nil).Once(),
		ledgerRepo.On("Append", mock.Anything, testOrder.ID(),
			timelineEntry(order.StatusShipped, "Order dispatched via courier", "Shipping Hub")).
			Return(nil).Once(),
		ledgerRepo.On("Append", mock.Anything, testOrder.ID(),
			timelineEntry(order.StatusInTransit, "Package in transit", "Distribution Center")).
			Return(nil).Once(),
		ledgerRepo.On("Append", mock.Anything, testOrder.ID(),
			timelineEntry(order.StatusOutForDelivery, "Out for delivery", "Mumbai")).
			Return(nil).Once(),
		ledgerRepo.On("Append", mock.Anything, testOrder.ID(),
			timelineEntry(order.StatusDelivered, "Package delivered successfully", "Mumbai")).
			Return(nil).Once(),
		orderRepo.On("Update", ctx, testOrder).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("TrackingRepository").Return(ledgerRepo).Once()

	handler := commands.NewSimulateDeliveryCommandHandler(factory)
	finalStatus, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.StatusDelivered, finalStatus)
	assert.Equal(t, order.StatusDelivered, testOrder.Status())
	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	ledgerRepo.AssertExpectations(t)
}

func TestSimulateDeliveryCommandHandler_Handle_NoCityFallsBack(t *testing.T) {
	ctx := t.Context()
	testOrder, err := order.NewOrder(kernel.NewUUID(), "user-1", testItems(t), 2000, 100, 2100, nil)
	require.NoError(t, err)

	cmd, err := commands.NewSimulateDeliveryCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	ledgerRepo := new(MockTrackingRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("TrackingRepository").Return(ledgerRepo).Once()
	orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once()
	ledgerRepo.On("Append", mock.Anything, testOrder.ID(), mock.AnythingOfType("tracking.Entry")).
		Return(nil).Times(6)
	orderRepo.On("Update", ctx, testOrder).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewSimulateDeliveryCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	// The last two timeline steps happen at the destination; with no city
	// on the order they fall back to the placeholder.
	appends := 0
	for _, call := range ledgerRepo.Calls {
		if call.Method != "Append" {
			continue
		}
		appends++
		if appends >= 5 {
			entry := call.Arguments.Get(2).(tracking.Entry)
			require.NotNil(t, entry.Location())
			assert.Equal(t, "Your City", *entry.Location())
		}
	}
	assert.Equal(t, 6, appends)
}

func TestSimulateDeliveryCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewSimulateDeliveryCommand(id)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	ledgerRepo := new(MockTrackingRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("orderID", id)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("TrackingRepository").Return(ledgerRepo).Once()

	handler := commands.NewSimulateDeliveryCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	ledgerRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything, mock.Anything)
}

func TestSimulateDeliveryCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.SimulateDeliveryCommand{} // not constructed properly
	factory := new(MockOrderUoWFactory)

	handler := commands.NewSimulateDeliveryCommandHandler(factory)
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be created via NewSimulateDeliveryCommand constructor")
}

func TestSimulateDeliveryCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	testOrder, err := order.NewOrder(kernel.NewUUID(), "user-1", testItems(t), 2000, 100, 2100, nil)
	require.NoError(t, err)

	cmd, err := commands.NewSimulateDeliveryCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	ledgerRepo := new(MockTrackingRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("TrackingRepository").Return(ledgerRepo).Once()
	orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once()
	ledgerRepo.On("Append", mock.Anything, testOrder.ID(), mock.AnythingOfType("tracking.Entry")).
		Return(nil).Times(6)
	orderRepo.On("Update", ctx, testOrder).Return(nil).Once()
	uow.On("Commit", ctx).Return(errors.New("commit error")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewSimulateDeliveryCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "commit error")
}
