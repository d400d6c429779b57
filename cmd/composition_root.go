package cmd

import (
	"log/slog"

	"vastrakala/internal/adapters/out/payment"
	"vastrakala/internal/adapters/out/postgres"
	"vastrakala/internal/core/application/usecases/commands"
	"vastrakala/internal/core/application/usecases/queries"
	"vastrakala/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	gateway    ports.PaymentGateway
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		gateway:    payment.NewRazorMockGateway(),
		logger:     logger,
	}
}

func (c *CompositionRoot) PaymentGateway() ports.PaymentGateway {
	return c.gateway
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateVerifyPaymentCommandHandler() commands.VerifyPaymentCommandHandler {
	var f commands.PaymentUoWFactory = FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewVerifyPaymentCommandHandler(c.gateway, f, c.logger)
}

func (c *CompositionRoot) CreateAddTrackingEventCommandHandler() commands.AddTrackingEventCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddTrackingEventCommandHandler(f)
}

func (c *CompositionRoot) CreateSimulateDeliveryCommandHandler() commands.SimulateDeliveryCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSimulateDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateAdvanceFulfillmentsCommandHandler() commands.AdvanceFulfillmentsCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceFulfillmentsCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersByUserQueryHandler() queries.GetOrdersByUserQueryHandler {
	return queries.NewGetOrdersByUserQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderTrackingQueryHandler() queries.GetOrderTrackingQueryHandler {
	return queries.NewGetOrderTrackingQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}
