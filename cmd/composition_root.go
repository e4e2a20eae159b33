package cmd

import (
	"pharmadelivery/internal/adapters/in/http"
	"pharmadelivery/internal/adapters/out/postgres"
	"pharmadelivery/internal/core/application/usecases/commands"
	"pharmadelivery/internal/core/application/usecases/queries"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	logger     *zap.Logger
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, logger *zap.Logger, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		logger:     logger,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) NewHTTPServer() *http.Server {
	return http.NewServer(
		c.logger,
		c.CreateCreateOrderCommandHandler(),
		c.CreateAcceptOrderCommandHandler(),
		c.CreateDeliverOrderCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateGetCustomerOrdersQueryHandler(),
		c.CreateGetPendingOrdersQueryHandler(),
		c.CreateGetRiderAcceptedOrdersQueryHandler(),
		c.CreateGetRiderOrderHistoryQueryHandler(),
		c.CreateGetPharmacyDrugsQueryHandler(),
		c.CreateGetPharmacyServicesQueryHandler(),
	)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateDeliverOrderCommandHandler() commands.DeliverOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeliverOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPendingOrdersQueryHandler() queries.GetPendingOrdersQueryHandler {
	return queries.NewGetPendingOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRiderAcceptedOrdersQueryHandler() queries.GetRiderAcceptedOrdersQueryHandler {
	return queries.NewGetRiderAcceptedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRiderOrderHistoryQueryHandler() queries.GetRiderOrderHistoryQueryHandler {
	return queries.NewGetRiderOrderHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPharmacyDrugsQueryHandler() queries.GetPharmacyDrugsQueryHandler {
	return queries.NewGetPharmacyDrugsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPharmacyServicesQueryHandler() queries.GetPharmacyServicesQueryHandler {
	return queries.NewGetPharmacyServicesQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
