package cmd

import (
	"arribaeats/internal/adapters/out/memory"
	"arribaeats/internal/core/application/usecases/commands"
	"arribaeats/internal/core/application/usecases/queries"
)

// CompositionRoot wires the in-memory store into every use case handler.
// All handlers share one store so commands and queries observe the same state.
type CompositionRoot struct {
	uowFactory *memory.UnitOfWorkFactory
}

func NewCompositionRoot(_ Config) CompositionRoot {
	return CompositionRoot{
		uowFactory: memory.NewUnitOfWorkFactory(memory.NewStore()),
	}
}

func (c *CompositionRoot) CreateRegisterCustomerCommandHandler() commands.RegisterCustomerCommandHandler {
	var f commands.ActorUoWFactory = FuncActorUoWFactory(func() commands.ActorUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterCourierCommandHandler() commands.RegisterCourierCommandHandler {
	var f commands.ActorUoWFactory = FuncActorUoWFactory(func() commands.ActorUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterCourierCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterOperatorCommandHandler() commands.RegisterOperatorCommandHandler {
	var f commands.CatalogueUoWFactory = FuncCatalogueUoWFactory(func() commands.CatalogueUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterOperatorCommandHandler(f)
}

func (c *CompositionRoot) CreateAddMenuItemCommandHandler() commands.AddMenuItemCommandHandler {
	var f commands.CatalogueUoWFactory = FuncCatalogueUoWFactory(func() commands.CatalogueUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddMenuItemCommandHandler(f)
}

func (c *CompositionRoot) CreateAddReviewCommandHandler() commands.AddReviewCommandHandler {
	var f commands.CatalogueUoWFactory = FuncCatalogueUoWFactory(func() commands.CatalogueUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddReviewCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAddOrderItemCommandHandler() commands.AddOrderItemCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddOrderItemCommandHandler(f)
}

func (c *CompositionRoot) CreateFinalizeOrderCommandHandler() commands.FinalizeOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewFinalizeOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateLoginQueryHandler() queries.LoginQueryHandler {
	var f queries.ActorUoWFactory = FuncQueryActorUoWFactory(func() queries.ActorUoW {
		return c.uowFactory.Create()
	})
	return queries.NewLoginQueryHandler(f)
}

func (c *CompositionRoot) CreateSortedRestaurantsQueryHandler() queries.SortedRestaurantsQueryHandler {
	var f queries.CatalogueUoWFactory = FuncQueryCatalogueUoWFactory(func() queries.CatalogueUoW {
		return c.uowFactory.Create()
	})
	return queries.NewSortedRestaurantsQueryHandler(f)
}

func (c *CompositionRoot) CreateAvailableOrdersQueryHandler() queries.AvailableOrdersQueryHandler {
	var f queries.UoWFactory = FuncQueryUoWFactory(func() queries.UoW {
		return c.uowFactory.Create()
	})
	return queries.NewAvailableOrdersQueryHandler(f)
}

func (c *CompositionRoot) CreateCustomerOrdersQueryHandler() queries.CustomerOrdersQueryHandler {
	var f queries.UoWFactory = FuncQueryUoWFactory(func() queries.UoW {
		return c.uowFactory.Create()
	})
	return queries.NewCustomerOrdersQueryHandler(f)
}

func (c *CompositionRoot) CreateMarketplaceStatsQueryHandler() queries.MarketplaceStatsQueryHandler {
	var f queries.UoWFactory = FuncQueryUoWFactory(func() queries.UoW {
		return c.uowFactory.Create()
	})
	return queries.NewMarketplaceStatsQueryHandler(f)
}

type FuncActorUoWFactory func() commands.ActorUoW

func (f FuncActorUoWFactory) Create() commands.ActorUoW {
	return f()
}

type FuncCatalogueUoWFactory func() commands.CatalogueUoW

func (f FuncCatalogueUoWFactory) Create() commands.CatalogueUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncQueryActorUoWFactory func() queries.ActorUoW

func (f FuncQueryActorUoWFactory) Create() queries.ActorUoW {
	return f()
}

type FuncQueryCatalogueUoWFactory func() queries.CatalogueUoW

func (f FuncQueryCatalogueUoWFactory) Create() queries.CatalogueUoW {
	return f()
}

type FuncQueryUoWFactory func() queries.UoW

func (f FuncQueryUoWFactory) Create() queries.UoW {
	return f()
}
