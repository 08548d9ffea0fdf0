package cmd

import (
	"supplychain/internal/adapters/out/postgres"
	"supplychain/internal/adapters/out/postgres/catalogrepo"
	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/application/usecases/queries"
	"supplychain/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCatalogReader() ports.CatalogReader {
	return catalogrepo.NewGormCatalogReader(c.gormDB)
}

func (c *CompositionRoot) CreateAddDraftCommandHandler() commands.AddDraftCommandHandler {
	var f commands.DraftUoWFactory = FuncDraftUoWFactory(func() commands.DraftUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddDraftCommandHandler(f, c.CreateCatalogReader())
}

func (c *CompositionRoot) CreateAdjustDraftQuantityCommandHandler() commands.AdjustDraftQuantityCommandHandler {
	var f commands.DraftUoWFactory = FuncDraftUoWFactory(func() commands.DraftUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdjustDraftQuantityCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteDraftsCommandHandler() commands.DeleteDraftsCommandHandler {
	var f commands.DraftUoWFactory = FuncDraftUoWFactory(func() commands.DraftUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteDraftsCommandHandler(f)
}

func (c *CompositionRoot) CreatePromoteDraftsCommandHandler() commands.PromoteDraftsCommandHandler {
	var f commands.PromotionUoWFactory = FuncPromotionUoWFactory(func() commands.PromotionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPromoteDraftsCommandHandler(f, c.CreateCatalogReader())
}

func (c *CompositionRoot) CreateApproveOrdersCommandHandler() commands.ApproveOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApproveOrdersCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeReserveDateCommandHandler() commands.ChangeReserveDateCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeReserveDateCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteOrdersCommandHandler() commands.DeleteOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteOrdersCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() commands.AssignDriverCommandHandler {
	var f commands.DispatchUoWFactory = FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	var f commands.DispatchUoWFactory = FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateReleaseOrphanedDriversCommandHandler() commands.ReleaseOrphanedDriversCommandHandler {
	var f commands.DispatchUoWFactory = FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReleaseOrphanedDriversCommandHandler(f)
}

func (c *CompositionRoot) CreateListDraftsQueryHandler() queries.ListDraftsQueryHandler {
	return queries.NewListDraftsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateSearchOrdersQueryHandler() queries.SearchOrdersQueryHandler {
	return queries.NewSearchOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListFreeDriversQueryHandler() queries.ListFreeDriversQueryHandler {
	return queries.NewListFreeDriversQueryHandler(c.gormDB)
}

type FuncDraftUoWFactory func() commands.DraftUoW

func (f FuncDraftUoWFactory) Create() commands.DraftUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPromotionUoWFactory func() commands.PromotionUoW

func (f FuncPromotionUoWFactory) Create() commands.PromotionUoW {
	return f()
}

type FuncDispatchUoWFactory func() commands.DispatchUoW

func (f FuncDispatchUoWFactory) Create() commands.DispatchUoW {
	return f()
}
