package cmd

import (
	"log/slog"

	httpin "kitchenpos/internal/adapters/in/http"
	"kitchenpos/internal/adapters/out/postgres"
	"kitchenpos/internal/adapters/out/postgres/menurepo"
	"kitchenpos/internal/core/application/orderstatus"
	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/application/usecases/queries"
	"kitchenpos/internal/core/ports"
	"kitchenpos/internal/jobs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, publisher ports.EventPublisher, logger *slog.Logger) CompositionRoot {
	if logger == nil {
		logger = slog.Default()
	}

	return CompositionRoot{
		configs: configs,
		gormDB:  gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(
			gormDB, publisher, menurepo.NewCache(configs.MenuCacheSize), logger),
		logger: logger,
	}
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateProductCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateMenuGroupCommandHandler() commands.CreateMenuGroupCommandHandler {
	var f commands.MenuGroupUoWFactory = FuncMenuGroupUoWFactory(func() commands.MenuGroupUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateMenuGroupCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateMenuCommandHandler() commands.CreateMenuCommandHandler {
	var f commands.MenuUoWFactory = FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateMenuCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreateTableCommandHandler() commands.CreateTableCommandHandler {
	return commands.NewCreateTableCommandHandler(c.tableUoWFactory())
}

func (c *CompositionRoot) CreateChangeTableEmptyCommandHandler() commands.ChangeTableEmptyCommandHandler {
	return commands.NewChangeTableEmptyCommandHandler(c.tableUoWFactory())
}

func (c *CompositionRoot) CreateChangeNumberOfGuestsCommandHandler() commands.ChangeNumberOfGuestsCommandHandler {
	return commands.NewChangeNumberOfGuestsCommandHandler(c.tableUoWFactory())
}

func (c *CompositionRoot) CreateGroupTablesCommandHandler() commands.GroupTablesCommandHandler {
	return commands.NewGroupTablesCommandHandler(c.tableUoWFactory())
}

func (c *CompositionRoot) CreateUngroupTablesCommandHandler() commands.UngroupTablesCommandHandler {
	return commands.NewUngroupTablesCommandHandler(c.tableUoWFactory())
}

func (c *CompositionRoot) CreateListProductsQueryHandler() queries.ListProductsQueryHandler {
	return queries.NewListProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListMenuGroupsQueryHandler() queries.ListMenuGroupsQueryHandler {
	return queries.NewListMenuGroupsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListMenusQueryHandler() queries.ListMenusQueryHandler {
	return queries.NewListMenusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListTablesQueryHandler() queries.ListTablesQueryHandler {
	return queries.NewListTablesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTableOccupancyQueryHandler() queries.GetTableOccupancyQueryHandler {
	return queries.NewGetTableOccupancyQueryHandler(c.gormDB)
}

// CreateWebServer wires every use case into the echo router.
func (c *CompositionRoot) CreateWebServer() (*echo.Echo, error) {
	server := httpin.NewServer(httpin.Handlers{
		CreateProduct:        c.CreateCreateProductCommandHandler(),
		CreateMenuGroup:      c.CreateCreateMenuGroupCommandHandler(),
		CreateMenu:           c.CreateCreateMenuCommandHandler(),
		CreateOrder:          c.CreateCreateOrderCommandHandler(),
		ChangeOrderStatus:    c.CreateChangeOrderStatusCommandHandler(),
		CreateTable:          c.CreateCreateTableCommandHandler(),
		ChangeTableEmpty:     c.CreateChangeTableEmptyCommandHandler(),
		ChangeNumberOfGuests: c.CreateChangeNumberOfGuestsCommandHandler(),
		GroupTables:          c.CreateGroupTablesCommandHandler(),
		UngroupTables:        c.CreateUngroupTablesCommandHandler(),
		ListProducts:         c.CreateListProductsQueryHandler(),
		ListMenuGroups:       c.CreateListMenuGroupsQueryHandler(),
		ListMenus:            c.CreateListMenusQueryHandler(),
		ListOrders:           c.CreateListOrdersQueryHandler(),
		ListTables:           c.CreateListTablesQueryHandler(),
	}, c.logger)

	return httpin.NewRouter(server, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetTableOccupancyQueryHandler(),
		c.configs.OccupancyReportSchedule,
		c.logger,
	)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) tableUoWFactory() commands.TableUoWFactory {
	return FuncTableUoWFactory(func() commands.TableUoW {
		return tableUoW{UnitOfWork: c.uowFactory.Create()}
	})
}

// tableUoW binds the order status check to the same transaction as the table
// repositories.
type tableUoW struct {
	ports.UnitOfWork
}

func (u tableUoW) OrderStatusChecker() ports.OrderStatusChecker {
	return orderstatus.NewChecker(u.UnitOfWork)
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncMenuGroupUoWFactory func() commands.MenuGroupUoW

func (f FuncMenuGroupUoWFactory) Create() commands.MenuGroupUoW {
	return f()
}

type FuncMenuUoWFactory func() commands.MenuUoW

func (f FuncMenuUoWFactory) Create() commands.MenuUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncTableUoWFactory func() commands.TableUoW

func (f FuncTableUoWFactory) Create() commands.TableUoW {
	return f()
}
