package http

import (
	"context"
	"log/slog"

	"kitchenpos/internal/adapters/in/http/api"
	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/application/usecases/queries"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/core/domain/model/menugroup"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/core/domain/model/product"
	"kitchenpos/internal/core/domain/model/table"
)

// Handler is the shape shared by command and query handlers.
type Handler[Req, Res any] interface {
	Handle(ctx context.Context, req Req) (Res, error)
}

// UngroupHandler dissolves a table group. It has no result besides the error.
type UngroupHandler interface {
	Handle(ctx context.Context, cmd commands.UngroupTablesCommand) error
}

// Handlers lists the use cases the server delegates to.
type Handlers struct {
	CreateProduct   Handler[commands.CreateProductCommand, *product.Product]
	CreateMenuGroup Handler[commands.CreateMenuGroupCommand, *menugroup.MenuGroup]
	CreateMenu      Handler[commands.CreateMenuCommand, *menu.Menu]

	CreateOrder       Handler[commands.CreateOrderCommand, *order.Order]
	ChangeOrderStatus Handler[commands.ChangeOrderStatusCommand, *order.Order]

	CreateTable          Handler[commands.CreateTableCommand, *table.OrderTable]
	ChangeTableEmpty     Handler[commands.ChangeTableEmptyCommand, *table.OrderTable]
	ChangeNumberOfGuests Handler[commands.ChangeNumberOfGuestsCommand, *table.OrderTable]
	GroupTables          Handler[commands.GroupTablesCommand, *table.TableGroup]
	UngroupTables        UngroupHandler

	ListProducts   Handler[queries.ListProductsQuery, []queries.ListProductsQueryResponse]
	ListMenuGroups Handler[queries.ListMenuGroupsQuery, []queries.ListMenuGroupsQueryResponse]
	ListMenus      Handler[queries.ListMenusQuery, []queries.ListMenusQueryResponse]
	ListOrders     Handler[queries.ListOrdersQuery, []queries.ListOrdersQueryResponse]
	ListTables     Handler[queries.ListTablesQuery, []queries.ListTablesQueryResponse]
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

var _ api.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http"),
	}
}
