package api

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {

	// (GET /api/menu-groups)
	ListMenuGroups(ctx echo.Context) error

	// (POST /api/menu-groups)
	CreateMenuGroup(ctx echo.Context) error

	// (GET /api/menus)
	ListMenus(ctx echo.Context) error

	// (POST /api/menus)
	CreateMenu(ctx echo.Context) error

	// (GET /api/orders)
	ListOrders(ctx echo.Context) error

	// (POST /api/orders)
	CreateOrder(ctx echo.Context) error

	// (PUT /api/orders/{orderId}/order-status)
	ChangeOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error

	// (GET /api/products)
	ListProducts(ctx echo.Context) error

	// (POST /api/products)
	CreateProduct(ctx echo.Context) error

	// (POST /api/table-groups)
	GroupTables(ctx echo.Context) error

	// (DELETE /api/table-groups/{tableGroupId})
	UngroupTables(ctx echo.Context, tableGroupId openapi_types.UUID) error

	// (GET /api/tables)
	ListTables(ctx echo.Context) error

	// (POST /api/tables)
	CreateTable(ctx echo.Context) error

	// (PUT /api/tables/{orderTableId}/empty)
	ChangeTableEmpty(ctx echo.Context, orderTableId openapi_types.UUID) error

	// (PUT /api/tables/{orderTableId}/number-of-guests)
	ChangeNumberOfGuests(ctx echo.Context, orderTableId openapi_types.UUID) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// ListMenuGroups converts echo context to params.
func (w *ServerInterfaceWrapper) ListMenuGroups(ctx echo.Context) error {
	return w.Handler.ListMenuGroups(ctx)
}

// CreateMenuGroup converts echo context to params.
func (w *ServerInterfaceWrapper) CreateMenuGroup(ctx echo.Context) error {
	return w.Handler.CreateMenuGroup(ctx)
}

// ListMenus converts echo context to params.
func (w *ServerInterfaceWrapper) ListMenus(ctx echo.Context) error {
	return w.Handler.ListMenus(ctx)
}

// CreateMenu converts echo context to params.
func (w *ServerInterfaceWrapper) CreateMenu(ctx echo.Context) error {
	return w.Handler.CreateMenu(ctx)
}

// ListOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	return w.Handler.ListOrders(ctx)
}

// CreateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

// ChangeOrderStatus converts echo context to params.
func (w *ServerInterfaceWrapper) ChangeOrderStatus(ctx echo.Context) error {
	orderId, err := bindUUIDPathParam(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.ChangeOrderStatus(ctx, orderId)
}

// ListProducts converts echo context to params.
func (w *ServerInterfaceWrapper) ListProducts(ctx echo.Context) error {
	return w.Handler.ListProducts(ctx)
}

// CreateProduct converts echo context to params.
func (w *ServerInterfaceWrapper) CreateProduct(ctx echo.Context) error {
	return w.Handler.CreateProduct(ctx)
}

// GroupTables converts echo context to params.
func (w *ServerInterfaceWrapper) GroupTables(ctx echo.Context) error {
	return w.Handler.GroupTables(ctx)
}

// UngroupTables converts echo context to params.
func (w *ServerInterfaceWrapper) UngroupTables(ctx echo.Context) error {
	tableGroupId, err := bindUUIDPathParam(ctx, "tableGroupId")
	if err != nil {
		return err
	}
	return w.Handler.UngroupTables(ctx, tableGroupId)
}

// ListTables converts echo context to params.
func (w *ServerInterfaceWrapper) ListTables(ctx echo.Context) error {
	return w.Handler.ListTables(ctx)
}

// CreateTable converts echo context to params.
func (w *ServerInterfaceWrapper) CreateTable(ctx echo.Context) error {
	return w.Handler.CreateTable(ctx)
}

// ChangeTableEmpty converts echo context to params.
func (w *ServerInterfaceWrapper) ChangeTableEmpty(ctx echo.Context) error {
	orderTableId, err := bindUUIDPathParam(ctx, "orderTableId")
	if err != nil {
		return err
	}
	return w.Handler.ChangeTableEmpty(ctx, orderTableId)
}

// ChangeNumberOfGuests converts echo context to params.
func (w *ServerInterfaceWrapper) ChangeNumberOfGuests(ctx echo.Context) error {
	orderTableId, err := bindUUIDPathParam(ctx, "orderTableId")
	if err != nil {
		return err
	}
	return w.Handler.ChangeNumberOfGuests(ctx, orderTableId)
}

func bindUUIDPathParam(ctx echo.Context, name string) (openapi_types.UUID, error) {
	var value openapi_types.UUID

	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &value,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return value, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}

	return value, nil
}

// EchoRouter is the subset of echo.Echo and echo.Group used to register routes.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the paths, so that
// the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/api/menu-groups", wrapper.ListMenuGroups)
	router.POST(baseURL+"/api/menu-groups", wrapper.CreateMenuGroup)
	router.GET(baseURL+"/api/menus", wrapper.ListMenus)
	router.POST(baseURL+"/api/menus", wrapper.CreateMenu)
	router.GET(baseURL+"/api/orders", wrapper.ListOrders)
	router.POST(baseURL+"/api/orders", wrapper.CreateOrder)
	router.PUT(baseURL+"/api/orders/:orderId/order-status", wrapper.ChangeOrderStatus)
	router.GET(baseURL+"/api/products", wrapper.ListProducts)
	router.POST(baseURL+"/api/products", wrapper.CreateProduct)
	router.POST(baseURL+"/api/table-groups", wrapper.GroupTables)
	router.DELETE(baseURL+"/api/table-groups/:tableGroupId", wrapper.UngroupTables)
	router.GET(baseURL+"/api/tables", wrapper.ListTables)
	router.POST(baseURL+"/api/tables", wrapper.CreateTable)
	router.PUT(baseURL+"/api/tables/:orderTableId/empty", wrapper.ChangeTableEmpty)
	router.PUT(baseURL+"/api/tables/:orderTableId/number-of-guests", wrapper.ChangeNumberOfGuests)
}
