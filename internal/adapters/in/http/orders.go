package http

import (
	"net/http"

	"kitchenpos/internal/adapters/in/http/api"
	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/application/usecases/queries"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ListOrders handles GET /api/orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	orders, err := s.handlers.ListOrders.Handle(ctx.Request().Context(), queries.NewListOrdersQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]api.Order, len(orders))
	for i, o := range orders {
		lineItems := make([]api.OrderLineItem, len(o.LineItems))
		for j, li := range o.LineItems {
			menuProducts := make([]api.OrderMenuProduct, len(li.MenuProducts))
			for k, mp := range li.MenuProducts {
				menuProducts[k] = api.OrderMenuProduct{
					ProductName: mp.ProductName,
					Price:       mp.Price.String(),
					Quantity:    mp.Quantity,
				}
			}

			lineItems[j] = api.OrderLineItem{
				Seq:           li.ID.Bytes(),
				MenuId:        li.MenuID.Bytes(),
				MenuName:      li.MenuName,
				MenuPrice:     li.MenuPrice.String(),
				MenuGroupName: li.MenuGroupName,
				MenuProducts:  menuProducts,
				Quantity:      li.Quantity,
			}
		}

		response[i] = api.Order{
			Id:             o.ID.Bytes(),
			OrderTableId:   o.OrderTableID.Bytes(),
			OrderStatus:    api.OrderOrderStatus(o.OrderStatus.String()),
			OrderedTime:    o.OrderedTime,
			OrderLineItems: lineItems,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/orders. The order is placed in COOKING.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body api.CreateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.fail(ctx, badRequestBody(err))
	}

	tableID, err := toKernelID("orderTableId", body.OrderTableId)
	if err != nil {
		return s.fail(ctx, err)
	}

	lines := make([]commands.OrderLineRequest, len(body.OrderLineItems))
	for i, li := range body.OrderLineItems {
		menuID, err := toKernelID("menuId", li.MenuId)
		if err != nil {
			return s.fail(ctx, err)
		}
		lines[i] = commands.OrderLineRequest{MenuID: menuID, Quantity: li.Quantity}
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), tableID, lines)
	if err != nil {
		return s.fail(ctx, err)
	}

	o, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrderResponse(o))
}

// ChangeOrderStatus handles PUT /api/orders/{orderId}/order-status.
func (s *Server) ChangeOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error {
	var body api.ChangeOrderStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.fail(ctx, badRequestBody(err))
	}

	id, err := toKernelID("orderId", orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(id, body.OrderStatus)
	if err != nil {
		return s.fail(ctx, err)
	}

	o, err := s.handlers.ChangeOrderStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(o))
}

func toOrderResponse(o *order.Order) api.Order {
	lineItems := make([]api.OrderLineItem, 0, len(o.LineItems()))
	for _, li := range o.LineItems() {
		products := li.Menu().Products()
		menuProducts := make([]api.OrderMenuProduct, len(products))
		for k, mp := range products {
			menuProducts[k] = api.OrderMenuProduct{
				ProductName: mp.ProductName(),
				Price:       mp.Price().String(),
				Quantity:    mp.Quantity(),
			}
		}

		lineItems = append(lineItems, api.OrderLineItem{
			Seq:           li.ID().Bytes(),
			MenuId:        li.MenuID().Bytes(),
			MenuName:      li.Menu().Name(),
			MenuPrice:     li.Menu().Price().String(),
			MenuGroupName: li.Menu().MenuGroupName(),
			MenuProducts:  menuProducts,
			Quantity:      li.Quantity(),
		})
	}

	return api.Order{
		Id:             o.ID().Bytes(),
		OrderTableId:   o.TableID().Bytes(),
		OrderStatus:    api.OrderOrderStatus(o.Status().String()),
		OrderedTime:    o.OrderedAt(),
		OrderLineItems: lineItems,
	}
}
