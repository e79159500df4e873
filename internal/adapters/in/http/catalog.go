package http

import (
	"net/http"

	"kitchenpos/internal/adapters/in/http/api"
	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/application/usecases/queries"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/core/domain/model/menugroup"
	"kitchenpos/internal/core/domain/model/product"

	"github.com/labstack/echo/v4"
)

// ListProducts handles GET /api/products.
func (s *Server) ListProducts(ctx echo.Context) error {
	products, err := s.handlers.ListProducts.Handle(ctx.Request().Context(), queries.NewListProductsQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]api.Product, len(products))
	for i, p := range products {
		response[i] = api.Product{
			Id:    p.ID.Bytes(),
			Name:  p.Name,
			Price: p.Price.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateProduct handles POST /api/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var body api.CreateProductJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.fail(ctx, badRequestBody(err))
	}

	price, err := toKernelPrice("price", body.Price)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCreateProductCommand(kernel.NewUUID(), body.Name, price)
	if err != nil {
		return s.fail(ctx, err)
	}

	p, err := s.handlers.CreateProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toProductResponse(p))
}

// ListMenuGroups handles GET /api/menu-groups.
func (s *Server) ListMenuGroups(ctx echo.Context) error {
	groups, err := s.handlers.ListMenuGroups.Handle(ctx.Request().Context(), queries.NewListMenuGroupsQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]api.MenuGroup, len(groups))
	for i, g := range groups {
		response[i] = api.MenuGroup{Id: g.ID.Bytes(), Name: g.Name}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateMenuGroup handles POST /api/menu-groups.
func (s *Server) CreateMenuGroup(ctx echo.Context) error {
	var body api.CreateMenuGroupJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.fail(ctx, badRequestBody(err))
	}

	cmd, err := commands.NewCreateMenuGroupCommand(kernel.NewUUID(), body.Name)
	if err != nil {
		return s.fail(ctx, err)
	}

	g, err := s.handlers.CreateMenuGroup.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toMenuGroupResponse(g))
}

// ListMenus handles GET /api/menus.
func (s *Server) ListMenus(ctx echo.Context) error {
	menus, err := s.handlers.ListMenus.Handle(ctx.Request().Context(), queries.NewListMenusQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]api.Menu, len(menus))
	for i, m := range menus {
		products := make([]api.MenuProduct, len(m.MenuProducts))
		for j, mp := range m.MenuProducts {
			products[j] = api.MenuProduct{
				Seq:       mp.ID.Bytes(),
				ProductId: mp.ProductID.Bytes(),
				Quantity:  mp.Quantity,
			}
		}

		response[i] = api.Menu{
			Id:           m.ID.Bytes(),
			Name:         m.Name,
			Price:        m.Price.String(),
			MenuGroupId:  m.MenuGroupID.Bytes(),
			MenuProducts: products,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateMenu handles POST /api/menus.
func (s *Server) CreateMenu(ctx echo.Context) error {
	var body api.CreateMenuJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.fail(ctx, badRequestBody(err))
	}

	price, err := toKernelPrice("price", body.Price)
	if err != nil {
		return s.fail(ctx, err)
	}

	groupID, err := toKernelID("menuGroupId", body.MenuGroupId)
	if err != nil {
		return s.fail(ctx, err)
	}

	lines := make([]commands.MenuProductLine, len(body.MenuProducts))
	for i, mp := range body.MenuProducts {
		productID, err := toKernelID("productId", mp.ProductId)
		if err != nil {
			return s.fail(ctx, err)
		}
		lines[i] = commands.MenuProductLine{ProductID: productID, Quantity: mp.Quantity}
	}

	cmd, err := commands.NewCreateMenuCommand(kernel.NewUUID(), body.Name, price, groupID, lines)
	if err != nil {
		return s.fail(ctx, err)
	}

	m, err := s.handlers.CreateMenu.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toMenuResponse(m))
}

func toProductResponse(p *product.Product) api.Product {
	return api.Product{
		Id:    p.ID().Bytes(),
		Name:  p.Name(),
		Price: p.Price().String(),
	}
}

func toMenuGroupResponse(g *menugroup.MenuGroup) api.MenuGroup {
	return api.MenuGroup{Id: g.ID().Bytes(), Name: g.Name()}
}

func toMenuResponse(m *menu.Menu) api.Menu {
	products := make([]api.MenuProduct, 0, len(m.MenuProducts()))
	for _, mp := range m.MenuProducts() {
		products = append(products, api.MenuProduct{
			Seq:       mp.ID().Bytes(),
			ProductId: mp.ProductID().Bytes(),
			Quantity:  mp.Quantity(),
		})
	}

	return api.Menu{
		Id:           m.ID().Bytes(),
		Name:         m.Name(),
		Price:        m.Price().String(),
		MenuGroupId:  m.MenuGroupID().Bytes(),
		MenuProducts: products,
	}
}
