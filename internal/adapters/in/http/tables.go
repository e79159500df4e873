package http

import (
	"net/http"

	"kitchenpos/internal/adapters/in/http/api"
	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/application/usecases/queries"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/table"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ListTables handles GET /api/tables.
func (s *Server) ListTables(ctx echo.Context) error {
	tables, err := s.handlers.ListTables.Handle(ctx.Request().Context(), queries.NewListTablesQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]api.OrderTable, len(tables))
	for i, t := range tables {
		response[i] = toListedTableResponse(t)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateTable handles POST /api/tables.
func (s *Server) CreateTable(ctx echo.Context) error {
	var body api.CreateTableJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.fail(ctx, badRequestBody(err))
	}

	cmd, err := commands.NewCreateTableCommand(kernel.NewUUID(), body.NumberOfGuests, body.Empty)
	if err != nil {
		return s.fail(ctx, err)
	}

	t, err := s.handlers.CreateTable.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrderTableResponse(t))
}

// ChangeTableEmpty handles PUT /api/tables/{orderTableId}/empty.
func (s *Server) ChangeTableEmpty(ctx echo.Context, orderTableId openapi_types.UUID) error {
	var body api.ChangeTableEmptyJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.fail(ctx, badRequestBody(err))
	}

	id, err := toKernelID("orderTableId", orderTableId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewChangeTableEmptyCommand(id, body.Empty)
	if err != nil {
		return s.fail(ctx, err)
	}

	t, err := s.handlers.ChangeTableEmpty.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderTableResponse(t))
}

// ChangeNumberOfGuests handles PUT /api/tables/{orderTableId}/number-of-guests.
func (s *Server) ChangeNumberOfGuests(ctx echo.Context, orderTableId openapi_types.UUID) error {
	var body api.ChangeNumberOfGuestsJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.fail(ctx, badRequestBody(err))
	}

	id, err := toKernelID("orderTableId", orderTableId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewChangeNumberOfGuestsCommand(id, body.NumberOfGuests)
	if err != nil {
		return s.fail(ctx, err)
	}

	t, err := s.handlers.ChangeNumberOfGuests.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderTableResponse(t))
}

// GroupTables handles POST /api/table-groups. The response lists the members
// as they are after joining the group.
func (s *Server) GroupTables(ctx echo.Context) error {
	var body api.GroupTablesJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.fail(ctx, badRequestBody(err))
	}

	tableIDs := make([]kernel.UUID, len(body.OrderTables))
	for i, ref := range body.OrderTables {
		id, err := toKernelID("orderTables", ref.Id)
		if err != nil {
			return s.fail(ctx, err)
		}
		tableIDs[i] = id
	}

	cmd, err := commands.NewGroupTablesCommand(kernel.NewUUID(), tableIDs)
	if err != nil {
		return s.fail(ctx, err)
	}

	group, err := s.handlers.GroupTables.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	members, err := s.groupMembers(ctx, group)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, api.TableGroup{
		Id:          group.ID().Bytes(),
		CreatedDate: group.CreatedAt(),
		OrderTables: members,
	})
}

// UngroupTables handles DELETE /api/table-groups/{tableGroupId}.
func (s *Server) UngroupTables(ctx echo.Context, tableGroupId openapi_types.UUID) error {
	id, err := toKernelID("tableGroupId", tableGroupId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUngroupTablesCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.handlers.UngroupTables.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) groupMembers(ctx echo.Context, group *table.TableGroup) ([]api.OrderTable, error) {
	tables, err := s.handlers.ListTables.Handle(ctx.Request().Context(), queries.NewListTablesQuery())
	if err != nil {
		return nil, err
	}

	members := make([]api.OrderTable, 0, len(group.TableIDs()))
	for _, t := range tables {
		if t.TableGroupID != nil && t.TableGroupID.IsEqual(group.ID()) {
			members = append(members, toListedTableResponse(t))
		}
	}

	return members, nil
}

func toOrderTableResponse(t *table.OrderTable) api.OrderTable {
	response := api.OrderTable{
		Id:             t.ID().Bytes(),
		NumberOfGuests: t.NumberOfGuests().Int(),
		Empty:          t.IsEmpty(),
	}
	if groupID := t.TableGroupID(); groupID != nil {
		id := openapi_types.UUID(groupID.Bytes())
		response.TableGroupId = &id
	}
	return response
}

func toListedTableResponse(t queries.ListTablesQueryResponse) api.OrderTable {
	response := api.OrderTable{
		Id:             t.ID.Bytes(),
		NumberOfGuests: t.NumberOfGuests,
		Empty:          t.Empty,
	}
	if t.TableGroupID != nil {
		id := openapi_types.UUID(t.TableGroupID.Bytes())
		response.TableGroupId = &id
	}
	return response
}
