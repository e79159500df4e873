package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"kitchenpos/internal/adapters/in/http/api"
	"kitchenpos/internal/adapters/out/postgres/pgerr"
	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/application/usecases/queries"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/core/domain/model/product"
	"kitchenpos/internal/core/domain/model/table"
	"kitchenpos/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type handlerMock[Req, Res any] struct {
	mock.Mock
}

func (m *handlerMock[Req, Res]) Handle(ctx context.Context, req Req) (Res, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(Res), args.Error(1)
}

type ungroupMock struct {
	mock.Mock
}

func (m *ungroupMock) Handle(ctx context.Context, cmd commands.UngroupTablesCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

func newTestRouter(t *testing.T, handlers Handlers) *echo.Echo {
	t.Helper()

	e, err := NewRouter(NewServer(handlers, nil), nil)
	require.NoError(t, err)
	return e
}

func serve(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) api.Error {
	t.Helper()

	var body api.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealth(t *testing.T) {
	e := newTestRouter(t, Handlers{})

	rec := serve(e, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestSwaggerDocument(t *testing.T) {
	e := newTestRouter(t, Handlers{})

	rec := serve(e, http.MethodGet, "/swagger/doc.json", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/api/table-groups/{tableGroupId}")
}

func TestUnknownRoute_ReturnsErrorBody(t *testing.T) {
	e := newTestRouter(t, Handlers{})

	rec := serve(e, http.MethodGet, "/api/unknown", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, http.StatusNotFound, decodeError(t, rec).Code)
}

func TestCreateProduct_Created(t *testing.T) {
	price, err := kernel.PriceFromString("16000")
	require.NoError(t, err)
	created, err := product.NewProduct(kernel.NewUUID(), "Fried chicken", price)
	require.NoError(t, err)

	handler := new(handlerMock[commands.CreateProductCommand, *product.Product])
	handler.On("Handle", mock.Anything, mock.Anything).Return(created, nil).Once()
	e := newTestRouter(t, Handlers{CreateProduct: handler})

	rec := serve(e, http.MethodPost, "/api/products", `{"name":"Fried chicken","price":"16000"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var body api.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, created.ID().Bytes(), body.Id)
	assert.Equal(t, "Fried chicken", body.Name)
	assert.Equal(t, "16000", body.Price)
	handler.AssertExpectations(t)
}

func TestCreateProduct_NumericPrice_RejectedBeforeHandler(t *testing.T) {
	handler := new(handlerMock[commands.CreateProductCommand, *product.Product])
	e := newTestRouter(t, Handlers{CreateProduct: handler})

	rec := serve(e, http.MethodPost, "/api/products", `{"name":"Fried chicken","price":16000}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, http.StatusBadRequest, decodeError(t, rec).Code)
	handler.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestCreateProduct_MissingName_RejectedBeforeHandler(t *testing.T) {
	handler := new(handlerMock[commands.CreateProductCommand, *product.Product])
	e := newTestRouter(t, Handlers{CreateProduct: handler})

	rec := serve(e, http.MethodPost, "/api/products", `{"price":"16000"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	handler.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestCreateProduct_NegativePrice_ReturnsBadRequest(t *testing.T) {
	handler := new(handlerMock[commands.CreateProductCommand, *product.Product])
	e := newTestRouter(t, Handlers{CreateProduct: handler})

	rec := serve(e, http.MethodPost, "/api/products", `{"name":"Fried chicken","price":"-1"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	handler.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestCreateProduct_PriceBeyondColumnPrecision_ReturnsBadRequest(t *testing.T) {
	handler := new(handlerMock[commands.CreateProductCommand, *product.Product])
	e := newTestRouter(t, Handlers{CreateProduct: handler})

	for _, price := range []string{"16000.005", "100000000000000000"} {
		rec := serve(e, http.MethodPost, "/api/products", `{"name":"Fried chicken","price":"`+price+`"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code, price)
	}
	handler.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestCreateOrder_NoLineItems_ReturnsBadRequest(t *testing.T) {
	handler := new(handlerMock[commands.CreateOrderCommand, *order.Order])
	e := newTestRouter(t, Handlers{CreateOrder: handler})

	body := `{"orderTableId":"` + kernel.NewUUID().String() + `","orderLineItems":[]}`
	rec := serve(e, http.MethodPost, "/api/orders", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	handler.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestCreateOrder_EmptyTable_ReturnsConflict(t *testing.T) {
	handler := new(handlerMock[commands.CreateOrderCommand, *order.Order])
	handler.On("Handle", mock.Anything, mock.Anything).Return((*order.Order)(nil), table.ErrTableIsEmpty).Once()
	e := newTestRouter(t, Handlers{CreateOrder: handler})

	body := `{"orderTableId":"` + kernel.NewUUID().String() +
		`","orderLineItems":[{"menuId":"` + kernel.NewUUID().String() + `","quantity":1}]}`
	rec := serve(e, http.MethodPost, "/api/orders", body)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, decodeError(t, rec).Message, "empty")
	handler.AssertExpectations(t)
}

func TestCreateOrder_RendersMenuProductSnapshot(t *testing.T) {
	price, err := kernel.PriceFromString("16000")
	require.NoError(t, err)
	colaPrice, err := kernel.PriceFromString("1500.50")
	require.NoError(t, err)
	chicken, err := order.NewOrderMenuProduct("Fried chicken", price, 1)
	require.NoError(t, err)
	cola, err := order.NewOrderMenuProduct("Cola", colaPrice, 2)
	require.NoError(t, err)
	snapshot, err := order.NewOrderMenu("Chicken set", price, "Sets", chicken, cola)
	require.NoError(t, err)
	li, err := order.NewOrderLineItem(kernel.NewUUID(), kernel.NewUUID(), snapshot, 1)
	require.NoError(t, err)
	placed, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), time.Now(), []*order.OrderLineItem{li})
	require.NoError(t, err)

	handler := new(handlerMock[commands.CreateOrderCommand, *order.Order])
	handler.On("Handle", mock.Anything, mock.Anything).Return(placed, nil).Once()
	e := newTestRouter(t, Handlers{CreateOrder: handler})

	body := `{"orderTableId":"` + placed.TableID().String() +
		`","orderLineItems":[{"menuId":"` + li.MenuID().String() + `","quantity":1}]}`
	rec := serve(e, http.MethodPost, "/api/orders", body)

	require.Equal(t, http.StatusCreated, rec.Code)
	var got api.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.OrderLineItems, 1)
	assert.Equal(t, []api.OrderMenuProduct{
		{ProductName: "Fried chicken", Price: "16000", Quantity: 1},
		{ProductName: "Cola", Price: "1500.5", Quantity: 2},
	}, got.OrderLineItems[0].MenuProducts)
	handler.AssertExpectations(t)
}

func TestChangeOrderStatus_CompletedOrder_ReturnsConflict(t *testing.T) {
	handler := new(handlerMock[commands.ChangeOrderStatusCommand, *order.Order])
	handler.On("Handle", mock.Anything, mock.Anything).
		Return((*order.Order)(nil), errs.NewInvalidStateTransitionError("COMPLETION", "MEAL")).Once()
	e := newTestRouter(t, Handlers{ChangeOrderStatus: handler})

	target := "/api/orders/" + kernel.NewUUID().String() + "/order-status"
	rec := serve(e, http.MethodPut, target, `{"orderStatus":"MEAL"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	handler.AssertExpectations(t)
}

func TestChangeOrderStatus_MalformedID_ReturnsBadRequest(t *testing.T) {
	handler := new(handlerMock[commands.ChangeOrderStatusCommand, *order.Order])
	e := newTestRouter(t, Handlers{ChangeOrderStatus: handler})

	rec := serve(e, http.MethodPut, "/api/orders/not-a-uuid/order-status", `{"orderStatus":"MEAL"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, http.StatusBadRequest, decodeError(t, rec).Code)
	handler.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestChangeOrderStatus_UnknownStatus_ReturnsBadRequest(t *testing.T) {
	handler := new(handlerMock[commands.ChangeOrderStatusCommand, *order.Order])
	e := newTestRouter(t, Handlers{ChangeOrderStatus: handler})

	target := "/api/orders/" + kernel.NewUUID().String() + "/order-status"
	rec := serve(e, http.MethodPut, target, `{"orderStatus":"SERVED"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	handler.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestChangeTableEmpty_ReturnsUpdatedTable(t *testing.T) {
	updated, err := table.NewOrderTable(kernel.NewUUID(), 0, false)
	require.NoError(t, err)

	handler := new(handlerMock[commands.ChangeTableEmptyCommand, *table.OrderTable])
	handler.On("Handle", mock.Anything, mock.Anything).Return(updated, nil).Once()
	e := newTestRouter(t, Handlers{ChangeTableEmpty: handler})

	rec := serve(e, http.MethodPut, "/api/tables/"+updated.ID().String()+"/empty", `{"empty":false}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var body api.OrderTable
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Empty)
	assert.Nil(t, body.TableGroupId)
}

func TestListTables_RendersGroupMembership(t *testing.T) {
	groupID := kernel.NewUUID()
	listed := []queries.ListTablesQueryResponse{
		{ID: kernel.NewUUID(), NumberOfGuests: 0, Empty: true},
		{ID: kernel.NewUUID(), NumberOfGuests: 4, Empty: false, TableGroupID: &groupID},
	}

	handler := new(handlerMock[queries.ListTablesQuery, []queries.ListTablesQueryResponse])
	handler.On("Handle", mock.Anything, mock.Anything).Return(listed, nil).Once()
	e := newTestRouter(t, Handlers{ListTables: handler})

	rec := serve(e, http.MethodGet, "/api/tables", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body []api.OrderTable
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 2)
	assert.Nil(t, body[0].TableGroupId)
	require.NotNil(t, body[1].TableGroupId)
	assert.Equal(t, groupID.Bytes(), *body[1].TableGroupId)
	assert.Equal(t, 4, body[1].NumberOfGuests)
}

func TestGroupTables_NonEmptyMember_ReturnsConflict(t *testing.T) {
	handler := new(handlerMock[commands.GroupTablesCommand, *table.TableGroup])
	handler.On("Handle", mock.Anything, mock.Anything).Return((*table.TableGroup)(nil), table.ErrTableIsNotEmpty).Once()
	e := newTestRouter(t, Handlers{GroupTables: handler})

	body := `{"orderTables":[{"id":"` + kernel.NewUUID().String() + `"},{"id":"` + kernel.NewUUID().String() + `"}]}`
	rec := serve(e, http.MethodPost, "/api/table-groups", body)

	assert.Equal(t, http.StatusConflict, rec.Code)
	handler.AssertExpectations(t)
}

func TestUngroupTables(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"dissolved", nil, http.StatusNoContent},
		{"unknown group", errs.NewObjectNotFoundError("tableGroupId", "x"), http.StatusNotFound},
		{"active orders", table.ErrTableHasActiveOrders, http.StatusConflict},
		{"database failure", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := new(ungroupMock)
			handler.On("Handle", mock.Anything, mock.Anything).Return(tt.err).Once()
			e := newTestRouter(t, Handlers{UngroupTables: handler})

			rec := serve(e, http.MethodDelete, "/api/table-groups/"+kernel.NewUUID().String(), "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			handler.AssertExpectations(t)
		})
	}
}

func TestInternalErrorsHideDetails(t *testing.T) {
	handler := new(handlerMock[queries.ListProductsQuery, []queries.ListProductsQueryResponse])
	handler.On("Handle", mock.Anything, mock.Anything).
		Return([]queries.ListProductsQueryResponse(nil), errors.New("pq: password authentication failed")).Once()
	e := newTestRouter(t, Handlers{ListProducts: handler})

	rec := serve(e, http.MethodGet, "/api/products", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal Server Error", decodeError(t, rec).Message)
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", errs.NewObjectNotFoundError("orderId", "x"), http.StatusNotFound},
		{"invalid value", errs.NewValueIsInvalidError("price"), http.StatusBadRequest},
		{"required value", errs.NewValueIsRequiredError("name"), http.StatusBadRequest},
		{"state transition", errs.NewInvalidStateTransitionError("COMPLETION", "COOKING"), http.StatusConflict},
		{"precondition", errs.NewPreconditionFailedError("order table is empty"), http.StatusConflict},
		{
			"numeric overflow from storage",
			pgerr.Translate(&pgconn.PgError{Code: "22003"}, "productId", kernel.NewUUID()),
			http.StatusBadRequest,
		},
		{"echo error", echo.NewHTTPError(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed},
		{"other", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}
