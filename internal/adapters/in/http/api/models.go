package api

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Defines values for OrderOrderStatus.
const (
	COMPLETION OrderOrderStatus = "COMPLETION"
	COOKING    OrderOrderStatus = "COOKING"
	MEAL       OrderOrderStatus = "MEAL"
)

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Menu defines model for Menu.
type Menu struct {
	Id           openapi_types.UUID `json:"id"`
	MenuGroupId  openapi_types.UUID `json:"menuGroupId"`
	MenuProducts []MenuProduct      `json:"menuProducts"`
	Name         string             `json:"name"`

	// Price Decimal amount, e.g. "16000" or "12.50"
	Price Price `json:"price"`
}

// MenuGroup defines model for MenuGroup.
type MenuGroup struct {
	Id   openapi_types.UUID `json:"id"`
	Name string             `json:"name"`
}

// MenuProduct defines model for MenuProduct.
type MenuProduct struct {
	ProductId openapi_types.UUID `json:"productId"`
	Quantity  int64              `json:"quantity"`
	Seq       openapi_types.UUID `json:"seq"`
}

// NewMenu defines model for NewMenu.
type NewMenu struct {
	MenuGroupId  openapi_types.UUID `json:"menuGroupId"`
	MenuProducts []NewMenuProduct   `json:"menuProducts"`
	Name         string             `json:"name"`

	// Price Decimal amount, e.g. "16000" or "12.50"
	Price Price `json:"price"`
}

// NewMenuGroup defines model for NewMenuGroup.
type NewMenuGroup struct {
	Name string `json:"name"`
}

// NewMenuProduct defines model for NewMenuProduct.
type NewMenuProduct struct {
	ProductId openapi_types.UUID `json:"productId"`
	Quantity  int64              `json:"quantity"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	OrderLineItems []NewOrderLineItem `json:"orderLineItems"`
	OrderTableId   openapi_types.UUID `json:"orderTableId"`
}

// NewOrderLineItem defines model for NewOrderLineItem.
type NewOrderLineItem struct {
	MenuId   openapi_types.UUID `json:"menuId"`
	Quantity int64              `json:"quantity"`
}

// NewOrderTable defines model for NewOrderTable.
type NewOrderTable struct {
	Empty          bool `json:"empty"`
	NumberOfGuests int  `json:"numberOfGuests"`
}

// NewProduct defines model for NewProduct.
type NewProduct struct {
	Name string `json:"name"`

	// Price Decimal amount, e.g. "16000" or "12.50"
	Price Price `json:"price"`
}

// NewTableGroup defines model for NewTableGroup.
type NewTableGroup struct {
	OrderTables []TableRef `json:"orderTables"`
}

// NumberOfGuestsChange defines model for NumberOfGuestsChange.
type NumberOfGuestsChange struct {
	NumberOfGuests int `json:"numberOfGuests"`
}

// Order defines model for Order.
type Order struct {
	Id             openapi_types.UUID `json:"id"`
	OrderLineItems []OrderLineItem    `json:"orderLineItems"`
	OrderStatus    OrderOrderStatus   `json:"orderStatus"`
	OrderTableId   openapi_types.UUID `json:"orderTableId"`
	OrderedTime    time.Time          `json:"orderedTime"`
}

// OrderOrderStatus defines model for Order.OrderStatus.
type OrderOrderStatus string

// OrderLineItem defines model for OrderLineItem.
type OrderLineItem struct {
	MenuGroupName string             `json:"menuGroupName"`
	MenuId        openapi_types.UUID `json:"menuId"`
	MenuName      string             `json:"menuName"`

	// MenuPrice Decimal amount, e.g. "16000" or "12.50"
	MenuPrice    Price              `json:"menuPrice"`
	MenuProducts []OrderMenuProduct `json:"menuProducts"`
	Quantity     int64              `json:"quantity"`
	Seq          openapi_types.UUID `json:"seq"`
}

// OrderMenuProduct defines model for OrderMenuProduct.
type OrderMenuProduct struct {
	// Price Decimal amount, e.g. "16000" or "12.50"
	Price       Price  `json:"price"`
	ProductName string `json:"productName"`
	Quantity    int64  `json:"quantity"`
}

// OrderStatusChange defines model for OrderStatusChange.
type OrderStatusChange struct {
	OrderStatus string `json:"orderStatus"`
}

// OrderTable defines model for OrderTable.
type OrderTable struct {
	Empty          bool                `json:"empty"`
	Id             openapi_types.UUID  `json:"id"`
	NumberOfGuests int                 `json:"numberOfGuests"`
	TableGroupId   *openapi_types.UUID `json:"tableGroupId"`
}

// Price Decimal amount, e.g. "16000" or "12.50"
type Price = string

// Product defines model for Product.
type Product struct {
	Id   openapi_types.UUID `json:"id"`
	Name string             `json:"name"`

	// Price Decimal amount, e.g. "16000" or "12.50"
	Price Price `json:"price"`
}

// TableEmptyChange defines model for TableEmptyChange.
type TableEmptyChange struct {
	Empty bool `json:"empty"`
}

// TableGroup defines model for TableGroup.
type TableGroup struct {
	CreatedDate time.Time          `json:"createdDate"`
	Id          openapi_types.UUID `json:"id"`
	OrderTables []OrderTable       `json:"orderTables"`
}

// TableRef defines model for TableRef.
type TableRef struct {
	Id openapi_types.UUID `json:"id"`
}

// CreateMenuJSONRequestBody defines body for CreateMenu for application/json ContentType.
type CreateMenuJSONRequestBody = NewMenu

// CreateMenuGroupJSONRequestBody defines body for CreateMenuGroup for application/json ContentType.
type CreateMenuGroupJSONRequestBody = NewMenuGroup

// CreateOrderJSONRequestBody defines body for CreateOrder for application/json ContentType.
type CreateOrderJSONRequestBody = NewOrder

// ChangeOrderStatusJSONRequestBody defines body for ChangeOrderStatus for application/json ContentType.
type ChangeOrderStatusJSONRequestBody = OrderStatusChange

// CreateProductJSONRequestBody defines body for CreateProduct for application/json ContentType.
type CreateProductJSONRequestBody = NewProduct

// GroupTablesJSONRequestBody defines body for GroupTables for application/json ContentType.
type GroupTablesJSONRequestBody = NewTableGroup

// CreateTableJSONRequestBody defines body for CreateTable for application/json ContentType.
type CreateTableJSONRequestBody = NewOrderTable

// ChangeTableEmptyJSONRequestBody defines body for ChangeTableEmpty for application/json ContentType.
type ChangeTableEmptyJSONRequestBody = TableEmptyChange

// ChangeNumberOfGuestsJSONRequestBody defines body for ChangeNumberOfGuests for application/json ContentType.
type ChangeNumberOfGuestsJSONRequestBody = NumberOfGuestsChange
