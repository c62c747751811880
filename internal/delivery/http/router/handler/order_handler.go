// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler holds dependencies for order-related handlers.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler.
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// OrderItemRequest is a caller-supplied line item.
type OrderItemRequest struct {
	ProductID   string  `json:"productId" validate:"required"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity" validate:"required,min=1"`
	Price       float64 `json:"price" validate:"min=0"`
}

// CreateOrderRequest represents the request body for creating an order.
// Caller-supplied status and orderDate fields are ignored; the server assigns
// both. TotalAmount is stored verbatim, never recomputed from the items.
type CreateOrderRequest struct {
	UserID      string             `json:"userId" validate:"required"`
	Items       []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	TotalAmount float64            `json:"totalAmount" validate:"min=0"`
}

// OrderItemResponse is the wire representation of an embedded line item.
type OrderItemResponse struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// OrderResponse is the wire representation of an order.
type OrderResponse struct {
	ID          string              `json:"id"`
	UserID      string              `json:"userId"`
	Items       []OrderItemResponse `json:"items"`
	TotalAmount float64             `json:"totalAmount"`
	Status      string              `json:"status"`
	OrderDate   time.Time           `json:"orderDate"`
}

func toOrderResponse(order *entity.Order) *OrderResponse {
	items := make([]OrderItemResponse, len(order.Items))
	for i, item := range order.Items {
		items[i] = OrderItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
		}
	}

	return &OrderResponse{
		ID:          order.ID,
		UserID:      order.UserID,
		Items:       items,
		TotalAmount: order.TotalAmount,
		Status:      order.Status,
		OrderDate:   order.OrderDate,
	}
}

func toOrderResponses(orders []*entity.Order) []*OrderResponse {
	responses := make([]*OrderResponse, len(orders))
	for i, order := range orders {
		responses[i] = toOrderResponse(order)
	}

	return responses
}

// ListAll handles listing every order in the store.
func (h *OrderHandler) ListAll(c echo.Context) error {
	orders, err := h.orderUC.ListAll(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toOrderResponses(orders), "Orders retrieved successfully")
}

// ListByUser handles listing the orders owned by the user named in the path.
// Only role membership has been checked by the time this runs: the caller's
// own identity is not compared against the path value.
func (h *OrderHandler) ListByUser(c echo.Context) error {
	userID := c.Param("userId")

	orders, err := h.orderUC.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toOrderResponses(orders), "Orders retrieved successfully")
}

// GetByID handles fetching a single order.
func (h *OrderHandler) GetByID(c echo.Context) error {
	order, err := h.orderUC.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toOrderResponse(order), "Order retrieved successfully")
}

// Create handles the order creation request.
func (h *OrderHandler) Create(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	items := make([]usecase.OrderItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = usecase.OrderItemInput{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
		}
	}

	order, err := h.orderUC.Create(c.Request().Context(), &usecase.CreateOrderInput{
		UserID:      req.UserID,
		Items:       items,
		TotalAmount: req.TotalAmount,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toOrderResponse(order), "Order created successfully")
}

// UpdateStatus handles setting an order's status from the query parameter.
// The value is applied verbatim; no transition graph restricts it.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	status := c.QueryParam("status")
	if status == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Query parameter 'status' is required")
	}

	order, err := h.orderUC.UpdateStatus(c.Request().Context(), c.Param("id"), status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toOrderResponse(order), "Order status updated successfully")
}

// Delete handles removing an order permanently.
func (h *OrderHandler) Delete(c echo.Context) error {
	if err := h.orderUC.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
