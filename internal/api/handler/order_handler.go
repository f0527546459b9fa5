package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/orderdesk/orders-admin/internal/api/metrics"
	"github.com/orderdesk/orders-admin/internal/core/domain"
	"github.com/orderdesk/orders-admin/internal/core/ports"
)

// OrderHandler serves the order management endpoints.
type OrderHandler struct {
	orderService ports.OrderService
}

func NewOrderHandler(orderService ports.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

type orderRequest struct {
	OrderNumber string  `json:"order_number" validate:"required"`
	ProductName string  `json:"product_name" validate:"required"`
	Price       float64 `json:"price"        validate:"required,gt=0"`
	Quantity    int     `json:"quantity"     validate:"required,gt=0"`
	PlacedBy    string  `json:"placed_by,omitempty"`
}

type orderListResponse struct {
	Orders []*domain.Order `json:"orders"`
}

// List returns all orders.
//
// @Summary      List orders
// @Tags         orders
// @Produce      json
// @Success      200  {object}  orderListResponse
// @Router       /orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	if _, err := currentPrincipal(c); err != nil {
		return err
	}

	orders, err := h.orderService.ListOrders(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orderListResponse{Orders: orders})
}

// Get returns a single order by id.
//
// @Summary      Get an order
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order id"
// @Success      200  {object}  domain.Order
// @Failure      404  {object}  map[string]string
// @Router       /orders/{id} [get]
func (h *OrderHandler) Get(c echo.Context) error {
	if _, err := currentPrincipal(c); err != nil {
		return err
	}

	order, err := h.orderService.GetOrder(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

// Create inserts a new order. Any id supplied by the caller is ignored; the
// store assigns one.
//
// @Summary      Create an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body      orderRequest  true  "Order fields"
// @Success      201   {object}  domain.Order
// @Failure      400   {object}  map[string]string
// @Router       /orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	if _, err := currentPrincipal(c); err != nil {
		return err
	}

	var req orderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	order, err := h.orderService.CreateOrder(c.Request().Context(), ports.CreateOrderInput{
		OrderNumber: req.OrderNumber,
		ProductName: req.ProductName,
		Price:       req.Price,
		Quantity:    req.Quantity,
		PlacedBy:    req.PlacedBy,
	})
	if err != nil {
		return err
	}

	metrics.OrdersCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, order)
}

// Update modifies an existing order.
//
// @Summary      Update an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id    path      string        true  "Order id"
// @Param        body  body      orderRequest  true  "Order fields"
// @Success      200   {object}  domain.Order
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /orders/{id} [put]
func (h *OrderHandler) Update(c echo.Context) error {
	if _, err := currentPrincipal(c); err != nil {
		return err
	}

	var req orderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	order, err := h.orderService.UpdateOrder(c.Request().Context(), ports.UpdateOrderInput{
		ID:          c.Param("id"),
		OrderNumber: req.OrderNumber,
		ProductName: req.ProductName,
		Price:       req.Price,
		Quantity:    req.Quantity,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

// Delete removes an order.
//
// @Summary      Delete an order
// @Tags         orders
// @Produce      json
// @Param        id   path  string  true  "Order id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /orders/{id} [delete]
func (h *OrderHandler) Delete(c echo.Context) error {
	if _, err := currentPrincipal(c); err != nil {
		return err
	}

	deleted, err := h.orderService.DeleteOrder(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if !deleted {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "order not found"})
	}
	return c.NoContent(http.StatusNoContent)
}
