package httpserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/inventory_service/internal/mykafka"
	"github.com/Skotchmaster/inventory_service/internal/service"
	"github.com/Skotchmaster/inventory_service/internal/transport"
	"github.com/Skotchmaster/inventory_service/pkg/logging"
)

type OrderHTTP struct {
	Svc      *service.OrderService
	Producer *mykafka.Producer
}

func (h *OrderHTTP) publish(c echo.Context, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, "order_events", fmt.Sprint(event["orderID"]), event); err != nil {
		c.Logger().Errorf("Kafka publish error: %v", err)
	}
}

func (h *OrderHTTP) GetOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get_orders")

	orders, err := h.Svc.ListOrders(ctx)
	if err != nil {
		return serviceError(l, "get_orders_error", err)
	}

	l.Info("get_orders_success", "count", len(orders))
	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHTTP) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get_order")

	id, err := parseID(c)
	if err != nil {
		l.Warn("get_order_error", "status", 400, "reason", "bad id param")
		return err
	}

	order, err := h.Svc.GetOrder(ctx, id)
	if err != nil {
		return serviceError(l, "get_order_error", err)
	}

	return c.JSON(http.StatusOK, order)
}

func (h *OrderHTTP) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.create_order")

	var req transport.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_order_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	order, err := h.Svc.PlaceOrder(ctx, req)
	if err != nil {
		return serviceError(l, "create_order_error", err)
	}

	h.publish(c, map[string]any{
		"type":     "order_placed",
		"orderID":  order.ID,
		"status":   order.Status,
		"products": order.Products,
	})

	l.Info("create_order_success", "order_id", order.ID, "items", len(order.Products))
	return c.JSON(http.StatusCreated, order)
}

func (h *OrderHTTP) PatchOrderStatus(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.patch_order_status")

	id, err := parseID(c)
	if err != nil {
		l.Warn("patch_order_status_error", "status", 400, "reason", "bad id param")
		return err
	}

	var req transport.UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("patch_order_status_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	order, err := h.Svc.UpdateOrderStatus(ctx, id, req.Status)
	if err != nil {
		return serviceError(l, "patch_order_status_error", err)
	}

	h.publish(c, map[string]any{
		"type":    "order_status_updated",
		"orderID": order.ID,
		"status":  order.Status,
	})

	l.Info("patch_order_status_success", "order_id", order.ID, "order_status", order.Status)
	return c.JSON(http.StatusOK, order)
}

func (h *OrderHTTP) DeleteOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.delete_order")

	id, err := parseID(c)
	if err != nil {
		l.Warn("delete_order_error", "status", 400, "reason", "bad id param")
		return err
	}

	if err := h.Svc.DeleteOrder(ctx, id); err != nil {
		return serviceError(l, "delete_order_error", err)
	}

	h.publish(c, map[string]any{
		"type":    "order_deleted",
		"orderID": id,
	})

	l.Info("delete_order_success", "order_id", id)
	return c.NoContent(http.StatusNoContent)
}
