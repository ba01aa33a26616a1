package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Skotchmaster/inventory_service/internal/domain"
	"github.com/Skotchmaster/inventory_service/internal/models"
	"github.com/Skotchmaster/inventory_service/internal/repo"
	"github.com/Skotchmaster/inventory_service/internal/transport"
	"gorm.io/gorm"
)

type OrderService struct {
	Repo *repo.GormRepo
}

func validateStatus(raw string) (string, error) {
	status := domain.NormalizeStatus(raw)
	if !domain.StatusAllowed(status) {
		return "", fmt.Errorf("%w: status %q is not one of: %s",
			domain.ErrValidation, raw, strings.Join(domain.AllowedStatuses(), ", "))
	}
	return status, nil
}

func orderView(order *models.Order) *transport.OrderResponse {
	products := make(map[uint]int, len(order.Items))
	for _, item := range order.Items {
		products[item.ProductID] = item.AmountOfProduct
	}
	return &transport.OrderResponse{
		ID:        order.ID,
		CreatedAt: order.CreatedAt,
		Status:    order.Status,
		Products:  products,
	}
}

func (s *OrderService) GetOrder(ctx context.Context, id uint) (*transport.OrderResponse, error) {
	order, err := s.Repo.GetOrder(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order with id %d does not exist", domain.ErrNotFound, id)
		}
		return nil, err
	}
	return orderView(order), nil
}

func (s *OrderService) ListOrders(ctx context.Context) ([]transport.OrderResponse, error) {
	orders, err := s.Repo.ListOrders(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]transport.OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, *orderView(&orders[i]))
	}
	return out, nil
}

// PlaceOrder validates the status up front, runs the stock-decrementing
// transaction and returns the order re-read from the store, so the response
// reflects exactly what was persisted.
func (s *OrderService) PlaceOrder(ctx context.Context, req transport.CreateOrderRequest) (*transport.OrderResponse, error) {
	status, err := validateStatus(req.Status)
	if err != nil {
		return nil, err
	}

	order := &models.Order{Status: status}
	if err := s.Repo.PlaceOrder(ctx, order, req.Products); err != nil {
		return nil, err
	}

	return s.GetOrder(ctx, order.ID)
}

func (s *OrderService) UpdateOrderStatus(ctx context.Context, id uint, raw string) (*transport.OrderResponse, error) {
	status, err := validateStatus(raw)
	if err != nil {
		return nil, err
	}

	if _, err := s.Repo.UpdateOrderStatus(ctx, id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order with id %d does not exist", domain.ErrNotFound, id)
		}
		return nil, err
	}

	return s.GetOrder(ctx, id)
}

func (s *OrderService) DeleteOrder(ctx context.Context, id uint) error {
	if err := s.Repo.DeleteOrder(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: order with id %d does not exist", domain.ErrNotFound, id)
		}
		return err
	}
	return nil
}
