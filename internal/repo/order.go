package repo

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/Skotchmaster/inventory_service/internal/domain"
	"github.com/Skotchmaster/inventory_service/internal/models"
	"gorm.io/gorm"
)

func (r *GormRepo) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	order := models.Order{}
	if err := r.DB.WithContext(ctx).Preload("Items").First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormRepo) ListOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := r.DB.WithContext(ctx).Model(&models.Order{}).Preload("Items").Order("id ASC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// PlaceOrder stages the order row, one item per requested product and every
// stock decrement in a single transaction. Nothing is visible to other
// sessions until the whole batch validates; any failure rolls everything back.
//
// The decrement is a guarded UPDATE with an amount_left >= amount predicate,
// so two concurrent orders cannot drive a product's stock below zero no
// matter what their earlier reads returned.
func (r *GormRepo) PlaceOrder(ctx context.Context, order *models.Order, requested map[uint]int) error {
	ids := make([]uint, 0, len(requested))
	for id := range requested {
		ids = append(ids, id)
	}
	// ascending id keeps the row-update order deterministic across
	// concurrent transactions
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		for _, id := range ids {
			amount := requested[id]

			product := models.Product{}
			if err := tx.First(&product, id).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: product with id %d does not exist", domain.ErrNotFound, id)
				}
				return err
			}

			if amount <= 0 {
				return fmt.Errorf("%w: product %q needs an amount of 1 or more", domain.ErrValidation, product.Name)
			}

			res := tx.Model(&models.Product{}).
				Where("id = ? AND amount_left >= ?", id, amount).
				Update("amount_left", gorm.Expr("amount_left - ?", amount))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("%w: not enough stock for %q (id %d): available %d, requested %d",
					domain.ErrInsufficientStock, product.Name, product.ID, product.AmountLeft, amount)
			}

			item := models.OrderItem{
				OrderID:         order.ID,
				ProductID:       id,
				AmountOfProduct: amount,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *GormRepo) UpdateOrderStatus(ctx context.Context, id uint, status string) (*models.Order, error) {
	order := models.Order{}
	if err := r.DB.WithContext(ctx).First(&order, id).Error; err != nil {
		return nil, err
	}

	order.Status = status
	if err := r.DB.WithContext(ctx).Save(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// DeleteOrder removes the order and its items in one transaction, same
// explicit cascade as DeleteProduct.
func (r *GormRepo) DeleteOrder(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&models.Order{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
