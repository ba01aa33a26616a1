package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Skotchmaster/inventory_service/internal/domain"
	"github.com/Skotchmaster/inventory_service/internal/models"
	"github.com/Skotchmaster/inventory_service/internal/repo"
	"github.com/Skotchmaster/inventory_service/internal/transport"
	"gorm.io/gorm"
)

const (
	minNameLen = 3
	maxNameLen = 255
)

type ProductService struct {
	Repo *repo.GormRepo
}

func validateProduct(req transport.ProductRequest) error {
	if len(req.Name) < minNameLen || len(req.Name) > maxNameLen {
		return fmt.Errorf("%w: name must be %d to %d characters", domain.ErrValidation, minNameLen, maxNameLen)
	}
	if !req.Price.IsPositive() {
		return fmt.Errorf("%w: price must be greater than 0", domain.ErrValidation)
	}
	if req.AmountLeft < 0 {
		return fmt.Errorf("%w: amount_left must be 0 or more", domain.ErrValidation)
	}
	return nil
}

func (s *ProductService) checkName(ctx context.Context, name string, excludeID uint) error {
	taken, err := s.Repo.NameTaken(ctx, name, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("%w: product with this name already exists", domain.ErrConflict)
	}
	return nil
}

func (s *ProductService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	product, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product with id %d does not exist", domain.ErrNotFound, id)
		}
		return nil, err
	}
	return product, nil
}

func (s *ProductService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.Repo.ListProducts(ctx)
}

func (s *ProductService) CreateProduct(ctx context.Context, req transport.ProductRequest) (*models.Product, error) {
	if err := validateProduct(req); err != nil {
		return nil, err
	}
	if err := s.checkName(ctx, req.Name, 0); err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		AmountLeft:  req.AmountLeft,
	}
	if err := s.Repo.CreateProduct(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProduct replaces every caller-settable field (PUT semantics).
func (s *ProductService) UpdateProduct(ctx context.Context, id uint, req transport.ProductRequest) (*models.Product, error) {
	if err := validateProduct(req); err != nil {
		return nil, err
	}

	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkName(ctx, req.Name, id); err != nil {
		return nil, err
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	product.AmountLeft = req.AmountLeft

	if err := s.Repo.SaveProduct(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id uint) error {
	if err := s.Repo.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: product with id %d does not exist", domain.ErrNotFound, id)
		}
		return err
	}
	return nil
}
