package service

import (
	"context"

	"github.com/Hamdhan7/design-fabric-backend/internal/dto"
	"github.com/Hamdhan7/design-fabric-backend/internal/repository"
	"github.com/Hamdhan7/design-fabric-backend/pkg/errs"
)

type OrderServiceImpl struct {
	repo repository.CatalogRepository
}

func CreateOrderService(repo repository.CatalogRepository) OrderService {
	return &OrderServiceImpl{repo: repo}
}

func (s *OrderServiceImpl) GetOrders(ctx context.Context) (respPayload []dto.OrderResponse, err error) {
	rows, err := s.repo.GetOrdersWithProducts(ctx)
	if err != nil {
		return nil, errs.ErrInternalServer
	}

	respPayload = make([]dto.OrderResponse, 0, len(rows))
	for _, row := range rows {
		respPayload = append(respPayload, dto.OrderResponse{
			OrderID:             row.OrderID,
			ProductID:           row.ProductID,
			CustomerName:        row.CustomerName,
			CustomerEmail:       row.CustomerEmail,
			CustomerPhoneNumber: row.CustomerPhoneNumber,
			CustomerAddress:     row.CustomerAddress,
			ProductName:         row.ProductName,
		})
	}

	return respPayload, nil
}

func (s *OrderServiceImpl) DeleteOrder(ctx context.Context, id int64) (err error) {
	rowsAffected, err := s.repo.DeleteOrder(ctx, id)
	if err != nil {
		return errs.ErrInternalServer
	}

	if rowsAffected == 0 {
		return errs.ErrOrderNotFound
	}

	return nil
}
