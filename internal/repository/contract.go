package repository

import (
	"context"

	"github.com/Hamdhan7/design-fabric-backend/internal/domain"
)

type CatalogRepository interface {
	AddProduct(ctx context.Context, data domain.Product) (id int64, err error)
	UpdateProduct(ctx context.Context, data domain.Product) (rowsAffected int64, err error)
	GetProductByID(ctx context.Context, id int64) (data domain.Product, err error)
	DeleteProduct(ctx context.Context, id int64) (rowsAffected int64, err error)
	DeleteOrdersByProductID(ctx context.Context, productID int64) (err error)
	GetProductImageURLs(ctx context.Context) (urls []string, err error)
	GetOrdersWithProducts(ctx context.Context) (data []domain.OrderProductRow, err error)
	DeleteOrder(ctx context.Context, id int64) (rowsAffected int64, err error)
	HandleTrx(ctx context.Context, fn func(ctx context.Context, repo CatalogRepository) error) error
}
