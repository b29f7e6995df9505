package service

import (
	"context"
	"mime/multipart"

	"github.com/Hamdhan7/design-fabric-backend/internal/dto"
)

type ProductService interface {
	AddProduct(ctx context.Context, payload dto.ProductRequest, image *multipart.FileHeader) (id int64, err error)
	UpdateProduct(ctx context.Context, payload dto.ProductRequest, image *multipart.FileHeader) (err error)
	DeleteProduct(ctx context.Context, id int64) (err error)
	SweepOrphanedImages(ctx context.Context) (err error)
}

type OrderService interface {
	GetOrders(ctx context.Context) (respPayload []dto.OrderResponse, err error)
	DeleteOrder(ctx context.Context, id int64) (err error)
}
