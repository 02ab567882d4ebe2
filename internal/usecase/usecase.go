package usecase

import (
	"context"

	"github.com/boutique-bouquet/go-backend/internal/domain"
)

type OrderUC interface {
	CreateOrder(ctx context.Context, req *CreateOrderReq) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]*domain.Order, error)
	GetOrder(ctx context.Context, orderID string) (*OrderWithItems, error)
	SetOrderStatus(ctx context.Context, req *SetOrderStatusReq) (*domain.Order, error)
}

type ProductUC interface {
	ListProducts(ctx context.Context) ([]*domain.Product, error)
	GetProduct(ctx context.Context, productID int64) (*ProductInfo, error)
	ListAllProducts(ctx context.Context) ([]*domain.Product, error)
	CreateProduct(ctx context.Context, req *CreateProductReq) (*domain.Product, error)
	UpdateProduct(ctx context.Context, req *UpdateProductReq) (*domain.Product, error)
	DeleteProduct(ctx context.Context, productID int64) error
	UploadProductImage(ctx context.Context, req *UploadProductImageReq) (*domain.Product, error)
}

type AuthUC interface {
	Login(ctx context.Context, req *LoginReq) (*LoginRes, error)
	VerifyToken(token string) (*Identity, error)
}
