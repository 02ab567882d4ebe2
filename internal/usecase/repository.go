package usecase

import (
	"context"

	"github.com/boutique-bouquet/go-backend/internal/domain"
)

type ProductRepository interface {
	ListActive(ctx context.Context) ([]*domain.Product, error)
	ListAll(ctx context.Context) ([]*domain.Product, error)
	GetActive(ctx context.Context, id int64) (*domain.Product, error)

	// GetForUpdate читает активный товар с эксклюзивной блокировкой строки
	// до конца объемлющей транзакции. Требует транзакцию в контексте.
	GetForUpdate(ctx context.Context, id int64) (*domain.Product, error)

	// DecrementStock уменьшает остаток товара в рамках объемлющей транзакции.
	DecrementStock(ctx context.Context, id int64, quantity int32) error

	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, id int64, patch *domain.ProductPatch) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
	SetImageURL(ctx context.Context, id int64, imageURL string) (*domain.Product, error)
}

type OrderRepository interface {
	// Create и InsertItems выполняются в рамках объемлющей транзакции.
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	InsertItems(ctx context.Context, orderID string, items []domain.OrderItem) error

	List(ctx context.Context) ([]*domain.Order, error)
	GetByID(ctx context.Context, orderID string) (*domain.Order, error)
	GetItems(ctx context.Context, orderID string) ([]domain.OrderItem, error)

	// GetForUpdate блокирует строку заказа до конца объемлющей транзакции.
	GetForUpdate(ctx context.Context, orderID string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) (*domain.Order, error)
}

type AdminRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.Admin, error)
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
}

type CacheRepository interface {
	GetProducts(ctx context.Context, ids []int64) (map[int64]ProductInfo, error)
	SetProducts(ctx context.Context, products []ProductInfo) error
	DeleteProducts(ctx context.Context, ids []int64) error
}

type ImageRepository interface {
	Upload(ctx context.Context, image *domain.Image) (string, error)
	Delete(ctx context.Context, key string) error
}
