package usecase

import (
	"time"

	"github.com/boutique-bouquet/go-backend/internal/domain"
)

// ORDER USECASE

// CreateOrderReq — запрос на оформление заказа.
type CreateOrderReq struct {
	CustomerName       string
	CustomerEmail      string
	CustomerPhone      string
	DeliveryAddress    string
	DeliveryCity       string
	DeliveryPostalCode *string
	Notes              *string
	Items              []OrderItemReq
}

// OrderItemReq — одна запрошенная позиция корзины.
type OrderItemReq struct {
	ProductID int64
	Quantity  int32
}

// OrderWithItems — заказ вместе с его позициями.
type OrderWithItems struct {
	Order *domain.Order
	Items []domain.OrderItem
}

// SetOrderStatusReq — запрос администратора на смену статуса заказа.
type SetOrderStatusReq struct {
	OrderID string
	Status  string
}

// PRODUCT USECASE

// CreateProductReq — запрос на добавление товара в каталог.
type CreateProductReq struct {
	Name          string
	Description   *string
	Price         int64 // копейки
	StockQuantity int32
}

// UpdateProductReq — частичное обновление товара.
type UpdateProductReq struct {
	ID    int64
	Patch domain.ProductPatch
}

// ProductImage представляет изображение, загруженное через multipart/form-data.
type ProductImage struct {
	Data     []byte // байты изображения
	MimeType string // Content-Type из multipart (image/jpeg)
	Size     int64  // фактический размер в байтах
	Name     string // оригинальное имя файла (для логов)
}

// UploadProductImageReq — запрос на загрузку изображения товара.
type UploadProductImageReq struct {
	ProductID int64
	Image     ProductImage
}

// ProductInfo — DTO с информацией о товаре для внешнего использования и кэша.
type ProductInfo struct {
	ID            int64
	Name          string
	Description   *string
	Price         int64 // копейки
	ImageURL      *string
	StockQuantity int32
}

// AUTH USECASE

type LoginReq struct {
	Email    string
	Password string
}

type LoginRes struct {
	Token string
	Admin AdminInfo
}

type AdminInfo struct {
	ID    int64
	Email string
}

// Identity — подтверждённая личность администратора из bearer-токена.
type Identity struct {
	AdminID int64
	Email   string
}

// INFRASTRUCTURE

// UploadImageReq — запрос на сохранение изображения товара в S3.
type UploadImageReq struct {
	ProductID int64
	Image     ProductImage
}

type WriteRawMessageReq struct {
	OrderID string
	Payload []byte
}

// OUTBOX

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

type OutboxEventType string

const OrderCreatedEventType OutboxEventType = "order.created"

// OutboxEvent — запись transactional outbox, публикуемая в Kafka после коммита.
type OutboxEvent struct {
	ID          int64
	EventID     string // uuid
	EventType   OutboxEventType
	OrderID     string
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// OrderCreatedEvent — JSON-полезная нагрузка события о созданном заказе.
type OrderCreatedEvent struct {
	EventID     string                  `json:"event_id"`
	OrderID     string                  `json:"order_id"`
	TotalAmount int64                   `json:"total_amount"`
	Status      string                  `json:"status"`
	Items       []OrderCreatedEventItem `json:"items"`
	CreatedAt   int64                   `json:"created_at"`
}

type OrderCreatedEventItem struct {
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	Price       int64  `json:"price"`
	Quantity    int32  `json:"quantity"`
	Subtotal    int64  `json:"subtotal"`
}

// MAPPERS

func NewOrderItemReq(productID int64, quantity int32) OrderItemReq {
	return OrderItemReq{ProductID: productID, Quantity: quantity}
}

func NewOrderWithItems(order *domain.Order, items []domain.OrderItem) *OrderWithItems {
	return &OrderWithItems{Order: order, Items: items}
}

func NewSetOrderStatusReq(orderID string, status string) *SetOrderStatusReq {
	return &SetOrderStatusReq{OrderID: orderID, Status: status}
}

func NewProductImage(data []byte, mimeType string, size int64, name string) *ProductImage {
	return &ProductImage{
		Data:     data,
		MimeType: mimeType,
		Size:     size,
		Name:     name,
	}
}

func NewProductInfo(product *domain.Product) ProductInfo {
	return ProductInfo{
		ID:            product.ID,
		Name:          product.Name,
		Description:   product.Description,
		Price:         product.Price,
		ImageURL:      product.ImageURL,
		StockQuantity: product.StockQuantity,
	}
}

func NewLoginReq(email, password string) *LoginReq {
	return &LoginReq{Email: email, Password: password}
}

func NewIdentity(adminID int64, email string) *Identity {
	return &Identity{AdminID: adminID, Email: email}
}

func NewWriteRawMessageReq(orderID string, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{OrderID: orderID, Payload: payload}
}

func NewUploadImageReq(productID int64, image ProductImage) *UploadImageReq {
	return &UploadImageReq{ProductID: productID, Image: image}
}
