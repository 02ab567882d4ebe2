package http

import (
	"time"

	"github.com/boutique-bouquet/go-backend/internal/domain"
	"github.com/boutique-bouquet/go-backend/internal/usecase"
)

// ProductResponse — товар в публичном и административном API.
// Цена отдаётся строкой с двумя знаками после запятой.
type ProductResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Description   *string   `json:"description"`
	Price         string    `json:"price"`
	ImageURL      *string   `json:"image_url"`
	StockQuantity int32     `json:"stock_quantity"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type CreateProductRequest struct {
	Name          string  `json:"name"`
	Description   *string `json:"description"`
	Price         string  `json:"price"`
	StockQuantity int32   `json:"stock_quantity"`
}

// UpdateProductRequest — частичное обновление: отсутствующие поля не меняются.
type UpdateProductRequest struct {
	Name          *string `json:"name"`
	Description   *string `json:"description"`
	Price         *string `json:"price"`
	StockQuantity *int32  `json:"stock_quantity"`
	IsActive      *bool   `json:"is_active"`
}

type CreateOrderRequest struct {
	CustomerName       string             `json:"customer_name"`
	CustomerEmail      string             `json:"customer_email"`
	CustomerPhone      string             `json:"customer_phone"`
	DeliveryAddress    string             `json:"delivery_address"`
	DeliveryCity       string             `json:"delivery_city"`
	DeliveryPostalCode *string            `json:"delivery_postal_code"`
	Notes              *string            `json:"notes"`
	Items              []OrderItemRequest `json:"items"`
}

type OrderItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int32 `json:"quantity"`
}

type OrderResponse struct {
	ID                 string              `json:"id"`
	CustomerName       string              `json:"customer_name"`
	CustomerEmail      string              `json:"customer_email"`
	CustomerPhone      string              `json:"customer_phone"`
	DeliveryAddress    string              `json:"delivery_address"`
	DeliveryCity       string              `json:"delivery_city"`
	DeliveryPostalCode *string             `json:"delivery_postal_code"`
	TotalAmount        string              `json:"total_amount"`
	Status             string              `json:"status"`
	Notes              *string             `json:"notes"`
	Items              []OrderItemResponse `json:"items,omitempty"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`
}

type OrderItemResponse struct {
	ID           int64  `json:"id"`
	ProductID    *int64 `json:"product_id"`
	ProductName  string `json:"product_name"`
	ProductPrice string `json:"product_price"`
	Quantity     int32  `json:"quantity"`
	Subtotal     string `json:"subtotal"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string        `json:"token"`
	Admin AdminResponse `json:"admin"`
}

type AdminResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// ProductInfoResponse — публичная карточка товара (без служебных полей).
type ProductInfoResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Description   *string `json:"description"`
	Price         string  `json:"price"`
	ImageURL      *string `json:"image_url"`
	StockQuantity int32   `json:"stock_quantity"`
}

func toProductInfoResponse(p *usecase.ProductInfo) ProductInfoResponse {
	return ProductInfoResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         kopecksToPrice(p.Price),
		ImageURL:      p.ImageURL,
		StockQuantity: p.StockQuantity,
	}
}

func toProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         kopecksToPrice(p.Price),
		ImageURL:      p.ImageURL,
		StockQuantity: p.StockQuantity,
		IsActive:      p.IsActive,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func toArrProductResponse(products []*domain.Product) []ProductResponse {
	result := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		result = append(result, toProductResponse(p))
	}
	return result
}

func toOrderResponse(order *domain.Order, items []domain.OrderItem) OrderResponse {
	resp := OrderResponse{
		ID:                 order.ID,
		CustomerName:       order.CustomerName,
		CustomerEmail:      order.CustomerEmail,
		CustomerPhone:      order.CustomerPhone,
		DeliveryAddress:    order.DeliveryAddress,
		DeliveryCity:       order.DeliveryCity,
		DeliveryPostalCode: order.DeliveryPostalCode,
		TotalAmount:        kopecksToPrice(order.TotalAmount),
		Status:             string(order.Status),
		Notes:              order.Notes,
		CreatedAt:          order.CreatedAt,
		UpdatedAt:          order.UpdatedAt,
	}

	if items != nil {
		resp.Items = make([]OrderItemResponse, 0, len(items))
		for _, item := range items {
			resp.Items = append(resp.Items, OrderItemResponse{
				ID:           item.ID,
				ProductID:    item.ProductID,
				ProductName:  item.ProductName,
				ProductPrice: kopecksToPrice(item.ProductPrice),
				Quantity:     item.Quantity,
				Subtotal:     kopecksToPrice(item.Subtotal),
			})
		}
	}

	return resp
}

func toCreateOrderReq(req *CreateOrderRequest) *usecase.CreateOrderReq {
	items := make([]usecase.OrderItemReq, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, usecase.NewOrderItemReq(item.ProductID, item.Quantity))
	}

	return &usecase.CreateOrderReq{
		CustomerName:       req.CustomerName,
		CustomerEmail:      req.CustomerEmail,
		CustomerPhone:      req.CustomerPhone,
		DeliveryAddress:    req.DeliveryAddress,
		DeliveryCity:       req.DeliveryCity,
		DeliveryPostalCode: req.DeliveryPostalCode,
		Notes:              req.Notes,
		Items:              items,
	}
}
