package domain

import "time"

// Order описывает заказ покупателя.
// TotalAmount вычисляется один раз при создании и больше не пересчитывается.
type Order struct {
	ID                 string // uuid
	CustomerName       string
	CustomerEmail      string
	CustomerPhone      string
	DeliveryAddress    string
	DeliveryCity       string
	DeliveryPostalCode *string
	TotalAmount        int64 // Сумма хранится в копейках
	Status             OrderStatus
	Notes              *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// OrderItem — позиция заказа со снимком названия и цены товара
// на момент оформления. Снимок не меняется при изменении или удалении товара,
// ProductID обнуляется при удалении товара из каталога.
type OrderItem struct {
	ID           int64
	OrderID      string
	ProductID    *int64
	ProductName  string
	ProductPrice int64 // копейки
	Quantity     int32
	Subtotal     int64 // копейки
	CreatedAt    time.Time
}

func NewOrderItem(productID int64, productName string, productPrice int64, quantity int32) *OrderItem {
	id := productID
	return &OrderItem{
		ProductID:    &id,
		ProductName:  productName,
		ProductPrice: productPrice,
		Quantity:     quantity,
		Subtotal:     productPrice * int64(quantity),
	}
}
