package converter

import "time"

// ProductModel представляет запись таблицы products в PostgreSQL.
type ProductModel struct {
	ID            int64      `db:"id"`
	Name          string     `db:"name"`
	Description   *string    `db:"description"`
	Price         int64      `db:"price"`
	ImageURL      *string    `db:"image_url"`
	StockQuantity int32      `db:"stock_quantity"`
	IsActive      bool       `db:"is_active"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
}

// OrderModel представляет запись таблицы orders в PostgreSQL.
type OrderModel struct {
	ID                 string     `db:"id"`
	CustomerName       string     `db:"customer_name"`
	CustomerEmail      string     `db:"customer_email"`
	CustomerPhone      string     `db:"customer_phone"`
	DeliveryAddress    string     `db:"delivery_address"`
	DeliveryCity       string     `db:"delivery_city"`
	DeliveryPostalCode *string    `db:"delivery_postal_code"`
	TotalAmount        int64      `db:"total_amount"`
	Status             string     `db:"status"`
	Notes              *string    `db:"notes"`
	CreatedAt          time.Time  `db:"created_at"`
	UpdatedAt          time.Time  `db:"updated_at"`
}

// OrderItemModel представляет запись таблицы order_items в PostgreSQL.
type OrderItemModel struct {
	ID           int64     `db:"id"`
	OrderID      string    `db:"order_id"`
	ProductID    *int64    `db:"product_id"`
	ProductName  string    `db:"product_name"`
	ProductPrice int64     `db:"product_price"`
	Quantity     int32     `db:"quantity"`
	Subtotal     int64     `db:"subtotal"`
	CreatedAt    time.Time `db:"created_at"`
}

// AdminModel представляет запись таблицы admins в PostgreSQL.
type AdminModel struct {
	ID           int64     `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

// OutboxEventModel представляет запись таблицы outbox_events в PostgreSQL.
type OutboxEventModel struct {
	ID          int64      `db:"id"`
	EventID     string     `db:"event_id"`
	EventType   string     `db:"event_type"`
	OrderID     string     `db:"order_id"`
	Payload     []byte     `db:"payload"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	ProcessedAt *time.Time `db:"processed_at"`
}
