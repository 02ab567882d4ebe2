package domain

import "time"

// Product описывает товар каталога
type Product struct {
	ID            int64
	Name          string
	Description   *string
	Price         int64 // Цена хранится в копейках
	ImageURL      *string
	StockQuantity int32
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewProduct(name string, description *string, price int64, stockQuantity int32) *Product {
	return &Product{
		Name:          name,
		Description:   description,
		Price:         price,
		StockQuantity: stockQuantity,
	}
}

// ProductPatch — явное частичное обновление товара:
// поле применяется только если указатель не nil.
type ProductPatch struct {
	Name          *string
	Description   *string
	Price         *int64
	StockQuantity *int32
	IsActive      *bool
}

// IsEmpty сообщает, что патч не меняет ни одного поля.
func (p *ProductPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Price == nil &&
		p.StockQuantity == nil && p.IsActive == nil
}
