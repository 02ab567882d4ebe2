package converter

// ProductInfoRedisModel представляет продукт в Redis-кэше витрины.
type ProductInfoRedisModel struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Description   *string `json:"description,omitempty"`
	Price         int64   `json:"price"`
	ImageURL      *string `json:"image_url,omitempty"`
	StockQuantity int32   `json:"stock_quantity"`
}
