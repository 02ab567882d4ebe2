package pgdb

import (
	"context"
	"errors"

	"github.com/boutique-bouquet/go-backend/internal/domain"
	"github.com/boutique-bouquet/go-backend/internal/repository/pgdb/converter"
	"github.com/boutique-bouquet/go-backend/pkg/e"
	"github.com/boutique-bouquet/go-backend/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

const productColumns = `id, name, description, price, image_url, stock_quantity, is_active, created_at, updated_at`

// ProductRepo реализует репозиторий товаров поверх PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

// ListActive возвращает активные товары витрины, новые первыми.
func (p *ProductRepo) ListActive(ctx context.Context) ([]*domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE is_active = true
		ORDER BY created_at DESC
	`

	return p.queryProducts(ctx, query)
}

// ListAll возвращает весь каталог, включая неактивные товары.
func (p *ProductRepo) ListAll(ctx context.Context) ([]*domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		ORDER BY created_at DESC
	`

	return p.queryProducts(ctx, query)
}

// GetActive возвращает активный товар по id.
func (p *ProductRepo) GetActive(ctx context.Context, id int64) (*domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE id = $1 AND is_active = true
	`

	model, err := scanProduct(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrProductNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(model), nil
}

// GetForUpdate читает активный товар с эксклюзивной блокировкой строки.
// Блокировка удерживается до конца транзакции: проверка остатка и списание
// сериализуются по каждому товару.
func (p *ProductRepo) GetForUpdate(ctx context.Context, id int64) (*domain.Product, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE id = $1 AND is_active = true
		FOR UPDATE
	`

	model, err := scanProduct(tx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.NotFoundf("Product %d not found", id)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(model), nil
}

// DecrementStock списывает остаток в рамках объемлющей транзакции.
// CHECK-ограничение stock_quantity >= 0 страхует от ухода в минус.
func (p *ProductRepo) DecrementStock(ctx context.Context, id int64, quantity int32) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE products
		SET stock_quantity = stock_quantity - $1, updated_at = NOW()
		WHERE id = $2
	`

	result, err := tx.Exec(ctx, query, quantity, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.NotFoundf("Product %d not found", id)
	}

	return nil
}

// Create добавляет товар в каталог.
func (p *ProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	query := `
		INSERT INTO products (name, description, price, stock_quantity)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + productColumns + `
	`

	model, err := scanProduct(p.pool.QueryRow(ctx, query,
		product.Name, product.Description, product.Price, product.StockQuantity,
	))
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(model), nil
}

// Update применяет частичное обновление: каждое поле перезаписывается,
// только если соответствующий указатель патча не nil.
func (p *ProductRepo) Update(ctx context.Context, id int64, patch *domain.ProductPatch) (*domain.Product, error) {
	query := `
		UPDATE products
		SET
			name           = COALESCE($1, name),
			description    = COALESCE($2, description),
			price          = COALESCE($3, price),
			stock_quantity = COALESCE($4, stock_quantity),
			is_active      = COALESCE($5, is_active),
			updated_at     = NOW()
		WHERE id = $6
		RETURNING ` + productColumns + `
	`

	model, err := scanProduct(p.pool.QueryRow(ctx, query,
		patch.Name, patch.Description, patch.Price, patch.StockQuantity, patch.IsActive, id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrProductNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(model), nil
}

// Delete удаляет товар. Снимки в order_items не затрагиваются,
// product_id в них обнуляет ON DELETE SET NULL.
func (p *ProductRepo) Delete(ctx context.Context, id int64) error {
	result, err := p.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.ErrProductNotFound
	}

	return nil
}

// SetImageURL привязывает загруженное изображение к товару.
func (p *ProductRepo) SetImageURL(ctx context.Context, id int64, imageURL string) (*domain.Product, error) {
	query := `
		UPDATE products
		SET image_url = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING ` + productColumns + `
	`

	model, err := scanProduct(p.pool.QueryRow(ctx, query, imageURL, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrProductNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(model), nil
}

func (p *ProductRepo) queryProducts(ctx context.Context, query string, args ...any) ([]*domain.Product, error) {
	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models := make([]*converter.ProductModel, 0)
	for rows.Next() {
		model, err := scanProduct(rows)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, model)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToArrEntity(models), nil
}

func scanProduct(row pgx.Row) (*converter.ProductModel, error) {
	var model converter.ProductModel
	err := row.Scan(
		&model.ID, &model.Name, &model.Description, &model.Price, &model.ImageURL,
		&model.StockQuantity, &model.IsActive, &model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &model, nil
}
