package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/boutique-bouquet/go-backend/internal/domain"
	"github.com/boutique-bouquet/go-backend/pkg/e"
	"github.com/boutique-bouquet/go-backend/pkg/logger"
)

// ProductUseCase реализует бизнес-логику управления каталогом товаров.
type ProductUseCase struct {
	productRepo ProductRepository
	cacheRepo   CacheRepository
	imagesInfra ImagesInfra
	logger      logger.Logger
}

func NewProductUC(
	productRepo ProductRepository,
	cacheRepo CacheRepository,
	imagesInfra ImagesInfra,
	logger logger.Logger,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
		cacheRepo:   cacheRepo,
		imagesInfra: imagesInfra,
		logger:      logger,
	}
}

// ListProducts возвращает активные товары витрины.
func (p *ProductUseCase) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	const op = "ProductUseCase.ListProducts"

	products, err := p.productRepo.ListActive(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return products, nil
}

// GetProduct возвращает активный товар, используя кэш с фоновым прогревом.
func (p *ProductUseCase) GetProduct(ctx context.Context, productID int64) (*ProductInfo, error) {
	const op = "ProductUseCase.GetProduct"

	cached, err := p.cacheRepo.GetProducts(ctx, []int64{productID})
	if err == nil {
		if info, ok := cached[productID]; ok {
			return &info, nil
		}
	}

	product, err := p.productRepo.GetActive(ctx, productID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	info := NewProductInfo(product)

	// Фоновое добавление товара в кэш
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()

		if err := p.cacheRepo.SetProducts(bgCtx, []ProductInfo{info}); err != nil {
			p.logger.Warnf("Failed to cache product in background: %v", e.Wrap(op, err))
		}
	}()

	return &info, nil
}

// ListAllProducts возвращает весь каталог, включая неактивные товары.
func (p *ProductUseCase) ListAllProducts(ctx context.Context) ([]*domain.Product, error) {
	const op = "ProductUseCase.ListAllProducts"

	products, err := p.productRepo.ListAll(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return products, nil
}

// CreateProduct добавляет новый товар в каталог.
func (p *ProductUseCase) CreateProduct(ctx context.Context, req *CreateProductReq) (*domain.Product, error) {
	const op = "ProductUseCase.CreateProduct"

	if err := validateProductReq(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	product, err := p.productRepo.Create(ctx, domain.NewProduct(req.Name, req.Description, req.Price, req.StockQuantity))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return product, nil
}

// UpdateProduct применяет частичное обновление товара и сбрасывает его кэш.
func (p *ProductUseCase) UpdateProduct(ctx context.Context, req *UpdateProductReq) (*domain.Product, error) {
	const op = "ProductUseCase.UpdateProduct"

	if err := validateProductPatch(&req.Patch); err != nil {
		return nil, e.Wrap(op, err)
	}

	product, err := p.productRepo.Update(ctx, req.ID, &req.Patch)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	p.invalidateCache(ctx, op, req.ID)

	return product, nil
}

// DeleteProduct удаляет товар из каталога. Позиции существующих заказов
// сохраняют свои снимки, product_id в них обнуляется на уровне схемы.
func (p *ProductUseCase) DeleteProduct(ctx context.Context, productID int64) error {
	const op = "ProductUseCase.DeleteProduct"

	if err := p.productRepo.Delete(ctx, productID); err != nil {
		return e.Wrap(op, err)
	}

	p.invalidateCache(ctx, op, productID)

	return nil
}

// UploadProductImage сохраняет изображение товара в S3 и привязывает его URL к товару.
// При ошибке привязки загруженный объект удаляется в фоне.
func (p *ProductUseCase) UploadProductImage(ctx context.Context, req *UploadProductImageReq) (*domain.Product, error) {
	const op = "ProductUseCase.UploadProductImage"

	// Товар должен существовать до загрузки в S3
	if _, err := p.productRepo.GetActive(ctx, req.ProductID); err != nil {
		return nil, e.Wrap(op, err)
	}

	key, err := p.imagesInfra.UploadImage(ctx, NewUploadImageReq(req.ProductID, req.Image))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	product, err := p.productRepo.SetImageURL(ctx, req.ProductID, key)
	if err != nil {
		p.logger.Warnf("Cleaning up orphaned image after failed URL binding. product_id: %d, error: %v",
			req.ProductID, e.Wrap(op, err))
		p.imagesInfra.CleanupImages([]string{key})
		return nil, e.Wrap(op, err)
	}

	p.invalidateCache(ctx, op, req.ProductID)

	return product, nil
}

// invalidateCache удаляет товар из кэша, логируя ошибку без прерывания операции.
func (p *ProductUseCase) invalidateCache(ctx context.Context, op string, productID int64) {
	if err := p.cacheRepo.DeleteProducts(ctx, []int64{productID}); err != nil {
		p.logger.Warnf("Failed to invalidate product cache: %v", e.Wrap(op, err))
	}
}

// validateProductReq проверяет корректность входных данных запроса на добавление товара.
func validateProductReq(req *CreateProductReq) error {
	if strings.TrimSpace(req.Name) == "" {
		return e.ErrProductNameRequired
	}

	if req.Price <= 0 {
		return e.ErrPriceMustBePositive
	}

	if req.StockQuantity < 0 {
		return e.ErrStockNegative
	}

	return nil
}

// validateProductPatch проверяет только указанные в патче поля.
// Пустой патч отклоняется: запрос без полей не должен трогать строку.
func validateProductPatch(patch *domain.ProductPatch) error {
	if patch.IsEmpty() {
		return e.ErrEmptyPatch
	}

	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return e.ErrProductNameRequired
	}

	if patch.Price != nil && *patch.Price <= 0 {
		return e.ErrPriceMustBePositive
	}

	if patch.StockQuantity != nil && *patch.StockQuantity < 0 {
		return e.ErrStockNegative
	}

	return nil
}
