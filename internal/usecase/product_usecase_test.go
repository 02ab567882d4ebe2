package usecase_test

import (
	"context"
	"testing"

	"github.com/boutique-bouquet/go-backend/internal/domain"
	"github.com/boutique-bouquet/go-backend/internal/usecase"
	"github.com/boutique-bouquet/go-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeImagesInfra struct {
	key        string
	uploadErr  error
	cleanedUp  [][]string
	lastUpload *usecase.UploadImageReq
}

func (f *fakeImagesInfra) UploadImage(ctx context.Context, req *usecase.UploadImageReq) (string, error) {
	f.lastUpload = req
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	return f.key, nil
}

func (f *fakeImagesInfra) CleanupImages(keys []string) {
	f.cleanedUp = append(f.cleanedUp, keys)
}

func productUC(repo *fakeProductRepo, cache *fakeCacheRepo, infra *fakeImagesInfra) *usecase.ProductUseCase {
	return usecase.NewProductUC(repo, cache, infra, nopLogger{})
}

func TestCreateProduct(t *testing.T) {
	t.Parallel()

	t.Run("valid product", func(t *testing.T) {
		uc := productUC(newFakeProductRepo(), &fakeCacheRepo{}, &fakeImagesInfra{})

		product, err := uc.CreateProduct(context.Background(), &usecase.CreateProductReq{
			Name:          "Red roses",
			Price:         59999,
			StockQuantity: 10,
		})
		require.NoError(t, err)
		assert.Equal(t, "Red roses", product.Name)
		assert.Equal(t, int64(59999), product.Price)
	})

	t.Run("blank name rejected", func(t *testing.T) {
		uc := productUC(newFakeProductRepo(), &fakeCacheRepo{}, &fakeImagesInfra{})

		_, err := uc.CreateProduct(context.Background(), &usecase.CreateProductReq{Name: "   ", Price: 100})
		require.Error(t, err)
		assert.ErrorIs(t, err, e.ErrValidation)
	})

	t.Run("non-positive price rejected", func(t *testing.T) {
		uc := productUC(newFakeProductRepo(), &fakeCacheRepo{}, &fakeImagesInfra{})

		_, err := uc.CreateProduct(context.Background(), &usecase.CreateProductReq{Name: "Roses", Price: 0})
		require.Error(t, err)
		assert.ErrorIs(t, err, e.ErrValidation)
	})

	t.Run("negative stock rejected", func(t *testing.T) {
		uc := productUC(newFakeProductRepo(), &fakeCacheRepo{}, &fakeImagesInfra{})

		_, err := uc.CreateProduct(context.Background(), &usecase.CreateProductReq{
			Name: "Roses", Price: 100, StockQuantity: -1,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, e.ErrValidation)
	})
}

func TestUpdateProduct(t *testing.T) {
	t.Parallel()

	t.Run("present fields validated, absent ignored", func(t *testing.T) {
		repo := newFakeProductRepo(activeProduct(1, "Red roses", 59999, 10))
		uc := productUC(repo, &fakeCacheRepo{}, &fakeImagesInfra{})

		badPrice := int64(0)
		_, err := uc.UpdateProduct(context.Background(), &usecase.UpdateProductReq{
			ID:    1,
			Patch: domain.ProductPatch{Price: &badPrice},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, e.ErrValidation)

		newStock := int32(3)
		_, err = uc.UpdateProduct(context.Background(), &usecase.UpdateProductReq{
			ID:    1,
			Patch: domain.ProductPatch{StockQuantity: &newStock},
		})
		require.NoError(t, err)
	})

	t.Run("empty patch rejected", func(t *testing.T) {
		repo := newFakeProductRepo(activeProduct(1, "Red roses", 59999, 10))
		cache := &fakeCacheRepo{}
		uc := productUC(repo, cache, &fakeImagesInfra{})

		_, err := uc.UpdateProduct(context.Background(), &usecase.UpdateProductReq{
			ID:    1,
			Patch: domain.ProductPatch{},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, e.ErrValidation)
		assert.Empty(t, cache.deleted)
	})

	t.Run("blank name in patch rejected", func(t *testing.T) {
		repo := newFakeProductRepo(activeProduct(1, "Red roses", 59999, 10))
		uc := productUC(repo, &fakeCacheRepo{}, &fakeImagesInfra{})

		blank := "  "
		_, err := uc.UpdateProduct(context.Background(), &usecase.UpdateProductReq{
			ID:    1,
			Patch: domain.ProductPatch{Name: &blank},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, e.ErrValidation)
	})

	t.Run("update invalidates cache", func(t *testing.T) {
		repo := newFakeProductRepo(activeProduct(7, "Tulips", 29900, 4))
		cache := &fakeCacheRepo{}
		uc := productUC(repo, cache, &fakeImagesInfra{})

		desc := "Свежие тюльпаны"
		_, err := uc.UpdateProduct(context.Background(), &usecase.UpdateProductReq{
			ID:    7,
			Patch: domain.ProductPatch{Description: &desc},
		})
		require.NoError(t, err)
		require.Len(t, cache.deleted, 1)
		assert.Equal(t, []int64{7}, cache.deleted[0])
	})
}

func TestDeleteProduct(t *testing.T) {
	t.Parallel()

	cache := &fakeCacheRepo{}
	uc := productUC(newFakeProductRepo(activeProduct(3, "Peonies", 45000, 2)), cache, &fakeImagesInfra{})

	require.NoError(t, uc.DeleteProduct(context.Background(), 3))
	require.Len(t, cache.deleted, 1)
	assert.Equal(t, []int64{3}, cache.deleted[0])
}

func TestUploadProductImage(t *testing.T) {
	t.Parallel()

	image := *usecase.NewProductImage([]byte("img-bytes"), "image/jpeg", 9, "rose.jpg")

	t.Run("missing product checked before upload", func(t *testing.T) {
		infra := &fakeImagesInfra{key: "products/1/abc.jpg"}
		uc := productUC(newFakeProductRepo(), &fakeCacheRepo{}, infra)

		_, err := uc.UploadProductImage(context.Background(), &usecase.UploadProductImageReq{
			ProductID: 1,
			Image:     image,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, e.ErrNotFound)
		assert.Nil(t, infra.lastUpload)
	})

	t.Run("image uploaded and bound", func(t *testing.T) {
		infra := &fakeImagesInfra{key: "products/1/abc.jpg"}
		cache := &fakeCacheRepo{}
		uc := productUC(newFakeProductRepo(activeProduct(1, "Red roses", 59999, 10)), cache, infra)

		product, err := uc.UploadProductImage(context.Background(), &usecase.UploadProductImageReq{
			ProductID: 1,
			Image:     image,
		})
		require.NoError(t, err)
		require.NotNil(t, product.ImageURL)
		assert.Equal(t, "products/1/abc.jpg", *product.ImageURL)

		require.NotNil(t, infra.lastUpload)
		assert.Equal(t, int64(1), infra.lastUpload.ProductID)
		assert.Empty(t, infra.cleanedUp)

		require.Len(t, cache.deleted, 1)
		assert.Equal(t, []int64{1}, cache.deleted[0])
	})

	t.Run("failed binding cleans up uploaded object", func(t *testing.T) {
		repo := newFakeProductRepo(activeProduct(1, "Red roses", 59999, 10))
		repo.setImageURLErr = assert.AnError
		infra := &fakeImagesInfra{key: "products/1/abc.jpg"}
		uc := productUC(repo, &fakeCacheRepo{}, infra)

		_, err := uc.UploadProductImage(context.Background(), &usecase.UploadProductImageReq{
			ProductID: 1,
			Image:     image,
		})
		require.Error(t, err)
		require.Len(t, infra.cleanedUp, 1)
		assert.Equal(t, []string{"products/1/abc.jpg"}, infra.cleanedUp[0])
	})
}

func TestGetProduct(t *testing.T) {
	t.Parallel()

	t.Run("cache miss falls back to repository", func(t *testing.T) {
		repo := newFakeProductRepo(activeProduct(5, "Orchids", 120000, 1))
		uc := productUC(repo, &fakeCacheRepo{}, &fakeImagesInfra{})

		info, err := uc.GetProduct(context.Background(), 5)
		require.NoError(t, err)
		assert.Equal(t, "Orchids", info.Name)
		assert.Equal(t, int64(120000), info.Price)
	})

	t.Run("unknown product", func(t *testing.T) {
		uc := productUC(newFakeProductRepo(), &fakeCacheRepo{}, &fakeImagesInfra{})

		_, err := uc.GetProduct(context.Background(), 42)
		require.Error(t, err)
		assert.ErrorIs(t, err, e.ErrNotFound)
	})
}
