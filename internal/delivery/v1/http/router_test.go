package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/boutique-bouquet/go-backend/internal/domain"
	"github.com/boutique-bouquet/go-backend/internal/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLog struct{}

func (nopLog) Debugf(format string, args ...any)            {}
func (nopLog) Infof(format string, args ...any)             {}
func (nopLog) Warnf(format string, args ...any)             {}
func (nopLog) Errorf(err error, format string, args ...any) {}

type stubProductUC struct{}

func (stubProductUC) ListProducts(ctx context.Context) ([]*domain.Product, error)    { return nil, nil }
func (stubProductUC) ListAllProducts(ctx context.Context) ([]*domain.Product, error) { return nil, nil }
func (stubProductUC) GetProduct(ctx context.Context, productID int64) (*usecase.ProductInfo, error) {
	return nil, nil
}
func (stubProductUC) CreateProduct(ctx context.Context, req *usecase.CreateProductReq) (*domain.Product, error) {
	return nil, nil
}
func (stubProductUC) UpdateProduct(ctx context.Context, req *usecase.UpdateProductReq) (*domain.Product, error) {
	return nil, nil
}
func (stubProductUC) DeleteProduct(ctx context.Context, productID int64) error { return nil }
func (stubProductUC) UploadProductImage(ctx context.Context, req *usecase.UploadProductImageReq) (*domain.Product, error) {
	return nil, nil
}

type stubOrderUC struct {
	statusReqs []*usecase.SetOrderStatusReq
}

func (s *stubOrderUC) CreateOrder(ctx context.Context, req *usecase.CreateOrderReq) (*domain.Order, error) {
	return nil, nil
}
func (s *stubOrderUC) ListOrders(ctx context.Context) ([]*domain.Order, error) { return nil, nil }
func (s *stubOrderUC) GetOrder(ctx context.Context, orderID string) (*usecase.OrderWithItems, error) {
	return nil, nil
}

func (s *stubOrderUC) SetOrderStatus(ctx context.Context, req *usecase.SetOrderStatusReq) (*domain.Order, error) {
	s.statusReqs = append(s.statusReqs, req)
	return &domain.Order{ID: req.OrderID, Status: domain.OrderStatus(req.Status)}, nil
}

type stubAuthUC struct{}

func (stubAuthUC) Login(ctx context.Context, req *usecase.LoginReq) (*usecase.LoginRes, error) {
	return nil, nil
}

func (stubAuthUC) VerifyToken(token string) (*usecase.Identity, error) {
	return usecase.NewIdentity(1, "admin@boutique.example"), nil
}

func TestOrderStatusRoutes(t *testing.T) {
	t.Parallel()

	orderUC := &stubOrderUC{}

	mux := chi.NewRouter()
	router := NewRouter(mux, nopLog{})
	router.Init(stubProductUC{}, orderUC, stubAuthUC{})

	const orderID = "5f0f1c2a-9a1d-4a3e-8f55-0f2cbb6a7d01"

	// Статус меняется по каноническому пути и по явному суб-ресурсу
	for _, path := range []string{
		"/api/v1/admin/orders/" + orderID,
		"/api/v1/admin/orders/" + orderID + "/status",
	} {
		req := httptest.NewRequest(http.MethodPut, path, strings.NewReader(`{"status":"processing"}`))
		req.Header.Set("Authorization", "Bearer token")
		rec := httptest.NewRecorder()

		mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code, path)
	}

	require.Len(t, orderUC.statusReqs, 2)
	for _, got := range orderUC.statusReqs {
		assert.Equal(t, orderID, got.OrderID)
		assert.Equal(t, "processing", got.Status)
	}
}
