package usecase_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/boutique-bouquet/go-backend/internal/domain"
	"github.com/boutique-bouquet/go-backend/internal/usecase"
	"github.com/boutique-bouquet/go-backend/pkg/e"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTx реализует только те методы pgx.Tx, которые дергает менеджер транзакций.
type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Commit(ctx context.Context) error   { t.committed = true; return nil }
func (t *fakeTx) Rollback(ctx context.Context) error { t.rolledBack = true; return nil }

type fakePool struct {
	tx       *fakeTx
	beginCnt int
}

func (p *fakePool) BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error) {
	p.beginCnt++
	p.tx = &fakeTx{}
	return p.tx, nil
}

type fakeProductRepo struct {
	products       map[int64]*domain.Product
	lockOrder      []int64
	setImageURLErr error
}

func newFakeProductRepo(products ...*domain.Product) *fakeProductRepo {
	repo := &fakeProductRepo{products: make(map[int64]*domain.Product)}
	for _, p := range products {
		repo.products[p.ID] = p
	}
	return repo
}

func (f *fakeProductRepo) ListActive(ctx context.Context) ([]*domain.Product, error) { return nil, nil }
func (f *fakeProductRepo) ListAll(ctx context.Context) ([]*domain.Product, error)    { return nil, nil }

func (f *fakeProductRepo) GetActive(ctx context.Context, id int64) (*domain.Product, error) {
	p, ok := f.products[id]
	if !ok || !p.IsActive {
		return nil, e.ErrProductNotFound
	}
	return p, nil
}

func (f *fakeProductRepo) GetForUpdate(ctx context.Context, id int64) (*domain.Product, error) {
	f.lockOrder = append(f.lockOrder, id)
	p, ok := f.products[id]
	if !ok || !p.IsActive {
		return nil, e.NotFoundf("Product %d not found", id)
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) DecrementStock(ctx context.Context, id int64, quantity int32) error {
	p, ok := f.products[id]
	if !ok {
		return e.NotFoundf("Product %d not found", id)
	}
	p.StockQuantity -= quantity
	return nil
}

func (f *fakeProductRepo) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	return p, nil
}

func (f *fakeProductRepo) Update(ctx context.Context, id int64, patch *domain.ProductPatch) (*domain.Product, error) {
	return f.products[id], nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, id int64) error { return nil }

func (f *fakeProductRepo) SetImageURL(ctx context.Context, id int64, imageURL string) (*domain.Product, error) {
	if f.setImageURLErr != nil {
		return nil, f.setImageURLErr
	}
	p := f.products[id]
	p.ImageURL = &imageURL
	return p, nil
}

type fakeOrderRepo struct {
	orders map[string]*domain.Order
	items  map[string][]domain.OrderItem
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		orders: make(map[string]*domain.Order),
		items:  make(map[string][]domain.OrderItem),
	}
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	f.orders[order.ID] = order
	return order, nil
}

func (f *fakeOrderRepo) InsertItems(ctx context.Context, orderID string, items []domain.OrderItem) error {
	f.items[orderID] = items
	return nil
}

func (f *fakeOrderRepo) List(ctx context.Context) ([]*domain.Order, error) {
	result := make([]*domain.Order, 0, len(f.orders))
	for _, o := range f.orders {
		result = append(result, o)
	}
	return result, nil
}

func (f *fakeOrderRepo) GetByID(ctx context.Context, orderID string) (*domain.Order, error) {
	o, ok := f.orders[orderID]
	if !ok {
		return nil, e.ErrOrderNotFound
	}
	return o, nil
}

func (f *fakeOrderRepo) GetItems(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	return f.items[orderID], nil
}

func (f *fakeOrderRepo) GetForUpdate(ctx context.Context, orderID string) (*domain.Order, error) {
	return f.GetByID(ctx, orderID)
}

func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) (*domain.Order, error) {
	o, ok := f.orders[orderID]
	if !ok {
		return nil, e.ErrOrderNotFound
	}
	o.Status = status
	return o, nil
}

type fakeOutboxRepo struct {
	events []*usecase.OutboxEvent
}

func (f *fakeOutboxRepo) Create(ctx context.Context, event *usecase.OutboxEvent) (*usecase.OutboxEvent, error) {
	f.events = append(f.events, event)
	return event, nil
}

func (f *fakeOutboxRepo) GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*usecase.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepo) MarkAsProcessed(ctx context.Context, id int64) error { return nil }

type fakeCacheRepo struct {
	deleted [][]int64
}

func (f *fakeCacheRepo) GetProducts(ctx context.Context, ids []int64) (map[int64]usecase.ProductInfo, error) {
	return map[int64]usecase.ProductInfo{}, nil
}

func (f *fakeCacheRepo) SetProducts(ctx context.Context, products []usecase.ProductInfo) error {
	return nil
}

func (f *fakeCacheRepo) DeleteProducts(ctx context.Context, ids []int64) error {
	f.deleted = append(f.deleted, ids)
	return nil
}

type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...any)            {}
func (nopLogger) Infof(format string, args ...any)             {}
func (nopLogger) Warnf(format string, args ...any)             {}
func (nopLogger) Errorf(err error, format string, args ...any) {}

func activeProduct(id int64, name string, price int64, stock int32) *domain.Product {
	return &domain.Product{
		ID:            id,
		Name:          name,
		Price:         price,
		StockQuantity: stock,
		IsActive:      true,
	}
}

type orderFixture struct {
	pool        *fakePool
	productRepo *fakeProductRepo
	orderRepo   *fakeOrderRepo
	outboxRepo  *fakeOutboxRepo
	cacheRepo   *fakeCacheRepo
	uc          *usecase.OrderUseCase
}

func newOrderFixture(products ...*domain.Product) *orderFixture {
	f := &orderFixture{
		pool:        &fakePool{},
		productRepo: newFakeProductRepo(products...),
		orderRepo:   newFakeOrderRepo(),
		outboxRepo:  &fakeOutboxRepo{},
		cacheRepo:   &fakeCacheRepo{},
	}
	f.uc = usecase.NewOrderUC(f.orderRepo, f.productRepo, f.outboxRepo, f.pool, f.cacheRepo, nopLogger{})
	return f
}

func validOrderReq(items ...usecase.OrderItemReq) *usecase.CreateOrderReq {
	return &usecase.CreateOrderReq{
		CustomerName:    "Anna Petrova",
		CustomerEmail:   "anna@example.com",
		CustomerPhone:   "+79990001122",
		DeliveryAddress: "Nevsky 1",
		DeliveryCity:    "Saint Petersburg",
		Items:           items,
	}
}

func TestCreateOrder(t *testing.T) {
	t.Run("successful order snapshots price and decrements stock", func(t *testing.T) {
		f := newOrderFixture(
			activeProduct(1, "Red roses", 59999, 10),
			activeProduct(2, "Tulips", 19900, 5),
		)

		order, err := f.uc.CreateOrder(context.Background(), validOrderReq(
			usecase.NewOrderItemReq(1, 2),
			usecase.NewOrderItemReq(2, 3),
		))
		require.NoError(t, err)
		require.NotNil(t, order)

		assert.Equal(t, domain.StatusPending, order.Status)
		assert.Equal(t, int64(2*59999+3*19900), order.TotalAmount)

		items := f.orderRepo.items[order.ID]
		require.Len(t, items, 2)
		assert.Equal(t, "Red roses", items[0].ProductName)
		assert.Equal(t, int64(59999), items[0].ProductPrice)
		assert.Equal(t, int64(2*59999), items[0].Subtotal)

		assert.Equal(t, int32(8), f.productRepo.products[1].StockQuantity)
		assert.Equal(t, int32(2), f.productRepo.products[2].StockQuantity)

		require.True(t, f.pool.tx.committed)
		assert.False(t, f.pool.tx.rolledBack)
	})

	t.Run("outbox event written in same transaction", func(t *testing.T) {
		f := newOrderFixture(activeProduct(1, "Red roses", 59999, 10))

		order, err := f.uc.CreateOrder(context.Background(), validOrderReq(usecase.NewOrderItemReq(1, 1)))
		require.NoError(t, err)

		require.Len(t, f.outboxRepo.events, 1)
		event := f.outboxRepo.events[0]
		assert.Equal(t, usecase.OrderCreatedEventType, event.EventType)
		assert.Equal(t, order.ID, event.OrderID)
		assert.Equal(t, usecase.Pending, event.Status)

		var payload usecase.OrderCreatedEvent
		require.NoError(t, json.Unmarshal(event.Payload, &payload))
		assert.Equal(t, order.ID, payload.OrderID)
		assert.Equal(t, order.TotalAmount, payload.TotalAmount)
		require.Len(t, payload.Items, 1)
		assert.Equal(t, "Red roses", payload.Items[0].ProductName)
	})

	t.Run("cache invalidated after commit", func(t *testing.T) {
		f := newOrderFixture(
			activeProduct(1, "Red roses", 59999, 10),
			activeProduct(2, "Tulips", 19900, 5),
		)

		_, err := f.uc.CreateOrder(context.Background(), validOrderReq(
			usecase.NewOrderItemReq(2, 1),
			usecase.NewOrderItemReq(1, 1),
		))
		require.NoError(t, err)

		require.Len(t, f.cacheRepo.deleted, 1)
		assert.ElementsMatch(t, []int64{1, 2}, f.cacheRepo.deleted[0])
	})

	t.Run("products locked in ascending id order", func(t *testing.T) {
		f := newOrderFixture(
			activeProduct(1, "Red roses", 59999, 10),
			activeProduct(2, "Tulips", 19900, 5),
			activeProduct(3, "Peonies", 89900, 7),
		)

		_, err := f.uc.CreateOrder(context.Background(), validOrderReq(
			usecase.NewOrderItemReq(3, 1),
			usecase.NewOrderItemReq(1, 1),
			usecase.NewOrderItemReq(2, 1),
		))
		require.NoError(t, err)

		assert.Equal(t, []int64{1, 2, 3}, f.productRepo.lockOrder)
	})

	t.Run("duplicate lines decrement sequentially", func(t *testing.T) {
		f := newOrderFixture(activeProduct(1, "Red roses", 59999, 5))

		order, err := f.uc.CreateOrder(context.Background(), validOrderReq(
			usecase.NewOrderItemReq(1, 2),
			usecase.NewOrderItemReq(1, 3),
		))
		require.NoError(t, err)

		// Товар блокируется один раз, позиции остаются раздельными
		assert.Equal(t, []int64{1}, f.productRepo.lockOrder)
		assert.Len(t, f.orderRepo.items[order.ID], 2)
		assert.Equal(t, int64(5*59999), order.TotalAmount)
		assert.Equal(t, int32(0), f.productRepo.products[1].StockQuantity)
	})

	t.Run("duplicate lines over stock rejected", func(t *testing.T) {
		f := newOrderFixture(activeProduct(1, "Red roses", 59999, 4))

		_, err := f.uc.CreateOrder(context.Background(), validOrderReq(
			usecase.NewOrderItemReq(1, 2),
			usecase.NewOrderItemReq(1, 3),
		))
		require.Error(t, err)
		assert.ErrorIs(t, err, e.ErrValidation)

		assert.True(t, f.pool.tx.rolledBack)
		assert.Equal(t, int32(4), f.productRepo.products[1].StockQuantity)
	})

	t.Run("insufficient stock rolls back entire order", func(t *testing.T) {
		f := newOrderFixture(
			activeProduct(1, "Red roses", 59999, 10),
			activeProduct(2, "Tulips", 19900, 1),
		)

		_, err := f.uc.CreateOrder(context.Background(), validOrderReq(
			usecase.NewOrderItemReq(1, 2),
			usecase.NewOrderItemReq(2, 5),
		))
		require.Error(t, err)
		assert.ErrorIs(t, err, e.ErrValidation)

		msg, ok := e.Message(err)
		require.True(t, ok)
		assert.Equal(t, "Insufficient stock for product 'Tulips'. Available: 1, Requested: 5", msg)

		assert.True(t, f.pool.tx.rolledBack)
		assert.False(t, f.pool.tx.committed)
		assert.Empty(t, f.orderRepo.orders)
		assert.Empty(t, f.outboxRepo.events)
		assert.Equal(t, int32(10), f.productRepo.products[1].StockQuantity)
	})

	t.Run("unknown product rolls back", func(t *testing.T) {
		f := newOrderFixture(activeProduct(1, "Red roses", 59999, 10))

		_, err := f.uc.CreateOrder(context.Background(), validOrderReq(
			usecase.NewOrderItemReq(1, 1),
			usecase.NewOrderItemReq(42, 1),
		))
		require.Error(t, err)
		assert.ErrorIs(t, err, e.ErrNotFound)

		assert.True(t, f.pool.tx.rolledBack)
		assert.Empty(t, f.orderRepo.orders)
	})

	t.Run("empty order rejected before transaction", func(t *testing.T) {
		f := newOrderFixture()

		_, err := f.uc.CreateOrder(context.Background(), validOrderReq())
		require.Error(t, err)
		assert.ErrorIs(t, err, e.ErrValidation)
		assert.Zero(t, f.pool.beginCnt)
	})

	t.Run("non-positive quantity rejected before transaction", func(t *testing.T) {
		f := newOrderFixture(activeProduct(1, "Red roses", 59999, 10))

		_, err := f.uc.CreateOrder(context.Background(), validOrderReq(usecase.NewOrderItemReq(1, 0)))
		require.Error(t, err)
		assert.ErrorIs(t, err, e.ErrValidation)
		assert.Zero(t, f.pool.beginCnt)
	})
}

func TestSetOrderStatus(t *testing.T) {
	seedOrder := func(f *orderFixture, status domain.OrderStatus) *domain.Order {
		order := &domain.Order{ID: "11111111-1111-1111-1111-111111111111", Status: status}
		f.orderRepo.orders[order.ID] = order
		return order
	}

	t.Run("allowed transition", func(t *testing.T) {
		f := newOrderFixture()
		order := seedOrder(f, domain.StatusPending)

		updated, err := f.uc.SetOrderStatus(context.Background(), usecase.NewSetOrderStatusReq(order.ID, "processing"))
		require.NoError(t, err)
		assert.Equal(t, domain.StatusProcessing, updated.Status)
		assert.True(t, f.pool.tx.committed)
	})

	t.Run("illegal transition conflicts", func(t *testing.T) {
		f := newOrderFixture()
		order := seedOrder(f, domain.StatusDelivered)

		_, err := f.uc.SetOrderStatus(context.Background(), usecase.NewSetOrderStatusReq(order.ID, "pending"))
		require.Error(t, err)
		assert.ErrorIs(t, err, e.ErrConflict)

		msg, ok := e.Message(err)
		require.True(t, ok)
		assert.Equal(t, "Cannot change order status from 'delivered' to 'pending'", msg)

		assert.Equal(t, domain.StatusDelivered, f.orderRepo.orders[order.ID].Status)
		assert.True(t, f.pool.tx.rolledBack)
	})

	t.Run("same status is not a transition", func(t *testing.T) {
		f := newOrderFixture()
		order := seedOrder(f, domain.StatusProcessing)

		_, err := f.uc.SetOrderStatus(context.Background(), usecase.NewSetOrderStatusReq(order.ID, "processing"))
		require.Error(t, err)
		assert.ErrorIs(t, err, e.ErrConflict)
	})

	t.Run("unknown status rejected before transaction", func(t *testing.T) {
		f := newOrderFixture()
		order := seedOrder(f, domain.StatusPending)

		_, err := f.uc.SetOrderStatus(context.Background(), usecase.NewSetOrderStatusReq(order.ID, "refunded"))
		require.Error(t, err)
		assert.ErrorIs(t, err, e.ErrValidation)
		assert.Zero(t, f.pool.beginCnt)
	})

	t.Run("missing order", func(t *testing.T) {
		f := newOrderFixture()

		_, err := f.uc.SetOrderStatus(context.Background(), usecase.NewSetOrderStatusReq("22222222-2222-2222-2222-222222222222", "processing"))
		require.Error(t, err)
		assert.ErrorIs(t, err, e.ErrNotFound)
	})
}
