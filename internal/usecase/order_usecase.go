package usecase

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/boutique-bouquet/go-backend/internal/domain"
	"github.com/boutique-bouquet/go-backend/pkg/e"
	"github.com/boutique-bouquet/go-backend/pkg/logger"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// OrderUseCase реализует оформление заказа и административные операции над заказами.
type OrderUseCase struct {
	orderRepo   OrderRepository
	productRepo ProductRepository
	outboxRepo  OutboxRepository
	dbPool      transaction.Transactional
	cacheRepo   CacheRepository
	logger      logger.Logger
}

func NewOrderUC(
	orderRepo OrderRepository,
	productRepo ProductRepository,
	outboxRepo OutboxRepository,
	dbPool transaction.Transactional,
	cacheRepo CacheRepository,
	logger logger.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		outboxRepo:  outboxRepo,
		dbPool:      dbPool,
		cacheRepo:   cacheRepo,
		logger:      logger,
	}
}

// CreateOrder превращает корзину в подтверждённый заказ в одной транзакции:
// блокировка строк товаров, проверка остатков, списание, вставка заказа и позиций,
// запись outbox-события. Любая ошибка откатывает всё целиком.
func (o *OrderUseCase) CreateOrder(ctx context.Context, req *CreateOrderReq) (*domain.Order, error) {
	const op = "OrderUseCase.CreateOrder"

	var err error
	if err = validateOrderReq(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, o.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	// Блокировка строк товаров в каноническом порядке возрастания id,
	// чтобы встречные заказы не могли захватить их в противоположном порядке.
	products, err := o.lockProducts(ctx, req.Items)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	items, totalAmount, err := assembleItems(req.Items, products)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = o.decrementStock(ctx, req.Items); err != nil {
		return nil, e.Wrap(op, err)
	}

	order := &domain.Order{
		ID:                 uuid.NewString(),
		CustomerName:       req.CustomerName,
		CustomerEmail:      req.CustomerEmail,
		CustomerPhone:      req.CustomerPhone,
		DeliveryAddress:    req.DeliveryAddress,
		DeliveryCity:       req.DeliveryCity,
		DeliveryPostalCode: req.DeliveryPostalCode,
		TotalAmount:        totalAmount,
		Status:             domain.StatusPending,
		Notes:              req.Notes,
	}

	order, err = o.orderRepo.Create(ctx, order)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = o.orderRepo.InsertItems(ctx, order.ID, items); err != nil {
		return nil, e.Wrap(op, err)
	}

	event, err := buildOrderCreatedEvent(order, items)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if _, err = o.outboxRepo.Create(ctx, event); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	// Остатки изменились — устаревшие записи кэша удаляются после коммита.
	if cacheErr := o.cacheRepo.DeleteProducts(ctx, productIDs(req.Items)); cacheErr != nil {
		o.logger.Warnf("Failed to invalidate product cache: %v", e.Wrap(op, cacheErr))
	}

	return order, nil
}

// ListOrders возвращает все заказы, новые первыми.
func (o *OrderUseCase) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	const op = "OrderUseCase.ListOrders"

	orders, err := o.orderRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return orders, nil
}

// GetOrder возвращает заказ вместе с его позициями.
func (o *OrderUseCase) GetOrder(ctx context.Context, orderID string) (*OrderWithItems, error) {
	const op = "OrderUseCase.GetOrder"

	order, err := o.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	items, err := o.orderRepo.GetItems(ctx, orderID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewOrderWithItems(order, items), nil
}

// SetOrderStatus переводит заказ в новый статус, проверяя допустимость перехода.
// Текущий статус читается под блокировкой строки, чтобы встречные смены статуса
// не перескочили проверку.
func (o *OrderUseCase) SetOrderStatus(ctx context.Context, req *SetOrderStatusReq) (*domain.Order, error) {
	const op = "OrderUseCase.SetOrderStatus"

	status, ok := domain.ParseOrderStatus(req.Status)
	if !ok {
		return nil, e.Wrap(op, e.Validationf("Invalid status. Must be one of: %s", domain.OrderStatusValues()))
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, o.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	current, err := o.orderRepo.GetForUpdate(ctx, req.OrderID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if !current.Status.CanTransitionTo(status) {
		err = e.Conflictf("Cannot change order status from '%s' to '%s'", current.Status, status)
		return nil, e.Wrap(op, err)
	}

	order, err := o.orderRepo.UpdateStatus(ctx, req.OrderID, status)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	return order, nil
}

// lockProducts захватывает FOR UPDATE блокировки на уникальные товары заказа
// в порядке возрастания id и возвращает заблокированные строки.
func (o *OrderUseCase) lockProducts(ctx context.Context, items []OrderItemReq) (map[int64]*domain.Product, error) {
	ids := productIDs(items)

	products := make(map[int64]*domain.Product, len(ids))
	for _, id := range ids {
		product, err := o.productRepo.GetForUpdate(ctx, id)
		if err != nil {
			return nil, err
		}
		products[id] = product
	}

	return products, nil
}

// decrementStock списывает суммарное запрошенное количество каждого товара.
func (o *OrderUseCase) decrementStock(ctx context.Context, items []OrderItemReq) error {
	requested := make(map[int64]int32, len(items))
	for _, item := range items {
		requested[item.ProductID] += item.Quantity
	}

	for _, id := range productIDs(items) {
		if err := o.productRepo.DecrementStock(ctx, id, requested[id]); err != nil {
			return err
		}
	}

	return nil
}

// assembleItems формирует позиции заказа в порядке запроса: снимок названия и цены,
// подытог и общая сумма. Остаток отслеживается на каждый товар, поэтому повторные
// строки одного товара списываются последовательно.
func assembleItems(reqItems []OrderItemReq, products map[int64]*domain.Product) ([]domain.OrderItem, int64, error) {
	remaining := make(map[int64]int32, len(products))
	for id, product := range products {
		remaining[id] = product.StockQuantity
	}

	var totalAmount int64
	items := make([]domain.OrderItem, 0, len(reqItems))
	for _, reqItem := range reqItems {
		product := products[reqItem.ProductID]

		if remaining[reqItem.ProductID] < reqItem.Quantity {
			return nil, 0, e.Validationf(
				"Insufficient stock for product '%s'. Available: %d, Requested: %d",
				product.Name, remaining[reqItem.ProductID], reqItem.Quantity,
			)
		}
		remaining[reqItem.ProductID] -= reqItem.Quantity

		item := domain.NewOrderItem(product.ID, product.Name, product.Price, reqItem.Quantity)
		totalAmount += item.Subtotal
		items = append(items, *item)
	}

	return items, totalAmount, nil
}

// validateOrderReq проверяет корзину до открытия транзакции.
func validateOrderReq(req *CreateOrderReq) error {
	if len(req.Items) == 0 {
		return e.ErrEmptyOrder
	}

	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return e.ErrQuantityNotPositive
		}
	}

	return nil
}

// productIDs возвращает уникальные id товаров заказа, отсортированные по возрастанию.
func productIDs(items []OrderItemReq) []int64 {
	seen := make(map[int64]struct{}, len(items))
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// buildOrderCreatedEvent сериализует событие о созданном заказе для outbox.
func buildOrderCreatedEvent(order *domain.Order, items []domain.OrderItem) (*OutboxEvent, error) {
	eventID := uuid.NewString()

	eventItems := make([]OrderCreatedEventItem, 0, len(items))
	for _, item := range items {
		var productID int64
		if item.ProductID != nil {
			productID = *item.ProductID
		}
		eventItems = append(eventItems, OrderCreatedEventItem{
			ProductID:   productID,
			ProductName: item.ProductName,
			Price:       item.ProductPrice,
			Quantity:    item.Quantity,
			Subtotal:    item.Subtotal,
		})
	}

	payload, err := json.Marshal(OrderCreatedEvent{
		EventID:     eventID,
		OrderID:     order.ID,
		TotalAmount: order.TotalAmount,
		Status:      string(order.Status),
		Items:       eventItems,
		CreatedAt:   time.Now().UnixNano(),
	})
	if err != nil {
		return nil, err
	}

	return &OutboxEvent{
		EventID:   eventID,
		EventType: OrderCreatedEventType,
		OrderID:   order.ID,
		Payload:   payload,
		Status:    Pending,
		CreatedAt: time.Now(),
	}, nil
}
