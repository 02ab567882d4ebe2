package domain

import "strings"

// OrderStatus — статус жизненного цикла заказа.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

// orderStatuses — полный набор допустимых значений в порядке жизненного цикла.
var orderStatuses = []OrderStatus{
	StatusPending,
	StatusProcessing,
	StatusShipped,
	StatusDelivered,
	StatusCancelled,
}

// statusTransitions — разрешённые переходы между статусами.
// delivered и cancelled — терминальные состояния.
var statusTransitions = map[OrderStatus][]OrderStatus{
	StatusPending:    {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusShipped, StatusCancelled},
	StatusShipped:    {StatusDelivered},
	StatusDelivered:  {},
	StatusCancelled:  {},
}

// ParseOrderStatus проверяет строку и возвращает статус из допустимого набора.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	status := OrderStatus(s)
	for _, known := range orderStatuses {
		if status == known {
			return status, true
		}
	}
	return "", false
}

// OrderStatusValues возвращает перечень допустимых значений через запятую.
func OrderStatusValues() string {
	values := make([]string, 0, len(orderStatuses))
	for _, s := range orderStatuses {
		values = append(values, string(s))
	}
	return strings.Join(values, ", ")
}

// CanTransitionTo сообщает, разрешён ли переход из текущего статуса в указанный.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal сообщает, что из статуса нет исходящих переходов.
func (s OrderStatus) IsTerminal() bool {
	return len(statusTransitions[s]) == 0
}
