package domain

// StatusMachine проверяет допустимость смены статуса по явной таблице переходов.
type StatusMachine struct {
	transitions map[OrderStatus]map[OrderStatus]struct{}
}

// NewStatusMachine строит автомат по таблице from -> []to.
// Статусы вне словаря в таблице игнорируются.
func NewStatusMachine(table map[OrderStatus][]OrderStatus) *StatusMachine {
	transitions := make(map[OrderStatus]map[OrderStatus]struct{}, len(table))
	for from, targets := range table {
		if !from.Valid() {
			continue
		}
		allowed := make(map[OrderStatus]struct{}, len(targets))
		for _, to := range targets {
			if to.Valid() {
				allowed[to] = struct{}{}
			}
		}
		transitions[from] = allowed
	}
	return &StatusMachine{transitions: transitions}
}

// PermissiveStatusMachine разрешает переход между любыми объявленными статусами.
func PermissiveStatusMachine() *StatusMachine {
	table := make(map[OrderStatus][]OrderStatus)
	for _, from := range OrderStatuses() {
		for _, to := range OrderStatuses() {
			if from != to {
				table[from] = append(table[from], to)
			}
		}
	}
	return NewStatusMachine(table)
}

// StrictStatusMachine: PENDING -> DELIVERED | CANCELLED, остальные статусы конечные.
func StrictStatusMachine() *StatusMachine {
	return NewStatusMachine(map[OrderStatus][]OrderStatus{
		OrderStatusPending: {OrderStatusDelivered, OrderStatusCancelled},
	})
}

// CanTransition сообщает, разрешён ли переход from -> to.
// Переход в тот же статус всегда допустим (идемпотентность).
func (m *StatusMachine) CanTransition(from, to OrderStatus) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	if from == to {
		return true
	}
	_, ok := m.transitions[from][to]
	return ok
}

// Transition возвращает ошибку, если переход недопустим.
func (m *StatusMachine) Transition(from, to OrderStatus) error {
	if !to.Valid() {
		return ErrUnknownOrderStatus
	}
	if !m.CanTransition(from, to) {
		return ErrStatusTransitionForbidden
	}
	return nil
}
