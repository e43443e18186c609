package domain

const (
	// DefaultPage — номер страницы по умолчанию.
	DefaultPage = 1
	// DefaultPageLimit — размер страницы по умолчанию.
	DefaultPageLimit = 10
	// MaxPageLimit ограничивает размер страницы сверху.
	MaxPageLimit = 100
)

// PageRequest описывает запрос страницы списка заказов.
type PageRequest struct {
	Page   int
	Limit  int
	Status *OrderStatus
}

// Normalize подставляет значения по умолчанию и ограничивает limit.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	return p
}

// Offset вычисляет смещение (page-1)*limit.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// PageMeta — метаданные страницы.
type PageMeta struct {
	Total    int
	Page     int
	LastPage int
}

// OrderPage — страница заказов вместе с метаданными.
type OrderPage struct {
	Orders []Order
	Meta   PageMeta
}

// LastPage возвращает ceil(total/limit); для пустой выборки это 0.
func LastPage(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
