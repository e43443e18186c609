package domain

import "errors"

var (
	// Ошибка отсутствия хотя бы одной позиции в заказе.
	ErrLinesRequired = errors.New("order must contain at least one line")
	// Ошибка некорректного идентификатора товара (<= 0).
	ErrProductIDInvalid = errors.New("product id must be greater than zero")
	// Ошибка при некорректном количестве товара (<= 0).
	ErrQuantityInvalid = errors.New("line quantity must be greater than zero")
	// Ошибка, если цена позиции отрицательная.
	ErrPriceNegative = errors.New("line price must be non-negative")
	// Ошибка несоответствия суммы заказа и сумм позиций.
	ErrAmountMismatch = errors.New("order total amount does not match lines sum")
	// Ошибка несоответствия количества товаров и позиций.
	ErrItemsMismatch = errors.New("order total items does not match lines sum")
	// ErrTotalItemsOverflow — суммарное количество товаров не помещается в int32.
	ErrTotalItemsOverflow = errors.New("order total items exceeds int32 range")
	// ErrUnknownOrderStatus — статус не входит в словарь.
	ErrUnknownOrderStatus = errors.New("unknown order status")
	// ErrStatusTransitionForbidden — переход запрещён таблицей переходов.
	ErrStatusTransitionForbidden = errors.New("order status transition is not allowed")
	// ErrOrderAlreadyExists возвращается при повторной вставке заказа с тем же ID.
	ErrOrderAlreadyExists = errors.New("order already exists")
	// ErrProductNotFound — каталог не вернул запись для одного из запрошенных товаров.
	ErrProductNotFound = errors.New("product not found")
	// ErrPriceUnresolved — внутренняя несогласованность: цена позиции не найдена после валидации.
	ErrPriceUnresolved = errors.New("authoritative price is not resolved")
)

// Таксономия ошибок, которую видит вызывающая сторона.
var (
	// ErrValidationFailed — товары не прошли проверку каталогом (неизвестный id, ошибка или таймаут вызова).
	ErrValidationFailed = errors.New("product validation failed")
	// ErrOrderNotFound возвращается, если заказ не найден в репозитории.
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderCreationFailed — обобщённая ошибка создания заказа.
	ErrOrderCreationFailed = errors.New("order creation failed")
	// ErrStatusChangeFailed — обобщённая ошибка смены статуса.
	ErrStatusChangeFailed = errors.New("order status change failed")
	// ErrEnrichmentFailed — не удалось подставить названия товаров при чтении заказа.
	ErrEnrichmentFailed = errors.New("order enrichment failed")
	// ErrStorageFailed — хранилище заказов недоступно или вернуло неожиданную ошибку.
	ErrStorageFailed = errors.New("order storage failed")
)

// OperationError — ошибка операции оркестратора для вызывающей стороны.
// Исходная причина сюда не попадает: она логируется на месте.
type OperationError struct {
	// Kind — класс ошибки из таксономии.
	Kind error
	// Reason — уточнение (например, ErrValidationFailed внутри ErrOrderCreationFailed).
	Reason error
	// Message — безопасный текст для клиента.
	Message string
}

// NewOperationError конструирует ошибку операции.
func NewOperationError(kind, reason error, message string) *OperationError {
	if message == "" && kind != nil {
		message = kind.Error()
	}
	return &OperationError{Kind: kind, Reason: reason, Message: message}
}

func (e *OperationError) Error() string {
	return e.Message
}

// Unwrap позволяет errors.Is сопоставлять и Kind, и Reason.
func (e *OperationError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Reason != nil {
		errs = append(errs, e.Reason)
	}
	return errs
}

// IsNotFound проверяет, что заказ отсутствует.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrOrderNotFound)
}
