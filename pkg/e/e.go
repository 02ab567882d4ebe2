package e

import (
	"errors"
	"fmt"
)

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Классы ошибок, различимые на уровне delivery
	ErrValidation   = errors.New("validation error")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")

	// 400 Bad Request
	ErrEmptyOrder          = Validation("Order must contain at least one item")
	ErrQuantityNotPositive = Validation("Quantity must be positive")
	ErrProductNameRequired = Validation("Product name is required")
	ErrPriceMustBePositive = Validation("Price must be positive")
	ErrPricePrecision      = Validation("Price must have at most 2 decimal places")
	ErrStockNegative       = Validation("Stock quantity cannot be negative")
	ErrEmptyPatch          = Validation("No fields to update")
	ErrExpectedMultipart   = Validation("Expected multipart/form-data request")
	ErrNoImage             = Validation("No image file provided")
	ErrFileTooLarge        = Validation("Image file is too large")
	ErrUnsupportedImage    = Validation("Only jpg, jpeg, png, and webp images are allowed")

	// 404 Not Found
	ErrProductNotFound = NotFound("Product not found")
	ErrOrderNotFound   = NotFound("Order not found")

	// 401 Unauthorized
	ErrInvalidCredentials = Unauthorized("Invalid credentials")
	ErrMissingAuthHeader  = Unauthorized("Missing authorization header")
	ErrInvalidAuthFormat  = Unauthorized("Invalid authorization format")
	ErrInvalidToken       = Unauthorized("Invalid or expired token")

	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Error несёт класс ошибки и сообщение, безопасное для клиента.
type Error struct {
	kind error
	msg  string
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Unwrap() error { return e.kind }

// Message возвращает клиентское сообщение ошибки из цепочки, если оно есть.
func Message(err error) (string, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.msg, true
	}
	return "", false
}

func Validation(msg string) error {
	return &Error{kind: ErrValidation, msg: msg}
}

func Validationf(format string, args ...any) error {
	return &Error{kind: ErrValidation, msg: fmt.Sprintf(format, args...)}
}

func NotFound(msg string) error {
	return &Error{kind: ErrNotFound, msg: msg}
}

func NotFoundf(format string, args ...any) error {
	return &Error{kind: ErrNotFound, msg: fmt.Sprintf(format, args...)}
}

func Conflict(msg string) error {
	return &Error{kind: ErrConflict, msg: msg}
}

func Conflictf(format string, args ...any) error {
	return &Error{kind: ErrConflict, msg: fmt.Sprintf(format, args...)}
}

func Unauthorized(msg string) error {
	return &Error{kind: ErrUnauthorized, msg: msg}
}

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
