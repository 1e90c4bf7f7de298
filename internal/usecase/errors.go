package usecase

import "errors"

// 業務エラーの型。どれもトランザクション確定前に検出され、
// 部分適用された状態で呼び出し側に返ることはない。

// 入力不正（空の名前、非正の数量など）
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

// 参照先が存在しない
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

func NewNotFoundError(message string) error {
	return &NotFoundError{Message: message}
}

// 同一商品のOrdered発注が既に存在する
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

func NewConflictError(message string) error {
	return &ConflictError{Message: message}
}

// 許されない状態遷移（受領済みの再受領など）
type InvalidStateError struct {
	Message string
}

func (e *InvalidStateError) Error() string { return e.Message }

func NewInvalidStateError(message string) error {
	return &InvalidStateError{Message: message}
}

// 在庫が負になる操作
type InsufficientStockError struct {
	Message string
}

func (e *InsufficientStockError) Error() string { return e.Message }

func NewInsufficientStockError(message string) error {
	return &InsufficientStockError{Message: message}
}

func AsValidationError(err error) (*ValidationError, bool) {
	var e *ValidationError
	ok := errors.As(err, &e)
	return e, ok
}

func AsNotFoundError(err error) (*NotFoundError, bool) {
	var e *NotFoundError
	ok := errors.As(err, &e)
	return e, ok
}

func AsConflictError(err error) (*ConflictError, bool) {
	var e *ConflictError
	ok := errors.As(err, &e)
	return e, ok
}

func AsInvalidStateError(err error) (*InvalidStateError, bool) {
	var e *InvalidStateError
	ok := errors.As(err, &e)
	return e, ok
}

func AsInsufficientStockError(err error) (*InsufficientStockError, bool) {
	var e *InsufficientStockError
	ok := errors.As(err, &e)
	return e, ok
}
