package models

import (
	"errors"
	"fmt"
)

// ErrProductNotFound возвращается и для несуществующего, и для
// неопубликованного товара: наружу они неразличимы.
var (
	ErrProductNotFound    = errors.New("product not found")
	ErrCollectionNotFound = errors.New("collection not found")
	ErrAlreadyReviewed    = errors.New("review already exists for this product and user")
	ErrCategoryInUse      = errors.New("category is referenced by products")
)

// Причины ошибок валидации, возвращаются клиенту как есть
const (
	ReasonEmptyText           = "EmptyText"
	ReasonTextTooShort        = "TextTooShort"
	ReasonTextTooLong         = "TextTooLong"
	ReasonInvalidRating       = "InvalidRating"
	ReasonInvalidReactionType = "InvalidReactionType"
)

// ValidationError - некорректный ввод с конкретной причиной
type ValidationError struct {
	Reason  string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Reason, e.Message)
}

func NewValidationError(reason, message string) *ValidationError {
	return &ValidationError{Reason: reason, Message: message}
}

// AsValidationError проверяет, является ли err ошибкой валидации
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
