// Package errors описывает типизированные ошибки бота разметки.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind машиночитаемая категория ошибки
type Kind string

const (
	// MalformedPrediction массив предсказания неверной длины
	MalformedPrediction Kind = "malformed_prediction"
	// UnknownLabelType неизвестный тип метки для экспорта полигона
	UnknownLabelType Kind = "unknown_label_type"
	// BatchMismatch число элементов не совпадает с числом индексов
	BatchMismatch Kind = "batch_mismatch"
	// BotNotFound бот для задачи не зарегистрирован
	BotNotFound Kind = "bot_not_found"
	// BotInactive модель для задачи выключена
	BotInactive Kind = "bot_inactive"
	// Inference сервис инференса вернул ошибку
	Inference Kind = "inference_failed"
	// Transport ошибка публикации сообщения
	Transport Kind = "transport_failed"
)

// E ошибка с категорией и понятным сообщением
type E struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *E) Unwrap() error { return e.Err }

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }

// Newf создаёт ошибку с форматированным сообщением
func Newf(kind Kind, format string, args ...any) *E {
	return &E{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf возвращает категорию первой типизированной ошибки в цепочке
func KindOf(err error) (Kind, bool) {
	var e *E
	if stderrors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}

// Is проверяет, что в цепочке есть ошибка указанной категории
func Is(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
