package port

import (
	"context"

	"label-bot/internal/domain/message"
)

// ActionDispatcher доставляет действия бота в интерфейс разметки
type ActionDispatcher interface {
	// Dispatch отправляет пакет действий клиентам задачи
	Dispatch(ctx context.Context, msg message.SyncActionMessage) error
}

// RequestPublisher публикует сообщения для сервиса моделей
type RequestPublisher interface {
	// PublishModelRequest отправляет пакетный запрос
	PublishModelRequest(ctx context.Context, msg message.ModelRequestMessage) error

	// PublishModelRegister подключает или отключает клиента
	PublishModelRegister(ctx context.Context, msg message.ModelRegisterMessage) error
}
