package port

import (
	"context"

	"label-bot/internal/domain/entity"
)

// BotRepository интерфейс хранилища ботов
type BotRepository interface {
	// Get возвращает бота задачи или ошибку BotNotFound
	Get(ctx context.Context, projectName, taskID string) (*entity.Bot, error)

	// Save сохраняет бота
	Save(ctx context.Context, bot *entity.Bot) error

	// Delete удаляет бота задачи
	Delete(ctx context.Context, projectName, taskID string) error

	// UpdateState обновляет состояние бота
	UpdateState(ctx context.Context, projectName, taskID string, state entity.BotState) error

	// List возвращает всех ботов
	List(ctx context.Context) ([]*entity.Bot, error)
}
