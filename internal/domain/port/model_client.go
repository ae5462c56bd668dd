package port

import (
	"context"

	"label-bot/internal/domain/entity"
	"label-bot/internal/domain/message"
)

// ModelClient интерфейс сервиса инференса
type ModelClient interface {
	// Query выполняет операцию модели, указанную в запросе
	Query(ctx context.Context, query message.ModelQuery) (*entity.Prediction, error)

	// Predict запрашивает предсказание по одному элементу
	Predict(ctx context.Context, req message.ModelRequest) (*entity.Prediction, error)
}
