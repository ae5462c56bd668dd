package container

import (
	app "label-bot/internal/application"
	"label-bot/internal/domain/port"
)

type Container struct {
	BotService        *app.BotService
	PredictionService *app.PredictionService
}

// New собирает сервисы приложения. Шина передаётся и как диспетчер действий,
// и как издатель запросов к модели.
func New(
	botRepo port.BotRepository,
	model port.ModelClient,
	dispatcher port.ActionDispatcher,
	publisher port.RequestPublisher,
) *Container {
	botService := app.NewBotService(botRepo, publisher)
	predictionService := app.NewPredictionService(botService, model, dispatcher, publisher)

	return &Container{
		BotService:        botService,
		PredictionService: predictionService,
	}
}
