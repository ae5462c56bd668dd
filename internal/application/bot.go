package app

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"label-bot/internal/domain/entity"
	"label-bot/internal/domain/message"
	"label-bot/internal/domain/port"
	apperr "label-bot/internal/errors"
	"label-bot/internal/translator"
)

const responseChannelPrefix = "modelResponse_"

// ResponseChannel канал, в который сервис моделей отвечает клиенту
func ResponseChannel(clientID string) string {
	return responseChannelPrefix + clientID
}

type BotService struct {
	repo         port.BotRepository
	publisher    port.RequestPublisher
	newSessionID func() string
}

// NewBotService создаёт сервис ботов. publisher может быть nil,
// тогда бот не подключается к сервису моделей через шину.
func NewBotService(repo port.BotRepository, publisher port.RequestPublisher) *BotService {
	return &BotService{
		repo:         repo,
		publisher:    publisher,
		newSessionID: uuid.NewString,
	}
}

// Register создаёт бота задачи с новой сессией.
// Бот сохраняется только после подключения сессии к сервису моделей.
// Прежняя сессия задачи отключается от сервиса моделей.
func (s *BotService) Register(ctx context.Context, data message.BotData) (*entity.Bot, message.RegisterMessage, error) {
	previous, err := s.repo.Get(ctx, data.ProjectName, entity.FormatTaskID(data.TaskIndex))
	if err != nil && !apperr.Is(err, apperr.BotNotFound) {
		return nil, message.RegisterMessage{}, err
	}

	bot := entity.NewBot(data.ProjectName, data.TaskIndex, data.BotID, s.newSessionID())
	bot.Address = data.Address
	bot.LabelType = data.LabelType

	if err := s.connect(ctx, bot.SessionID, message.ConnectionRegister); err != nil {
		return nil, message.RegisterMessage{}, err
	}

	if err := s.repo.Save(ctx, bot); err != nil {
		s.disconnect(ctx, bot.SessionID)
		return nil, message.RegisterMessage{}, err
	}

	if previous != nil && previous.SessionID != bot.SessionID {
		s.disconnect(ctx, previous.SessionID)
	}

	log.WithFields(log.Fields{
		"project": bot.ProjectName,
		"task":    bot.TaskID(),
		"session": bot.SessionID,
	}).Info("[BotService] Bot registered")

	return bot, message.RegisterMessage{
		ProjectName: bot.ProjectName,
		TaskIndex:   bot.TaskIndex,
		SessionID:   bot.SessionID,
		UserID:      bot.BotID,
		Address:     bot.Address,
		Bot:         true,
		LabelType:   bot.LabelType,
	}, nil
}

// Unregister удаляет бота задачи и отключает его от сервиса моделей
func (s *BotService) Unregister(ctx context.Context, projectName string, taskIndex int) error {
	bot, err := s.Get(ctx, projectName, taskIndex)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, projectName, bot.TaskID()); err != nil {
		return err
	}
	return s.connect(ctx, bot.SessionID, message.ConnectionUnregister)
}

// connect публикует подключение или отключение сессии в сервисе моделей
func (s *BotService) connect(ctx context.Context, sessionID string, request message.ConnectionRequestMode) error {
	if s.publisher == nil {
		return nil
	}
	return s.publisher.PublishModelRegister(ctx, message.ModelRegisterMessage{
		ClientID: sessionID,
		Channel:  ResponseChannel(sessionID),
		Request:  request,
	})
}

func (s *BotService) disconnect(ctx context.Context, sessionID string) {
	if err := s.connect(ctx, sessionID, message.ConnectionUnregister); err != nil {
		log.WithField("session", sessionID).Warning("[BotService] Couldn't unregister session: ", err.Error())
	}
}

func (s *BotService) Get(ctx context.Context, projectName string, taskIndex int) (*entity.Bot, error) {
	return s.repo.Get(ctx, projectName, entity.FormatTaskID(taskIndex))
}

func (s *BotService) List(ctx context.Context) ([]*entity.Bot, error) {
	return s.repo.List(ctx)
}

// SetStatus включает или выключает модель для задачи
func (s *BotService) SetStatus(ctx context.Context, msg message.ModelStatusMessage) (*entity.Bot, error) {
	state := entity.BotInactive
	if msg.Active {
		state = entity.BotActive
	}
	if err := s.repo.UpdateState(ctx, msg.ProjectName, msg.TaskID, state); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, msg.ProjectName, msg.TaskID)
}

// StatusHandler разбирает ModelStatusMessage из шины и применяет его
func (s *BotService) StatusHandler(ctx context.Context) func(payload []byte) {
	return func(payload []byte) {
		var msg message.ModelStatusMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			log.Debug("[BotService] Couldn't parse status message: ", err.Error())
			return
		}
		if _, err := s.SetStatus(ctx, msg); err != nil {
			log.Debug("[BotService] Couldn't apply status: ", err.Error())
		}
	}
}

// Translator переводчик от имени сессии бота
func (s *BotService) Translator(bot *entity.Bot) *translator.Translator {
	return translator.New(translator.Config{
		ProjectName: bot.ProjectName,
		SessionID:   bot.SessionID,
		UserID:      bot.BotID,
	})
}
