package app

import (
	"context"
	"errors"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"label-bot/internal/domain/entity"
	"label-bot/internal/domain/message"
	"label-bot/internal/domain/port"
	apperr "label-bot/internal/errors"
	"label-bot/internal/translator"
)

type PredictionService struct {
	bots       *BotService
	model      port.ModelClient
	dispatcher port.ActionDispatcher
	publisher  port.RequestPublisher
}

// Target задача, для которой выполняется предсказание
type Target struct {
	ProjectName string
	TaskIndex   int
	TriggerID   string // пакет действий, вызвавший предсказание
}

// NewPredictionService создаёт сервис, который связывает модель с интерфейсом разметки.
func NewPredictionService(
	bots *BotService,
	model port.ModelClient,
	dispatcher port.ActionDispatcher,
	publisher port.RequestPublisher,
) *PredictionService {
	return &PredictionService{
		bots:       bots,
		model:      model,
		dispatcher: dispatcher,
		publisher:  publisher,
	}
}

// PredictImage запрашивает разметку всего изображения
func (s *PredictionService) PredictImage(
	ctx context.Context,
	target Target,
	url string,
	itemIndex int,
	intrinsics *entity.Intrinsics,
) (*message.ActionPacket, error) {
	bot, tr, err := s.prepare(ctx, target)
	if err != nil {
		return nil, err
	}

	pred, err := s.model.Predict(ctx, tr.ImageRequest(url, itemIndex, intrinsics))
	if err != nil {
		return nil, err
	}
	return s.deliver(ctx, bot, tr, pred, itemIndex, target.TriggerID)
}

// SegmentRect превращает прямоугольник в полигон объекта
func (s *PredictionService) SegmentRect(
	ctx context.Context,
	target Target,
	rect entity.Rect,
	url string,
	itemIndex int,
) (*message.ActionPacket, error) {
	bot, tr, err := s.prepare(ctx, target)
	if err != nil {
		return nil, err
	}

	pred, err := s.model.Predict(ctx, tr.RectRequest(rect, url, itemIndex))
	if err != nil {
		return nil, err
	}
	return s.deliver(ctx, bot, tr, pred, itemIndex, target.TriggerID)
}

// RefinePolygon уточняет нарисованный полигон. Тип метки берётся у бота задачи.
func (s *PredictionService) RefinePolygon(
	ctx context.Context,
	target Target,
	points []entity.PathPoint2D,
	url string,
	itemIndex int,
) (*message.ActionPacket, error) {
	bot, tr, err := s.prepare(ctx, target)
	if err != nil {
		return nil, err
	}

	query, err := tr.PolyQuery(points, url, itemIndex, bot.LabelType)
	if err != nil {
		return nil, err
	}
	pred, err := s.model.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return s.deliver(ctx, bot, tr, pred, itemIndex, target.TriggerID)
}

// RequestBatch публикует пакетный запрос к модели по изображениям задачи.
// urls[i] соответствует itemIndices[i].
func (s *PredictionService) RequestBatch(
	ctx context.Context,
	target Target,
	urls []string,
	itemIndices []int,
	dataSize int,
) (*message.ModelRequestMessage, error) {
	if s.publisher == nil {
		return nil, errors.New("request publisher is not configured")
	}
	if len(urls) != len(itemIndices) {
		return nil, apperr.Newf(apperr.BatchMismatch, "%d urls but %d item indices", len(urls), len(itemIndices))
	}

	bot, err := s.activeBot(ctx, target)
	if err != nil {
		return nil, err
	}
	tr := s.bots.Translator(bot)

	reqs := make([]message.ModelRequest, 0, len(urls))
	for i, url := range urls {
		reqs = append(reqs, tr.ImageRequest(url, itemIndices[i], nil))
	}
	batch := tr.BatchRequest(reqs...)

	msg := message.ModelRequestMessage{
		ClientID:       bot.SessionID,
		Mode:           message.ModeInference,
		TaskType:       bot.LabelType,
		ProjectName:    bot.ProjectName,
		TaskID:         bot.TaskID(),
		Items:          batch.Data,
		ItemIndices:    batch.ItemIndices,
		DataSize:       dataSize,
		ActionPacketID: target.TriggerID,
		Channel:        ResponseChannel(bot.SessionID),
	}
	if err := s.publisher.PublishModelRequest(ctx, msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (s *PredictionService) prepare(ctx context.Context, target Target) (*entity.Bot, *translator.Translator, error) {
	if s.model == nil {
		return nil, nil, errors.New("model client is not configured")
	}
	bot, err := s.activeBot(ctx, target)
	if err != nil {
		return nil, nil, err
	}
	return bot, s.bots.Translator(bot), nil
}

func (s *PredictionService) activeBot(ctx context.Context, target Target) (*entity.Bot, error) {
	bot, err := s.bots.Get(ctx, target.ProjectName, target.TaskIndex)
	if err != nil {
		return nil, err
	}
	if !bot.Active() {
		return nil, apperr.Newf(apperr.BotInactive, "model is disabled for project %q task %s", bot.ProjectName, bot.TaskID())
	}
	return bot, nil
}

// deliver переводит ответ модели в действия и отправляет их клиентам задачи
func (s *PredictionService) deliver(
	ctx context.Context,
	bot *entity.Bot,
	tr *translator.Translator,
	pred *entity.Prediction,
	itemIndex int,
	triggerID string,
) (*message.ActionPacket, error) {
	actions, err := tr.Actions(pred, itemIndex)
	if err != nil {
		return nil, err
	}

	packet := &message.ActionPacket{
		Actions:   actions,
		ID:        uuid.NewString(),
		TriggerID: triggerID,
	}
	if len(actions) == 0 {
		packet.Actions = []entity.Action{}
		return packet, nil
	}

	if s.dispatcher != nil {
		err := s.dispatcher.Dispatch(ctx, message.SyncActionMessage{
			TaskID:      bot.TaskID(),
			ProjectName: bot.ProjectName,
			SessionID:   bot.SessionID,
			Actions:     *packet,
			Bot:         true,
		})
		if err != nil {
			return nil, err
		}
	}

	log.WithFields(log.Fields{
		"project": bot.ProjectName,
		"task":    bot.TaskID(),
		"item":    itemIndex,
		"actions": len(actions),
	}).Debug("[PredictionService] Dispatched model actions")

	return packet, nil
}
