// Package redisbus переносит сообщения бота через redis pub/sub.
package redisbus

import (
	"context"
	"encoding/json"

	"github.com/garyburd/redigo/redis"
	log "github.com/sirupsen/logrus"

	"label-bot/internal/domain/message"
	"label-bot/internal/domain/port"
	apperr "label-bot/internal/errors"
)

// ConnSource источник соединений; *redis.Pool ему удовлетворяет
type ConnSource interface {
	Get() redis.Conn
}

// NewPool создаёт пул соединений с redis
func NewPool(address string, maxConnections int) *redis.Pool {
	return redis.NewPool(func() (redis.Conn, error) {
		c, err := redis.Dial("tcp", address)
		if err != nil {
			return nil, err
		}
		return c, nil
	}, maxConnections)
}

// Bus публикует запросы к модели и действия бота
type Bus struct {
	conns          ConnSource
	requestChannel string // запросы и регистрация в сервисе моделей
	actionsChannel string // пакеты действий для io-сервера
}

// NewBus создаёт шину поверх источника соединений
func NewBus(conns ConnSource, requestChannel, actionsChannel string) *Bus {
	return &Bus{
		conns:          conns,
		requestChannel: requestChannel,
		actionsChannel: actionsChannel,
	}
}

// PublishModelRequest публикует пакетный запрос к модели
func (b *Bus) PublishModelRequest(ctx context.Context, msg message.ModelRequestMessage) error {
	return b.publish(ctx, b.requestChannel, msg)
}

// PublishModelRegister публикует подключение клиента к сервису моделей
func (b *Bus) PublishModelRegister(ctx context.Context, msg message.ModelRegisterMessage) error {
	return b.publish(ctx, b.requestChannel, msg)
}

// Dispatch публикует пакет действий бота
func (b *Bus) Dispatch(ctx context.Context, msg message.SyncActionMessage) error {
	return b.publish(ctx, b.actionsChannel, msg)
}

func (b *Bus) publish(ctx context.Context, channel string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	serialized, err := json.Marshal(v)
	if err != nil {
		return apperr.Wrap(apperr.Transport, "marshal message for "+channel, err)
	}

	conn := b.conns.Get()
	defer conn.Close()

	if _, err := conn.Do("PUBLISH", channel, serialized); err != nil {
		log.Debug("[Bus] Couldn't publish to ", channel, ": ", err.Error())
		return apperr.Wrap(apperr.Transport, "publish to "+channel, err)
	}
	return nil
}

var (
	_ port.ActionDispatcher = (*Bus)(nil)
	_ port.RequestPublisher = (*Bus)(nil)
)
