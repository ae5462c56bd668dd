package redisbus

import (
	"context"

	"github.com/garyburd/redigo/redis"
	log "github.com/sirupsen/logrus"

	apperr "label-bot/internal/errors"
)

// Handler обрабатывает тело одного сообщения канала
type Handler func(payload []byte)

// Subscribe читает канал до отмены контекста или ошибки соединения.
// Соединение закрывается при выходе.
func Subscribe(ctx context.Context, conn redis.Conn, channel string, handle Handler) error {
	psc := redis.PubSubConn{Conn: conn}
	if err := psc.Subscribe(channel); err != nil {
		conn.Close()
		return apperr.Wrap(apperr.Transport, "subscribe to "+channel, err)
	}

	done := make(chan error, 1)
	go func() {
		for {
			switch v := psc.Receive().(type) {
			case redis.Message:
				handle(v.Data)
			case redis.Subscription:
				log.Debug("[Bus] ", v.Kind, " ", v.Channel, " (", v.Count, ")")
			case error:
				done <- v
				return
			}
		}
	}()

	select {
	case <-ctx.Done():
		_ = psc.Unsubscribe(channel)
		conn.Close()
		<-done
		return ctx.Err()
	case err := <-done:
		conn.Close()
		return apperr.Wrap(apperr.Transport, "receive from "+channel, err)
	}
}
