package app

import (
	"context"
	"sync"

	"label-bot/internal/domain/entity"
	"label-bot/internal/domain/message"
)

type fakeModel struct {
	pred    *entity.Prediction
	err     error
	queries []message.ModelQuery
	reqs    []message.ModelRequest
}

func (m *fakeModel) Query(ctx context.Context, q message.ModelQuery) (*entity.Prediction, error) {
	m.queries = append(m.queries, q)
	return m.pred, m.err
}

func (m *fakeModel) Predict(ctx context.Context, r message.ModelRequest) (*entity.Prediction, error) {
	m.reqs = append(m.reqs, r)
	return m.pred, m.err
}

func sessionIDs(ids ...string) func() string {
	i := 0
	return func() string {
		id := ids[i]
		i++
		return id
	}
}

type recordingBus struct {
	mu         sync.Mutex
	dispatched []message.SyncActionMessage
	requests   []message.ModelRequestMessage
	registers  []message.ModelRegisterMessage

	registerErr error
}

func (b *recordingBus) Dispatch(ctx context.Context, msg message.SyncActionMessage) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.dispatched = append(b.dispatched, msg)
	return nil
}

func (b *recordingBus) PublishModelRequest(ctx context.Context, msg message.ModelRequestMessage) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.requests = append(b.requests, msg)
	return nil
}

func (b *recordingBus) PublishModelRegister(ctx context.Context, msg message.ModelRegisterMessage) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.registerErr != nil {
		return b.registerErr
	}
	b.registers = append(b.registers, msg)
	return nil
}
