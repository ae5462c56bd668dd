package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"label-bot/internal/domain/message"
	apperr "label-bot/internal/errors"
	"label-bot/internal/infrastructure/storage"
)

func newBotData() message.BotData {
	return message.BotData{
		ProjectName: "proj1",
		TaskIndex:   2,
		BotID:       "bot-1",
		Address:     "http://io:8686",
		LabelType:   "polygon2d",
	}
}

func TestBotService_Register(t *testing.T) {
	bus := &recordingBus{}
	svc := NewBotService(storage.NewMemoryBotRepository(), bus)
	svc.newSessionID = func() string { return "s1" }
	ctx := context.Background()

	bot, reg, err := svc.Register(ctx, newBotData())
	require.NoError(t, err)
	require.Equal(t, "s1", bot.SessionID)
	require.True(t, bot.Active())

	require.Equal(t, message.RegisterMessage{
		ProjectName: "proj1",
		TaskIndex:   2,
		SessionID:   "s1",
		UserID:      "bot-1",
		Address:     "http://io:8686",
		Bot:         true,
		LabelType:   "polygon2d",
	}, reg)

	require.Equal(t, []message.ModelRegisterMessage{{
		ClientID: "s1",
		Channel:  "modelResponse_s1",
		Request:  message.ConnectionRegister,
	}}, bus.registers)

	stored, err := svc.Get(ctx, "proj1", 2)
	require.NoError(t, err)
	require.Equal(t, "polygon2d", stored.LabelType)
}

func TestBotService_RegisterPublishFailure(t *testing.T) {
	bus := &recordingBus{registerErr: errors.New("redis down")}
	svc := NewBotService(storage.NewMemoryBotRepository(), bus)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, newBotData())
	require.EqualError(t, err, "redis down")

	_, err = svc.Get(ctx, "proj1", 2)
	require.True(t, apperr.Is(err, apperr.BotNotFound))
}

func TestBotService_RegisterTwiceReplacesSession(t *testing.T) {
	bus := &recordingBus{}
	svc := NewBotService(storage.NewMemoryBotRepository(), bus)
	svc.newSessionID = sessionIDs("s1", "s2")
	ctx := context.Background()

	_, _, err := svc.Register(ctx, newBotData())
	require.NoError(t, err)
	_, _, err = svc.Register(ctx, newBotData())
	require.NoError(t, err)
	require.NoError(t, svc.Unregister(ctx, "proj1", 2))

	var got []string
	for _, r := range bus.registers {
		got = append(got, r.ClientID+" "+string(r.Request))
	}
	require.Equal(t, []string{"s1 register", "s2 register", "s1 unregister", "s2 unregister"}, got)
}

func TestBotService_RegisterTwiceKeepsOneBot(t *testing.T) {
	svc := NewBotService(storage.NewMemoryBotRepository(), &recordingBus{})
	svc.newSessionID = sessionIDs("s1", "s2")
	ctx := context.Background()

	_, _, err := svc.Register(ctx, newBotData())
	require.NoError(t, err)
	_, _, err = svc.Register(ctx, newBotData())
	require.NoError(t, err)

	bots, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, bots, 1)
	require.Equal(t, "s2", bots[0].SessionID)
}

func TestBotService_SetStatus(t *testing.T) {
	svc := NewBotService(storage.NewMemoryBotRepository(), nil)
	ctx := context.Background()

	_, err := svc.SetStatus(ctx, message.ModelStatusMessage{ProjectName: "proj1", TaskID: "000002"})
	require.True(t, apperr.Is(err, apperr.BotNotFound))

	_, _, err = svc.Register(ctx, newBotData())
	require.NoError(t, err)

	bot, err := svc.SetStatus(ctx, message.ModelStatusMessage{ProjectName: "proj1", TaskID: "000002", Active: false})
	require.NoError(t, err)
	require.False(t, bot.Active())

	svc.StatusHandler(ctx)([]byte(`{"projectName":"proj1","taskId":"000002","active":true}`))
	bot, err = svc.Get(ctx, "proj1", 2)
	require.NoError(t, err)
	require.True(t, bot.Active())

	// некорректное сообщение игнорируется
	svc.StatusHandler(ctx)([]byte(`not json`))
}

func TestBotService_Unregister(t *testing.T) {
	bus := &recordingBus{}
	svc := NewBotService(storage.NewMemoryBotRepository(), bus)
	svc.newSessionID = func() string { return "s1" }
	ctx := context.Background()

	_, _, err := svc.Register(ctx, newBotData())
	require.NoError(t, err)
	require.NoError(t, svc.Unregister(ctx, "proj1", 2))

	_, err = svc.Get(ctx, "proj1", 2)
	require.True(t, apperr.Is(err, apperr.BotNotFound))
	require.Len(t, bus.registers, 2)
	require.Equal(t, message.ConnectionUnregister, bus.registers[1].Request)

	bots, err := svc.List(ctx)
	require.NoError(t, err)
	require.Empty(t, bots)
}

func TestBotService_Translator(t *testing.T) {
	svc := NewBotService(storage.NewMemoryBotRepository(), nil)
	svc.newSessionID = func() string { return "s9" }

	bot, _, err := svc.Register(context.Background(), newBotData())
	require.NoError(t, err)

	tr := svc.Translator(bot)
	require.Equal(t, "proj1", tr.ProjectName())
	require.Equal(t, "s9", tr.SessionID())
}
