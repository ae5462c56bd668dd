package storage

import (
	"context"
	"sort"
	"sync"

	"label-bot/internal/domain/entity"
	"label-bot/internal/domain/port"
	apperr "label-bot/internal/errors"
)

// MemoryBotRepository in-memory хранилище ботов
type MemoryBotRepository struct {
	mu   sync.RWMutex
	bots map[string]*entity.Bot
}

// NewMemoryBotRepository создаёт новое in-memory хранилище
func NewMemoryBotRepository() *MemoryBotRepository {
	return &MemoryBotRepository{
		bots: make(map[string]*entity.Bot),
	}
}

func key(projectName, taskID string) string {
	return projectName + "/" + taskID
}

// Get возвращает копию бота задачи
func (r *MemoryBotRepository) Get(ctx context.Context, projectName, taskID string) (*entity.Bot, error) {
	r.mu.RLock()
	bot, exists := r.bots[key(projectName, taskID)]
	r.mu.RUnlock()

	if !exists {
		return nil, apperr.Newf(apperr.BotNotFound, "no bot for project %q task %s", projectName, taskID)
	}

	cp := *bot
	return &cp, nil
}

// Save сохраняет бота
func (r *MemoryBotRepository) Save(ctx context.Context, bot *entity.Bot) error {
	cp := *bot

	r.mu.Lock()
	r.bots[key(bot.ProjectName, bot.TaskID())] = &cp
	r.mu.Unlock()

	return nil
}

// Delete удаляет бота задачи
func (r *MemoryBotRepository) Delete(ctx context.Context, projectName, taskID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := key(projectName, taskID)
	if _, exists := r.bots[k]; !exists {
		return apperr.Newf(apperr.BotNotFound, "no bot for project %q task %s", projectName, taskID)
	}
	delete(r.bots, k)

	return nil
}

// UpdateState обновляет состояние бота
func (r *MemoryBotRepository) UpdateState(ctx context.Context, projectName, taskID string, state entity.BotState) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	bot, exists := r.bots[key(projectName, taskID)]
	if !exists {
		return apperr.Newf(apperr.BotNotFound, "no bot for project %q task %s", projectName, taskID)
	}
	bot.SetState(state)

	return nil
}

// List возвращает копии всех ботов, упорядоченные по проекту и задаче
func (r *MemoryBotRepository) List(ctx context.Context) ([]*entity.Bot, error) {
	r.mu.RLock()
	out := make([]*entity.Bot, 0, len(r.bots))
	for _, bot := range r.bots {
		cp := *bot
		out = append(out, &cp)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].ProjectName != out[j].ProjectName {
			return out[i].ProjectName < out[j].ProjectName
		}
		return out[i].TaskIndex < out[j].TaskIndex
	})
	return out, nil
}

// Проверка реализации интерфейса
var _ port.BotRepository = (*MemoryBotRepository)(nil)
