package entity

import "fmt"

// BotState состояние модели для задачи
type BotState string

const (
	BotActive   BotState = "active"   // модель принимает запросы
	BotInactive BotState = "inactive" // модель выключена пользователем
)

// Bot автоматический пользователь, размечающий одну задачу проекта
type Bot struct {
	ProjectName string   // имя проекта
	TaskIndex   int      // индекс задачи в проекте
	BotID       string   // идентификатор пользователя-бота
	Address     string   // адрес io-сервера
	LabelType   string   // тип меток, которые создаёт бот
	SessionID   string   // сессия, которой подписываются действия бота
	State       BotState // текущее состояние модели
}

// NewBot создаёт бота с начальным состоянием
func NewBot(projectName string, taskIndex int, botID, sessionID string) *Bot {
	return &Bot{
		ProjectName: projectName,
		TaskIndex:   taskIndex,
		BotID:       botID,
		SessionID:   sessionID,
		State:       BotActive,
	}
}

// SetState обновляет состояние бота
func (b *Bot) SetState(state BotState) {
	b.State = state
}

// Active сообщает, включена ли модель
func (b *Bot) Active() bool {
	return b.State == BotActive
}

// TaskID строковый идентификатор задачи бота
func (b *Bot) TaskID() string {
	return FormatTaskID(b.TaskIndex)
}

// FormatTaskID переводит индекс задачи в идентификатор из шести цифр
func FormatTaskID(index int) string {
	return fmt.Sprintf("%06d", index)
}
