// Package translator переводит геометрию разметки в запросы к сервису моделей
// и предсказания модели обратно в действия интерфейса.
//
// Translator не хранит изменяемого состояния и безопасен для одновременного
// использования: методы читают только аргументы и неизменяемые поля экземпляра.
package translator

import (
	"time"

	"label-bot/internal/action"
)

// Config параметры переводчика
type Config struct {
	ProjectName string // имя элемента во всех запросах
	SessionID   string // сессия, которой подписываются действия
	UserID      string

	NewID func() string    // необязательно, по умолчанию uuid
	Now   func() time.Time // необязательно, по умолчанию time.Now
}

// Translator связывает одну пару (проект, сессия) с сервисом моделей
type Translator struct {
	projectName string
	actions     *action.Factory
}

// New создаёт переводчик для проекта и сессии
func New(cfg Config) *Translator {
	f := action.NewFactory(cfg.SessionID, cfg.UserID)
	if cfg.NewID != nil {
		f.NewID = cfg.NewID
	}
	if cfg.Now != nil {
		f.Now = cfg.Now
	}
	return &Translator{
		projectName: cfg.ProjectName,
		actions:     f,
	}
}

// ProjectName имя проекта
func (t *Translator) ProjectName() string { return t.projectName }

// SessionID сессия, которой подписываются действия
func (t *Translator) SessionID() string { return t.actions.SessionID }
