package entity

// ActionType тип действия в конвейере обновления состояния
type ActionType string

const (
	ActionAddLabels ActionType = "ADD_LABELS"
)

// Action действие, отправляемое в интерфейс разметки
type Action interface {
	Kind() ActionType
	Session() string
}

// BaseAction общие поля всех действий
type BaseAction struct {
	ActionID     string     `json:"actionId"`
	Type         ActionType `json:"type"`
	SessionID    string     `json:"sessionId"`
	UserID       string     `json:"userId"`
	Timestamp    int64      `json:"timestamp"` // миллисекунды unix
	FrontendOnly bool       `json:"frontendOnly,omitempty"`
}

func (a BaseAction) Kind() ActionType { return a.Type }
func (a BaseAction) Session() string  { return a.SessionID }

// AddLabelsAction добавляет метки с фигурами в элементы задачи.
// Labels[i] и Shapes[i] относятся к элементу ItemIndices[i].
type AddLabelsAction struct {
	BaseAction
	ItemIndices []int     `json:"itemIndices"`
	Labels      [][]Label `json:"labels"`
	Shapes      [][]Shape `json:"shapes"`
}
