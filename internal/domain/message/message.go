// Package message описывает сообщения между интерфейсом разметки, слоем
// синхронизации сессий и сервисом моделей. Имена JSON-полей являются контрактом.
package message

import (
	"label-bot/internal/domain/entity"
	"label-bot/internal/domain/export"
)

// ModelEndpoint операция модели, которой адресован запрос
type ModelEndpoint string

const (
	EndpointPredictPoly ModelEndpoint = "predictPoly"
	EndpointRefinePoly  ModelEndpoint = "refinePoly"
)

// ModelRequestMode режим запроса к модели
type ModelRequestMode string

const (
	ModeInference ModelRequestMode = "inference"
	ModeTraining  ModelRequestMode = "training"
)

// ConnectionRequestMode запрос на подключение клиента к сервису моделей
type ConnectionRequestMode string

const (
	ConnectionRegister   ConnectionRequestMode = "register"
	ConnectionUnregister ConnectionRequestMode = "unregister"
)

// RegisterMessage регистрация сессии на io-сервере
type RegisterMessage struct {
	ProjectName string `json:"projectName"`
	TaskIndex   int    `json:"taskIndex"`
	SessionID   string `json:"sessionId"`
	UserID      string `json:"userId"`
	Address     string `json:"address"`
	Bot         bool   `json:"bot"`
	LabelType   string `json:"labelType,omitempty"`
}

// SyncActionMessage пакет действий для синхронизации клиентов задачи
type SyncActionMessage struct {
	TaskID      string       `json:"taskId"` // FormatTaskID(taskIndex)
	ProjectName string       `json:"projectName"`
	SessionID   string       `json:"sessionId"`
	Actions     ActionPacket `json:"actions"`
	Bot         bool         `json:"bot"`
}

// ModelRegisterMessage подключение клиента к сервису моделей
type ModelRegisterMessage struct {
	ClientID string                `json:"clientId"`
	Channel  string                `json:"channel"` // канал для ответов
	Request  ConnectionRequestMode `json:"request"`
}

// ModelStatusMessage включение или выключение модели для задачи
type ModelStatusMessage struct {
	ProjectName string `json:"projectName"`
	TaskID      string `json:"taskId"`
	Active      bool   `json:"active"`
}

// ModelRequestMessage пакетный запрос к модели в рамках сессии.
// Items[i] соответствует ItemIndices[i].
type ModelRequestMessage struct {
	ClientID       string              `json:"clientId"`
	Mode           ModelRequestMode    `json:"mode"`
	TaskType       string              `json:"taskType"`
	ProjectName    string              `json:"projectName"`
	TaskID         string              `json:"taskId"`
	Items          []export.ItemExport `json:"items"`
	ItemIndices    []int               `json:"itemIndices"`
	DataSize       int                 `json:"dataSize"`       // всего элементов в наборе
	ActionPacketID string              `json:"actionPacketId"` // пакет, вызвавший запрос
	Channel        string              `json:"channel"`
}

// ActionPacket пакет действий
type ActionPacket struct {
	Actions []entity.Action `json:"actions"`
	ID      string          `json:"id"`
	// для действий бота: пакет, который их вызвал
	TriggerID string `json:"triggerId,omitempty"`
}

// BotData данные бота задачи
type BotData struct {
	ProjectName string `json:"projectName"`
	TaskIndex   int    `json:"taskIndex"`
	BotID       string `json:"botId"`
	Address     string `json:"address"`
	LabelType   string `json:"labelType"`
}

// ModelQuery подготовленный запрос к конкретной операции модели
type ModelQuery struct {
	Data      export.ItemExport `json:"data"`
	Endpoint  ModelEndpoint     `json:"endpoint"`
	ItemIndex int               `json:"itemIndex"`
}

// ModelRequest запрос по одному элементу
type ModelRequest struct {
	Data      export.ItemExport `json:"data"`
	ItemIndex int               `json:"itemIndex"`
}

// ModelBatchRequest запрос по нескольким элементам, отправляемый сессии бота.
// Data[i] соответствует ItemIndices[i].
type ModelBatchRequest struct {
	Data        []export.ItemExport `json:"data"`
	ItemIndices []int               `json:"itemIndices"`
}
