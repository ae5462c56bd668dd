// Package inference обращается к HTTP-сервису моделей.
package inference

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"

	"label-bot/internal/domain/entity"
	"label-bot/internal/domain/message"
	"label-bot/internal/domain/port"
	apperr "label-bot/internal/errors"
)

const (
	predictPath = "/predict"
	healthPath  = "/health"
)

// errorBody тело ответа сервиса при ошибке
type errorBody struct {
	Error string `json:"error"`
}

// Client HTTP-клиент сервиса инференса
type Client struct {
	http *resty.Client
}

// NewClient создаёт клиент для сервиса по адресу baseURL
func NewClient(baseURL string, timeout time.Duration) *Client {
	c := resty.New().
		SetHostURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	return &Client{http: c}
}

// Query отправляет запрос на операцию query.Endpoint
func (c *Client) Query(ctx context.Context, query message.ModelQuery) (*entity.Prediction, error) {
	return c.post(ctx, "/"+string(query.Endpoint), query)
}

// Predict отправляет запрос на предсказание по элементу
func (c *Client) Predict(ctx context.Context, req message.ModelRequest) (*entity.Prediction, error) {
	return c.post(ctx, predictPath, req)
}

func (c *Client) post(ctx context.Context, path string, body any) (*entity.Prediction, error) {
	var (
		pred    entity.Prediction
		failure errorBody
	)

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&pred).
		SetError(&failure).
		Post(path)
	if err != nil {
		log.Debug("[Inference] Couldn't reach model service: ", err.Error())
		return nil, apperr.Wrap(apperr.Inference, "request "+path, err)
	}

	if resp.IsError() {
		msg := failure.Error
		if msg == "" {
			msg = resp.Status()
		}
		log.Debug("[Inference] Model service rejected request: ", msg)
		return nil, apperr.Newf(apperr.Inference, "%s returned %d: %s", path, resp.StatusCode(), msg)
	}

	return &pred, nil
}

// CheckHealth проверяет доступность сервиса моделей
func (c *Client) CheckHealth(ctx context.Context) error {
	resp, err := c.http.R().SetContext(ctx).Get(healthPath)
	if err != nil {
		return apperr.Wrap(apperr.Inference, "health check", err)
	}
	if resp.IsError() {
		return apperr.New(apperr.Inference, fmt.Sprintf("model service unhealthy: %d", resp.StatusCode()))
	}
	return nil
}

// Проверка реализации интерфейса
var _ port.ModelClient = (*Client)(nil)
