// Package api HTTP-интерфейс управления ботами разметки.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"label-bot/internal/container"
	apperr "label-bot/internal/errors"
)

// Server HTTP-сервер поверх сервисов приложения
type Server struct {
	router *gin.Engine
	app    *container.Container
}

// NewServer создаёт сервер и регистрирует маршруты
func NewServer(app *container.Container) *Server {
	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{router: router, app: app}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.GET("/health", s.health)

	v1 := s.router.Group("/v1")
	v1.POST("/bots", s.registerBot)
	v1.GET("/bots", s.listBots)
	v1.DELETE("/bots/:project/:task", s.unregisterBot)
	v1.POST("/status", s.setStatus)

	v1.POST("/predict/image", s.predictImage)
	v1.POST("/predict/rect", s.predictRect)
	v1.POST("/predict/poly", s.predictPoly)
	v1.POST("/requests", s.requestBatch)
}

// Handler возвращает http.Handler сервера
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// statusOf переводит категорию ошибки в HTTP-статус
func statusOf(err error) int {
	kind, ok := apperr.KindOf(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch kind {
	case apperr.BotNotFound:
		return http.StatusNotFound
	case apperr.BotInactive:
		return http.StatusConflict
	case apperr.MalformedPrediction, apperr.UnknownLabelType, apperr.BatchMismatch:
		return http.StatusUnprocessableEntity
	case apperr.Inference:
		return http.StatusBadGateway
	case apperr.Transport:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err error) {
	status := statusOf(err)
	if status >= http.StatusInternalServerError {
		log.WithField("path", c.FullPath()).Error("[API] Request failed: ", err.Error())
	}
	body := gin.H{"error": err.Error()}
	if kind, ok := apperr.KindOf(err); ok {
		body["kind"] = kind
	}
	c.AbortWithStatusJSON(status, body)
}

func badRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
