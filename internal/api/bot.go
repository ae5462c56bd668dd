package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"label-bot/internal/domain/message"
)

type botResponse struct {
	ProjectName string `json:"projectName"`
	TaskIndex   int    `json:"taskIndex"`
	TaskID      string `json:"taskId"`
	BotID       string `json:"botId"`
	SessionID   string `json:"sessionId"`
	LabelType   string `json:"labelType"`
	Active      bool   `json:"active"`
}

func (s *Server) registerBot(c *gin.Context) {
	var data message.BotData
	if err := c.ShouldBindJSON(&data); err != nil {
		badRequest(c, err)
		return
	}

	_, reg, err := s.app.BotService.Register(c.Request.Context(), data)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, reg)
}

func (s *Server) listBots(c *gin.Context) {
	bots, err := s.app.BotService.List(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}

	resp := make([]botResponse, 0, len(bots))
	for _, b := range bots {
		resp = append(resp, botResponse{
			ProjectName: b.ProjectName,
			TaskIndex:   b.TaskIndex,
			TaskID:      b.TaskID(),
			BotID:       b.BotID,
			SessionID:   b.SessionID,
			LabelType:   b.LabelType,
			Active:      b.Active(),
		})
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) unregisterBot(c *gin.Context) {
	task, err := strconv.Atoi(c.Param("task"))
	if err != nil {
		badRequest(c, err)
		return
	}

	if err := s.app.BotService.Unregister(c.Request.Context(), c.Param("project"), task); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) setStatus(c *gin.Context) {
	var msg message.ModelStatusMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		badRequest(c, err)
		return
	}

	bot, err := s.app.BotService.SetStatus(c.Request.Context(), msg)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"taskId": bot.TaskID(), "active": bot.Active()})
}
