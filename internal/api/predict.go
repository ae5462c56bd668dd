package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	app "label-bot/internal/application"
	"label-bot/internal/domain/entity"
)

type targetRequest struct {
	ProjectName string `json:"projectName" binding:"required"`
	TaskIndex   int    `json:"taskIndex"`
	TriggerID   string `json:"triggerId"`
}

func (r targetRequest) target() app.Target {
	return app.Target{ProjectName: r.ProjectName, TaskIndex: r.TaskIndex, TriggerID: r.TriggerID}
}

type predictImageRequest struct {
	targetRequest
	URL        string             `json:"url" binding:"required"`
	ItemIndex  int                `json:"itemIndex"`
	Intrinsics *entity.Intrinsics `json:"intrinsics"`
}

type predictRectRequest struct {
	targetRequest
	URL       string      `json:"url" binding:"required"`
	ItemIndex int         `json:"itemIndex"`
	Rect      entity.Rect `json:"rect"`
}

type predictPolyRequest struct {
	targetRequest
	URL       string               `json:"url" binding:"required"`
	ItemIndex int                  `json:"itemIndex"`
	Points    []entity.PathPoint2D `json:"points" binding:"required"`
}

type batchRequest struct {
	targetRequest
	URLs        []string `json:"urls"`
	ItemIndices []int    `json:"itemIndices"`
	DataSize    int      `json:"dataSize"`
}

func (s *Server) predictImage(c *gin.Context) {
	var req predictImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	packet, err := s.app.PredictionService.PredictImage(
		c.Request.Context(), req.target(), req.URL, req.ItemIndex, req.Intrinsics)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, packet)
}

func (s *Server) predictRect(c *gin.Context) {
	var req predictRectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	packet, err := s.app.PredictionService.SegmentRect(
		c.Request.Context(), req.target(), req.Rect, req.URL, req.ItemIndex)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, packet)
}

func (s *Server) predictPoly(c *gin.Context) {
	var req predictPolyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	packet, err := s.app.PredictionService.RefinePolygon(
		c.Request.Context(), req.target(), req.Points, req.URL, req.ItemIndex)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, packet)
}

func (s *Server) requestBatch(c *gin.Context) {
	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	msg, err := s.app.PredictionService.RequestBatch(
		c.Request.Context(), req.target(), req.URLs, req.ItemIndices, req.DataSize)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, msg)
}
