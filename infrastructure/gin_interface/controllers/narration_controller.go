package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nezuni1812/Vivid/application/ports/inbound"
	"github.com/nezuni1812/Vivid/application/ports/outbound"
	"github.com/nezuni1812/Vivid/domain"
	"github.com/nezuni1812/Vivid/infrastructure/gin_interface/dto"
)

type NarrationController interface {
	CreateNarration(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type narrationController struct {
	logger         outbound.LoggerPort
	pipeline       inbound.NarrationPipelinePort
	narrationStore outbound.NarrationStorePort
	narrationCache outbound.NarrationCachePort
}

func NewNarrationController(
	logger outbound.LoggerPort,
	pipeline inbound.NarrationPipelinePort,
	narrationStore outbound.NarrationStorePort,
	narrationCache outbound.NarrationCachePort,
) NarrationController {
	return &narrationController{
		logger:         logger,
		pipeline:       pipeline,
		narrationStore: narrationStore,
		narrationCache: narrationCache,
	}
}

func (n *narrationController) CreateNarration(c *gin.Context) {
	var req dto.CreateNarrationRequest
	newCtx, cancel := context.WithCancel(c)
	defer cancel()
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	workspaceID := c.Param("workspace_id")

	result, err := n.pipeline.Run(newCtx, inbound.RunNarrationParams{
		Script:   req.Script,
		Language: req.Language,
		Engine:   req.EngineOrDefault(),
		Gender:   req.GenderOrDefault(),
		Effects:  req.EffectParams(),
	})
	if err != nil {
		c.AbortWithStatusJSON(n.statusForPipelineError(err), gin.H{"error": err.Error()})
		return
	}

	if req.PreviousAudioURL != "" {
		if err := n.narrationStore.Delete(newCtx, req.PreviousAudioURL); err != nil {
			n.logger.Error(err, "Failed to delete superseded narration audio")
		}
	}

	narrationID := uuid.NewString()

	audioURL, err := n.narrationStore.Save(newCtx, outbound.StoreNarrationRequest{
		WorkspaceID:   workspaceID,
		NarrationID:   narrationID,
		AudioFileName: result.AudioFileName,
	})
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to store narration audio"})
		return
	}

	err = n.narrationCache.Save(newCtx, outbound.NarrationRecord{
		WorkspaceID: workspaceID,
		NarrationID: narrationID,
		ScriptID:    req.ScriptID,
		AudioURL:    audioURL,
		Timings:     result.Timings,
		Status:      "completed",
	})
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to save narration record"})
		return
	}

	c.JSON(http.StatusCreated, dto.CreateNarrationResponse{
		NarrationID: narrationID,
		AudioURL:    audioURL,
		Timings:     result.Timings,
	})
}

// statusForPipelineError separates caller mistakes from upstream engine
// exhaustion.
func (n *narrationController) statusForPipelineError(err error) int {
	var langErr *domain.UnsupportedLanguageError
	var engineErr *domain.UnsupportedEngineError
	var rangeErr *domain.EffectRangeError

	switch {
	case errors.As(err, &langErr), errors.As(err, &engineErr), errors.As(err, &rangeErr),
		errors.Is(err, domain.ErrEmptyScript):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrSynthesisExhausted):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (n *narrationController) RegisterRoutes(g *gin.Engine) {
	g.POST("/workspaces/:workspace_id/narrations", n.CreateNarration)
}
