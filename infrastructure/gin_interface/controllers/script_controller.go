package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nezuni1812/Vivid/application/ports/inbound"
	"github.com/nezuni1812/Vivid/application/ports/outbound"
	"github.com/nezuni1812/Vivid/infrastructure/gin_interface/dto"
)

const DefaultWordsPerScript = 150

type ScriptController interface {
	CreateScript(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type scriptController struct {
	logger       outbound.LoggerPort
	scriptWriter inbound.ScriptWriterPort
}

func NewScriptController(logger outbound.LoggerPort, scriptWriter inbound.ScriptWriterPort) ScriptController {
	return &scriptController{
		logger:       logger,
		scriptWriter: scriptWriter,
	}
}

func (s *scriptController) CreateScript(c *gin.Context) {
	var req dto.CreateScriptRequest
	newCtx, cancel := context.WithCancel(c)
	defer cancel()
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	wordsPerScript := req.WordsPerScript
	if wordsPerScript <= 0 {
		wordsPerScript = DefaultWordsPerScript
	}

	script, err := s.scriptWriter.Write(newCtx, inbound.WriteScriptParams{
		Topic:          req.Topic,
		Language:       req.Language,
		WordsPerScript: wordsPerScript,
	})
	if err != nil {
		s.logger.Error(err, "Failed to generate script")
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"error": "failed to generate script"})
		return
	}

	c.JSON(http.StatusCreated, dto.CreateScriptResponse{
		Script: script,
	})
}

func (s *scriptController) RegisterRoutes(g *gin.Engine) {
	g.POST("/workspaces/:workspace_id/scripts", s.CreateScript)
}
