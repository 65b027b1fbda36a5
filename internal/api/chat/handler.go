package chat

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prodpilot/prodpilot/internal/domain"
	"github.com/prodpilot/prodpilot/internal/service"
)

// Handler handles the public chat API
type Handler struct {
	chatService *service.ChatService
}

// NewHandler creates a new chat handler
func NewHandler(chatService *service.ChatService) *Handler {
	return &Handler{chatService: chatService}
}

// RegisterRoutes registers chat routes
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/session/:product_id", h.BootstrapSession)
	r.GET("/session/:session_id", h.GetSession)
	r.POST("/message", h.SendMessage)
	r.POST("/feedback", h.SubmitFeedback)
	r.GET("/history/:product_id", h.History)
}

// BootstrapSession starts a chat session for a product
func (h *Handler) BootstrapSession(c *gin.Context) {
	productID := c.Param("product_id")

	state, err := h.chatService.BootstrapSession(c.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, state)
}

// GetSession returns the current session state
func (h *Handler) GetSession(c *gin.Context) {
	state, err := h.chatService.GetSession(c.Param("session_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	c.JSON(http.StatusOK, state)
}

// SendMessage drives one question-answer exchange
func (h *Handler) SendMessage(c *gin.Context) {
	var req domain.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := h.chatService.SendMessage(c.Request.Context(), req.SessionID, req.Message)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
	case errors.Is(err, domain.ErrEmptyMessage):
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is empty", "session": state})
	case errors.Is(err, domain.ErrSessionBusy):
		c.JSON(http.StatusConflict, gin.H{"error": "an exchange is already in flight", "session": state})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, state)
	}
}

// SubmitFeedback rates an assistant message
func (h *Handler) SubmitFeedback(c *gin.Context) {
	var req domain.SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := h.chatService.SubmitFeedback(c.Request.Context(), req.SessionID, req.MessageID, *req.Helpful)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "message not found or not feedback-eligible"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, state)
}

// History returns recent persisted exchanges for a product, newest first
func (h *Handler) History(c *gin.Context) {
	productID := c.Param("product_id")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	logs, err := h.chatService.History(c.Request.Context(), productID, limit)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"exchanges": logs, "total": len(logs)})
}
