package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/margdarshak/disha/internal/domain"
	"github.com/margdarshak/disha/internal/logger"
	"github.com/margdarshak/disha/internal/repository"
	"github.com/margdarshak/disha/internal/session"
)

// ChatHandler exposes the conversation agent over HTTP.
type ChatHandler struct {
	sessions    *session.Manager
	transcripts repository.TranscriptRepo // nil disables persistence
	log         *logger.Logger
}

// NewChatHandler creates a ChatHandler. transcripts may be nil.
func NewChatHandler(sessions *session.Manager, transcripts repository.TranscriptRepo, log *logger.Logger) *ChatHandler {
	if log == nil {
		log = logger.NewNop()
	}
	return &ChatHandler{sessions: sessions, transcripts: transcripts, log: log}
}

type chatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

type chatResponse struct {
	Response  string `json:"response"`
	Complete  bool   `json:"complete"`
	SessionID string `json:"session_id"`
}

type restartRequest struct {
	SessionID string `json:"session_id" binding:"required"`
}

// Chat handles POST /api/chat: one utterance in, one reply out.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	message := strings.TrimSpace(req.Message)
	if message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "please provide a valid message"})
		return
	}

	s := h.sessions.Get(req.SessionID)
	s.Lock()
	defer s.Unlock()

	phase := s.Agent.Phase()
	reply, complete := s.Agent.ProcessInput(c.Request.Context(), message)

	h.record(c, s.ID, phase, domain.RoleUser, message)
	h.record(c, s.ID, s.Agent.Phase(), domain.RoleAssistant, reply)

	c.JSON(http.StatusOK, chatResponse{
		Response:  reply,
		Complete:  complete,
		SessionID: s.ID,
	})
}

// Restart handles POST /api/restart: reset a session back to Welcome.
func (h *ChatHandler) Restart(c *gin.Context) {
	var req restartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session_id is required"})
		return
	}

	if s, ok := h.sessions.Lookup(req.SessionID); ok {
		s.Lock()
		s.Agent.Reset()
		s.Unlock()
		h.log.Info("session reset", "session_id", req.SessionID)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Conversation reset successfully.",
	})
}

// Transcript handles GET /api/transcript/:id, an operator endpoint listing
// the persisted turns of one session.
func (h *ChatHandler) Transcript(c *gin.Context) {
	if h.transcripts == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "transcript persistence disabled"})
		return
	}
	turns, err := h.transcripts.ListBySession(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.log.Error("listing transcript failed", "session_id", c.Param("id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "listing transcript failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"turns": turns})
}

// record persists one transcript turn. Persistence is best-effort: a storage
// failure is logged and never affects the reply.
func (h *ChatHandler) record(c *gin.Context, sessionID string, phase domain.Phase, role domain.TranscriptRole, content string) {
	if h.transcripts == nil {
		return
	}
	err := h.transcripts.Append(c.Request.Context(), &domain.TranscriptTurn{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Phase:     phase,
		Role:      role,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		h.log.Warn("transcript append failed", "session_id", sessionID, "error", err)
	}
}

// HealthHandler answers liveness checks.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler { return &HealthHandler{} }

func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "disha"})
}

func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Disha career guidance API",
		"status":  "running",
	})
}
