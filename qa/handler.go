package qa

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"evity-backend/vectorindex"
)

// Handler expone el agente de preguntas por HTTP.
type Handler struct {
	agent    *Agent
	sessions *SessionStore
}

// NewHandler crea el handler con su almacén de conversaciones.
func NewHandler(agent *Agent) *Handler {
	return &Handler{agent: agent, sessions: NewSessionStore()}
}

// RegisterRoutes registra los endpoints del agente.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/session", h.CreateSession)
	r.POST("/ask", h.Ask)
	r.POST("/rebuild-index", h.RebuildIndex)
}

// CreateSession abre una conversación nueva para el chatbot.
func (h *Handler) CreateSession(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"conversationId": h.sessions.Create()})
}

type askRequest struct {
	Question                string    `json:"question"`
	ConversationID          string    `json:"conversationId"`
	UserName                string    `json:"userName"`
	History                 []Message `json:"history"`
	HasSentPersonalGreeting bool      `json:"hasSentPersonalGreeting"`
	MessageHasGreeting      *bool     `json:"messageHasGreeting"`
}

// Ask responde una pregunta del usuario. El contexto de conversación
// puede venir en el cuerpo o referirse a una sesión creada con /session.
func (h *Handler) Ask(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Se requiere el campo 'question'"})
		return
	}
	question := strings.TrimSpace(req.Question)
	if question == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "La pregunta no puede estar vacía"})
		return
	}

	messageHasGreeting := ContainsGreeting(question)
	if req.MessageHasGreeting != nil {
		messageHasGreeting = *req.MessageHasGreeting
	}

	conv := ConversationContext{
		UserName:           strings.TrimSpace(req.UserName),
		History:            req.History,
		HasGreetedBefore:   req.HasSentPersonalGreeting,
		MessageHasGreeting: messageHasGreeting,
	}

	var sessionID string
	if req.ConversationID != "" {
		if history, greeted, ok := h.sessions.Snapshot(req.ConversationID); ok {
			sessionID = req.ConversationID
			conv.History = history
			conv.HasGreetedBefore = greeted
		}
	}

	answer, err := h.agent.Answer(c.Request.Context(), question, conv, 5)
	if err != nil {
		if errors.Is(err, vectorindex.ErrIndexNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "No se encontró el índice. Por favor, agrega documentos a la carpeta 'contenidos' primero.",
				"details": err.Error(),
			})
			return
		}
		log.Printf("[qa] error procesando pregunta: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Error interno del servidor",
			"details": err.Error(),
		})
		return
	}

	resp := gin.H{"answer": answer, "question": question}
	if sessionID != "" {
		h.sessions.Append(sessionID, question, answer, messageHasGreeting && conv.UserName != "")
		resp["conversationId"] = sessionID
	}
	c.JSON(http.StatusOK, resp)
}

// RebuildIndex fuerza la reconstrucción del índice, útil al agregar
// documentos nuevos.
func (h *Handler) RebuildIndex(c *gin.Context) {
	if err := h.agent.Rebuild(c.Request.Context()); err != nil {
		log.Printf("[qa] error reconstruyendo índice: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Error reconstruyendo el índice",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Índice reconstruido exitosamente"})
}
