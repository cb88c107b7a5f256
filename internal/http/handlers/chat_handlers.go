package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mahir-soa/FYP/domain"
)

// ChatHandlers handles AI assistant chat and conversation history
type ChatHandlers struct {
	chatSvc          domain.ChatService
	conversationRepo domain.ConversationRepository
}

// NewChatHandlers creates new chat handlers
func NewChatHandlers(chatSvc domain.ChatService, conversationRepo domain.ConversationRepository) *ChatHandlers {
	return &ChatHandlers{chatSvc: chatSvc, conversationRepo: conversationRepo}
}

// ChatRequest is the assistant chat request payload
type ChatRequest struct {
	Message               string `json:"message"`
	IncludeExpenseContext *bool  `json:"includeExpenseContext"`
}

func (r ChatRequest) includeContext() bool {
	if r.IncludeExpenseContext == nil {
		return true
	}
	return *r.IncludeExpenseContext
}

// Chat sends a one-off message to the assistant without persisting it
func (h *ChatHandlers) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}

	reply, err := h.chatSvc.Chat(c.Request.Context(), req.Message, req.includeContext())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get assistant response"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": reply})
}

// ListConversations returns all conversations
func (h *ChatHandlers) ListConversations(c *gin.Context) {
	convs, err := h.conversationRepo.FindAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list conversations"})
		return
	}
	c.JSON(http.StatusOK, convs)
}

// GetConversation returns a single conversation
func (h *ChatHandlers) GetConversation(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	conv, err := h.conversationRepo.FindByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Conversation not found"})
		return
	}
	c.JSON(http.StatusOK, conv)
}

// GetMessages returns a conversation's messages in chronological order
func (h *ChatHandlers) GetMessages(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	messages, err := h.conversationRepo.FindMessages(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load messages"})
		return
	}
	c.JSON(http.StatusOK, messages)
}

// CreateConversation starts a new conversation
func (h *ChatHandlers) CreateConversation(c *gin.Context) {
	var body struct {
		Title string `json:"title"`
	}
	_ = c.ShouldBindJSON(&body)
	if body.Title == "" {
		body.Title = "New Chat"
	}

	conv := &domain.Conversation{Title: body.Title}
	if err := h.conversationRepo.Create(c.Request.Context(), conv); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create conversation"})
		return
	}
	c.JSON(http.StatusOK, conv)
}

// UpdateConversation renames a conversation
func (h *ChatHandlers) UpdateConversation(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	var body struct {
		Title *string `json:"title"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	conv, err := h.conversationRepo.FindByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Conversation not found"})
		return
	}

	if body.Title != nil {
		conv.Title = *body.Title
	}
	if err := h.conversationRepo.Update(c.Request.Context(), conv); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update conversation"})
		return
	}
	c.JSON(http.StatusOK, conv)
}

// DeleteConversation removes a conversation and its messages
func (h *ChatHandlers) DeleteConversation(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	if err := h.conversationRepo.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete conversation"})
		return
	}
	c.Status(http.StatusOK)
}

// AddMessage records a user message, gets the assistant's reply and records
// that too. A conversation still titled "New Chat" is retitled from the first
// message.
func (h *ChatHandlers) AddMessage(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	ctx := c.Request.Context()

	conv, err := h.conversationRepo.FindByID(ctx, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Conversation not found"})
		return
	}

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}

	userMsg := &domain.Message{
		ConversationID: conv.ID,
		Role:           domain.RoleUser,
		Content:        req.Message,
	}
	if err := h.conversationRepo.AddMessage(ctx, userMsg); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save message"})
		return
	}

	reply, err := h.chatSvc.Chat(ctx, req.Message, req.includeContext())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get assistant response"})
		return
	}

	assistantMsg := &domain.Message{
		ConversationID: conv.ID,
		Role:           domain.RoleAssistant,
		Content:        reply,
	}
	if err := h.conversationRepo.AddMessage(ctx, assistantMsg); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save message"})
		return
	}

	if conv.Title == "New Chat" {
		conv.Title = titleFromMessage(req.Message)
	}
	conv.UpdatedAt = time.Now()
	if err := h.conversationRepo.Update(ctx, conv); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update conversation"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"response":         reply,
		"userMessage":      userMsg,
		"assistantMessage": assistantMsg,
		"conversation":     conv,
	})
}

// titleFromMessage derives a conversation title from the first user message
func titleFromMessage(message string) string {
	const maxTitle = 30
	if len(message) <= maxTitle {
		return message
	}
	return message[:maxTitle] + "..."
}
