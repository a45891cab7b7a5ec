package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"mintfire.backend/internal/infrastructure/ai"
	"mintfire.backend/internal/interfaces/http/response"
)

type ChatHandler struct {
	asker ai.Asker
}

func NewChatHandler(asker ai.Asker) *ChatHandler {
	return &ChatHandler{asker: asker}
}

// Ask answers a visitor question. Always 200: a malformed body, an
// unavailable model or an empty answer all yield the fixed fallback text
// so the widget never shows an error state.
// POST /api/v1/chat
func (h *ChatHandler) Ask(c *gin.Context) {
	var input struct {
		Query string `json:"query"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || strings.TrimSpace(input.Query) == "" {
		response.Success(c, http.StatusOK, gin.H{"response": ai.FallbackResponse})
		return
	}

	answer := h.asker.Ask(c.Request.Context(), strings.TrimSpace(input.Query))
	response.Success(c, http.StatusOK, gin.H{"response": answer})
}
