package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zsyio/api/internal/platform/httpx"
	"github.com/zsyio/api/internal/services"
)

// ChatbotHandlers serves the assistant proxy.
type ChatbotHandlers struct {
	chat *services.ChatService
}

// NewChatbotHandlers constructs the chatbot handlers.
func NewChatbotHandlers(chat *services.ChatService) *ChatbotHandlers {
	return &ChatbotHandlers{chat: chat}
}

// Routes wires the /chatbot endpoints onto the provided router.
func (h *ChatbotHandlers) Routes(r chi.Router) {
	r.Post("/", h.ask)
}

type chatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

type chatResponse struct {
	Response string `json:"response"`
	ID       string `json:"id"`
}

func (h *ChatbotHandlers) ask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req chatRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBodyError(ctx, w, err)
		return
	}

	session := req.SessionID
	if session == "" {
		session = sessionID(r)
	}

	msg, err := h.chat.Ask(ctx, session, req.Message)
	if err != nil {
		if errors.Is(err, services.ErrMessageRequired) {
			httpx.WriteError(ctx, w, httpx.NewError("invalid_request", err.Error(), http.StatusBadRequest))
			return
		}
		writeStoreError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, chatResponse{Response: msg.Reply, ID: msg.ID})
}
