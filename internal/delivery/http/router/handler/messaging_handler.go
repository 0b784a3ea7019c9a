package handler

import (
	"net/http"

	"chaski/internal/delivery/http/response"
	"chaski/internal/domain/entity"
	"chaski/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// MessagingHandler serves the conversations mirror.
type MessagingHandler struct {
	messaging usecase.MessagingUsecase
}

// NewMessagingHandler is the constructor for MessagingHandler, injected by Fx.
func NewMessagingHandler(messaging usecase.MessagingUsecase) *MessagingHandler {
	return &MessagingHandler{messaging: messaging}
}

// ConversationsView is the conversation list with the unread badge.
type ConversationsView struct {
	Conversations []*entity.Conversation `json:"conversations"`
	UnreadTotal   int                    `json:"unreadTotal"`
}

// MessagesView is the history of the current conversation.
type MessagesView struct {
	ConversationID uuid.UUID         `json:"conversationId"`
	Messages       []*entity.Message `json:"messages"`
}

func (h *MessagingHandler) conversations() ConversationsView {
	return ConversationsView{
		Conversations: h.messaging.Conversations(),
		UnreadTotal:   h.messaging.UnreadTotal(),
	}
}

// Conversations reloads and returns the list.
func (h *MessagingHandler) Conversations(c echo.Context) error {
	h.messaging.FetchConversations(c.Request().Context())

	return response.OK(c, h.conversations())
}

func (h *MessagingHandler) Unread(c echo.Context) error {
	return response.OK(c, map[string]int{"unreadTotal": h.messaging.UnreadTotal()})
}

// CreateConversation returns the conversation with the named user, creating it when absent.
func (h *MessagingHandler) CreateConversation(c echo.Context) error {
	var input usecase.CreateConversationInput
	if err := bind(c, &input); err != nil {
		return err
	}

	id, err := h.messaging.CreateConversation(c.Request().Context(), input.OtherUserID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]uuid.UUID{"conversationId": id}, "")
}

// Messages opens a conversation and returns its history.
func (h *MessagingHandler) Messages(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.messaging.FetchMessages(c.Request().Context(), id); err != nil {
		return err
	}

	return response.OK(c, MessagesView{ConversationID: id, Messages: h.messaging.Messages()})
}

func (h *MessagingHandler) Send(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var input usecase.SendMessageInput
	if err := bind(c, &input); err != nil {
		return err
	}

	if err := h.messaging.SendMessage(c.Request().Context(), id, input.Content); err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, h.conversations(), "Message sent")
}

// CloseCurrent leaves the open conversation.
func (h *MessagingHandler) CloseCurrent(c echo.Context) error {
	h.messaging.CloseConversation()

	return c.NoContent(http.StatusNoContent)
}
