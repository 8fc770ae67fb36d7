// Package dto provides data transfer objects for the bot webhook.
package dto

import (
	validation "github.com/jellydator/validation"

	"github.com/allisson/binbot/internal/bot"
)

// MessageRequest is a chat message relayed by an external transport.
type MessageRequest struct {
	ChatID   string `json:"chat_id"`
	ChatType string `json:"chat_type"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Text     string `json:"text"`
}

// Validate validates the message request.
func (r *MessageRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.ChatID, validation.Required),
		validation.Field(&r.ChatType,
			validation.Required,
			validation.In(
				string(bot.ChatPrivate),
				string(bot.ChatGroup),
				string(bot.ChatSupergroup),
				string(bot.ChatChannel),
			),
		),
		validation.Field(&r.UserID, validation.Required),
		validation.Field(&r.Text, validation.Required),
	)
}

// ToMessage converts the request to a bot message.
func (r *MessageRequest) ToMessage() bot.Message {
	return bot.Message{
		ChatID:   r.ChatID,
		ChatType: bot.ChatType(r.ChatType),
		UserID:   r.UserID,
		Username: r.Username,
		Text:     r.Text,
	}
}

// ReplyResponse is the bot answer. An empty text means the bot stays silent.
type ReplyResponse struct {
	Text     string `json:"text"`
	Markdown bool   `json:"markdown"`
}

// MapReplyToResponse converts a bot reply to its API representation.
func MapReplyToResponse(reply bot.Reply) ReplyResponse {
	return ReplyResponse{Text: reply.Text, Markdown: reply.Markdown}
}
