package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/hashicorp/go-cleanhttp"
	"golang.org/x/sync/errgroup"
)

// defaultTelegramWorkers bounds how many updates are handled at once.
const defaultTelegramWorkers = 8

// telegramAPI is the subset of *tgbotapi.BotAPI used here.
type telegramAPI interface {
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetChatMember(config tgbotapi.GetChatMemberConfig) (tgbotapi.ChatMember, error)
}

// NewTelegramAPI connects to the Bot API and checks the token. The HTTP client
// timeout must outlive a long poll.
func NewTelegramAPI(token string, pollTimeout time.Duration) (*tgbotapi.BotAPI, error) {
	client := cleanhttp.DefaultPooledClient()
	client.Timeout = pollTimeout + 10*time.Second

	api, err := tgbotapi.NewBotAPIWithClient(token, tgbotapi.APIEndpoint, client)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to telegram: %w", err)
	}
	return api, nil
}

// TelegramMembership implements MembershipChecker with getChatMember.
type TelegramMembership struct {
	api telegramAPI
}

// NewTelegramMembership creates a TelegramMembership.
func NewTelegramMembership(api telegramAPI) *TelegramMembership {
	return &TelegramMembership{api: api}
}

// IsChatAdmin reports whether userID is an administrator or the creator of
// chatID.
func (t *TelegramMembership) IsChatAdmin(_ context.Context, chatID, userID string) (bool, error) {
	member, err := t.getMember(chatID, userID)
	if err != nil {
		return false, err
	}
	return member.IsAdministrator() || member.IsCreator(), nil
}

func (t *TelegramMembership) getMember(chatID, userID string) (tgbotapi.ChatMember, error) {
	chat, err := strconv.ParseInt(chatID, 10, 64)
	if err != nil {
		return tgbotapi.ChatMember{}, fmt.Errorf("invalid chat id %q: %w", chatID, err)
	}
	user, err := strconv.ParseInt(userID, 10, 64)
	if err != nil {
		return tgbotapi.ChatMember{}, fmt.Errorf("invalid user id %q: %w", userID, err)
	}

	member, err := t.api.GetChatMember(tgbotapi.GetChatMemberConfig{
		ChatConfigWithUser: tgbotapi.ChatConfigWithUser{ChatID: chat, UserID: user},
	})
	if err != nil {
		return tgbotapi.ChatMember{}, fmt.Errorf("failed to get chat member: %w", err)
	}
	return member, nil
}

// TelegramRunner long-polls Telegram and feeds commands to a Dispatcher.
type TelegramRunner struct {
	api         telegramAPI
	selfID      int64
	dispatcher  *Dispatcher
	pollTimeout time.Duration
	workers     int
	logger      *slog.Logger
}

// NewTelegramRunner creates a runner. selfID is the bot's own user id, used to
// check that it is a member of the groups it answers in.
func NewTelegramRunner(
	api telegramAPI,
	selfID int64,
	dispatcher *Dispatcher,
	pollTimeout time.Duration,
	logger *slog.Logger,
) *TelegramRunner {
	return &TelegramRunner{
		api:         api,
		selfID:      selfID,
		dispatcher:  dispatcher,
		pollTimeout: pollTimeout,
		workers:     defaultTelegramWorkers,
		logger:      logger,
	}
}

// Run drops any webhook and pending updates, then handles updates until ctx
// is cancelled. In-flight updates finish before Run returns.
func (r *TelegramRunner) Run(ctx context.Context) error {
	if _, err := r.api.Request(tgbotapi.DeleteWebhookConfig{DropPendingUpdates: true}); err != nil {
		return fmt.Errorf("failed to delete telegram webhook: %w", err)
	}

	config := tgbotapi.NewUpdate(0)
	config.Timeout = int(r.pollTimeout / time.Second)
	config.AllowedUpdates = []string{"message"}

	updates := r.api.GetUpdatesChan(config)
	r.logger.Info("telegram bot started", slog.Int64("bot_id", r.selfID))

	g := new(errgroup.Group)
	g.SetLimit(r.workers)

	for {
		select {
		case <-ctx.Done():
			r.api.StopReceivingUpdates()
			_ = g.Wait()
			r.logger.Info("telegram bot stopped")
			return nil
		case update, ok := <-updates:
			if !ok {
				_ = g.Wait()
				return nil
			}
			g.Go(func() error {
				r.handleUpdate(ctx, update)
				return nil
			})
		}
	}
}

func (r *TelegramRunner) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	msg := update.Message
	if msg == nil || msg.From == nil || msg.Chat == nil || !IsCommand(msg.Text) {
		return
	}

	if !msg.Chat.IsPrivate() && !r.hasGroupStatus(msg.Chat.ID) {
		r.send(msg, plain(botStatusErrorText()))
		return
	}

	reply := r.dispatcher.Handle(ctx, Message{
		ChatID:   strconv.FormatInt(msg.Chat.ID, 10),
		ChatType: ChatType(msg.Chat.Type),
		UserID:   strconv.FormatInt(msg.From.ID, 10),
		Username: msg.From.UserName,
		Text:     msg.Text,
	})
	if reply.IsEmpty() {
		return
	}
	r.send(msg, reply)
}

// hasGroupStatus reports whether the bot is a member or administrator of the
// chat. Lookup failures are treated as allowed.
func (r *TelegramRunner) hasGroupStatus(chatID int64) bool {
	member, err := r.api.GetChatMember(tgbotapi.GetChatMemberConfig{
		ChatConfigWithUser: tgbotapi.ChatConfigWithUser{ChatID: chatID, UserID: r.selfID},
	})
	if err != nil {
		r.logger.Warn("failed to check bot status", slog.Int64("chat_id", chatID), slog.Any("error", err))
		return true
	}

	switch member.Status {
	case "member", "administrator":
		return true
	default:
		r.logger.Warn("bot lacks group status",
			slog.Int64("chat_id", chatID),
			slog.String("status", member.Status),
		)
		return false
	}
}

func (r *TelegramRunner) send(to *tgbotapi.Message, reply Reply) {
	out := tgbotapi.NewMessage(to.Chat.ID, reply.Text)
	out.ReplyToMessageID = to.MessageID
	if reply.Markdown {
		out.ParseMode = tgbotapi.ModeMarkdown
	}

	if _, err := r.api.Send(out); err != nil {
		if !reply.Markdown {
			r.logger.Error("failed to send telegram reply", slog.Int64("chat_id", to.Chat.ID), slog.Any("error", err))
			return
		}
		// Entity parse errors are the usual cause; retry without formatting.
		out.ParseMode = ""
		if _, err := r.api.Send(out); err != nil {
			r.logger.Error("failed to send telegram reply", slog.Int64("chat_id", to.Chat.ID), slog.Any("error", err))
		}
	}
}
