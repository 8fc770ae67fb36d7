// Package bot implements the chat command layer. A Dispatcher turns an
// incoming Message into a Reply without knowing which chat platform carried
// it; the Telegram runner and the HTTP webhook are thin transports around it.
package bot

import (
	"context"
	"strings"
	"time"
)

// ChatType is where a message was sent.
type ChatType string

// Chat types as reported by Telegram.
const (
	ChatPrivate    ChatType = "private"
	ChatGroup      ChatType = "group"
	ChatSupergroup ChatType = "supergroup"
	ChatChannel    ChatType = "channel"
)

// IsPrivate reports whether the chat is a one-to-one conversation.
func (t ChatType) IsPrivate() bool {
	return t == ChatPrivate
}

// Message is an incoming chat message.
type Message struct {
	ChatID   string
	ChatType ChatType
	UserID   string
	Username string
	Text     string
}

// Reply is what the bot answers. An empty Text means no answer.
type Reply struct {
	Text     string
	Markdown bool
}

// IsEmpty reports whether there is nothing to send.
func (r Reply) IsEmpty() bool {
	return r.Text == ""
}

// MembershipChecker answers whether a user administers a group chat.
type MembershipChecker interface {
	IsChatAdmin(ctx context.Context, chatID, userID string) (bool, error)
}

// NoMembership treats nobody as a group admin. Used when no chat platform is
// connected, so only the owner can manage notes.
type NoMembership struct{}

// IsChatAdmin always returns false.
func (NoMembership) IsChatAdmin(context.Context, string, string) (bool, error) {
	return false, nil
}

// Limiter admits or rejects an identity. RetryAfter reports how long a
// rejected identity still has to wait.
type Limiter interface {
	TryAcquire(identity string) bool
	RetryAfter(identity string) time.Duration
}

// Command is a parsed "/name arg1 arg2" message.
type Command struct {
	Name string
	Args []string

	// rest is the text after the command name with its original spacing.
	rest string
}

// ParseCommand parses text starting with "/". A "@botname" suffix on the
// command is dropped and the name is lower-cased. Returns false for text that
// is not a command.
func ParseCommand(text string) (Command, bool) {
	text = strings.TrimSpace(text)
	if len(text) < 2 || text[0] != '/' {
		return Command{}, false
	}

	head, rest, _ := strings.Cut(text, " ")
	if i := strings.IndexAny(head, "\n\t"); i >= 0 {
		rest = head[i:] + " " + rest
		head = head[:i]
	}

	name := strings.TrimPrefix(head, "/")
	if at := strings.IndexByte(name, '@'); at >= 0 {
		name = name[:at]
	}
	if name == "" {
		return Command{}, false
	}

	rest = strings.TrimSpace(rest)
	return Command{
		Name: strings.ToLower(name),
		Args: strings.Fields(rest),
		rest: rest,
	}, true
}

// Arg returns the i-th argument or "".
func (c Command) Arg(i int) string {
	if i < 0 || i >= len(c.Args) {
		return ""
	}
	return c.Args[i]
}

// TextAfter returns the raw text following the first n arguments, keeping
// line breaks and inner spacing.
func (c Command) TextAfter(n int) string {
	rest := c.rest
	for i := 0; i < n; i++ {
		rest = strings.TrimLeft(rest, " \t\r\n")
		end := strings.IndexAny(rest, " \t\r\n")
		if end < 0 {
			return ""
		}
		rest = rest[end:]
	}
	return strings.TrimSpace(rest)
}
