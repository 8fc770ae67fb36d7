package bot

import (
	"context"
	"log/slog"
	"strings"
	"time"

	cardDomain "github.com/allisson/binbot/internal/card/domain"
	cardUseCase "github.com/allisson/binbot/internal/card/usecase"
	apperrors "github.com/allisson/binbot/internal/errors"
	notesDomain "github.com/allisson/binbot/internal/notes/domain"
	notesUseCase "github.com/allisson/binbot/internal/notes/usecase"
	userUseCase "github.com/allisson/binbot/internal/user/usecase"
)

// notesPageSize bounds the /notes listing.
const notesPageSize = 100

// Config holds the dispatcher settings.
type Config struct {
	// OwnerID may manage notes in any chat.
	OwnerID string
	// BatchSize is the number of entries produced by /gen and /date.
	BatchSize int
	// PrivateCooldown and GroupCooldown are shown to users in help and rules
	// replies. Enforcement is done by the limiters.
	PrivateCooldown time.Duration
	GroupCooldown   time.Duration
}

// Dispatcher routes commands to the use cases and renders the replies.
type Dispatcher struct {
	cfg            Config
	cards          cardUseCase.CardUseCase
	notes          notesUseCase.NoteUseCase
	users          userUseCase.UseCase
	membership     MembershipChecker
	privateLimiter Limiter
	groupLimiter   Limiter
	logger         *slog.Logger
}

// NewDispatcher creates a Dispatcher. privateLimiter is keyed by user and
// groupLimiter by chat.
func NewDispatcher(
	cfg Config,
	cards cardUseCase.CardUseCase,
	notes notesUseCase.NoteUseCase,
	users userUseCase.UseCase,
	membership MembershipChecker,
	privateLimiter Limiter,
	groupLimiter Limiter,
	logger *slog.Logger,
) *Dispatcher {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = cardDomain.DefaultBatchSize
	}
	if membership == nil {
		membership = NoMembership{}
	}
	return &Dispatcher{
		cfg:            cfg,
		cards:          cards,
		notes:          notes,
		users:          users,
		membership:     membership,
		privateLimiter: privateLimiter,
		groupLimiter:   groupLimiter,
		logger:         logger,
	}
}

// Handle answers a message. Text that is not a known command yields an empty
// Reply. Failures are logged and rendered as a generic error box.
func (d *Dispatcher) Handle(ctx context.Context, msg Message) Reply {
	cmd, ok := ParseCommand(msg.Text)
	if !ok {
		return Reply{}
	}

	reply, err := d.route(ctx, cmd, msg)
	if err != nil {
		d.logger.Error("bot command failed",
			slog.String("command", cmd.Name),
			slog.String("chat_id", msg.ChatID),
			slog.String("chat_type", string(msg.ChatType)),
			slog.String("user_id", msg.UserID),
			slog.Any("error", err),
		)
		return plain(botErrorText())
	}
	return reply
}

// IsCommand reports whether text is addressed to a command this dispatcher
// knows.
func IsCommand(text string) bool {
	cmd, ok := ParseCommand(text)
	if !ok {
		return false
	}
	_, known := commands[cmd.Name]
	return known
}

var commands = map[string]struct{}{
	"start": {}, "help": {}, "rules": {}, "register": {},
	"bin": {}, "gen": {}, "date": {},
	"notes": {}, "get": {}, "save": {}, "remove": {},
}

func (d *Dispatcher) route(ctx context.Context, cmd Command, msg Message) (Reply, error) {
	switch cmd.Name {
	case "start":
		return plain(welcomeText()), nil
	case "help":
		return plain(helpText(d.cfg.PrivateCooldown, d.cfg.GroupCooldown)), nil
	case "rules":
		return plain(rulesText(d.cfg.PrivateCooldown)), nil
	case "register":
		return d.register(ctx, msg)
	case "bin", "gen", "date":
		if reply, blocked, err := d.gate(ctx, msg); blocked || err != nil {
			return reply, err
		}
		switch cmd.Name {
		case "bin":
			return d.bin(ctx, cmd)
		case "gen":
			return d.gen(ctx, cmd, msg)
		default:
			return d.date(ctx, cmd)
		}
	case "notes":
		return d.listNotes(ctx)
	case "get":
		return d.getNote(ctx, cmd)
	case "save":
		return d.saveNote(ctx, cmd, msg)
	case "remove":
		return d.removeNote(ctx, cmd, msg)
	default:
		return Reply{}, nil
	}
}

// gate applies registration then rate limiting to card commands.
func (d *Dispatcher) gate(ctx context.Context, msg Message) (Reply, bool, error) {
	registered, err := d.users.IsRegistered(ctx, msg.UserID)
	if err != nil {
		return Reply{}, true, err
	}
	if !registered {
		return plain(notRegisteredText()), true, nil
	}

	limiter, key := d.groupLimiter, "chat:"+msg.ChatID
	if msg.ChatType.IsPrivate() {
		limiter, key = d.privateLimiter, "user:"+msg.UserID
	}
	if limiter != nil && !limiter.TryAcquire(key) {
		return plain(spamText(limiter.RetryAfter(key))), true, nil
	}
	return Reply{}, false, nil
}

func (d *Dispatcher) register(ctx context.Context, msg Message) (Reply, error) {
	_, created, err := d.users.Register(ctx, msg.UserID, msg.Username)
	if err != nil {
		return Reply{}, err
	}
	if created {
		d.logger.Info("chat user registered", slog.String("user_id", msg.UserID))
	}
	return plain(registeredText(created)), nil
}

func (d *Dispatcher) bin(ctx context.Context, cmd Command) (Reply, error) {
	bin := cmd.Arg(0)
	if bin == "" {
		return plain(missingBinInputText()), nil
	}

	metadata, err := d.cards.LookupBin(ctx, bin)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrInvalidInput) || apperrors.Is(err, apperrors.ErrNotFound) {
			return plain(invalidBinText()), nil
		}
		return Reply{}, err
	}
	return markdown(binInfoText(metadata)), nil
}

func (d *Dispatcher) generate(ctx context.Context, pattern string, mode cardDomain.Mode) (*cardDomain.Batch, bool, error) {
	batch, err := d.cards.GenerateBatch(ctx, &cardDomain.GenerateInput{
		Pattern: pattern,
		Count:   d.cfg.BatchSize,
		Mode:    mode,
	})
	if err != nil {
		if apperrors.Is(err, apperrors.ErrInvalidInput) {
			return nil, false, nil
		}
		return nil, false, err
	}
	if len(batch.Cards) == 0 {
		return nil, false, nil
	}
	return batch, true, nil
}

func (d *Dispatcher) gen(ctx context.Context, cmd Command, msg Message) (Reply, error) {
	pattern := cmd.Arg(0)
	if pattern == "" {
		return plain(missingGenInputText()), nil
	}

	batch, ok, err := d.generate(ctx, pattern, cardDomain.ModeFull)
	if err != nil {
		return Reply{}, err
	}
	if !ok {
		return plain(generationFailedText()), nil
	}
	return markdown(genResultText(batch, msg)), nil
}

func (d *Dispatcher) date(ctx context.Context, cmd Command) (Reply, error) {
	input := cmd.Arg(0)
	if input == "" {
		return plain(missingDateInputText()), nil
	}

	batch, ok, err := d.generate(ctx, input, cardDomain.ModeDateOnly)
	if err != nil {
		return Reply{}, err
	}
	if !ok {
		return plain(generationFailedText()), nil
	}
	return markdown(dateResultText(input, batch)), nil
}

func (d *Dispatcher) listNotes(ctx context.Context) (Reply, error) {
	titles, err := d.notes.List(ctx, 0, notesPageSize)
	if err != nil {
		return Reply{}, err
	}
	return plain(notesListText(titles)), nil
}

func (d *Dispatcher) getNote(ctx context.Context, cmd Command) (Reply, error) {
	title := cmd.Arg(0)
	if title == "" {
		return plain(invalidFormatText("/get <title>")), nil
	}

	note, err := d.notes.Get(ctx, title)
	if err != nil {
		if apperrors.Is(err, notesDomain.ErrNoteNotFound) {
			return plain(noteNotFoundText(title)), nil
		}
		return Reply{}, err
	}
	return plain(noteContentText(note.Title, note.Content)), nil
}

func (d *Dispatcher) saveNote(ctx context.Context, cmd Command, msg Message) (Reply, error) {
	if !d.canManageNotes(ctx, msg) {
		return plain(accessDeniedText("save")), nil
	}

	title, content := cmd.Arg(0), cmd.TextAfter(1)
	if title == "" || content == "" {
		return plain(invalidFormatText("/save <title> <content>")), nil
	}

	if _, err := d.notes.Save(ctx, title, content); err != nil {
		if apperrors.Is(err, apperrors.ErrInvalidInput) {
			return plain(invalidFormatText("/save <title> <content>")), nil
		}
		return Reply{}, err
	}
	return plain(noteSavedText(title)), nil
}

func (d *Dispatcher) removeNote(ctx context.Context, cmd Command, msg Message) (Reply, error) {
	if !d.canManageNotes(ctx, msg) {
		return plain(accessDeniedText("remove")), nil
	}

	title := cmd.Arg(0)
	if title == "" {
		return plain(invalidFormatText("/remove <title>")), nil
	}

	if err := d.notes.Delete(ctx, title); err != nil {
		if apperrors.Is(err, notesDomain.ErrNoteNotFound) {
			return plain(noteNotFoundText(title)), nil
		}
		return Reply{}, err
	}
	return plain(noteRemovedText(title)), nil
}

// canManageNotes admits the owner anywhere and group admins in their group.
func (d *Dispatcher) canManageNotes(ctx context.Context, msg Message) bool {
	if d.cfg.OwnerID != "" && strings.TrimSpace(msg.UserID) == d.cfg.OwnerID {
		return true
	}
	if msg.ChatType.IsPrivate() {
		return false
	}

	admin, err := d.membership.IsChatAdmin(ctx, msg.ChatID, msg.UserID)
	if err != nil {
		d.logger.Warn("failed to check chat admin status",
			slog.String("chat_id", msg.ChatID),
			slog.String("user_id", msg.UserID),
			slog.Any("error", err),
		)
		return false
	}
	return admin
}
