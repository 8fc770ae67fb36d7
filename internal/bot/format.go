package bot

import (
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	cardDomain "github.com/allisson/binbot/internal/card/domain"
)

const separator = "━━━━━━━━━━━━━━━━"

// box renders sections between separators, each line prefixed with "│ ".
// An empty line renders as a bare "│".
func box(sections ...[]string) string {
	var b strings.Builder
	b.WriteString(separator)
	for _, section := range sections {
		for _, line := range section {
			b.WriteByte('\n')
			if line == "" {
				b.WriteString("│")
				continue
			}
			b.WriteString("│ ")
			b.WriteString(line)
		}
		b.WriteByte('\n')
		b.WriteString(separator)
	}
	return b.String()
}

func plain(text string) Reply {
	return Reply{Text: text}
}

func markdown(text string) Reply {
	return Reply{Text: text, Markdown: true}
}

// escape protects user supplied text inside Markdown replies.
func escape(text string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, text)
}

func seconds(d time.Duration) int {
	return int(d.Round(time.Second) / time.Second)
}

func welcomeText() string {
	return box(
		[]string{"👋 WELCOME TO CC GENERATOR BOT"},
		[]string{
			"🔑 Register first: /register",
			"",
			"📌 AVAILABLE COMMANDS:",
			"• /bin <6-8 digit> - Check BIN details",
			"• /gen <BIN> - Generate cards",
			"• /gen <extrap> - Generate with full format",
			"• /help - Show command usage",
			"• /rules - Show bot rules",
			"",
			"📝 NOTE COMMANDS:",
			"• /notes - List all notes",
			"• /get <title> - Get note content",
		},
	)
}

func helpText(private, group time.Duration) string {
	return box(
		[]string{"🔍 COMMAND GUIDE"},
		[]string{
			"📌 BASIC COMMANDS:",
			"• /start - Start bot & see welcome message",
			"• /register - Register to use the bot",
			"• /help - Show this help message",
			"• /rules - Show bot usage rules",
		},
		[]string{
			"💳 CARD COMMANDS:",
			"• /bin <6-8 digit> - Check BIN details",
			"• /gen <BIN> - Generate cards with BIN",
			"• /gen <extrap> - Generate with pattern",
			"• /date <BIN/CC> - Generate date and CVV",
		},
		[]string{
			"📝 NOTE COMMANDS:",
			"• /notes - List all saved notes (All users)",
			"• /save <title> <content> - Save note (Group admins & owner)",
			"• /remove <title> - Remove note (Group admins & owner)",
			"• /get <title> - Get a specific note (All users)",
		},
		[]string{
			"💡 EXAMPLES:",
			"• Check BIN: /bin 424242",
			"• Simple gen: /gen 424242",
			"• With pattern: /gen 424242x",
			"• Full format: /gen 424242xxxxxxxxxx|xx|xx|xxx",
			"• Date only: /date 424242",
		},
		[]string{
			"⚡ RATE LIMITS:",
			fmt.Sprintf("• Private chat: %d seconds", seconds(private)),
			fmt.Sprintf("• Group chat: %d seconds", seconds(group)),
		},
		[]string{
			"👥 GROUP USAGE:",
			"• Add bot to group",
			"• No special permissions needed",
			"• Commands work same as private",
		},
	)
}

func rulesText(private time.Duration) string {
	return box(
		[]string{"📜 BOT RULES"},
		[]string{
			"1. Register before using commands",
			fmt.Sprintf("2. Don't spam commands (%d sec delay)", seconds(private)),
			"3. Use commands with correct format",
			"4. Don't abuse the bot",
			"5. Respect other users",
		},
		[]string{"⚠️  Breaking rules = 24h ban"},
	)
}

func registeredText(created bool) string {
	if !created {
		return box([]string{"🎉 ALREADY REGISTERED"})
	}
	return box(
		[]string{"✅ REGISTRATION SUCCESSFUL"},
		[]string{
			"📌 AVAILABLE COMMANDS:",
			"• /bin <6-8 digit> - Check BIN details",
			"• /gen <bin_extrap> - Generate credit cards",
		},
	)
}

func notRegisteredText() string {
	return box([]string{"❌ NOT REGISTERED", "• Use /register command first"})
}

// spamText rounds the remaining wait up to whole seconds, at least one.
func spamText(wait time.Duration) string {
	secs := int((wait + time.Second - 1) / time.Second)
	if secs < 1 {
		secs = 1
	}
	return box([]string{"⚠️ SPAM DETECTED", fmt.Sprintf("• Wait %d seconds", secs)})
}

func missingGenInputText() string {
	return box([]string{
		"❌ MISSING INPUT",
		"• Provide BIN or extrap pattern",
		"",
		"📝 EXAMPLES:",
		"• Simple: /gen 424242",
		"• With x: /gen 424242x",
		"• Full: /gen 424242xxxxxxxxxx|xx|xx|xxx",
	})
}

func missingDateInputText() string {
	return box([]string{
		"❌ MISSING INPUT",
		"• Provide a BIN or card number",
		"",
		"📝 EXAMPLES:",
		"• BIN: /date 424242",
		"• Full card: /date 4242424242424242",
	})
}

func missingBinInputText() string {
	return box([]string{"❌ MISSING INPUT", "• Provide a BIN number", "• Example: /bin 424242"})
}

func generationFailedText() string {
	return box([]string{"❌ GENERATION FAILED", "• Check your input format"})
}

func metadataLines(m cardDomain.BinMetadata) []string {
	return []string{
		"📊 BIN INFORMATION",
		"• BIN     : " + m.BIN,
		"• BANK    : " + escape(m.Bank),
		"• BRAND   : " + escape(m.Brand),
		"• TYPE    : " + escape(m.Type),
		"• COUNTRY : " + escape(m.Country),
	}
}

func cardLines(cards []string) []string {
	lines := make([]string, 0, len(cards))
	for i, card := range cards {
		lines = append(lines, fmt.Sprintf("%d. `%s`", i+1, card))
	}
	return lines
}

func genResultText(batch *cardDomain.Batch, msg Message) string {
	username := msg.Username
	if username == "" {
		username = cardDomain.Unknown
	}

	return box(
		[]string{"💳 CC GENERATOR RESULTS 💳"},
		metadataLines(batch.Metadata),
		append([]string{"🎲 GENERATED CARDS"}, cardLines(batch.Cards)...),
		[]string{
			"👤 USER INFORMATION",
			"• ID      : " + escape(msg.UserID),
			"• NAME    : " + escape(username),
		},
		[]string{"ℹ️  Click 📋 to copy card details"},
	)
}

func dateResultText(input string, batch *cardDomain.Batch) string {
	return box(
		[]string{"🎲 GENERATED DATE/CVV"},
		[]string{
			"• CARD     : " + escape(input),
			"• BRAND    : " + escape(batch.Metadata.Brand),
		},
		append([]string{"📊 RESULTS:"}, cardLines(batch.Cards)...),
	)
}

func binInfoText(m *cardDomain.BinMetadata) string {
	return box(
		[]string{"💳 BIN CHECKER"},
		[]string{
			"📊 BIN INFORMATION",
			"• BIN      : " + m.BIN,
			"• BRAND    : " + escape(m.Brand),
			"• TYPE     : " + escape(m.Type),
			"• CATEGORY : " + escape(m.Category),
			"• BANK     : " + escape(m.Bank),
			"• COUNTRY  : " + escape(m.Country),
		},
		[]string{"ℹ️  BIN Lookup Service"},
	)
}

func invalidBinText() string {
	return box([]string{"❌ INVALID BIN", "• Unable to fetch information"})
}

func notesListText(titles []string) string {
	if len(titles) == 0 {
		return box([]string{"📝 NOTES LIST"}, []string{"No notes found"})
	}

	lines := make([]string, 0, len(titles))
	for _, title := range titles {
		lines = append(lines, "• "+title)
	}
	return box([]string{"📝 NOTES LIST"}, lines)
}

func accessDeniedText(action string) string {
	return box([]string{
		"❌ ACCESS DENIED",
		"Only group admins and bot owner",
		fmt.Sprintf("can %s notes in groups", action),
	})
}

func invalidFormatText(usage string) string {
	return box([]string{"❌ INVALID FORMAT", "Use: " + usage})
}

func noteSavedText(title string) string {
	return box([]string{"✅ NOTE SAVED", "Title: " + title})
}

func noteRemovedText(title string) string {
	return box([]string{"✅ NOTE REMOVED", "Title: " + title})
}

func noteNotFoundText(title string) string {
	return box([]string{"❌ NOTE NOT FOUND", "Title: " + title})
}

func noteContentText(title, content string) string {
	return box(
		[]string{"📝 NOTE CONTENT", "Title: " + title},
		strings.Split(content, "\n"),
	)
}

func botErrorText() string {
	return box([]string{"❌ BOT ERROR", "Command processing failed", "Error has been logged"})
}

func botStatusErrorText() string {
	return box([]string{"⚠️ BOT STATUS ERROR", "Bot needs to be added", "as a member to this chat"})
}
