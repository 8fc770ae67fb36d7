package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantOK   bool
		wantName string
		wantArgs []string
	}{
		{name: "Simple", text: "/gen 424242", wantOK: true, wantName: "gen", wantArgs: []string{"424242"}},
		{name: "BotSuffix", text: "/bin@binbot 424242", wantOK: true, wantName: "bin", wantArgs: []string{"424242"}},
		{name: "UpperCase", text: "/START", wantOK: true, wantName: "start", wantArgs: []string{}},
		{name: "ExtraSpaces", text: "  /get   rules  ", wantOK: true, wantName: "get", wantArgs: []string{"rules"}},
		{name: "NewlineAfterName", text: "/save\nrules be nice", wantOK: true, wantName: "save", wantArgs: []string{"rules", "be", "nice"}},
		{name: "NotACommand", text: "hello", wantOK: false},
		{name: "SlashOnly", text: "/", wantOK: false},
		{name: "Empty", text: "", wantOK: false},
		{name: "OnlyBotSuffix", text: "/@binbot", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, ok := ParseCommand(tt.text)
			require.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.wantName, cmd.Name)
			assert.Equal(t, tt.wantArgs, cmd.Args)
		})
	}
}

func TestCommand_TextAfter(t *testing.T) {
	cmd, ok := ParseCommand("/save rules line one\n  line two")
	require.True(t, ok)

	assert.Equal(t, "rules", cmd.Arg(0))
	assert.Equal(t, "", cmd.Arg(9))
	assert.Equal(t, "line one\n  line two", cmd.TextAfter(1))
	assert.Equal(t, "", cmd.TextAfter(10))
}

func TestChatType_IsPrivate(t *testing.T) {
	assert.True(t, ChatPrivate.IsPrivate())
	assert.False(t, ChatGroup.IsPrivate())
	assert.False(t, ChatSupergroup.IsPrivate())
}
