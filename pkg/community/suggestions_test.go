package community

import (
	"errors"
	"testing"

	"github.com/Jacobbrewer1/discordgo"
	"github.com/stretchr/testify/require"
)

func suggestion(channelID string, author *discordgo.User) *discordgo.MessageCreate {
	return &discordgo.MessageCreate{Message: &discordgo.Message{
		ID:        "777",
		ChannelID: channelID,
		Author:    author,
		Content:   "Un canal de música",
	}}
}

func TestSuggestions(t *testing.T) {
	tests := []struct {
		name    string
		cfg     func(cfg *Config)
		message *discordgo.MessageCreate
		want    []reaction
	}{
		{
			name:    "suggestion",
			message: suggestion(testSuggestionsID, alice()),
			want: []reaction{
				{ChannelID: testSuggestionsID, MessageID: "777", Emoji: ThumbsUp},
				{ChannelID: testSuggestionsID, MessageID: "777", Emoji: ThumbsDown},
			},
		},
		{
			name:    "bot message",
			message: suggestion(testSuggestionsID, &discordgo.User{ID: testBotID, Bot: true}),
		},
		{
			name:    "other channel",
			message: suggestion(testGeneralID, alice()),
		},
		{
			name:    "no author",
			message: suggestion(testSuggestionsID, nil),
		},
		{
			name:    "not configured",
			cfg:     func(cfg *Config) { cfg.SuggestionsChannelID = "" },
			message: suggestion(testSuggestionsID, alice()),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFakeSession()
			cfg := testConfig()
			if tt.cfg != nil {
				tt.cfg(&cfg)
			}
			d := NewDispatcher(testLogger(), cfg, f)

			d.messageHandler()(nil, tt.message)

			require.Equal(t, tt.want, f.reactions)
		})
	}
}

func TestSuggestions_StopsOnError(t *testing.T) {
	f := newFakeSession()
	f.errs["MessageReactionAdd"] = errors.New("missing access")
	d := newTestDispatcher(f)

	require.NotPanics(t, func() {
		d.messageHandler()(nil, suggestion(testSuggestionsID, alice()))
	})
	require.Empty(t, f.reactions)
}
