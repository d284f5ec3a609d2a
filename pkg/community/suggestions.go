package community

import (
	"log/slog"

	"github.com/Jacobbrewer1/discordgo"
	"github.com/Jacobbrewer1/foxfire/pkg/logging"
)

// messageHandler adds the voting reactions to suggestions.
func (d *Dispatcher) messageHandler() func(s *discordgo.Session, m *discordgo.MessageCreate) {
	return func(_ *discordgo.Session, m *discordgo.MessageCreate) {
		if m.Author == nil || m.Author.Bot {
			return
		}

		if d.cfg.SuggestionsChannelID == "" || m.ChannelID != d.cfg.SuggestionsChannelID {
			return
		}

		for _, emoji := range suggestionReactions {
			if err := d.session.MessageReactionAdd(m.ChannelID, m.ID, emoji); err != nil {
				d.l.Error("Error adding reactions to suggestion",
					slog.String(logging.KeyChannel, m.ChannelID),
					slog.String("message_id", m.ID),
					slog.String("emoji", emoji),
					slog.String(logging.KeyError, err.Error()),
				)
				return
			}
			SuggestionReactions.Inc()
		}
	}
}
