package main

import (
	"fmt"
	"log/slog"

	"github.com/Jacobbrewer1/discordgo"
	"github.com/Jacobbrewer1/foxfire/pkg/logging"
)

func (a *App) guildJoinedHandler() func(s *discordgo.Session, g *discordgo.GuildCreate) {
	return func(s *discordgo.Session, g *discordgo.GuildCreate) {
		if g.Guild == nil {
			return
		}
		a.Info(fmt.Sprintf("Joined guild %s", g.Name), slog.String(logging.KeyGuild, g.ID))

		// GuildCreate is also sent when a guild comes back from an outage, so the gauge is
		// taken from the state rather than incremented.
		TotalDiscordGuilds.Set(float64(stateGuilds(s)))
	}
}

func (a *App) guildLeaveHandler() func(s *discordgo.Session, g *discordgo.GuildDelete) {
	return func(s *discordgo.Session, g *discordgo.GuildDelete) {
		if g.Guild == nil {
			return
		}

		if g.Unavailable {
			a.Warn("Guild unavailable", slog.String(logging.KeyGuild, g.ID))
			return
		}
		a.Info("Left guild", slog.String(logging.KeyGuild, g.ID))

		TotalDiscordGuilds.Set(float64(stateGuilds(s)))
	}
}

// stateGuilds is the number of guilds in the session state. The state is updated before
// handlers run.
func stateGuilds(s *discordgo.Session) int {
	if s == nil || s.State == nil {
		return 0
	}
	s.State.RLock()
	defer s.State.RUnlock()
	return len(s.State.Guilds)
}
