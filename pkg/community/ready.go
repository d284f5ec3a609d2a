package community

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Jacobbrewer1/discordgo"
	"github.com/Jacobbrewer1/foxfire/pkg/logging"
)

func (d *Dispatcher) readyHandler() func(s *discordgo.Session, r *discordgo.Ready) {
	return func(_ *discordgo.Session, r *discordgo.Ready) {
		d.readyOnce.Do(func() {
			d.onReady(context.Background(), r)
		})
	}
}

// onReady sends the startup messages. Each one is independent of the other.
func (d *Dispatcher) onReady(ctx context.Context, r *discordgo.Ready) {
	if r.User != nil {
		d.l.Info(fmt.Sprintf("Logged in as %s", userTag(r.User)))
	}

	if d.cfg.WelcomeChannelID != "" {
		if err := d.sendStartupWelcome(r); err != nil {
			switch {
			case errors.Is(err, ErrNoGuilds):
				d.l.Info("Bot is not in any server yet")
			case errors.Is(err, errChannelNotInGuild):
				d.l.Warn("Welcome channel not found", slog.String(logging.KeyChannel, d.cfg.WelcomeChannelID))
			default:
				d.l.Error("Error sending startup welcome message", slog.String(logging.KeyError, err.Error()))
			}
		}
	}

	if d.cfg.TicketPanelChannelID != "" {
		if err := d.postPanel(ctx); err != nil {
			d.l.Error("Error sending ticket panel",
				slog.String(logging.KeyChannel, d.cfg.TicketPanelChannelID),
				slog.String(logging.KeyError, err.Error()),
			)
		}
	}
}

// sendStartupWelcome sends a welcome message to the first guild's welcome channel with the
// bot standing in for the new member. It shows staff what the welcome message looks like.
func (d *Dispatcher) sendStartupWelcome(r *discordgo.Ready) error {
	guildID, err := d.firstGuildID(r)
	if err != nil {
		return err
	}

	bot := r.User
	if bot == nil {
		if bot, err = d.session.BotUser(); err != nil {
			return err
		}
	}

	member, err := d.session.GuildMember(guildID, bot.ID)
	if err != nil {
		return fmt.Errorf("error getting bot member: %w", err)
	}
	if member.User == nil {
		member.User = bot
	}

	return d.sendWelcome(guildID, member, welcomeTriggerStartup)
}

func (d *Dispatcher) firstGuildID(r *discordgo.Ready) (string, error) {
	if len(r.Guilds) > 0 && r.Guilds[0] != nil {
		return r.Guilds[0].ID, nil
	}
	return d.session.FirstGuildID()
}
