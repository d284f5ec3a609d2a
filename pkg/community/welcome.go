package community

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/Jacobbrewer1/discordgo"
	"github.com/Jacobbrewer1/foxfire/pkg/logging"
)

const (
	welcomeTriggerJoin    = "member_join"
	welcomeTriggerStartup = "startup"
)

// errChannelNotInGuild is returned when a configured channel does not exist in the guild.
var errChannelNotInGuild = errors.New("channel not found in guild")

func (d *Dispatcher) memberAddHandler() func(s *discordgo.Session, m *discordgo.GuildMemberAdd) {
	return func(_ *discordgo.Session, m *discordgo.GuildMemberAdd) {
		if m.Member == nil || m.Member.User == nil {
			return
		}

		l := d.l.With(
			slog.String(logging.KeyGuild, m.GuildID),
			slog.String(logging.KeyUser, m.Member.User.ID),
		)

		if d.cfg.WelcomeChannelID == "" {
			l.Warn("Welcome channel not configured")
			return
		}

		if err := d.sendWelcome(m.GuildID, m.Member, welcomeTriggerJoin); err != nil {
			if errors.Is(err, errChannelNotInGuild) {
				l.Warn("Welcome channel not found in guild", slog.String(logging.KeyChannel, d.cfg.WelcomeChannelID))
				return
			}
			l.Error("Error sending welcome message", slog.String(logging.KeyError, err.Error()))
		}
	}
}

// sendWelcome posts the welcome message for member to the welcome channel of guildID.
func (d *Dispatcher) sendWelcome(guildID string, member *discordgo.Member, trigger string) error {
	channel, err := d.session.Channel(d.cfg.WelcomeChannelID)
	if err != nil {
		var restErr *discordgo.RESTError
		if errors.As(err, &restErr) && restErr.Message != nil && restErr.Message.Code == discordgo.ErrCodeUnknownChannel {
			return errChannelNotInGuild
		}
		return fmt.Errorf("error getting welcome channel: %w", err)
	} else if channel.GuildID != guildID {
		return errChannelNotInGuild
	}

	guild, err := d.session.Guild(guildID)
	if err != nil {
		return fmt.Errorf("error getting guild: %w", err)
	}

	if _, err := d.session.ChannelMessageSendComplex(channel.ID, welcomeMessage(member, guild, d.now())); err != nil {
		return fmt.Errorf("error sending welcome message: %w", err)
	}
	WelcomeMessagesSent.WithLabelValues(trigger).Inc()

	d.l.Info("Welcome message sent",
		slog.String(logging.KeyGuild, guildID),
		slog.String(logging.KeyChannel, channel.ID),
		slog.String(logging.KeyUser, member.User.ID),
		slog.String("trigger", trigger),
	)
	return nil
}
