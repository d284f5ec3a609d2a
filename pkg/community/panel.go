package community

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Jacobbrewer1/discordgo"
	"github.com/Jacobbrewer1/foxfire/pkg/dataaccess"
	"github.com/Jacobbrewer1/foxfire/pkg/entities"
	"github.com/Jacobbrewer1/foxfire/pkg/logging"
)

// postPanel sends the ticket panel to the panel channel. With a panel store configured the
// panel is only sent when the recorded panel message no longer exists.
func (d *Dispatcher) postPanel(ctx context.Context) error {
	channel, err := d.session.Channel(d.cfg.TicketPanelChannelID)
	if err != nil {
		return fmt.Errorf("error getting ticket panel channel: %w", err)
	}

	l := d.l.With(
		slog.String(logging.KeyGuild, channel.GuildID),
		slog.String(logging.KeyChannel, channel.ID),
	)

	if d.panels != nil {
		exists, err := d.panelExists(ctx, channel.ID)
		if err != nil {
			return err
		} else if exists {
			l.Info("Ticket panel already posted, skipping")
			return nil
		}
	}

	// The guild is only needed for the footer icon.
	guild, err := d.session.Guild(channel.GuildID)
	if err != nil {
		l.Warn("Error getting guild for ticket panel", slog.String(logging.KeyError, err.Error()))
		guild = nil
	}

	msg, err := d.session.ChannelMessageSendComplex(channel.ID, panelMessage(guild, d.now()))
	if err != nil {
		return fmt.Errorf("error sending ticket panel: %w", err)
	}
	l.Info("Ticket panel sent", slog.String("message_id", msg.ID))

	if d.panels != nil {
		if err := d.panels.SavePanel(ctx, &entities.Panel{
			GuildID:   channel.GuildID,
			ChannelID: channel.ID,
			MessageID: msg.ID,
			PostedAt:  d.now().UTC(),
		}); err != nil {
			// The panel is up, only the next restart is affected.
			l.Error("Error saving ticket panel", slog.String(logging.KeyError, err.Error()))
		}
	}
	return nil
}

// panelExists reports whether the recorded panel message for channelID is still there.
func (d *Dispatcher) panelExists(ctx context.Context, channelID string) (bool, error) {
	panel, err := d.panels.GetPanel(ctx, channelID)
	if errors.Is(err, dataaccess.ErrNotFound) {
		return false, nil
	} else if err != nil {
		d.l.Warn("Error getting ticket panel record, posting a new panel",
			slog.String(logging.KeyChannel, channelID),
			slog.String(logging.KeyError, err.Error()),
		)
		return false, nil
	}

	if _, err := d.session.ChannelMessage(channelID, panel.MessageID); err != nil {
		var restErr *discordgo.RESTError
		if errors.As(err, &restErr) && restErr.Message != nil && restErr.Message.Code == discordgo.ErrCodeUnknownMessage {
			return false, nil
		}
		return false, fmt.Errorf("error getting ticket panel message: %w", err)
	}
	return true, nil
}
