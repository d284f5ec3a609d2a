package community

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Jacobbrewer1/discordgo"
	"github.com/Jacobbrewer1/foxfire/pkg/entities"
	"github.com/Jacobbrewer1/foxfire/pkg/logging"
	"github.com/Jacobbrewer1/foxfire/pkg/messages"
)

// ticketAccess is what the owner, the bot and the staff get on a ticket channel.
const ticketAccess = discordgo.PermissionViewChannel |
	discordgo.PermissionSendMessages |
	discordgo.PermissionReadMessageHistory

// createTicket opens a private ticket channel for the user that pressed the panel button.
func (d *Dispatcher) createTicket(_ context.Context, i *discordgo.InteractionCreate) (string, error) {
	if i.GuildID == "" || i.Member == nil || i.Member.User == nil {
		return "", reject(messages.ErrNotInGuild)
	}
	user := i.Member.User
	name := entities.NewTicketName(user.Username)

	release, ok := d.creating.acquire(user.ID)
	if !ok {
		return "", reject(messages.ErrTicketCreationInProgress)
	}
	defer release()

	channels, err := d.session.GuildChannels(i.GuildID)
	if err != nil {
		return "", fmt.Errorf("error getting guild channels: %w", err)
	}

	// Check if the user already has an open ticket.
	for _, ch := range channels {
		if ch.Name == name.String() && ch.ParentID == d.cfg.TicketCategoryID {
			return "", reject(messages.TicketExistsFmt, ch.ID)
		}
	}

	bot, err := d.session.BotUser()
	if err != nil {
		return "", fmt.Errorf("error getting bot user: %w", err)
	}

	// Create the ticket channel only the owner, the bot and the staff can see.
	ticket, err := d.session.GuildChannelCreateComplex(i.GuildID, discordgo.GuildChannelCreateData{
		Name:                 name.String(),
		Type:                 discordgo.ChannelTypeGuildText,
		Topic:                fmt.Sprintf("Ticket de %s", userTag(user)),
		ParentID:             d.cfg.TicketCategoryID,
		PermissionOverwrites: d.ticketOverwrites(i.GuildID, user.ID, bot.ID),
	})
	if err != nil {
		return "", fmt.Errorf("error creating ticket channel: %w", err)
	}
	TicketsCreated.Inc()

	d.l.Info("Ticket created",
		slog.String(logging.KeyGuild, i.GuildID),
		slog.String(logging.KeyChannel, ticket.ID),
		slog.String(logging.KeyUser, user.ID),
		slog.String("name", ticket.Name),
	)

	if _, err := d.session.ChannelMessageSendComplex(ticket.ID, ticketOpenedMessage(user, d.cfg.StaffRoleID, d.now())); err != nil {
		return "", fmt.Errorf("error sending ticket message: %w", err)
	}

	return fmt.Sprintf(messages.TicketCreatedFmt, ticket.ID), nil
}

// ticketOverwrites denies @everyone and grants access to the owner, the bot and the staff.
func (d *Dispatcher) ticketOverwrites(guildID, ownerID, botID string) []*discordgo.PermissionOverwrite {
	overwrites := []*discordgo.PermissionOverwrite{
		// Deny @everyone from seeing the ticket. The @everyone role shares the guild ID.
		{
			ID:   guildID,
			Type: discordgo.PermissionOverwriteTypeRole,
			Deny: discordgo.PermissionViewChannel,
		},
		{
			ID:    ownerID,
			Type:  discordgo.PermissionOverwriteTypeMember,
			Allow: ticketAccess,
		},
		{
			ID:    botID,
			Type:  discordgo.PermissionOverwriteTypeMember,
			Allow: ticketAccess,
		},
	}

	if d.cfg.StaffRoleID == "" {
		d.l.Warn("No staff role configured, ticket will only be visible to its owner",
			slog.String(logging.KeyGuild, guildID))
		return overwrites
	}

	return append(overwrites, &discordgo.PermissionOverwrite{
		ID:    d.cfg.StaffRoleID,
		Type:  discordgo.PermissionOverwriteTypeRole,
		Allow: ticketAccess,
	})
}

// selectCategory tags the ticket with the category picked from the menu.
func (d *Dispatcher) selectCategory(_ context.Context, i *discordgo.InteractionCreate) (string, error) {
	values := i.MessageComponentData().Values
	if len(values) != 1 {
		return "", reject(messages.ErrInvalidCategory)
	}

	category, err := entities.ParseCategory(values[0])
	if err != nil {
		return "", reject(messages.ErrInvalidCategory)
	}

	channel, err := d.session.Channel(i.ChannelID)
	if err != nil {
		return "", fmt.Errorf("error getting channel: %w", err)
	}

	name := entities.TicketName(channel.Name)
	if !d.isOpenTicket(channel) {
		return "", reject(messages.ErrNotTicketChannel)
	}

	if previous, ok := name.Category(); ok {
		d.l.Debug("Changing ticket category",
			slog.String(logging.KeyChannel, channel.ID),
			slog.String("previous", previous.String()),
			slog.String("category", category.String()),
		)
	}

	if _, err := d.session.ChannelMessageSendComplex(channel.ID, categoryMessage(category, d.now())); err != nil {
		return "", fmt.Errorf("error sending category message: %w", err)
	}
	TicketsCategorised.WithLabelValues(category.String()).Inc()

	// isOpenTicket guarantees the rename is possible.
	newName, _ := name.WithCategory(category)
	if newName != name {
		if _, err := d.session.ChannelEditComplex(channel.ID, &discordgo.ChannelEdit{
			Name: newName.String(),
		}); err != nil {
			return "", fmt.Errorf("error renaming ticket channel: %w", err)
		}
	}

	return fmt.Sprintf(messages.CategorySelectedFmt, category.DisplayLabel()), nil
}

// archiveTicket moves the ticket to the archive category, renames it and stops @everyone
// from sending messages in it.
func (d *Dispatcher) archiveTicket(_ context.Context, i *discordgo.InteractionCreate) (string, error) {
	if i.GuildID == "" {
		return "", reject(messages.ErrNotInGuild)
	}

	channel, err := d.session.Channel(i.ChannelID)
	if err != nil {
		return "", fmt.Errorf("error getting channel: %w", err)
	}

	if !d.isOpenTicket(channel) {
		return "", reject(messages.ErrNotTicketChannel)
	}
	name := entities.TicketName(channel.Name)
	owner, _ := name.Owner()
	archived, _ := name.Archived()

	edit := &discordgo.ChannelEdit{
		Name: archived.String(),
	}
	if d.cfg.ArchiveCategoryID != "" {
		edit.ParentID = d.cfg.ArchiveCategoryID
	} else {
		d.l.Warn("No archive category configured, ticket will stay in place",
			slog.String(logging.KeyChannel, channel.ID))
	}

	if _, err := d.session.ChannelEditComplex(channel.ID, edit); err != nil {
		return "", fmt.Errorf("error moving ticket channel: %w", err)
	}

	// Lock the channel.
	allow, deny := lockedOverwrite(channel.PermissionOverwrites, i.GuildID)
	if err := d.session.ChannelPermissionSet(channel.ID, i.GuildID, discordgo.PermissionOverwriteTypeRole, allow, deny); err != nil {
		return "", fmt.Errorf("error locking ticket channel: %w", err)
	}

	user := interactionUser(i)
	if _, err := d.session.ChannelMessageSendComplex(channel.ID, archivedMessage(user, d.now())); err != nil {
		return "", fmt.Errorf("error sending archive message: %w", err)
	}
	TicketsArchived.Inc()

	d.l.Info("Ticket archived",
		slog.String(logging.KeyGuild, i.GuildID),
		slog.String(logging.KeyChannel, channel.ID),
		slog.String(logging.KeyUser, user.ID),
		slog.String("name", archived.String()),
		slog.String("owner", owner),
	)

	return messages.TicketArchived, nil
}

// isOpenTicket reports whether channel is an open ticket. When a ticket category is
// configured the channel must be in it. Without one the channel must be hidden from
// @everyone the way createTicket leaves it, so a public channel such as tech-support is not
// taken for a ticket.
func (d *Dispatcher) isOpenTicket(channel *discordgo.Channel) bool {
	if !entities.TicketName(channel.Name).IsOpen() {
		return false
	}
	if d.cfg.TicketCategoryID != "" {
		return channel.ParentID == d.cfg.TicketCategoryID
	}
	return hiddenFromEveryone(channel)
}

// hiddenFromEveryone reports whether the @everyone overwrite of channel denies viewing it.
func hiddenFromEveryone(channel *discordgo.Channel) bool {
	for _, o := range channel.PermissionOverwrites {
		if o.ID == channel.GuildID && o.Type == discordgo.PermissionOverwriteTypeRole {
			return o.Deny&discordgo.PermissionViewChannel != 0
		}
	}
	return false
}

// lockedOverwrite returns the @everyone overwrite of the channel with send messages denied.
// Whatever else the overwrite allowed or denied is kept.
func lockedOverwrite(overwrites []*discordgo.PermissionOverwrite, everyoneID string) (allow, deny int64) {
	for _, o := range overwrites {
		if o.ID == everyoneID && o.Type == discordgo.PermissionOverwriteTypeRole {
			allow, deny = o.Allow, o.Deny
			break
		}
	}
	return allow &^ discordgo.PermissionSendMessages, deny | discordgo.PermissionSendMessages
}
