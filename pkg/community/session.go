package community

import (
	"errors"
	"fmt"

	"github.com/Jacobbrewer1/discordgo"
)

// Session is the part of the discord API the dispatcher uses.
type Session interface {
	// BotUser returns the user the bot is logged in as.
	BotUser() (*discordgo.User, error)

	// FirstGuildID returns the ID of the first guild the bot belongs to.
	FirstGuildID() (string, error)

	Guild(guildID string) (*discordgo.Guild, error)
	GuildMember(guildID, userID string) (*discordgo.Member, error)
	GuildChannels(guildID string) ([]*discordgo.Channel, error)
	GuildChannelCreateComplex(guildID string, data discordgo.GuildChannelCreateData) (*discordgo.Channel, error)

	Channel(channelID string) (*discordgo.Channel, error)
	ChannelEditComplex(channelID string, data *discordgo.ChannelEdit) (*discordgo.Channel, error)
	ChannelPermissionSet(channelID, targetID string, targetType discordgo.PermissionOverwriteType, allow, deny int64) error
	ChannelMessage(channelID, messageID string) (*discordgo.Message, error)
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend) (*discordgo.Message, error)
	MessageReactionAdd(channelID, messageID, emojiID string) error

	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse) error
	InteractionResponseEdit(interaction *discordgo.Interaction, edit *discordgo.WebhookEdit) (*discordgo.Message, error)
}

// ErrNoGuilds is returned when the bot is not in any guild.
var ErrNoGuilds = errors.New("bot is not in any guild")

type discordSession struct {
	s *discordgo.Session
}

// NewSession wraps a discordgo session. Lookups are served from the state cache when it has
// the answer.
func NewSession(s *discordgo.Session) Session {
	return &discordSession{s: s}
}

func (d *discordSession) BotUser() (*discordgo.User, error) {
	if d.s.State != nil && d.s.State.User != nil {
		return d.s.State.User, nil
	}

	u, err := d.s.User("@me")
	if err != nil {
		return nil, fmt.Errorf("error getting bot user: %w", err)
	}
	return u, nil
}

func (d *discordSession) FirstGuildID() (string, error) {
	if d.s.State != nil {
		d.s.State.RLock()
		n := len(d.s.State.Guilds)
		var id string
		if n > 0 {
			id = d.s.State.Guilds[0].ID
		}
		d.s.State.RUnlock()
		if id != "" {
			return id, nil
		}
	}

	guilds, err := d.s.UserGuilds(1, "", "")
	if err != nil {
		return "", fmt.Errorf("error getting guilds: %w", err)
	}
	if len(guilds) == 0 {
		return "", ErrNoGuilds
	}
	return guilds[0].ID, nil
}

func (d *discordSession) Guild(guildID string) (*discordgo.Guild, error) {
	if d.s.State != nil {
		// Guilds only have a member count once the GUILD_CREATE has been received.
		if g, err := d.s.State.Guild(guildID); err == nil && g.MemberCount > 0 {
			return g, nil
		}
	}

	// The plain guild endpoint leaves the counts out.
	g, err := d.s.GuildWithCounts(guildID)
	if err != nil {
		return nil, fmt.Errorf("error getting guild: %w", err)
	}
	return g, nil
}

func (d *discordSession) GuildMember(guildID, userID string) (*discordgo.Member, error) {
	if d.s.State != nil {
		if m, err := d.s.State.Member(guildID, userID); err == nil {
			return m, nil
		}
	}
	return d.s.GuildMember(guildID, userID)
}

// GuildChannels always goes to the API, the duplicate ticket check needs a fresh listing.
func (d *discordSession) GuildChannels(guildID string) ([]*discordgo.Channel, error) {
	return d.s.GuildChannels(guildID)
}

func (d *discordSession) GuildChannelCreateComplex(guildID string, data discordgo.GuildChannelCreateData) (*discordgo.Channel, error) {
	return d.s.GuildChannelCreateComplex(guildID, data)
}

func (d *discordSession) Channel(channelID string) (*discordgo.Channel, error) {
	return d.s.Channel(channelID)
}

func (d *discordSession) ChannelEditComplex(channelID string, data *discordgo.ChannelEdit) (*discordgo.Channel, error) {
	return d.s.ChannelEditComplex(channelID, data)
}

func (d *discordSession) ChannelPermissionSet(channelID, targetID string, targetType discordgo.PermissionOverwriteType, allow, deny int64) error {
	return d.s.ChannelPermissionSet(channelID, targetID, targetType, allow, deny)
}

func (d *discordSession) ChannelMessage(channelID, messageID string) (*discordgo.Message, error) {
	return d.s.ChannelMessage(channelID, messageID)
}

func (d *discordSession) ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend) (*discordgo.Message, error) {
	return d.s.ChannelMessageSendComplex(channelID, data)
}

func (d *discordSession) MessageReactionAdd(channelID, messageID, emojiID string) error {
	return d.s.MessageReactionAdd(channelID, messageID, emojiID)
}

func (d *discordSession) InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse) error {
	return d.s.InteractionRespond(interaction, resp)
}

func (d *discordSession) InteractionResponseEdit(interaction *discordgo.Interaction, edit *discordgo.WebhookEdit) (*discordgo.Message, error) {
	return d.s.InteractionResponseEdit(interaction, edit)
}
