package entities

import "time"

// Panel records where the ticket panel message was posted.
type Panel struct {
	// GuildID is the ID of the guild the panel is in.
	GuildID string `json:"guild_id" bson:"guild_id"`

	// ChannelID is the ID of the channel the panel was posted to.
	ChannelID string `json:"channel_id" bson:"channel_id"`

	// MessageID is the ID of the panel message.
	MessageID string `json:"message_id" bson:"message_id"`

	// PostedAt is when the panel message was posted.
	PostedAt time.Time `json:"posted_at" bson:"posted_at"`
}
