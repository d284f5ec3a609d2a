package logging

const (
	// KeyError is the key for errors in log attributes.
	KeyError = "err"

	// KeyDal is the key for the data access layer name.
	KeyDal = "dal"

	// KeyApp is the key for the application name.
	KeyApp = "app"

	// KeyGuild is the key for a guild ID.
	KeyGuild = "guild_id"

	// KeyChannel is the key for a channel ID.
	KeyChannel = "channel_id"

	// KeyUser is the key for a user ID.
	KeyUser = "user_id"

	// KeyComponent is the key for a message component custom ID.
	KeyComponent = "component"
)
