package config

const (
	// AppName is the name of the application.
	AppName = "foxfire"

	// DefaultEnvFile is the env file read when none is given.
	DefaultEnvFile = ".env"

	// DefaultMonitoringPort is the port the monitoring server listens on when none is given.
	DefaultMonitoringPort = "8080"
)

const (
	// EnvBotToken is the environment variable for the bot token.
	EnvBotToken = `DISCORD_TOKEN`

	// EnvConnectionToken is accepted when EnvBotToken is not set.
	EnvConnectionToken = `CONNECTION_TOKEN`

	// EnvWelcomeChannelId is the channel welcome messages are sent to.
	EnvWelcomeChannelId = `WELCOME_CHANNEL_ID`

	// EnvTicketPanelChannelId is the channel the ticket panel is posted to.
	EnvTicketPanelChannelId = `TICKET_PANEL_CHANNEL_ID`

	// EnvTicketCategoryId is the category new tickets are created in.
	EnvTicketCategoryId = `TICKET_CATEGORY_ID`

	// EnvArchiveCategoryId is the category archived tickets are moved to.
	EnvArchiveCategoryId = `ARCHIVE_CATEGORY_ID`

	// EnvStaffRoleId is the role that can see and answer tickets.
	EnvStaffRoleId = `STAFF_ROLE_ID`

	// EnvSuggestionsChannelId is the channel whose messages get voting reactions.
	EnvSuggestionsChannelId = `SUGGESTIONS_CHANNEL_ID`

	// EnvMongoUri is the environment variable for the MongoDB URI. Optional.
	EnvMongoUri = `MONGO_URI`

	// EnvMongoHost is the MongoDB host, used to build the URI when EnvMongoUri is not set.
	EnvMongoHost = `MONGO_HOST`

	// EnvMongoPort is the MongoDB port. Without it the host is looked up as an SRV record.
	EnvMongoPort = `MONGO_PORT`

	// EnvMongoUser is the MongoDB user.
	EnvMongoUser = `MONGO_USER`

	// EnvMongoPassword is the MongoDB password.
	EnvMongoPassword = `MONGO_PASSWORD`

	// EnvMongoArgs are the MongoDB connection options, as a query string.
	EnvMongoArgs = `MONGO_ARGS`

	// EnvMonitoringPort is the environment variable for the monitoring port.
	EnvMonitoringPort = `MONITORING_PORT`
)
