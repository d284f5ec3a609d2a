package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/Jacobbrewer1/foxfire/pkg/community"
	"github.com/Jacobbrewer1/foxfire/pkg/dataaccess/connection"
	"github.com/Jacobbrewer1/foxfire/pkg/logging"
	"github.com/joho/godotenv"
)

// ErrMissingToken is returned when no bot token has been provided.
var ErrMissingToken = errors.New("missing bot token")

// EnvFile is the path of an optional dotenv file.
type EnvFile string

// Config is the configuration of the bot. It is built once at startup and never modified.
type Config struct {
	// Token is the discord bot token.
	Token string

	// WelcomeChannelID is where welcome messages go. Empty disables them.
	WelcomeChannelID string

	// TicketPanelChannelID is where the ticket panel is posted on startup. Empty disables it.
	TicketPanelChannelID string

	// TicketCategoryID is the category new tickets are created under.
	TicketCategoryID string

	// ArchiveCategoryID is the category archived tickets are moved to.
	ArchiveCategoryID string

	// StaffRoleID is the role granted access to every ticket.
	StaffRoleID string

	// SuggestionsChannelID is the channel whose messages get voting reactions.
	SuggestionsChannelID string

	// Mongo is where the panel record store lives. The store is disabled when it has neither
	// a URI nor a host.
	Mongo connection.MongoDB

	// MonitoringPort is the port of the metrics and health server.
	MonitoringPort string
}

// Community returns the discord IDs the community handlers act on.
func (c *Config) Community() community.Config {
	return community.Config{
		WelcomeChannelID:     c.WelcomeChannelID,
		TicketPanelChannelID: c.TicketPanelChannelID,
		TicketCategoryID:     c.TicketCategoryID,
		ArchiveCategoryID:    c.ArchiveCategoryID,
		StaffRoleID:          c.StaffRoleID,
		SuggestionsChannelID: c.SuggestionsChannelID,
	}
}

// lookupFunc finds the value of a configuration key.
type lookupFunc func(key string) (string, bool)

// Load builds the configuration from the process environment, falling back to the values in
// envFile for keys that are unset or empty. A missing env file is not an error.
func Load(l *slog.Logger, envFile EnvFile) (*Config, error) {
	fileValues := make(map[string]string)
	if envFile != "" {
		vals, err := godotenv.Read(string(envFile))
		switch {
		case errors.Is(err, fs.ErrNotExist):
			l.Info("No env file found, relying on environment variables", slog.String("path", string(envFile)))
		case err != nil:
			return nil, fmt.Errorf("error reading env file %s: %w", envFile, err)
		default:
			l.Debug("Loaded env file", slog.String("path", string(envFile)))
			fileValues = vals
		}
	}

	return parse(l, func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v, true
		}
		v, ok := fileValues[key]
		return v, ok
	})
}

func parse(l *slog.Logger, lookup lookupFunc) (*Config, error) {
	get := func(key string) string {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		if ok && v != "" {
			l.Debug("Found value in environment", slog.String("key", key))
		}
		return v
	}

	c := &Config{
		Token:                get(EnvBotToken),
		WelcomeChannelID:     get(EnvWelcomeChannelId),
		TicketPanelChannelID: get(EnvTicketPanelChannelId),
		TicketCategoryID:     get(EnvTicketCategoryId),
		ArchiveCategoryID:    get(EnvArchiveCategoryId),
		StaffRoleID:          get(EnvStaffRoleId),
		SuggestionsChannelID: get(EnvSuggestionsChannelId),
		Mongo: connection.MongoDB{
			ConnectionString: get(EnvMongoUri),
			Host:             get(EnvMongoHost),
			Port:             get(EnvMongoPort),
			Username:         get(EnvMongoUser),
			Password:         get(EnvMongoPassword),
			Args:             get(EnvMongoArgs),
		},
		MonitoringPort:       get(EnvMonitoringPort),
	}

	if c.Token == "" {
		c.Token = get(EnvConnectionToken)
	}
	if c.Token == "" {
		l.Error("Not all required environment variables have been provided",
			slog.String(logging.KeyError, ErrMissingToken.Error()),
			slog.String("key", EnvBotToken),
		)
		return nil, ErrMissingToken
	}

	if c.MonitoringPort == "" {
		c.MonitoringPort = DefaultMonitoringPort
		l.Info("No monitoring port provided in environment, defaulting to "+DefaultMonitoringPort,
			slog.String("key", EnvMonitoringPort))
	}

	c.warnMissing(l)
	return c, nil
}

// warnMissing logs every optional feature that is disabled by missing configuration.
func (c *Config) warnMissing(l *slog.Logger) {
	optional := []struct {
		key, value, feature string
	}{
		{EnvWelcomeChannelId, c.WelcomeChannelID, "welcome messages"},
		{EnvTicketPanelChannelId, c.TicketPanelChannelID, "ticket panel"},
		{EnvTicketCategoryId, c.TicketCategoryID, "ticket category"},
		{EnvArchiveCategoryId, c.ArchiveCategoryID, "ticket archive category"},
		{EnvStaffRoleId, c.StaffRoleID, "staff access to tickets"},
		{EnvSuggestionsChannelId, c.SuggestionsChannelID, "suggestion reactions"},
	}

	for _, o := range optional {
		if o.value == "" {
			l.Warn("Optional configuration not provided",
				slog.String("key", o.key),
				slog.String("feature", o.feature),
			)
		}
	}
}
