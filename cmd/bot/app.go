package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Jacobbrewer1/discordgo"
	"github.com/Jacobbrewer1/foxfire/cmd/bot/config"
	"github.com/Jacobbrewer1/foxfire/pkg/community"
	"github.com/Jacobbrewer1/foxfire/pkg/dataaccess"
	"github.com/Jacobbrewer1/foxfire/pkg/logging"
	"github.com/Jacobbrewer1/foxfire/pkg/request"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	// PathMetrics is the path for metrics.
	PathMetrics = "/metrics"

	// PathHealth is the path for health check.
	PathHealth = "/health"
)

// shutdownTimeout bounds the graceful shutdown of the monitoring server and mongo.
const shutdownTimeout = 10 * time.Second

type App struct {
	// is the logger.
	*slog.Logger

	// cfg is the configuration loaded at startup.
	cfg *config.Config

	// r is the router for the monitoring server.
	r *mux.Router

	// svr is the monitoring server.
	svr *http.Server

	// s is the discord session.
	s *discordgo.Session

	// mongo is the panel store connection. Nil when no MongoDB is configured.
	mongo *mongo.Client

	// dispatcher handles the community events.
	dispatcher *community.Dispatcher

	// eventNotifier is the channel for notifying of events.
	eventNotifier chan any
}

// NewApp creates a new instance of App.
func NewApp(l *slog.Logger, cfg *config.Config, r *mux.Router) *App {
	return &App{
		Logger: l,
		cfg:    cfg,
		r:      r,
	}
}

// Run starts the bot and the monitoring server and blocks until ctx is done or a shutdown
// signal is received.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	var opts []community.Option
	if a.cfg.Mongo.Enabled() {
		if err := a.connectMongo(ctx); err != nil {
			return fmt.Errorf("error connecting to mongo: %w", err)
		}
		opts = append(opts, community.WithPanelStore(dataaccess.NewPanelDal(a.Logger, a.mongo)))
	} else {
		a.Info("No MongoDB configured, ticket panel will be posted on every start",
			slog.String("key", config.EnvMongoUri),
			slog.String("host_key", config.EnvMongoHost),
		)
	}

	// Register bot.
	if err := a.registerBot(); err != nil {
		a.disconnectMongo()
		return fmt.Errorf("error registering bot: %w", err)
	}

	a.dispatcher = community.NewDispatcher(a.Logger, a.cfg.Community(), community.NewSession(a.s), opts...)
	a.registerDiscordHandlers()

	// Start event listener.
	go a.eventListener()

	// Open websocket.
	if err := a.s.Open(); err != nil {
		a.disconnectMongo()
		return fmt.Errorf("error opening connection to Discord: %w", err)
	}

	a.Info("Bot is now running.")

	a.generateServer()
	a.setupRoutes(a.healthCheck())
	a.runServer()

	<-ctx.Done()
	a.Info("Received shutdown signal")

	if err := a.shutdownHook(); err != nil {
		return fmt.Errorf("error shutting down application: %w", err)
	}
	return nil
}

func (a *App) shutdownHook() error {
	// Reset the total number of guilds to 0.
	TotalDiscordGuilds.Set(0)

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var errs []error

	// Close the connection to Discord.
	if err := a.s.Close(); err != nil {
		errs = append(errs, fmt.Errorf("error closing connection to Discord: %w", err))
	}

	if a.svr != nil {
		if err := a.svr.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("error shutting down monitoring server: %w", err))
		}
	}

	if a.mongo != nil {
		if err := a.mongo.Disconnect(ctx); err != nil {
			errs = append(errs, fmt.Errorf("error disconnecting from mongo: %w", err))
		}
	}

	return errors.Join(errs...)
}

func (a *App) registerBot() error {
	// Default the number of guilds to 0.
	TotalDiscordGuilds.Set(0)

	dg, err := discordgo.New("Bot " + a.cfg.Token)
	if err != nil {
		return fmt.Errorf("error creating Discord session: %w", err)
	}

	dg.Identify.Intents = community.Intents

	if a.eventNotifier == nil {
		// Create event notifier. It is buffered to prevent blocking.
		a.eventNotifier = make(chan any, 100)
	}

	dg.SetEventNotifier(a.eventNotifier)

	a.s = dg
	return nil
}

func (a *App) connectMongo(ctx context.Context) error {
	// Connect fills in the connection string, the config stays untouched.
	conn := a.cfg.Mongo

	client, err := conn.Connect(ctx)
	if err != nil {
		return err
	}

	a.mongo = client
	a.Debug("Connected to MongoDB", slog.String("host", conn.Host))
	return nil
}

func (a *App) disconnectMongo() {
	if a.mongo == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.mongo.Disconnect(ctx); err != nil {
		a.Error("Error disconnecting from mongo", slog.String(logging.KeyError, err.Error()))
	}
}

func (a *App) runServer() {
	go func() {
		a.Info("Starting monitoring server", slog.String("addr", a.svr.Addr))
		if err := a.svr.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.Error("Error starting monitoring server", slog.String(logging.KeyError, err.Error()))
			a.Warn("Monitoring server will not be available")
		}
	}()
}

func (a *App) setupRoutes(health Controller) {
	a.r.HandleFunc(PathMetrics, middlewareHttp(a.Logger, promhttp.Handler().ServeHTTP)).Methods(http.MethodGet)
	a.r.HandleFunc(PathHealth, middlewareHttp(a.Logger, health)).Methods(http.MethodGet)

	a.r.NotFoundHandler = middlewareHttp(a.Logger, Controller(request.NotFoundHandler(a.Logger)))
	a.r.MethodNotAllowedHandler = middlewareHttp(a.Logger, Controller(request.MethodNotAllowedHandler(a.Logger)))
}

func (a *App) generateServer() {
	a.svr = &http.Server{
		Addr:              ":" + a.cfg.MonitoringPort,
		Handler:           a.r,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

func (a *App) registerDiscordHandlers() {
	// Bot joined guild.
	a.s.AddHandler(a.guildJoinedHandler())

	// Bot left guild.
	a.s.AddHandler(a.guildLeaveHandler())

	// Welcome, tickets and suggestions.
	a.dispatcher.Register(a.s)
}

func (a *App) eventListener() {
	for e := range a.eventNotifier {
		switch t := e.(type) {
		case *discordgo.Event:
			if t.Type != "" {
				TotalDiscordEvents.WithLabelValues(t.Type).Inc()
			} else {
				// If there is no type, then use the operation name.
				TotalDiscordEvents.WithLabelValues(strings.ToUpper(t.Operation.String())).Inc()
			}
		default:
			a.Error("Unknown event type", slog.String("type", fmt.Sprintf("%T", e)))
			TotalDiscordEvents.WithLabelValues("UNKNOWN").Inc()
		}
	}
}
