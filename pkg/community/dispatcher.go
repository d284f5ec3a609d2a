package community

import (
	"log/slog"
	"sync"
	"time"

	"github.com/Jacobbrewer1/discordgo"
	"github.com/Jacobbrewer1/foxfire/pkg/dataaccess"
)

// Config holds the discord IDs the dispatcher acts on. Empty values disable the feature that
// needs them.
type Config struct {
	WelcomeChannelID     string
	TicketPanelChannelID string
	TicketCategoryID     string
	ArchiveCategoryID    string
	StaffRoleID          string
	SuggestionsChannelID string
}

// Dispatcher routes discord events to the community handlers.
type Dispatcher struct {
	l       *slog.Logger
	cfg     Config
	session Session

	// panels remembers where the ticket panel was posted. Nil when no store is configured.
	panels dataaccess.PanelDal

	// creating holds the users with a ticket creation in flight.
	creating *userGuard

	// readyOnce makes the startup messages a once per process thing. The gateway sends READY
	// again after every fresh identify.
	readyOnce sync.Once

	now func() time.Time
}

// Option configures a Dispatcher.
type Option func(d *Dispatcher)

// WithPanelStore makes the dispatcher record the ticket panel message so it is not posted
// again on restart.
func WithPanelStore(p dataaccess.PanelDal) Option {
	return func(d *Dispatcher) {
		d.panels = p
	}
}

// WithClock overrides the time source used for embed timestamps.
func WithClock(now func() time.Time) Option {
	return func(d *Dispatcher) {
		d.now = now
	}
}

// NewDispatcher creates a new Dispatcher.
func NewDispatcher(l *slog.Logger, cfg Config, s Session, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		l:        l,
		cfg:      cfg,
		session:  s,
		creating: newUserGuard(),
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(d)
	}
	return d
}

// handlerAdder is satisfied by *discordgo.Session.
type handlerAdder interface {
	AddHandler(handler interface{}) func()
}

// Register adds the dispatcher's handlers to the session.
func (d *Dispatcher) Register(s handlerAdder) {
	s.AddHandler(d.readyHandler())
	s.AddHandler(d.interactionHandler())
	s.AddHandler(d.messageHandler())
	s.AddHandler(d.memberAddHandler())
}

// Intents are the gateway intents the handlers need.
const Intents = discordgo.IntentsGuilds |
	discordgo.IntentsGuildMembers |
	discordgo.IntentsGuildMessages
