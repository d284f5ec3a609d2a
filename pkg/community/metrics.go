package community

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "foxfire"

const (
	outcomeOK       = "ok"
	outcomeRejected = "rejected"
	outcomeError    = "error"
)

var (
	// InteractionDuration is the time taken to handle a component interaction.
	InteractionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "discord_interaction_duration",
			Help:      "Duration of the discord component interactions",
		},
		[]string{"component", "outcome"},
	)

	// TicketsCreated is the total number of ticket channels created.
	TicketsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "tickets_created_total",
			Help:      "Total number of ticket channels created",
		},
	)

	// TicketsCategorised is the total number of category selections by category.
	TicketsCategorised = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "tickets_categorised_total",
			Help:      "Total number of ticket category selections",
		},
		[]string{"category"},
	)

	// TicketsArchived is the total number of tickets archived.
	TicketsArchived = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "tickets_archived_total",
			Help:      "Total number of tickets archived",
		},
	)

	// WelcomeMessagesSent is the total number of welcome messages sent.
	WelcomeMessagesSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "welcome_messages_sent_total",
			Help:      "Total number of welcome messages sent",
		},
		[]string{"trigger"},
	)

	// SuggestionReactions is the total number of reactions added to suggestions.
	SuggestionReactions = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "suggestion_reactions_total",
			Help:      "Total number of reactions added to suggestions",
		},
	)
)
