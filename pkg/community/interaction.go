package community

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/Jacobbrewer1/discordgo"
	"github.com/Jacobbrewer1/foxfire/pkg/entities"
	"github.com/Jacobbrewer1/foxfire/pkg/logging"
	"github.com/Jacobbrewer1/foxfire/pkg/messages"
)

// rejection is returned by a step when the user asked for something that cannot be done. Its
// text is shown to the user as is.
type rejection string

func (r rejection) Error() string {
	return string(r)
}

func reject(format string, args ...any) error {
	if len(args) == 0 {
		return rejection(format)
	}
	return rejection(fmt.Sprintf(format, args...))
}

// step is the body of an interaction handler. It returns the text of the private reply.
type step func(ctx context.Context, i *discordgo.InteractionCreate) (string, error)

func (d *Dispatcher) interactionHandler() func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return func(_ *discordgo.Session, i *discordgo.InteractionCreate) {
		if i.Type != discordgo.InteractionMessageComponent {
			return
		}

		customID := i.MessageComponentData().CustomID
		id := entities.ParseComponentID(customID)

		var (
			run     step
			failure string
		)
		switch id {
		case entities.ComponentCreateTicket:
			run, failure = d.createTicket, messages.ErrTicketCreate
		case entities.ComponentTicketCategory:
			run, failure = d.selectCategory, messages.ErrTicketCategory
		case entities.ComponentArchiveTicket:
			run, failure = d.archiveTicket, messages.ErrTicketArchive
		case entities.ComponentUnknown:
			// Components from other bots or from old versions of this one.
			d.l.Debug("Ignoring unknown component", slog.String(logging.KeyComponent, customID))
			return
		default:
			d.l.Error("No handler for component", slog.String(logging.KeyComponent, customID))
			return
		}

		d.respondDeferred(context.Background(), i, id, failure, run)
	}
}

// respondDeferred acknowledges the interaction with a private placeholder, runs the step and
// then replaces the placeholder with the outcome. The placeholder is always resolved once it
// has been sent, whatever the step does.
func (d *Dispatcher) respondDeferred(ctx context.Context, i *discordgo.InteractionCreate, id entities.ComponentID, failure string, run step) {
	start := time.Now()
	l := d.l.With(
		slog.String(logging.KeyComponent, id.String()),
		slog.String(logging.KeyGuild, i.GuildID),
		slog.String(logging.KeyChannel, i.ChannelID),
		slog.String(logging.KeyUser, interactionUser(i).ID),
	)

	err := d.session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		l.Error("Error acknowledging interaction", slog.String(logging.KeyError, err.Error()))
		InteractionDuration.WithLabelValues(id.String(), outcomeError).Observe(time.Since(start).Seconds())
		return
	}

	if failure == "" {
		failure = messages.ErrUserErrorProcessing
	}

	reply := failure
	outcome := outcomeError
	defer func() {
		if rec := recover(); rec != nil {
			l.Error("Panic handling interaction",
				slog.String(logging.KeyError, fmt.Sprint(rec)),
				slog.String("stack", string(debug.Stack())),
			)
			reply, outcome = failure, outcomeError
		}

		if _, err := d.session.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
			Content: &reply,
		}); err != nil {
			l.Error("Error editing interaction response", slog.String(logging.KeyError, err.Error()))
		}

		InteractionDuration.WithLabelValues(id.String(), outcome).Observe(time.Since(start).Seconds())
	}()

	content, err := run(ctx, i)
	var rej rejection
	switch {
	case errors.As(err, &rej):
		l.Info("Interaction rejected", slog.String("reason", rej.Error()))
		reply, outcome = rej.Error(), outcomeRejected
	case err != nil:
		l.Error("Error handling interaction", slog.String(logging.KeyError, err.Error()))
	default:
		reply, outcome = content, outcomeOK
	}
}

// interactionUser is the user that triggered the interaction, in a guild or a DM.
func interactionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	if i.User != nil {
		return i.User
	}
	return &discordgo.User{}
}
