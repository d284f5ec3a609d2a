package entities

// ComponentID is the custom ID of a message component the bot owns.
type ComponentID int

const (
	// ComponentUnknown is any custom ID the bot did not create.
	ComponentUnknown ComponentID = iota

	// ComponentCreateTicket is the button on the ticket panel.
	ComponentCreateTicket

	// ComponentTicketCategory is the category select menu inside a ticket.
	ComponentTicketCategory

	// ComponentArchiveTicket is the archive button inside a ticket.
	ComponentArchiveTicket
)

const (
	createTicketCustomID   = "create_ticket"
	ticketCategoryCustomID = "ticket_category"
	archiveTicketCustomID  = "archive_ticket"
)

// ParseComponentID maps a custom ID onto a ComponentID.
func ParseComponentID(customID string) ComponentID {
	switch customID {
	case createTicketCustomID:
		return ComponentCreateTicket
	case ticketCategoryCustomID:
		return ComponentTicketCategory
	case archiveTicketCustomID:
		return ComponentArchiveTicket
	default:
		return ComponentUnknown
	}
}

// CustomID is the custom ID sent to discord.
func (c ComponentID) CustomID() string {
	switch c {
	case ComponentCreateTicket:
		return createTicketCustomID
	case ComponentTicketCategory:
		return ticketCategoryCustomID
	case ComponentArchiveTicket:
		return archiveTicketCustomID
	default:
		return ""
	}
}

// String implements the fmt.Stringer interface. Used as a metric label.
func (c ComponentID) String() string {
	if id := c.CustomID(); id != "" {
		return id
	}
	return "unknown"
}
