package entities

import (
	"strings"
)

const (
	// OpenTicketPrefix is the name prefix of a ticket that has not been tagged with a category.
	OpenTicketPrefix = "ticket-"

	// ArchivedTicketPrefix is prepended to the name of an archived ticket.
	ArchivedTicketPrefix = "archived-"
)

// TicketName is the name of a ticket channel. The name encodes the ticket state:
//
//	ticket-<user>            open, no category
//	<prefix>-<user>          open, tagged with a category
//	archived-<open name>     archived
type TicketName string

// NewTicketName returns the channel name for a new ticket opened by username. Discord stores
// text channel names in lower case, so the name is lowered here to make lookups match.
func NewTicketName(username string) TicketName {
	return TicketName(OpenTicketPrefix + channelSafe(username))
}

// IsOpen reports whether the name belongs to an open ticket, tagged or not.
func (n TicketName) IsOpen() bool {
	_, ok := n.owner()
	return ok
}

// IsArchived reports whether the name belongs to an archived ticket.
func (n TicketName) IsArchived() bool {
	return strings.HasPrefix(string(n), ArchivedTicketPrefix)
}

// Owner returns the username part of an open ticket name.
func (n TicketName) Owner() (string, bool) {
	return n.owner()
}

// Category returns the category the ticket is tagged with, if any.
func (n TicketName) Category() (Category, bool) {
	s := string(n)
	for _, c := range Categories {
		if p := c.Prefix() + "-"; strings.HasPrefix(s, p) && len(s) > len(p) {
			return c, true
		}
	}
	return categoryUnknown, false
}

// WithCategory returns the name of the ticket once tagged with c. Any previous category
// prefix is replaced.
func (n TicketName) WithCategory(c Category) (TicketName, bool) {
	owner, ok := n.owner()
	if !ok || c.Prefix() == "" {
		return n, false
	}
	return TicketName(c.Prefix() + "-" + owner), true
}

// Archived returns the name of the ticket once archived.
func (n TicketName) Archived() (TicketName, bool) {
	if !n.IsOpen() {
		return n, false
	}
	return TicketName(ArchivedTicketPrefix + string(n)), true
}

// String implements the fmt.Stringer interface.
func (n TicketName) String() string {
	return string(n)
}

func (n TicketName) owner() (string, bool) {
	s := string(n)
	if n.IsArchived() {
		return "", false
	}

	prefixes := make([]string, 0, len(Categories)+1)
	prefixes = append(prefixes, OpenTicketPrefix)
	for _, c := range Categories {
		prefixes = append(prefixes, c.Prefix()+"-")
	}

	for _, p := range prefixes {
		if strings.HasPrefix(s, p) && len(s) > len(p) {
			return s[len(p):], true
		}
	}
	return "", false
}

// channelSafe lowers the username and replaces whitespace with dashes, matching what
// discord does to text channel names.
func channelSafe(username string) string {
	return strings.Join(strings.Fields(strings.ToLower(username)), "-")
}
