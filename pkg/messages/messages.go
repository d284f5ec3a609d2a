package messages

// User facing replies. The community the bot serves speaks Spanish.
const (
	// ErrUserErrorProcessing is the generic reply when an interaction cannot be handled.
	ErrUserErrorProcessing = "❌ Hubo un error al procesar tu solicitud."

	// ErrTicketCreate is the reply when creating a ticket fails.
	ErrTicketCreate = "❌ Hubo un error al crear el ticket. Contacta con un administrador."

	// ErrTicketArchive is the reply when archiving a ticket fails.
	ErrTicketArchive = "❌ Hubo un error al archivar el ticket."

	// ErrTicketCategory is the reply when tagging a ticket with a category fails.
	ErrTicketCategory = "❌ Hubo un error al actualizar la categoría del ticket."

	// ErrNotTicketChannel is the reply when a ticket action is used outside of an open ticket.
	ErrNotTicketChannel = "❌ Este comando solo funciona en canales de tickets."

	// ErrInvalidCategory is the reply when the selected category is not recognised.
	ErrInvalidCategory = "❌ Categoría no válida."

	// ErrNotInGuild is the reply when a ticket action is used outside of a server.
	ErrNotInGuild = "❌ Esta acción solo está disponible dentro del servidor."

	// ErrTicketCreationInProgress is the reply when the user already has a ticket being created.
	ErrTicketCreationInProgress = "⏳ Ya se está creando un ticket para ti, espera un momento."

	// TicketExistsFmt takes the existing ticket channel ID.
	TicketExistsFmt = "❌ Ya tienes un ticket abierto: <#%s>"

	// TicketCreatedFmt takes the new ticket channel ID.
	TicketCreatedFmt = "✅ Ticket creado exitosamente: <#%s>"

	// TicketArchived is the reply after a ticket is archived.
	TicketArchived = "✅ Ticket archivado correctamente."

	// CategorySelectedFmt takes the category label.
	CategorySelectedFmt = "✅ Categoría actualizada: %s"
)
