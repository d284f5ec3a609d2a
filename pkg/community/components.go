package community

import (
	"fmt"
	"strings"
	"time"

	"github.com/Jacobbrewer1/discordgo"
	"github.com/Jacobbrewer1/foxfire/pkg/entities"
)

const (
	colorWelcome  = 0xFF6B35
	colorBlurple  = 0x5865F2
	colorSuccess  = 0x57F287
	colorArchived = 0x95A5A6
)

const (
	// welcomeImageURL is the banner shown at the bottom of the welcome embed.
	welcomeImageURL = "https://i.imgur.com/AfFp7pu.png"

	// zeroWidthSpace renders an empty embed field used as a spacer.
	zeroWidthSpace = "\u200B"
)

const (
	// ThumbsUp is the first reaction added to suggestions.
	ThumbsUp = "👍"

	// ThumbsDown is the second reaction added to suggestions.
	ThumbsDown = "👎"
)

// suggestionReactions are added to every suggestion, in order.
var suggestionReactions = []string{ThumbsUp, ThumbsDown}

// welcomeMessage builds the message sent when member joins guild.
func welcomeMessage(member *discordgo.Member, guild *discordgo.Guild, now time.Time) *discordgo.MessageSend {
	user := member.User

	created := "desconocida"
	if ts, err := discordgo.SnowflakeTimestamp(user.ID); err == nil {
		created = fmt.Sprintf("<t:%d:R>", ts.Unix())
	}

	return &discordgo.MessageSend{
		Content: fmt.Sprintf("🎉 ┃ **¡Un nuevo miembro ha llegado!** %s 🎊", user.Mention()),
		Embeds: []*discordgo.MessageEmbed{
			{
				Color:       colorWelcome,
				Title:       "🦊 ✨ ¡Bienvenid@ a la comunidad! ✨ 🦊",
				Description: fmt.Sprintf("> 🎊 **%s** se ha unido al servidor!\n> ¡Esperamos que disfrutes tu estadía aquí!", user.Mention()),
				Fields: []*discordgo.MessageEmbedField{
					{Name: "👤 Usuario", Value: "`" + userTag(user) + "`", Inline: true},
					{Name: "📊 Miembro #", Value: fmt.Sprintf("`%d`", memberCount(guild)), Inline: true},
					{Name: "📅 Cuenta creada", Value: created, Inline: true},
					{Name: zeroWidthSpace, Value: zeroWidthSpace},
					{Name: "🎯 ¿Qué hacer ahora?", Value: "• Lee las reglas 📜\n• Preséntate con la comunidad 👋\n• ¡Diviértete y haz amigos! 🎮"},
				},
				Thumbnail: &discordgo.MessageEmbedThumbnail{URL: user.AvatarURL("256")},
				Image:     &discordgo.MessageEmbedImage{URL: welcomeImageURL},
				Footer: &discordgo.MessageEmbedFooter{
					Text:    guild.Name + " • ¡Disfruta tu estadía!",
					IconURL: guildIconURL(guild),
				},
				Timestamp: now.UTC().Format(time.RFC3339),
			},
		},
	}
}

// panelMessage builds the persistent message holding the create ticket button.
func panelMessage(guild *discordgo.Guild, now time.Time) *discordgo.MessageSend {
	var categories strings.Builder
	for _, c := range entities.Categories {
		categories.WriteString(c.DisplayLabel() + "\n")
	}

	footer := &discordgo.MessageEmbedFooter{Text: "Sistema de tickets • FoxFire"}
	if guild != nil {
		footer.IconURL = guildIconURL(guild)
	}

	return &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{
			{
				Color: colorBlurple,
				Title: "🎫 Sistema de Tickets",
				Description: "**¿Necesitas ayuda o soporte?**\n\n" +
					"Crea un ticket privado haciendo clic en el botón de abajo.\n" +
					"Podrás seleccionar la categoría de tu problema.\n\n" +
					"📋 **Categorías disponibles:**\n" +
					categories.String() + "\n" +
					"📌 **Información importante:**\n" +
					"• Los tickets son privados y solo visibles para ti y el staff\n" +
					"• Describe tu problema claramente\n" +
					"• Sé paciente mientras esperamos respuesta\n" +
					"• No abras múltiples tickets para el mismo problema",
				Footer:    footer,
				Timestamp: now.UTC().Format(time.RFC3339),
			},
		},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{
						Label:    "Crear Ticket",
						Style:    discordgo.PrimaryButton,
						Emoji:    discordgo.ComponentEmoji{Name: "📩"},
						CustomID: entities.ComponentCreateTicket.CustomID(),
					},
				},
			},
		},
	}
}

// ticketOpenedMessage is the first message in a new ticket. It tags the owner and the staff
// role and carries the category menu and the archive button.
func ticketOpenedMessage(user *discordgo.User, staffRoleID string, now time.Time) *discordgo.MessageSend {
	content := user.Mention()
	mentions := &discordgo.MessageAllowedMentions{Users: []string{user.ID}}
	if staffRoleID != "" {
		content += fmt.Sprintf(" | <@&%s>", staffRoleID)
		mentions.Roles = []string{staffRoleID}
	}

	options := make([]discordgo.SelectMenuOption, 0, len(entities.Categories))
	for _, c := range entities.Categories {
		options = append(options, discordgo.SelectMenuOption{
			Label:       c.Label(),
			Value:       c.Value(),
			Description: c.Description(),
			Emoji:       discordgo.ComponentEmoji{Name: c.Emoji()},
		})
	}

	minValues := 1

	return &discordgo.MessageSend{
		Content:         content,
		AllowedMentions: mentions,
		Embeds: []*discordgo.MessageEmbed{
			{
				Color: colorSuccess,
				Title: "🎫 Ticket Creado",
				Description: fmt.Sprintf("Hola %s, bienvenido a tu ticket.\n\n", user.Mention()) +
					"**Por favor, selecciona la categoría de tu ticket en el menú de abajo** y luego describe tu problema con el mayor detalle posible.\n\n" +
					"⏰ **Tiempo de respuesta:** Normalmente entre 1-24 horas\n" +
					"🔒 **Privacidad:** Solo tú y el staff pueden ver este canal",
				Footer: &discordgo.MessageEmbedFooter{
					Text:    "Ticket de " + userTag(user),
					IconURL: user.AvatarURL(""),
				},
				Timestamp: now.UTC().Format(time.RFC3339),
			},
		},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.SelectMenu{
						MenuType:    discordgo.StringSelectMenu,
						CustomID:    entities.ComponentTicketCategory.CustomID(),
						Placeholder: "🏷️ Selecciona la categoría del ticket",
						MinValues:   &minValues,
						MaxValues:   1,
						Options:     options,
					},
				},
			},
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{
						Label:    "Archivar Ticket",
						Style:    discordgo.DangerButton,
						Emoji:    discordgo.ComponentEmoji{Name: "🗃️"},
						CustomID: entities.ComponentArchiveTicket.CustomID(),
					},
				},
			},
		},
	}
}

// categoryMessage is the visible confirmation of a category selection.
func categoryMessage(c entities.Category, now time.Time) *discordgo.MessageSend {
	return &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{
			{
				Color:       colorBlurple,
				Title:       "🏷️ Categoría Seleccionada",
				Description: fmt.Sprintf("**Categoría del ticket:** %s\n\nAhora puedes explicar tu problema o pregunta con detalle.", c.DisplayLabel()),
				Timestamp:   now.UTC().Format(time.RFC3339),
			},
		},
	}
}

// archivedMessage is posted in a ticket once it has been archived by user.
func archivedMessage(user *discordgo.User, now time.Time) *discordgo.MessageSend {
	return &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{
			{
				Color: colorArchived,
				Title: "🗃️ Ticket Archivado",
				Description: fmt.Sprintf("Este ticket ha sido archivado por %s.\n\n", user.Mention()) +
					"El canal permanecerá visible pero no se podrán enviar más mensajes.\n" +
					"Si necesitas reabrir el ticket, contacta con un administrador.",
				Timestamp: now.UTC().Format(time.RFC3339),
			},
		},
	}
}

// userTag is the name#discriminator form of the user, or just the username for accounts
// that have migrated to unique usernames.
func userTag(u *discordgo.User) string {
	if u.Discriminator == "" || u.Discriminator == "0" {
		return u.Username
	}
	return u.Username + "#" + u.Discriminator
}

func memberCount(g *discordgo.Guild) int {
	if g.MemberCount > 0 {
		return g.MemberCount
	}
	return g.ApproximateMemberCount
}

func guildIconURL(g *discordgo.Guild) string {
	if g.Icon == "" {
		return ""
	}
	return discordgo.EndpointGuildIcon(g.ID, g.Icon)
}
