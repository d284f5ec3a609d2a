package community

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/Jacobbrewer1/discordgo"
	"github.com/Jacobbrewer1/foxfire/pkg/dataaccess"
	"github.com/Jacobbrewer1/foxfire/pkg/entities"
)

const (
	testGuildID       = "100000000000000000"
	testBotID         = "200000000000000000"
	testWelcomeID     = "300000000000000001"
	testPanelID       = "300000000000000002"
	testTicketCatID   = "300000000000000003"
	testArchiveCatID  = "300000000000000004"
	testStaffRoleID   = "400000000000000000"
	testSuggestionsID = "300000000000000005"
	testGeneralID     = "300000000000000006"

	// Snowflake 175928847299117063 is from 2016-04-30T11:18:25.796Z.
	testAliceID = "175928847299117063"
)

var testNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func testConfig() Config {
	return Config{
		WelcomeChannelID:     testWelcomeID,
		TicketPanelChannelID: testPanelID,
		TicketCategoryID:     testTicketCatID,
		ArchiveCategoryID:    testArchiveCatID,
		StaffRoleID:          testStaffRoleID,
		SuggestionsChannelID: testSuggestionsID,
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func unknown(code int) error {
	return &discordgo.RESTError{
		Message: &discordgo.APIErrorMessage{Code: code, Message: "unknown"},
	}
}

type sentMessage struct {
	ChannelID string
	Data      *discordgo.MessageSend
}

type channelEdit struct {
	ChannelID string
	Data      *discordgo.ChannelEdit
}

type permissionSet struct {
	ChannelID   string
	TargetID    string
	TargetType  discordgo.PermissionOverwriteType
	Allow, Deny int64
}

type reaction struct {
	ChannelID, MessageID, Emoji string
}

// fakeSession is an in-memory discord. Channels created or edited through it are visible to
// later lookups.
type fakeSession struct {
	mu sync.Mutex

	bot      *discordgo.User
	guilds   map[string]*discordgo.Guild
	members  map[string]*discordgo.Member
	channels map[string]*discordgo.Channel
	messages map[string]bool
	order    []string
	nextID   int

	created   []discordgo.GuildChannelCreateData
	edits     []channelEdit
	perms     []permissionSet
	sent      []sentMessage
	reactions []reaction
	responds  []*discordgo.InteractionResponse
	replies   []string

	// errs makes the named method fail.
	errs map[string]error
}

func newFakeSession() *fakeSession {
	f := &fakeSession{
		bot: &discordgo.User{ID: testBotID, Username: "FoxFire", Discriminator: "0", Bot: true},
		guilds: map[string]*discordgo.Guild{
			testGuildID: {ID: testGuildID, Name: "FoxFire", Icon: "abc", MemberCount: 42},
		},
		members:  make(map[string]*discordgo.Member),
		channels: make(map[string]*discordgo.Channel),
		messages: make(map[string]bool),
		errs:     make(map[string]error),
	}

	f.members[testBotID] = &discordgo.Member{GuildID: testGuildID, User: f.bot}

	for _, ch := range []*discordgo.Channel{
		{ID: testWelcomeID, GuildID: testGuildID, Name: "bienvenida", Type: discordgo.ChannelTypeGuildText},
		{ID: testPanelID, GuildID: testGuildID, Name: "tickets", Type: discordgo.ChannelTypeGuildText},
		{ID: testTicketCatID, GuildID: testGuildID, Name: "Tickets", Type: discordgo.ChannelTypeGuildCategory},
		{ID: testArchiveCatID, GuildID: testGuildID, Name: "Archivo", Type: discordgo.ChannelTypeGuildCategory},
		{ID: testSuggestionsID, GuildID: testGuildID, Name: "sugerencias", Type: discordgo.ChannelTypeGuildText},
		{ID: testGeneralID, GuildID: testGuildID, Name: "general", Type: discordgo.ChannelTypeGuildText},
	} {
		f.addChannel(ch)
	}
	return f
}

func (f *fakeSession) addChannel(ch *discordgo.Channel) {
	f.channels[ch.ID] = ch
	f.order = append(f.order, ch.ID)
}

func (f *fakeSession) err(method string) error {
	return f.errs[method]
}

func (f *fakeSession) id() string {
	f.nextID++
	return fmt.Sprintf("9%017d", f.nextID)
}

func (f *fakeSession) BotUser() (*discordgo.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.err("BotUser"); err != nil {
		return nil, err
	}
	return f.bot, nil
}

func (f *fakeSession) FirstGuildID() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.err("FirstGuildID"); err != nil {
		return "", err
	}
	for id := range f.guilds {
		return id, nil
	}
	return "", ErrNoGuilds
}

func (f *fakeSession) Guild(guildID string) (*discordgo.Guild, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.err("Guild"); err != nil {
		return nil, err
	}
	g, ok := f.guilds[guildID]
	if !ok {
		return nil, unknown(discordgo.ErrCodeUnknownGuild)
	}
	return g, nil
}

func (f *fakeSession) GuildMember(guildID, userID string) (*discordgo.Member, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.err("GuildMember"); err != nil {
		return nil, err
	}
	m, ok := f.members[userID]
	if !ok || m.GuildID != guildID {
		return nil, unknown(discordgo.ErrCodeUnknownMember)
	}
	cp := *m
	return &cp, nil
}

func (f *fakeSession) GuildChannels(guildID string) ([]*discordgo.Channel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.err("GuildChannels"); err != nil {
		return nil, err
	}
	var out []*discordgo.Channel
	for _, id := range f.order {
		if ch := f.channels[id]; ch.GuildID == guildID {
			cp := *ch
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeSession) GuildChannelCreateComplex(guildID string, data discordgo.GuildChannelCreateData) (*discordgo.Channel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.err("GuildChannelCreateComplex"); err != nil {
		return nil, err
	}
	f.created = append(f.created, data)

	ch := &discordgo.Channel{
		ID:                   f.id(),
		GuildID:              guildID,
		Name:                 data.Name,
		Type:                 data.Type,
		Topic:                data.Topic,
		ParentID:             data.ParentID,
		PermissionOverwrites: data.PermissionOverwrites,
	}
	f.addChannel(ch)
	cp := *ch
	return &cp, nil
}

func (f *fakeSession) Channel(channelID string) (*discordgo.Channel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.err("Channel"); err != nil {
		return nil, err
	}
	ch, ok := f.channels[channelID]
	if !ok {
		return nil, unknown(discordgo.ErrCodeUnknownChannel)
	}
	cp := *ch
	return &cp, nil
}

func (f *fakeSession) ChannelEditComplex(channelID string, data *discordgo.ChannelEdit) (*discordgo.Channel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.err("ChannelEditComplex"); err != nil {
		return nil, err
	}
	f.edits = append(f.edits, channelEdit{ChannelID: channelID, Data: data})

	ch, ok := f.channels[channelID]
	if !ok {
		return nil, unknown(discordgo.ErrCodeUnknownChannel)
	}
	if data.Name != "" {
		ch.Name = data.Name
	}
	if data.ParentID != "" {
		ch.ParentID = data.ParentID
	}
	cp := *ch
	return &cp, nil
}

func (f *fakeSession) ChannelPermissionSet(channelID, targetID string, targetType discordgo.PermissionOverwriteType, allow, deny int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.err("ChannelPermissionSet"); err != nil {
		return err
	}
	f.perms = append(f.perms, permissionSet{
		ChannelID:  channelID,
		TargetID:   targetID,
		TargetType: targetType,
		Allow:      allow,
		Deny:       deny,
	})

	ch, ok := f.channels[channelID]
	if !ok {
		return unknown(discordgo.ErrCodeUnknownChannel)
	}
	for _, o := range ch.PermissionOverwrites {
		if o.ID == targetID {
			o.Allow, o.Deny = allow, deny
			return nil
		}
	}
	ch.PermissionOverwrites = append(ch.PermissionOverwrites, &discordgo.PermissionOverwrite{
		ID: targetID, Type: targetType, Allow: allow, Deny: deny,
	})
	return nil
}

func (f *fakeSession) ChannelMessage(channelID, messageID string) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.err("ChannelMessage"); err != nil {
		return nil, err
	}
	if !f.messages[channelID+"/"+messageID] {
		return nil, unknown(discordgo.ErrCodeUnknownMessage)
	}
	return &discordgo.Message{ID: messageID, ChannelID: channelID}, nil
}

func (f *fakeSession) ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.err("ChannelMessageSendComplex"); err != nil {
		return nil, err
	}
	f.sent = append(f.sent, sentMessage{ChannelID: channelID, Data: data})
	id := f.id()
	f.messages[channelID+"/"+id] = true
	return &discordgo.Message{ID: id, ChannelID: channelID}, nil
}

func (f *fakeSession) MessageReactionAdd(channelID, messageID, emojiID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.err("MessageReactionAdd"); err != nil {
		return err
	}
	f.reactions = append(f.reactions, reaction{ChannelID: channelID, MessageID: messageID, Emoji: emojiID})
	return nil
}

func (f *fakeSession) InteractionRespond(_ *discordgo.Interaction, resp *discordgo.InteractionResponse) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.err("InteractionRespond"); err != nil {
		return err
	}
	f.responds = append(f.responds, resp)
	return nil
}

func (f *fakeSession) InteractionResponseEdit(_ *discordgo.Interaction, edit *discordgo.WebhookEdit) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.err("InteractionResponseEdit"); err != nil {
		return nil, err
	}
	if edit.Content != nil {
		f.replies = append(f.replies, *edit.Content)
	}
	return &discordgo.Message{}, nil
}

func (f *fakeSession) channelByName(name string) *discordgo.Channel {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, id := range f.order {
		if ch := f.channels[id]; ch.Name == name {
			return ch
		}
	}
	return nil
}

func (f *fakeSession) sentTo(channelID string) []*discordgo.MessageSend {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*discordgo.MessageSend
	for _, s := range f.sent {
		if s.ChannelID == channelID {
			out = append(out, s.Data)
		}
	}
	return out
}

type fakePanelStore struct {
	panels map[string]*entities.Panel
	getErr error
	saved  []*entities.Panel
}

func newFakePanelStore() *fakePanelStore {
	return &fakePanelStore{panels: make(map[string]*entities.Panel)}
}

func (p *fakePanelStore) SavePanel(_ context.Context, panel *entities.Panel) error {
	p.saved = append(p.saved, panel)
	p.panels[panel.ChannelID] = panel
	return nil
}

func (p *fakePanelStore) GetPanel(_ context.Context, channelID string) (*entities.Panel, error) {
	if p.getErr != nil {
		return nil, p.getErr
	}
	panel, ok := p.panels[channelID]
	if !ok {
		return nil, dataaccess.ErrNotFound
	}
	return panel, nil
}

func newTestDispatcher(f *fakeSession, opts ...Option) *Dispatcher {
	opts = append([]Option{WithClock(func() time.Time { return testNow })}, opts...)
	return NewDispatcher(testLogger(), testConfig(), f, opts...)
}

func componentInteraction(channelID string, user *discordgo.User, customID string, values ...string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:        "interaction",
			Type:      discordgo.InteractionMessageComponent,
			GuildID:   testGuildID,
			ChannelID: channelID,
			Member:    &discordgo.Member{GuildID: testGuildID, User: user},
			Data: discordgo.MessageComponentInteractionData{
				CustomID: customID,
				Values:   values,
			},
		},
	}
}

func alice() *discordgo.User {
	return &discordgo.User{ID: testAliceID, Username: "alice", Discriminator: "0"}
}
