package community

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/Jacobbrewer1/discordgo"
	"github.com/stretchr/testify/require"
)

func memberJoin(guildID string, user *discordgo.User) *discordgo.GuildMemberAdd {
	return &discordgo.GuildMemberAdd{Member: &discordgo.Member{GuildID: guildID, User: user}}
}

func TestMemberAdd_SendsWelcome(t *testing.T) {
	f := newFakeSession()
	d := newTestDispatcher(f)

	d.memberAddHandler()(nil, memberJoin(testGuildID, alice()))

	require.Len(t, f.sent, 1)
	sent := f.sentTo(testWelcomeID)
	require.Len(t, sent, 1)
	require.Contains(t, sent[0].Content, "<@"+testAliceID+">")

	embed := sent[0].Embeds[0]
	values := make(map[string]string)
	for _, field := range embed.Fields {
		values[field.Name] = field.Value
	}

	created, err := discordgo.SnowflakeTimestamp(testAliceID)
	require.NoError(t, err)

	require.Equal(t, "`alice`", values["👤 Usuario"])
	require.Equal(t, "`42`", values["📊 Miembro #"])
	require.Equal(t, fmt.Sprintf("<t:%d:R>", created.Unix()), values["📅 Cuenta creada"])
	require.Equal(t, "<t:1462015105:R>", values["📅 Cuenta creada"])
	require.Equal(t, testNow.Format("2006-01-02T15:04:05Z07:00"), embed.Timestamp)
}

func TestMemberAdd_LegacyTag(t *testing.T) {
	f := newFakeSession()
	d := newTestDispatcher(f)

	d.memberAddHandler()(nil, memberJoin(testGuildID, &discordgo.User{ID: testAliceID, Username: "alice", Discriminator: "1234"}))

	sent := f.sentTo(testWelcomeID)
	require.Len(t, sent, 1)
	var tag string
	for _, field := range sent[0].Embeds[0].Fields {
		if strings.Contains(field.Name, "Usuario") {
			tag = field.Value
		}
	}
	require.Equal(t, "`alice#1234`", tag)
}

func TestMemberAdd_Skipped(t *testing.T) {
	tests := []struct {
		name  string
		setup func(f *fakeSession, cfg *Config)
		event *discordgo.GuildMemberAdd
	}{
		{
			name:  "no welcome channel configured",
			setup: func(_ *fakeSession, cfg *Config) { cfg.WelcomeChannelID = "" },
			event: memberJoin(testGuildID, alice()),
		},
		{
			name:  "welcome channel deleted",
			setup: func(f *fakeSession, _ *Config) { delete(f.channels, testWelcomeID) },
			event: memberJoin(testGuildID, alice()),
		},
		{
			name: "welcome channel in another guild",
			setup: func(f *fakeSession, _ *Config) {
				f.guilds["999"] = &discordgo.Guild{ID: "999", MemberCount: 3}
			},
			event: memberJoin("999", alice()),
		},
		{
			name:  "no user",
			setup: func(*fakeSession, *Config) {},
			event: &discordgo.GuildMemberAdd{Member: &discordgo.Member{GuildID: testGuildID}},
		},
		{
			name:  "guild lookup fails",
			setup: func(f *fakeSession, _ *Config) { f.errs["Guild"] = errors.New("boom") },
			event: memberJoin(testGuildID, alice()),
		},
		{
			name:  "send fails",
			setup: func(f *fakeSession, _ *Config) { f.errs["ChannelMessageSendComplex"] = errors.New("boom") },
			event: memberJoin(testGuildID, alice()),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFakeSession()
			cfg := testConfig()
			tt.setup(f, &cfg)
			d := NewDispatcher(testLogger(), cfg, f)

			require.NotPanics(t, func() {
				d.memberAddHandler()(nil, tt.event)
			})
			require.Empty(t, f.sent)
		})
	}
}

func TestMemberCount(t *testing.T) {
	require.Equal(t, 42, memberCount(&discordgo.Guild{MemberCount: 42, ApproximateMemberCount: 40}))
	require.Equal(t, 40, memberCount(&discordgo.Guild{ApproximateMemberCount: 40}))
}
