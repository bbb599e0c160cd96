package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/leighmacdonald/steamwebapi/internal/webapitest"
	"github.com/stretchr/testify/require"
)

const (
	testKey = "0123456789ABCDEF"
	testSID = "76561197960435530"
)

func runCLI(t *testing.T, server *webapitest.Server, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	app := &cli{}
	rootCmd := newRootCmd(app)
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(append([]string{"--base-url", server.URL, "--key", testKey}, args...))

	errExecute := rootCmd.ExecuteContext(context.Background())

	app.close()

	return stdout.String(), stderr.String(), errExecute
}

func TestProfile(t *testing.T) {
	server := webapitest.New(t, map[string]string{
		"/ISteamUser/GetPlayerSummaries/v2": `{"response":{"players":[{"steamid":"76561197960435530",
			"communityvisibilitystate":3,"personaname":"Robin","profileurl":"u","avatar":"a","avatarmedium":"b",
			"avatarfull":"c","personastate":0,"timecreated":1063407589}]}}`,
		"/ISteamUser/GetPlayerBans/v1": `{"players":[{"SteamId":"76561197960435530","CommunityBanned":false,
			"VACBanned":false,"NumberOfVACBans":0,"DaysSinceLastBan":0,"NumberOfGameBans":1,"EconomyBan":"none"}]}`,
		"/IPlayerService/GetSteamLevel/v1": `{"response":{"player_level":7}}`,
	})
	server.Respond("/ISteamUser/GetFriendList/v1", http.StatusUnauthorized, "<html>Unauthorized</html>")

	stdout, _, err := runCLI(t, server, "profile", testSID)
	require.NoError(t, err)

	var profile Profile
	require.NoError(t, json.Unmarshal([]byte(stdout), &profile))
	require.Equal(t, "Robin", profile.Summary.PersonaName)
	require.Equal(t, 7, profile.Level)
	require.Equal(t, 1, profile.Bans.NumberOfGameBans)
	require.Nil(t, profile.Friends)

	require.Equal(t, `["76561197960435530"]`, server.LastQuery("/ISteamUser/GetPlayerBans/v1").Get("steamids"))
	require.Equal(t, testKey, server.LastQuery("/IPlayerService/GetSteamLevel/v1").Get("key"))
}

func TestProfileFailure(t *testing.T) {
	server := webapitest.New(t, map[string]string{
		"/ISteamUser/GetPlayerBans/v1":     `{"players":[]}`,
		"/IPlayerService/GetSteamLevel/v1": `{"response":{"player_level":7}}`,
		"/ISteamUser/GetFriendList/v1":     `{"friendslist":{"friends":[]}}`,
	})

	_, _, err := runCLI(t, server, "profile", testSID)
	require.Error(t, err)
}

func TestResolveVanityFallback(t *testing.T) {
	server := webapitest.New(t, map[string]string{
		"/ISteamUser/ResolveVanityURL/v1":  `{"response":{"steamid":"76561197960435530","success":1}}`,
		"/IPlayerService/GetSteamLevel/v1": `{"response":{"player_level":12}}`,
	})

	stdout, _, err := runCLI(t, server, "player", "level", "https://steamcommunity.com/id/robinwalker/")
	require.NoError(t, err)
	require.JSONEq(t, `{"response":{"player_level":12}}`, stdout)
	require.Equal(t, "robinwalker", server.LastQuery("/ISteamUser/ResolveVanityURL/v1").Get("vanityurl"))
	require.Equal(t, testSID, server.LastQuery("/IPlayerService/GetSteamLevel/v1").Get("steamid"))
}

func TestResolveVanityMiss(t *testing.T) {
	server := webapitest.New(t, map[string]string{
		"/ISteamUser/ResolveVanityURL/v1": `{"response":{"success":42,"message":"No match"}}`,
	})

	_, _, err := runCLI(t, server, "user", "groups", "nobody-here")
	require.ErrorIs(t, err, ErrUnknownPlayer)
}

func TestNewsInvalidAppID(t *testing.T) {
	server := webapitest.New(t, nil)

	_, _, err := runCLI(t, server, "news", "tf2")
	require.ErrorIs(t, err, ErrInvalidAppID)
}

func TestNewsFlags(t *testing.T) {
	server := webapitest.New(t, map[string]string{
		"/ISteamNews/GetNewsForApp/v2": `{"appnews":{"appid":440,"newsitems":[]}}`,
	})

	_, _, err := runCLI(t, server, "news", "440", "--count", "3", "--feeds", "tf2_blog,steam_community_announcements")
	require.NoError(t, err)

	query := server.LastQuery("/ISteamNews/GetNewsForApp/v2")
	require.Equal(t, "3", query.Get("count"))
	require.Equal(t, "tf2_blog,steam_community_announcements", query.Get("feeds"))
	require.False(t, query.Has("maxlength"))
	require.False(t, query.Has("key"))
}

func TestAPIsTableSorted(t *testing.T) {
	server := webapitest.New(t, map[string]string{
		"/ISteamWebAPIUtil/GetSupportedAPIList/v1": `{"apilist":{"interfaces":[
			{"name":"ISteamWebAPIUtil","methods":[{"name":"GetServerInfo","version":1,"httpmethod":"GET","parameters":[]}]},
			{"name":"ISteamApps","methods":[
				{"name":"UpToDateCheck","version":1,"httpmethod":"GET","parameters":[]},
				{"name":"GetAppList","version":2,"httpmethod":"GET","parameters":[]}
			]}
		]}}`,
	})

	stdout, _, err := runCLI(t, server, "--table", "util", "apis")
	require.NoError(t, err)

	apps := strings.Index(stdout, "ISteamApps")
	util := strings.Index(stdout, "ISteamWebAPIUtil")
	require.GreaterOrEqual(t, apps, 0)
	require.Less(t, apps, util)
	require.Less(t, strings.Index(stdout, "GetAppList"), strings.Index(stdout, "UpToDateCheck"))
}

func TestMetrics(t *testing.T) {
	server := webapitest.New(t, map[string]string{
		"/ISteamWebAPIUtil/GetServerInfo/v1": `{"servertime":1625396869,"servertimestring":"Sun Jul  4 04:07:49 2021"}`,
	})

	stdout, stderr, err := runCLI(t, server, "--metrics", "util", "info")
	require.NoError(t, err)
	require.Contains(t, stdout, "1625396869")
	require.Contains(t, stderr, "steamwebapi_requests_total")
	require.Contains(t, stderr, "code=200")
}

func TestNewsTablePlainText(t *testing.T) {
	server := webapitest.New(t, map[string]string{
		"/ISteamNews/GetNewsForApp/v2": `{"appnews":{"appid":440,"newsitems":[{"gid":"1","title":"Patch",
			"url":"https://example.com/1","is_external_url":true,"author":"","contents":"<p>Fixed <b>crashes</b></p>",
			"feedlabel":"TF2 Blog","date":1585508613,"feedname":"tf2_blog","feed_type":0,"appid":440}]}}`,
	})

	stdout, _, err := runCLI(t, server, "--table", "news", "440")
	require.NoError(t, err)
	require.Contains(t, stdout, "Fixed crashes")
	require.NotContains(t, stdout, "<b>")
}

func TestAPIsGlobFilter(t *testing.T) {
	server := webapitest.New(t, map[string]string{
		"/ISteamWebAPIUtil/GetSupportedAPIList/v1": `{"apilist":{"interfaces":[
			{"name":"ISteamUser","methods":[]},
			{"name":"ISteamUserStats","methods":[]},
			{"name":"ISteamApps","methods":[]}
		]}}`,
	})

	stdout, _, err := runCLI(t, server, "util", "apis", "isteamuser*")
	require.NoError(t, err)
	require.Contains(t, stdout, `"ISteamUser"`)
	require.Contains(t, stdout, `"ISteamUserStats"`)
	require.NotContains(t, stdout, "ISteamApps")
}

func TestOwnedAppInfoDefault(t *testing.T) {
	server := webapitest.New(t, map[string]string{
		"/IPlayerService/GetOwnedGames/v1": `{"response":{"game_count":1,"games":[{"appid":440,"name":"Team Fortress 2",
			"playtime_forever":120,"playtime_windows_forever":0,"playtime_mac_forever":0,"playtime_linux_forever":120}]}}`,
	})

	stdout, _, err := runCLI(t, server, "player", "owned", testSID)
	require.NoError(t, err)
	require.Contains(t, stdout, "Team Fortress 2")

	query := server.LastQuery("/IPlayerService/GetOwnedGames/v1")
	require.Equal(t, "true", query.Get("include_appinfo"))
	require.False(t, query.Has("include_played_free_games"))

	_, _, err = runCLI(t, server, "player", "owned", testSID, "--app-info=false")
	require.NoError(t, err)
	require.Equal(t, "false", server.LastQuery("/IPlayerService/GetOwnedGames/v1").Get("include_appinfo"))
}
