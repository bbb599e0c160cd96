package userstats

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/leighmacdonald/steamid/v4/steamid"
	"github.com/leighmacdonald/steamwebapi/internal/webapitest"
	"github.com/leighmacdonald/steamwebapi/pkg/ptr"
	"github.com/leighmacdonald/steamwebapi/pkg/webapi"
	"github.com/stretchr/testify/require"
)

const (
	testKey   = "0123456789ABCDEF"
	testSID   = "76561197960435530"
	testAppID = webapi.AppID(367520)
)

const globalAchievementsJSON = `{
	"achievementpercentages": {
		"achievements": [
			{"name": "CHARMED", "percent": 75},
			{"name": "FK_DEFEAT", "percent": 68.9000015258789063},
			{"name": "HORNET_1", "percent": "59.9"}
		]
	}
}`

const globalStatsJSON = `{
	"response": {
		"result": 1,
		"globalstats": {
			"stat_name_0": {"total": "123"},
			"stat_name_1": {"total": "345"}
		}
	}
}`

const currentPlayersJSON = `{"response": {"player_count": 573500, "result": 1}}`

const playerAchievementsJSON = `{
	"playerstats": {
		"steamID": "76561197960435530",
		"gameName": "Hollow Knight",
		"achievements": [
			{"apiname": "CHARMED", "achieved": 1, "unlocktime": 1625254529},
			{"apiname": "ENCHANTED", "achieved": 0, "unlocktime": 0}
		],
		"success": true
	}
}`

const schemaJSON = `{
	"game": {
		"gameName": "[STAGING] DotA 2",
		"gameVersion": "11",
		"availableGameStats": {
			"stats": [{"name": "DOTA_SHOW_FULL_UI", "defaultvalue": 0, "displayName": ""}]
		}
	}
}`

const userStatsJSON = `{
	"playerstats": {
		"steamID": "76561197960435530",
		"gameName": "Fall Guys",
		"achievements": [
			{"name": "ACH_GRAB_PLAYER", "achieved": 1},
			{"name": "ACH_QUALIFY_1_ROUND", "achieved": 1}
		]
	}
}`

func newTestClient(t *testing.T) (*Client, *webapitest.Server) {
	t.Helper()

	server := webapitest.New(t, map[string]string{
		getGlobalAchievementPercentagesPath: globalAchievementsJSON,
		getGlobalStatsForGamePath:           globalStatsJSON,
		getNumberOfCurrentPlayersPath:       currentPlayersJSON,
		getPlayerAchievementsPath:           playerAchievementsJSON,
		getSchemaForGamePath:                schemaJSON,
		getUserStatsForGamePath:             userStatsJSON,
	})

	return New(server.APIClient(), testKey), server
}

func TestGlobalAchievementPercentages(t *testing.T) {
	client, server := newTestClient(t)

	result, err := client.GlobalAchievementPercentages(context.Background(), testAppID)
	require.NoError(t, err)
	require.Equal(t, GlobalAchievementPercentagesResponse{AchievementPercentages: GlobalAchievementList{
		Achievements: []GlobalAchievement{
			{Name: "CHARMED", Percent: 75},
			{Name: "FK_DEFEAT", Percent: 68.9000015258789063},
			{Name: "HORNET_1", Percent: 59.9},
		},
	}}, result)

	query := server.LastQuery(getGlobalAchievementPercentagesPath)
	require.Equal(t, "367520", query.Get("gameid"))
	require.False(t, query.Has("key"))
}

func TestPercentInvalid(t *testing.T) {
	var percent Percent

	require.ErrorIs(t, json.Unmarshal([]byte(`"many"`), &percent), ErrInvalidPercent)
	require.NoError(t, json.Unmarshal([]byte(`null`), &percent))
	require.Zero(t, percent)
}

func TestGlobalStatsForGame(t *testing.T) {
	client, server := newTestClient(t)

	result, err := client.GlobalStatsForGame(context.Background(), testAppID,
		[]string{"stat_name_0", "stat_name_1"}, GlobalStatsOptions{})
	require.NoError(t, err)
	require.Equal(t, 1, result.Response.Result)
	require.JSONEq(t, `{"stat_name_0":{"total":"123"},"stat_name_1":{"total":"345"}}`,
		string(result.Response.GlobalStats))

	query := server.LastQuery(getGlobalStatsForGamePath)
	require.Equal(t, "367520", query.Get("appid"))
	require.Equal(t, "2", query.Get("count"))
	require.Equal(t, "stat_name_0", query.Get("name[0]"))
	require.Equal(t, "stat_name_1", query.Get("name[1]"))
	require.False(t, query.Has("startdate"))
	require.False(t, query.Has("enddate"))
}

func TestGlobalStatsForGameDateRange(t *testing.T) {
	client, server := newTestClient(t)

	_, err := client.GlobalStatsForGame(context.Background(), testAppID, nil, GlobalStatsOptions{
		StartDate: ptr.To(int64(1600000000)),
		EndDate:   ptr.To(int64(1625254529)),
	})
	require.NoError(t, err)

	query := server.LastQuery(getGlobalStatsForGamePath)
	require.Equal(t, "0", query.Get("count"))
	require.False(t, query.Has("name[0]"))
	require.Equal(t, "1600000000", query.Get("startdate"))
	require.Equal(t, "1625254529", query.Get("enddate"))
}

func TestNumberOfCurrentPlayers(t *testing.T) {
	client, server := newTestClient(t)

	result, err := client.NumberOfCurrentPlayers(context.Background(), testAppID)
	require.NoError(t, err)
	require.Equal(t, CurrentPlayersResponse{Response: CurrentPlayers{PlayerCount: 573500, Result: 1}}, result)
	require.Equal(t, "367520", server.LastQuery(getNumberOfCurrentPlayersPath).Get("appid"))
}

func TestPlayerAchievements(t *testing.T) {
	client, server := newTestClient(t)

	result, err := client.PlayerAchievements(context.Background(), steamid.New(testSID), testAppID, LanguageOptions{})
	require.NoError(t, err)
	require.Equal(t, PlayerAchievementsResponse{PlayerStats: PlayerAchievements{
		SteamID:  testSID,
		GameName: "Hollow Knight",
		Achievements: []PlayerAchievement{
			{APIName: "CHARMED", Achieved: 1, UnlockTime: 1625254529},
			{APIName: "ENCHANTED"},
		},
		Success: true,
	}}, result)

	achievements := result.PlayerStats.Achievements
	require.True(t, achievements[0].Unlocked())
	require.Equal(t, int64(1625254529), achievements[0].UnlockedAt().Unix())
	require.False(t, achievements[1].Unlocked())
	require.True(t, achievements[1].UnlockedAt().IsZero())

	query := server.LastQuery(getPlayerAchievementsPath)
	require.Equal(t, testKey, query.Get("key"))
	require.Equal(t, testSID, query.Get("steamid"))
	require.Equal(t, "367520", query.Get("appid"))
	require.False(t, query.Has("l"))

	_, err = client.PlayerAchievements(context.Background(), steamid.New(testSID), testAppID,
		LanguageOptions{Language: ptr.To("de")})
	require.NoError(t, err)
	require.Equal(t, "de", server.LastQuery(getPlayerAchievementsPath).Get("l"))
}

func TestPlayerAchievementsMissingKey(t *testing.T) {
	server := webapitest.New(t, map[string]string{getPlayerAchievementsPath: playerAchievementsJSON})

	_, err := New(server.APIClient(), "").PlayerAchievements(context.Background(), steamid.New(testSID),
		testAppID, LanguageOptions{})
	require.ErrorIs(t, err, webapi.ErrMissingAPIKey)
	require.Empty(t, server.Queries(getPlayerAchievementsPath))
}

func TestSchemaForGame(t *testing.T) {
	client, server := newTestClient(t)

	result, err := client.SchemaForGame(context.Background(), testAppID, LanguageOptions{Language: ptr.To("en")})
	require.NoError(t, err)
	require.Equal(t, SchemaForGameResponse{Game: GameSchema{
		GameName:    "[STAGING] DotA 2",
		GameVersion: "11",
		AvailableGameStats: GameSchemaStats{
			Stats: []SchemaStat{{Name: "DOTA_SHOW_FULL_UI"}},
		},
	}}, result)

	query := server.LastQuery(getSchemaForGamePath)
	require.Equal(t, testKey, query.Get("key"))
	require.Equal(t, "en", query.Get("l"))
}

func TestUserStatsForGame(t *testing.T) {
	client, server := newTestClient(t)

	result, err := client.UserStatsForGame(context.Background(), steamid.New(testSID), testAppID)
	require.NoError(t, err)
	require.Equal(t, UserStatsForGameResponse{PlayerStats: UserStats{
		SteamID:  testSID,
		GameName: "Fall Guys",
		Achievements: []UserAchievement{
			{Name: "ACH_GRAB_PLAYER", Achieved: 1},
			{Name: "ACH_QUALIFY_1_ROUND", Achieved: 1},
		},
	}}, result)
	require.Equal(t, steamid.New(testSID), result.PlayerStats.SID())
	require.False(t, server.LastQuery(getUserStatsForGamePath).Has("l"))
}

func TestUserStatsForGameInvalidSteamID(t *testing.T) {
	client, server := newTestClient(t)

	_, err := client.UserStatsForGame(context.Background(), steamid.New("invalid"), testAppID)
	require.ErrorIs(t, err, webapi.ErrInvalidSteamID)
	require.Empty(t, server.Queries(getUserStatsForGamePath))
}

func TestUserStatsForGameMissingAchievements(t *testing.T) {
	client, server := newTestClient(t)
	server.Respond(getUserStatsForGamePath, http.StatusOK,
		`{"playerstats":{"steamID":"76561197960435530","gameName":"Fall Guys"}}`)

	_, err := client.UserStatsForGame(context.Background(), steamid.New(testSID), testAppID)
	require.ErrorIs(t, err, webapi.ErrDecode)
}
