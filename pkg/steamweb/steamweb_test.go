package steamweb_test

import (
	"context"
	"testing"

	"github.com/leighmacdonald/steamid/v4/steamid"
	"github.com/leighmacdonald/steamwebapi/internal/webapitest"
	"github.com/leighmacdonald/steamwebapi/pkg/news"
	"github.com/leighmacdonald/steamwebapi/pkg/steamweb"
	"github.com/leighmacdonald/steamwebapi/pkg/user"
	"github.com/leighmacdonald/steamwebapi/pkg/webapi"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	api := steamweb.New("", webapi.Config{})

	require.Equal(t, webapi.DefaultBaseURL, api.Client().BaseURL())
	require.NotNil(t, api.Apps())
	require.NotNil(t, api.News())
	require.NotNil(t, api.User())
	require.NotNil(t, api.UserStats())
	require.NotNil(t, api.PlayerService())
	require.NotNil(t, api.WebAPIUtil())
}

func TestSharedClient(t *testing.T) {
	server := webapitest.New(t, map[string]string{
		"/ISteamWebAPIUtil/GetServerInfo/v1": `{"servertime":1625396869,"servertimestring":"Sun Jul  4 04:07:49 2021"}`,
		"/ISteamNews/GetNewsForApp/v2":       `{"appnews":{"appid":440,"newsitems":[]}}`,
		"/IPlayerService/GetSteamLevel/v1":   `{"response":{"player_level":12}}`,
	})

	api := steamweb.NewWithClient("key", server.APIClient())
	ctx := context.Background()

	info, err := api.WebAPIUtil().ServerInfo(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1625396869), info.ServerTime)

	appNews, err := api.News().NewsForApp(ctx, 440, news.NewsOptions{})
	require.NoError(t, err)
	require.Empty(t, appNews.AppNews.NewsItems)

	level, err := api.PlayerService().SteamLevel(ctx, steamid.New("76561197960435530"))
	require.NoError(t, err)
	require.Equal(t, 12, level.Response.PlayerLevel)
	require.Equal(t, "key", server.LastQuery("/IPlayerService/GetSteamLevel/v1").Get("key"))
}

func TestMissingKey(t *testing.T) {
	server := webapitest.New(t, nil)
	api := steamweb.NewWithClient("", server.APIClient())
	sid := steamid.New("76561197960435530")

	_, errFriends := api.User().FriendList(context.Background(), sid, user.RelationshipAll)
	require.ErrorIs(t, errFriends, webapi.ErrMissingAPIKey)

	_, errStats := api.UserStats().UserStatsForGame(context.Background(), sid, 440)
	require.ErrorIs(t, errStats, webapi.ErrMissingAPIKey)

	_, errBadges := api.PlayerService().Badges(context.Background(), sid)
	require.ErrorIs(t, errBadges, webapi.ErrMissingAPIKey)
}
