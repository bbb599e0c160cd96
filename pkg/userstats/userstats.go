// Package userstats wraps the ISteamUserStats interface.
//
// https://partner.steamgames.com/doc/webapi/ISteamUserStats
package userstats

import (
	"context"

	"github.com/leighmacdonald/steamid/v4/steamid"
	"github.com/leighmacdonald/steamwebapi/pkg/webapi"
)

const (
	getGlobalAchievementPercentagesPath = "/ISteamUserStats/GetGlobalAchievementPercentagesForApp/v2"
	getGlobalStatsForGamePath           = "/ISteamUserStats/GetGlobalStatsForGame/v1"
	getNumberOfCurrentPlayersPath       = "/ISteamUserStats/GetNumberOfCurrentPlayers/v1"
	getPlayerAchievementsPath           = "/ISteamUserStats/GetPlayerAchievements/v1"
	getSchemaForGamePath                = "/ISteamUserStats/GetSchemaForGame/v2"
	getUserStatsForGamePath             = "/ISteamUserStats/GetUserStatsForGame/v2"
)

type Client struct {
	api    *webapi.Client
	apiKey string
}

// New creates the facade. apiKey may be empty when only the anonymous endpoints are used.
func New(api *webapi.Client, apiKey string) *Client {
	return &Client{api: api, apiKey: apiKey}
}

// LanguageOptions selects the language of localized names and descriptions.
type LanguageOptions struct {
	// Language is an ISO639-1 code, e.g. "en" or "de".
	Language *string `url:"l,omitempty"`
}

type GlobalStatsOptions struct {
	// StartDate and EndDate bound the aggregation window as unix timestamps.
	StartDate *int64 `url:"startdate,omitempty"`
	EndDate   *int64 `url:"enddate,omitempty"`
}

type gameIDRequest struct {
	GameID webapi.AppID `url:"gameid"`
}

type appIDRequest struct {
	AppID webapi.AppID `url:"appid"`
}

type globalStatsRequest struct {
	AppID webapi.AppID               `url:"appid"`
	Count int                        `url:"count"`
	Names webapi.IndexedList[string] `url:"name,omitempty"`
	GlobalStatsOptions
}

type keyedAppRequest struct {
	Key   string       `url:"key"`
	AppID webapi.AppID `url:"appid"`
	LanguageOptions
}

type playerAppRequest struct {
	Key     string       `url:"key"`
	SteamID string       `url:"steamid"`
	AppID   webapi.AppID `url:"appid"`
	LanguageOptions
}

// GlobalAchievementPercentages returns the share of players holding each achievement of appID.
func (c *Client) GlobalAchievementPercentages(ctx context.Context, appID webapi.AppID) (GlobalAchievementPercentagesResponse, error) {
	return webapi.Get[GlobalAchievementPercentagesResponse](ctx, c.api, getGlobalAchievementPercentagesPath,
		gameIDRequest{GameID: appID})
}

// GlobalStatsForGame returns the aggregated values of the named global stats. Only stats flagged as
// aggregated by the developer are available.
func (c *Client) GlobalStatsForGame(ctx context.Context, appID webapi.AppID, names []string, opts GlobalStatsOptions) (GlobalStatsResponse, error) {
	return webapi.Get[GlobalStatsResponse](ctx, c.api, getGlobalStatsForGamePath, globalStatsRequest{
		AppID:              appID,
		Count:              len(names),
		Names:              names,
		GlobalStatsOptions: opts,
	})
}

func (c *Client) NumberOfCurrentPlayers(ctx context.Context, appID webapi.AppID) (CurrentPlayersResponse, error) {
	return webapi.Get[CurrentPlayersResponse](ctx, c.api, getNumberOfCurrentPlayersPath, appIDRequest{AppID: appID})
}

// PlayerAchievements lists the achievements of sid for appID. The profile must be public.
func (c *Client) PlayerAchievements(ctx context.Context, sid steamid.SteamID, appID webapi.AppID, opts LanguageOptions) (PlayerAchievementsResponse, error) {
	req, errReq := c.playerAppRequest(sid, appID, opts)
	if errReq != nil {
		return PlayerAchievementsResponse{}, errReq
	}

	return webapi.Get[PlayerAchievementsResponse](ctx, c.api, getPlayerAchievementsPath, req)
}

// SchemaForGame returns the achievement and stat definitions of appID.
func (c *Client) SchemaForGame(ctx context.Context, appID webapi.AppID, opts LanguageOptions) (SchemaForGameResponse, error) {
	if errKey := webapi.RequireKey(c.apiKey); errKey != nil {
		return SchemaForGameResponse{}, errKey
	}

	return webapi.Get[SchemaForGameResponse](ctx, c.api, getSchemaForGamePath, keyedAppRequest{
		Key:             c.apiKey,
		AppID:           appID,
		LanguageOptions: opts,
	})
}

func (c *Client) UserStatsForGame(ctx context.Context, sid steamid.SteamID, appID webapi.AppID) (UserStatsForGameResponse, error) {
	req, errReq := c.playerAppRequest(sid, appID, LanguageOptions{})
	if errReq != nil {
		return UserStatsForGameResponse{}, errReq
	}

	return webapi.Get[UserStatsForGameResponse](ctx, c.api, getUserStatsForGamePath, req)
}

func (c *Client) playerAppRequest(sid steamid.SteamID, appID webapi.AppID, opts LanguageOptions) (playerAppRequest, error) {
	value, errSID := webapi.KeyedSteamID(c.apiKey, sid)
	if errSID != nil {
		return playerAppRequest{}, errSID
	}

	return playerAppRequest{Key: c.apiKey, SteamID: value, AppID: appID, LanguageOptions: opts}, nil
}
