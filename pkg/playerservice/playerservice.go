// Package playerservice wraps the IPlayerService interface. Every endpoint requires a WebAPI key and
// returns its payload in a "response" envelope.
//
// https://partner.steamgames.com/doc/webapi/IPlayerService
package playerservice

import (
	"context"

	"github.com/leighmacdonald/steamid/v4/steamid"
	"github.com/leighmacdonald/steamwebapi/pkg/webapi"
)

const (
	getRecentlyPlayedGamesPath    = "/IPlayerService/GetRecentlyPlayedGames/v1"
	getOwnedGamesPath             = "/IPlayerService/GetOwnedGames/v1"
	getSteamLevelPath             = "/IPlayerService/GetSteamLevel/v1"
	getBadgesPath                 = "/IPlayerService/GetBadges/v1"
	getCommunityBadgeProgressPath = "/IPlayerService/GetCommunityBadgeProgress/v1"
	isPlayingSharedGamePath       = "/IPlayerService/IsPlayingSharedGame/v1"
)

type Client struct {
	api    *webapi.Client
	apiKey string
}

func New(api *webapi.Client, apiKey string) *Client {
	return &Client{api: api, apiKey: apiKey}
}

type RecentlyPlayedOptions struct {
	// Count limits the number of games returned.
	Count *int `url:"count,omitempty"`
}

type OwnedGamesOptions struct {
	// IncludeAppInfo adds the name and artwork of each game.
	IncludeAppInfo *bool `url:"include_appinfo,omitempty"`
	// IncludePlayedFreeGames adds free games the player has launched.
	IncludePlayedFreeGames *bool `url:"include_played_free_games,omitempty"`
	// AppIDsFilter restricts the result to the listed apps.
	AppIDsFilter webapi.IndexedList[webapi.AppID] `url:"appids_filter,omitempty"`
}

type BadgeProgressOptions struct {
	// BadgeID selects the badge, the server defaults to the community badge.
	BadgeID *int `url:"badgeid,omitempty"`
}

type playerRequest struct {
	Key     string `url:"key"`
	SteamID string `url:"steamid"`
}

type recentlyPlayedRequest struct {
	playerRequest
	RecentlyPlayedOptions
}

type ownedGamesRequest struct {
	playerRequest
	OwnedGamesOptions
}

type badgeProgressRequest struct {
	playerRequest
	BadgeProgressOptions
}

type sharedGameRequest struct {
	playerRequest
	AppIDPlaying webapi.AppID `url:"appid_playing"`
}

// RecentlyPlayedGames lists the games sid played in the last two weeks.
func (c *Client) RecentlyPlayedGames(ctx context.Context, sid steamid.SteamID, opts RecentlyPlayedOptions) (RecentlyPlayedGamesResponse, error) {
	req, errReq := c.playerRequest(sid)
	if errReq != nil {
		return RecentlyPlayedGamesResponse{}, errReq
	}

	return webapi.Get[RecentlyPlayedGamesResponse](ctx, c.api, getRecentlyPlayedGamesPath, recentlyPlayedRequest{
		playerRequest:         req,
		RecentlyPlayedOptions: opts,
	})
}

// OwnedGames lists the games owned by sid. Private profiles decode with a nil GameCount and no games.
func (c *Client) OwnedGames(ctx context.Context, sid steamid.SteamID, opts OwnedGamesOptions) (OwnedGamesResponse, error) {
	req, errReq := c.playerRequest(sid)
	if errReq != nil {
		return OwnedGamesResponse{}, errReq
	}

	return webapi.Get[OwnedGamesResponse](ctx, c.api, getOwnedGamesPath, ownedGamesRequest{
		playerRequest:     req,
		OwnedGamesOptions: opts,
	})
}

func (c *Client) SteamLevel(ctx context.Context, sid steamid.SteamID) (SteamLevelResponse, error) {
	req, errReq := c.playerRequest(sid)
	if errReq != nil {
		return SteamLevelResponse{}, errReq
	}

	return webapi.Get[SteamLevelResponse](ctx, c.api, getSteamLevelPath, req)
}

// Badges returns the badges of sid along with its level and experience.
func (c *Client) Badges(ctx context.Context, sid steamid.SteamID) (BadgesResponse, error) {
	req, errReq := c.playerRequest(sid)
	if errReq != nil {
		return BadgesResponse{}, errReq
	}

	return webapi.Get[BadgesResponse](ctx, c.api, getBadgesPath, req)
}

// CommunityBadgeProgress returns the quest completion state of a badge.
func (c *Client) CommunityBadgeProgress(ctx context.Context, sid steamid.SteamID, opts BadgeProgressOptions) (BadgeProgressResponse, error) {
	req, errReq := c.playerRequest(sid)
	if errReq != nil {
		return BadgeProgressResponse{}, errReq
	}

	return webapi.Get[BadgeProgressResponse](ctx, c.api, getCommunityBadgeProgressPath, badgeProgressRequest{
		playerRequest:        req,
		BadgeProgressOptions: opts,
	})
}

// IsPlayingSharedGame reports the owner of appIDPlaying when sid is playing it through family sharing.
func (c *Client) IsPlayingSharedGame(ctx context.Context, sid steamid.SteamID, appIDPlaying webapi.AppID) (SharedGameResponse, error) {
	req, errReq := c.playerRequest(sid)
	if errReq != nil {
		return SharedGameResponse{}, errReq
	}

	return webapi.Get[SharedGameResponse](ctx, c.api, isPlayingSharedGamePath, sharedGameRequest{
		playerRequest: req,
		AppIDPlaying:  appIDPlaying,
	})
}

func (c *Client) playerRequest(sid steamid.SteamID) (playerRequest, error) {
	value, errSID := webapi.KeyedSteamID(c.apiKey, sid)
	if errSID != nil {
		return playerRequest{}, errSID
	}

	return playerRequest{Key: c.apiKey, SteamID: value}, nil
}
