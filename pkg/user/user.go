// Package user wraps the ISteamUser interface. Every endpoint requires a WebAPI key.
//
// https://partner.steamgames.com/doc/webapi/ISteamUser
package user

import (
	"context"

	"github.com/leighmacdonald/steamid/v4/steamid"
	"github.com/leighmacdonald/steamwebapi/pkg/webapi"
)

const (
	getFriendListPath      = "/ISteamUser/GetFriendList/v1"
	getPlayerBansPath      = "/ISteamUser/GetPlayerBans/v1"
	getPlayerSummariesPath = "/ISteamUser/GetPlayerSummaries/v2"
	getUserGroupListPath   = "/ISteamUser/GetUserGroupList/v1"
	resolveVanityURLPath   = "/ISteamUser/ResolveVanityURL/v1"
)

type Client struct {
	api    *webapi.Client
	apiKey string
}

func New(api *webapi.Client, apiKey string) *Client {
	return &Client{api: api, apiKey: apiKey}
}

type steamIDRequest struct {
	Key     string `url:"key"`
	SteamID string `url:"steamid"`
}

type steamIDsRequest struct {
	Key      string          `url:"key"`
	SteamIDs webapi.JSONList `url:"steamids"`
}

type friendListRequest struct {
	steamIDRequest
	Relationship Relationship `url:"relationship"`
}

// FriendList returns the friends of sid filtered by relationship. The list is only visible for public
// profiles.
func (c *Client) FriendList(ctx context.Context, sid steamid.SteamID, relationship Relationship) (FriendListResponse, error) {
	req, errReq := c.steamIDRequest(sid)
	if errReq != nil {
		return FriendListResponse{}, errReq
	}

	return webapi.Get[FriendListResponse](ctx, c.api, getFriendListPath, friendListRequest{
		steamIDRequest: req,
		Relationship:   relationship,
	})
}

// PlayerBans returns the ban and probation status of each steam id. This endpoint has no response envelope.
func (c *Client) PlayerBans(ctx context.Context, sids steamid.Collection) (PlayerBansResponse, error) {
	req, errReq := c.steamIDsRequest(sids)
	if errReq != nil {
		return PlayerBansResponse{}, errReq
	}

	return webapi.Get[PlayerBansResponse](ctx, c.api, getPlayerBansPath, req)
}

// PlayerSummaries returns the profile data of each steam id.
func (c *Client) PlayerSummaries(ctx context.Context, sids steamid.Collection) (PlayerSummariesResponse, error) {
	req, errReq := c.steamIDsRequest(sids)
	if errReq != nil {
		return PlayerSummariesResponse{}, errReq
	}

	return webapi.Get[PlayerSummariesResponse](ctx, c.api, getPlayerSummariesPath, req)
}

// UserGroupList lists the groups sid is a member of.
func (c *Client) UserGroupList(ctx context.Context, sid steamid.SteamID) (UserGroupListResponse, error) {
	req, errReq := c.steamIDRequest(sid)
	if errReq != nil {
		return UserGroupListResponse{}, errReq
	}

	return webapi.Get[UserGroupListResponse](ctx, c.api, getUserGroupListPath, req)
}

type VanityOptions struct {
	// URLType selects what kind of vanity url is resolved, the server defaults to VanityIndividual.
	URLType *VanityURLType `url:"url_type,omitempty"`
}

type resolveVanityURLRequest struct {
	Key       string `url:"key"`
	VanityURL string `url:"vanityurl"`
	VanityOptions
}

// ResolveVanityURL resolves the custom part of a community url, e.g. "gabelogannewell" for
// https://steamcommunity.com/id/gabelogannewell, to a 64bit steam id. A miss is reported in the response
// body (success 42), not as an error.
func (c *Client) ResolveVanityURL(ctx context.Context, vanityURL string, opts VanityOptions) (VanityURLResponse, error) {
	if errKey := webapi.RequireKey(c.apiKey); errKey != nil {
		return VanityURLResponse{}, errKey
	}

	return webapi.Get[VanityURLResponse](ctx, c.api, resolveVanityURLPath, resolveVanityURLRequest{
		Key:           c.apiKey,
		VanityURL:     vanityURL,
		VanityOptions: opts,
	})
}

func (c *Client) steamIDRequest(sid steamid.SteamID) (steamIDRequest, error) {
	value, errSID := webapi.KeyedSteamID(c.apiKey, sid)
	if errSID != nil {
		return steamIDRequest{}, errSID
	}

	return steamIDRequest{Key: c.apiKey, SteamID: value}, nil
}

func (c *Client) steamIDsRequest(sids steamid.Collection) (steamIDsRequest, error) {
	list, errList := webapi.KeyedSteamIDs(c.apiKey, sids)
	if errList != nil {
		return steamIDsRequest{}, errList
	}

	return steamIDsRequest{Key: c.apiKey, SteamIDs: list}, nil
}
