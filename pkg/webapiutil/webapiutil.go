// Package webapiutil wraps the ISteamWebAPIUtil interface, which describes the WebAPI itself.
//
// https://partner.steamgames.com/doc/webapi/ISteamWebAPIUtil
package webapiutil

import (
	"context"

	"github.com/leighmacdonald/steamwebapi/pkg/webapi"
)

const (
	getServerInfoPath       = "/ISteamWebAPIUtil/GetServerInfo/v1"
	getSupportedAPIListPath = "/ISteamWebAPIUtil/GetSupportedAPIList/v1"
)

// Client exposes the ISteamWebAPIUtil endpoints. Neither endpoint needs an api key.
type Client struct {
	api *webapi.Client
}

func New(api *webapi.Client) *Client {
	return &Client{api: api}
}

// ServerInfo returns the WebAPI server time, doubling as a status check.
func (c *Client) ServerInfo(ctx context.Context) (ServerInfo, error) {
	return webapi.Get[ServerInfo](ctx, c.api, getServerInfoPath, nil)
}

// SupportedAPIList lists the interfaces and methods callable without a key.
func (c *Client) SupportedAPIList(ctx context.Context) (SupportedAPIList, error) {
	return webapi.Get[SupportedAPIList](ctx, c.api, getSupportedAPIListPath, nil)
}
