// Package apps wraps the ISteamApps interface.
//
// https://partner.steamgames.com/doc/webapi/ISteamApps
package apps

import (
	"context"

	"github.com/leighmacdonald/steamwebapi/pkg/webapi"
)

const (
	getAppListPath    = "/ISteamApps/GetAppList/v2"
	upToDateCheckPath = "/ISteamApps/UpToDateCheck/v1"
)

type Client struct {
	api *webapi.Client
}

func New(api *webapi.Client) *Client {
	return &Client{api: api}
}

// AppList returns every publicly facing program in the store/library.
func (c *Client) AppList(ctx context.Context) (AppListResponse, error) {
	return webapi.Get[AppListResponse](ctx, c.api, getAppListPath, nil)
}

type upToDateCheckRequest struct {
	AppID   webapi.AppID `url:"appid"`
	Version string       `url:"version"`
}

// UpToDateCheck checks if version is the most current available version of appID.
func (c *Client) UpToDateCheck(ctx context.Context, appID webapi.AppID, version string) (UpToDateCheckResponse, error) {
	return webapi.Get[UpToDateCheckResponse](ctx, c.api, upToDateCheckPath, upToDateCheckRequest{
		AppID:   appID,
		Version: version,
	})
}
