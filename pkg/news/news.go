// Package news wraps the ISteamNews interface.
//
// https://partner.steamgames.com/doc/webapi/ISteamNews
package news

import (
	"context"

	"github.com/leighmacdonald/steamwebapi/pkg/webapi"
)

const getNewsForAppPath = "/ISteamNews/GetNewsForApp/v2"

type Client struct {
	api *webapi.Client
}

func New(api *webapi.Client) *Client {
	return &Client{api: api}
}

// NewsOptions are all optional, unset fields are not sent and the server defaults apply.
type NewsOptions struct {
	// MaxLength truncates contents, 0 returns the full content.
	MaxLength *int `url:"maxlength,omitempty"`
	// EndDate only returns posts earlier than this unix timestamp.
	EndDate *int64 `url:"enddate,omitempty"`
	// Count is the number of posts to return, the server default is 20.
	Count *int `url:"count,omitempty"`
	// Feeds restricts results to the named feeds.
	Feeds webapi.CommaList `url:"feeds,omitempty"`
}

type newsForAppRequest struct {
	AppID webapi.AppID `url:"appid"`
	NewsOptions
}

// NewsForApp returns the latest news items for appID.
func (c *Client) NewsForApp(ctx context.Context, appID webapi.AppID, opts NewsOptions) (AppNewsResponse, error) {
	return webapi.Get[AppNewsResponse](ctx, c.api, getNewsForAppPath, newsForAppRequest{
		AppID:       appID,
		NewsOptions: opts,
	})
}
