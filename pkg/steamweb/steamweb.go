// Package steamweb bundles every interface facade behind a single entry point sharing one HTTP client.
package steamweb

import (
	"github.com/leighmacdonald/steamwebapi/pkg/apps"
	"github.com/leighmacdonald/steamwebapi/pkg/news"
	"github.com/leighmacdonald/steamwebapi/pkg/playerservice"
	"github.com/leighmacdonald/steamwebapi/pkg/user"
	"github.com/leighmacdonald/steamwebapi/pkg/userstats"
	"github.com/leighmacdonald/steamwebapi/pkg/webapi"
	"github.com/leighmacdonald/steamwebapi/pkg/webapiutil"
)

type SteamWebAPI struct {
	api           *webapi.Client
	apps          *apps.Client
	news          *news.Client
	user          *user.Client
	userStats     *userstats.Client
	playerService *playerservice.Client
	webAPIUtil    *webapiutil.Client
}

// New creates a client for the default or configured host. apiKey may be empty, in which case the keyed
// endpoints fail with webapi.ErrMissingAPIKey without sending a request.
func New(apiKey string, cfg webapi.Config) *SteamWebAPI {
	return NewWithClient(apiKey, webapi.New(cfg))
}

// NewWithClient builds the facades on top of an existing client.
func NewWithClient(apiKey string, api *webapi.Client) *SteamWebAPI {
	return &SteamWebAPI{
		api:           api,
		apps:          apps.New(api),
		news:          news.New(api),
		user:          user.New(api, apiKey),
		userStats:     userstats.New(api, apiKey),
		playerService: playerservice.New(api, apiKey),
		webAPIUtil:    webapiutil.New(api),
	}
}

func (s *SteamWebAPI) Client() *webapi.Client {
	return s.api
}

func (s *SteamWebAPI) Apps() *apps.Client {
	return s.apps
}

func (s *SteamWebAPI) News() *news.Client {
	return s.news
}

func (s *SteamWebAPI) User() *user.Client {
	return s.user
}

func (s *SteamWebAPI) UserStats() *userstats.Client {
	return s.userStats
}

func (s *SteamWebAPI) PlayerService() *playerservice.Client {
	return s.playerService
}

func (s *SteamWebAPI) WebAPIUtil() *webapiutil.Client {
	return s.webAPIUtil
}
