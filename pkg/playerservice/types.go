package playerservice

import (
	"time"

	"github.com/leighmacdonald/steamid/v4/steamid"
	"github.com/leighmacdonald/steamwebapi/pkg/webapi"
)

type RecentlyPlayedGamesResponse struct {
	Response RecentlyPlayedGames `json:"response"`
}

// RecentlyPlayedGames is sent as an empty object for private profiles, TotalCount is nil then.
type RecentlyPlayedGames struct {
	TotalCount *int64 `json:"total_count"`
	// Games is left out when nothing was played recently.
	Games []RecentlyPlayedGame `json:"games,omitempty"`
}

// Playtime values are in minutes.
type RecentlyPlayedGame struct {
	AppID                  webapi.AppID `json:"appid"`
	Name                   string       `json:"name"`
	Playtime2Weeks         int          `json:"playtime_2weeks"`
	PlaytimeForever        int          `json:"playtime_forever"`
	ImgIconURL             string       `json:"img_icon_url"`
	ImgLogoURL             *string      `json:"img_logo_url"`
	PlaytimeWindowsForever int64        `json:"playtime_windows_forever"`
	PlaytimeMacForever     int64        `json:"playtime_mac_forever"`
	PlaytimeLinuxForever   int64        `json:"playtime_linux_forever"`
	PlaytimeDeckForever    *int64       `json:"playtime_deck_forever"`
}

type OwnedGamesResponse struct {
	Response OwnedGames `json:"response"`
}

// OwnedGames is sent as an empty object for private profiles, GameCount is nil then.
type OwnedGames struct {
	GameCount *int64      `json:"game_count"`
	Games     []OwnedGame `json:"games,omitempty"`
}

// OwnedGame playtime values are in minutes. Name, ImgIconURL and HasCommunityVisibleStats are only sent when
// app info was requested.
type OwnedGame struct {
	AppID                    webapi.AppID `json:"appid"`
	Name                     *string      `json:"name"`
	ImgIconURL               *string      `json:"img_icon_url"`
	HasCommunityVisibleStats *bool        `json:"has_community_visible_stats"`
	PlaytimeForever          int64        `json:"playtime_forever"`
	Playtime2Weeks           *int64       `json:"playtime_2weeks"`
	PlaytimeWindowsForever   int64        `json:"playtime_windows_forever"`
	PlaytimeMacForever       int64        `json:"playtime_mac_forever"`
	PlaytimeLinuxForever     int64        `json:"playtime_linux_forever"`
	PlaytimeDeckForever      *int64       `json:"playtime_deck_forever"`
	RTimeLastPlayed          *int64       `json:"rtime_last_played"`
}

// LastPlayed returns the zero time when the server did not report it.
func (g OwnedGame) LastPlayed() time.Time {
	if g.RTimeLastPlayed == nil || *g.RTimeLastPlayed == 0 {
		return time.Time{}
	}

	return time.Unix(*g.RTimeLastPlayed, 0).UTC()
}

func (g OwnedGame) Playtime() time.Duration {
	return time.Duration(g.PlaytimeForever) * time.Minute
}

type SteamLevelResponse struct {
	Response SteamLevel `json:"response"`
}

type SteamLevel struct {
	PlayerLevel int `json:"player_level"`
}

type BadgesResponse struct {
	Response Badges `json:"response"`
}

// Badges is sent as an empty object for private profiles.
type Badges struct {
	Badges                     []Badge `json:"badges,omitempty"`
	PlayerXP                   *int64  `json:"player_xp"`
	PlayerLevel                *int64  `json:"player_level"`
	PlayerXPNeededToLevelUp    *int64  `json:"player_xp_needed_to_level_up"`
	PlayerXPNeededCurrentLevel *int64  `json:"player_xp_needed_current_level"`
}

type Badge struct {
	BadgeID        int64 `json:"badgeid"`
	Level          int64 `json:"level"`
	CompletionTime int64 `json:"completion_time"`
	XP             int64 `json:"xp"`
	Scarcity       int64 `json:"scarcity"`
	// Game badges carry the app and the crafted item.
	AppID           *webapi.AppID `json:"appid"`
	CommunityItemID *string       `json:"communityitemid"`
	BorderColor     *int          `json:"border_color"`
}

func (b Badge) Completed() time.Time {
	return time.Unix(b.CompletionTime, 0).UTC()
}

type BadgeProgressResponse struct {
	Response QuestList `json:"response"`
}

type QuestList struct {
	Quests []Quest `json:"quests"`
}

type Quest struct {
	QuestID   int64 `json:"questid"`
	Completed bool  `json:"completed"`
}

type SharedGameResponse struct {
	Response SharedGame `json:"response"`
}

type SharedGame struct {
	// LenderSteamID is "0" when the game is owned by the player.
	LenderSteamID string `json:"lender_steamid"`
}

func (s SharedGame) Shared() bool {
	return s.LenderSteamID != "" && s.LenderSteamID != "0"
}

func (s SharedGame) LenderSID() steamid.SteamID {
	return steamid.New(s.LenderSteamID)
}
