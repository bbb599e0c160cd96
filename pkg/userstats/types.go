package userstats

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/leighmacdonald/steamid/v4/steamid"
)

var ErrInvalidPercent = errors.New("invalid percent value")

// Percent is a percentage in the range 0-100. The server sends it either as a number or as a quoted number
// depending on the revision.
type Percent float64

func (p *Percent) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	data = bytes.Trim(data, `"`)

	value, errParse := strconv.ParseFloat(string(data), 64)
	if errParse != nil {
		return errors.Join(errParse, ErrInvalidPercent)
	}

	*p = Percent(value)

	return nil
}

type GlobalAchievementPercentagesResponse struct {
	AchievementPercentages GlobalAchievementList `json:"achievementpercentages"`
}

type GlobalAchievementList struct {
	Achievements []GlobalAchievement `json:"achievements"`
}

type GlobalAchievement struct {
	Name    string  `json:"name"`
	Percent Percent `json:"percent"`
}

type GlobalStatsResponse struct {
	Response GlobalStats `json:"response"`
}

type GlobalStats struct {
	Result int `json:"result"`
	// GlobalStats is kept verbatim, its shape depends on the requested stat names.
	GlobalStats json.RawMessage `json:"globalstats"`
}

type CurrentPlayersResponse struct {
	Response CurrentPlayers `json:"response"`
}

type CurrentPlayers struct {
	PlayerCount int64 `json:"player_count"`
	Result      int   `json:"result"`
}

type PlayerAchievementsResponse struct {
	PlayerStats PlayerAchievements `json:"playerstats"`
}

type PlayerAchievements struct {
	SteamID      string              `json:"steamID"`
	GameName     string              `json:"gameName"`
	Achievements []PlayerAchievement `json:"achievements"`
	Success      bool                `json:"success"`
}

func (p PlayerAchievements) SID() steamid.SteamID {
	return steamid.New(p.SteamID)
}

type PlayerAchievement struct {
	APIName    string `json:"apiname"`
	Achieved   int    `json:"achieved"`
	UnlockTime int64  `json:"unlocktime"`
	// Name and Description are only sent when a language was requested.
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (a PlayerAchievement) Unlocked() bool {
	return a.Achieved == 1
}

// UnlockedAt returns the unlock time, the zero time when the achievement is locked.
func (a PlayerAchievement) UnlockedAt() time.Time {
	if !a.Unlocked() || a.UnlockTime == 0 {
		return time.Time{}
	}

	return time.Unix(a.UnlockTime, 0).UTC()
}

type SchemaForGameResponse struct {
	Game GameSchema `json:"game"`
}

type GameSchema struct {
	GameName           string          `json:"gameName"`
	GameVersion        string          `json:"gameVersion"`
	AvailableGameStats GameSchemaStats `json:"availableGameStats"`
}

// GameSchemaStats lists are left out by the server when a game defines none.
type GameSchemaStats struct {
	Achievements []SchemaAchievement `json:"achievements,omitempty"`
	Stats        []SchemaStat        `json:"stats,omitempty"`
}

type SchemaAchievement struct {
	Name         string `json:"name"`
	DefaultValue int    `json:"defaultvalue"`
	DisplayName  string `json:"displayName"`
	Hidden       int    `json:"hidden"`
	// Description is withheld for some hidden achievements.
	Description *string `json:"description"`
	Icon        string  `json:"icon"`
	IconGray    string  `json:"icongray"`
}

type SchemaStat struct {
	Name         string  `json:"name"`
	DefaultValue float64 `json:"defaultvalue"`
	DisplayName  string  `json:"displayName"`
}

type UserStatsForGameResponse struct {
	PlayerStats UserStats `json:"playerstats"`
}

type UserStats struct {
	SteamID      string            `json:"steamID"`
	GameName     string            `json:"gameName"`
	Achievements []UserAchievement `json:"achievements"`
	Stats        []UserStat        `json:"stats,omitempty"`
}

func (u UserStats) SID() steamid.SteamID {
	return steamid.New(u.SteamID)
}

type UserAchievement struct {
	Name     string `json:"name"`
	Achieved int    `json:"achieved"`
}

func (a UserAchievement) Unlocked() bool {
	return a.Achieved == 1
}

type UserStat struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}
