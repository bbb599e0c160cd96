package user

import (
	"time"

	"github.com/leighmacdonald/steamid/v4/steamid"
)

type Relationship string

const (
	RelationshipAll    Relationship = "all"
	RelationshipFriend Relationship = "friend"
)

type VanityURLType int

const (
	VanityIndividual VanityURLType = 1
	VanityGroup      VanityURLType = 2
	VanityGameGroup  VanityURLType = 3
)

// ResolveVanityURL result codes.
const (
	VanitySuccess = 1
	VanityNoMatch = 42
)

type FriendListResponse struct {
	FriendsList FriendsList `json:"friendslist"`
}

type FriendsList struct {
	Friends []Friend `json:"friends"`
}

type Friend struct {
	SteamID      string       `json:"steamid"`
	Relationship Relationship `json:"relationship"`
	// FriendSince is a unix timestamp, 0 for friendships older than the field.
	FriendSince int64 `json:"friend_since"`
}

func (f Friend) SID() steamid.SteamID {
	return steamid.New(f.SteamID)
}

func (f Friend) Since() time.Time {
	return time.Unix(f.FriendSince, 0).UTC()
}

type PlayerBansResponse struct {
	Players []PlayerBan `json:"players"`
}

type PlayerBan struct {
	SteamID          string `json:"SteamId"`
	CommunityBanned  bool   `json:"CommunityBanned"`
	VACBanned        bool   `json:"VACBanned"`
	NumberOfVACBans  int    `json:"NumberOfVACBans"`
	DaysSinceLastBan int    `json:"DaysSinceLastBan"`
	NumberOfGameBans int    `json:"NumberOfGameBans"`
	// EconomyBan is one of none, probation or banned.
	EconomyBan string `json:"EconomyBan"`
}

func (p PlayerBan) SID() steamid.SteamID {
	return steamid.New(p.SteamID)
}

type PlayerSummariesResponse struct {
	Response PlayerSummaries `json:"response"`
}

type PlayerSummaries struct {
	Players []PlayerSummary `json:"players"`
}

// PlayerSummary holds the public profile fields. Pointer fields are only sent for public profiles or when
// the player has filled them in.
type PlayerSummary struct {
	SteamID                  string  `json:"steamid"`
	CommunityVisibilityState int     `json:"communityvisibilitystate"`
	ProfileState             *int    `json:"profilestate"`
	PersonaName              string  `json:"personaname"`
	CommentPermission        *int    `json:"commentpermission"`
	ProfileURL               string  `json:"profileurl"`
	Avatar                   string  `json:"avatar"`
	AvatarMedium             string  `json:"avatarmedium"`
	AvatarFull               string  `json:"avatarfull"`
	AvatarHash               *string `json:"avatarhash"`
	LastLogoff               *int64  `json:"lastlogoff"`
	PersonaState             int     `json:"personastate"`
	RealName                 *string `json:"realname"`
	PrimaryClanID            *string `json:"primaryclanid"`
	TimeCreated              *int64  `json:"timecreated"`
	PersonaStateFlags        *int    `json:"personastateflags"`
	GameExtraInfo            *string `json:"gameextrainfo"`
	GameID                   *string `json:"gameid"`
	GameServerIP             *string `json:"gameserverip"`
	LocCountryCode           *string `json:"loccountrycode"`
	LocStateCode             *string `json:"locstatecode"`
	LocCityID                *int    `json:"loccityid"`
}

func (p PlayerSummary) SID() steamid.SteamID {
	return steamid.New(p.SteamID)
}

type UserGroupListResponse struct {
	Response UserGroupList `json:"response"`
}

type UserGroupList struct {
	Success bool        `json:"success"`
	Groups  []UserGroup `json:"groups"`
}

type UserGroup struct {
	GID string `json:"gid"`
}

type VanityURLResponse struct {
	Response VanityURL `json:"response"`
}

type VanityURL struct {
	Success int     `json:"success"`
	SteamID *string `json:"steamid"`
	Message *string `json:"message"`
}

// SID returns the resolved steam id, or an invalid id when the lookup missed.
func (v VanityURL) SID() steamid.SteamID {
	if v.SteamID == nil {
		return steamid.SteamID{}
	}

	return steamid.New(*v.SteamID)
}
