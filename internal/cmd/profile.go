package cmd

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/leighmacdonald/steamid/v4/steamid"
	"github.com/leighmacdonald/steamwebapi/pkg/log"
	"github.com/leighmacdonald/steamwebapi/pkg/ptr"
	"github.com/leighmacdonald/steamwebapi/pkg/user"
	"github.com/leighmacdonald/steamwebapi/pkg/webapi"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var ErrNoSummary = errors.New("no profile summary returned")

// Profile combines the results of several interfaces for one player.
type Profile struct {
	Summary user.PlayerSummary `json:"summary"`
	Bans    *user.PlayerBan    `json:"bans"`
	Level   int                `json:"level"`
	// Friends is nil when the friend list is private.
	Friends *int `json:"friends"`
}

func profileCmd(app *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "profile <steamid>",
		Short: "Summary, bans, level and friend count of a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sid, errSID := app.resolveSteamID(cmd, args[0])
			if errSID != nil {
				return errSID
			}

			var profile Profile

			errGroup, errCtx := errgroup.WithContext(cmd.Context())

			errGroup.Go(func() error {
				summaries, errSummaries := app.api.User().PlayerSummaries(errCtx, steamid.Collection{sid})
				if errSummaries != nil {
					return errSummaries
				}

				if len(summaries.Response.Players) == 0 {
					return ErrNoSummary
				}

				profile.Summary = summaries.Response.Players[0]

				return nil
			})

			errGroup.Go(func() error {
				bans, errBans := app.api.User().PlayerBans(errCtx, steamid.Collection{sid})
				if errBans != nil {
					return errBans
				}

				if len(bans.Players) > 0 {
					profile.Bans = &bans.Players[0]
				}

				return nil
			})

			errGroup.Go(func() error {
				level, errLevel := app.api.PlayerService().SteamLevel(errCtx, sid)
				if errLevel != nil {
					return errLevel
				}

				profile.Level = level.Response.PlayerLevel

				return nil
			})

			errGroup.Go(func() error {
				friends, errFriends := app.api.User().FriendList(errCtx, sid, user.RelationshipFriend)
				if errFriends != nil {
					var statusErr *webapi.HTTPStatusError
					if errors.As(errFriends, &statusErr) && statusErr.StatusCode == http.StatusUnauthorized {
						slog.Debug("Friend list is private", slog.String("steam_id", sid.String()))

						return nil
					}

					return errFriends
				}

				profile.Friends = ptr.To(len(friends.FriendsList.Friends))

				return nil
			})

			if errWait := errGroup.Wait(); errWait != nil {
				slog.Error("Failed to fetch profile", log.ErrAttr(errWait))

				return errWait
			}

			return app.write(cmd, profile, func(table *tablewriter.Table) error {
				friends := "private"
				if profile.Friends != nil {
					friends = strconv.Itoa(*profile.Friends)
				}

				vacBans, gameBans := "", ""
				if profile.Bans != nil {
					vacBans = strconv.Itoa(profile.Bans.NumberOfVACBans)
					gameBans = strconv.Itoa(profile.Bans.NumberOfGameBans)
				}

				table.Header("Steam ID", "Name", "Level", "Friends", "VAC Bans", "Game Bans", "Created")

				return table.Append([]string{
					profile.Summary.SteamID,
					profile.Summary.PersonaName,
					strconv.Itoa(profile.Level),
					friends,
					vacBans,
					gameBans,
					relativeTimePtr(profile.Summary.TimeCreated),
				})
			})
		},
	}
}
