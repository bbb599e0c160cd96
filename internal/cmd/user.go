package cmd

import (
	"strconv"

	"github.com/leighmacdonald/steamwebapi/pkg/ptr"
	"github.com/leighmacdonald/steamwebapi/pkg/user"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func userCmd(app *cli) *cobra.Command {
	userCmd := &cobra.Command{
		Use:   "user",
		Short: "ISteamUser lookups, requires a WebAPI key",
	}

	userCmd.AddCommand(
		userFriendsCmd(app),
		userBansCmd(app),
		userSummariesCmd(app),
		userGroupsCmd(app),
		userResolveCmd(app),
	)

	return userCmd
}

func userFriendsCmd(app *cli) *cobra.Command {
	var relationship string

	friendsCmd := &cobra.Command{
		Use:   "friends <steamid>",
		Short: "List the friends of a public profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sid, errSID := app.resolveSteamID(cmd, args[0])
			if errSID != nil {
				return errSID
			}

			friends, errFriends := app.api.User().FriendList(cmd.Context(), sid, user.Relationship(relationship))
			if errFriends != nil {
				return errFriends
			}

			return app.write(cmd, friends, func(table *tablewriter.Table) error {
				table.Header("Steam ID", "Relationship", "Friends Since")

				rows := make([][]string, 0, len(friends.FriendsList.Friends))
				for _, friend := range friends.FriendsList.Friends {
					rows = append(rows, []string{friend.SteamID, string(friend.Relationship), relativeTime(friend.FriendSince)})
				}

				return table.Bulk(rows)
			})
		},
	}

	friendsCmd.Flags().StringVarP(&relationship, "relationship", "r", string(user.RelationshipAll), "all or friend")

	return friendsCmd
}

func userBansCmd(app *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "bans <steamid>...",
		Short: "Show the VAC, game, community and economy bans of players",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sids, errSIDs := app.resolveSteamIDs(cmd, args)
			if errSIDs != nil {
				return errSIDs
			}

			bans, errBans := app.api.User().PlayerBans(cmd.Context(), sids)
			if errBans != nil {
				return errBans
			}

			return app.write(cmd, bans, func(table *tablewriter.Table) error {
				table.Header("Steam ID", "VAC", "Game", "Community", "Economy", "Days Since")

				rows := make([][]string, 0, len(bans.Players))
				for _, ban := range bans.Players {
					rows = append(rows, []string{
						ban.SteamID,
						strconv.Itoa(ban.NumberOfVACBans),
						strconv.Itoa(ban.NumberOfGameBans),
						strconv.FormatBool(ban.CommunityBanned),
						ban.EconomyBan,
						strconv.Itoa(ban.DaysSinceLastBan),
					})
				}

				return table.Bulk(rows)
			})
		},
	}
}

func userSummariesCmd(app *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "summaries <steamid>...",
		Short: "Show the profile summaries of players",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sids, errSIDs := app.resolveSteamIDs(cmd, args)
			if errSIDs != nil {
				return errSIDs
			}

			summaries, errSummaries := app.api.User().PlayerSummaries(cmd.Context(), sids)
			if errSummaries != nil {
				return errSummaries
			}

			return app.write(cmd, summaries, func(table *tablewriter.Table) error {
				table.Header("Steam ID", "Name", "Real Name", "Country", "Created", "Last Logoff", "Playing")

				rows := make([][]string, 0, len(summaries.Response.Players))
				for _, player := range summaries.Response.Players {
					rows = append(rows, []string{
						player.SteamID,
						player.PersonaName,
						ptr.Or(player.RealName, ""),
						ptr.Or(player.LocCountryCode, ""),
						relativeTimePtr(player.TimeCreated),
						relativeTimePtr(player.LastLogoff),
						ptr.Or(player.GameExtraInfo, ""),
					})
				}

				return table.Bulk(rows)
			})
		},
	}
}

func userGroupsCmd(app *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "groups <steamid>",
		Short: "List the groups a player is a member of",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sid, errSID := app.resolveSteamID(cmd, args[0])
			if errSID != nil {
				return errSID
			}

			groups, errGroups := app.api.User().UserGroupList(cmd.Context(), sid)
			if errGroups != nil {
				return errGroups
			}

			return app.write(cmd, groups, func(table *tablewriter.Table) error {
				table.Header("Group ID")

				rows := make([][]string, 0, len(groups.Response.Groups))
				for _, group := range groups.Response.Groups {
					rows = append(rows, []string{group.GID})
				}

				return table.Bulk(rows)
			})
		},
	}
}

func userResolveCmd(app *cli) *cobra.Command {
	var urlType int

	resolveCmd := &cobra.Command{
		Use:   "resolve <vanity>",
		Short: "Resolve a custom profile url to a steam id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := user.VanityOptions{}
			if cmd.Flags().Changed("type") {
				opts.URLType = ptr.To(user.VanityURLType(urlType))
			}

			resolved, errResolve := app.api.User().ResolveVanityURL(cmd.Context(), args[0], opts)
			if errResolve != nil {
				return errResolve
			}

			return app.write(cmd, resolved, func(table *tablewriter.Table) error {
				table.Header("Success", "Steam ID", "Message")

				return table.Append([]string{
					strconv.Itoa(resolved.Response.Success),
					ptr.Or(resolved.Response.SteamID, ""),
					ptr.Or(resolved.Response.Message, ""),
				})
			})
		},
	}

	resolveCmd.Flags().IntVar(&urlType, "type", int(user.VanityIndividual), "1 individual, 2 group, 3 game group")

	return resolveCmd
}
