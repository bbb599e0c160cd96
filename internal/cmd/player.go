package cmd

import (
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/leighmacdonald/steamwebapi/pkg/playerservice"
	"github.com/leighmacdonald/steamwebapi/pkg/ptr"
	"github.com/leighmacdonald/steamwebapi/pkg/webapi"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func playerCmd(app *cli) *cobra.Command {
	playerCmd := &cobra.Command{
		Use:   "player",
		Short: "IPlayerService lookups, requires a WebAPI key",
	}

	playerCmd.AddCommand(
		playerRecentCmd(app),
		playerOwnedCmd(app),
		playerLevelCmd(app),
		playerBadgesCmd(app),
		playerBadgeProgressCmd(app),
		playerSharedCmd(app),
	)

	return playerCmd
}

func playerRecentCmd(app *cli) *cobra.Command {
	var count int

	recentCmd := &cobra.Command{
		Use:   "recent <steamid>",
		Short: "Games played in the last two weeks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sid, errSID := app.resolveSteamID(cmd, args[0])
			if errSID != nil {
				return errSID
			}

			opts := playerservice.RecentlyPlayedOptions{}
			if cmd.Flags().Changed("count") {
				opts.Count = ptr.To(count)
			}

			games, errGames := app.api.PlayerService().RecentlyPlayedGames(cmd.Context(), sid, opts)
			if errGames != nil {
				return errGames
			}

			return app.write(cmd, games, func(table *tablewriter.Table) error {
				table.Header("App ID", "Name", "Two Weeks", "Total")

				rows := make([][]string, 0, len(games.Response.Games))
				for _, game := range games.Response.Games {
					rows = append(rows, []string{
						game.AppID.String(),
						game.Name,
						playtime(int64(game.Playtime2Weeks)),
						playtime(int64(game.PlaytimeForever)),
					})
				}

				return table.Bulk(rows)
			})
		},
	}

	recentCmd.Flags().IntVarP(&count, "count", "c", 0, "Maximum number of games")

	return recentCmd
}

func playerOwnedCmd(app *cli) *cobra.Command {
	var (
		appInfo   bool
		freeGames bool
		appIDs    []string
	)

	ownedCmd := &cobra.Command{
		Use:   "owned <steamid>",
		Short: "Games owned by a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sid, errSID := app.resolveSteamID(cmd, args[0])
			if errSID != nil {
				return errSID
			}

			filter, errFilter := parseAppIDs(appIDs)
			if errFilter != nil {
				return errFilter
			}

			opts := playerservice.OwnedGamesOptions{
				IncludeAppInfo: ptr.To(appInfo),
				AppIDsFilter:   webapi.IndexedList[webapi.AppID](filter),
			}

			if cmd.Flags().Changed("free") {
				opts.IncludePlayedFreeGames = ptr.To(freeGames)
			}

			games, errGames := app.api.PlayerService().OwnedGames(cmd.Context(), sid, opts)
			if errGames != nil {
				return errGames
			}

			return app.write(cmd, games, func(table *tablewriter.Table) error {
				table.Header("App ID", "Name", "Playtime", "Last Played")

				rows := make([][]string, 0, len(games.Response.Games))
				for _, game := range games.Response.Games {
					lastPlayed := ""
					if !game.LastPlayed().IsZero() {
						lastPlayed = humanize.Time(game.LastPlayed())
					}

					rows = append(rows, []string{
						game.AppID.String(),
						ptr.Or(game.Name, ""),
						game.Playtime().String(),
						lastPlayed,
					})
				}

				return table.Bulk(rows)
			})
		},
	}

	flags := ownedCmd.Flags()
	flags.BoolVar(&appInfo, "app-info", true, "Include game names and artwork")
	flags.BoolVar(&freeGames, "free", false, "Include played free games")
	flags.StringSliceVar(&appIDs, "app", nil, "Only include these app ids")

	return ownedCmd
}

func playerLevelCmd(app *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "level <steamid>",
		Short: "Steam level of a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sid, errSID := app.resolveSteamID(cmd, args[0])
			if errSID != nil {
				return errSID
			}

			level, errLevel := app.api.PlayerService().SteamLevel(cmd.Context(), sid)
			if errLevel != nil {
				return errLevel
			}

			return app.write(cmd, level, func(table *tablewriter.Table) error {
				table.Header("Steam ID", "Level")

				return table.Append([]string{sid.String(), strconv.Itoa(level.Response.PlayerLevel)})
			})
		},
	}
}

func playerBadgesCmd(app *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "badges <steamid>",
		Short: "Badges, level and experience of a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sid, errSID := app.resolveSteamID(cmd, args[0])
			if errSID != nil {
				return errSID
			}

			badges, errBadges := app.api.PlayerService().Badges(cmd.Context(), sid)
			if errBadges != nil {
				return errBadges
			}

			return app.write(cmd, badges, func(table *tablewriter.Table) error {
				table.Header("Badge", "App ID", "Level", "XP", "Scarcity", "Completed")

				rows := make([][]string, 0, len(badges.Response.Badges))
				for _, badge := range badges.Response.Badges {
					appID := ""
					if badge.AppID != nil {
						appID = badge.AppID.String()
					}

					rows = append(rows, []string{
						strconv.FormatInt(badge.BadgeID, 10),
						appID,
						strconv.FormatInt(badge.Level, 10),
						humanize.Comma(badge.XP),
						humanize.Comma(badge.Scarcity),
						relativeTime(badge.CompletionTime),
					})
				}

				return table.Bulk(rows)
			})
		},
	}
}

func playerBadgeProgressCmd(app *cli) *cobra.Command {
	var badgeID int

	progressCmd := &cobra.Command{
		Use:   "badge-progress <steamid>",
		Short: "Quest completion of a badge",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sid, errSID := app.resolveSteamID(cmd, args[0])
			if errSID != nil {
				return errSID
			}

			opts := playerservice.BadgeProgressOptions{}
			if cmd.Flags().Changed("badge") {
				opts.BadgeID = ptr.To(badgeID)
			}

			progress, errProgress := app.api.PlayerService().CommunityBadgeProgress(cmd.Context(), sid, opts)
			if errProgress != nil {
				return errProgress
			}

			return app.write(cmd, progress, func(table *tablewriter.Table) error {
				table.Header("Quest", "Completed")

				rows := make([][]string, 0, len(progress.Response.Quests))
				for _, quest := range progress.Response.Quests {
					rows = append(rows, []string{strconv.FormatInt(quest.QuestID, 10), strconv.FormatBool(quest.Completed)})
				}

				return table.Bulk(rows)
			})
		},
	}

	progressCmd.Flags().IntVar(&badgeID, "badge", 2, "Badge id, defaults to the community badge")

	return progressCmd
}

func playerSharedCmd(app *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "shared <steamid> <appid>",
		Short: "Show who lends an app to a player through family sharing",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sid, errSID := app.resolveSteamID(cmd, args[0])
			if errSID != nil {
				return errSID
			}

			appID, errAppID := parseAppID(args[1])
			if errAppID != nil {
				return errAppID
			}

			shared, errShared := app.api.PlayerService().IsPlayingSharedGame(cmd.Context(), sid, appID)
			if errShared != nil {
				return errShared
			}

			return app.write(cmd, shared, func(table *tablewriter.Table) error {
				table.Header("Shared", "Lender")

				return table.Append([]string{strconv.FormatBool(shared.Response.Shared()), shared.Response.LenderSteamID})
			})
		},
	}
}
