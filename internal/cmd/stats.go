package cmd

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/leighmacdonald/steamwebapi/pkg/ptr"
	"github.com/leighmacdonald/steamwebapi/pkg/userstats"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func statsCmd(app *cli) *cobra.Command {
	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "ISteamUserStats lookups",
	}

	statsCmd.AddCommand(
		statsAchievementsCmd(app),
		statsGlobalCmd(app),
		statsPlayersCmd(app),
		statsPlayerAchievementsCmd(app),
		statsSchemaCmd(app),
		statsUserCmd(app),
	)

	return statsCmd
}

func languageOptions(cmd *cobra.Command, language string) userstats.LanguageOptions {
	if !cmd.Flags().Changed("lang") {
		return userstats.LanguageOptions{}
	}

	return userstats.LanguageOptions{Language: ptr.To(language)}
}

func statsAchievementsCmd(app *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "achievements <appid>",
		Short: "Global unlock percentage of each achievement of an app",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			appID, errAppID := parseAppID(args[0])
			if errAppID != nil {
				return errAppID
			}

			result, errResult := app.api.UserStats().GlobalAchievementPercentages(cmd.Context(), appID)
			if errResult != nil {
				return errResult
			}

			return app.write(cmd, result, func(table *tablewriter.Table) error {
				table.Header("Achievement", "Percent")

				rows := make([][]string, 0, len(result.AchievementPercentages.Achievements))
				for _, achievement := range result.AchievementPercentages.Achievements {
					rows = append(rows, []string{achievement.Name, fmt.Sprintf("%.2f%%", float64(achievement.Percent))})
				}

				return table.Bulk(rows)
			})
		},
	}
}

func statsGlobalCmd(app *cli) *cobra.Command {
	var (
		startDate int64
		endDate   int64
	)

	globalCmd := &cobra.Command{
		Use:   "global <appid> <stat>...",
		Short: "Aggregated values of global stats",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			appID, errAppID := parseAppID(args[0])
			if errAppID != nil {
				return errAppID
			}

			opts := userstats.GlobalStatsOptions{}
			if cmd.Flags().Changed("start-date") {
				opts.StartDate = ptr.To(startDate)
			}

			if cmd.Flags().Changed("end-date") {
				opts.EndDate = ptr.To(endDate)
			}

			result, errResult := app.api.UserStats().GlobalStatsForGame(cmd.Context(), appID, args[1:], opts)
			if errResult != nil {
				return errResult
			}

			return app.write(cmd, result, nil)
		},
	}

	globalCmd.Flags().Int64Var(&startDate, "start-date", 0, "Aggregate from this unix timestamp")
	globalCmd.Flags().Int64Var(&endDate, "end-date", 0, "Aggregate up to this unix timestamp")

	return globalCmd
}

func statsPlayersCmd(app *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "players <appid>...",
		Short: "Number of players currently in game",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			appIDs, errAppIDs := parseAppIDs(args)
			if errAppIDs != nil {
				return errAppIDs
			}

			results := make([]userstats.CurrentPlayersResponse, 0, len(appIDs))

			for _, appID := range appIDs {
				result, errResult := app.api.UserStats().NumberOfCurrentPlayers(cmd.Context(), appID)
				if errResult != nil {
					return errResult
				}

				results = append(results, result)
			}

			return app.write(cmd, results, func(table *tablewriter.Table) error {
				table.Header("App ID", "Players")

				rows := make([][]string, 0, len(results))
				for idx, result := range results {
					rows = append(rows, []string{appIDs[idx].String(), humanize.Comma(result.Response.PlayerCount)})
				}

				return table.Bulk(rows)
			})
		},
	}
}

func statsPlayerAchievementsCmd(app *cli) *cobra.Command {
	var language string

	achievementsCmd := &cobra.Command{
		Use:   "player-achievements <steamid> <appid>",
		Short: "Achievements of a player in an app",
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

			result, errResult := app.api.UserStats().PlayerAchievements(cmd.Context(), sid, appID, languageOptions(cmd, language))
			if errResult != nil {
				return errResult
			}

			return app.write(cmd, result, func(table *tablewriter.Table) error {
				table.Header("Achievement", "Name", "Unlocked", "When")

				rows := make([][]string, 0, len(result.PlayerStats.Achievements))
				for _, achievement := range result.PlayerStats.Achievements {
					rows = append(rows, []string{
						achievement.APIName,
						ptr.Or(achievement.Name, ""),
						strconv.FormatBool(achievement.Unlocked()),
						relativeTime(achievement.UnlockTime),
					})
				}

				return table.Bulk(rows)
			})
		},
	}

	achievementsCmd.Flags().StringVarP(&language, "lang", "l", "en", "Language of achievement names")

	return achievementsCmd
}

func statsSchemaCmd(app *cli) *cobra.Command {
	var language string

	schemaCmd := &cobra.Command{
		Use:   "schema <appid>",
		Short: "Achievement and stat definitions of an app",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			appID, errAppID := parseAppID(args[0])
			if errAppID != nil {
				return errAppID
			}

			schema, errSchema := app.api.UserStats().SchemaForGame(cmd.Context(), appID, languageOptions(cmd, language))
			if errSchema != nil {
				return errSchema
			}

			return app.write(cmd, schema, func(table *tablewriter.Table) error {
				table.Header("Kind", "Name", "Display Name", "Hidden")

				stats := schema.Game.AvailableGameStats
				rows := make([][]string, 0, len(stats.Achievements)+len(stats.Stats))

				for _, achievement := range stats.Achievements {
					rows = append(rows, []string{"achievement", achievement.Name, achievement.DisplayName,
						strconv.FormatBool(achievement.Hidden == 1)})
				}

				for _, stat := range stats.Stats {
					rows = append(rows, []string{"stat", stat.Name, stat.DisplayName, ""})
				}

				return table.Bulk(rows)
			})
		},
	}

	schemaCmd.Flags().StringVarP(&language, "lang", "l", "en", "Language of display names")

	return schemaCmd
}

func statsUserCmd(app *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "user <steamid> <appid>",
		Short: "Stats and achievements of a player in an app",
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

			result, errResult := app.api.UserStats().UserStatsForGame(cmd.Context(), sid, appID)
			if errResult != nil {
				return errResult
			}

			return app.write(cmd, result, func(table *tablewriter.Table) error {
				table.Header("Kind", "Name", "Value")

				stats := result.PlayerStats
				rows := make([][]string, 0, len(stats.Achievements)+len(stats.Stats))

				for _, achievement := range stats.Achievements {
					rows = append(rows, []string{"achievement", achievement.Name, strconv.FormatBool(achievement.Unlocked())})
				}

				for _, stat := range stats.Stats {
					rows = append(rows, []string{"stat", stat.Name, humanize.Ftoa(stat.Value)})
				}

				return table.Bulk(rows)
			})
		},
	}
}
