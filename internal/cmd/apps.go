package cmd

import (
	"slices"
	"strconv"
	"strings"

	"github.com/leighmacdonald/steamwebapi/pkg/apps"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func appsCmd(app *cli) *cobra.Command {
	appsCmd := &cobra.Command{
		Use:   "apps",
		Short: "ISteamApps lookups",
	}

	appsCmd.AddCommand(appsListCmd(app), appsUpToDateCmd(app))

	return appsCmd
}

func appsListCmd(app *cli) *cobra.Command {
	var filter string

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List every public app, optionally filtered by name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			appList, errList := app.api.Apps().AppList(cmd.Context())
			if errList != nil {
				return errList
			}

			if filter != "" {
				needle := strings.ToLower(filter)
				appList.AppList.Apps = slices.DeleteFunc(appList.AppList.Apps, func(a apps.App) bool {
					return !strings.Contains(strings.ToLower(a.Name), needle)
				})
			}

			slices.SortStableFunc(appList.AppList.Apps, func(left, right apps.App) int {
				return naturalCompare(left.Name, right.Name)
			})

			return app.write(cmd, appList, func(table *tablewriter.Table) error {
				table.Header("App ID", "Name")

				rows := make([][]string, 0, len(appList.AppList.Apps))
				for _, entry := range appList.AppList.Apps {
					rows = append(rows, []string{entry.AppID.String(), entry.Name})
				}

				return table.Bulk(rows)
			})
		},
	}

	listCmd.Flags().StringVarP(&filter, "filter", "f", "", "Only show apps whose name contains this text")

	return listCmd
}

func appsUpToDateCmd(app *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "uptodate <appid> <version>",
		Short: "Check whether a version of an app is current",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			appID, errAppID := parseAppID(args[0])
			if errAppID != nil {
				return errAppID
			}

			result, errCheck := app.api.Apps().UpToDateCheck(cmd.Context(), appID, args[1])
			if errCheck != nil {
				return errCheck
			}

			return app.write(cmd, result, func(table *tablewriter.Table) error {
				required := ""
				if result.Response.RequiredVersion != nil {
					required = strconv.Itoa(*result.Response.RequiredVersion)
				}

				table.Header("Success", "Up To Date", "Listable", "Required")

				return table.Append([]string{
					strconv.FormatBool(result.Response.Success),
					strconv.FormatBool(result.Response.UpToDate),
					strconv.FormatBool(result.Response.VersionIsListable),
					required,
				})
			})
		},
	}
}
