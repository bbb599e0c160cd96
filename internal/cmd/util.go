package cmd

import (
	"slices"
	"strconv"
	"strings"

	"github.com/leighmacdonald/steamwebapi/pkg/webapiutil"
	"github.com/maruel/natural"
	"github.com/olekukonko/tablewriter"
	"github.com/ryanuber/go-glob"
	"github.com/spf13/cobra"
)

func utilCmd(app *cli) *cobra.Command {
	utilCmd := &cobra.Command{
		Use:   "util",
		Short: "ISteamWebAPIUtil lookups",
	}

	utilCmd.AddCommand(utilInfoCmd(app), utilAPIsCmd(app))

	return utilCmd
}

func utilInfoCmd(app *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the WebAPI server time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info, errInfo := app.api.WebAPIUtil().ServerInfo(cmd.Context())
			if errInfo != nil {
				return errInfo
			}

			return app.write(cmd, info, func(table *tablewriter.Table) error {
				table.Header("Server Time", "UTC", "Server String")

				return table.Append([]string{
					strconv.FormatInt(info.ServerTime, 10),
					info.Time().Format("2006-01-02 15:04:05"),
					info.ServerTimeString,
				})
			})
		},
	}
}

func utilAPIsCmd(app *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "apis [pattern]",
		Short: "List the supported interfaces and methods, optionally filtered by a glob such as ISteamUser*",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, errList := app.api.WebAPIUtil().SupportedAPIList(cmd.Context())
			if errList != nil {
				return errList
			}

			interfaces := list.APIList.Interfaces
			if len(args) == 1 {
				pattern := strings.ToLower(args[0])
				interfaces = slices.DeleteFunc(interfaces, func(iface webapiutil.Interface) bool {
					return !glob.Glob(pattern, strings.ToLower(iface.Name))
				})
			}

			slices.SortFunc(interfaces, func(left, right webapiutil.Interface) int {
				return naturalCompare(left.Name, right.Name)
			})

			for _, iface := range interfaces {
				slices.SortFunc(iface.Methods, func(left, right webapiutil.Method) int {
					return naturalCompare(left.Name, right.Name)
				})
			}

			list.APIList.Interfaces = interfaces

			return app.write(cmd, list, func(table *tablewriter.Table) error {
				table.Header("Interface", "Method", "Version", "Parameters")

				var rows [][]string

				for _, iface := range interfaces {
					for _, method := range iface.Methods {
						params := make([]string, 0, len(method.Parameters))
						for _, param := range method.Parameters {
							name := param.Name
							if param.Optional {
								name += "?"
							}

							params = append(params, name)
						}

						rows = append(rows, []string{
							iface.Name,
							method.Name,
							"v" + strconv.Itoa(method.Version),
							strings.Join(params, " "),
						})
					}
				}

				return table.Bulk(rows)
			})
		},
	}
}

func naturalCompare(left string, right string) int {
	switch {
	case natural.Less(left, right):
		return -1
	case natural.Less(right, left):
		return 1
	default:
		return 0
	}
}
