package cmd

import (
	"github.com/leighmacdonald/steamwebapi/pkg/news"
	"github.com/leighmacdonald/steamwebapi/pkg/ptr"
	"github.com/leighmacdonald/steamwebapi/pkg/stringutil"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

const newsExcerptSize = 80

func newsCmd(app *cli) *cobra.Command {
	var (
		count     int
		maxLength int
		endDate   int64
		feeds     []string
	)

	newsCmd := &cobra.Command{
		Use:   "news <appid>",
		Short: "Latest news items of an app",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			appID, errAppID := parseAppID(args[0])
			if errAppID != nil {
				return errAppID
			}

			opts := news.NewsOptions{Feeds: feeds}

			if cmd.Flags().Changed("count") {
				opts.Count = ptr.To(count)
			}

			if cmd.Flags().Changed("max-length") {
				opts.MaxLength = ptr.To(maxLength)
			}

			if cmd.Flags().Changed("end-date") {
				opts.EndDate = ptr.To(endDate)
			}

			appNews, errNews := app.api.News().NewsForApp(cmd.Context(), appID, opts)
			if errNews != nil {
				return errNews
			}

			return app.write(cmd, appNews, func(table *tablewriter.Table) error {
				table.Header("Posted", "Feed", "Title", "Summary")

				rows := make([][]string, 0, len(appNews.AppNews.NewsItems))
				for _, item := range appNews.AppNews.NewsItems {
					rows = append(rows, []string{
						relativeTime(item.Date),
						item.FeedLabel,
						item.Title,
						stringutil.Excerpt(item.Contents, newsExcerptSize),
					})
				}

				return table.Bulk(rows)
			})
		},
	}

	flags := newsCmd.Flags()
	flags.IntVarP(&count, "count", "c", 20, "Number of items to return")
	flags.IntVar(&maxLength, "max-length", 0, "Truncate contents to this many characters, 0 for all")
	flags.Int64Var(&endDate, "end-date", 0, "Only return items posted before this unix timestamp")
	flags.StringSliceVar(&feeds, "feeds", nil, "Only return items of these feeds")

	return newsCmd
}
