package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/leighmacdonald/steamid/v4/steamid"
	"github.com/leighmacdonald/steamwebapi/pkg/sliceutil"
	"github.com/leighmacdonald/steamwebapi/pkg/user"
	"github.com/leighmacdonald/steamwebapi/pkg/webapi"
	"github.com/olekukonko/tablewriter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var (
	ErrInvalidAppID  = errors.New("invalid app id")
	ErrUnknownPlayer = errors.New("could not resolve player")
	ErrGatherMetrics = errors.New("failed to gather metrics")
)

type tableFunc func(table *tablewriter.Table) error

func defaultTable(writer io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(writer)
}

// write prints value as indented JSON, or as a table when --table was given and the command supports it.
func (a *cli) write(cmd *cobra.Command, value any, table tableFunc) error {
	if a.table && table != nil {
		tbl := defaultTable(cmd.OutOrStdout())
		if errTable := table(tbl); errTable != nil {
			return errTable
		}

		return tbl.Render()
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")

	return encoder.Encode(value)
}

func parseAppID(value string) (webapi.AppID, error) {
	appID, errParse := strconv.ParseUint(value, 10, 32)
	if errParse != nil {
		return 0, errors.Join(errParse, fmt.Errorf("%w: %s", ErrInvalidAppID, value))
	}

	return webapi.AppID(appID), nil
}

func parseAppIDs(values []string) ([]webapi.AppID, error) {
	appIDs := make([]webapi.AppID, 0, len(values))

	for _, value := range values {
		appID, errAppID := parseAppID(value)
		if errAppID != nil {
			return nil, errAppID
		}

		appIDs = append(appIDs, appID)
	}

	return appIDs, nil
}

// resolveSteamID accepts any steam id format and falls back to resolving value as a vanity name.
func (a *cli) resolveSteamID(cmd *cobra.Command, value string) (steamid.SteamID, error) {
	if sid := steamid.New(value); sid.Valid() {
		return sid, nil
	}

	vanity := strings.TrimSuffix(value, "/")
	if idx := strings.LastIndex(vanity, "/id/"); idx >= 0 {
		vanity = vanity[idx+len("/id/"):]
	}

	resolved, errResolve := a.api.User().ResolveVanityURL(cmd.Context(), vanity, user.VanityOptions{})
	if errResolve != nil {
		return steamid.SteamID{}, errResolve
	}

	if sid := resolved.Response.SID(); sid.Valid() {
		return sid, nil
	}

	return steamid.SteamID{}, fmt.Errorf("%w: %s", ErrUnknownPlayer, value)
}

func (a *cli) resolveSteamIDs(cmd *cobra.Command, values []string) (steamid.Collection, error) {
	values = sliceutil.Uniq(values)
	sids := make(steamid.Collection, 0, len(values))

	for _, value := range values {
		sid, errSID := a.resolveSteamID(cmd, value)
		if errSID != nil {
			return nil, errSID
		}

		sids = append(sids, sid)
	}

	return sids, nil
}

// relativeTime renders a unix timestamp as "3 days ago", zero as empty.
func relativeTime(unix int64) string {
	if unix <= 0 {
		return ""
	}

	return humanize.Time(time.Unix(unix, 0))
}

func relativeTimePtr(unix *int64) string {
	if unix == nil {
		return ""
	}

	return relativeTime(*unix)
}

func playtime(minutes int64) string {
	return (time.Duration(minutes) * time.Minute).String()
}

func writeMetrics(writer io.Writer, registry *prometheus.Registry) error {
	families, errGather := registry.Gather()
	if errGather != nil {
		return errors.Join(errGather, ErrGatherMetrics)
	}

	var rows [][]string

	for _, family := range families {
		for _, metric := range family.GetMetric() {
			labels := make([]string, 0, len(metric.GetLabel()))
			for _, label := range metric.GetLabel() {
				labels = append(labels, label.GetName()+"="+label.GetValue())
			}

			value := humanize.Ftoa(metric.GetCounter().GetValue())
			if histogram := metric.GetHistogram(); histogram != nil {
				value = fmt.Sprintf("%d in %.3fs", histogram.GetSampleCount(), histogram.GetSampleSum())
			}

			rows = append(rows, []string{family.GetName(), strings.Join(labels, ","), value})
		}
	}

	table := defaultTable(writer)
	table.Header("Metric", "Labels", "Value")

	if errBulk := table.Bulk(rows); errBulk != nil {
		return errBulk
	}

	return table.Render()
}
