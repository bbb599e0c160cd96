package apps

import "github.com/leighmacdonald/steamwebapi/pkg/webapi"

type AppListResponse struct {
	AppList AppList `json:"applist"`
}

type AppList struct {
	Apps []App `json:"apps"`
}

type App struct {
	AppID webapi.AppID `json:"appid"`
	Name  string       `json:"name"`
}

type UpToDateCheckResponse struct {
	Response UpToDateCheck `json:"response"`
}

// UpToDateCheck mirrors the server response. Success is reported as sent, it is not interpreted.
type UpToDateCheck struct {
	Success           bool `json:"success"`
	UpToDate          bool `json:"up_to_date"`
	VersionIsListable bool `json:"version_is_listable"`
	// RequiredVersion is only sent when the checked version is out of date.
	RequiredVersion *int    `json:"required_version"`
	Message         *string `json:"message"`
}
