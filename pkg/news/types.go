package news

import (
	"time"

	"github.com/leighmacdonald/steamwebapi/pkg/webapi"
)

type AppNewsResponse struct {
	AppNews AppNews `json:"appnews"`
}

type AppNews struct {
	AppID     webapi.AppID `json:"appid"`
	NewsItems []NewsItem   `json:"newsitems"`
	// Count is the total number of items available, newer API revisions send it.
	Count *int `json:"count"`
}

type NewsItem struct {
	GID           string `json:"gid"`
	Title         string `json:"title"`
	URL           string `json:"url"`
	IsExternalURL bool   `json:"is_external_url"`
	Author        string `json:"author"`
	// Contents is cut to the requested max length with an appended ellipsis.
	Contents  string       `json:"contents"`
	FeedLabel string       `json:"feedlabel"`
	Date      int64        `json:"date"`
	FeedName  string       `json:"feedname"`
	FeedType  int          `json:"feed_type"`
	AppID     webapi.AppID `json:"appid"`
	Tags      []string     `json:"tags,omitempty"`
}

func (n NewsItem) Posted() time.Time {
	return time.Unix(n.Date, 0).UTC()
}
