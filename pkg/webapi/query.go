package webapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/go-querystring/query"
	"github.com/leighmacdonald/steamid/v4/steamid"
)

// AppID is a steam application id.
type AppID uint32

func (a AppID) String() string {
	return strconv.FormatUint(uint64(a), 10)
}

// IndexedList encodes each element as its own parameter with a zero based index suffix:
// appids_filter[0]=440&appids_filter[1]=570.
type IndexedList[T any] []T

func (l IndexedList[T]) EncodeValues(key string, values *url.Values) error {
	for idx, value := range l {
		values.Add(fmt.Sprintf("%s[%d]", key, idx), fmt.Sprint(value))
	}

	return nil
}

// JSONList encodes the list as a single parameter holding a JSON array of strings: steamids=["1","2"].
type JSONList []string

func (l JSONList) EncodeValues(key string, values *url.Values) error {
	encoded, errMarshal := json.Marshal([]string(l))
	if errMarshal != nil {
		return errors.Join(errMarshal, ErrEncodeParams)
	}

	values.Add(key, string(encoded))

	return nil
}

// CommaList encodes the list as a single comma separated parameter: feeds=a,b.
type CommaList []string

func (l CommaList) EncodeValues(key string, values *url.Values) error {
	values.Add(key, strings.Join(l, ","))

	return nil
}

// Values encodes a parameter struct using its `url` tags. A nil params produces an empty set.
func Values(params any) (url.Values, error) {
	if params == nil {
		return url.Values{}, nil
	}

	values, errValues := query.Values(params)
	if errValues != nil {
		return nil, errors.Join(errValues, ErrEncodeParams)
	}

	return values, nil
}

// RequireKey fails fast for authenticated endpoints called without an api key.
func RequireKey(apiKey string) error {
	if strings.TrimSpace(apiKey) == "" {
		return ErrMissingAPIKey
	}

	return nil
}

// SteamID returns the 64bit string form of sid, or ErrInvalidSteamID.
func SteamID(sid steamid.SteamID) (string, error) {
	if !sid.Valid() {
		return "", ErrInvalidSteamID
	}

	return sid.String(), nil
}

// SteamIDs converts a collection into a JSONList, failing on the first invalid id.
func SteamIDs(sids steamid.Collection) (JSONList, error) {
	list := make(JSONList, 0, len(sids))

	for _, sid := range sids {
		value, errSID := SteamID(sid)
		if errSID != nil {
			return nil, fmt.Errorf("%w: position %d", errSID, len(list))
		}

		list = append(list, value)
	}

	return list, nil
}

// KeyedSteamID validates the api key and then sid for endpoints taking a key and one steam id.
func KeyedSteamID(apiKey string, sid steamid.SteamID) (string, error) {
	if errKey := RequireKey(apiKey); errKey != nil {
		return "", errKey
	}

	return SteamID(sid)
}

// KeyedSteamIDs is KeyedSteamID for endpoints taking a list of steam ids.
func KeyedSteamIDs(apiKey string, sids steamid.Collection) (JSONList, error) {
	if errKey := RequireKey(apiKey); errKey != nil {
		return nil, errKey
	}

	return SteamIDs(sids)
}

// redactKey replaces the api key in a query string so urls can be logged and returned in errors.
func redactKey(u *url.URL) string {
	if u == nil {
		return ""
	}

	values := u.Query()
	if values.Get("key") == "" {
		return u.String()
	}

	values.Set("key", "REDACTED")

	redacted := *u
	redacted.RawQuery = values.Encode()

	return redacted.String()
}
