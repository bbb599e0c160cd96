package webapiutil

import "time"

// ServerInfo is returned without a response envelope.
type ServerInfo struct {
	// ServerTime is the unix timestamp of the WebAPI server.
	ServerTime       int64  `json:"servertime"`
	ServerTimeString string `json:"servertimestring"`
}

func (s ServerInfo) Time() time.Time {
	return time.Unix(s.ServerTime, 0).UTC()
}

type SupportedAPIList struct {
	APIList APIList `json:"apilist"`
}

type APIList struct {
	Interfaces []Interface `json:"interfaces"`
}

type Interface struct {
	Name    string   `json:"name"`
	Methods []Method `json:"methods"`
}

type Method struct {
	Name       string      `json:"name"`
	Version    int         `json:"version"`
	HTTPMethod string      `json:"httpmethod"`
	Parameters []Parameter `json:"parameters"`
	// Description is only present when valve documented the method.
	Description *string `json:"description"`
}

type Parameter struct {
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Optional    bool    `json:"optional"`
	Description *string `json:"description"`
}
