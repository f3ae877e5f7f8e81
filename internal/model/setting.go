package model

type GetSettingsRequest struct{}

type GetSettingsResponse struct {
	// BroadcastInterval is in seconds.
	BroadcastInterval   int    `json:"broadcastInterval"`
	MaxDisplayedResults int    `json:"maxDisplayedResults"`
	SocketPath          string `json:"socketPath"`
}
