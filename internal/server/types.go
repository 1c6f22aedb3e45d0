// Package server provides the gateway's HTTP API.
package server

// ErrorResponse is the uniform JSON failure envelope. No error crosses the
// system boundary in any other shape.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ListenResponse is the response for the listen endpoint.
type ListenResponse struct {
	StreamURL string `json:"streamUrl"`
}

// LocateResponse is the response for the locate endpoint.
type LocateResponse struct {
	CountryCode  string `json:"countryCode"`
	LocationName string `json:"locationName"`
}

// HealthResponse is the response for the health endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}

const (
	msgChannelIDRequired = "Channel ID is required"
	msgPlaceIDRequired   = "Place ID is required"
	msgQueryRequired     = "q query parameter is required"
	msgUpstreamFailed    = "Failed to reach radio directory"
	msgMalformedUpstream = "Invalid JSON response from radio directory"
)
