package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"radio-gateway/internal/geo"
	"radio-gateway/internal/locator"
	"radio-gateway/internal/relay"
	"radio-gateway/internal/upstream"
)

// Directory is the metadata slice of the upstream client the API consumes.
type Directory interface {
	Geo(ctx context.Context) (json.RawMessage, error)
	Places(ctx context.Context) (json.RawMessage, error)
	Place(ctx context.Context, placeID string) (json.RawMessage, error)
	PlaceChannels(ctx context.Context, placeID string) (json.RawMessage, error)
	Channel(ctx context.Context, channelID string) (*upstream.ChannelDetail, json.RawMessage, error)
	Search(ctx context.Context, query string) (*upstream.SearchResult, json.RawMessage, error)
}

// StreamLocator resolves a channel ID into a relay-relative stream path.
type StreamLocator interface {
	Locate(ctx context.Context, channelID string) (string, error)
}

// API handles the gateway's HTTP endpoints.
type API struct {
	dir     Directory
	locator StreamLocator
	relay   *relay.Relay
	log     zerolog.Logger
}

// NewAPI creates a new API handler.
func NewAPI(dir Directory, loc StreamLocator, rly *relay.Relay, log zerolog.Logger) *API {
	return &API{
		dir:     dir,
		locator: loc,
		relay:   rly,
		log:     log,
	}
}

// Geo proxies the caller geolocation object.
func (a *API) Geo(c *gin.Context) {
	raw, err := a.dir.Geo(c.Request.Context())
	if err != nil {
		a.upstreamError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", raw)
}

// Places proxies the directory's place list.
func (a *API) Places(c *gin.Context) {
	raw, err := a.dir.Places(c.Request.Context())
	if err != nil {
		a.upstreamError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", raw)
}

// Place proxies the detail body for one place.
func (a *API) Place(c *gin.Context) {
	placeID := c.Param("placeId")
	if placeID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgPlaceIDRequired})
		return
	}

	raw, err := a.dir.Place(c.Request.Context(), placeID)
	if err != nil {
		a.upstreamError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", raw)
}

// PlaceChannels proxies the channel listing for one place.
func (a *API) PlaceChannels(c *gin.Context) {
	placeID := c.Param("placeId")
	if placeID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgPlaceIDRequired})
		return
	}

	raw, err := a.dir.PlaceChannels(c.Request.Context(), placeID)
	if err != nil {
		a.upstreamError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", raw)
}

// Channel proxies the detail body for one channel.
func (a *API) Channel(c *gin.Context) {
	channelID := c.Param("channelId")
	if channelID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgChannelIDRequired})
		return
	}

	_, raw, err := a.dir.Channel(c.Request.Context(), channelID)
	if err != nil {
		a.upstreamError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", raw)
}

// Search proxies the directory's full-text search.
func (a *API) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgQueryRequired})
		return
	}

	_, raw, err := a.dir.Search(c.Request.Context(), query)
	if err != nil {
		a.upstreamError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", raw)
}

// Listen resolves a playable stream URL for a channel.
func (a *API) Listen(c *gin.Context) {
	channelID := c.Param("channelId")
	if channelID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgChannelIDRequired})
		return
	}

	streamURL, err := a.locator.Locate(c.Request.Context(), channelID)
	if err != nil {
		if errors.Is(err, locator.ErrNoStream) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "No stream found for channel"})
			return
		}
		a.upstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, ListenResponse{StreamURL: streamURL})
}

// Stream relays upstream audio bytes. Everything after the route prefix is
// the stream path, arbitrary depth included.
func (a *API) Stream(c *gin.Context) {
	a.relay.Proxy(c.Writer, c.Request, c.Param("path"))
}

// Locate runs the country detection heuristic over free text.
func (a *API) Locate(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgQueryRequired})
		return
	}

	loc := geo.Detect(query)
	name := loc.LocationName
	if name == "" && loc.CountryCode != "" {
		name = geo.DisplayName(loc.CountryCode)
	}
	c.JSON(http.StatusOK, LocateResponse{
		CountryCode:  loc.CountryCode,
		LocationName: name,
	})
}

// Health is a liveness check.
func (a *API) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// upstreamError converts a client error into the JSON envelope, keeping the
// malformed-response message distinct so operators can tell protocol drift
// from outages.
func (a *API) upstreamError(c *gin.Context, err error) {
	a.log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("upstream request failed")
	if errors.Is(err, upstream.ErrMalformed) {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msgMalformedUpstream})
		return
	}
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msgUpstreamFailed})
}
