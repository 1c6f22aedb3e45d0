// Package locator resolves a playable stream URL for a directory channel.
//
// The directory does not expose stream URLs directly on channel pages; they
// surface through the search index, and not for every station. Locate walks
// a chain of strategies from cheapest to loosest and always ends on a
// synthesized guess, so a non-empty channel ID never comes back empty-handed.
package locator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"radio-gateway/internal/upstream"
)

// RelayPrefix is this gateway's own streaming endpoint; every candidate is
// returned as a path under it.
const RelayPrefix = "/api/radio/stream/"

// ErrNoStream is returned when not even a fallback guess can be built,
// which only happens for an empty channel ID.
var ErrNoStream = errors.New("no stream found")

// Directory is the slice of the upstream client the locator needs.
type Directory interface {
	Search(ctx context.Context, query string) (*upstream.SearchResult, json.RawMessage, error)
	Channel(ctx context.Context, channelID string) (*upstream.ChannelDetail, json.RawMessage, error)
}

// Locator finds stream URLs for channels.
type Locator struct {
	dir Directory
	log zerolog.Logger
}

// New creates a Locator over a directory client.
func New(dir Directory, log zerolog.Logger) *Locator {
	return &Locator{dir: dir, log: log}
}

// Locate returns a relay-relative stream path for the channel.
//
// Strategies, first success wins:
//  1. search the index by channel ID; a matching channel hit with a direct
//     stream URL ends the chain without further upstream calls
//  2. fetch channel details for the display title
//  3. re-search by title, requiring a stream-carrying hit for this channel
//  4. synthesize the canonical direct-MP3 guess from the ID
//
// Search outages are swallowed and the chain moves on; a 2xx body that is
// not JSON aborts the chain so protocol drift stays visible. The final guess
// is not verified: playback failure is the player's problem, not ours.
func (l *Locator) Locate(ctx context.Context, channelID string) (string, error) {
	if channelID == "" {
		return "", ErrNoStream
	}

	if streamURL, err := l.searchForStream(ctx, channelID, channelID, false); err != nil {
		return "", err
	} else if streamURL != "" {
		l.log.Debug().Str("channel", channelID).Str("stream", streamURL).Msg("direct search hit")
		return RelayPrefix + url.PathEscape(streamURL), nil
	}

	title, err := l.channelTitle(ctx, channelID)
	if err != nil {
		return "", err
	}
	if title != "" {
		if streamURL, err := l.searchForStream(ctx, title, channelID, true); err != nil {
			return "", err
		} else if streamURL != "" {
			l.log.Debug().Str("channel", channelID).Str("title", title).Msg("title search hit")
			return RelayPrefix + url.PathEscape(streamURL), nil
		}
	}

	l.log.Debug().Str("channel", channelID).Msg("falling back to direct mp3 guess")
	return RelayPrefix + channelID, nil
}

// searchForStream queries the search index and returns the stream URL of the
// first channel hit whose URL contains channelID. With requireStream the hit
// must carry a stream URL to match at all; without it, a matching hit with
// no stream simply yields "". Upstream outages yield ("", nil) so the caller
// falls through; malformed bodies are fatal.
func (l *Locator) searchForStream(ctx context.Context, query, channelID string, requireStream bool) (string, error) {
	result, _, err := l.dir.Search(ctx, query)
	if err != nil {
		if errors.Is(err, upstream.ErrMalformed) {
			return "", err
		}
		l.log.Warn().Err(err).Str("query", query).Msg("search unavailable, trying next strategy")
		return "", nil
	}

	for _, hit := range result.Hits.Hits {
		if hit.Source.Type != "channel" || !strings.Contains(hit.Source.URL, channelID) {
			continue
		}
		if hit.Source.Stream != "" {
			return hit.Source.Stream, nil
		}
		if !requireStream {
			// First matching hit has no stream; the direct-ID pass
			// has nothing more specific to offer.
			return "", nil
		}
	}
	return "", nil
}

// channelTitle fetches the display title for the re-search strategy. An
// unavailable detail endpoint is not fatal, the fallback guess still works.
func (l *Locator) channelTitle(ctx context.Context, channelID string) (string, error) {
	detail, _, err := l.dir.Channel(ctx, channelID)
	if err != nil {
		if errors.Is(err, upstream.ErrMalformed) {
			return "", fmt.Errorf("channel %s: %w", channelID, err)
		}
		l.log.Warn().Err(err).Str("channel", channelID).Msg("channel detail unavailable, using fallback")
		return "", nil
	}
	return detail.Data.Title, nil
}
