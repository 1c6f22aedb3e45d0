// Package relay proxies upstream audio bytes to the listening client.
//
// The path under the stream endpoint can be a full URL (a direct stream
// found by the locator), a directory-internal "listen/..." path, or a bare
// channel ID; ResolveTarget normalizes all three to a fetchable URL.
package relay

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Some stream origins reject requests that do not look like a browser.
const (
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/96.0.4664.110 Safari/537.36"
	accept    = "audio/mpeg, audio/mp3, audio/*, */*"
)

// ErrEmptyPath is returned by ResolveTarget for an empty stream path.
var ErrEmptyPath = errors.New("no stream path provided")

// Relay streams upstream audio resources back to clients.
type Relay struct {
	base   string
	client *http.Client
	log    zerolog.Logger
}

// New creates a Relay resolving bare paths against the given directory base
// URL. The HTTP client bounds dialing and response headers but not the body:
// audio streams are long-lived on purpose.
func New(base string, log zerolog.Logger) *Relay {
	return &Relay{
		base: strings.TrimRight(base, "/"),
		client: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 10 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout:   10 * time.Second,
				ResponseHeaderTimeout: 15 * time.Second,
			},
		},
		log: log,
	}
}

// ResolveTarget turns the raw wildcard path into the upstream URL to fetch.
//
// Rules, in order: a decoded path that already carries a URL scheme is used
// verbatim; a "listen/..." directory-internal path is resolved under the
// content API; anything else is treated as a bare channel ID and mapped to
// the canonical direct-MP3 path.
func (r *Relay) ResolveTarget(rawPath string) (string, error) {
	joined := strings.Trim(rawPath, "/")
	if joined == "" {
		return "", ErrEmptyPath
	}

	decoded := joined
	if unescaped, err := url.PathUnescape(joined); err == nil {
		decoded = unescaped
	}

	switch {
	case strings.HasPrefix(decoded, "http://"), strings.HasPrefix(decoded, "https://"):
		return decoded, nil
	case strings.HasPrefix(decoded, "listen/"):
		return r.base + "/ara/content/" + decoded, nil
	default:
		return r.base + "/ara/content/listen/" + decoded + "/channel.mp3", nil
	}
}

// Proxy fetches the resolved target and streams it to w. Upstream errors are
// relayed with the upstream status code but a uniform JSON body; success is
// the raw byte stream with normalized headers.
func (r *Relay) Proxy(w http.ResponseWriter, req *http.Request, rawPath string) {
	target, err := r.ResolveTarget(rawPath)
	if err != nil {
		writeError(w, http.StatusBadRequest, "No stream URL provided", 0)
		return
	}

	upReq, err := http.NewRequestWithContext(req.Context(), http.MethodGet, target, nil)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid stream URL", 0)
		return
	}
	upReq.Header.Set("User-Agent", userAgent)
	upReq.Header.Set("Accept", accept)
	if rng := req.Header.Get("Range"); rng != "" {
		upReq.Header.Set("Range", rng)
	}

	r.log.Info().Str("target", target).Msg("proxying stream")

	resp, err := r.client.Do(upReq)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		r.log.Error().Err(err).Str("target", target).Msg("stream fetch failed")
		writeError(w, http.StatusInternalServerError, "Failed to proxy stream", 0)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		r.log.Warn().Int("status", resp.StatusCode).Str("target", target).Msg("stream responded with error status")
		writeError(w, resp.StatusCode, "Stream responded with error status", resp.StatusCode)
		return
	}

	header := w.Header()
	for key, values := range resp.Header {
		for _, v := range values {
			header.Add(key, v)
		}
	}
	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "audio") {
		header.Set("Content-Type", "audio/mpeg")
	}
	header.Set("Access-Control-Allow-Origin", "*")
	header.Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	header.Set("Access-Control-Allow-Headers", "Content-Type, Range")
	header.Set("Accept-Ranges", "bytes")

	w.WriteHeader(resp.StatusCode)
	r.copyStream(req.Context(), w, resp.Body)
}

// copyStream pipes bytes to the client, flushing each chunk so playback
// starts before the (never-ending) body completes. A client disconnect
// cancels the request context, which also tears down the upstream body.
func (r *Relay) copyStream(ctx context.Context, w http.ResponseWriter, body io.Reader) {
	flusher, _ := w.(http.Flusher)
	buf := make([]byte, 32*1024)

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		n, err := body.Read(buf)
		if n > 0 {
			if _, werr := w.Write(buf[:n]); werr != nil {
				return
			}
			if flusher != nil {
				flusher.Flush()
			}
		}
		if err != nil {
			if err != io.EOF && !errors.Is(err, context.Canceled) {
				r.log.Debug().Err(err).Msg("stream read ended")
			}
			return
		}
	}
}

// errorBody keeps the relay's failure contract uniform: JSON errors in,
// binary success out.
type errorBody struct {
	Error  string `json:"error"`
	Status int    `json:"status,omitempty"`
}

func writeError(w http.ResponseWriter, code int, msg string, upstreamStatus int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(errorBody{Error: msg, Status: upstreamStatus})
}
