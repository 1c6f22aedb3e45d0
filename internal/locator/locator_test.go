package locator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"radio-gateway/internal/upstream"
)

// fakeDirectory scripts search and channel responses per query/ID and counts
// upstream calls so tests can assert which strategies ran.
type fakeDirectory struct {
	searches    map[string]*upstream.SearchResult
	searchErr   map[string]error
	channels    map[string]*upstream.ChannelDetail
	channelErr  map[string]error
	searchCalls int
	detailCalls int
}

func (f *fakeDirectory) Search(_ context.Context, query string) (*upstream.SearchResult, json.RawMessage, error) {
	f.searchCalls++
	if err, ok := f.searchErr[query]; ok {
		return nil, nil, err
	}
	if r, ok := f.searches[query]; ok {
		return r, nil, nil
	}
	return &upstream.SearchResult{}, nil, nil
}

func (f *fakeDirectory) Channel(_ context.Context, channelID string) (*upstream.ChannelDetail, json.RawMessage, error) {
	f.detailCalls++
	if err, ok := f.channelErr[channelID]; ok {
		return nil, nil, err
	}
	if d, ok := f.channels[channelID]; ok {
		return d, nil, nil
	}
	return &upstream.ChannelDetail{}, nil, nil
}

func channelHit(pageURL, stream string) upstream.SearchHit {
	return upstream.SearchHit{
		Source: upstream.HitSource{Type: "channel", Title: "Some FM", URL: pageURL, Stream: stream},
	}
}

func hits(h ...upstream.SearchHit) *upstream.SearchResult {
	r := &upstream.SearchResult{}
	r.Hits.Hits = h
	return r
}

func newTestLocator(dir Directory) *Locator {
	return New(dir, zerolog.Nop())
}

func TestLocateDirectSearchHit(t *testing.T) {
	dir := &fakeDirectory{
		searches: map[string]*upstream.SearchResult{
			"abc123": hits(channelHit("/listen/some-fm/abc123", "http://audio.example.com/live.mp3")),
		},
	}

	got, err := newTestLocator(dir).Locate(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("Locate() error = %v", err)
	}
	want := RelayPrefix + url.PathEscape("http://audio.example.com/live.mp3")
	if got != want {
		t.Errorf("Locate() = %q, want %q", got, want)
	}
	if dir.searchCalls != 1 {
		t.Errorf("searchCalls = %d, want 1 (direct hit must end the chain)", dir.searchCalls)
	}
	if dir.detailCalls != 0 {
		t.Errorf("detailCalls = %d, want 0", dir.detailCalls)
	}
}

func TestLocateEscapesStreamURLWithSpaces(t *testing.T) {
	dir := &fakeDirectory{
		searches: map[string]*upstream.SearchResult{
			"abc123": hits(channelHit("/listen/some-fm/abc123", "http://audio.example.com/a b.mp3")),
		},
	}

	got, err := newTestLocator(dir).Locate(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("Locate() error = %v", err)
	}
	if strings.Contains(got, "+") {
		t.Errorf("Locate() = %q, spaces must escape as %%20, not +", got)
	}
	escaped := strings.TrimPrefix(got, RelayPrefix)
	decoded, err := url.PathUnescape(escaped)
	if err != nil {
		t.Fatalf("PathUnescape(%q) error = %v", escaped, err)
	}
	if decoded != "http://audio.example.com/a b.mp3" {
		t.Errorf("decoded = %q, stream URL did not round-trip", decoded)
	}
}

func TestLocateIgnoresNonChannelAndForeignHits(t *testing.T) {
	placeHit := upstream.SearchHit{
		Source: upstream.HitSource{Type: "place", URL: "/visit/abc123", Stream: "http://wrong.example.com"},
	}
	dir := &fakeDirectory{
		searches: map[string]*upstream.SearchResult{
			"abc123": hits(
				placeHit,
				channelHit("/listen/other-fm/zzz999", "http://other.example.com/live.mp3"),
				channelHit("/listen/some-fm/abc123", "http://audio.example.com/live.mp3"),
			),
		},
	}

	got, err := newTestLocator(dir).Locate(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("Locate() error = %v", err)
	}
	want := RelayPrefix + url.PathEscape("http://audio.example.com/live.mp3")
	if got != want {
		t.Errorf("Locate() = %q, want %q", got, want)
	}
}

func TestLocateTitleSearchHit(t *testing.T) {
	dir := &fakeDirectory{
		searches: map[string]*upstream.SearchResult{
			// ID search matches but carries no stream URL.
			"abc123": hits(channelHit("/listen/some-fm/abc123", "")),
			"Some FM": hits(
				channelHit("/listen/some-fm/abc123", ""),
				channelHit("/listen/some-fm/abc123", "http://audio.example.com/title.mp3"),
			),
		},
		channels: map[string]*upstream.ChannelDetail{
			"abc123": {Data: upstream.ChannelData{Title: "Some FM"}},
		},
	}

	got, err := newTestLocator(dir).Locate(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("Locate() error = %v", err)
	}
	want := RelayPrefix + url.PathEscape("http://audio.example.com/title.mp3")
	if got != want {
		t.Errorf("Locate() = %q, want %q", got, want)
	}
	if dir.searchCalls != 2 || dir.detailCalls != 1 {
		t.Errorf("calls = (%d searches, %d details), want (2, 1)", dir.searchCalls, dir.detailCalls)
	}
}

func TestLocateFallbackGuess(t *testing.T) {
	dir := &fakeDirectory{}

	got, err := newTestLocator(dir).Locate(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("Locate() error = %v", err)
	}
	if got != RelayPrefix+"abc123" {
		t.Errorf("Locate() = %q, want %q", got, RelayPrefix+"abc123")
	}
}

func TestLocateSearchOutageFallsThrough(t *testing.T) {
	unavailable := fmt.Errorf("%w: status 502", upstream.ErrUnavailable)
	dir := &fakeDirectory{
		searchErr:  map[string]error{"abc123": unavailable},
		channelErr: map[string]error{"abc123": unavailable},
	}

	got, err := newTestLocator(dir).Locate(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("Locate() error = %v, outages must not be fatal", err)
	}
	if got != RelayPrefix+"abc123" {
		t.Errorf("Locate() = %q, want fallback %q", got, RelayPrefix+"abc123")
	}
}

func TestLocateMalformedSearchIsFatal(t *testing.T) {
	dir := &fakeDirectory{
		searchErr: map[string]error{
			"abc123": fmt.Errorf("%w: not json", upstream.ErrMalformed),
		},
	}

	_, err := newTestLocator(dir).Locate(context.Background(), "abc123")
	if !errors.Is(err, upstream.ErrMalformed) {
		t.Errorf("error = %v, want ErrMalformed", err)
	}
}

func TestLocateMalformedDetailIsFatal(t *testing.T) {
	dir := &fakeDirectory{
		channelErr: map[string]error{
			"abc123": fmt.Errorf("%w: not json", upstream.ErrMalformed),
		},
	}

	_, err := newTestLocator(dir).Locate(context.Background(), "abc123")
	if !errors.Is(err, upstream.ErrMalformed) {
		t.Errorf("error = %v, want ErrMalformed", err)
	}
}

func TestLocateEmptyChannelID(t *testing.T) {
	_, err := newTestLocator(&fakeDirectory{}).Locate(context.Background(), "")
	if !errors.Is(err, ErrNoStream) {
		t.Errorf("error = %v, want ErrNoStream", err)
	}
}
