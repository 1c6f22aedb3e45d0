package upstream

// SearchHit is a single entry from the directory's full-text search index.
type SearchHit struct {
	ID     string    `json:"_id"`
	Score  float64   `json:"_score"`
	Source HitSource `json:"_source"`
}

// HitSource carries the searchable fields of a hit. Type is "channel" for
// stations; URL is the directory page path and Stream, when present, is a
// direct audio URL.
type HitSource struct {
	Code     string `json:"code"`
	Subtitle string `json:"subtitle"`
	Type     string `json:"type"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	Stream   string `json:"stream,omitempty"`
}

// SearchResult is the envelope of the search endpoint.
type SearchResult struct {
	Hits struct {
		Hits []SearchHit `json:"hits"`
	} `json:"hits"`
}

// ChannelDetail is the envelope of the channel detail endpoint. The upstream
// wraps everything in a "data" object; only the fields this gateway reads
// are modeled, the raw body is relayed to clients unmodified.
type ChannelDetail struct {
	Data ChannelData `json:"data"`
}

// ChannelData is the channel payload inside a ChannelDetail.
type ChannelData struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	Place    *Ref   `json:"place,omitempty"`
	Country  *Ref   `json:"country,omitempty"`
}

// Ref is an id/title pair the upstream uses for place and country links.
type Ref struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}
