package geo

import "testing"

func TestDetectParentheticalWins(t *testing.T) {
	loc := Detect("Tokyo FM (Osaka, Japan)")
	if loc.CountryCode != "JP" {
		t.Errorf("CountryCode = %q, want JP", loc.CountryCode)
	}
	if loc.LocationName != "Osaka, Japan" {
		t.Errorf("LocationName = %q, want %q", loc.LocationName, "Osaka, Japan")
	}
}

func TestDetectCommaTrailingSegment(t *testing.T) {
	// "Station" and "United" are also tokens, but the comma strategy runs
	// first and must win.
	loc := Detect("XYZ Station, United Kingdom")
	if loc.CountryCode != "GB" {
		t.Errorf("CountryCode = %q, want GB", loc.CountryCode)
	}
	if loc.LocationName != "United Kingdom" {
		t.Errorf("LocationName = %q, want %q", loc.LocationName, "United Kingdom")
	}
}

func TestDetectCuratedCity(t *testing.T) {
	loc := Detect("Radio Paris")
	if loc.CountryCode != "FR" {
		t.Errorf("CountryCode = %q, want FR", loc.CountryCode)
	}
}

func TestDetectEmptyInput(t *testing.T) {
	loc := Detect("")
	if loc.CountryCode != "" || loc.LocationName != "" {
		t.Errorf("Detect(\"\") = %+v, want zero Location", loc)
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		text string
		code string
	}{
		{"whole string country", "Japan", "JP"},
		{"whole string case insensitive", "jApAn", "JP"},
		{"alternate country name", "Guadeloupe", "FR"},
		{"token scan", "Top Hits Germany FM", "DE"},
		{"alternate spelling substring", "Radio Deutschland Klassik", "DE"},
		{"short alternate as word", "BBC Radio UK", "GB"},
		{"short alternate not inside word", "Fukuoka Station (Japan)", "JP"},
		{"city substring", "Jakarta Top 40", "ID"},
		{"comma city country", "Radio One, Jakarta, Indonesia", "ID"},
		{"no match", "zxqw qwerty", ""},
		{"short tokens dropped", "ab cd ef", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.text); got.CountryCode != tt.code {
				t.Errorf("Detect(%q).CountryCode = %q, want %q", tt.text, got.CountryCode, tt.code)
			}
		})
	}
}

func TestDetectFuzzyCityFallback(t *testing.T) {
	// "York" is no city on its own, but "New York" contains it; only the
	// bidirectional containment fallback can catch that.
	loc := Detect("York Calling")
	if loc.CountryCode != "US" {
		t.Errorf("CountryCode = %q, want US", loc.CountryCode)
	}
	if loc.LocationName != "York" {
		t.Errorf("LocationName = %q, want %q", loc.LocationName, "York")
	}
}

func TestDetectedCodesExistInTable(t *testing.T) {
	inputs := []string{
		"Tokyo FM (Osaka, Japan)",
		"Radio Paris",
		"XYZ Station, United Kingdom",
		"Top Hits Germany FM",
		"Jakarta Top 40",
		"BBC Radio UK",
		"Radio Brasil",
		"Sanaa FM",
	}
	for _, in := range inputs {
		loc := Detect(in)
		if loc.CountryCode == "" {
			t.Errorf("Detect(%q) found no code", in)
			continue
		}
		if NameForCode(loc.CountryCode) == "" {
			t.Errorf("Detect(%q) = %q, not a key of the country table", in, loc.CountryCode)
		}
	}
}

func TestCodeForName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"United States", "US"},
		{"united states", "US"},
		{"  United Kingdom  ", "GB"},
		{"Türkiye", "TR"},
		{"Turkey", "TR"},
		{"Madeira", "PT"},
		{"Atlantis", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := CodeForName(tt.name); got != tt.want {
			t.Errorf("CodeForName(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestNameForCode(t *testing.T) {
	if got := NameForCode("US"); got != "United States" {
		t.Errorf("NameForCode(US) = %q, want %q", got, "United States")
	}
	if got := NameForCode("XX"); got != "" {
		t.Errorf("NameForCode(XX) = %q, want empty", got)
	}
}

func TestDisplayNameClosedTable(t *testing.T) {
	if got := DisplayName("JP"); got != "Japan" {
		t.Errorf("DisplayName(JP) = %q, want Japan", got)
	}
	if got := DisplayName("YE"); got != "Yemen" {
		t.Errorf("DisplayName(YE) = %q, want Yemen", got)
	}
	// Resolvable code outside the closed list stays unmapped.
	if got := DisplayName("NL"); got != "" {
		t.Errorf("DisplayName(NL) = %q, want empty", got)
	}
}

func TestDisplayNamesAreTableKeys(t *testing.T) {
	for code := range displayNames {
		if NameForCode(code) == "" {
			t.Errorf("display fallback code %q missing from country table", code)
		}
	}
}

func TestCityAndAltCodesAreTableKeys(t *testing.T) {
	for _, c := range cities {
		if NameForCode(c.Code) == "" {
			t.Errorf("city %q maps to unknown code %q", c.City, c.Code)
		}
	}
	for _, a := range altNames {
		if NameForCode(a.Code) == "" {
			t.Errorf("alternate %q maps to unknown code %q", a.Name, a.Code)
		}
	}
}

func TestExtractParenthetical(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"Tokyo FM (Osaka, Japan)", "Osaka, Japan"},
		{"No parens here", ""},
		{"Unbalanced (open", ""},
		{"( spaced )", "spaced"},
		{"a (b) c (d)", "b"},
	}
	for _, tt := range tests {
		if got := ExtractParenthetical(tt.text); got != tt.want {
			t.Errorf("ExtractParenthetical(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestLastPartAfterComma(t *testing.T) {
	if got := LastPartAfterComma("Osaka, Kansai, Japan"); got != "Japan" {
		t.Errorf("LastPartAfterComma = %q, want Japan", got)
	}
	if got := LastPartAfterComma("no comma"); got != "no comma" {
		t.Errorf("LastPartAfterComma = %q, want input unchanged", got)
	}
}

func TestTokenize(t *testing.T) {
	got := Tokenize("Radio-One [Jakarta] (FM), 104.5")
	want := []string{"Radio", "One", "Jakarta", "104"}
	if len(got) != len(want) {
		t.Fatalf("Tokenize = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
