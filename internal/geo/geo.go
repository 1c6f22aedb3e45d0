// Package geo guesses a country from free-text station titles and subtitles.
//
// The directory upstream rarely provides a structured country field, so the
// UI has to work from display strings like "Tokyo FM (Osaka, Japan)". Detect
// runs an ordered chain of matching strategies against static country and
// city tables; the first strategy that produces a code wins.
package geo

import "strings"

// Location is the result of a detection. CountryCode is empty when no
// strategy matched; a non-empty code is always a key of the country table.
type Location struct {
	CountryCode  string `json:"countryCode"`
	LocationName string `json:"locationName"`
}

// Detect resolves a best-guess country from free text. It is pure and total:
// empty or unmatched input yields a zero Location, never an error.
//
// Strategy order, most trusted first:
//  1. parenthesized segment, resolved recursively
//  2. text after the last comma as a country name
//  3. the whole string as a country name
//  4. curated city names as substrings
//  5. alternate country spellings as substrings
//  6. individual tokens as country names
//  7. tokens against cities with bidirectional containment
//
// Earlier strategies win regardless of match quality: comma-trailing text in
// "City, Country" subtitles is trusted most, loose token scanning least.
func Detect(text string) Location {
	if text == "" {
		return Location{}
	}

	if inner := ExtractParenthetical(text); inner != "" {
		if loc := detectInner(inner); loc.CountryCode != "" {
			// Keep the full parenthetical as the label, not the
			// sub-resolution's own (usually shorter) one.
			return Location{CountryCode: loc.CountryCode, LocationName: inner}
		}
	}

	if loc := detectInner(text); loc.CountryCode != "" {
		return loc
	}

	// Last resort: tokens against the city table, matching either direction.
	for _, tok := range Tokenize(text) {
		lower := strings.ToLower(tok)
		for _, c := range cities {
			city := strings.ToLower(c.City)
			if strings.Contains(lower, city) || strings.Contains(city, lower) {
				return Location{CountryCode: c.Code, LocationName: tok}
			}
		}
	}

	return Location{}
}

// detectInner runs strategies 2-6. It is also the sub-resolver for
// parenthesized segments, which deliberately skips the fuzzy city fallback.
func detectInner(text string) Location {
	if text == "" {
		return Location{}
	}

	if strings.Contains(text, ",") {
		last := LastPartAfterComma(text)
		if code := CodeForName(last); code != "" {
			return Location{CountryCode: code, LocationName: last}
		}
	}

	if code := CodeForName(text); code != "" {
		return Location{CountryCode: code, LocationName: text}
	}

	lower := strings.ToLower(text)

	for _, c := range cities {
		if strings.Contains(lower, strings.ToLower(c.City)) {
			return Location{CountryCode: c.Code, LocationName: c.City}
		}
	}

	for _, alt := range altNames {
		if matchAlt(lower, text, alt.Name) {
			return Location{CountryCode: alt.Code, LocationName: alt.Name}
		}
	}

	for _, tok := range Tokenize(text) {
		if code := CodeForName(tok); code != "" {
			return Location{CountryCode: code, LocationName: tok}
		}
	}

	return Location{}
}

// matchAlt matches an alternate spelling inside the text. Short forms such
// as "UK" or "USA" only match as whole words, otherwise "UK" would fire
// inside "Fukuoka".
func matchAlt(lowerText, text, name string) bool {
	if len(name) > 3 {
		return strings.Contains(lowerText, strings.ToLower(name))
	}
	for _, w := range splitWords(text) {
		if strings.EqualFold(w, name) {
			return true
		}
	}
	return false
}

// CodeForName resolves a display name to its country code. Exact matches are
// tried first, then case-insensitive ones, both in table order. Returns ""
// when the name is unknown.
func CodeForName(name string) string {
	if name == "" {
		return ""
	}
	for _, c := range countries {
		for _, n := range c.Names {
			if n == name {
				return c.Code
			}
		}
	}
	trimmed := strings.TrimSpace(name)
	for _, c := range countries {
		for _, n := range c.Names {
			if strings.EqualFold(n, trimmed) {
				return c.Code
			}
		}
	}
	return ""
}

// NameForCode returns the canonical display name for a code, "" if unknown.
func NameForCode(code string) string {
	names, ok := countryByCode[code]
	if !ok || len(names) == 0 {
		return ""
	}
	return names[0]
}

// DisplayName maps a small closed set of common codes to an English name.
// It backs the "record resolved to a code but has no usable label" path;
// codes outside the set return "".
func DisplayName(code string) string {
	return displayNames[code]
}

// ExtractParenthetical returns the trimmed text between the first "(" and
// the first ")" after it, or "" when the input has no such segment.
func ExtractParenthetical(text string) string {
	start := strings.Index(text, "(")
	if start < 0 {
		return ""
	}
	end := strings.Index(text[start:], ")")
	if end < 0 {
		return ""
	}
	return strings.TrimSpace(text[start+1 : start+end])
}

// LastPartAfterComma returns the trimmed text after the last comma, or the
// input unchanged when it has no comma.
func LastPartAfterComma(text string) string {
	idx := strings.LastIndex(text, ",")
	if idx < 0 {
		return text
	}
	return strings.TrimSpace(text[idx+1:])
}

// Tokenize splits text into candidate words: brackets are stripped, the rest
// is split on whitespace, commas, periods and hyphens, and tokens of one or
// two characters are dropped.
func Tokenize(text string) []string {
	words := splitWords(text)
	tokens := words[:0]
	for _, w := range words {
		if len(w) > 2 {
			tokens = append(tokens, w)
		}
	}
	return tokens
}

// splitWords is Tokenize without the short-token filter.
func splitWords(text string) []string {
	if text == "" {
		return nil
	}
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '(', ')', '[', ']', '{', '}':
			return ' '
		}
		return r
	}, text)

	return strings.FieldsFunc(cleaned, func(r rune) bool {
		switch r {
		case ' ', '\t', '\n', '\r', ',', '.', '-':
			return true
		}
		return false
	})
}
