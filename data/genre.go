package data

import "strings"

// UnknownGenre is the label for tracks whose genre list is empty or
// unparseable. It is a real bucket, not an error marker.
const UnknownGenre = "Unknown"

// TopGenre extracts a single genre label from the source file's printed list
// literal, like "['pop', 'dance pop']" -> "pop".
//
// The parse is deliberately naive: strip one pair of brackets, split on
// commas, strip one pair of quotes per piece, first non-empty piece wins. A
// genre name containing a literal comma will mis-parse. That quirk is part of
// the bucketing contract -- every view buckets on the same extraction -- so
// it stays as is.
func TopGenre(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" || s == "[]" {
		return UnknownGenre
	}

	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")

	for _, piece := range strings.Split(s, ",") {
		piece = strings.TrimSpace(piece)
		piece = trimQuote(piece)
		if piece != "" {
			return piece
		}
	}
	return UnknownGenre
}

// trimQuote strips at most one leading and one trailing quote character,
// single or double, independently of each other.
func trimQuote(s string) string {
	if len(s) > 0 && (s[0] == '\'' || s[0] == '"') {
		s = s[1:]
	}
	if len(s) > 0 && (s[len(s)-1] == '\'' || s[len(s)-1] == '"') {
		s = s[:len(s)-1]
	}
	return s
}
