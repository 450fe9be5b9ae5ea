package catalog

import (
	"regexp"
	"strconv"
	"strings"
)

// Go regexps pick the leftmost-first alternative, not the longest one, so the
// comma-separated form must require at least one separator group or it would
// swallow just the first three digits of a plain number.
var priceTokenRe = regexp.MustCompile(`\d{1,3}(?:,\d{3})+(?:\.\d+)?|\d+(?:\.\d+)?`)

var typeSuffixRe = regexp.MustCompile(`[Tt]ype\s+(\d+)`)

// ParsePrice extracts whole euros from a formatted price string by taking the
// first numeric token and stripping thousands separators. It handles the site's
// literal formats, e.g.
//
//	"€ 212,520 v.o.n. ex. BTW"  -> 212520
//	"€212,520-€640,920"         -> 212520
//	"€ 610,400 - € 640,920 v.o.n. ex. BTW" -> 610400
//
// Returns ok=false when the string contains no number.
func ParsePrice(s string) (int64, bool) {
	token := priceTokenRe.FindString(s)
	if token == "" {
		return 0, false
	}
	token = strings.ReplaceAll(token, ",", "")
	// Drop any decimal part; catalog prices are whole euros.
	if i := strings.IndexByte(token, '.'); i >= 0 {
		token = token[:i]
	}
	n, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// SortPrice is ParsePrice with a zero fallback, for use as a sort key.
func SortPrice(s string) int64 {
	n, _ := ParsePrice(s)
	return n
}

// TypeNumber extracts the N from a "Type N" name suffix for numeric name
// sorting ("Bedrijfsunit Type 3" -> 3). Names without the pattern sort as 0.
func TypeNumber(name string) int {
	m := typeSuffixRe.FindStringSubmatch(name)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}
