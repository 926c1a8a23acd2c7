package detail

import (
	"fmt"
	"strings"
	"time"
)

// HTTPS normalizes an asset URL to https. Protocol-relative URLs get a
// scheme; empty input stays empty.
func HTTPS(u string) string {
	switch {
	case u == "":
		return ""
	case strings.HasPrefix(u, "//"):
		return "https:" + u
	case strings.HasPrefix(u, "http://"):
		return "https://" + strings.TrimPrefix(u, "http://")
	}
	return u
}

var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

// ReleaseDate formats a card release date like "Apr 16th 2013".
// Unparseable input is returned as is.
func ReleaseDate(s string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return fmt.Sprintf("%s %d%s %d", t.Format("Jan"), t.Day(), ordinal(t.Day()), t.Year())
		}
	}
	return s
}

func ordinal(n int) string {
	if n%100 >= 11 && n%100 <= 13 {
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}
