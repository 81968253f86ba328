package parsing

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

const ytdlpDateLayout = "20060102"

var (
	ytdlpDateRegex    = regexp.MustCompile(`^\d{8}$`)
	relativeDateRegex = regexp.MustCompile(`^(now|today|yesterday)([+-]\d+(day|week|month|year)s?)?$`)
)

// ParseYtdlpDate normalizes a date bound for --dateafter/--datebefore.
//
// YYYYMMDD and yt-dlp relative expressions (today-2weeks) pass through;
// anything else dateparse understands is converted to YYYYMMDD.
func ParseYtdlpDate(dateString string) (string, error) {
	d := strings.TrimSpace(dateString)
	if d == "" {
		return "", nil
	}

	if ytdlpDateRegex.MatchString(d) {
		if _, err := time.Parse(ytdlpDateLayout, d); err != nil {
			return "", fmt.Errorf("unable to parse date: %s", dateString)
		}
		return d, nil
	}

	if lower := strings.ToLower(d); relativeDateRegex.MatchString(lower) {
		return lower, nil
	}

	t, err := dateparse.ParseAny(d)
	if err != nil {
		return "", fmt.Errorf("unable to parse date: %s", dateString)
	}
	return t.Format(ytdlpDateLayout), nil
}

// HyphenateYyyyMmDd hyphenates YYYYMMDD values for display. Anything else,
// including relative expressions, is returned unchanged.
func HyphenateYyyyMmDd(d string) string {
	if !ytdlpDateRegex.MatchString(d) {
		return d
	}
	return d[0:4] + "-" + d[4:6] + "-" + d[6:8]
}
