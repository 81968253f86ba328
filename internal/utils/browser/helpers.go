package browser

import (
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// BaseDomain returns the base domain for an inputted URL.
func BaseDomain(rawURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", err
	}
	host := u.Hostname()
	if host == "" {
		return "", fmt.Errorf("no host in URL %q", rawURL)
	}
	return publicsuffix.EffectiveTLDPlusOne(host)
}

// mergeCookies deduplicates cookies by domain, path and name. Later
// duplicates win. Output is sorted for stable files.
func mergeCookies(cookies []*http.Cookie) []*http.Cookie {
	cookieMap := make(map[string]*http.Cookie, len(cookies))
	for _, c := range cookies {
		if c == nil {
			continue
		}
		cookieMap[cookieKey(c)] = c
	}

	merged := make([]*http.Cookie, 0, len(cookieMap))
	for _, c := range cookieMap {
		merged = append(merged, c)
	}
	sort.Slice(merged, func(i, j int) bool {
		return cookieKey(merged[i]) < cookieKey(merged[j])
	})
	return merged
}

func cookieKey(c *http.Cookie) string {
	return c.Domain + "|" + c.Path + "|" + c.Name
}
