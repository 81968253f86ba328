// Package browser exports browser cookies for yt-dlp's --cookies option.
package browser

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"ytcli/internal/domain/consts"
	"ytcli/internal/utils/logging"

	"github.com/browserutils/kooky"
	// Use all browsers for Kooky:
	_ "github.com/browserutils/kooky/browser/all"
)

const netscapeHeader = "# Netscape HTTP Cookie File\n# https://curl.haxx.se/rfc/cookie_spec.html\n# This is a generated file! Do not edit.\n\n"

// cookieSource reads valid cookies for domain, optionally from one browser.
type cookieSource func(ctx context.Context, browserName, domain string) ([]*http.Cookie, error)

// readCookies is swapped out in tests.
var readCookies cookieSource = readKookyCookies

// ExportCookies writes the cookies a browser holds for rawURL's domain to
// outPath in Netscape format. An empty browserName searches all browsers.
// It returns the number of cookies written.
func ExportCookies(ctx context.Context, browserName, rawURL, outPath string) (int, error) {
	if strings.TrimSpace(outPath) == "" {
		return 0, fmt.Errorf("no output path for cookie export")
	}

	domain, err := BaseDomain(rawURL)
	if err != nil {
		return 0, fmt.Errorf("error extracting base domain in cookie grab: %w", err)
	}

	cookies, err := readCookies(ctx, strings.ToLower(strings.TrimSpace(browserName)), domain)
	if err != nil {
		return 0, err
	}
	cookies = mergeCookies(cookies)
	if len(cookies) == 0 {
		return 0, fmt.Errorf("no cookies found for %s", domain)
	}

	if err := saveCookiesToFile(cookies, domain, outPath); err != nil {
		return 0, err
	}
	logging.S("Wrote %d cookies for %s to %q", len(cookies), domain, outPath)
	return len(cookies), nil
}

// readKookyCookies walks the cookie stores kooky can find. ctx is checked
// between stores.
func readKookyCookies(ctx context.Context, browserName, domain string) ([]*http.Cookie, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		found     []*http.Cookie
		attempted []string
	)

	stores := kooky.FindAllCookieStores()
	for i, store := range stores {
		if err := ctx.Err(); err != nil {
			closeStores(stores[i:])
			return nil, err
		}

		name := store.Browser()
		if browserName != "" && !strings.EqualFold(name, browserName) {
			store.Close()
			continue
		}
		attempted = append(attempted, name)

		profile := store.Profile()
		cookies, err := store.ReadCookies(kooky.Valid, kooky.Domain(domain))
		store.Close()
		if err != nil {
			logging.D(2, "Failed to read cookies from %s: %v", name, err)
			continue
		}
		logging.D(1, "Read %d cookies from %s (%s) for %s", len(cookies), name, profile, domain)
		found = append(found, convertToHTTPCookies(cookies)...)
	}

	if len(attempted) == 0 {
		if browserName != "" {
			return nil, fmt.Errorf("no cookie store found for browser %q", browserName)
		}
		return nil, fmt.Errorf("no browser cookie stores found")
	}
	logging.D(1, "Attempted to read cookies from the following browsers: %v", attempted)
	return found, nil
}

// closeStores releases stores that will not be read.
func closeStores(stores []kooky.CookieStore) {
	for _, store := range stores {
		store.Close()
	}
}

// convertToHTTPCookies converts kooky cookies to http.Cookie format.
func convertToHTTPCookies(kookyCookies []*kooky.Cookie) []*http.Cookie {
	httpCookies := make([]*http.Cookie, 0, len(kookyCookies))
	for _, c := range kookyCookies {
		if c == nil {
			continue
		}
		httpCookies = append(httpCookies, &http.Cookie{
			Name:     c.Name,
			Value:    c.Value,
			Path:     c.Path,
			Domain:   c.Domain,
			Expires:  c.Expires,
			Secure:   c.Secure,
			HttpOnly: c.HttpOnly,
		})
	}
	return httpCookies
}

// saveCookiesToFile saves the cookies to a file in Netscape format.
func saveCookiesToFile(cookies []*http.Cookie, fallbackDomain, cookieFilePath string) (err error) {
	if dir := filepath.Dir(cookieFilePath); dir != "." {
		if err := os.MkdirAll(dir, consts.PermsGenericDir); err != nil {
			return fmt.Errorf("failed to create directory for %q: %w", cookieFilePath, err)
		}
	}

	file, err := os.OpenFile(cookieFilePath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, consts.PermsCookieFile)
	if err != nil {
		return err
	}
	defer func() {
		if cErr := file.Close(); cErr != nil && err == nil {
			err = fmt.Errorf("failed to close file %q: %w", cookieFilePath, cErr)
		}
	}()

	logging.D(1, "Saving %d cookies to file %s...", len(cookies), cookieFilePath)
	return WriteNetscape(file, cookies, fallbackDomain)
}

// WriteNetscape writes cookies in the Netscape cookies.txt format yt-dlp reads.
// Cookies without a domain are written under fallbackDomain.
func WriteNetscape(w io.Writer, cookies []*http.Cookie, fallbackDomain string) error {
	if _, err := io.WriteString(w, netscapeHeader); err != nil {
		return err
	}

	for _, cookie := range cookies {
		domain := cookie.Domain
		if domain == "" {
			domain = fallbackDomain
		}

		subdomains := "FALSE"
		if strings.HasPrefix(domain, ".") {
			subdomains = "TRUE"
		}

		if cookie.HttpOnly {
			domain = "#HttpOnly_" + domain
		}

		path := cookie.Path
		if path == "" {
			path = "/"
		}

		secure := "FALSE"
		if cookie.Secure {
			secure = "TRUE"
		}

		// Session cookies carry 0.
		expires := int64(0)
		if !cookie.Expires.IsZero() {
			expires = cookie.Expires.Unix()
		}

		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			domain, subdomains, path, secure, expires, cookie.Name, cookie.Value); err != nil {
			return err
		}
	}
	return nil
}
