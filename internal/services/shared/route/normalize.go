// Package route holds path normalization shared by route modules.
package route

import (
	"net/http"
	"strings"
)

// RedirectTrailingSlash redirects "/x/" to "/x", keeping the query string.
//
// It returns true when a redirect was written; callers stop handling then.
func RedirectTrailingSlash(w http.ResponseWriter, r *http.Request) bool {
	if w == nil || r == nil || r.URL == nil {
		return false
	}

	canonical := strings.TrimRight(r.URL.Path, "/")
	if canonical == "" {
		canonical = "/"
	}
	if canonical == r.URL.Path {
		return false
	}
	if r.URL.RawQuery != "" {
		canonical += "?" + r.URL.RawQuery
	}
	http.Redirect(w, r, canonical, http.StatusMovedPermanently)
	return true
}
