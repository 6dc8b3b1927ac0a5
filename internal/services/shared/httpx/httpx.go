// Package httpx provides HTTP middleware and response helpers for the console.
package httpx

import (
	"log"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/louisbranch/arenacontrol/internal/platform/id"
)

const (
	requestIDHeader    = "X-Request-ID"
	htmxHeader         = "HX-Request"
	htmxRedirectHeader = "HX-Redirect"
)

// Middleware wraps an HTTP handler.
type Middleware func(http.Handler) http.Handler

// Chain applies middleware in declaration order.
func Chain(handler http.Handler, middleware ...Middleware) http.Handler {
	if handler == nil {
		handler = http.NotFoundHandler()
	}
	wrapped := handler
	for idx := len(middleware) - 1; idx >= 0; idx-- {
		if middleware[idx] == nil {
			continue
		}
		wrapped = middleware[idx](wrapped)
	}
	return wrapped
}

// RequireMethod rejects requests using any other method with 405.
func RequireMethod(methods ...string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !MethodAllowed(w, r, methods...) {
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// MethodAllowed reports whether r uses one of methods. Otherwise it answers
// 405 with an Allow header and returns false.
func MethodAllowed(w http.ResponseWriter, r *http.Request, methods ...string) bool {
	for _, method := range methods {
		if r.Method == method {
			return true
		}
	}
	w.Header().Set("Allow", strings.Join(methods, ", "))
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	return false
}

// RequestID echoes the caller's X-Request-ID or mints a new one.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := strings.TrimSpace(r.Header.Get(requestIDHeader))
			if requestID == "" {
				generated, err := id.NewID()
				if err != nil {
					log.Printf("generate request id: %v", err)
				}
				requestID = "console-" + generated
				r.Header.Set(requestIDHeader, requestID)
			}
			w.Header().Set(requestIDHeader, requestID)
			next.ServeHTTP(w, r)
		})
	}
}

// RecoverPanic logs a panic with its stack and answers 500.
func RecoverPanic() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}
				if recovered == http.ErrAbortHandler {
					panic(recovered)
				}
				log.Printf(
					"panic recovered method=%s path=%s request_id=%s panic=%v stack=%s",
					r.Method,
					r.URL.Path,
					r.Header.Get(requestIDHeader),
					recovered,
					strings.TrimSpace(string(debug.Stack())),
				)
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// IsHTMXRequest reports whether the request came from htmx.
func IsHTMXRequest(r *http.Request) bool {
	return r != nil && r.Header.Get(htmxHeader) == "true"
}

// WriteRedirect redirects with HX-Redirect for htmx requests and 303 otherwise,
// so a POST is always followed by a GET.
func WriteRedirect(w http.ResponseWriter, r *http.Request, location string) {
	if IsHTMXRequest(r) {
		w.Header().Set(htmxRedirectHeader, location)
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, location, http.StatusSeeOther)
}
