// Package device describes the client device of each request for logs.
package device

import (
	"net/http"
	"strings"

	"github.com/mssola/useragent"

	"concursos/pkg/requestcontext"
)

// Unknown is the description used when no User-Agent was sent.
const Unknown = "Unknown Device"

// Describe turns a User-Agent string into "Browser on OS" ("Chrome on Linux",
// "Safari on iPhone"). Mobile agents report their platform instead of the OS.
func Describe(userAgent string) string {
	if strings.TrimSpace(userAgent) == "" {
		return Unknown
	}

	ua := useragent.New(userAgent)
	if ua.Bot() {
		name, _ := ua.Browser()
		if name == "" {
			name = "Bot"
		}
		return name + " (bot)"
	}

	browser, _ := ua.Browser()
	if browser == "" {
		browser = "Unknown Browser"
	}

	if ua.Mobile() {
		if platform := ua.Platform(); platform != "" {
			return strings.TrimSpace(browser + " on " + platform)
		}
	}

	os := ua.OS()
	if os == "" {
		os = "Unknown OS"
	}
	return strings.TrimSpace(browser + " on " + os)
}

// Device stores Describe(User-Agent) in the request context. Register it
// after the metadata middleware, which extracts the User-Agent.
func Device(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		ctx = requestcontext.WithDevice(ctx, Describe(requestcontext.UserAgent(ctx)))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
