package metadata

import (
	"net/http"
	"net/http/httptest"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"concursos/pkg/requestcontext"
)

func TestMiddlewareHandler(t *testing.T) {
	tests := []struct {
		name           string
		headers        map[string]string
		remoteAddr     string
		trustedProxies string
		expectedIP     string
		expectedUA     string
	}{
		{
			name:       "ignores XFF from untrusted peer",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.1", "User-Agent": "Mozilla/5.0"},
			remoteAddr: "192.168.1.1:12345",
			expectedIP: "192.168.1.1",
			expectedUA: "Mozilla/5.0",
		},
		{
			name:           "trusts XFF from trusted proxy",
			headers:        map[string]string{"X-Forwarded-For": "203.0.113.1, 10.0.0.2", "User-Agent": "curl/7.64.1"},
			remoteAddr:     "10.0.0.1:12345",
			trustedProxies: "10.0.0.0/8",
			expectedIP:     "203.0.113.1",
			expectedUA:     "curl/7.64.1",
		},
		{
			name:           "uses X-Real-IP from trusted proxy",
			headers:        map[string]string{"X-Real-IP": "198.51.100.7"},
			remoteAddr:     "10.0.0.1:12345",
			trustedProxies: "10.0.0.1",
			expectedIP:     "198.51.100.7",
		},
		{
			name:           "falls back on malformed XFF",
			headers:        map[string]string{"X-Forwarded-For": "not-an-ip"},
			remoteAddr:     "10.0.0.1:12345",
			trustedProxies: "10.0.0.0/8",
			expectedIP:     "10.0.0.1",
		},
		{
			name:       "ipv6 peer",
			remoteAddr: "[2001:db8::1]:443",
			expectedIP: "2001:db8::1",
		},
		{
			name:       "missing remote addr",
			remoteAddr: "",
			expectedIP: "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefixes, err := ParseTrustedProxies(tt.trustedProxies)
			require.NoError(t, err)

			var gotIP, gotUA string
			handler := NewMiddleware(&Config{TrustedProxies: prefixes}).Handler(
				http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					gotIP = requestcontext.ClientIP(r.Context())
					gotUA = requestcontext.UserAgent(r.Context())
				}))

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			handler.ServeHTTP(httptest.NewRecorder(), req)

			assert.Equal(t, tt.expectedIP, gotIP)
			assert.Equal(t, tt.expectedUA, gotUA)
		})
	}
}

func TestParseTrustedProxies(t *testing.T) {
	got, err := ParseTrustedProxies(" 10.0.0.0/8, 192.168.1.5 ,")
	require.NoError(t, err)
	assert.Equal(t, []netip.Prefix{
		netip.MustParsePrefix("10.0.0.0/8"),
		netip.MustParsePrefix("192.168.1.5/32"),
	}, got)

	got, err = ParseTrustedProxies("")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = ParseTrustedProxies("10.0.0.0/99")
	assert.Error(t, err)
}
