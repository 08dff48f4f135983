package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func applySecurityHeaders(t *testing.T, isDev bool) http.Header {
	t.Helper()

	handler := SecurityHeaders(DefaultSecurityHeadersConfig(isDev))(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	return rec.Header()
}

func TestSecurityHeaders_Production(t *testing.T) {
	headers := applySecurityHeaders(t, false)

	hsts := headers.Get("Strict-Transport-Security")
	if !strings.Contains(hsts, "max-age=31536000") {
		t.Errorf("HSTS = %q, want one year max-age", hsts)
	}
	if !strings.Contains(hsts, "includeSubDomains") {
		t.Errorf("HSTS = %q, want includeSubDomains", hsts)
	}

	if got := headers.Get("X-Frame-Options"); got != "DENY" {
		t.Errorf("X-Frame-Options = %q, want DENY", got)
	}
	if got := headers.Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q", got)
	}

	csp := headers.Get("Content-Security-Policy")
	if !strings.HasPrefix(csp, "default-src 'self'") {
		t.Errorf("CSP = %q, want default-src 'self' first", csp)
	}
	if !strings.Contains(csp, "object-src 'none'") {
		t.Errorf("CSP = %q, want object-src 'none'", csp)
	}
}

func TestSecurityHeaders_DevelopmentSkipsHSTS(t *testing.T) {
	headers := applySecurityHeaders(t, true)

	if got := headers.Get("Strict-Transport-Security"); got != "" {
		t.Errorf("HSTS = %q, want empty in development", got)
	}
	if headers.Get("Content-Security-Policy") == "" {
		t.Error("CSP missing in development")
	}
}
