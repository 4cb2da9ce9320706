package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCORS(t *testing.T) {
	t.Parallel()

	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("preflight for POST from any origin", func(t *testing.T) {
		t.Parallel()

		h := CORS([]string{"*"})(ok)
		req := httptest.NewRequest(http.MethodOptions, "/google-login", nil)
		req.Header.Set("Origin", "http://10.0.2.2:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", "Content-Type, X-Custom")
		w := httptest.NewRecorder()

		h.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Errorf("status = %d, want %d", w.Code, http.StatusNoContent)
		}
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, "*")
		}
		if got := w.Header().Get("Access-Control-Allow-Methods"); got != http.MethodPost {
			t.Errorf("Access-Control-Allow-Methods = %q, want %q", got, http.MethodPost)
		}
	})

	t.Run("preflight for GET is refused", func(t *testing.T) {
		t.Parallel()

		h := CORS([]string{"*"})(ok)
		req := httptest.NewRequest(http.MethodOptions, "/google-login", nil)
		req.Header.Set("Origin", "http://10.0.2.2:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		w := httptest.NewRecorder()

		h.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("Access-Control-Allow-Origin = %q, want empty", got)
		}
	})

	t.Run("simple POST gets the allow-origin header", func(t *testing.T) {
		t.Parallel()

		h := CORS([]string{"*"})(ok)
		req := httptest.NewRequest(http.MethodPost, "/google-login", nil)
		req.Header.Set("Origin", "https://app.example.com")
		w := httptest.NewRecorder()

		h.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
		}
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, "*")
		}
	})

	t.Run("origin outside the allow list", func(t *testing.T) {
		t.Parallel()

		h := CORS([]string{"https://app.example.com"})(ok)
		req := httptest.NewRequest(http.MethodPost, "/google-login", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		w := httptest.NewRecorder()

		h.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("Access-Control-Allow-Origin = %q, want empty", got)
		}
	})
}
