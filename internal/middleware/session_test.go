package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSessionMiddleware_WithValidCookie(t *testing.T) {
	m := NewSessionMiddleware("test-secret")

	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		if !IsAdminSession(r.Context()) {
			t.Fatalf("admin session flag not in context")
		}
	})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/admin/bookings", nil)

	m.SetSessionCookie(w)
	res := w.Result()
	resCookies := res.Cookies()
	if len(resCookies) == 0 {
		t.Fatalf("no cookies set by SetSessionCookie")
	}
	if !resCookies[0].Expires.IsZero() {
		t.Fatalf("session cookie must not carry Expires, got %v", resCookies[0].Expires)
	}

	r.AddCookie(resCookies[0])

	handler := m.Middleware(next)
	handler.ServeHTTP(httptest.NewRecorder(), r)

	if !nextCalled {
		t.Fatalf("next handler was not called")
	}
}

func TestSessionMiddleware_WithoutCookie(t *testing.T) {
	m := NewSessionMiddleware("test-secret")

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("next handler should not be called")
	})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/admin/bookings", nil)

	handler := m.Middleware(next)
	handler.ServeHTTP(w, r)

	res := w.Result()
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", res.StatusCode, http.StatusUnauthorized)
	}
}

func TestSessionMiddleware_TamperedCookieRejected(t *testing.T) {
	m := NewSessionMiddleware("test-secret")

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("next handler should not be called")
	})

	w := httptest.NewRecorder()
	m.SetSessionCookie(w)
	cookie := w.Result().Cookies()[0]
	cookie.Value = "0" + cookie.Value

	r := httptest.NewRequest(http.MethodGet, "/api/admin/bookings", nil)
	r.AddCookie(cookie)

	respRec := httptest.NewRecorder()
	m.Middleware(next).ServeHTTP(respRec, r)

	if respRec.Result().StatusCode != http.StatusUnauthorized {
		t.Fatalf("tampered cookie must be rejected")
	}
}

func TestClearSessionCookie(t *testing.T) {
	m := NewSessionMiddleware("test-secret")

	w := httptest.NewRecorder()
	m.ClearSessionCookie(w)

	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatalf("no cookies set by ClearSessionCookie")
	}
	if cookies[0].MaxAge >= 0 {
		t.Fatalf("MaxAge = %d, want negative", cookies[0].MaxAge)
	}
}
