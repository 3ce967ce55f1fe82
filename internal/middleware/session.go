// Package middleware содержит HTTP middleware сайта сервиса уборки.
package middleware

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strconv"
	"strings"
	"time"
)

type contextKey string

const adminSessionKey contextKey = "adminSession"

// Cookie живёт только в рамках браузерной сессии: Expires не выставляется.
const sessionCookieName = "admin_session"

// SessionMiddleware проверяет подписанную cookie админской сессии.
// Валидная cookie принимается без повторной проверки секрета
// (модель trust-on-restart, унаследованная от исходной схемы).
type SessionMiddleware struct {
	secretKey []byte
}

// NewSessionMiddleware создаёт новый экземпляр SessionMiddleware с указанным ключом подписи.
func NewSessionMiddleware(secret string) *SessionMiddleware {
	key := []byte(secret)
	if len(key) == 0 {
		randomKey := make([]byte, 32)
		if _, err := rand.Read(randomKey); err == nil {
			key = randomKey
		} else {
			key = []byte("default-secret-key")
		}
	}

	return &SessionMiddleware{
		secretKey: key,
	}
}

// Middleware пропускает запрос дальше только при валидной админской cookie,
// иначе отвечает 401.
func (m *SessionMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookieName)
		if err != nil {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		if !m.parseCookie(cookie.Value) {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), adminSessionKey, true)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SetSessionCookie устанавливает маркер админской сессии после успешного логина.
func (m *SessionMiddleware) SetSessionCookie(w http.ResponseWriter) {
	cookie := &http.Cookie{
		Name:     sessionCookieName,
		Value:    m.signIssuedAt(time.Now().Unix()),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	http.SetCookie(w, cookie)
}

// ClearSessionCookie безусловно снимает маркер сессии (логаут).
func (m *SessionMiddleware) ClearSessionCookie(w http.ResponseWriter) {
	cookie := &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	http.SetCookie(w, cookie)
}

func (m *SessionMiddleware) signIssuedAt(issuedAt int64) string {
	mac := hmac.New(sha256.New, m.secretKey)
	tsStr := strconv.FormatInt(issuedAt, 10)
	mac.Write([]byte(tsStr))
	signature := mac.Sum(nil)
	return tsStr + "." + hex.EncodeToString(signature)
}

func (m *SessionMiddleware) parseCookie(cookieValue string) bool {
	parts := strings.Split(cookieValue, ".")
	if len(parts) != 2 {
		return false
	}

	tsStr := parts[0]
	signature := parts[1]

	issuedAt, err := strconv.ParseInt(tsStr, 10, 64)
	if err != nil {
		return false
	}

	expected := m.signIssuedAt(issuedAt)
	expectedParts := strings.Split(expected, ".")
	if len(expectedParts) != 2 {
		return false
	}

	return hmac.Equal([]byte(signature), []byte(expectedParts[1]))
}

// IsAdminSession сообщает, прошёл ли запрос проверку админской сессии.
func IsAdminSession(ctx context.Context) bool {
	v, ok := ctx.Value(adminSessionKey).(bool)
	return ok && v
}
