package session

import (
	"net/http"
	"time"
)

// CookieName carries the admin session token. The cookie is scoped to the
// admin path so it is never sent on asset requests.
const CookieName = "herbauth"

func SessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/admin",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   false,
	}
}

func DefaultExpiry() time.Time {
	return time.Now().Add(12 * time.Hour)
}
