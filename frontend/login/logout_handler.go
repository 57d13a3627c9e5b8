package login

import (
	"net/http"

	"herbadmin/infrastructure/cache"
	sessioncookie "herbadmin/infrastructure/session"
	"herbadmin/infrastructure/sqlite"
)

// LogoutHandler removes session state and clears the cookie.
func LogoutHandler(db *sqlite.DB, sessions *cache.SessionCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessioncookie.CookieName)
		if err == nil && cookie.Value != "" {
			sessions.Delete(cookie.Value)
			_ = DeleteSessionByToken(r.Context(), db, cookie.Value)
		}
		http.SetCookie(w, sessioncookie.SessionCookie("", -1))
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
	}
}
