package login

import (
	"net/http"
	"strings"

	"herbadmin/frontend/shared/status"
	"herbadmin/infrastructure/backend"
	"herbadmin/infrastructure/cache"
	"herbadmin/infrastructure/seal"
	sessioncookie "herbadmin/infrastructure/session"
	"herbadmin/infrastructure/sqlite"
	"herbadmin/models"
)

// CreateLoginHandler validates the credentials against the backend and
// issues a session cookie. The Basic token is kept in memory and written to
// sqlite only in sealed form.
func CreateLoginHandler(client *backend.Client, db *sqlite.DB, sessions *cache.SessionCache, sealer *seal.Sealer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Redirect(w, r, "/admin?"+status.Invalid("Ungültige Formulardaten.").Query(), http.StatusSeeOther)
			return
		}

		username := strings.TrimSpace(r.FormValue("username"))
		password := r.FormValue("password")
		if username == "" {
			http.Redirect(w, r, "/admin?"+status.Invalid("Bitte gib deinen Benutzernamen ein!").Query(), http.StatusSeeOther)
			return
		}
		if password == "" {
			http.Redirect(w, r, "/admin?"+status.Invalid("Bitte gib dein Passwort ein!").Query(), http.StatusSeeOther)
			return
		}

		if err := client.Login(r.Context(), username, password); err != nil {
			http.Redirect(w, r, "/admin?"+status.Failed("Bei der Anmeldung ist ein Fehler aufgetreten! Bitte überprüfe deinen Benutzernamen und das Passwort").Query(), http.StatusSeeOther)
			return
		}

		session := models.Session{
			ID:         newSessionToken(),
			Username:   username,
			Credential: backend.BasicToken(username, password),
			ExpiresAt:  sessioncookie.DefaultExpiry(),
		}
		if err := persistSession(r.Context(), db, sealer, session); err != nil {
			http.Redirect(w, r, "/admin?"+status.Failed("Sitzung konnte nicht angelegt werden.").Query(), http.StatusSeeOther)
			return
		}

		sessions.Add(session)
		http.SetCookie(w, sessioncookie.SessionCookie(session.ID, 12*60*60))
		http.Redirect(w, r, "/admin/orders", http.StatusSeeOther)
	}
}
