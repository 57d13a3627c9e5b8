package login

import (
	"net/http"

	"herbadmin/frontend/shared/status"
)

// GetLoginScreenHandler renders the login screen.
func GetLoginScreenHandler(w http.ResponseWriter, r *http.Request) {
	formStatus := status.FromQuery(r.URL.Query())
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := GetLoginScreen(formStatus).Render(r.Context(), w); err != nil {
		http.Error(w, "failed to render login screen", http.StatusInternalServerError)
		return
	}
}
