package login

import (
	"context"
	"io"

	"herbadmin/frontend/shared/html"
	"herbadmin/frontend/shared/status"

	"github.com/a-h/templ"
)

// GetLoginScreen renders the login form without the admin navigation.
func GetLoginScreen(formStatus status.Status) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		body := `<section class="login">
<h1>Login</h1>
` + html.RenderStatus(formStatus) + `
<form method="POST" action="/admin/login">
<label for="username">Benutzername</label>
<input type="text" id="username" name="username" autocomplete="username" autofocus>
<label for="password">Passwort</label>
<input type="password" id="password" name="password" autocomplete="current-password">
<button type="submit">Anmelden</button>
</form>
</section>`
		_, err := io.WriteString(w, html.RenderLayout("Login", "", body))
		return err
	})
}
