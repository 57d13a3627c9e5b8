package html

import (
	"fmt"

	"herbadmin/frontend/shared/status"

	"github.com/a-h/templ"
)

// RenderLayout wraps a page body in the shared document shell.
func RenderLayout(title, nav, body string) string {
	return fmt.Sprintf("<!doctype html><html lang=\"de\"><head><meta charset=\"utf-8\"><meta name=\"viewport\" content=\"width=device-width, initial-scale=1\"><title>%s</title><link rel=\"stylesheet\" href=\"/assets/app.css\"></head><body>%s<main>%s</main>%s</body></html>",
		templ.EscapeString(title), nav, body, CSRFFormScript())
}

// RenderStatus renders the tagged form status. The switch is exhaustive over
// every variant the message slot can take.
func RenderStatus(s status.Status) string {
	switch s.Kind {
	case status.Idle:
		return ""
	case status.Validating:
		return fmt.Sprintf(`<p class="status status-validation">%s</p>`, templ.EscapeString(s.Message))
	case status.InProgress:
		return `<progress class="status status-progress"></progress>`
	case status.Success:
		return fmt.Sprintf(`<p class="status status-success">%s</p>`, templ.EscapeString(s.Message))
	case status.Failure:
		return fmt.Sprintf(`<p class="status status-failure">%s</p>`, templ.EscapeString(s.Message))
	}
	return ""
}
