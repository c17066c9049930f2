package guard

import (
	"net/http"

	"github.com/dmitrijs2005/authdemo/internal/client/session"
)

// StateSource yields the current session snapshot. *session.Container
// satisfies it.
type StateSource interface {
	Snapshot() session.State
}

const pendingPage = `<!doctype html>
<html><head><meta charset="utf-8"><title>Checking authentication...</title></head>
<body><p>Checking authentication...</p></body></html>
`

// Middleware gates next behind Decide. Pending answers 202 with a short
// refresh so the browser retries once the restore is done. Redirect answers
// 303 to the login page, carrying the requested path.
func Middleware(src StateSource, loginPath string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch Decide(src.Snapshot()) {
			case Pending:
				w.Header().Set("Refresh", "1")
				w.Header().Set("Content-Type", "text/html; charset=utf-8")
				w.Header().Set("Cache-Control", "no-store")
				w.WriteHeader(http.StatusAccepted)
				_, _ = w.Write([]byte(pendingPage))
			case Redirect:
				http.Redirect(w, r, LoginTarget(loginPath, r.URL.RequestURI()), http.StatusSeeOther)
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}
