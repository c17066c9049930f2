// Package guard decides whether a protected destination may be shown for a
// given session snapshot, and adapts that decision to net/http.
package guard

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/authdemo/internal/client/session"
)

// Decision is the outcome of gating a protected destination.
type Decision int

const (
	// Pending means the startup restore has not finished yet.
	Pending Decision = iota
	// Redirect sends the caller to the login entry point.
	Redirect
	// Allow renders the protected content.
	Allow
)

func (d Decision) String() string {
	switch d {
	case Pending:
		return "pending"
	case Redirect:
		return "redirect"
	case Allow:
		return "allow"
	default:
		return "unknown"
	}
}

// DefaultReturnPath is where a completed login lands without a usable "from".
const DefaultReturnPath = "/dashboard"

// FromParam is the query parameter carrying the originally requested path.
const FromParam = "from"

// Decide checks loading first, then authentication.
func Decide(s session.State) Decision {
	switch {
	case s.Loading:
		return Pending
	case !s.IsAuthenticated:
		return Redirect
	default:
		return Allow
	}
}

// LoginTarget returns loginPath with from attached as ?from=. A from that
// is not a same-origin relative path is replaced by DefaultReturnPath.
func LoginTarget(loginPath, from string) string {
	q := url.Values{}
	q.Set(FromParam, SafePath(from))
	return loginPath + "?" + q.Encode()
}

// ReturnTo reads the destination a login form should go back to.
func ReturnTo(r *http.Request) string {
	from := r.URL.Query().Get(FromParam)
	if from == "" {
		from = r.PostFormValue(FromParam)
	}
	return SafePath(from)
}

// SafePath keeps p only if it is an absolute path on this origin.
func SafePath(p string) string {
	if p == "" || !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") || strings.Contains(p, `\`) {
		return DefaultReturnPath
	}
	u, err := url.Parse(p)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return DefaultReturnPath
	}
	return p
}
