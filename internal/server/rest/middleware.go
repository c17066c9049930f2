package rest

import (
	"net/http"
	"strings"

	"github.com/dmitrijs2005/authdemo/internal/common"
)

// bearerLogger records whether a request carried a bearer token. The
// store never validates it.
func (s *Server) bearerLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := r.Header.Get(common.AuthorizationHeaderName)
		s.logger.Debug(r.Context(), "request",
			"method", r.Method, "path", r.URL.Path,
			"bearer", strings.HasPrefix(h, common.BearerPrefix) && len(h) > len(common.BearerPrefix))
		next.ServeHTTP(w, r)
	})
}
