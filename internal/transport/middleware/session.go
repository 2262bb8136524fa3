package middleware

import (
	"net/http"

	"github.com/jahboukie/inner-architect/pkg/ctxutil"
)

const sessionHeader = "X-Session-Id"

// maxSessionIDLen bounds the client-chosen session id; anything longer is
// treated as absent.
const maxSessionIDLen = 128

// SessionID propagates the client session id header into the context.
// Anonymous visitors are quota-metered by this id, so the header is
// client-generated and sticky on their side; no id is minted here.
func SessionID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(sessionHeader)
		if id == "" || len(id) > maxSessionIDLen {
			next.ServeHTTP(w, r)
			return
		}
		ctx := ctxutil.WithSessionID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
