package web

import (
	"context"
	"net/http"

	"github.com/cmeynet/holbertonschool-hbnb/internal/app"
	"github.com/cmeynet/holbertonschool-hbnb/internal/domain"
)

// PageKind names each page the front-end serves. Handlers declare their kind
// instead of the gate sniffing URL paths.
type PageKind int

const (
	PageIndex PageKind = iota
	PageLogin
	PagePlaceDetail
	PageAddReview
)

// Public reports whether the page may be browsed without a token. Anything
// not listed here requires one; that conservative default is deliberate.
func (k PageKind) Public() bool { return k == PageIndex || k == PageLogin }

type sessionKey struct{}

// SessionFrom returns the page session the gate attached to the request.
func SessionFrom(ctx context.Context) domain.Session {
	s, _ := ctx.Value(sessionKey{}).(domain.Session)
	return s
}

// Gate runs once per page load. Without a token, protected pages redirect to
// the index before any API call happens; public pages continue
// unauthenticated. With a token, the session carries it onward and the
// rendered page adjusts its login/add-review affordances.
func Gate(kind PageKind) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := TokenFromHeader(r.Header.Get("Cookie"), TokenCookie)
			if !ok && !kind.Public() {
				http.Redirect(w, r, "/index.html", http.StatusSeeOther)
				return
			}

			sid, _ := TokenFromHeader(r.Header.Get("Cookie"), sidCookie)
			sess := app.NewSession(sid, token)
			if sid == "" {
				setSessionCookie(w, sess.ID)
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey{}, sess)))
		})
	}
}
